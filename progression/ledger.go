package progression

import (
	"math"
	"time"
)

// Base XP per reported action. Unknown actions award nothing; a stale or
// mistyped action type must never break a session.
var xpActions = map[string]int{
	ActionScanCard:        10,
	ActionScanHolo:        25,
	ActionScanRare:        50,
	ActionScanUltraRare:   100,
	ActionCompleteSet:     200,
	ActionDailyLogin:      5,
	ActionFirstScan:       50,
	ActionReferral:        100,
	ActionShareCollection: 25,
}

const (
	ActionScanCard        = "scan_card"
	ActionScanHolo        = "scan_holo"
	ActionScanRare        = "scan_rare"
	ActionScanUltraRare   = "scan_ultra_rare"
	ActionCompleteSet     = "complete_set"
	ActionDailyLogin      = "daily_login"
	ActionFirstScan       = "first_scan"
	ActionReferral        = "referral"
	ActionShareCollection = "share_collection"
)

// levelReward is granted once when the ledger recomputes the level past
// the entry's threshold. Titles are added idempotently; badges go through
// the achievement tracker's explicit unlock path.
type levelReward struct {
	Level   int
	Title   string
	BadgeID string
}

var levelRewards = []levelReward{
	{Level: 2, Title: "Novice Scanner"},
	{Level: 3, Title: "Card Enthusiast"},
	{Level: 5, Title: "Seasoned Collector", BadgeID: "level_5"},
	{Level: 8, Title: "Vault Keeper"},
	{Level: 10, Title: "Card Master", BadgeID: "level_10"},
	{Level: 15, Title: "Grand Archivist", BadgeID: "level_15"},
	{Level: 20, Title: "Living Legend", BadgeID: "level_20"},
}

// XPAward is the result of a single AwardXP call.
type XPAward struct {
	XPGained  int  `json:"xp_gained"`
	LeveledUp bool `json:"leveled_up"`
	NewLevel  int  `json:"new_level"`
}

// LevelProgress describes position within the current level.
type LevelProgress struct {
	Current    int `json:"current"`
	Required   int `json:"required"`
	Percentage int `json:"percentage"`
}

// LevelForXP derives the level from total XP: floor(1 + sqrt(xp/100)).
// Level is never stored independently of this recompute.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return int(1 + math.Sqrt(float64(xp)/100))
}

// XPForLevel returns the total XP at which the given level begins.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * 100
}

// Ledger converts XP awards into levels and maintains the scan counters
// and calendar-day streak. It never evaluates unlock predicates itself;
// every counter mutation ends with a tracker recompute.
type Ledger struct {
	counters *ProgressCounters
	tracker  *AchievementTracker
	clock    func() time.Time
}

func NewLedger(counters *ProgressCounters, tracker *AchievementTracker, clock func() time.Time) *Ledger {
	return &Ledger{counters: counters, tracker: tracker, clock: clock}
}

// AwardXP applies the action's base XP scaled by multiplier and recomputes
// the level. Unknown action types are a no-op, not an error. Negative
// multipliers are clamped to zero so XP stays monotonic.
func (l *Ledger) AwardXP(actionType string, multiplier float64) XPAward {
	base, ok := xpActions[actionType]
	if !ok {
		return XPAward{NewLevel: l.counters.Level}
	}
	if multiplier < 0 {
		multiplier = 0
	}

	gained := int(math.Floor(float64(base) * multiplier))
	l.counters.XP += gained

	oldLevel := l.counters.Level
	l.counters.Level = LevelForXP(l.counters.XP)

	if l.counters.Level > oldLevel {
		l.applyLevelRewards(oldLevel, l.counters.Level)
	}

	return XPAward{
		XPGained:  gained,
		LeveledUp: l.counters.Level > oldLevel,
		NewLevel:  l.counters.Level,
	}
}

func (l *Ledger) applyLevelRewards(fromLevel, toLevel int) {
	for _, reward := range levelRewards {
		if reward.Level <= fromLevel || reward.Level > toLevel {
			continue
		}
		l.counters.addTitle(reward.Title)
		if reward.BadgeID != "" {
			l.tracker.Unlock(reward.BadgeID)
		}
	}
}

// XPForNextLevel reports progress toward the next level. Required is
// strictly positive for every level, and Percentage is capped at 100.
func (l *Ledger) XPForNextLevel() LevelProgress {
	level := l.counters.Level
	floor := XPForLevel(level)
	required := XPForLevel(level+1) - floor
	current := l.counters.XP - floor

	pct := 100 * current / required
	if pct > 100 {
		pct = 100
	}

	return LevelProgress{Current: current, Required: required, Percentage: pct}
}

// RecordScan increments the scan counters and advances the streak.
// Same calendar day: streak unchanged. Consecutive day: streak + 1.
// Any gap: streak resets to 1. Ends with an achievement recompute and
// returns any ids it unlocked.
func (l *Ledger) RecordScan(rarity Rarity) []string {
	l.counters.TotalScans++
	switch rarity {
	case RarityHolo:
		l.counters.HoloCards++
	case RarityRare:
		l.counters.RareCards++
	case RarityUltraRare:
		l.counters.UltraRareCards++
	}

	today := DateOf(l.clock())
	switch {
	case l.counters.LastScanDate.Equal(today):
		// second scan today, streak already counted
	case l.counters.LastScanDate.IsYesterdayOf(today):
		l.counters.Streak++
	default:
		l.counters.Streak = 1
	}
	l.counters.LastScanDate = today

	return l.tracker.UpdateProgress()
}

// CompleteSet records a finished card set.
func (l *Ledger) CompleteSet() []string {
	l.counters.SetsCompleted++
	return l.tracker.UpdateProgress()
}

// RecordReferral credits a successful referral.
func (l *Ledger) RecordReferral() []string {
	l.counters.Referrals++
	return l.tracker.UpdateProgress()
}

// RecordShare credits a collection share.
func (l *Ledger) RecordShare() []string {
	l.counters.Shares++
	return l.tracker.UpdateProgress()
}
