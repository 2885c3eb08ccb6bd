package progression

import "time"

// Engine wires the four components over one shared ProgressCounters and
// orchestrates the control flow: an action report updates counters and
// XP, then event progress, then every unlock predicate is re-evaluated
// before the call returns. The engine performs no I/O; persistence is
// the hosting service's job after each mutating call.
//
// The engine is not safe for concurrent use. There is exactly one
// logical writer per profile; the host serializes access.
type Engine struct {
	counters *ProgressCounters
	tracker  *AchievementTracker
	ledger   *Ledger
	skins    *SkinManager
	seasons  *SeasonManager
	clock    func() time.Time
}

type Option func(*config)

type config struct {
	clock        func() time.Time
	achievements []AchievementDefinition
	skins        []SkinDefinition
	seasons      []SeasonalEventDefinition
}

// WithClock pins the engine's wall clock; tests use this to exercise
// streak and seasonal-window behaviour deterministically.
func WithClock(clock func() time.Time) Option {
	return func(c *config) { c.clock = clock }
}

func WithAchievementCatalog(catalog []AchievementDefinition) Option {
	return func(c *config) { c.achievements = catalog }
}

func WithSkinCatalog(catalog []SkinDefinition) Option {
	return func(c *config) { c.skins = catalog }
}

func WithSeasonCatalog(catalog []SeasonalEventDefinition) Option {
	return func(c *config) { c.seasons = catalog }
}

func NewEngine(opts ...Option) *Engine {
	cfg := config{
		clock:        time.Now,
		achievements: DefaultAchievementCatalog(),
		skins:        DefaultSkinCatalog(),
		seasons:      DefaultSeasonCatalog(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	counters := NewProgressCounters()
	tracker := NewAchievementTracker(counters, cfg.achievements, cfg.clock)
	seasons := NewSeasonManager(cfg.seasons, cfg.clock)

	return &Engine{
		counters: counters,
		tracker:  tracker,
		ledger:   NewLedger(counters, tracker, cfg.clock),
		skins:    NewSkinManager(cfg.skins, seasons),
		seasons:  seasons,
		clock:    cfg.clock,
	}
}

// ActionResult aggregates everything a single reported action changed,
// so the caller can surface notifications without re-polling.
type ActionResult struct {
	Award           XPAward  `json:"award"`
	FirstScan       bool     `json:"first_scan,omitempty"`
	Streak          int      `json:"streak"`
	ActiveEventID   string   `json:"active_event_id,omitempty"`
	NewAchievements []string `json:"new_achievements,omitempty"`
	NewEventBadges  []string `json:"new_event_badges,omitempty"`
	NewSkins        []string `json:"new_skins,omitempty"`
}

func actionForRarity(rarity Rarity) string {
	switch rarity {
	case RarityHolo:
		return ActionScanHolo
	case RarityRare:
		return ActionScanRare
	case RarityUltraRare:
		return ActionScanUltraRare
	default:
		return ActionScanCard
	}
}

// RecordScan reports one completed card scan. Counters and streak first,
// then XP with any active event's multipliers applied, then event
// progress, then a full unlock re-evaluation.
func (e *Engine) RecordScan(rarity Rarity, cardTypeTag string) ActionResult {
	firstScan := e.counters.TotalScans == 0
	event := e.seasons.GetActiveEvent()

	result := ActionResult{FirstScan: firstScan}
	if event != nil {
		result.ActiveEventID = event.ID
	}

	result.NewAchievements = e.ledger.RecordScan(rarity)

	multiplier := 1.0
	if event != nil {
		m := e.seasons.GetEventMultipliers(event.ID)
		multiplier = m.XP
		if rarity == RarityHolo {
			multiplier *= m.Holo
		}
	}

	result.Award = e.ledger.AwardXP(actionForRarity(rarity), multiplier)
	if firstScan {
		bonus := e.ledger.AwardXP(ActionFirstScan, 1)
		result.Award.XPGained += bonus.XPGained
		result.Award.LeveledUp = result.Award.LeveledUp || bonus.LeveledUp
		result.Award.NewLevel = bonus.NewLevel
	}

	if event != nil {
		result.NewEventBadges = e.seasons.RecordScan(event.ID, cardTypeTag)
		e.seasons.AddEventXP(event.ID, result.Award.XPGained)
	}

	result.NewAchievements = append(result.NewAchievements, e.tracker.UpdateProgress()...)
	result.NewSkins = e.skins.CheckUnlockConditions(e.counters)
	result.Streak = e.counters.Streak
	return result
}

// AwardXP reports a generic XP-earning action (referral, share, admin
// grant). The active event's XP multiplier stacks onto the caller's.
func (e *Engine) AwardXP(actionType string, multiplier float64) ActionResult {
	var result ActionResult
	if event := e.seasons.GetActiveEvent(); event != nil {
		result.ActiveEventID = event.ID
		if multiplier < 0 {
			multiplier = 0
		}
		multiplier *= e.seasons.GetEventMultipliers(event.ID).XP
	}

	result.Award = e.ledger.AwardXP(actionType, multiplier)
	e.seasons.AddEventXP(result.ActiveEventID, result.Award.XPGained)

	result.NewAchievements = e.tracker.UpdateProgress()
	result.NewSkins = e.skins.CheckUnlockConditions(e.counters)
	result.Streak = e.counters.Streak
	return result
}

// CompleteSet reports a finished card set.
func (e *Engine) CompleteSet() ActionResult {
	result := e.AwardXP(ActionCompleteSet, 1)
	result.NewAchievements = append(e.ledger.CompleteSet(), result.NewAchievements...)
	result.NewSkins = append(result.NewSkins, e.skins.CheckUnlockConditions(e.counters)...)
	return result
}

// DailyLogin awards the daily login bonus at most once per calendar day.
// The second call on the same day reports ok=false and changes nothing.
func (e *Engine) DailyLogin() (ActionResult, bool) {
	today := DateOf(e.clock())
	if e.counters.LastLoginDate.Equal(today) {
		return ActionResult{Award: XPAward{NewLevel: e.counters.Level}, Streak: e.counters.Streak}, false
	}
	e.counters.LastLoginDate = today
	return e.AwardXP(ActionDailyLogin, 1), true
}

// RecordReferral credits a successful friend referral.
func (e *Engine) RecordReferral() ActionResult {
	result := e.AwardXP(ActionReferral, 1)
	result.NewAchievements = append(e.ledger.RecordReferral(), result.NewAchievements...)
	result.NewSkins = append(result.NewSkins, e.skins.CheckUnlockConditions(e.counters)...)
	return result
}

// RecordShare credits a collection share.
func (e *Engine) RecordShare() ActionResult {
	result := e.AwardXP(ActionShareCollection, 1)
	result.NewAchievements = append(e.ledger.RecordShare(), result.NewAchievements...)
	result.NewSkins = append(result.NewSkins, e.skins.CheckUnlockConditions(e.counters)...)
	return result
}

// UserStats is the aggregate query view. Every field is a copy.
type UserStats struct {
	Counters      ProgressCounters `json:"counters"`
	NextLevel     LevelProgress    `json:"next_level"`
	CurrentSkin   string           `json:"current_skin"`
	ActiveEventID string           `json:"active_event_id,omitempty"`
	RecentUnlocks []Badge          `json:"recent_unlocks"`
}

func (e *Engine) GetUserStats() UserStats {
	stats := UserStats{
		Counters:      e.counters.Clone(),
		NextLevel:     e.ledger.XPForNextLevel(),
		CurrentSkin:   e.skins.CurrentSkin(),
		RecentUnlocks: e.tracker.RecentUnlocks(7),
	}
	if event := e.seasons.GetActiveEvent(); event != nil {
		stats.ActiveEventID = event.ID
	}
	return stats
}

func (e *Engine) Counters() ProgressCounters { return e.counters.Clone() }

func (e *Engine) GetXPForNextLevel() LevelProgress { return e.ledger.XPForNextLevel() }

func (e *Engine) GetAllAchievements() []Achievement { return e.tracker.All() }

func (e *Engine) GetAchievementsByCategory(category AchievementCategory) []Achievement {
	return e.tracker.ByCategory(category)
}

func (e *Engine) GetUnlockedAchievements() []Achievement { return e.tracker.Unlocked() }

func (e *Engine) GetRecentUnlocks(windowDays int) []Badge {
	return e.tracker.RecentUnlocks(windowDays)
}

func (e *Engine) UnlockAchievement(id string) bool { return e.tracker.Unlock(id) }

func (e *Engine) GetAllSkins() []Skin { return e.skins.All() }

func (e *Engine) GetCurrentSkin() string { return e.skins.CurrentSkin() }

func (e *Engine) SetCurrentSkin(id string) bool { return e.skins.SetCurrentSkin(id) }

func (e *Engine) GetSkinUnlockProgress(id string) LevelProgress {
	return e.skins.GetUnlockProgress(id, e.counters)
}

func (e *Engine) GetActiveEvent() *ActiveEvent { return e.seasons.GetActiveEvent() }

func (e *Engine) GetEventCatalog() []ActiveEvent { return e.seasons.Catalog() }

func (e *Engine) GetEventTimeRemaining(eventID string) TimeRemaining {
	return e.seasons.GetEventTimeRemaining(eventID)
}

func (e *Engine) GetEventMultipliers(eventID string) EventMultipliers {
	return e.seasons.GetEventMultipliers(eventID)
}

func (e *Engine) GetEventProgress(eventID string) EventProgress {
	return e.seasons.Progress(eventID)
}

func (e *Engine) ClaimEventReward(eventID, rewardID string) bool {
	return e.seasons.ClaimReward(eventID, rewardID)
}
