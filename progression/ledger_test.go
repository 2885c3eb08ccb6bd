package progression

import (
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testEngine(at time.Time) *Engine {
	return NewEngine(WithClock(fixedClock(at)))
}

// movableClock lets a test advance the engine's wall clock day by day.
type movableClock struct{ now time.Time }

func (c *movableClock) clock() time.Time { return c.now }

var quietDay = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{145, 2},
		{399, 2},
		{400, 3},
		{8100, 10},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestAwardXP_LevelInvariant(t *testing.T) {
	e := testEngine(quietDay)

	actions := []string{
		ActionScanCard, ActionScanHolo, ActionScanUltraRare,
		ActionCompleteSet, ActionDailyLogin, ActionScanRare,
		ActionScanCard, ActionScanUltraRare, ActionCompleteSet,
	}

	prevXP := 0
	for _, action := range actions {
		e.ledger.AwardXP(action, 1)
		c := e.Counters()
		if c.XP < prevXP {
			t.Fatalf("xp decreased: %d -> %d", prevXP, c.XP)
		}
		if want := LevelForXP(c.XP); c.Level != want {
			t.Fatalf("after %s: level = %d, want %d (xp=%d)", action, c.Level, want, c.XP)
		}
		prevXP = c.XP
	}
}

func TestAwardXP_Scenario(t *testing.T) {
	e := testEngine(quietDay)

	for i := 0; i < 7; i++ {
		award := e.ledger.AwardXP(ActionScanCard, 1)
		if award.LeveledUp {
			t.Fatalf("unexpected level up at scan %d", i+1)
		}
	}
	if c := e.Counters(); c.XP != 70 || c.Level != 1 {
		t.Fatalf("after 7 scans: xp=%d level=%d, want 70/1", c.XP, c.Level)
	}

	award := e.ledger.AwardXP(ActionScanHolo, 1)
	if award.LeveledUp || e.Counters().XP != 95 {
		t.Fatalf("after holo: xp=%d leveledUp=%v, want 95/false", e.Counters().XP, award.LeveledUp)
	}

	award = e.ledger.AwardXP(ActionScanRare, 1)
	if !award.LeveledUp || award.NewLevel != 2 {
		t.Fatalf("after rare: leveledUp=%v newLevel=%d, want true/2", award.LeveledUp, award.NewLevel)
	}
	if e.Counters().XP != 145 {
		t.Fatalf("xp = %d, want 145", e.Counters().XP)
	}
}

func TestAwardXP_UnknownAction(t *testing.T) {
	e := testEngine(quietDay)
	e.ledger.AwardXP(ActionScanCard, 1)

	award := e.ledger.AwardXP("mystery_action", 1)
	if award.XPGained != 0 || award.LeveledUp {
		t.Fatalf("unknown action awarded xp: %+v", award)
	}
	if award.NewLevel != e.Counters().Level {
		t.Fatalf("unknown action changed level: %+v", award)
	}
	if e.Counters().XP != 10 {
		t.Fatalf("unknown action mutated xp: %d", e.Counters().XP)
	}
}

func TestAwardXP_NegativeMultiplierClamped(t *testing.T) {
	e := testEngine(quietDay)
	e.ledger.AwardXP(ActionScanCard, 1)

	award := e.ledger.AwardXP(ActionScanUltraRare, -3)
	if award.XPGained != 0 {
		t.Fatalf("negative multiplier gained xp: %+v", award)
	}
	if e.Counters().XP != 10 {
		t.Fatalf("xp moved under negative multiplier: %d", e.Counters().XP)
	}
}

func TestAwardXP_MultiplierFloor(t *testing.T) {
	e := testEngine(quietDay)

	award := e.ledger.AwardXP(ActionScanHolo, 1.5)
	if award.XPGained != 37 { // floor(25 * 1.5)
		t.Fatalf("gained %d, want 37", award.XPGained)
	}
}

func TestXPForNextLevel(t *testing.T) {
	e := testEngine(quietDay)

	p := e.GetXPForNextLevel()
	if p.Current != 0 || p.Required != 100 || p.Percentage != 0 {
		t.Fatalf("at zero xp: %+v", p)
	}

	for i := 0; i < 5; i++ {
		e.ledger.AwardXP(ActionScanCard, 1)
		p = e.GetXPForNextLevel()
		if p.Percentage < 0 || p.Percentage > 100 {
			t.Fatalf("percentage out of range: %+v", p)
		}
		if p.Required <= 0 {
			t.Fatalf("required not positive: %+v", p)
		}
	}

	// cross into level 2: window becomes [100, 400)
	e.ledger.AwardXP(ActionScanRare, 1) // xp=100
	p = e.GetXPForNextLevel()
	if p.Current != 0 || p.Required != 300 {
		t.Fatalf("at level 2 boundary: %+v", p)
	}
}

func TestRecordScan_Streak(t *testing.T) {
	clock := &movableClock{now: quietDay}
	e := NewEngine(WithClock(clock.clock))

	e.ledger.RecordScan(RarityCommon)
	if got := e.Counters().Streak; got != 1 {
		t.Fatalf("first scan streak = %d, want 1", got)
	}

	// same calendar day, later hour: unchanged
	clock.now = clock.now.Add(5 * time.Hour)
	e.ledger.RecordScan(RarityHolo)
	if got := e.Counters().Streak; got != 1 {
		t.Fatalf("same-day streak = %d, want 1", got)
	}

	// next day: +1
	clock.now = clock.now.AddDate(0, 0, 1)
	e.ledger.RecordScan(RarityCommon)
	if got := e.Counters().Streak; got != 2 {
		t.Fatalf("consecutive-day streak = %d, want 2", got)
	}

	// skip a day: reset to 1
	clock.now = clock.now.AddDate(0, 0, 2)
	e.ledger.RecordScan(RarityCommon)
	if got := e.Counters().Streak; got != 1 {
		t.Fatalf("post-gap streak = %d, want 1", got)
	}
}

func TestRecordScan_RarityCounters(t *testing.T) {
	e := testEngine(quietDay)

	e.ledger.RecordScan(RarityCommon)
	e.ledger.RecordScan(RarityHolo)
	e.ledger.RecordScan(RarityRare)
	e.ledger.RecordScan(RarityUltraRare)
	e.ledger.RecordScan(RarityHolo)

	c := e.Counters()
	if c.TotalScans != 5 || c.HoloCards != 2 || c.RareCards != 1 || c.UltraRareCards != 1 {
		t.Fatalf("counters: %+v", c)
	}
}

func TestLevelRewards(t *testing.T) {
	e := testEngine(quietDay)

	// jump straight past level 5: 41 ultra rare scans = 4100 xp, level 7
	for i := 0; i < 41; i++ {
		e.ledger.AwardXP(ActionScanUltraRare, 1)
	}

	c := e.Counters()
	if c.Level != 7 {
		t.Fatalf("level = %d, want 7", c.Level)
	}
	for _, title := range []string{"Novice Scanner", "Card Enthusiast", "Seasoned Collector"} {
		if !c.hasTitle(title) {
			t.Errorf("missing title %q", title)
		}
	}
	found := false
	for _, b := range c.EarnedBadges {
		if b == "level_5" {
			found = true
		}
	}
	if !found {
		t.Errorf("level_5 badge not granted, badges: %v", c.EarnedBadges)
	}
}
