package progression

import (
	"testing"
	"time"
)

func TestHoloHeroUnlock(t *testing.T) {
	clock := &movableClock{now: quietDay}
	e := NewEngine(WithClock(clock.clock))

	for i := 0; i < 24; i++ {
		e.ledger.RecordScan(RarityHolo)
	}
	for _, a := range e.GetAllAchievements() {
		if a.ID == "holo_hero_25" && a.State.Unlocked {
			t.Fatal("holo_hero_25 unlocked one scan early")
		}
	}

	newly := e.ledger.RecordScan(RarityHolo)

	found := false
	for _, id := range newly {
		if id == "holo_hero_25" {
			found = true
		}
	}
	if !found {
		t.Fatalf("25th holo scan did not unlock holo_hero_25, got %v", newly)
	}

	for _, a := range e.GetAllAchievements() {
		if a.ID != "holo_hero_25" {
			continue
		}
		if !a.State.Unlocked || a.State.UnlockedAt == nil {
			t.Fatalf("holo_hero_25 state: %+v", a.State)
		}
		if !a.State.UnlockedAt.Equal(quietDay) {
			t.Fatalf("unlockedAt = %v, want %v", a.State.UnlockedAt, quietDay)
		}
	}
}

func TestUnlockIdempotent(t *testing.T) {
	e := testEngine(quietDay)

	if !e.UnlockAchievement("streak_7") {
		t.Fatal("first unlock returned false")
	}
	count := e.Counters().AchievementsUnlocked

	if e.UnlockAchievement("streak_7") {
		t.Fatal("second unlock returned true")
	}
	if got := e.Counters().AchievementsUnlocked; got != count {
		t.Fatalf("double-counted unlocks: %d -> %d", count, got)
	}

	// recompute must not re-fire it either
	e.tracker.UpdateProgress()
	if got := e.Counters().AchievementsUnlocked; got != count {
		t.Fatalf("recompute changed unlock count: %d -> %d", count, got)
	}
}

func TestUnlockUnknownID(t *testing.T) {
	e := testEngine(quietDay)
	if e.UnlockAchievement("no_such_achievement") {
		t.Fatal("unknown id unlocked")
	}
	if e.Counters().AchievementsUnlocked != 0 {
		t.Fatal("unknown id mutated counters")
	}
}

func TestRecentUnlocks(t *testing.T) {
	clock := &movableClock{now: quietDay}
	e := NewEngine(WithClock(clock.clock))

	e.UnlockAchievement("streak_3")

	clock.now = clock.now.AddDate(0, 0, 10)
	e.UnlockAchievement("streak_7")

	recent := e.GetRecentUnlocks(7)
	if len(recent) != 1 || recent[0].ID != "streak_7" {
		t.Fatalf("recent unlocks: %+v", recent)
	}

	// pure read: calling again changes nothing
	if again := e.GetRecentUnlocks(7); len(again) != 1 {
		t.Fatalf("second read differs: %+v", again)
	}

	all := e.GetRecentUnlocks(30)
	if len(all) != 2 {
		t.Fatalf("30-day window: %+v", all)
	}
	if !all[0].UnlockedAt.After(all[1].UnlockedAt) {
		t.Fatal("recent unlocks not newest first")
	}
}

func TestAchievementsByCategory(t *testing.T) {
	e := testEngine(quietDay)

	for _, a := range e.GetAchievementsByCategory(CategoryStreaks) {
		if a.Category != CategoryStreaks {
			t.Fatalf("wrong category in filter: %+v", a)
		}
	}
	if got := e.GetAchievementsByCategory("bogus"); len(got) != 0 {
		t.Fatalf("unknown category returned %d entries", len(got))
	}
}

func TestViewClampsProgress(t *testing.T) {
	e := testEngine(quietDay)

	for i := 0; i < 30; i++ {
		e.ledger.RecordScan(RarityCommon)
	}
	for _, a := range e.GetAllAchievements() {
		if a.State.Current > a.State.Required {
			t.Fatalf("current exceeds required: %+v", a)
		}
	}
}

func TestViewsAreCopies(t *testing.T) {
	e := testEngine(quietDay)
	e.UnlockAchievement("first_scan")

	views := e.GetUnlockedAchievements()
	if len(views) == 0 {
		t.Fatal("no unlocked views")
	}
	*views[0].State.UnlockedAt = time.Time{}

	if e.GetUnlockedAchievements()[0].State.UnlockedAt.IsZero() {
		t.Fatal("mutating a returned view reached engine state")
	}
}
