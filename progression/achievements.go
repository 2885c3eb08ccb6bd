package progression

import (
	"sort"
	"time"
)

type AchievementCategory string

const (
	CategoryScanning   AchievementCategory = "scanning"
	CategoryRarity     AchievementCategory = "rarity"
	CategoryStreaks    AchievementCategory = "streaks"
	CategoryCompletion AchievementCategory = "completion"
	CategorySocial     AchievementCategory = "social"
	CategorySpecial    AchievementCategory = "special"
)

type AchievementRarity string

const (
	TierCommon    AchievementRarity = "common"
	TierRare      AchievementRarity = "rare"
	TierEpic      AchievementRarity = "epic"
	TierLegendary AchievementRarity = "legendary"
)

// AchievementDefinition is one entry of the immutable catalog. Each
// definition carries its own progress extractor over the counters, so
// adding an achievement never requires touching a central dispatch.
type AchievementDefinition struct {
	ID          string
	Name        string
	Description string
	Category    AchievementCategory
	Rarity      AchievementRarity
	Required    int
	Progress    func(c *ProgressCounters) int
}

// AchievementState is derived per user; only the unlock flag and
// timestamp are persisted.
type AchievementState struct {
	Current    int        `json:"current"`
	Required   int        `json:"required"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// Achievement is the read-only view handed to callers.
type Achievement struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Category    AchievementCategory `json:"category"`
	Rarity      AchievementRarity   `json:"rarity"`
	State       AchievementState    `json:"state"`
}

// Badge is a compact unlocked-achievement record for notification feeds.
type Badge struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// AchievementTracker re-evaluates unlock progress for the whole catalog
// whenever a relevant counter changes.
type AchievementTracker struct {
	counters *ProgressCounters
	catalog  []AchievementDefinition
	index    map[string]int
	unlocked map[string]time.Time
	clock    func() time.Time
}

func NewAchievementTracker(counters *ProgressCounters, catalog []AchievementDefinition, clock func() time.Time) *AchievementTracker {
	index := make(map[string]int, len(catalog))
	for i, def := range catalog {
		index[def.ID] = i
	}
	return &AchievementTracker{
		counters: counters,
		catalog:  catalog,
		index:    index,
		unlocked: make(map[string]time.Time),
		clock:    clock,
	}
}

// UpdateProgress evaluates every locked definition against the current
// counters and unlocks those past their threshold. Already-unlocked
// achievements are skipped, so repeated calls never double-count.
// Returns newly unlocked ids in catalog order.
func (t *AchievementTracker) UpdateProgress() []string {
	var newlyUnlocked []string
	for _, def := range t.catalog {
		if _, done := t.unlocked[def.ID]; done {
			continue
		}
		if def.Progress(t.counters) >= def.Required {
			t.unlock(def.ID)
			newlyUnlocked = append(newlyUnlocked, def.ID)
		}
	}
	return newlyUnlocked
}

// Unlock is the explicit path used by level rewards. Returns false for
// unknown or already-unlocked ids.
func (t *AchievementTracker) Unlock(id string) bool {
	if _, ok := t.index[id]; !ok {
		return false
	}
	if _, done := t.unlocked[id]; done {
		return false
	}
	t.unlock(id)
	return true
}

func (t *AchievementTracker) unlock(id string) {
	t.unlocked[id] = t.clock()
	t.counters.addBadge(id)
	t.counters.AchievementsUnlocked++
}

// RecentUnlocks returns badges unlocked within the trailing window,
// newest first. Pure read.
func (t *AchievementTracker) RecentUnlocks(windowDays int) []Badge {
	cutoff := t.clock().AddDate(0, 0, -windowDays)

	badges := make([]Badge, 0)
	for _, def := range t.catalog {
		at, ok := t.unlocked[def.ID]
		if !ok || at.Before(cutoff) {
			continue
		}
		badges = append(badges, Badge{ID: def.ID, Name: def.Name, UnlockedAt: at})
	}
	sort.Slice(badges, func(i, j int) bool {
		return badges[i].UnlockedAt.After(badges[j].UnlockedAt)
	})
	return badges
}

// All returns the full catalog with per-user state, in catalog order.
func (t *AchievementTracker) All() []Achievement {
	out := make([]Achievement, 0, len(t.catalog))
	for _, def := range t.catalog {
		out = append(out, t.view(def))
	}
	return out
}

// ByCategory filters the catalog view; an unknown category yields an
// empty slice.
func (t *AchievementTracker) ByCategory(category AchievementCategory) []Achievement {
	out := make([]Achievement, 0)
	for _, def := range t.catalog {
		if def.Category == category {
			out = append(out, t.view(def))
		}
	}
	return out
}

// Unlocked returns only the unlocked entries, in catalog order.
func (t *AchievementTracker) Unlocked() []Achievement {
	out := make([]Achievement, 0)
	for _, def := range t.catalog {
		if _, ok := t.unlocked[def.ID]; ok {
			out = append(out, t.view(def))
		}
	}
	return out
}

func (t *AchievementTracker) view(def AchievementDefinition) Achievement {
	current := def.Progress(t.counters)
	if current > def.Required {
		current = def.Required
	}

	state := AchievementState{Current: current, Required: def.Required}
	if at, ok := t.unlocked[def.ID]; ok {
		unlockedAt := at
		state.Unlocked = true
		state.UnlockedAt = &unlockedAt
		state.Current = def.Required
	}

	return Achievement{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		Category:    def.Category,
		Rarity:      def.Rarity,
		State:       state,
	}
}
