package progression

type SkinPredicateKind string

const (
	PredicateLevel        SkinPredicateKind = "level"
	PredicateScans        SkinPredicateKind = "scans"
	PredicateHoloCards    SkinPredicateKind = "holo_cards"
	PredicateAchievements SkinPredicateKind = "achievements"
	PredicateStreak       SkinPredicateKind = "streak"
	PredicateSeasonal     SkinPredicateKind = "seasonal"
	PredicateNone         SkinPredicateKind = "none"
)

// SkinPredicate is a skin's unlock condition. Seasonal predicates name
// the event that must be active; the rest compare a counter against
// Threshold. A none predicate is always satisfied.
type SkinPredicate struct {
	Kind      SkinPredicateKind `json:"kind"`
	Threshold int               `json:"threshold,omitempty"`
	EventID   string            `json:"event_id,omitempty"`
}

type SkinDefinition struct {
	ID          string
	Name        string
	Description string
	Predicate   SkinPredicate
}

// Skin is the read-only view handed to callers.
type Skin struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Predicate   SkinPredicate `json:"predicate"`
	Unlocked    bool          `json:"unlocked"`
	Selected    bool          `json:"selected"`
}

// SkinManager evaluates unlock predicates against the shared counters
// and tracks the unlocked set plus the currently selected skin.
type SkinManager struct {
	catalog   []SkinDefinition
	index     map[string]int
	defaultID string
	unlocked  map[string]bool
	selected  string
	seasons   *SeasonManager
}

// NewSkinManager requires a default skin carrying a none predicate as
// the catalog's first entry; it is unlocked and selected from the start
// so the selected id is always a member of the unlocked set.
func NewSkinManager(catalog []SkinDefinition, seasons *SeasonManager) *SkinManager {
	index := make(map[string]int, len(catalog))
	for i, def := range catalog {
		index[def.ID] = i
	}

	m := &SkinManager{
		catalog:  catalog,
		index:    index,
		unlocked: make(map[string]bool),
		seasons:  seasons,
	}
	if len(catalog) > 0 {
		m.defaultID = catalog[0].ID
		m.unlocked[m.defaultID] = true
		m.selected = m.defaultID
	}
	return m
}

// CheckUnlockConditions evaluates every locked skin against the counters
// and unlocks those whose predicate holds. Returned ids follow catalog
// order; an id already unlocked is never returned again.
func (m *SkinManager) CheckUnlockConditions(c *ProgressCounters) []string {
	var newlyUnlocked []string
	for _, def := range m.catalog {
		if m.unlocked[def.ID] {
			continue
		}
		if m.predicateHolds(def.Predicate, c) {
			m.unlocked[def.ID] = true
			newlyUnlocked = append(newlyUnlocked, def.ID)
		}
	}
	return newlyUnlocked
}

func (m *SkinManager) predicateHolds(p SkinPredicate, c *ProgressCounters) bool {
	switch p.Kind {
	case PredicateNone:
		return true
	case PredicateLevel:
		return c.Level >= p.Threshold
	case PredicateScans:
		return c.TotalScans >= p.Threshold
	case PredicateHoloCards:
		return c.HoloCards >= p.Threshold
	case PredicateAchievements:
		return c.AchievementsUnlocked >= p.Threshold
	case PredicateStreak:
		return c.Streak >= p.Threshold
	case PredicateSeasonal:
		return m.seasons.Status(p.EventID) == EventActive
	}
	return false
}

// SetCurrentSkin selects an unlocked skin. Unknown or locked ids leave
// the selection untouched and return false.
func (m *SkinManager) SetCurrentSkin(id string) bool {
	if _, ok := m.index[id]; !ok {
		return false
	}
	if !m.unlocked[id] {
		return false
	}
	m.selected = id
	return true
}

// CurrentSkin returns the selected skin id, falling back to the default
// if the selection is somehow no longer unlocked.
func (m *SkinManager) CurrentSkin() string {
	if m.unlocked[m.selected] {
		return m.selected
	}
	return m.defaultID
}

// GetUnlockProgress reports numeric progress toward a skin's predicate.
// Predicates without numeric progress (none, seasonal) and unknown ids
// report zeros.
func (m *SkinManager) GetUnlockProgress(id string, c *ProgressCounters) LevelProgress {
	i, ok := m.index[id]
	if !ok {
		return LevelProgress{}
	}

	p := m.catalog[i].Predicate
	var current int
	switch p.Kind {
	case PredicateLevel:
		current = c.Level
	case PredicateScans:
		current = c.TotalScans
	case PredicateHoloCards:
		current = c.HoloCards
	case PredicateAchievements:
		current = c.AchievementsUnlocked
	case PredicateStreak:
		current = c.Streak
	default:
		return LevelProgress{}
	}

	if current > p.Threshold {
		current = p.Threshold
	}
	pct := 0
	if p.Threshold > 0 {
		pct = 100 * current / p.Threshold
	}
	return LevelProgress{Current: current, Required: p.Threshold, Percentage: pct}
}

// All lists the catalog with per-user unlock state, in catalog order.
func (m *SkinManager) All() []Skin {
	selected := m.CurrentSkin()
	out := make([]Skin, 0, len(m.catalog))
	for _, def := range m.catalog {
		out = append(out, Skin{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Predicate:   def.Predicate,
			Unlocked:    m.unlocked[def.ID],
			Selected:    def.ID == selected,
		})
	}
	return out
}

// UnlockedIDs returns the unlocked set in catalog order.
func (m *SkinManager) UnlockedIDs() []string {
	out := make([]string, 0, len(m.unlocked))
	for _, def := range m.catalog {
		if m.unlocked[def.ID] {
			out = append(out, def.ID)
		}
	}
	return out
}
