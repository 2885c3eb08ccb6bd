package progression

import "time"

type EventStatus string

const (
	EventUpcoming EventStatus = "upcoming"
	EventActive   EventStatus = "active"
	EventEnded    EventStatus = "ended"
)

type EventFeatureType string

const (
	FeatureXPMultiplier EventFeatureType = "xp_multiplier"
	FeatureHoloBonus    EventFeatureType = "holo_bonus"
	FeatureOther        EventFeatureType = "other"
)

// EventFeature is one declared effect of a seasonal event. When several
// entries share a type, aggregation is last-writer-wins.
type EventFeature struct {
	Type  EventFeatureType `json:"type"`
	Value float64          `json:"value"`
}

type EventReward struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EventMetric string

const (
	MetricEventScans        EventMetric = "scans"
	MetricEventSpecialCards EventMetric = "special_cards"
	MetricEventXP           EventMetric = "xp"
)

// EventBadge is an event-scoped badge with a threshold against the
// event's own progress counters, not the global ones.
type EventBadge struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Metric   EventMetric `json:"metric"`
	Required int         `json:"required"`
}

// EventWindow is a yearly recurrence rule at calendar-date granularity.
// A window whose end falls before its start wraps into the next year.
type EventWindow struct {
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
}

// instance materializes the window for a given year in loc. The end
// instant is exclusive: the event is active through the whole end day.
func (w EventWindow) instance(year int, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, w.StartMonth, w.StartDay, 0, 0, 0, 0, loc)
	endYear := year
	if w.EndMonth < w.StartMonth || (w.EndMonth == w.StartMonth && w.EndDay < w.StartDay) {
		endYear++
	}
	end = time.Date(endYear, w.EndMonth, w.EndDay+1, 0, 0, 0, 0, loc)
	return start, end
}

// forInstant returns the window instance containing at, or the next
// upcoming instance of the rule. Computed per query, so sessions that
// span a year boundary always see the correct instance.
func (w EventWindow) forInstant(at time.Time) (start, end time.Time) {
	for _, year := range []int{at.Year() - 1, at.Year(), at.Year() + 1} {
		start, end = w.instance(year, at.Location())
		if at.Before(end) {
			return start, end
		}
	}
	return start, end
}

type SeasonalEventDefinition struct {
	ID       string
	Name     string
	Window   EventWindow
	Features []EventFeature
	Rewards  []EventReward
	Badges   []EventBadge
	// Affinity lists the card type tags that count as special finds.
	Affinity []string
}

// EventProgress is created lazily on the first progress update for an
// event and kept forever to preserve history after the window closes.
type EventProgress struct {
	ScansCompleted    int      `json:"scans_completed"`
	SpecialCardsFound int      `json:"special_cards_found"`
	EarnedBadgeIDs    []string `json:"earned_badge_ids"`
	ClaimedRewardIDs  []string `json:"claimed_reward_ids"`
	XPEarnedDuring    int      `json:"xp_earned_during_event"`
}

func (p *EventProgress) hasBadge(id string) bool {
	for _, b := range p.EarnedBadgeIDs {
		if b == id {
			return true
		}
	}
	return false
}

func (p *EventProgress) metric(m EventMetric) int {
	switch m {
	case MetricEventScans:
		return p.ScansCompleted
	case MetricEventSpecialCards:
		return p.SpecialCardsFound
	case MetricEventXP:
		return p.XPEarnedDuring
	}
	return 0
}

// EventMultipliers are the multipliers a currently active event grants.
// The neutral value is {1, 1}.
type EventMultipliers struct {
	XP   float64 `json:"xp"`
	Holo float64 `json:"holo"`
}

type TimeRemaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// ActiveEvent is the query view of an event with its resolved window.
type ActiveEvent struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Start    time.Time      `json:"start"`
	End      time.Time      `json:"end"`
	Features []EventFeature `json:"features"`
	Rewards  []EventReward  `json:"rewards"`
	Badges   []EventBadge   `json:"badges"`
	Affinity []string       `json:"affinity"`
}

// SeasonManager drives the Upcoming -> Active -> Ended state machine
// purely from wall-clock time and tracks per-event progress.
type SeasonManager struct {
	catalog  []SeasonalEventDefinition
	index    map[string]int
	progress map[string]*EventProgress
	clock    func() time.Time
}

func NewSeasonManager(catalog []SeasonalEventDefinition, clock func() time.Time) *SeasonManager {
	index := make(map[string]int, len(catalog))
	for i, def := range catalog {
		index[def.ID] = i
	}
	return &SeasonManager{
		catalog:  catalog,
		index:    index,
		progress: make(map[string]*EventProgress),
		clock:    clock,
	}
}

// Status reports the lifecycle phase of the event's current window
// instance. Unknown ids read as ended.
func (m *SeasonManager) Status(eventID string) EventStatus {
	i, ok := m.index[eventID]
	if !ok {
		return EventEnded
	}
	now := m.clock()
	start, end := m.catalog[i].Window.forInstant(now)
	switch {
	case now.Before(start):
		return EventUpcoming
	case now.Before(end):
		return EventActive
	default:
		return EventEnded
	}
}

// GetActiveEvent returns the event whose window contains now, or nil.
// The catalog defines non-overlapping windows; should a custom catalog
// overlap, the most recently started event wins.
func (m *SeasonManager) GetActiveEvent() *ActiveEvent {
	now := m.clock()

	var best *ActiveEvent
	for _, def := range m.catalog {
		start, end := def.Window.forInstant(now)
		if now.Before(start) || !now.Before(end) {
			continue
		}
		if best == nil || start.After(best.Start) {
			v := m.eventView(def, start, end)
			best = &v
		}
	}
	return best
}

func (m *SeasonManager) eventView(def SeasonalEventDefinition, start, end time.Time) ActiveEvent {
	return ActiveEvent{
		ID:       def.ID,
		Name:     def.Name,
		Start:    start,
		End:      end,
		Features: append([]EventFeature(nil), def.Features...),
		Rewards:  append([]EventReward(nil), def.Rewards...),
		Badges:   append([]EventBadge(nil), def.Badges...),
		Affinity: append([]string(nil), def.Affinity...),
	}
}

// RecordScan counts a scan toward the event. No-op unless the event is
// currently active. Tags matching the event's affinity set also count as
// special finds. Ends with a badge recheck; newly unlocked badge ids are
// returned for notification purposes.
func (m *SeasonManager) RecordScan(eventID, cardTypeTag string) []string {
	if m.Status(eventID) != EventActive {
		return nil
	}

	p := m.progressFor(eventID)
	p.ScansCompleted++

	if cardTypeTag != "" {
		def := m.catalog[m.index[eventID]]
		for _, tag := range def.Affinity {
			if tag == cardTypeTag {
				p.SpecialCardsFound++
				break
			}
		}
	}

	return m.CheckBadgeUnlocks(eventID)
}

// AddEventXP attributes XP earned while the event is active. No-op when
// the event is absent or inactive.
func (m *SeasonManager) AddEventXP(eventID string, xp int) {
	if xp <= 0 || m.Status(eventID) != EventActive {
		return
	}
	m.progressFor(eventID).XPEarnedDuring += xp
}

// CheckBadgeUnlocks evaluates every event-scoped badge threshold against
// the event's progress. Unlocking is idempotent.
func (m *SeasonManager) CheckBadgeUnlocks(eventID string) []string {
	i, ok := m.index[eventID]
	if !ok {
		return nil
	}

	p := m.progressFor(eventID)
	var newlyUnlocked []string
	for _, badge := range m.catalog[i].Badges {
		if p.hasBadge(badge.ID) {
			continue
		}
		if p.metric(badge.Metric) >= badge.Required {
			p.EarnedBadgeIDs = append(p.EarnedBadgeIDs, badge.ID)
			newlyUnlocked = append(newlyUnlocked, badge.ID)
		}
	}
	return newlyUnlocked
}

// ClaimReward marks an event reward claimed. Returns false when the
// reward is unknown or already claimed.
func (m *SeasonManager) ClaimReward(eventID, rewardID string) bool {
	i, ok := m.index[eventID]
	if !ok {
		return false
	}

	known := false
	for _, r := range m.catalog[i].Rewards {
		if r.ID == rewardID {
			known = true
			break
		}
	}
	if !known {
		return false
	}

	p := m.progressFor(eventID)
	for _, claimed := range p.ClaimedRewardIDs {
		if claimed == rewardID {
			return false
		}
	}
	p.ClaimedRewardIDs = append(p.ClaimedRewardIDs, rewardID)
	return true
}

// GetEventMultipliers aggregates the event's multiplier features.
// Inactive or unknown events return the neutral {1, 1}. When multiple
// features share a type the last declared entry wins.
func (m *SeasonManager) GetEventMultipliers(eventID string) EventMultipliers {
	mult := EventMultipliers{XP: 1, Holo: 1}
	if m.Status(eventID) != EventActive {
		return mult
	}

	for _, f := range m.catalog[m.index[eventID]].Features {
		switch f.Type {
		case FeatureXPMultiplier:
			mult.XP = f.Value
		case FeatureHoloBonus:
			mult.Holo = f.Value
		}
	}
	return mult
}

// GetEventTimeRemaining decomposes the time until the event's window
// closes, truncating toward zero. Zero-filled when the event is not
// active.
func (m *SeasonManager) GetEventTimeRemaining(eventID string) TimeRemaining {
	if m.Status(eventID) != EventActive {
		return TimeRemaining{}
	}

	now := m.clock()
	_, end := m.catalog[m.index[eventID]].Window.forInstant(now)

	left := end.Sub(now)
	return TimeRemaining{
		Days:    int(left.Hours()) / 24,
		Hours:   int(left.Hours()) % 24,
		Minutes: int(left.Minutes()) % 60,
	}
}

// Progress returns a copy of the event's progress. Unknown or untouched
// events read as zero progress.
func (m *SeasonManager) Progress(eventID string) EventProgress {
	if p, ok := m.progress[eventID]; ok {
		out := *p
		out.EarnedBadgeIDs = append([]string(nil), p.EarnedBadgeIDs...)
		out.ClaimedRewardIDs = append([]string(nil), p.ClaimedRewardIDs...)
		return out
	}
	return EventProgress{}
}

func (m *SeasonManager) progressFor(eventID string) *EventProgress {
	p, ok := m.progress[eventID]
	if !ok {
		p = &EventProgress{}
		m.progress[eventID] = p
	}
	return p
}

// Catalog lists all events with their windows resolved against now.
func (m *SeasonManager) Catalog() []ActiveEvent {
	now := m.clock()
	out := make([]ActiveEvent, 0, len(m.catalog))
	for _, def := range m.catalog {
		start, end := def.Window.forInstant(now)
		out = append(out, m.eventView(def, start, end))
	}
	return out
}
