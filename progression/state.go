package progression

import "time"

// SchemaVersion tags every persisted document so future catalog or
// layout changes can migrate old profiles instead of rejecting them.
const SchemaVersion = 1

// ProgressDocument is the persisted counters store, one per user.
type ProgressDocument struct {
	Version      int                  `json:"version"`
	Counters     ProgressCounters     `json:"counters"`
	Achievements map[string]time.Time `json:"achievements"`
}

// SkinsDocument is the persisted skin store: the unlocked id set plus
// the current selection.
type SkinsDocument struct {
	Version     int      `json:"version"`
	UnlockedIDs []string `json:"unlocked_ids"`
	SelectedID  string   `json:"selected_id"`
}

// EventsDocument is the persisted per-event progress map, keyed by
// event id. Entries outlive their event's window.
type EventsDocument struct {
	Version int                       `json:"version"`
	Events  map[string]*EventProgress `json:"events"`
}

func (e *Engine) SnapshotProgress() ProgressDocument {
	achievements := make(map[string]time.Time, len(e.tracker.unlocked))
	for id, at := range e.tracker.unlocked {
		achievements[id] = at
	}
	return ProgressDocument{
		Version:      SchemaVersion,
		Counters:     e.counters.Clone(),
		Achievements: achievements,
	}
}

func (e *Engine) SnapshotSkins() SkinsDocument {
	return SkinsDocument{
		Version:     SchemaVersion,
		UnlockedIDs: e.skins.UnlockedIDs(),
		SelectedID:  e.skins.CurrentSkin(),
	}
}

func (e *Engine) SnapshotEvents() EventsDocument {
	events := make(map[string]*EventProgress, len(e.seasons.progress))
	for id, p := range e.seasons.progress {
		copied := *p
		copied.EarnedBadgeIDs = append([]string(nil), p.EarnedBadgeIDs...)
		copied.ClaimedRewardIDs = append([]string(nil), p.ClaimedRewardIDs...)
		events[id] = &copied
	}
	return EventsDocument{Version: SchemaVersion, Events: events}
}

// RestoreProgress loads a persisted counters document. Missing fields
// keep their zero defaults (the caller unmarshals into a zero document,
// which is the shallow-merge the storage contract asks for); the level
// is always recomputed from XP rather than trusted.
func (e *Engine) RestoreProgress(doc ProgressDocument) {
	*e.counters = doc.Counters
	e.counters.Level = LevelForXP(e.counters.XP)

	e.tracker.unlocked = make(map[string]time.Time, len(doc.Achievements))
	for id, at := range doc.Achievements {
		if _, known := e.tracker.index[id]; known {
			e.tracker.unlocked[id] = at
		}
	}
	// counter may drift from the map when a catalog entry was retired
	e.counters.AchievementsUnlocked = len(e.tracker.unlocked)
}

// RestoreSkins loads the persisted skin store. Ids no longer in the
// catalog are dropped, the default skin stays unlocked, and a selection
// that is not in the unlocked set falls back to the default.
func (e *Engine) RestoreSkins(doc SkinsDocument) {
	e.skins.unlocked = make(map[string]bool, len(doc.UnlockedIDs)+1)
	e.skins.unlocked[e.skins.defaultID] = true
	for _, id := range doc.UnlockedIDs {
		if _, known := e.skins.index[id]; known {
			e.skins.unlocked[id] = true
		}
	}

	if e.skins.unlocked[doc.SelectedID] {
		e.skins.selected = doc.SelectedID
	} else {
		e.skins.selected = e.skins.defaultID
	}
}

// RestoreEvents loads persisted per-event progress. Entries for event
// ids missing from the catalog are kept; history is never discarded.
func (e *Engine) RestoreEvents(doc EventsDocument) {
	e.seasons.progress = make(map[string]*EventProgress, len(doc.Events))
	for id, p := range doc.Events {
		if p == nil {
			continue
		}
		copied := *p
		e.seasons.progress[id] = &copied
	}
}
