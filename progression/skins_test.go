package progression

import (
	"testing"
	"time"
)

func TestDefaultSkinAlwaysUnlocked(t *testing.T) {
	e := testEngine(quietDay)

	if got := e.GetCurrentSkin(); got != "classic" {
		t.Fatalf("current skin = %q, want classic", got)
	}
	skins := e.GetAllSkins()
	if !skins[0].Unlocked || !skins[0].Selected {
		t.Fatalf("default skin state: %+v", skins[0])
	}
}

func TestCheckUnlockConditions(t *testing.T) {
	e := testEngine(quietDay)

	// 50 scans satisfies the midnight skin and nothing above it
	for i := 0; i < 50; i++ {
		e.ledger.RecordScan(RarityCommon)
	}
	newly := e.skins.CheckUnlockConditions(e.counters)

	found := false
	for _, id := range newly {
		if id == "midnight" {
			found = true
		}
		if id == "collector" {
			t.Fatal("collector unlocked at 50 scans")
		}
	}
	if !found {
		t.Fatalf("midnight not unlocked, got %v", newly)
	}

	// already-unlocked ids never reappear
	again := e.skins.CheckUnlockConditions(e.counters)
	for _, id := range again {
		if id == "midnight" {
			t.Fatal("midnight returned twice")
		}
	}
}

func TestCheckUnlockConditions_CatalogOrder(t *testing.T) {
	e := testEngine(quietDay)

	// satisfy several predicates at once
	e.counters.Level = 15
	e.counters.TotalScans = 300
	e.counters.HoloCards = 30

	newly := e.skins.CheckUnlockConditions(e.counters)
	want := []string{"emerald", "midnight", "collector", "holo_foil", "royal_violet"}
	if len(newly) != len(want) {
		t.Fatalf("unlocked %v, want %v", newly, want)
	}
	for i := range want {
		if newly[i] != want[i] {
			t.Fatalf("order mismatch at %d: %v, want %v", i, newly, want)
		}
	}
}

func TestSetCurrentSkin(t *testing.T) {
	e := testEngine(quietDay)

	if e.SetCurrentSkin("emerald") {
		t.Fatal("selected a locked skin")
	}
	if e.SetCurrentSkin("not_a_skin") {
		t.Fatal("selected an unknown skin")
	}
	if got := e.GetCurrentSkin(); got != "classic" {
		t.Fatalf("selection moved to %q", got)
	}

	e.counters.Level = 5
	e.skins.CheckUnlockConditions(e.counters)
	if !e.SetCurrentSkin("emerald") {
		t.Fatal("could not select an unlocked skin")
	}
	if got := e.GetCurrentSkin(); got != "emerald" {
		t.Fatalf("current skin = %q, want emerald", got)
	}
}

func TestSeasonalSkinUnlock(t *testing.T) {
	july := time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC)
	e := testEngine(july)

	newly := e.skins.CheckUnlockConditions(e.counters)
	found := false
	for _, id := range newly {
		if id == "summer_wave" {
			found = true
		}
	}
	if !found {
		t.Fatalf("summer_wave not unlocked during festival, got %v", newly)
	}

	// outside any window nothing seasonal unlocks
	e2 := testEngine(quietDay)
	for _, id := range e2.skins.CheckUnlockConditions(e2.counters) {
		if id == "summer_wave" || id == "spooky_night" || id == "winter_frost" {
			t.Fatalf("seasonal skin %q unlocked outside its window", id)
		}
	}
}

func TestGetUnlockProgress(t *testing.T) {
	e := testEngine(quietDay)
	e.counters.TotalScans = 25

	p := e.GetSkinUnlockProgress("midnight")
	if p.Current != 25 || p.Required != 50 || p.Percentage != 50 {
		t.Fatalf("midnight progress: %+v", p)
	}

	// none and seasonal kinds have no numeric progress
	if p := e.GetSkinUnlockProgress("classic"); p != (LevelProgress{}) {
		t.Fatalf("classic progress: %+v", p)
	}
	if p := e.GetSkinUnlockProgress("summer_wave"); p != (LevelProgress{}) {
		t.Fatalf("summer_wave progress: %+v", p)
	}
	if p := e.GetSkinUnlockProgress("not_a_skin"); p != (LevelProgress{}) {
		t.Fatalf("unknown skin progress: %+v", p)
	}
}

func TestSelectedFallsBackToDefault(t *testing.T) {
	e := testEngine(quietDay)
	e.counters.Level = 5
	e.skins.CheckUnlockConditions(e.counters)
	e.SetCurrentSkin("emerald")

	// a restored profile that no longer holds the selection
	e.RestoreSkins(SkinsDocument{Version: SchemaVersion, SelectedID: "emerald"})
	if got := e.GetCurrentSkin(); got != "classic" {
		t.Fatalf("fallback skin = %q, want classic", got)
	}
}
