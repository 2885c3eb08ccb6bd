package progression

// DefaultSkinCatalog builds the static skin catalog. The first entry is
// the always-unlocked default theme.
func DefaultSkinCatalog() []SkinDefinition {
	return []SkinDefinition{
		{ID: "classic", Name: "Classic", Description: "The standard Cardex look", Predicate: SkinPredicate{Kind: PredicateNone}},
		{ID: "emerald", Name: "Emerald", Description: "Reach level 5", Predicate: SkinPredicate{Kind: PredicateLevel, Threshold: 5}},
		{ID: "midnight", Name: "Midnight", Description: "Scan 50 cards", Predicate: SkinPredicate{Kind: PredicateScans, Threshold: 50}},
		{ID: "collector", Name: "Collector", Description: "Scan 250 cards", Predicate: SkinPredicate{Kind: PredicateScans, Threshold: 250}},
		{ID: "holo_foil", Name: "Holo Foil", Description: "Collect 25 holo cards", Predicate: SkinPredicate{Kind: PredicateHoloCards, Threshold: 25}},
		{ID: "trophy_gold", Name: "Trophy Gold", Description: "Unlock 10 achievements", Predicate: SkinPredicate{Kind: PredicateAchievements, Threshold: 10}},
		{ID: "flame_streak", Name: "Flame Streak", Description: "Keep a 7 day streak", Predicate: SkinPredicate{Kind: PredicateStreak, Threshold: 7}},
		{ID: "royal_violet", Name: "Royal Violet", Description: "Reach level 15", Predicate: SkinPredicate{Kind: PredicateLevel, Threshold: 15}},
		{ID: "summer_wave", Name: "Summer Wave", Description: "Play during the Summer Festival", Predicate: SkinPredicate{Kind: PredicateSeasonal, EventID: "summer_festival"}},
		{ID: "spooky_night", Name: "Spooky Night", Description: "Play during Spooky Season", Predicate: SkinPredicate{Kind: PredicateSeasonal, EventID: "spooky_season"}},
		{ID: "winter_frost", Name: "Winter Frost", Description: "Play during the Winter Celebration", Predicate: SkinPredicate{Kind: PredicateSeasonal, EventID: "winter_celebration"}},
	}
}
