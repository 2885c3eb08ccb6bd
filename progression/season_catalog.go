package progression

import "time"

// DefaultSeasonCatalog builds the static seasonal event catalog. Windows
// recur yearly and do not overlap; each year produces a distinct logical
// activation of the same event id.
func DefaultSeasonCatalog() []SeasonalEventDefinition {
	return []SeasonalEventDefinition{
		{
			ID:     "summer_festival",
			Name:   "Summer Festival",
			Window: EventWindow{StartMonth: time.June, StartDay: 1, EndMonth: time.July, EndDay: 31},
			Features: []EventFeature{
				{Type: FeatureXPMultiplier, Value: 2.0},
				{Type: FeatureHoloBonus, Value: 1.5},
			},
			Rewards: []EventReward{
				{ID: "summer_frame", Name: "Sunburst Card Frame"},
				{ID: "summer_title", Name: "Beach Comber Title"},
			},
			Badges: []EventBadge{
				{ID: "summer_scanner_25", Name: "Summer Scanner", Metric: MetricEventScans, Required: 25},
				{ID: "summer_special_10", Name: "Tide Chaser", Metric: MetricEventSpecialCards, Required: 10},
				{ID: "summer_xp_1000", Name: "Solar Powered", Metric: MetricEventXP, Required: 1000},
			},
			Affinity: []string{"water", "fire"},
		},
		{
			ID:     "spooky_season",
			Name:   "Spooky Season",
			Window: EventWindow{StartMonth: time.October, StartDay: 1, EndMonth: time.October, EndDay: 31},
			Features: []EventFeature{
				{Type: FeatureXPMultiplier, Value: 1.5},
			},
			Rewards: []EventReward{
				{ID: "spooky_frame", Name: "Haunted Card Frame"},
			},
			Badges: []EventBadge{
				{ID: "spooky_scanner_31", Name: "Night Stalker", Metric: MetricEventScans, Required: 31},
				{ID: "spooky_special_13", Name: "Ghost Whisperer", Metric: MetricEventSpecialCards, Required: 13},
			},
			Affinity: []string{"ghost", "dark", "psychic"},
		},
		{
			ID:     "winter_celebration",
			Name:   "Winter Celebration",
			Window: EventWindow{StartMonth: time.December, StartDay: 1, EndMonth: time.January, EndDay: 6},
			Features: []EventFeature{
				{Type: FeatureXPMultiplier, Value: 2.0},
				{Type: FeatureHoloBonus, Value: 2.0},
			},
			Rewards: []EventReward{
				{ID: "winter_frame", Name: "Frosted Card Frame"},
				{ID: "winter_title", Name: "Snow Drifter Title"},
			},
			Badges: []EventBadge{
				{ID: "winter_scanner_50", Name: "Blizzard Scanner", Metric: MetricEventScans, Required: 50},
				{ID: "winter_special_12", Name: "Ice Sculptor", Metric: MetricEventSpecialCards, Required: 12},
			},
			Affinity: []string{"ice", "water"},
		},
	}
}
