package progression

// DefaultAchievementCatalog builds the static achievement catalog. It is
// constructed once at engine start-up and never mutated afterwards; only
// per-user unlock state changes.
func DefaultAchievementCatalog() []AchievementDefinition {
	scans := func(c *ProgressCounters) int { return c.TotalScans }
	holos := func(c *ProgressCounters) int { return c.HoloCards }
	rares := func(c *ProgressCounters) int { return c.RareCards }
	ultras := func(c *ProgressCounters) int { return c.UltraRareCards }
	streak := func(c *ProgressCounters) int { return c.Streak }
	sets := func(c *ProgressCounters) int { return c.SetsCompleted }
	level := func(c *ProgressCounters) int { return c.Level }
	referrals := func(c *ProgressCounters) int { return c.Referrals }
	shares := func(c *ProgressCounters) int { return c.Shares }

	return []AchievementDefinition{
		// Scanning
		{ID: "first_scan", Name: "First Catch", Description: "Scan your first card", Category: CategoryScanning, Rarity: TierCommon, Required: 1, Progress: scans},
		{ID: "scanner_10", Name: "Getting Started", Description: "Scan 10 cards", Category: CategoryScanning, Rarity: TierCommon, Required: 10, Progress: scans},
		{ID: "scanner_50", Name: "Card Hunter", Description: "Scan 50 cards", Category: CategoryScanning, Rarity: TierRare, Required: 50, Progress: scans},
		{ID: "scanner_100", Name: "Century Scanner", Description: "Scan 100 cards", Category: CategoryScanning, Rarity: TierRare, Required: 100, Progress: scans},
		{ID: "scanner_500", Name: "Scan Machine", Description: "Scan 500 cards", Category: CategoryScanning, Rarity: TierEpic, Required: 500, Progress: scans},
		{ID: "scanner_1000", Name: "Legendary Archivist", Description: "Scan 1000 cards", Category: CategoryScanning, Rarity: TierLegendary, Required: 1000, Progress: scans},

		// Rarity
		{ID: "holo_first", Name: "Shiny!", Description: "Find your first holo card", Category: CategoryRarity, Rarity: TierCommon, Required: 1, Progress: holos},
		{ID: "holo_hero_25", Name: "Holo Hero", Description: "Collect 25 holo cards", Category: CategoryRarity, Rarity: TierRare, Required: 25, Progress: holos},
		{ID: "holo_hunter_100", Name: "Holo Hunter", Description: "Collect 100 holo cards", Category: CategoryRarity, Rarity: TierEpic, Required: 100, Progress: holos},
		{ID: "rare_collector_10", Name: "Rare Collector", Description: "Collect 10 rare cards", Category: CategoryRarity, Rarity: TierRare, Required: 10, Progress: rares},
		{ID: "rare_collector_50", Name: "Rare Connoisseur", Description: "Collect 50 rare cards", Category: CategoryRarity, Rarity: TierEpic, Required: 50, Progress: rares},
		{ID: "ultra_rare_first", Name: "Jackpot", Description: "Find an ultra rare card", Category: CategoryRarity, Rarity: TierEpic, Required: 1, Progress: ultras},
		{ID: "ultra_rare_10", Name: "Ultra Instinct", Description: "Collect 10 ultra rare cards", Category: CategoryRarity, Rarity: TierLegendary, Required: 10, Progress: ultras},

		// Streaks
		{ID: "streak_3", Name: "Warming Up", Description: "Scan 3 days in a row", Category: CategoryStreaks, Rarity: TierCommon, Required: 3, Progress: streak},
		{ID: "streak_7", Name: "Week Warrior", Description: "Scan 7 days in a row", Category: CategoryStreaks, Rarity: TierRare, Required: 7, Progress: streak},
		{ID: "streak_30", Name: "Monthly Devotion", Description: "Scan 30 days in a row", Category: CategoryStreaks, Rarity: TierEpic, Required: 30, Progress: streak},
		{ID: "streak_100", Name: "Unbreakable", Description: "Scan 100 days in a row", Category: CategoryStreaks, Rarity: TierLegendary, Required: 100, Progress: streak},

		// Completion
		{ID: "set_complete_1", Name: "Set Builder", Description: "Complete your first set", Category: CategoryCompletion, Rarity: TierRare, Required: 1, Progress: sets},
		{ID: "set_complete_5", Name: "Set Architect", Description: "Complete 5 sets", Category: CategoryCompletion, Rarity: TierEpic, Required: 5, Progress: sets},
		{ID: "set_complete_10", Name: "Completionist", Description: "Complete 10 sets", Category: CategoryCompletion, Rarity: TierLegendary, Required: 10, Progress: sets},

		// Social
		{ID: "referral_1", Name: "Recruiter", Description: "Refer a friend", Category: CategorySocial, Rarity: TierCommon, Required: 1, Progress: referrals},
		{ID: "referral_5", Name: "Squad Leader", Description: "Refer 5 friends", Category: CategorySocial, Rarity: TierEpic, Required: 5, Progress: referrals},
		{ID: "share_3", Name: "Show Off", Description: "Share your collection 3 times", Category: CategorySocial, Rarity: TierCommon, Required: 3, Progress: shares},

		// Special (level milestones, also granted by level rewards)
		{ID: "level_5", Name: "Rising Star", Description: "Reach level 5", Category: CategorySpecial, Rarity: TierRare, Required: 5, Progress: level},
		{ID: "level_10", Name: "Card Master", Description: "Reach level 10", Category: CategorySpecial, Rarity: TierEpic, Required: 10, Progress: level},
		{ID: "level_15", Name: "Grand Archivist", Description: "Reach level 15", Category: CategorySpecial, Rarity: TierEpic, Required: 15, Progress: level},
		{ID: "level_20", Name: "Living Legend", Description: "Reach level 20", Category: CategorySpecial, Rarity: TierLegendary, Required: 20, Progress: level},
	}
}
