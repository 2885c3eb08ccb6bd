package progression

// Rarity labels produced by the scan pipeline. The engine only consumes
// them; it never decides what a card is.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityHolo      Rarity = "holo"
	RarityRare      Rarity = "rare"
	RarityUltraRare Rarity = "ultra_rare"
)

// ProgressCounters is the single shared mutable state all four engine
// components operate over. One instance per user profile, created with
// zero defaults on first use and mutated in place after that.
type ProgressCounters struct {
	Level          int `json:"level"`
	XP             int `json:"xp"`
	TotalScans     int `json:"total_scans"`
	HoloCards      int `json:"holo_cards"`
	RareCards      int `json:"rare_cards"`
	UltraRareCards int `json:"ultra_rare_cards"`
	SetsCompleted  int `json:"sets_completed"`
	Streak         int `json:"streak"`
	Referrals      int `json:"referrals"`
	Shares         int `json:"shares"`

	LastScanDate  Date `json:"last_scan_date"`
	LastLoginDate Date `json:"last_login_date"`

	AchievementsUnlocked int      `json:"achievements_unlocked"`
	EarnedTitles         []string `json:"earned_titles"`
	EarnedBadges         []string `json:"earned_badges"`
}

func NewProgressCounters() *ProgressCounters {
	return &ProgressCounters{Level: 1}
}

// Clone returns a deep copy so query surfaces never hand out live state.
func (c *ProgressCounters) Clone() ProgressCounters {
	out := *c
	out.EarnedTitles = append([]string(nil), c.EarnedTitles...)
	out.EarnedBadges = append([]string(nil), c.EarnedBadges...)
	return out
}

func (c *ProgressCounters) hasTitle(title string) bool {
	for _, t := range c.EarnedTitles {
		if t == title {
			return true
		}
	}
	return false
}

// addTitle is idempotent; level rewards may be replayed on state restore.
func (c *ProgressCounters) addTitle(title string) {
	if title == "" || c.hasTitle(title) {
		return
	}
	c.EarnedTitles = append(c.EarnedTitles, title)
}

func (c *ProgressCounters) addBadge(id string) {
	for _, b := range c.EarnedBadges {
		if b == id {
			return
		}
	}
	c.EarnedBadges = append(c.EarnedBadges, id)
}
