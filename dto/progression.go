package dto

import (
	"github.com/cardex-labs/cardex_api/progression"
)

type ScanRequest struct {
	Rarity   string `json:"rarity" validate:"required,oneof=common holo rare ultra_rare" example:"holo"`
	CardType string `json:"card_type,omitempty" example:"water"`
}

func (s ScanRequest) Validate() error {
	return GetValidator().Struct(s)
}

type AwardXPRequest struct {
	ActionType string  `json:"action_type" validate:"required" example:"share_collection"`
	Multiplier float64 `json:"multiplier,omitempty" example:"1"`
}

func (a AwardXPRequest) Validate() error {
	return GetValidator().Struct(a)
}

type SelectSkinRequest struct {
	SkinID string `json:"skin_id" validate:"required" example:"holo_foil"`
}

func (s SelectSkinRequest) Validate() error {
	return GetValidator().Struct(s)
}

type ClaimRewardRequest struct {
	RewardID string `json:"reward_id" validate:"required" example:"summer_scanner_25"`
}

func (c ClaimRewardRequest) Validate() error {
	return GetValidator().Struct(c)
}

// ActionResponse is returned by every XP-earning operation so clients can
// surface level ups and fresh unlocks in one round trip.
type ActionResponse struct {
	XPGained       int                       `json:"xp_gained"`
	LeveledUp      bool                      `json:"leveled_up"`
	NewLevel       int                       `json:"new_level"`
	FirstScan      bool                      `json:"first_scan,omitempty"`
	Streak         int                       `json:"streak,omitempty"`
	ActiveEventID  string                    `json:"active_event_id,omitempty"`
	NewAchievement []progression.Achievement `json:"new_achievements,omitempty"`
	NewEventBadges []string                  `json:"new_event_badges,omitempty"`
	NewSkins       []string                  `json:"new_skins,omitempty"`
}

type DailyLoginResponse struct {
	Awarded bool           `json:"awarded"`
	Result  ActionResponse `json:"result"`
}

type UserStatsResponse struct {
	Stats progression.UserStats `json:"stats"`
}

type LevelProgressResponse struct {
	Progress progression.LevelProgress `json:"progress"`
}

type AchievementListResponse struct {
	Achievements []progression.Achievement `json:"achievements"`
	Total        int                       `json:"total"`
	Unlocked     int                       `json:"unlocked"`
}

type RecentUnlocksResponse struct {
	Badges []progression.Badge `json:"badges"`
}

type SkinListResponse struct {
	Skins       []progression.Skin `json:"skins"`
	CurrentSkin string             `json:"current_skin"`
}

type SkinSelectionResponse struct {
	CurrentSkin string `json:"current_skin"`
}

type SkinProgressResponse struct {
	SkinID   string                    `json:"skin_id"`
	Progress progression.LevelProgress `json:"progress"`
}

type ActiveEventResponse struct {
	Event *progression.ActiveEvent `json:"event"`
}

type EventCatalogResponse struct {
	Events []progression.ActiveEvent `json:"events"`
}

type EventTimeRemainingResponse struct {
	EventID   string                    `json:"event_id"`
	Remaining progression.TimeRemaining `json:"remaining"`
}

type EventProgressResponse struct {
	EventID  string                    `json:"event_id"`
	Progress progression.EventProgress `json:"progress"`
}

type ClaimRewardResponse struct {
	EventID  string `json:"event_id"`
	RewardID string `json:"reward_id"`
	Claimed  bool   `json:"claimed"`
}

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
}

type LeaderboardResponse struct {
	Entries  []LeaderboardEntry `json:"entries"`
	UserRank *LeaderboardEntry  `json:"user_rank,omitempty"`
}
