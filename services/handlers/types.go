package handlers

import (
	"io"

	"github.com/cardex-labs/cardex_api/dto"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(req dto.RefreshTokenRequest) (*dto.LoginResponse, error)
}

type JWTServiceInterface interface {
	ExtractTokenFromHeader(authHeader string) (string, error)
	VerifyJWTToken(token string) (string, error)
}

type ProgressionServiceInterface interface {
	RecordScan(userID string, req dto.ScanRequest) (*dto.ActionResponse, error)
	AwardXP(userID string, req dto.AwardXPRequest) (*dto.ActionResponse, error)
	CompleteSet(userID string) (*dto.ActionResponse, error)
	DailyLogin(userID string) (*dto.DailyLoginResponse, error)
	RecordReferral(userID string) (*dto.ActionResponse, error)
	RecordShare(userID string) (*dto.ActionResponse, error)
	GetUserStats(userID string) (*dto.UserStatsResponse, error)
	GetXPForNextLevel(userID string) (*dto.LevelProgressResponse, error)
	GetAchievements(userID, category string) (*dto.AchievementListResponse, error)
	GetUnlockedAchievements(userID string) (*dto.AchievementListResponse, error)
	GetRecentUnlocks(userID string, windowDays int) (*dto.RecentUnlocksResponse, error)
	GetSkins(userID string) (*dto.SkinListResponse, error)
	SelectSkin(userID, skinID string) (*dto.SkinSelectionResponse, error)
	GetSkinProgress(userID, skinID string) (*dto.SkinProgressResponse, error)
	GetActiveEvent(userID string) (*dto.ActiveEventResponse, error)
	GetEventCatalog(userID string) (*dto.EventCatalogResponse, error)
	GetEventTimeRemaining(userID, eventID string) (*dto.EventTimeRemainingResponse, error)
	GetEventProgress(userID, eventID string) (*dto.EventProgressResponse, error)
	ClaimEventReward(userID, eventID, rewardID string) (*dto.ClaimRewardResponse, error)
	GetLeaderboard(limit int, userID string) (*dto.LeaderboardResponse, error)
}

type AssetServiceInterface interface {
	Upload(folder, referenceID string, reader io.Reader, size int64, contentType string) (*dto.UploadAssetResponse, error)
	GetURL(folder, referenceID string) (*dto.AssetURLResponse, error)
}
