package services

import (
	"context"
	"fmt"
	"sync"

	appContext "github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"github.com/cardex-labs/cardex_api/dto"
	"github.com/cardex-labs/cardex_api/model"
	"github.com/cardex-labs/cardex_api/progression"
	"github.com/cardex-labs/cardex_api/shared"
)

// ProgressionService hosts one progression engine per user. Engines are
// pure in-memory state machines, this service is the line between them
// and the outside world: documents in sqlite, rankings in redis, counts
// in prometheus.
type ProgressionService struct {
	appContext.DefaultService

	sqlSvc  *SqliteService
	redis   *RedisService
	monitor *MonitoringService

	mu      sync.Mutex
	engines map[string]*progression.Engine
}

const PROGRESSION_SVC = "progression_svc"

const leaderboardKey = "leaderboard:xp"

func (svc ProgressionService) Id() string {
	return PROGRESSION_SVC
}

func (svc *ProgressionService) Configure(ctx *appContext.Context) error {
	svc.sqlSvc = ctx.Service(SQLITE_SVC).(*SqliteService)
	svc.redis = ctx.Service(REDIS_SVC).(*RedisService)
	svc.monitor = ctx.Service(MONITORING_SVC).(*MonitoringService)
	svc.engines = map[string]*progression.Engine{}
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProgressionService) Start() error {
	return nil
}

// engine returns the cached engine for a user, restoring it from the
// stored documents on first access. Callers must hold svc.mu.
func (svc *ProgressionService) engine(userID string) (*progression.Engine, error) {
	if e, ok := svc.engines[userID]; ok {
		return e, nil
	}

	e := progression.NewEngine()

	if payload, err := svc.sqlSvc.LoadDocument(userID, shared.DocumentProgress); err != nil {
		return nil, err
	} else if payload != nil {
		var doc progression.ProgressDocument
		if err := sonic.Unmarshal(payload, &doc); err != nil {
			return nil, shared.NewInternalError("corrupt progress document")
		}
		e.RestoreProgress(doc)
	}

	if payload, err := svc.sqlSvc.LoadDocument(userID, shared.DocumentSkins); err != nil {
		return nil, err
	} else if payload != nil {
		var doc progression.SkinsDocument
		if err := sonic.Unmarshal(payload, &doc); err != nil {
			return nil, shared.NewInternalError("corrupt skins document")
		}
		e.RestoreSkins(doc)
	}

	if payload, err := svc.sqlSvc.LoadDocument(userID, shared.DocumentEvents); err != nil {
		return nil, err
	} else if payload != nil {
		var doc progression.EventsDocument
		if err := sonic.Unmarshal(payload, &doc); err != nil {
			return nil, shared.NewInternalError("corrupt events document")
		}
		e.RestoreEvents(doc)
	}

	svc.engines[userID] = e
	return e, nil
}

// persist writes all three documents back and refreshes the ranking.
// Callers must hold svc.mu.
func (svc *ProgressionService) persist(userID string, e *progression.Engine) error {
	docs := []struct {
		kind string
		v    interface{}
	}{
		{shared.DocumentProgress, e.SnapshotProgress()},
		{shared.DocumentSkins, e.SnapshotSkins()},
		{shared.DocumentEvents, e.SnapshotEvents()},
	}

	for _, d := range docs {
		payload, err := sonic.Marshal(d.v)
		if err != nil {
			return shared.NewInternalError(fmt.Sprintf("failed to encode %s document", d.kind))
		}
		if err := svc.sqlSvc.SaveDocument(userID, d.kind, payload); err != nil {
			return err
		}
	}

	counters := e.Counters()
	if err := svc.redis.LeaderboardSet(context.Background(), leaderboardKey, userID, float64(counters.XP)); err != nil {
		// Ranking staleness is tolerable, losing the mutation is not.
		log.WithError(err).Warn("Leaderboard update failed")
	}

	return nil
}

// mutate runs fn against a user's engine and persists the outcome.
func (svc *ProgressionService) mutate(userID string, fn func(*progression.Engine) progression.ActionResult) (*dto.ActionResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	e, err := svc.engine(userID)
	if err != nil {
		return nil, err
	}

	result := fn(e)

	if err := svc.persist(userID, e); err != nil {
		return nil, err
	}

	svc.recordMetrics(result)
	return svc.toActionResponse(e, result), nil
}

func (svc *ProgressionService) recordMetrics(r progression.ActionResult) {
	if r.Award.LeveledUp {
		svc.monitor.RecordLevelUp()
	}
	svc.monitor.RecordUnlocks(len(r.NewAchievements), len(r.NewSkins), r.ActiveEventID, len(r.NewEventBadges))
}

func (svc *ProgressionService) toActionResponse(e *progression.Engine, r progression.ActionResult) *dto.ActionResponse {
	resp := &dto.ActionResponse{
		XPGained:       r.Award.XPGained,
		LeveledUp:      r.Award.LeveledUp,
		NewLevel:       r.Award.NewLevel,
		FirstScan:      r.FirstScan,
		Streak:         r.Streak,
		ActiveEventID:  r.ActiveEventID,
		NewEventBadges: r.NewEventBadges,
		NewSkins:       r.NewSkins,
	}

	if len(r.NewAchievements) > 0 {
		byID := map[string]progression.Achievement{}
		for _, a := range e.GetAllAchievements() {
			byID[a.ID] = a
		}
		for _, id := range r.NewAchievements {
			if a, ok := byID[id]; ok {
				resp.NewAchievement = append(resp.NewAchievement, a)
			}
		}
	}

	return resp
}

func (svc *ProgressionService) RecordScan(userID string, req dto.ScanRequest) (*dto.ActionResponse, error) {
	resp, err := svc.mutate(userID, func(e *progression.Engine) progression.ActionResult {
		return e.RecordScan(progression.Rarity(req.Rarity), req.CardType)
	})
	if err != nil {
		return nil, err
	}

	svc.monitor.RecordScan(req.Rarity)
	svc.monitor.RecordXPAward("scan", resp.XPGained)
	return resp, nil
}

func (svc *ProgressionService) AwardXP(userID string, req dto.AwardXPRequest) (*dto.ActionResponse, error) {
	multiplier := req.Multiplier
	if multiplier == 0 {
		multiplier = 1
	}

	resp, err := svc.mutate(userID, func(e *progression.Engine) progression.ActionResult {
		return e.AwardXP(req.ActionType, multiplier)
	})
	if err != nil {
		return nil, err
	}

	svc.monitor.RecordXPAward(req.ActionType, resp.XPGained)
	return resp, nil
}

func (svc *ProgressionService) CompleteSet(userID string) (*dto.ActionResponse, error) {
	resp, err := svc.mutate(userID, func(e *progression.Engine) progression.ActionResult {
		return e.CompleteSet()
	})
	if err != nil {
		return nil, err
	}

	svc.monitor.RecordXPAward(progression.ActionCompleteSet, resp.XPGained)
	return resp, nil
}

func (svc *ProgressionService) DailyLogin(userID string) (*dto.DailyLoginResponse, error) {
	var awarded bool
	resp, err := svc.mutate(userID, func(e *progression.Engine) progression.ActionResult {
		result, ok := e.DailyLogin()
		awarded = ok
		return result
	})
	if err != nil {
		return nil, err
	}

	if awarded {
		svc.monitor.RecordXPAward(progression.ActionDailyLogin, resp.XPGained)
	}

	return &dto.DailyLoginResponse{Awarded: awarded, Result: *resp}, nil
}

func (svc *ProgressionService) RecordReferral(userID string) (*dto.ActionResponse, error) {
	resp, err := svc.mutate(userID, func(e *progression.Engine) progression.ActionResult {
		return e.RecordReferral()
	})
	if err != nil {
		return nil, err
	}

	svc.monitor.RecordXPAward(progression.ActionReferral, resp.XPGained)
	return resp, nil
}

func (svc *ProgressionService) RecordShare(userID string) (*dto.ActionResponse, error) {
	resp, err := svc.mutate(userID, func(e *progression.Engine) progression.ActionResult {
		return e.RecordShare()
	})
	if err != nil {
		return nil, err
	}

	svc.monitor.RecordXPAward(progression.ActionShareCollection, resp.XPGained)
	return resp, nil
}

// query runs fn against a user's engine without persisting.
func (svc *ProgressionService) query(userID string, fn func(*progression.Engine)) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	e, err := svc.engine(userID)
	if err != nil {
		return err
	}

	fn(e)
	return nil
}

func (svc *ProgressionService) GetUserStats(userID string) (*dto.UserStatsResponse, error) {
	var resp dto.UserStatsResponse
	err := svc.query(userID, func(e *progression.Engine) {
		resp.Stats = e.GetUserStats()
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (svc *ProgressionService) GetXPForNextLevel(userID string) (*dto.LevelProgressResponse, error) {
	var resp dto.LevelProgressResponse
	err := svc.query(userID, func(e *progression.Engine) {
		resp.Progress = e.GetXPForNextLevel()
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (svc *ProgressionService) GetAchievements(userID, category string) (*dto.AchievementListResponse, error) {
	var resp dto.AchievementListResponse
	err := svc.query(userID, func(e *progression.Engine) {
		var list []progression.Achievement
		if category == "" {
			list = e.GetAllAchievements()
		} else {
			list = e.GetAchievementsByCategory(progression.AchievementCategory(category))
		}
		resp.Achievements = list
		resp.Total = len(list)
		for _, a := range list {
			if a.State.Unlocked {
				resp.Unlocked++
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (svc *ProgressionService) GetUnlockedAchievements(userID string) (*dto.AchievementListResponse, error) {
	var resp dto.AchievementListResponse
	err := svc.query(userID, func(e *progression.Engine) {
		resp.Achievements = e.GetUnlockedAchievements()
		resp.Total = len(e.GetAllAchievements())
		resp.Unlocked = len(resp.Achievements)
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (svc *ProgressionService) GetRecentUnlocks(userID string, windowDays int) (*dto.RecentUnlocksResponse, error) {
	var resp dto.RecentUnlocksResponse
	err := svc.query(userID, func(e *progression.Engine) {
		resp.Badges = e.GetRecentUnlocks(windowDays)
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (svc *ProgressionService) GetSkins(userID string) (*dto.SkinListResponse, error) {
	var resp dto.SkinListResponse
	err := svc.query(userID, func(e *progression.Engine) {
		resp.Skins = e.GetAllSkins()
		resp.CurrentSkin = e.GetCurrentSkin()
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (svc *ProgressionService) SelectSkin(userID, skinID string) (*dto.SkinSelectionResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	e, err := svc.engine(userID)
	if err != nil {
		return nil, err
	}

	if !e.SetCurrentSkin(skinID) {
		return nil, shared.NewBadRequestError("skin is unknown or locked")
	}

	if err := svc.persist(userID, e); err != nil {
		return nil, err
	}

	return &dto.SkinSelectionResponse{CurrentSkin: e.GetCurrentSkin()}, nil
}

func (svc *ProgressionService) GetSkinProgress(userID, skinID string) (*dto.SkinProgressResponse, error) {
	var resp dto.SkinProgressResponse
	err := svc.query(userID, func(e *progression.Engine) {
		resp.SkinID = skinID
		resp.Progress = e.GetSkinUnlockProgress(skinID)
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (svc *ProgressionService) GetActiveEvent(userID string) (*dto.ActiveEventResponse, error) {
	var resp dto.ActiveEventResponse
	err := svc.query(userID, func(e *progression.Engine) {
		resp.Event = e.GetActiveEvent()
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (svc *ProgressionService) GetEventCatalog(userID string) (*dto.EventCatalogResponse, error) {
	var resp dto.EventCatalogResponse
	err := svc.query(userID, func(e *progression.Engine) {
		resp.Events = e.GetEventCatalog()
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (svc *ProgressionService) GetEventTimeRemaining(userID, eventID string) (*dto.EventTimeRemainingResponse, error) {
	var resp dto.EventTimeRemainingResponse
	err := svc.query(userID, func(e *progression.Engine) {
		resp.EventID = eventID
		resp.Remaining = e.GetEventTimeRemaining(eventID)
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (svc *ProgressionService) GetEventProgress(userID, eventID string) (*dto.EventProgressResponse, error) {
	var resp dto.EventProgressResponse
	err := svc.query(userID, func(e *progression.Engine) {
		resp.EventID = eventID
		resp.Progress = e.GetEventProgress(eventID)
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (svc *ProgressionService) ClaimEventReward(userID, eventID, rewardID string) (*dto.ClaimRewardResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	e, err := svc.engine(userID)
	if err != nil {
		return nil, err
	}

	claimed := e.ClaimEventReward(eventID, rewardID)
	if claimed {
		if err := svc.persist(userID, e); err != nil {
			return nil, err
		}
	}

	return &dto.ClaimRewardResponse{
		EventID:  eventID,
		RewardID: rewardID,
		Claimed:  claimed,
	}, nil
}

// GetLeaderboard reads the redis ranking and decorates it with
// usernames and levels from sqlite.
func (svc *ProgressionService) GetLeaderboard(limit int, userID string) (*dto.LeaderboardResponse, error) {
	ctx := context.Background()

	top, err := svc.redis.LeaderboardTop(ctx, leaderboardKey, int64(limit))
	if err != nil {
		return nil, shared.NewInternalError("leaderboard unavailable")
	}

	ids := make([]string, 0, len(top))
	for _, entry := range top {
		ids = append(ids, entry.Member)
	}

	usernames := map[string]string{}
	if len(ids) > 0 {
		var users []model.User
		if err := svc.sqlSvc.Db().Where("id IN ?", ids).Find(&users).Error; err != nil {
			return nil, svc.sqlSvc.HandleError(err)
		}
		for _, u := range users {
			usernames[u.ID] = u.Username
		}
	}

	resp := &dto.LeaderboardResponse{Entries: make([]dto.LeaderboardEntry, 0, len(top))}
	for i, entry := range top {
		xp := int(entry.Score)
		resp.Entries = append(resp.Entries, dto.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   entry.Member,
			Username: usernames[entry.Member],
			XP:       xp,
			Level:    progression.LevelForXP(xp),
		})
	}

	if userID != "" {
		rank, err := svc.redis.LeaderboardRank(ctx, leaderboardKey, userID)
		if err == nil && rank >= 0 {
			score, _ := svc.redis.LeaderboardScore(ctx, leaderboardKey, userID)
			xp := int(score)
			resp.UserRank = &dto.LeaderboardEntry{
				Rank:   int(rank) + 1,
				UserID: userID,
				XP:     xp,
				Level:  progression.LevelForXP(xp),
			}
			if name, err := svc.username(userID); err == nil {
				resp.UserRank.Username = name
			}
		}
	}

	return resp, nil
}

func (svc *ProgressionService) username(userID string) (string, error) {
	var user model.User
	if err := svc.sqlSvc.Db().First(&user, "id = ?", userID).Error; err != nil {
		return "", err
	}
	return user.Username, nil
}
