package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cardex-labs/cardex_api/shared"
)

type AchievementHandler struct {
	progressionSvc ProgressionServiceInterface
}

func NewAchievementHandler(progressionSvc ProgressionServiceInterface) *AchievementHandler {
	return &AchievementHandler{progressionSvc: progressionSvc}
}

// @Summary List achievements
// @Description All achievements with the user's progress, optionally filtered by category
// @Tags achievements
// @Accept json
// @Produce json
// @Security Bearer
// @Param category query string false "Category filter (scanning, rarity, streaks, completion, social, special)"
// @Success 200 {object} shared.Response{data=dto.AchievementListResponse}
// @Router /api/v1/achievements [get]
func (h *AchievementHandler) GetAchievements(c *fiber.Ctx) error {
	resp, err := h.progressionSvc.GetAchievements(userIDFromCtx(c), c.Query("category"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary List unlocked achievements
// @Description Achievements the user has already earned
// @Tags achievements
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.AchievementListResponse}
// @Router /api/v1/achievements/unlocked [get]
func (h *AchievementHandler) GetUnlockedAchievements(c *fiber.Ctx) error {
	resp, err := h.progressionSvc.GetUnlockedAchievements(userIDFromCtx(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary List recent unlocks
// @Description Badges earned within the given window, newest first
// @Tags achievements
// @Accept json
// @Produce json
// @Security Bearer
// @Param days query int false "Window in days (default 7)"
// @Success 200 {object} shared.Response{data=dto.RecentUnlocksResponse}
// @Router /api/v1/achievements/recent [get]
func (h *AchievementHandler) GetRecentUnlocks(c *fiber.Ctx) error {
	days := 7
	if d := c.Query("days"); d != "" {
		if parsed, err := strconv.Atoi(d); err == nil && parsed > 0 && parsed <= 365 {
			days = parsed
		}
	}

	resp, err := h.progressionSvc.GetRecentUnlocks(userIDFromCtx(c), days)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
