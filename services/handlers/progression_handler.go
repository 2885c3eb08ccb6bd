package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cardex-labs/cardex_api/dto"
	"github.com/cardex-labs/cardex_api/shared"
)

type ProgressionHandler struct {
	progressionSvc ProgressionServiceInterface
}

func NewProgressionHandler(progressionSvc ProgressionServiceInterface) *ProgressionHandler {
	return &ProgressionHandler{progressionSvc: progressionSvc}
}

func userIDFromCtx(c *fiber.Ctx) string {
	userID, _ := c.Locals(shared.UserID).(string)
	return userID
}

// @Summary Record a card scan
// @Description Record a scanned card, award XP and evaluate unlocks
// @Tags progression
// @Accept json
// @Produce json
// @Security Bearer
// @Param scanRequest body dto.ScanRequest true "Scanned card details"
// @Success 200 {object} shared.Response{data=dto.ActionResponse}
// @Router /api/v1/progression/scan [post]
func (h *ProgressionHandler) RecordScan(c *fiber.Ctx) error {
	var req dto.ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.progressionSvc.RecordScan(userIDFromCtx(c), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Award XP
// @Description Award XP for a named action with an optional multiplier
// @Tags progression
// @Accept json
// @Produce json
// @Security Bearer
// @Param awardRequest body dto.AwardXPRequest true "Action and multiplier"
// @Success 200 {object} shared.Response{data=dto.ActionResponse}
// @Router /api/v1/progression/xp [post]
func (h *ProgressionHandler) AwardXP(c *fiber.Ctx) error {
	var req dto.AwardXPRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.progressionSvc.AwardXP(userIDFromCtx(c), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Complete a card set
// @Description Record a completed set and award its XP bonus
// @Tags progression
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.ActionResponse}
// @Router /api/v1/progression/sets/complete [post]
func (h *ProgressionHandler) CompleteSet(c *fiber.Ctx) error {
	resp, err := h.progressionSvc.CompleteSet(userIDFromCtx(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Claim the daily login bonus
// @Description Awards the daily login XP once per calendar day
// @Tags progression
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.DailyLoginResponse}
// @Router /api/v1/progression/login-bonus [post]
func (h *ProgressionHandler) DailyLogin(c *fiber.Ctx) error {
	resp, err := h.progressionSvc.DailyLogin(userIDFromCtx(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Record a referral
// @Description Award referral XP to the referring user
// @Tags progression
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.ActionResponse}
// @Router /api/v1/progression/referral [post]
func (h *ProgressionHandler) RecordReferral(c *fiber.Ctx) error {
	resp, err := h.progressionSvc.RecordReferral(userIDFromCtx(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Record a collection share
// @Description Award XP for sharing a collection
// @Tags progression
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.ActionResponse}
// @Router /api/v1/progression/share [post]
func (h *ProgressionHandler) RecordShare(c *fiber.Ctx) error {
	resp, err := h.progressionSvc.RecordShare(userIDFromCtx(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get user stats
// @Description Full progression snapshot for the current user
// @Tags progression
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.UserStatsResponse}
// @Router /api/v1/progression/stats [get]
func (h *ProgressionHandler) GetUserStats(c *fiber.Ctx) error {
	resp, err := h.progressionSvc.GetUserStats(userIDFromCtx(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get level progress
// @Description XP progress towards the next level
// @Tags progression
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.LevelProgressResponse}
// @Router /api/v1/progression/level [get]
func (h *ProgressionHandler) GetXPForNextLevel(c *fiber.Ctx) error {
	resp, err := h.progressionSvc.GetXPForNextLevel(userIDFromCtx(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
