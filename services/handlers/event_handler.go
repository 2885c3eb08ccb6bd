package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cardex-labs/cardex_api/dto"
	"github.com/cardex-labs/cardex_api/shared"
)

type EventHandler struct {
	progressionSvc ProgressionServiceInterface
}

func NewEventHandler(progressionSvc ProgressionServiceInterface) *EventHandler {
	return &EventHandler{progressionSvc: progressionSvc}
}

// @Summary List seasonal events
// @Description Every configured seasonal event with its current status
// @Tags events
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.EventCatalogResponse}
// @Router /api/v1/events [get]
func (h *EventHandler) GetEventCatalog(c *fiber.Ctx) error {
	resp, err := h.progressionSvc.GetEventCatalog(userIDFromCtx(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get the active event
// @Description The seasonal event currently running, null outside event windows
// @Tags events
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.ActiveEventResponse}
// @Router /api/v1/events/active [get]
func (h *EventHandler) GetActiveEvent(c *fiber.Ctx) error {
	resp, err := h.progressionSvc.GetActiveEvent(userIDFromCtx(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get event time remaining
// @Description Days, hours and minutes until the event window closes
// @Tags events
// @Accept json
// @Produce json
// @Security Bearer
// @Param event_id path string true "Event ID"
// @Success 200 {object} shared.Response{data=dto.EventTimeRemainingResponse}
// @Router /api/v1/events/{event_id}/time-remaining [get]
func (h *EventHandler) GetEventTimeRemaining(c *fiber.Ctx) error {
	resp, err := h.progressionSvc.GetEventTimeRemaining(userIDFromCtx(c), c.Params("event_id"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get event progress
// @Description The user's accumulated progress for an event
// @Tags events
// @Accept json
// @Produce json
// @Security Bearer
// @Param event_id path string true "Event ID"
// @Success 200 {object} shared.Response{data=dto.EventProgressResponse}
// @Router /api/v1/events/{event_id}/progress [get]
func (h *EventHandler) GetEventProgress(c *fiber.Ctx) error {
	resp, err := h.progressionSvc.GetEventProgress(userIDFromCtx(c), c.Params("event_id"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Claim an event reward
// @Description Claim a reward once its requirement is met during the event
// @Tags events
// @Accept json
// @Produce json
// @Security Bearer
// @Param event_id path string true "Event ID"
// @Param claimRequest body dto.ClaimRewardRequest true "Reward to claim"
// @Success 200 {object} shared.Response{data=dto.ClaimRewardResponse}
// @Router /api/v1/events/{event_id}/rewards/claim [post]
func (h *EventHandler) ClaimReward(c *fiber.Ctx) error {
	var req dto.ClaimRewardRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.progressionSvc.ClaimEventReward(userIDFromCtx(c), c.Params("event_id"), req.RewardID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
