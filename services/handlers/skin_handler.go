package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cardex-labs/cardex_api/dto"
	"github.com/cardex-labs/cardex_api/shared"
)

type SkinHandler struct {
	progressionSvc ProgressionServiceInterface
}

func NewSkinHandler(progressionSvc ProgressionServiceInterface) *SkinHandler {
	return &SkinHandler{progressionSvc: progressionSvc}
}

// @Summary List skins
// @Description All card skins with unlock state and the current selection
// @Tags skins
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.SkinListResponse}
// @Router /api/v1/skins [get]
func (h *SkinHandler) GetSkins(c *fiber.Ctx) error {
	resp, err := h.progressionSvc.GetSkins(userIDFromCtx(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Select a skin
// @Description Set the active card skin, must already be unlocked
// @Tags skins
// @Accept json
// @Produce json
// @Security Bearer
// @Param selectRequest body dto.SelectSkinRequest true "Skin to select"
// @Success 200 {object} shared.Response{data=dto.SkinSelectionResponse}
// @Router /api/v1/skins/selected [put]
func (h *SkinHandler) SelectSkin(c *fiber.Ctx) error {
	var req dto.SelectSkinRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.progressionSvc.SelectSkin(userIDFromCtx(c), req.SkinID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}

// @Summary Get skin unlock progress
// @Description Progress towards unlocking a threshold-based skin
// @Tags skins
// @Accept json
// @Produce json
// @Security Bearer
// @Param skin_id path string true "Skin ID"
// @Success 200 {object} shared.Response{data=dto.SkinProgressResponse}
// @Router /api/v1/skins/{skin_id}/progress [get]
func (h *SkinHandler) GetSkinProgress(c *fiber.Ctx) error {
	resp, err := h.progressionSvc.GetSkinProgress(userIDFromCtx(c), c.Params("skin_id"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
