package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cardex-labs/cardex_api/shared"
)

type AssetHandler struct {
	assetSvc AssetServiceInterface
}

func NewAssetHandler(assetSvc AssetServiceInterface) *AssetHandler {
	return &AssetHandler{assetSvc: assetSvc}
}

// @Summary Upload unlockable artwork
// @Description Store badge, skin or event artwork in object storage
// @Tags assets
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param folder path string true "Asset folder (badges, skins, events)"
// @Param reference_id path string true "Badge, skin or event ID"
// @Param file formData file true "Image file"
// @Success 201 {object} shared.Response{data=dto.UploadAssetResponse}
// @Router /api/v1/assets/{folder}/{reference_id} [post]
func (h *AssetHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError("file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return shared.NewBadRequestError("could not read file")
	}
	defer file.Close()

	resp, err := h.assetSvc.Upload(
		c.Params("folder"),
		c.Params("reference_id"),
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		return err
	}

	return shared.ResponseCreated(c, resp)
}

// @Summary Get artwork URL
// @Description Presigned download URL for badge, skin or event artwork
// @Tags assets
// @Accept json
// @Produce json
// @Security Bearer
// @Param folder path string true "Asset folder (badges, skins, events)"
// @Param reference_id path string true "Badge, skin or event ID"
// @Success 200 {object} shared.Response{data=dto.AssetURLResponse}
// @Router /api/v1/assets/{folder}/{reference_id} [get]
func (h *AssetHandler) GetURL(c *fiber.Ctx) error {
	resp, err := h.assetSvc.GetURL(c.Params("folder"), c.Params("reference_id"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, resp)
}
