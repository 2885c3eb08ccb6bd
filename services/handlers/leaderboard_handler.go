package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cardex-labs/cardex_api/shared"
)

type LeaderboardHandler struct {
	progressionSvc ProgressionServiceInterface
	jwtSvc         JWTServiceInterface
}

func NewLeaderboardHandler(progressionSvc ProgressionServiceInterface, jwtSvc JWTServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		progressionSvc: progressionSvc,
		jwtSvc:         jwtSvc,
	}
}

// @Summary Get XP leaderboard
// @Description Top collectors by total XP. Authenticated callers also get their own rank.
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param limit query int false "Limit results (default 50)"
// @Success 200 {object} shared.Response{data=dto.LeaderboardResponse}
// @Router /api/v1/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *fiber.Ctx) error {
	limit := 50
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	var userID string
	if authHeader := c.Get("Authorization"); authHeader != "" {
		if token, err := h.jwtSvc.ExtractTokenFromHeader(authHeader); err == nil {
			if uid, err := h.jwtSvc.VerifyJWTToken(token); err == nil {
				userID = uid
			}
		}
	}

	leaderboard, err := h.progressionSvc.GetLeaderboard(limit, userID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, leaderboard)
}
