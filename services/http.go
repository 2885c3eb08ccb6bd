package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/gofiber/swagger"

	docs "github.com/cardex-labs/cardex_api/docs"
	"github.com/cardex-labs/cardex_api/services/handlers"
	"github.com/cardex-labs/cardex_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc        *AuthService
	jwtSvc         *JWTService
	progressionSvc *ProgressionService
	assetSvc       *AssetService
	monitoringSvc  *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.progressionSvc = svc.Service(PROGRESSION_SVC).(*ProgressionService)
	svc.assetSvc = svc.Service(ASSET_SVC).(*AssetService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	docs.SwaggerInfo.BasePath = ""

	app := fiber.New(fiber.Config{
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(svc.requestMetrics)

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	authHandler := handlers.NewAuthHandler(svc.authSvc)
	progressionHandler := handlers.NewProgressionHandler(svc.progressionSvc)
	achievementHandler := handlers.NewAchievementHandler(svc.progressionSvc)
	skinHandler := handlers.NewSkinHandler(svc.progressionSvc)
	eventHandler := handlers.NewEventHandler(svc.progressionSvc)
	leaderboardHandler := handlers.NewLeaderboardHandler(svc.progressionSvc, svc.jwtSvc)
	assetHandler := handlers.NewAssetHandler(svc.assetSvc)

	v1 := app.Group("/api/v1")

	v1.Get("/ping", svc.ping)

	v1.Post("/register", authHandler.Register)
	v1.Post("/login", authHandler.Login)
	v1.Post("/refresh", authHandler.RefreshToken)

	v1.Get("/leaderboard", leaderboardHandler.GetLeaderboard)

	auth := v1.Group("", svc.authSvc.RequiredAuth())

	auth.Post("/progression/scan", progressionHandler.RecordScan)
	auth.Post("/progression/xp", progressionHandler.AwardXP)
	auth.Post("/progression/sets/complete", progressionHandler.CompleteSet)
	auth.Post("/progression/login-bonus", progressionHandler.DailyLogin)
	auth.Post("/progression/referral", progressionHandler.RecordReferral)
	auth.Post("/progression/share", progressionHandler.RecordShare)
	auth.Get("/progression/stats", progressionHandler.GetUserStats)
	auth.Get("/progression/level", progressionHandler.GetXPForNextLevel)

	auth.Get("/achievements", achievementHandler.GetAchievements)
	auth.Get("/achievements/unlocked", achievementHandler.GetUnlockedAchievements)
	auth.Get("/achievements/recent", achievementHandler.GetRecentUnlocks)

	auth.Get("/skins", skinHandler.GetSkins)
	auth.Put("/skins/selected", skinHandler.SelectSkin)
	auth.Get("/skins/:skin_id/progress", skinHandler.GetSkinProgress)

	auth.Get("/events", eventHandler.GetEventCatalog)
	auth.Get("/events/active", eventHandler.GetActiveEvent)
	auth.Get("/events/:event_id/time-remaining", eventHandler.GetEventTimeRemaining)
	auth.Get("/events/:event_id/progress", eventHandler.GetEventProgress)
	auth.Post("/events/:event_id/rewards/claim", eventHandler.ClaimReward)

	auth.Post("/assets/:folder/:reference_id", assetHandler.Upload)
	auth.Get("/assets/:folder/:reference_id", assetHandler.GetURL)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	svc.server = app
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) requestMetrics(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		if appErr, ok := shared.GetAppError(err); ok {
			status = appErr.StatusCode
		} else {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
	}

	svc.monitoringSvc.RecordRequest(c.Method(), c.Route().Path, strconv.Itoa(status), time.Since(start))
	return err
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
