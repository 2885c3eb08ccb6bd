package services

import (
	"errors"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cardex-labs/cardex_api/dto"
	"github.com/cardex-labs/cardex_api/model"
	"github.com/cardex-labs/cardex_api/shared"
)

type AuthService struct {
	context.DefaultService

	sqlSvc *SqliteService
	jwtSvc *JWTService
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(SQLITE_SVC).(*SqliteService)
	svc.jwtSvc = ctx.Service(JWT_SVC).(*JWTService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	return nil
}

func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	var existing model.User
	err := svc.sqlSvc.Db().
		Where("email = ? OR username = ?", email, username).
		First(&existing).Error
	if err == nil {
		return nil, shared.NewConflictError("email or username already taken")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svc.sqlSvc.HandleError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.NewInternalError("failed to hash password")
	}

	user := model.User{
		ID:       uuid.New().String(),
		Email:    email,
		Username: username,
		Password: string(hash),
	}

	if err := svc.sqlSvc.Db().Create(&user).Error; err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.WithField("user_id", user.ID).Info("User registered")

	return &dto.RegisterResponse{
		UserID:    user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (svc *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	identifier := strings.ToLower(strings.TrimSpace(req.EmailOrUsername))

	var user model.User
	err := svc.sqlSvc.Db().
		Where("email = ? OR username = ?", identifier, req.EmailOrUsername).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewUnauthorizedError("invalid credentials")
	}
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, shared.NewUnauthorizedError("invalid credentials")
	}

	tokens, err := svc.jwtSvc.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, shared.NewInternalError("failed to issue tokens")
	}

	svc.sqlSvc.Db().Model(&user).Update("last_login", time.Now())

	return &dto.LoginResponse{
		UserID:    user.ID,
		Username:  user.Username,
		TokenPair: *tokens,
	}, nil
}

func (svc *AuthService) RefreshToken(req dto.RefreshTokenRequest) (*dto.LoginResponse, error) {
	userID, err := svc.jwtSvc.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.NewUnauthorizedError("invalid refresh token")
	}

	var user model.User
	if err := svc.sqlSvc.Db().First(&user, "id = ?", userID).Error; err != nil {
		return nil, shared.NewUnauthorizedError("invalid refresh token")
	}

	tokens, err := svc.jwtSvc.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, shared.NewInternalError("failed to issue tokens")
	}

	return &dto.LoginResponse{
		UserID:    user.ID,
		Username:  user.Username,
		TokenPair: *tokens,
	}, nil
}

func (svc *AuthService) GetUsername(userID string) (string, error) {
	var user model.User
	if err := svc.sqlSvc.Db().First(&user, "id = ?", userID).Error; err != nil {
		return "", svc.sqlSvc.HandleError(err)
	}
	return user.Username, nil
}

// RequiredAuth rejects the request unless a valid access token is
// presented, and stashes the user id in ctx locals for handlers.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.jwtSvc.ExtractTokenFromHeader(c.Get("Authorization"))
		if err != nil {
			return shared.ResponseUnauthorized(c)
		}

		userID, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil || userID == "" {
			return shared.ResponseUnauthorized(c)
		}

		c.Locals(shared.UserID, userID)
		return c.Next()
	}
}
