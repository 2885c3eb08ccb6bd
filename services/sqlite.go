package services

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cardex-labs/cardex_api/model"
	"github.com/cardex-labs/cardex_api/shared"
)

type SqliteService struct {
	context.DefaultService
	db *gorm.DB

	database string
}

const SQLITE_SVC = "sqlite_svc"

// Id returns Service ID
func (ds SqliteService) Id() string {
	return SQLITE_SVC
}

// Db Access to raw SqliteService db
func (ds SqliteService) Db() *gorm.DB {
	return ds.db
}

// Configure the service
func (ds *SqliteService) Configure(ctx *context.Context) error {
	ds.database = os.Getenv("DB_DATABASE")
	if ds.database == "" {
		ds.database = "cardex.db"
	}

	return ds.DefaultService.Configure(ctx)
}

// Start the service and open connection to the database
// Migrate any tables that have changed since last runtime
func (ds *SqliteService) Start() (err error) {
	ds.db, err = gorm.Open(sqlite.Open(ds.database), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return err
	}

	models := []interface{}{
		&model.User{},
		&model.ProgressionDocument{},
		&model.Asset{},
	}

	err = ds.db.AutoMigrate(models...)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *SqliteService) Shutdown() {
}

// LoadDocument returns the stored payload for a user and kind, or
// (nil, nil) when the user has no document of that kind yet.
func (ds *SqliteService) LoadDocument(userID, kind string) ([]byte, error) {
	var doc model.ProgressionDocument
	err := ds.db.Where("user_id = ? AND kind = ?", userID, kind).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return doc.Payload, nil
}

// SaveDocument upserts the payload for a user and kind.
func (ds *SqliteService) SaveDocument(userID, kind string, payload []byte) error {
	var doc model.ProgressionDocument
	err := ds.db.Where("user_id = ? AND kind = ?", userID, kind).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		doc = model.ProgressionDocument{
			ID:      uuid.New().String(),
			UserID:  userID,
			Kind:    kind,
			Payload: payload,
		}
		return ds.HandleError(ds.db.Create(&doc).Error)
	}
	if err != nil {
		return ds.HandleError(err)
	}

	doc.Payload = payload
	doc.UpdatedAt = time.Now()
	return ds.HandleError(ds.db.Save(&doc).Error)
}

func (ds *SqliteService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *shared.AppError
	var errorType string

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		appErr = shared.NewNotFoundError("record not found")
		errorType = "NOT_FOUND"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		appErr = shared.NewConflictError("record already exists")
		errorType = "CONFLICT"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		appErr = shared.NewBadRequestError("related record missing")
		errorType = "FOREIGN_KEY_VIOLATION"
	default:
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			appErr = shared.NewConflictError("record already exists")
			errorType = "UNIQUE_CONSTRAINT"
		} else {
			appErr = shared.NewInternalError("database error")
			errorType = "INTERNAL_ERROR"
		}
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": appErr.StatusCode,
		"error_type":  errorType,
		"error":       err.Error(),
	})

	if appErr.StatusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	return appErr
}
