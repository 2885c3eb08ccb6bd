package services

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/cardex-labs/cardex_api/dto"
	"github.com/cardex-labs/cardex_api/model"
	"github.com/cardex-labs/cardex_api/shared"
)

// AssetService manages artwork for badges, skins and event banners.
// Binaries live in object storage, metadata in sqlite.
type AssetService struct {
	context.DefaultService

	sqlSvc   *SqliteService
	minioSvc *MinIOService

	urlExpiry time.Duration
}

const ASSET_SVC = "asset_svc"

var allowedAssetFolders = map[string]bool{
	shared.FolderBadges: true,
	shared.FolderSkins:  true,
	shared.FolderEvents: true,
}

func (svc AssetService) Id() string {
	return ASSET_SVC
}

func (svc *AssetService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(SQLITE_SVC).(*SqliteService)
	svc.minioSvc = ctx.Service(MINIO_SVC).(*MinIOService)
	svc.urlExpiry = time.Hour
	return svc.DefaultService.Configure(ctx)
}

func (svc *AssetService) Start() error {
	return nil
}

func (svc *AssetService) Upload(folder, referenceID string, reader io.Reader, size int64, contentType string) (*dto.UploadAssetResponse, error) {
	if !allowedAssetFolders[folder] {
		return nil, shared.NewBadRequestError("unknown asset folder")
	}
	if referenceID == "" {
		return nil, shared.NewBadRequestError("reference id is required")
	}

	objectName := fmt.Sprintf("%s/%s", folder, referenceID)

	if _, err := svc.minioSvc.UploadFile(objectName, reader, size, contentType); err != nil {
		log.WithError(err).Error("Asset upload failed")
		return nil, shared.NewInternalError("failed to store asset")
	}

	asset := model.Asset{
		ID:          uuid.New().String(),
		Folder:      folder,
		ReferenceID: referenceID,
		ObjectName:  objectName,
		ContentType: contentType,
		Size:        size,
	}

	// Re-uploads replace the existing record for the same object.
	var existing model.Asset
	err := svc.sqlSvc.Db().Where("object_name = ?", objectName).First(&existing).Error
	switch {
	case err == nil:
		existing.ContentType = contentType
		existing.Size = size
		if err := svc.sqlSvc.Db().Save(&existing).Error; err != nil {
			return nil, svc.sqlSvc.HandleError(err)
		}
		asset = existing
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := svc.sqlSvc.Db().Create(&asset).Error; err != nil {
			return nil, svc.sqlSvc.HandleError(err)
		}
	default:
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.UploadAssetResponse{
		AssetID:     asset.ID,
		Folder:      asset.Folder,
		ReferenceID: asset.ReferenceID,
		ObjectName:  asset.ObjectName,
		Size:        asset.Size,
	}, nil
}

func (svc *AssetService) GetURL(folder, referenceID string) (*dto.AssetURLResponse, error) {
	if !allowedAssetFolders[folder] {
		return nil, shared.NewBadRequestError("unknown asset folder")
	}

	var asset model.Asset
	err := svc.sqlSvc.Db().
		Where("folder = ? AND reference_id = ?", folder, referenceID).
		First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewNotFoundError("asset not found")
	}
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	url, err := svc.minioSvc.GetFileURL(asset.ObjectName, svc.urlExpiry)
	if err != nil {
		log.WithError(err).Error("Presigned URL generation failed")
		return nil, shared.NewInternalError("failed to generate asset URL")
	}

	return &dto.AssetURLResponse{
		ReferenceID: asset.ReferenceID,
		URL:         url,
		ExpiresIn:   int64(svc.urlExpiry.Seconds()),
	}, nil
}

func (svc *AssetService) Delete(folder, referenceID string) error {
	var asset model.Asset
	err := svc.sqlSvc.Db().
		Where("folder = ? AND reference_id = ?", folder, referenceID).
		First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewNotFoundError("asset not found")
	}
	if err != nil {
		return svc.sqlSvc.HandleError(err)
	}

	if err := svc.minioSvc.DeleteFile(asset.ObjectName); err != nil {
		return shared.NewInternalError("failed to delete asset")
	}

	return svc.sqlSvc.HandleError(svc.sqlSvc.Db().Delete(&asset).Error)
}
