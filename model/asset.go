package model

import "time"

// Asset records artwork uploaded for badges, skins and event banners.
// The binary itself lives in object storage under ObjectName.
type Asset struct {
	ID          string `gorm:"primaryKey"`
	Folder      string `gorm:"index:idx_asset_folder_ref;not null"`
	ReferenceID string `gorm:"index:idx_asset_folder_ref;not null"`
	ObjectName  string `gorm:"unique;not null"`
	ContentType string
	Size        int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
