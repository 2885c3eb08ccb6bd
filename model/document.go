package model

import "time"

// ProgressionDocument stores one serialized engine snapshot per user and
// kind. The engine owns the JSON shape, the row only gives it a home.
type ProgressionDocument struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index:idx_doc_user_kind,unique;not null"`
	Kind      string `gorm:"index:idx_doc_user_kind,unique;not null"`
	Payload   []byte `gorm:"type:blob"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
