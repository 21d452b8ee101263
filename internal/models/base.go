package models

import (
	"time"

	"gorm.io/gorm"

	"goalplanner/internal/uuid"
)

// Base carries the identifier and bookkeeping columns shared by every
// persisted model. Deletes are soft: GORM stamps DeletedAt and filters
// the row out of queries.
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate assigns a time-ordered UUID unless the caller picked one.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
