package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Asset represents a shared physical resource (room, chair, equipment) that
// an appointment can optionally reserve alongside the professional.
type Asset struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EstablishmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"establishment_id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	Active          bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Asset) TableName() string {
	return "assets"
}

func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
