package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Professional represents a service provider whose timeline appointments are
// booked against.
type Professional struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EstablishmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"establishment_id"`
	FullName        string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone           string    `gorm:"type:varchar(20)" json:"phone"`
	Email           string    `gorm:"type:varchar(255)" json:"email"`
	Specialty       string    `gorm:"type:varchar(255)" json:"specialty"`
	Active          bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Professional) TableName() string {
	return "professionals"
}

func (p *Professional) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
