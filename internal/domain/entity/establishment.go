package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Establishment is the tenant of the system. Every other record is scoped to
// exactly one establishment, and the authenticated identity resolves to one.
type Establishment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:establishments_email_key;not null" json:"email"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Plan      string    `gorm:"type:varchar(100)" json:"plan"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Establishment) TableName() string {
	return "establishments"
}

func (e *Establishment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
