package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cancellation records why an appointment was canceled and the fee computed
// at that moment. Immutable once written.
type Cancellation struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	EstablishmentID uuid.UUID       `gorm:"type:uuid;not null;index" json:"establishment_id"`
	AppointmentID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"appointment_id"`
	Reason          string          `gorm:"type:text" json:"reason"`
	Fee             decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"fee"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Cancellation) TableName() string {
	return "cancellations"
}

func (c *Cancellation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
