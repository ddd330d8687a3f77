package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaitlistStatus represents the lifecycle of a waitlist entry
type WaitlistStatus string

const (
	WaitlistStatusActive    WaitlistStatus = "ACTIVE"
	WaitlistStatusFulfilled WaitlistStatus = "FULFILLED"
)

// WaitlistEntry queues a client for the next freed slot of a professional.
// Entries are consumed FIFO by creation time and transition to FULFILLED
// exactly once, when promoted into an appointment.
type WaitlistEntry struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	EstablishmentID uuid.UUID      `gorm:"type:uuid;not null;index" json:"establishment_id"`
	ClientID        uuid.UUID      `gorm:"type:uuid;not null" json:"client_id"`
	ProfessionalID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_waitlist_professional_status" json:"professional_id"`
	ServiceID       uuid.UUID      `gorm:"type:uuid;not null" json:"service_id"`
	PreferredStart  *time.Time     `json:"preferred_start"`
	PreferredEnd    *time.Time     `json:"preferred_end"`
	Status          WaitlistStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index:idx_waitlist_professional_status" json:"status"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}

func (w *WaitlistEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// IsActive reports whether the entry is still eligible for promotion
func (w *WaitlistEntry) IsActive() bool {
	return w.Status == WaitlistStatusActive
}
