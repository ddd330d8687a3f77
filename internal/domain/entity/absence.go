package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Absence is a time-off interval for a professional (vacation, sick leave).
// It lives beside the appointment timeline and does not participate in
// conflict checks.
type Absence struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index" json:"professional_id"`
	StartTime      time.Time `gorm:"not null" json:"start_time"`
	EndTime        time.Time `gorm:"not null" json:"end_time"`
	Reason         string    `gorm:"type:text" json:"reason"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Absence) TableName() string {
	return "absences"
}

func (a *Absence) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
