package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "SCHEDULED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCanceled  AppointmentStatus = "CANCELED"
	AppointmentStatusNoShow    AppointmentStatus = "NO_SHOW"
)

// ParseAppointmentStatus validates a raw status string from a request
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCanceled, AppointmentStatusNoShow:
		return AppointmentStatus(s), true
	}
	return "", false
}

// Appointment represents a booked service on a professional's timeline.
// EndTime is always derived from the service duration, never set by callers.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	EstablishmentID uuid.UUID         `gorm:"type:uuid;not null;index" json:"establishment_id"`
	ClientID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"client_id"`
	ProfessionalID  uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_professional_time" json:"professional_id"`
	ServiceID       uuid.UUID         `gorm:"type:uuid;not null" json:"service_id"`
	AssetID         *uuid.UUID        `gorm:"type:uuid;index" json:"asset_id"`
	StartTime       time.Time         `gorm:"not null;index:idx_appointments_professional_time" json:"start_time"`
	EndTime         time.Time         `gorm:"not null" json:"end_time"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Client  Client  `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsTerminal reports whether no further status transition is permitted
func (a *Appointment) IsTerminal() bool {
	return a.Status != AppointmentStatusScheduled
}

// CanTransitionTo reports whether the status change is a permitted transition.
// SCHEDULED is the only non-terminal state; re-entering SCHEDULED happens
// exclusively through a reschedule, never through a status transition.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.Status != AppointmentStatusScheduled {
		return false
	}
	switch next {
	case AppointmentStatusCompleted, AppointmentStatusCanceled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// Overlaps reports half-open interval overlap with [start, end).
// Back-to-back appointments sharing an endpoint do not overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}
