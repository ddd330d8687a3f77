package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	EstablishmentID uuid.UUID  `json:"establishment_id" validate:"required"`
	ClientID        uuid.UUID  `json:"client_id" validate:"required"`
	ProfessionalID  uuid.UUID  `json:"professional_id" validate:"required"`
	ServiceID       uuid.UUID  `json:"service_id" validate:"required"`
	AssetID         *uuid.UUID `json:"asset_id"`
	StartTime       string     `json:"start_time" validate:"required"`
	Notes           string     `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	NewStartTime string `json:"new_start_time" validate:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListAppointmentsQuery mirrors the query string of GET /appointments.
// Empty fields are ignored.
type ListAppointmentsQuery struct {
	ProfessionalID string
	ClientID       string
	StartDate      string
	EndDate        string
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	EstablishmentID uuid.UUID  `json:"establishment_id"`
	ClientID        uuid.UUID  `json:"client_id"`
	ProfessionalID  uuid.UUID  `json:"professional_id"`
	ServiceID       uuid.UUID  `json:"service_id"`
	AssetID         *uuid.UUID `json:"asset_id,omitempty"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         time.Time  `json:"end_time"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
