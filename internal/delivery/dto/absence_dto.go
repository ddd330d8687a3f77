package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAbsenceRequest struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Reason    string `json:"reason"`
}

type UpdateAbsenceRequest struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Reason    string `json:"reason"`
}

// Response DTOs

type AbsenceResponse struct {
	ID             uuid.UUID `json:"id"`
	ProfessionalID uuid.UUID `json:"professional_id"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Reason         string    `json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AbsenceListResponse struct {
	Absences []AbsenceResponse `json:"absences"`
	Total    int               `json:"total"`
}
