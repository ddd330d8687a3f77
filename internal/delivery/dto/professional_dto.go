package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateProfessionalRequest struct {
	FullName  string `json:"full_name" validate:"required,min=2,max=255"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	Specialty string `json:"specialty"`
}

type UpdateProfessionalRequest struct {
	FullName  string `json:"full_name" validate:"required,min=2,max=255"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	Specialty string `json:"specialty"`
	Active    *bool  `json:"active"`
}

// Response DTOs

type ProfessionalResponse struct {
	ID              uuid.UUID `json:"id"`
	EstablishmentID uuid.UUID `json:"establishment_id"`
	FullName        string    `json:"full_name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	Specialty       string    `json:"specialty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}
