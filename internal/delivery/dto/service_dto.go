package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceRequest struct {
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,gt=0"`
	Price           decimal.Decimal `json:"price" validate:"required"`
}

type UpdateServiceRequest struct {
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,gt=0"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	Active          *bool           `json:"active"`
}

// Response DTOs

type ServiceResponse struct {
	ID              uuid.UUID       `json:"id"`
	EstablishmentID uuid.UUID       `json:"establishment_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}
