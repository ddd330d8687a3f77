package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAssetRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description"`
}

type UpdateAssetRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

// Response DTOs

type AssetResponse struct {
	ID              uuid.UUID `json:"id"`
	EstablishmentID uuid.UUID `json:"establishment_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AssetListResponse struct {
	Assets []AssetResponse `json:"assets"`
	Total  int             `json:"total"`
}
