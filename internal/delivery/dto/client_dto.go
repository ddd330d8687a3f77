package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateClientRequest struct {
	FullName  string `json:"full_name" validate:"required,min=2,max=255"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	BirthDate string `json:"birth_date"`
	Address   string `json:"address"`
}

type UpdateClientRequest struct {
	FullName  string `json:"full_name" validate:"required,min=2,max=255"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	BirthDate string `json:"birth_date"`
	Address   string `json:"address"`
}

// Response DTOs

type ClientResponse struct {
	ID              uuid.UUID       `json:"id"`
	EstablishmentID uuid.UUID       `json:"establishment_id"`
	FullName        string          `json:"full_name"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	BirthDate       *time.Time      `json:"birth_date,omitempty"`
	Address         string          `json:"address"`
	EarnedIncome    decimal.Decimal `json:"earned_income"`
	LostIncome      decimal.Decimal `json:"lost_income"`
	NoShows         int             `json:"no_shows"`
	Cancellations   int             `json:"cancellations"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}
