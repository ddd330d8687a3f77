package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleResponse struct {
	ID              uuid.UUID       `json:"id"`
	EstablishmentID uuid.UUID       `json:"establishment_id"`
	ClientID        uuid.UUID       `json:"client_id"`
	AppointmentID   *uuid.UUID      `json:"appointment_id,omitempty"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	FinalAmount     decimal.Decimal `json:"final_amount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	Total int            `json:"total"`
}
