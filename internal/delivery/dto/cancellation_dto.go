package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateCancellationRequest keeps the original API field names: motivo is
// the caller-supplied cancellation reason.
type CreateCancellationRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" validate:"required"`
	Motivo        string    `json:"motivo"`
}

// UpsertCancellationPolicyRequest carries the fee configuration. Zero is a
// legitimate value for both numbers (no notice requirement, free fixed fee),
// so the decimals carry no validate tag; non-negativity is enforced in the
// usecase.
type UpsertCancellationPolicyRequest struct {
	MinimumNoticeHours decimal.Decimal `json:"minimum_notice_hours"`
	FeeType            string          `json:"fee_type" validate:"required,oneof=PERCENTAGE FIXED"`
	FeeValue           decimal.Decimal `json:"fee_value"`
}

// Response DTOs

type CancellationResponse struct {
	ID            uuid.UUID       `json:"id"`
	AppointmentID uuid.UUID       `json:"appointment_id"`
	Reason        string          `json:"reason"`
	Fee           decimal.Decimal `json:"fee"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateCancellationResponse is the body of POST /cancellations: the record
// plus the computed fee under the contract name taxa.
type CreateCancellationResponse struct {
	Cancellation CancellationResponse `json:"cancellation"`
	Taxa         decimal.Decimal      `json:"taxa"`
}

type CancellationListResponse struct {
	Cancellations []CancellationResponse `json:"cancellations"`
	Total         int                    `json:"total"`
}

type CancellationPolicyResponse struct {
	ID                 uuid.UUID       `json:"id"`
	EstablishmentID    uuid.UUID       `json:"establishment_id"`
	MinimumNoticeHours decimal.Decimal `json:"minimum_notice_hours"`
	FeeType            string          `json:"fee_type"`
	FeeValue           decimal.Decimal `json:"fee_value"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
