package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type JoinWaitlistRequest struct {
	ClientID       uuid.UUID `json:"client_id" validate:"required"`
	ProfessionalID uuid.UUID `json:"professional_id" validate:"required"`
	ServiceID      uuid.UUID `json:"service_id" validate:"required"`
	PreferredStart string    `json:"preferred_start"`
	PreferredEnd   string    `json:"preferred_end"`
}

// FillSlotRequest is the body of POST /fila-espera/preencher. The field
// names are the original API contract: inicio/fim bound the freed interval,
// valor is the slot price the caller advertises.
type FillSlotRequest struct {
	ProfissionalID uuid.UUID       `json:"profissional_id" validate:"required"`
	Inicio         string          `json:"inicio" validate:"required"`
	Fim            string          `json:"fim" validate:"required"`
	Valor          decimal.Decimal `json:"valor"`
}

// Response DTOs

type WaitlistEntryResponse struct {
	ID              uuid.UUID  `json:"id"`
	EstablishmentID uuid.UUID  `json:"establishment_id"`
	ClientID        uuid.UUID  `json:"client_id"`
	ProfessionalID  uuid.UUID  `json:"professional_id"`
	ServiceID       uuid.UUID  `json:"service_id"`
	PreferredStart  *time.Time `json:"preferred_start,omitempty"`
	PreferredEnd    *time.Time `json:"preferred_end,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

// FillSlotResponse reports whether a waitlisted client was promoted into the
// freed slot; agendamento is absent when the waitlist was empty.
type FillSlotResponse struct {
	Preenchido  bool                 `json:"preenchido"`
	Agendamento *AppointmentResponse `json:"agendamento,omitempty"`
}
