package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentFilter narrows appointment listings. Nil fields are ignored.
// StartDate is inclusive and EndDate exclusive on start_time.
type AppointmentFilter struct {
	ProfessionalID *uuid.UUID
	ClientID       *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
}
