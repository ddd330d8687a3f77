package repository

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CancellationRepository persists immutable cancellation records.
type CancellationRepository interface {
	Create(db *gorm.DB, cancellation *entity.Cancellation) error
	FindAll(db *gorm.DB, establishmentID uuid.UUID) ([]entity.Cancellation, error)
}

// CancellationPolicyRepository resolves the single policy of an
// establishment; a nil policy means cancellations are free.
type CancellationPolicyRepository interface {
	Upsert(db *gorm.DB, policy *entity.CancellationPolicy) error
	FindByEstablishment(db *gorm.DB, establishmentID uuid.UUID) (*entity.CancellationPolicy, error)
}
