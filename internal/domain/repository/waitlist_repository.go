package repository

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaitlistRepository queues clients for freed slots. MarkFulfilled is a
// conditional update guarded on status = ACTIVE; the returned row count tells
// the caller whether it won the claim (0 means a concurrent promoter took the
// entry first).
type WaitlistRepository interface {
	Create(db *gorm.DB, entry *entity.WaitlistEntry) error
	FindOldestActive(db *gorm.DB, establishmentID, professionalID uuid.UUID) (*entity.WaitlistEntry, error)
	MarkFulfilled(db *gorm.DB, id uuid.UUID) (int64, error)
}
