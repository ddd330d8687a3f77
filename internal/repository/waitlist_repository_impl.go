package repository

import (
	"errors"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	domainRepo "github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type waitlistRepository struct{}

func NewWaitlistRepository() domainRepo.WaitlistRepository {
	return &waitlistRepository{}
}

func (r *waitlistRepository) Create(db *gorm.DB, entry *entity.WaitlistEntry) error {
	return db.Create(entry).Error
}

func (r *waitlistRepository) FindOldestActive(db *gorm.DB, establishmentID, professionalID uuid.UUID) (*entity.WaitlistEntry, error) {
	var entry entity.WaitlistEntry
	err := db.Where("establishment_id = ? AND professional_id = ? AND status = ?",
		establishmentID, professionalID, entity.WaitlistStatusActive).
		Order("created_at ASC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// MarkFulfilled atomically claims the entry ONLY if it is still active.
// Returns affected rows: 1 = claimed, 0 = a concurrent promotion got there
// first (prevents double-promote race).
func (r *waitlistRepository) MarkFulfilled(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.WaitlistEntry{}).
		Where("id = ? AND status = ?", id, entity.WaitlistStatusActive).
		Update("status", entity.WaitlistStatusFulfilled)
	return result.RowsAffected, result.Error
}
