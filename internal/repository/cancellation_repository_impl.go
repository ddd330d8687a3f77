package repository

import (
	"errors"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	domainRepo "github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cancellationRepository struct{}

func NewCancellationRepository() domainRepo.CancellationRepository {
	return &cancellationRepository{}
}

func (r *cancellationRepository) Create(db *gorm.DB, cancellation *entity.Cancellation) error {
	return db.Create(cancellation).Error
}

func (r *cancellationRepository) FindAll(db *gorm.DB, establishmentID uuid.UUID) ([]entity.Cancellation, error) {
	var cancellations []entity.Cancellation
	err := db.Where("establishment_id = ?", establishmentID).
		Order("created_at DESC").
		Find(&cancellations).Error
	if err != nil {
		return nil, err
	}
	return cancellations, nil
}

type cancellationPolicyRepository struct{}

func NewCancellationPolicyRepository() domainRepo.CancellationPolicyRepository {
	return &cancellationPolicyRepository{}
}

// Upsert keeps the one-policy-per-establishment invariant by updating on
// conflict with the establishment unique index.
func (r *cancellationPolicyRepository) Upsert(db *gorm.DB, policy *entity.CancellationPolicy) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "establishment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"minimum_notice_hours", "fee_type", "fee_value", "updated_at"}),
	}).Create(policy).Error
}

func (r *cancellationPolicyRepository) FindByEstablishment(db *gorm.DB, establishmentID uuid.UUID) (*entity.CancellationPolicy, error) {
	var policy entity.CancellationPolicy
	err := db.Where("establishment_id = ?", establishmentID).First(&policy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &policy, nil
}
