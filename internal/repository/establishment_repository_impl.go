package repository

import (
	"errors"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	domainRepo "github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type establishmentRepository struct{}

func NewEstablishmentRepository() domainRepo.EstablishmentRepository {
	return &establishmentRepository{}
}

func (r *establishmentRepository) Create(db *gorm.DB, establishment *entity.Establishment) error {
	return db.Create(establishment).Error
}

func (r *establishmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Establishment, error) {
	var establishment entity.Establishment
	err := db.Where("id = ?", id).First(&establishment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &establishment, nil
}

func (r *establishmentRepository) FindByEmail(db *gorm.DB, email string) (*entity.Establishment, error) {
	var establishment entity.Establishment
	err := db.Where("email = ?", email).First(&establishment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &establishment, nil
}

func (r *establishmentRepository) Update(db *gorm.DB, establishment *entity.Establishment) error {
	return db.Save(establishment).Error
}
