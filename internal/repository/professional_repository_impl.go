package repository

import (
	"errors"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	domainRepo "github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type professionalRepository struct{}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{}
}

func (r *professionalRepository) Create(db *gorm.DB, professional *entity.Professional) error {
	return db.Create(professional).Error
}

func (r *professionalRepository) FindByID(db *gorm.DB, establishmentID, id uuid.UUID) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.Where("id = ? AND establishment_id = ?", id, establishmentID).First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) FindAll(db *gorm.DB, establishmentID uuid.UUID) ([]entity.Professional, error) {
	var professionals []entity.Professional
	err := db.Where("establishment_id = ?", establishmentID).
		Order("full_name ASC").
		Find(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *professionalRepository) Update(db *gorm.DB, professional *entity.Professional) error {
	return db.Save(professional).Error
}

func (r *professionalRepository) Delete(db *gorm.DB, establishmentID, id uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND establishment_id = ?", id, establishmentID).Delete(&entity.Professional{})
	return result.RowsAffected, result.Error
}
