package repository

import (
	"errors"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	domainRepo "github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type absenceRepository struct{}

func NewAbsenceRepository() domainRepo.AbsenceRepository {
	return &absenceRepository{}
}

func (r *absenceRepository) Create(db *gorm.DB, absence *entity.Absence) error {
	return db.Create(absence).Error
}

func (r *absenceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Absence, error) {
	var absence entity.Absence
	err := db.Where("id = ?", id).First(&absence).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &absence, nil
}

func (r *absenceRepository) FindByProfessional(db *gorm.DB, professionalID uuid.UUID) ([]entity.Absence, error) {
	var absences []entity.Absence
	err := db.Where("professional_id = ?", professionalID).
		Order("start_time DESC").
		Find(&absences).Error
	if err != nil {
		return nil, err
	}
	return absences, nil
}

func (r *absenceRepository) Update(db *gorm.DB, absence *entity.Absence) error {
	return db.Save(absence).Error
}

func (r *absenceRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Absence{})
	return result.RowsAffected, result.Error
}
