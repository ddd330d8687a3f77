package repository

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AbsenceRepository has no establishment column to scope on; absences belong
// to a professional and callers enforce tenancy through the professional.
type AbsenceRepository interface {
	Create(db *gorm.DB, absence *entity.Absence) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Absence, error)
	FindByProfessional(db *gorm.DB, professionalID uuid.UUID) ([]entity.Absence, error)
	Update(db *gorm.DB, absence *entity.Absence) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
