package repository

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalRepository interface {
	Create(db *gorm.DB, professional *entity.Professional) error
	FindByID(db *gorm.DB, establishmentID, id uuid.UUID) (*entity.Professional, error)
	FindAll(db *gorm.DB, establishmentID uuid.UUID) ([]entity.Professional, error)
	Update(db *gorm.DB, professional *entity.Professional) error
	Delete(db *gorm.DB, establishmentID, id uuid.UUID) (int64, error)
}
