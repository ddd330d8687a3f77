package repository

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EstablishmentRepository interface {
	Create(db *gorm.DB, establishment *entity.Establishment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Establishment, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Establishment, error)
	Update(db *gorm.DB, establishment *entity.Establishment) error
}
