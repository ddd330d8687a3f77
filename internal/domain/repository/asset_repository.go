package repository

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssetRepository interface {
	Create(db *gorm.DB, asset *entity.Asset) error
	FindByID(db *gorm.DB, establishmentID, id uuid.UUID) (*entity.Asset, error)
	FindAll(db *gorm.DB, establishmentID uuid.UUID) ([]entity.Asset, error)
	Update(db *gorm.DB, asset *entity.Asset) error
	Delete(db *gorm.DB, establishmentID, id uuid.UUID) (int64, error)
}
