package repository

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRepository is the service catalog. FindActiveByID is the lookup the
// scheduler uses: deactivated services cannot be booked, but FindByID still
// resolves them so existing appointments keep their duration and price.
type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error)
	FindActiveByID(db *gorm.DB, establishmentID, id uuid.UUID) (*entity.Service, error)
	FindAll(db *gorm.DB, establishmentID uuid.UUID) ([]entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) error
	Delete(db *gorm.DB, establishmentID, id uuid.UUID) (int64, error)
}
