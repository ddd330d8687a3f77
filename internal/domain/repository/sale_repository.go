package repository

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleRepository is the ledger the lifecycle manager writes into when an
// appointment completes.
type SaleRepository interface {
	Create(db *gorm.DB, sale *entity.Sale) error
	FindAll(db *gorm.DB, establishmentID uuid.UUID) ([]entity.Sale, error)
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Sale, error)
}
