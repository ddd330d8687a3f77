package repository

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClientRepository persists clients and their lifecycle metric counters.
// The increment methods run SQL expressions so concurrent transitions never
// lose updates.
type ClientRepository interface {
	Create(db *gorm.DB, client *entity.Client) error
	FindByID(db *gorm.DB, establishmentID, id uuid.UUID) (*entity.Client, error)
	FindAll(db *gorm.DB, establishmentID uuid.UUID) ([]entity.Client, error)
	Update(db *gorm.DB, client *entity.Client) error
	Delete(db *gorm.DB, establishmentID, id uuid.UUID) (int64, error)
	IncrementEarnedIncome(db *gorm.DB, id uuid.UUID, amount decimal.Decimal) error
	IncrementNoShow(db *gorm.DB, id uuid.UUID, lostAmount decimal.Decimal) error
	IncrementCancellations(db *gorm.DB, id uuid.UUID) error
}
