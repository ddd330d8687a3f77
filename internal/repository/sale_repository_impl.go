package repository

import (
	"errors"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	domainRepo "github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type saleRepository struct{}

func NewSaleRepository() domainRepo.SaleRepository {
	return &saleRepository{}
}

func (r *saleRepository) Create(db *gorm.DB, sale *entity.Sale) error {
	return db.Create(sale).Error
}

func (r *saleRepository) FindAll(db *gorm.DB, establishmentID uuid.UUID) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := db.Where("establishment_id = ?", establishmentID).
		Order("created_at DESC").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := db.Where("appointment_id = ?", appointmentID).First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sale, nil
}
