package repository

import (
	"errors"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	domainRepo "github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type clientRepository struct{}

func NewClientRepository() domainRepo.ClientRepository {
	return &clientRepository{}
}

func (r *clientRepository) Create(db *gorm.DB, client *entity.Client) error {
	return db.Create(client).Error
}

func (r *clientRepository) FindByID(db *gorm.DB, establishmentID, id uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := db.Where("id = ? AND establishment_id = ?", id, establishmentID).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindAll(db *gorm.DB, establishmentID uuid.UUID) ([]entity.Client, error) {
	var clients []entity.Client
	err := db.Where("establishment_id = ?", establishmentID).
		Order("full_name ASC").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) Update(db *gorm.DB, client *entity.Client) error {
	return db.Save(client).Error
}

func (r *clientRepository) Delete(db *gorm.DB, establishmentID, id uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND establishment_id = ?", id, establishmentID).Delete(&entity.Client{})
	return result.RowsAffected, result.Error
}

func (r *clientRepository) IncrementEarnedIncome(db *gorm.DB, id uuid.UUID, amount decimal.Decimal) error {
	return db.Model(&entity.Client{}).
		Where("id = ?", id).
		Update("earned_income", gorm.Expr("earned_income + ?", amount)).Error
}

func (r *clientRepository) IncrementNoShow(db *gorm.DB, id uuid.UUID, lostAmount decimal.Decimal) error {
	return db.Model(&entity.Client{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"no_shows":    gorm.Expr("no_shows + 1"),
			"lost_income": gorm.Expr("lost_income + ?", lostAmount),
		}).Error
}

func (r *clientRepository) IncrementCancellations(db *gorm.DB, id uuid.UUID) error {
	return db.Model(&entity.Client{}).
		Where("id = ?", id).
		Update("cancellations", gorm.Expr("cancellations + 1")).Error
}
