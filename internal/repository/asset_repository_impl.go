package repository

import (
	"errors"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	domainRepo "github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type assetRepository struct{}

func NewAssetRepository() domainRepo.AssetRepository {
	return &assetRepository{}
}

func (r *assetRepository) Create(db *gorm.DB, asset *entity.Asset) error {
	return db.Create(asset).Error
}

func (r *assetRepository) FindByID(db *gorm.DB, establishmentID, id uuid.UUID) (*entity.Asset, error) {
	var asset entity.Asset
	err := db.Where("id = ? AND establishment_id = ?", id, establishmentID).First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) FindAll(db *gorm.DB, establishmentID uuid.UUID) ([]entity.Asset, error) {
	var assets []entity.Asset
	err := db.Where("establishment_id = ?", establishmentID).
		Order("name ASC").
		Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *assetRepository) Update(db *gorm.DB, asset *entity.Asset) error {
	return db.Save(asset).Error
}

func (r *assetRepository) Delete(db *gorm.DB, establishmentID, id uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND establishment_id = ?", id, establishmentID).Delete(&entity.Asset{})
	return result.RowsAffected, result.Error
}
