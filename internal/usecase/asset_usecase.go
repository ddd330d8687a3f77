package usecase

import (
	"context"

	"github.com/MatheusScaranello/AgendaProBack/internal/converter"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/http/middleware"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AssetUsecase manages bookable resources like rooms and chairs. Assets are
// optional on appointments, but once attached they contend for slots the same
// way professionals do.
type AssetUsecase interface {
	Create(ctx context.Context, req *dto.CreateAssetRequest) (*dto.AssetResponse, error)
	List(ctx context.Context) (*dto.AssetListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AssetResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAssetRequest) (*dto.AssetResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type assetUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	assetRepo repository.AssetRepository
}

func NewAssetUsecase(db *gorm.DB, log *logrus.Logger, assetRepo repository.AssetRepository) AssetUsecase {
	return &assetUsecase{db: db, log: log, assetRepo: assetRepo}
}

func (u *assetUsecase) Create(ctx context.Context, req *dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	asset := &entity.Asset{
		EstablishmentID: establishmentID,
		Name:            req.Name,
		Description:     req.Description,
		Active:          true,
	}

	if err := u.assetRepo.Create(u.db.WithContext(ctx), asset); err != nil {
		u.log.Warnf("Failed to create asset: %+v", err)
		return nil, err
	}

	return converter.AssetToResponse(asset), nil
}

func (u *assetUsecase) List(ctx context.Context) (*dto.AssetListResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	assets, err := u.assetRepo.FindAll(u.db.WithContext(ctx), establishmentID)
	if err != nil {
		u.log.Warnf("Failed to list assets: %+v", err)
		return nil, err
	}

	return &dto.AssetListResponse{
		Assets: converter.AssetsToResponses(assets),
		Total:  len(assets),
	}, nil
}

func (u *assetUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AssetResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	asset, err := u.assetRepo.FindByID(u.db.WithContext(ctx), establishmentID, id)
	if err != nil {
		u.log.Warnf("Failed to find asset %s: %+v", id, err)
		return nil, err
	}
	if asset == nil {
		return nil, ErrAssetNotFound
	}

	return converter.AssetToResponse(asset), nil
}

func (u *assetUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	asset, err := u.assetRepo.FindByID(u.db.WithContext(ctx), establishmentID, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, ErrAssetNotFound
	}

	asset.Name = req.Name
	asset.Description = req.Description
	if req.Active != nil {
		asset.Active = *req.Active
	}

	if err := u.assetRepo.Update(u.db.WithContext(ctx), asset); err != nil {
		u.log.Warnf("Failed to update asset %s: %+v", id, err)
		return nil, err
	}

	return converter.AssetToResponse(asset), nil
}

func (u *assetUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return ErrNoEstablishmentInContext
	}

	rows, err := u.assetRepo.Delete(u.db.WithContext(ctx), establishmentID, id)
	if err != nil {
		u.log.Warnf("Failed to delete asset %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrAssetNotFound
	}
	return nil
}
