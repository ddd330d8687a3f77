package converter

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
)

func AssetToResponse(asset *entity.Asset) *dto.AssetResponse {
	if asset == nil {
		return nil
	}

	return &dto.AssetResponse{
		ID:              asset.ID,
		EstablishmentID: asset.EstablishmentID,
		Name:            asset.Name,
		Description:     asset.Description,
		Active:          asset.Active,
		CreatedAt:       asset.CreatedAt,
		UpdatedAt:       asset.UpdatedAt,
	}
}

func AssetsToResponses(assets []entity.Asset) []dto.AssetResponse {
	responses := make([]dto.AssetResponse, len(assets))
	for i, asset := range assets {
		responses[i] = *AssetToResponse(&asset)
	}
	return responses
}
