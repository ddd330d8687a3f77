package converter

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
)

func EstablishmentToResponse(establishment *entity.Establishment) *dto.EstablishmentResponse {
	if establishment == nil {
		return nil
	}

	return &dto.EstablishmentResponse{
		ID:        establishment.ID,
		Name:      establishment.Name,
		Email:     establishment.Email,
		Phone:     establishment.Phone,
		Plan:      establishment.Plan,
		CreatedAt: establishment.CreatedAt,
		UpdatedAt: establishment.UpdatedAt,
	}
}
