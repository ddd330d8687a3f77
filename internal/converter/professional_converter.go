package converter

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
)

func ProfessionalToResponse(professional *entity.Professional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}

	return &dto.ProfessionalResponse{
		ID:              professional.ID,
		EstablishmentID: professional.EstablishmentID,
		FullName:        professional.FullName,
		Phone:           professional.Phone,
		Email:           professional.Email,
		Specialty:       professional.Specialty,
		Active:          professional.Active,
		CreatedAt:       professional.CreatedAt,
		UpdatedAt:       professional.UpdatedAt,
	}
}

func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i, professional := range professionals {
		responses[i] = *ProfessionalToResponse(&professional)
	}
	return responses
}
