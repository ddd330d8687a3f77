package converter

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
)

func SaleToResponse(sale *entity.Sale) *dto.SaleResponse {
	if sale == nil {
		return nil
	}

	return &dto.SaleResponse{
		ID:              sale.ID,
		EstablishmentID: sale.EstablishmentID,
		ClientID:        sale.ClientID,
		AppointmentID:   sale.AppointmentID,
		TotalAmount:     sale.TotalAmount,
		FinalAmount:     sale.FinalAmount,
		Status:          string(sale.Status),
		CreatedAt:       sale.CreatedAt,
	}
}

func SalesToResponses(sales []entity.Sale) []dto.SaleResponse {
	responses := make([]dto.SaleResponse, len(sales))
	for i, sale := range sales {
		responses[i] = *SaleToResponse(&sale)
	}
	return responses
}
