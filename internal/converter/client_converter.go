package converter

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
)

func ClientToResponse(client *entity.Client) *dto.ClientResponse {
	if client == nil {
		return nil
	}

	return &dto.ClientResponse{
		ID:              client.ID,
		EstablishmentID: client.EstablishmentID,
		FullName:        client.FullName,
		Phone:           client.Phone,
		Email:           client.Email,
		BirthDate:       client.BirthDate,
		Address:         client.Address,
		EarnedIncome:    client.EarnedIncome,
		LostIncome:      client.LostIncome,
		NoShows:         client.NoShows,
		Cancellations:   client.Cancellations,
		CreatedAt:       client.CreatedAt,
		UpdatedAt:       client.UpdatedAt,
	}
}

func ClientsToResponses(clients []entity.Client) []dto.ClientResponse {
	responses := make([]dto.ClientResponse, len(clients))
	for i, client := range clients {
		responses[i] = *ClientToResponse(&client)
	}
	return responses
}
