package converter

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
)

func WaitlistEntryToResponse(entry *entity.WaitlistEntry) *dto.WaitlistEntryResponse {
	if entry == nil {
		return nil
	}

	return &dto.WaitlistEntryResponse{
		ID:              entry.ID,
		EstablishmentID: entry.EstablishmentID,
		ClientID:        entry.ClientID,
		ProfessionalID:  entry.ProfessionalID,
		ServiceID:       entry.ServiceID,
		PreferredStart:  entry.PreferredStart,
		PreferredEnd:    entry.PreferredEnd,
		Status:          string(entry.Status),
		CreatedAt:       entry.CreatedAt,
	}
}
