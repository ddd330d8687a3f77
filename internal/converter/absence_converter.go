package converter

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
)

func AbsenceToResponse(absence *entity.Absence) *dto.AbsenceResponse {
	if absence == nil {
		return nil
	}

	return &dto.AbsenceResponse{
		ID:             absence.ID,
		ProfessionalID: absence.ProfessionalID,
		StartTime:      absence.StartTime,
		EndTime:        absence.EndTime,
		Reason:         absence.Reason,
		CreatedAt:      absence.CreatedAt,
		UpdatedAt:      absence.UpdatedAt,
	}
}

func AbsencesToResponses(absences []entity.Absence) []dto.AbsenceResponse {
	responses := make([]dto.AbsenceResponse, len(absences))
	for i, absence := range absences {
		responses[i] = *AbsenceToResponse(&absence)
	}
	return responses
}
