package converter

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		EstablishmentID: appointment.EstablishmentID,
		ClientID:        appointment.ClientID,
		ProfessionalID:  appointment.ProfessionalID,
		ServiceID:       appointment.ServiceID,
		AssetID:         appointment.AssetID,
		StartTime:       appointment.StartTime,
		EndTime:         appointment.EndTime,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}
