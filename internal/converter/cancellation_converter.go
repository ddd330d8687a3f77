package converter

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
)

func CancellationToResponse(cancellation *entity.Cancellation) *dto.CancellationResponse {
	if cancellation == nil {
		return nil
	}

	return &dto.CancellationResponse{
		ID:            cancellation.ID,
		AppointmentID: cancellation.AppointmentID,
		Reason:        cancellation.Reason,
		Fee:           cancellation.Fee,
		CreatedAt:     cancellation.CreatedAt,
	}
}

func CancellationsToResponses(cancellations []entity.Cancellation) []dto.CancellationResponse {
	responses := make([]dto.CancellationResponse, len(cancellations))
	for i, cancellation := range cancellations {
		responses[i] = *CancellationToResponse(&cancellation)
	}
	return responses
}

func CancellationPolicyToResponse(policy *entity.CancellationPolicy) *dto.CancellationPolicyResponse {
	if policy == nil {
		return nil
	}

	return &dto.CancellationPolicyResponse{
		ID:                 policy.ID,
		EstablishmentID:    policy.EstablishmentID,
		MinimumNoticeHours: policy.MinimumNoticeHours,
		FeeType:            string(policy.FeeType),
		FeeValue:           policy.FeeValue,
		CreatedAt:          policy.CreatedAt,
		UpdatedAt:          policy.UpdatedAt,
	}
}
