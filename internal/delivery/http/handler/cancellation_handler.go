package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/usecase"
	"github.com/MatheusScaranello/AgendaProBack/pkg/response"
	"github.com/MatheusScaranello/AgendaProBack/pkg/validator"
)

type CancellationHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	policyUsecase      usecase.CancellationPolicyUsecase
	validator          *validator.CustomValidator
}

func NewCancellationHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	policyUsecase usecase.CancellationPolicyUsecase,
	validator *validator.CustomValidator,
) *CancellationHandler {
	return &CancellationHandler{
		appointmentUsecase: appointmentUsecase,
		policyUsecase:      policyUsecase,
		validator:          validator,
	}
}

// CreateCancellation cancels an appointment with a reason and returns the
// record together with the fee charged under the current policy.
func (h *CancellationHandler) CreateCancellation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCancellationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.appointmentUsecase.Cancel(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrInvalidTransition:
			response.BadRequest(w, "Appointment cannot be canceled from its current status")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment canceled successfully", result)
}

func (h *CancellationHandler) ListCancellations(w http.ResponseWriter, r *http.Request) {
	cancellations, err := h.appointmentUsecase.ListCancellations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list cancellations")
		return
	}

	response.Success(w, http.StatusOK, "Cancellations retrieved successfully", cancellations)
}

func (h *CancellationHandler) UpsertPolicy(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertCancellationPolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	policy, err := h.policyUsecase.Upsert(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrNegativePolicyValue:
			response.BadRequest(w, "minimum_notice_hours and fee_value must not be negative")
		default:
			response.InternalServerError(w, "Failed to save cancellation policy")
		}
		return
	}

	response.Success(w, http.StatusOK, "Cancellation policy saved successfully", policy)
}

func (h *CancellationHandler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	policy, err := h.policyUsecase.Get(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrPolicyNotFound:
			response.NotFound(w, "Cancellation policy not found")
		default:
			response.InternalServerError(w, "Failed to get cancellation policy")
		}
		return
	}

	response.Success(w, http.StatusOK, "Cancellation policy retrieved successfully", policy)
}
