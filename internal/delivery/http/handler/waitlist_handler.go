package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/usecase"
	"github.com/MatheusScaranello/AgendaProBack/pkg/response"
	"github.com/MatheusScaranello/AgendaProBack/pkg/validator"
)

type WaitlistHandler struct {
	waitlistUsecase usecase.WaitlistUsecase
	validator       *validator.CustomValidator
}

func NewWaitlistHandler(waitlistUsecase usecase.WaitlistUsecase, validator *validator.CustomValidator) *WaitlistHandler {
	return &WaitlistHandler{
		waitlistUsecase: waitlistUsecase,
		validator:       validator,
	}
}

func (h *WaitlistHandler) JoinWaitlist(w http.ResponseWriter, r *http.Request) {
	var req dto.JoinWaitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.waitlistUsecase.Join(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found or inactive")
		case usecase.ErrInvalidStartTime:
			response.BadRequest(w, "Invalid preferred window, use RFC 3339 format")
		case usecase.ErrInvalidPreferredWindow:
			response.BadRequest(w, "preferred_end must be after preferred_start")
		default:
			response.InternalServerError(w, "Failed to join waitlist")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Waitlist entry created successfully", entry)
}

// FillSlot promotes the oldest waiting client of a professional into the
// freed interval. An empty waitlist still answers 200 with preenchido=false.
func (h *WaitlistHandler) FillSlot(w http.ResponseWriter, r *http.Request) {
	var req dto.FillSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.waitlistUsecase.Fill(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrInvalidStartTime:
			response.BadRequest(w, "Invalid inicio/fim, use RFC 3339 format")
		case usecase.ErrInvalidSlotInterval:
			response.BadRequest(w, "fim must be after inicio")
		default:
			response.InternalServerError(w, "Failed to fill slot from waitlist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Waitlist processed successfully", result)
}
