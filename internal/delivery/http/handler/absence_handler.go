package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/usecase"
	"github.com/MatheusScaranello/AgendaProBack/pkg/response"
	"github.com/MatheusScaranello/AgendaProBack/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AbsenceHandler struct {
	absenceUsecase usecase.AbsenceUsecase
	validator      *validator.CustomValidator
}

func NewAbsenceHandler(absenceUsecase usecase.AbsenceUsecase, validator *validator.CustomValidator) *AbsenceHandler {
	return &AbsenceHandler{
		absenceUsecase: absenceUsecase,
		validator:      validator,
	}
}

func (h *AbsenceHandler) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["professional_id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	var req dto.CreateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	absence, err := h.absenceUsecase.Create(r.Context(), professionalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrInvalidStartTime:
			response.BadRequest(w, "Invalid start_time or end_time, use RFC 3339 format")
		case usecase.ErrInvalidAbsenceInterval:
			response.BadRequest(w, "end_time must be after start_time")
		default:
			response.InternalServerError(w, "Failed to create absence")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Absence created successfully", absence)
}

func (h *AbsenceHandler) ListAbsences(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["professional_id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	absences, err := h.absenceUsecase.ListByProfessional(r.Context(), professionalID)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to list absences")
		}
		return
	}

	response.Success(w, http.StatusOK, "Absences retrieved successfully", absences)
}

func (h *AbsenceHandler) UpdateAbsence(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	absenceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid absence ID", nil)
		return
	}

	var req dto.UpdateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	absence, err := h.absenceUsecase.Update(r.Context(), absenceID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAbsenceNotFound:
			response.NotFound(w, "Absence not found")
		case usecase.ErrInvalidStartTime:
			response.BadRequest(w, "Invalid start_time or end_time, use RFC 3339 format")
		case usecase.ErrInvalidAbsenceInterval:
			response.BadRequest(w, "end_time must be after start_time")
		default:
			response.InternalServerError(w, "Failed to update absence")
		}
		return
	}

	response.Success(w, http.StatusOK, "Absence updated successfully", absence)
}

func (h *AbsenceHandler) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	absenceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid absence ID", nil)
		return
	}

	err = h.absenceUsecase.Delete(r.Context(), absenceID)
	if err != nil {
		switch err {
		case usecase.ErrAbsenceNotFound:
			response.NotFound(w, "Absence not found")
		default:
			response.InternalServerError(w, "Failed to delete absence")
		}
		return
	}

	response.NoContent(w)
}
