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

type ClientHandler struct {
	clientUsecase usecase.ClientUsecase
	validator     *validator.CustomValidator
}

func NewClientHandler(clientUsecase usecase.ClientUsecase, validator *validator.CustomValidator) *ClientHandler {
	return &ClientHandler{
		clientUsecase: clientUsecase,
		validator:     validator,
	}
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	client, err := h.clientUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		case usecase.ErrInvalidDateFilter:
			response.BadRequest(w, "Invalid birth_date, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to create client")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Client created successfully", client)
}

func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list clients")
		return
	}

	response.Success(w, http.StatusOK, "Clients retrieved successfully", clients)
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client ID", nil)
		return
	}

	client, err := h.clientUsecase.Get(r.Context(), clientID)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to get client")
		}
		return
	}

	response.Success(w, http.StatusOK, "Client retrieved successfully", client)
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client ID", nil)
		return
	}

	var req dto.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	client, err := h.clientUsecase.Update(r.Context(), clientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		case usecase.ErrInvalidDateFilter:
			response.BadRequest(w, "Invalid birth_date, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to update client")
		}
		return
	}

	response.Success(w, http.StatusOK, "Client updated successfully", client)
}

func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client ID", nil)
		return
	}

	err = h.clientUsecase.Delete(r.Context(), clientID)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to delete client")
		}
		return
	}

	response.Success(w, http.StatusOK, "Client deleted successfully", nil)
}
