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

type AssetHandler struct {
	assetUsecase usecase.AssetUsecase
	validator    *validator.CustomValidator
}

func NewAssetHandler(assetUsecase usecase.AssetUsecase, validator *validator.CustomValidator) *AssetHandler {
	return &AssetHandler{
		assetUsecase: assetUsecase,
		validator:    validator,
	}
}

func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	asset, err := h.assetUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create asset")
		return
	}

	response.Success(w, http.StatusCreated, "Asset created successfully", asset)
}

func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assetUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list assets")
		return
	}

	response.Success(w, http.StatusOK, "Assets retrieved successfully", assets)
}

func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assetID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid asset ID", nil)
		return
	}

	asset, err := h.assetUsecase.Get(r.Context(), assetID)
	if err != nil {
		switch err {
		case usecase.ErrAssetNotFound:
			response.NotFound(w, "Asset not found")
		default:
			response.InternalServerError(w, "Failed to get asset")
		}
		return
	}

	response.Success(w, http.StatusOK, "Asset retrieved successfully", asset)
}

func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assetID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid asset ID", nil)
		return
	}

	var req dto.UpdateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	asset, err := h.assetUsecase.Update(r.Context(), assetID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAssetNotFound:
			response.NotFound(w, "Asset not found")
		default:
			response.InternalServerError(w, "Failed to update asset")
		}
		return
	}

	response.Success(w, http.StatusOK, "Asset updated successfully", asset)
}

func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assetID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid asset ID", nil)
		return
	}

	err = h.assetUsecase.Delete(r.Context(), assetID)
	if err != nil {
		switch err {
		case usecase.ErrAssetNotFound:
			response.NotFound(w, "Asset not found")
		default:
			response.InternalServerError(w, "Failed to delete asset")
		}
		return
	}

	response.Success(w, http.StatusOK, "Asset deleted successfully", nil)
}
