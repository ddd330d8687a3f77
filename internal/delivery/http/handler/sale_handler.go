package handler

import (
	"net/http"

	"github.com/MatheusScaranello/AgendaProBack/internal/usecase"
	"github.com/MatheusScaranello/AgendaProBack/pkg/response"
)

type SaleHandler struct {
	saleUsecase usecase.SaleUsecase
}

func NewSaleHandler(saleUsecase usecase.SaleUsecase) *SaleHandler {
	return &SaleHandler{saleUsecase: saleUsecase}
}

func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.saleUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list sales")
		return
	}

	response.Success(w, http.StatusOK, "Sales retrieved successfully", sales)
}
