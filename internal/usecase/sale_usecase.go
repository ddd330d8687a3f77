package usecase

import (
	"context"

	"github.com/MatheusScaranello/AgendaProBack/internal/converter"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/http/middleware"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SaleUsecase exposes the read side of the sales ledger. Rows are written by
// the appointment lifecycle when bookings complete, never directly here.
type SaleUsecase interface {
	List(ctx context.Context) (*dto.SaleListResponse, error)
}

type saleUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	saleRepo repository.SaleRepository
}

func NewSaleUsecase(db *gorm.DB, log *logrus.Logger, saleRepo repository.SaleRepository) SaleUsecase {
	return &saleUsecase{db: db, log: log, saleRepo: saleRepo}
}

func (u *saleUsecase) List(ctx context.Context) (*dto.SaleListResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	sales, err := u.saleRepo.FindAll(u.db.WithContext(ctx), establishmentID)
	if err != nil {
		u.log.Warnf("Failed to list sales: %+v", err)
		return nil, err
	}

	return &dto.SaleListResponse{
		Sales: converter.SalesToResponses(sales),
		Total: len(sales),
	}, nil
}
