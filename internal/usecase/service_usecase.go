package usecase

import (
	"context"

	"github.com/MatheusScaranello/AgendaProBack/internal/converter"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/http/middleware"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ServiceUsecase is the service catalog. Durations and prices entered here
// drive the scheduler: appointment end times and sale amounts both derive
// from the catalog row at booking and transition time.
type ServiceUsecase interface {
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	List(ctx context.Context) (*dto.ServiceListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	serviceRepo repository.ServiceRepository
}

func NewServiceUsecase(db *gorm.DB, log *logrus.Logger, serviceRepo repository.ServiceRepository) ServiceUsecase {
	return &serviceUsecase{db: db, log: log, serviceRepo: serviceRepo}
}

func (u *serviceUsecase) Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	svc := &entity.Service{
		EstablishmentID: establishmentID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Active:          true,
	}

	if err := u.serviceRepo.Create(u.db.WithContext(ctx), svc); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) List(ctx context.Context) (*dto.ServiceListResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx), establishmentID)
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *serviceUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return nil, err
	}
	if svc == nil || svc.EstablishmentID != establishmentID {
		return nil, ErrServiceNotFound
	}

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if svc == nil || svc.EstablishmentID != establishmentID {
		return nil, ErrServiceNotFound
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.DurationMinutes = req.DurationMinutes
	svc.Price = req.Price
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := u.serviceRepo.Update(u.db.WithContext(ctx), svc); err != nil {
		u.log.Warnf("Failed to update service %s: %+v", id, err)
		return nil, err
	}

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return ErrNoEstablishmentInContext
	}

	rows, err := u.serviceRepo.Delete(u.db.WithContext(ctx), establishmentID, id)
	if err != nil {
		u.log.Warnf("Failed to delete service %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrServiceNotFound
	}
	return nil
}
