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

type ProfessionalUsecase interface {
	Create(ctx context.Context, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error)
	List(ctx context.Context) (*dto.ProfessionalListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProfessionalResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type professionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
}

func NewProfessionalUsecase(db *gorm.DB, log *logrus.Logger, professionalRepo repository.ProfessionalRepository) ProfessionalUsecase {
	return &professionalUsecase{db: db, log: log, professionalRepo: professionalRepo}
}

func (u *professionalUsecase) Create(ctx context.Context, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	professional := &entity.Professional{
		EstablishmentID: establishmentID,
		FullName:        req.FullName,
		Phone:           req.Phone,
		Email:           req.Email,
		Specialty:       req.Specialty,
		Active:          true,
	}

	if err := u.professionalRepo.Create(u.db.WithContext(ctx), professional); err != nil {
		u.log.Warnf("Failed to create professional: %+v", err)
		return nil, err
	}

	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) List(ctx context.Context) (*dto.ProfessionalListResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	professionals, err := u.professionalRepo.FindAll(u.db.WithContext(ctx), establishmentID)
	if err != nil {
		u.log.Warnf("Failed to list professionals: %+v", err)
		return nil, err
	}

	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalsToResponses(professionals),
		Total:         len(professionals),
	}, nil
}

func (u *professionalUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.ProfessionalResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), establishmentID, id)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", id, err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), establishmentID, id)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	professional.FullName = req.FullName
	professional.Phone = req.Phone
	professional.Email = req.Email
	professional.Specialty = req.Specialty
	if req.Active != nil {
		professional.Active = *req.Active
	}

	if err := u.professionalRepo.Update(u.db.WithContext(ctx), professional); err != nil {
		u.log.Warnf("Failed to update professional %s: %+v", id, err)
		return nil, err
	}

	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return ErrNoEstablishmentInContext
	}

	rows, err := u.professionalRepo.Delete(u.db.WithContext(ctx), establishmentID, id)
	if err != nil {
		u.log.Warnf("Failed to delete professional %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrProfessionalNotFound
	}
	return nil
}
