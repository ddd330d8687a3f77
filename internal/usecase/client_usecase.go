package usecase

import (
	"context"
	"time"

	"github.com/MatheusScaranello/AgendaProBack/internal/converter"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/http/middleware"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ClientUsecase interface {
	Create(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	List(ctx context.Context) (*dto.ClientListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	clientRepo repository.ClientRepository
}

func NewClientUsecase(db *gorm.DB, log *logrus.Logger, clientRepo repository.ClientRepository) ClientUsecase {
	return &clientUsecase{db: db, log: log, clientRepo: clientRepo}
}

func (u *clientUsecase) Create(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	client := &entity.Client{
		EstablishmentID: establishmentID,
		FullName:        req.FullName,
		Phone:           req.Phone,
		Email:           req.Email,
		BirthDate:       birthDate,
		Address:         req.Address,
	}

	if err := u.clientRepo.Create(u.db.WithContext(ctx), client); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create client: %+v", err)
		return nil, err
	}

	return converter.ClientToResponse(client), nil
}

func (u *clientUsecase) List(ctx context.Context) (*dto.ClientListResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	clients, err := u.clientRepo.FindAll(u.db.WithContext(ctx), establishmentID)
	if err != nil {
		u.log.Warnf("Failed to list clients: %+v", err)
		return nil, err
	}

	return &dto.ClientListResponse{
		Clients: converter.ClientsToResponses(clients),
		Total:   len(clients),
	}, nil
}

func (u *clientUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	client, err := u.clientRepo.FindByID(u.db.WithContext(ctx), establishmentID, id)
	if err != nil {
		u.log.Warnf("Failed to find client %s: %+v", id, err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	return converter.ClientToResponse(client), nil
}

func (u *clientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	client, err := u.clientRepo.FindByID(u.db.WithContext(ctx), establishmentID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	client.FullName = req.FullName
	client.Phone = req.Phone
	client.Email = req.Email
	client.BirthDate = birthDate
	client.Address = req.Address

	if err := u.clientRepo.Update(u.db.WithContext(ctx), client); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update client %s: %+v", id, err)
		return nil, err
	}

	return converter.ClientToResponse(client), nil
}

func (u *clientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return ErrNoEstablishmentInContext
	}

	rows, err := u.clientRepo.Delete(u.db.WithContext(ctx), establishmentID, id)
	if err != nil {
		u.log.Warnf("Failed to delete client %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrClientNotFound
	}
	return nil
}

func parseBirthDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, ErrInvalidDateFilter
	}
	return &t, nil
}
