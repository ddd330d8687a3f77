package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/MatheusScaranello/AgendaProBack/internal/converter"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/http/middleware"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"
	"github.com/MatheusScaranello/AgendaProBack/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidPreferredWindow = errors.New("preferred_end must be after preferred_start")
	ErrInvalidSlotInterval    = errors.New("fim must be after inicio")
)

// WaitlistUsecase queues clients and promotes them into freed slots. Fill is
// the promotion entry point: it claims the oldest active entry for the
// professional and books it into the advertised interval.
type WaitlistUsecase interface {
	Join(ctx context.Context, req *dto.JoinWaitlistRequest) (*dto.WaitlistEntryResponse, error)
	Fill(ctx context.Context, req *dto.FillSlotRequest) (*dto.FillSlotResponse, error)
}

type waitlistUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	waitlistRepo     repository.WaitlistRepository
	appointmentRepo  repository.AppointmentRepository
	clientRepo       repository.ClientRepository
	professionalRepo repository.ProfessionalRepository
	serviceRepo      repository.ServiceRepository
}

func NewWaitlistUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	waitlistRepo repository.WaitlistRepository,
	appointmentRepo repository.AppointmentRepository,
	clientRepo repository.ClientRepository,
	professionalRepo repository.ProfessionalRepository,
	serviceRepo repository.ServiceRepository,
) WaitlistUsecase {
	return &waitlistUsecase{
		db:               db,
		log:              log,
		waitlistRepo:     waitlistRepo,
		appointmentRepo:  appointmentRepo,
		clientRepo:       clientRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
	}
}

func (u *waitlistUsecase) Join(ctx context.Context, req *dto.JoinWaitlistRequest) (*dto.WaitlistEntryResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	var preferredStart, preferredEnd *time.Time
	if req.PreferredStart != "" {
		t, err := time.Parse(time.RFC3339, req.PreferredStart)
		if err != nil {
			return nil, ErrInvalidStartTime
		}
		preferredStart = &t
	}
	if req.PreferredEnd != "" {
		t, err := time.Parse(time.RFC3339, req.PreferredEnd)
		if err != nil {
			return nil, ErrInvalidStartTime
		}
		preferredEnd = &t
	}
	if preferredStart != nil && preferredEnd != nil && !preferredEnd.After(*preferredStart) {
		return nil, ErrInvalidPreferredWindow
	}

	var entry *entity.WaitlistEntry
	err := database.WithinTransaction(ctx, u.db, func(tx *gorm.DB) error {
		client, err := u.clientRepo.FindByID(tx, establishmentID, req.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return ErrClientNotFound
		}

		professional, err := u.professionalRepo.FindByID(tx, establishmentID, req.ProfessionalID)
		if err != nil {
			return err
		}
		if professional == nil {
			return ErrProfessionalNotFound
		}

		svc, err := u.serviceRepo.FindActiveByID(tx, establishmentID, req.ServiceID)
		if err != nil {
			return err
		}
		if svc == nil {
			return ErrServiceNotFound
		}

		entry = &entity.WaitlistEntry{
			EstablishmentID: establishmentID,
			ClientID:        req.ClientID,
			ProfessionalID:  req.ProfessionalID,
			ServiceID:       req.ServiceID,
			PreferredStart:  preferredStart,
			PreferredEnd:    preferredEnd,
			Status:          entity.WaitlistStatusActive,
		}
		return u.waitlistRepo.Create(tx, entry)
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Waitlist entry created: id=%s, professional=%s", entry.ID, entry.ProfessionalID)
	return converter.WaitlistEntryToResponse(entry), nil
}

// Fill promotes the oldest active waitlist entry for the professional into an
// appointment over the freed interval. Each entry is consumed at most once:
// the claim is a conditional update on status, and a lost claim moves on to
// the next entry. An empty waitlist is not an error, the response just
// reports preenchido=false.
func (u *waitlistUsecase) Fill(ctx context.Context, req *dto.FillSlotRequest) (*dto.FillSlotResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	start, err := time.Parse(time.RFC3339, req.Inicio)
	if err != nil {
		return nil, ErrInvalidStartTime
	}
	end, err := time.Parse(time.RFC3339, req.Fim)
	if err != nil {
		return nil, ErrInvalidStartTime
	}
	if !end.After(start) {
		return nil, ErrInvalidSlotInterval
	}

	var appointment *entity.Appointment
	err = database.WithinTransaction(ctx, u.db, func(tx *gorm.DB) error {
		professional, err := u.professionalRepo.FindByID(tx, establishmentID, req.ProfissionalID)
		if err != nil {
			return err
		}
		if professional == nil {
			return ErrProfessionalNotFound
		}

		for {
			entry, err := u.waitlistRepo.FindOldestActive(tx, establishmentID, req.ProfissionalID)
			if err != nil {
				return err
			}
			if entry == nil {
				return nil
			}

			rows, err := u.waitlistRepo.MarkFulfilled(tx, entry.ID)
			if err != nil {
				return err
			}
			if rows == 0 {
				// lost the claim to a concurrent promoter, try the next entry
				continue
			}

			appointment = &entity.Appointment{
				EstablishmentID: establishmentID,
				ClientID:        entry.ClientID,
				ProfessionalID:  entry.ProfessionalID,
				ServiceID:       entry.ServiceID,
				StartTime:       start,
				EndTime:         end,
				Status:          entity.AppointmentStatusScheduled,
			}
			return u.appointmentRepo.Create(tx, appointment)
		}
	})
	if err != nil {
		return nil, err
	}

	if appointment == nil {
		u.log.Infof("Waitlist empty for professional %s, slot left open", req.ProfissionalID)
		return &dto.FillSlotResponse{Preenchido: false}, nil
	}

	u.log.Infof("Waitlist slot filled: appointment=%s, client=%s", appointment.ID, appointment.ClientID)
	return &dto.FillSlotResponse{
		Preenchido:  true,
		Agendamento: converter.AppointmentToResponse(appointment),
	}, nil
}
