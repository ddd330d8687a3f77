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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAbsenceNotFound        = errors.New("absence not found")
	ErrInvalidAbsenceInterval = errors.New("end_time must be after start_time")
)

// AbsenceUsecase manages a professional's time-off intervals. The records
// sit beside the appointment timeline for the establishment's planning; they
// do not block bookings.
type AbsenceUsecase interface {
	Create(ctx context.Context, professionalID uuid.UUID, req *dto.CreateAbsenceRequest) (*dto.AbsenceResponse, error)
	ListByProfessional(ctx context.Context, professionalID uuid.UUID) (*dto.AbsenceListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAbsenceRequest) (*dto.AbsenceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type absenceUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	absenceRepo      repository.AbsenceRepository
	professionalRepo repository.ProfessionalRepository
}

func NewAbsenceUsecase(db *gorm.DB, log *logrus.Logger, absenceRepo repository.AbsenceRepository, professionalRepo repository.ProfessionalRepository) AbsenceUsecase {
	return &absenceUsecase{db: db, log: log, absenceRepo: absenceRepo, professionalRepo: professionalRepo}
}

func (u *absenceUsecase) Create(ctx context.Context, professionalID uuid.UUID, req *dto.CreateAbsenceRequest) (*dto.AbsenceResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	start, end, err := parseAbsenceInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), establishmentID, professionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	absence := &entity.Absence{
		ProfessionalID: professionalID,
		StartTime:      start,
		EndTime:        end,
		Reason:         req.Reason,
	}

	if err := u.absenceRepo.Create(u.db.WithContext(ctx), absence); err != nil {
		u.log.Warnf("Failed to create absence: %+v", err)
		return nil, err
	}

	return converter.AbsenceToResponse(absence), nil
}

func (u *absenceUsecase) ListByProfessional(ctx context.Context, professionalID uuid.UUID) (*dto.AbsenceListResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), establishmentID, professionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	absences, err := u.absenceRepo.FindByProfessional(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to list absences for professional %s: %+v", professionalID, err)
		return nil, err
	}

	return &dto.AbsenceListResponse{
		Absences: converter.AbsencesToResponses(absences),
		Total:    len(absences),
	}, nil
}

func (u *absenceUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAbsenceRequest) (*dto.AbsenceResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	start, end, err := parseAbsenceInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	absence, err := u.loadScopedAbsence(ctx, establishmentID, id)
	if err != nil {
		return nil, err
	}

	absence.StartTime = start
	absence.EndTime = end
	absence.Reason = req.Reason

	if err := u.absenceRepo.Update(u.db.WithContext(ctx), absence); err != nil {
		u.log.Warnf("Failed to update absence %s: %+v", id, err)
		return nil, err
	}

	return converter.AbsenceToResponse(absence), nil
}

func (u *absenceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return ErrNoEstablishmentInContext
	}

	if _, err := u.loadScopedAbsence(ctx, establishmentID, id); err != nil {
		return err
	}

	rows, err := u.absenceRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete absence %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrAbsenceNotFound
	}
	return nil
}

// loadScopedAbsence resolves an absence and verifies the owning professional
// belongs to the establishment. A foreign tenant's absence reads as not
// found.
func (u *absenceUsecase) loadScopedAbsence(ctx context.Context, establishmentID, id uuid.UUID) (*entity.Absence, error) {
	absence, err := u.absenceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if absence == nil {
		return nil, ErrAbsenceNotFound
	}

	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), establishmentID, absence.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, ErrAbsenceNotFound
	}
	return absence, nil
}

func parseAbsenceInterval(rawStart, rawEnd string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidStartTime
	}
	end, err := time.Parse(time.RFC3339, rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidStartTime
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrInvalidAbsenceInterval
	}
	return start, end, nil
}
