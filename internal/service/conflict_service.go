package service

import (
	"errors"
	"time"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfessionalBusy = errors.New("the professional already has an appointment in this period")
	ErrAssetBusy        = errors.New("the asset is already booked in this period")
)

// ConflictService decides whether a candidate interval collides with the
// booked timeline of a professional or asset. It must be called with the same
// transaction that performs the subsequent insert/update, so the check and
// the write happen in one isolated unit of work.
type ConflictService interface {
	Check(tx *gorm.DB, professionalID uuid.UUID, assetID *uuid.UUID, start, end time.Time, excludeID *uuid.UUID) error
}

type conflictService struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewConflictService(log *logrus.Logger, appointmentRepo repository.AppointmentRepository) ConflictService {
	return &conflictService{
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// Check queries professional bookings first and, when an asset is reserved,
// asset bookings independently. Any overlap is fatal; the first conflicting
// appointment id is logged for diagnostics.
func (s *conflictService) Check(tx *gorm.DB, professionalID uuid.UUID, assetID *uuid.UUID, start, end time.Time, excludeID *uuid.UUID) error {
	conflicts, err := s.appointmentRepo.FindOverlappingForProfessional(tx, professionalID, start, end, excludeID)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		s.log.Warnf("Scheduling conflict: professional %s busy, overlapping appointment %s", professionalID, conflicts[0].ID)
		return ErrProfessionalBusy
	}

	if assetID != nil {
		conflicts, err = s.appointmentRepo.FindOverlappingForAsset(tx, *assetID, start, end, excludeID)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			s.log.Warnf("Scheduling conflict: asset %s busy, overlapping appointment %s", *assetID, conflicts[0].ID)
			return ErrAssetBusy
		}
	}

	return nil
}
