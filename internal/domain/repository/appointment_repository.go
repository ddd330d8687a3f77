package repository

import (
	"time"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentRepository is the durable timeline store. The overlap queries
// use half-open [start, end) semantics and exclude canceled and no-show rows
// (a freed slot does not block new bookings).
type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, establishmentID, id uuid.UUID) (*entity.Appointment, error)
	List(db *gorm.DB, establishmentID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindOverlappingForProfessional(db *gorm.DB, professionalID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]entity.Appointment, error)
	FindOverlappingForAsset(db *gorm.DB, assetID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]entity.Appointment, error)
	UpdateInterval(db *gorm.DB, id uuid.UUID, start, end time.Time) error
	UpdateStatusFrom(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
	Delete(db *gorm.DB, establishmentID, id uuid.UUID) (int64, error)
}
