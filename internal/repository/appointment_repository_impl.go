package repository

import (
	"errors"
	"time"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	domainRepo "github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// blockingStatuses are the statuses that occupy the timeline. Canceled and
// no-show appointments leave their slot free.
var blockingStatuses = []entity.AppointmentStatus{
	entity.AppointmentStatusScheduled,
	entity.AppointmentStatusCompleted,
}

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, establishmentID, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ? AND establishment_id = ?", id, establishmentID).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) List(db *gorm.DB, establishmentID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Where("establishment_id = ?", establishmentID)
	if filter != nil {
		if filter.ProfessionalID != nil {
			query = query.Where("professional_id = ?", *filter.ProfessionalID)
		}
		if filter.ClientID != nil {
			query = query.Where("client_id = ?", *filter.ClientID)
		}
		if filter.StartDate != nil {
			query = query.Where("start_time >= ?", *filter.StartDate)
		}
		if filter.EndDate != nil {
			query = query.Where("start_time < ?", *filter.EndDate)
		}
	}

	var appointments []entity.Appointment
	if err := query.Order("start_time ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// Half-open overlap: a conflicts with [start, end) iff
// a.start_time < end AND a.end_time > start. Back-to-back bookings sharing
// an endpoint are allowed.
func (r *appointmentRepository) FindOverlappingForProfessional(db *gorm.DB, professionalID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]entity.Appointment, error) {
	return r.findOverlapping(db.Where("professional_id = ?", professionalID), start, end, excludeID)
}

func (r *appointmentRepository) FindOverlappingForAsset(db *gorm.DB, assetID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]entity.Appointment, error) {
	return r.findOverlapping(db.Where("asset_id = ?", assetID), start, end, excludeID)
}

func (r *appointmentRepository) findOverlapping(query *gorm.DB, start, end time.Time, excludeID *uuid.UUID) ([]entity.Appointment, error) {
	query = query.
		Where("status IN ?", blockingStatuses).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var conflicts []entity.Appointment
	if err := query.Order("start_time ASC").Find(&conflicts).Error; err != nil {
		return nil, err
	}
	return conflicts, nil
}

func (r *appointmentRepository) UpdateInterval(db *gorm.DB, id uuid.UUID, start, end time.Time) error {
	return db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"start_time": start,
			"end_time":   end,
			"status":     entity.AppointmentStatusScheduled,
		}).Error
}

// UpdateStatusFrom applies the transition only when the row is still in the
// expected status. Returns affected rows: 0 means a concurrent request
// already moved the appointment out of `from`.
func (r *appointmentRepository) UpdateStatusFrom(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, establishmentID, id uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND establishment_id = ?", id, establishmentID).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
