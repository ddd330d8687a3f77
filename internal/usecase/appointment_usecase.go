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
	"github.com/MatheusScaranello/AgendaProBack/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrServiceNotFound          = errors.New("service not found")
	ErrClientNotFound           = errors.New("client not found")
	ErrProfessionalNotFound     = errors.New("professional not found")
	ErrAssetNotFound            = errors.New("asset not found")
	ErrInvalidStartTime         = errors.New("invalid start time, use RFC 3339 format")
	ErrInvalidDateFilter        = errors.New("invalid date filter, use YYYY-MM-DD")
	ErrInvalidStatus            = errors.New("invalid status")
	ErrInvalidTransition        = errors.New("status transition not permitted from the current status")
	ErrEstablishmentMismatch    = errors.New("establishment_id does not match the authenticated establishment")
	ErrNoEstablishmentInContext = errors.New("establishment not found in context")
)

// AppointmentUsecase is the appointment lifecycle manager: the single
// authority over creation, reschedule, status transitions and their billing
// and metric side effects. Every multi-step operation runs inside one atomic
// unit of work.
type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Reschedule(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, req *dto.CreateCancellationRequest) (*dto.CreateCancellationResponse, error)
	ListCancellations(ctx context.Context) (*dto.CancellationListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	serviceRepo      repository.ServiceRepository
	clientRepo       repository.ClientRepository
	professionalRepo repository.ProfessionalRepository
	assetRepo        repository.AssetRepository
	saleRepo         repository.SaleRepository
	cancellationRepo repository.CancellationRepository
	policyRepo       repository.CancellationPolicyRepository
	conflictService  service.ConflictService
	feeService       service.CancellationFeeService
	metricsService   service.ClientMetricsService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	serviceRepo repository.ServiceRepository,
	clientRepo repository.ClientRepository,
	professionalRepo repository.ProfessionalRepository,
	assetRepo repository.AssetRepository,
	saleRepo repository.SaleRepository,
	cancellationRepo repository.CancellationRepository,
	policyRepo repository.CancellationPolicyRepository,
	conflictService service.ConflictService,
	feeService service.CancellationFeeService,
	metricsService service.ClientMetricsService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		serviceRepo:      serviceRepo,
		clientRepo:       clientRepo,
		professionalRepo: professionalRepo,
		assetRepo:        assetRepo,
		saleRepo:         saleRepo,
		cancellationRepo: cancellationRepo,
		policyRepo:       policyRepo,
		conflictService:  conflictService,
		feeService:       feeService,
		metricsService:   metricsService,
	}
}

// Create books an appointment. The end time is derived from the service
// duration; the conflict check and the insert run in the same transaction so
// two concurrent requests for overlapping intervals cannot both succeed.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}
	if req.EstablishmentID != establishmentID {
		return nil, ErrEstablishmentMismatch
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, ErrInvalidStartTime
	}

	var appointment *entity.Appointment
	err = database.WithinTransaction(ctx, u.db, func(tx *gorm.DB) error {
		svc, err := u.serviceRepo.FindActiveByID(tx, establishmentID, req.ServiceID)
		if err != nil {
			return err
		}
		if svc == nil {
			return ErrServiceNotFound
		}

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

		if req.AssetID != nil {
			asset, err := u.assetRepo.FindByID(tx, establishmentID, *req.AssetID)
			if err != nil {
				return err
			}
			if asset == nil {
				return ErrAssetNotFound
			}
		}

		endTime := startTime.Add(svc.Duration())

		if err := u.conflictService.Check(tx, req.ProfessionalID, req.AssetID, startTime, endTime, nil); err != nil {
			return err
		}

		appointment = &entity.Appointment{
			EstablishmentID: establishmentID,
			ClientID:        req.ClientID,
			ProfessionalID:  req.ProfessionalID,
			ServiceID:       req.ServiceID,
			AssetID:         req.AssetID,
			StartTime:       startTime,
			EndTime:         endTime,
			Status:          entity.AppointmentStatusScheduled,
			Notes:           req.Notes,
		}
		return u.appointmentRepo.Create(tx, appointment)
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Appointment created: id=%s, professional=%s, start=%s", appointment.ID, appointment.ProfessionalID, appointment.StartTime)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	filter, err := buildAppointmentFilter(query)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.List(u.db.WithContext(ctx), establishmentID, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), establishmentID, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Reschedule moves an appointment to a new interval. The end time is
// recomputed from the service duration, the conflict check excludes the
// appointment's own row, and the status resets to SCHEDULED. On any failure
// the original booking is left untouched.
func (u *appointmentUsecase) Reschedule(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	newStart, err := time.Parse(time.RFC3339, req.NewStartTime)
	if err != nil {
		return nil, ErrInvalidStartTime
	}

	var appointment *entity.Appointment
	err = database.WithinTransaction(ctx, u.db, func(tx *gorm.DB) error {
		appointment, err = u.appointmentRepo.FindByID(tx, establishmentID, id)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		svc, err := u.serviceRepo.FindByID(tx, appointment.ServiceID)
		if err != nil {
			return err
		}
		if svc == nil {
			return ErrServiceNotFound
		}

		newEnd := newStart.Add(svc.Duration())

		if err := u.conflictService.Check(tx, appointment.ProfessionalID, appointment.AssetID, newStart, newEnd, &appointment.ID); err != nil {
			return err
		}

		if err := u.appointmentRepo.UpdateInterval(tx, appointment.ID, newStart, newEnd); err != nil {
			return err
		}

		appointment.StartTime = newStart
		appointment.EndTime = newEnd
		appointment.Status = entity.AppointmentStatusScheduled
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Appointment rescheduled: id=%s, start=%s", appointment.ID, appointment.StartTime)
	return converter.AppointmentToResponse(appointment), nil
}

// TransitionStatus applies a lifecycle transition together with its side
// effects: a paid sale and earned income on COMPLETED, no-show counters on
// NO_SHOW, cancellation counters plus a fee-bearing cancellation record on
// CANCELED. Transitions out of terminal states are rejected.
func (u *appointmentUsecase) TransitionStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	newStatus, ok := entity.ParseAppointmentStatus(req.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	var appointment *entity.Appointment
	err := database.WithinTransaction(ctx, u.db, func(tx *gorm.DB) error {
		var err error
		appointment, err = u.appointmentRepo.FindByID(tx, establishmentID, id)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		_, err = u.applyTransition(tx, appointment, newStatus, "")
		return err
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Appointment status updated: id=%s, status=%s", appointment.ID, appointment.Status)
	return converter.AppointmentToResponse(appointment), nil
}

// Cancel is the reason-carrying cancellation entry point. It performs the
// CANCELED transition and returns the immutable cancellation record with the
// computed fee.
func (u *appointmentUsecase) Cancel(ctx context.Context, req *dto.CreateCancellationRequest) (*dto.CreateCancellationResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	var cancellation *entity.Cancellation
	err := database.WithinTransaction(ctx, u.db, func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, establishmentID, req.AppointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		cancellation, err = u.applyTransition(tx, appointment, entity.AppointmentStatusCanceled, req.Motivo)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Appointment canceled: id=%s, fee=%s", req.AppointmentID, cancellation.Fee)
	return &dto.CreateCancellationResponse{
		Cancellation: *converter.CancellationToResponse(cancellation),
		Taxa:         cancellation.Fee,
	}, nil
}

func (u *appointmentUsecase) ListCancellations(ctx context.Context) (*dto.CancellationListResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	cancellations, err := u.cancellationRepo.FindAll(u.db.WithContext(ctx), establishmentID)
	if err != nil {
		u.log.Warnf("Failed to list cancellations: %+v", err)
		return nil, err
	}

	return &dto.CancellationListResponse{
		Cancellations: converter.CancellationsToResponses(cancellations),
		Total:         len(cancellations),
	}, nil
}

// Delete hard-removes an appointment. Metrics recorded by earlier status
// transitions are intentionally left as-is; reversing them is a product
// decision this operation does not take.
func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return ErrNoEstablishmentInContext
	}

	rows, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), establishmentID, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	u.log.Infof("Appointment deleted: id=%s", id)
	return nil
}

// applyTransition validates and applies a status change with its side
// effects, inside the caller's transaction. The compare-and-swap status
// update guarantees the side effects run at most once even when the same
// transition is requested concurrently.
func (u *appointmentUsecase) applyTransition(tx *gorm.DB, appointment *entity.Appointment, newStatus entity.AppointmentStatus, reason string) (*entity.Cancellation, error) {
	if !appointment.CanTransitionTo(newStatus) {
		return nil, ErrInvalidTransition
	}

	rows, err := u.appointmentRepo.UpdateStatusFrom(tx, appointment.ID, appointment.Status, newStatus)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInvalidTransition
	}

	svc, err := u.serviceRepo.FindByID(tx, appointment.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	var cancellation *entity.Cancellation
	switch newStatus {
	case entity.AppointmentStatusCompleted:
		sale := &entity.Sale{
			EstablishmentID: appointment.EstablishmentID,
			ClientID:        appointment.ClientID,
			AppointmentID:   &appointment.ID,
			TotalAmount:     svc.Price,
			FinalAmount:     svc.Price,
			Status:          entity.SaleStatusPaid,
		}
		if err := u.saleRepo.Create(tx, sale); err != nil {
			return nil, err
		}
		if err := u.metricsService.RecordCompleted(tx, appointment.ClientID, svc.Price); err != nil {
			return nil, err
		}

	case entity.AppointmentStatusNoShow:
		if err := u.metricsService.RecordNoShow(tx, appointment.ClientID, svc.Price); err != nil {
			return nil, err
		}

	case entity.AppointmentStatusCanceled:
		if err := u.metricsService.RecordCancellation(tx, appointment.ClientID); err != nil {
			return nil, err
		}

		policy, err := u.policyRepo.FindByEstablishment(tx, appointment.EstablishmentID)
		if err != nil {
			return nil, err
		}
		fee := u.feeService.ComputeFee(appointment.StartTime, svc.Price, policy, time.Now())

		cancellation = &entity.Cancellation{
			EstablishmentID: appointment.EstablishmentID,
			AppointmentID:   appointment.ID,
			Reason:          reason,
			Fee:             fee,
		}
		if err := u.cancellationRepo.Create(tx, cancellation); err != nil {
			return nil, err
		}
	}

	appointment.Status = newStatus
	return cancellation, nil
}

func buildAppointmentFilter(query *dto.ListAppointmentsQuery) (*entity.AppointmentFilter, error) {
	if query == nil {
		return nil, nil
	}

	filter := &entity.AppointmentFilter{}
	if query.ProfessionalID != "" {
		professionalID, err := uuid.Parse(query.ProfessionalID)
		if err != nil {
			return nil, ErrProfessionalNotFound
		}
		filter.ProfessionalID = &professionalID
	}
	if query.ClientID != "" {
		clientID, err := uuid.Parse(query.ClientID)
		if err != nil {
			return nil, ErrClientNotFound
		}
		filter.ClientID = &clientID
	}
	if query.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			return nil, ErrInvalidDateFilter
		}
		filter.StartDate = &startDate
	}
	if query.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			return nil, ErrInvalidDateFilter
		}
		// end_date is inclusive: keep appointments starting any time that day
		endExclusive := endDate.Add(24 * time.Hour)
		filter.EndDate = &endExclusive
	}
	return filter, nil
}
