package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/usecase"
	"github.com/MatheusScaranello/AgendaProBack/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type stubAppointmentUsecase struct {
	deleteErr error
}

func (s *stubAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) List(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) Reschedule(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) TransitionStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) Cancel(ctx context.Context, req *dto.CreateCancellationRequest) (*dto.CreateCancellationResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) ListCancellations(ctx context.Context) (*dto.CancellationListResponse, error) {
	return nil, nil
}

func (s *stubAppointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteErr
}

func newAppointmentTestRouter(uc usecase.AppointmentUsecase) *mux.Router {
	h := NewAppointmentHandler(uc, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/appointments/{id}", h.DeleteAppointment).Methods(http.MethodDelete)
	return r
}

func TestDeleteAppointmentReturnsNoContent(t *testing.T) {
	router := newAppointmentTestRouter(&stubAppointmentUsecase{})

	req := httptest.NewRequest(http.MethodDelete, "/appointments/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	router := newAppointmentTestRouter(&stubAppointmentUsecase{deleteErr: usecase.ErrAppointmentNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/appointments/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
