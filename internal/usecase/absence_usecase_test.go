package usecase

import (
	"io"
	"testing"
	"time"

	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	"github.com/MatheusScaranello/AgendaProBack/internal/repository"

	"github.com/sirupsen/logrus"
)

func newAbsenceUsecase(t *testing.T, env *testEnv) AbsenceUsecase {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewAbsenceUsecase(env.db, log, repository.NewAbsenceRepository(), repository.NewProfessionalRepository())
}

func absenceRequest(start time.Time, duration time.Duration, reason string) *dto.CreateAbsenceRequest {
	return &dto.CreateAbsenceRequest{
		StartTime: start.Format(time.RFC3339),
		EndTime:   start.Add(duration).Format(time.RFC3339),
		Reason:    reason,
	}
}

func TestCreateAbsence(t *testing.T) {
	env := newTestEnv(t)
	uc := newAbsenceUsecase(t, env)
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	absence, err := uc.Create(env.ctx(), env.professional.ID, absenceRequest(start, 14*24*time.Hour, "vacation"))
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if absence.ProfessionalID != env.professional.ID {
		t.Errorf("professional_id = %s, want %s", absence.ProfessionalID, env.professional.ID)
	}
	if absence.Reason != "vacation" {
		t.Errorf("reason = %q, want vacation", absence.Reason)
	}
}

func TestCreateAbsenceValidation(t *testing.T) {
	env := newTestEnv(t)
	uc := newAbsenceUsecase(t, env)
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	req := absenceRequest(start, time.Hour, "")
	req.EndTime = req.StartTime
	if _, err := uc.Create(env.ctx(), env.professional.ID, req); err != ErrInvalidAbsenceInterval {
		t.Errorf("Create() error = %v, want ErrInvalidAbsenceInterval for an empty interval", err)
	}

	req = absenceRequest(start, time.Hour, "")
	req.StartTime = "tomorrow"
	if _, err := uc.Create(env.ctx(), env.professional.ID, req); err != ErrInvalidStartTime {
		t.Errorf("Create() error = %v, want ErrInvalidStartTime", err)
	}
}

func TestListAbsencesNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	uc := newAbsenceUsecase(t, env)

	early := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	for _, start := range []time.Time{early, late} {
		if _, err := uc.Create(env.ctx(), env.professional.ID, absenceRequest(start, 24*time.Hour, "")); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	list, err := uc.ListByProfessional(env.ctx(), env.professional.ID)
	if err != nil {
		t.Fatalf("ListByProfessional() error: %v", err)
	}
	if list.Total != 2 {
		t.Fatalf("total = %d, want 2", list.Total)
	}
	if !list.Absences[0].StartTime.Equal(late) {
		t.Errorf("first entry start = %s, want the most recent absence", list.Absences[0].StartTime)
	}
}

func TestAbsenceScopedToEstablishment(t *testing.T) {
	env := newTestEnv(t)
	uc := newAbsenceUsecase(t, env)
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	other := &entity.Establishment{Name: "Outro Salao", Email: "contato@outro.com", Password: "hashed"}
	if err := env.db.Create(other).Error; err != nil {
		t.Fatal(err)
	}
	foreignProfessional := &entity.Professional{EstablishmentID: other.ID, FullName: "Diego Alves", Active: true}
	if err := env.db.Create(foreignProfessional).Error; err != nil {
		t.Fatal(err)
	}
	foreignAbsence := &entity.Absence{
		ProfessionalID: foreignProfessional.ID,
		StartTime:      start,
		EndTime:        start.Add(24 * time.Hour),
	}
	if err := env.db.Create(foreignAbsence).Error; err != nil {
		t.Fatal(err)
	}

	if _, err := uc.Create(env.ctx(), foreignProfessional.ID, absenceRequest(start, time.Hour, "")); err != ErrProfessionalNotFound {
		t.Errorf("Create() error = %v, want ErrProfessionalNotFound for a foreign professional", err)
	}
	if _, err := uc.ListByProfessional(env.ctx(), foreignProfessional.ID); err != ErrProfessionalNotFound {
		t.Errorf("ListByProfessional() error = %v, want ErrProfessionalNotFound", err)
	}
	if _, err := uc.Update(env.ctx(), foreignAbsence.ID, &dto.UpdateAbsenceRequest{
		StartTime: start.Format(time.RFC3339),
		EndTime:   start.Add(time.Hour).Format(time.RFC3339),
	}); err != ErrAbsenceNotFound {
		t.Errorf("Update() error = %v, want ErrAbsenceNotFound for a foreign absence", err)
	}
	if err := uc.Delete(env.ctx(), foreignAbsence.ID); err != ErrAbsenceNotFound {
		t.Errorf("Delete() error = %v, want ErrAbsenceNotFound for a foreign absence", err)
	}
}

func TestUpdateAndDeleteAbsence(t *testing.T) {
	env := newTestEnv(t)
	uc := newAbsenceUsecase(t, env)
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	absence, err := uc.Create(env.ctx(), env.professional.ID, absenceRequest(start, 24*time.Hour, "vacation"))
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	moved := start.Add(48 * time.Hour)
	updated, err := uc.Update(env.ctx(), absence.ID, &dto.UpdateAbsenceRequest{
		StartTime: moved.Format(time.RFC3339),
		EndTime:   moved.Add(24 * time.Hour).Format(time.RFC3339),
		Reason:    "rescheduled vacation",
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if !updated.StartTime.Equal(moved) || updated.Reason != "rescheduled vacation" {
		t.Errorf("updated absence = %+v, want the moved interval", updated)
	}

	if err := uc.Delete(env.ctx(), absence.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if err := uc.Delete(env.ctx(), absence.ID); err != ErrAbsenceNotFound {
		t.Errorf("second Delete() error = %v, want ErrAbsenceNotFound", err)
	}
}
