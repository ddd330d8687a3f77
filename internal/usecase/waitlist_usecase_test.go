package usecase

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	"github.com/MatheusScaranello/AgendaProBack/internal/repository"

	"github.com/sirupsen/logrus"
)

func newWaitlistUsecase(t *testing.T, env *testEnv) WaitlistUsecase {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewWaitlistUsecase(
		env.db, log,
		repository.NewWaitlistRepository(),
		repository.NewAppointmentRepository(),
		repository.NewClientRepository(),
		repository.NewProfessionalRepository(),
		repository.NewServiceRepository(),
	)
}

func (e *testEnv) joinRequest() *dto.JoinWaitlistRequest {
	return &dto.JoinWaitlistRequest{
		ClientID:       e.client.ID,
		ProfessionalID: e.professional.ID,
		ServiceID:      e.service.ID,
	}
}

func TestJoinWaitlist(t *testing.T) {
	env := newTestEnv(t)
	uc := newWaitlistUsecase(t, env)

	entry, err := uc.Join(env.ctx(), env.joinRequest())
	if err != nil {
		t.Fatalf("Join() error: %v", err)
	}
	if entry.Status != string(entity.WaitlistStatusActive) {
		t.Errorf("status = %s, want ACTIVE", entry.Status)
	}
}

func TestJoinWaitlistValidation(t *testing.T) {
	env := newTestEnv(t)
	uc := newWaitlistUsecase(t, env)

	req := env.joinRequest()
	req.PreferredStart = "2025-03-10T10:00:00Z"
	req.PreferredEnd = "2025-03-10T09:00:00Z"
	if _, err := uc.Join(env.ctx(), req); err != ErrInvalidPreferredWindow {
		t.Errorf("Join() error = %v, want ErrInvalidPreferredWindow", err)
	}

	env.db.Model(env.service).Update("active", false)
	if _, err := uc.Join(env.ctx(), env.joinRequest()); err != ErrServiceNotFound {
		t.Errorf("Join() error = %v, want ErrServiceNotFound for an inactive service", err)
	}
}

func TestFillSlotPromotesFIFO(t *testing.T) {
	env := newTestEnv(t)
	uc := newWaitlistUsecase(t, env)

	secondClient := &entity.Client{EstablishmentID: env.establishment.ID, FullName: "Bruno Costa", Email: "bruno@example.com"}
	if err := env.db.Create(secondClient).Error; err != nil {
		t.Fatal(err)
	}

	// queue two clients, oldest first
	first := &entity.WaitlistEntry{
		EstablishmentID: env.establishment.ID,
		ClientID:        env.client.ID,
		ProfessionalID:  env.professional.ID,
		ServiceID:       env.service.ID,
		Status:          entity.WaitlistStatusActive,
		CreatedAt:       time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	second := &entity.WaitlistEntry{
		EstablishmentID: env.establishment.ID,
		ClientID:        secondClient.ID,
		ProfessionalID:  env.professional.ID,
		ServiceID:       env.service.ID,
		Status:          entity.WaitlistStatusActive,
		CreatedAt:       time.Date(2025, 3, 1, 9, 5, 0, 0, time.UTC),
	}
	if err := env.db.Create(first).Error; err != nil {
		t.Fatal(err)
	}
	if err := env.db.Create(second).Error; err != nil {
		t.Fatal(err)
	}

	slotStart := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	result, err := uc.Fill(env.ctx(), &dto.FillSlotRequest{
		ProfissionalID: env.professional.ID,
		Inicio:         slotStart.Format(time.RFC3339),
		Fim:            slotStart.Add(30 * time.Minute).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("Fill() error: %v", err)
	}

	if !result.Preenchido || result.Agendamento == nil {
		t.Fatal("Fill() did not promote anyone with a non-empty queue")
	}
	if result.Agendamento.ClientID != env.client.ID {
		t.Errorf("promoted client = %s, want the oldest entry's client", result.Agendamento.ClientID)
	}
	if !result.Agendamento.StartTime.Equal(slotStart) || !result.Agendamento.EndTime.Equal(slotStart.Add(30*time.Minute)) {
		t.Errorf("promoted interval = [%s, %s), want the freed slot", result.Agendamento.StartTime, result.Agendamento.EndTime)
	}

	var entry entity.WaitlistEntry
	if err := env.db.First(&entry, "id = ?", first.ID).Error; err != nil {
		t.Fatal(err)
	}
	if entry.Status != entity.WaitlistStatusFulfilled {
		t.Errorf("entry status = %s, want FULFILLED", entry.Status)
	}

	// next fill consumes the second entry
	result, err = uc.Fill(env.ctx(), &dto.FillSlotRequest{
		ProfissionalID: env.professional.ID,
		Inicio:         slotStart.Add(time.Hour).Format(time.RFC3339),
		Fim:            slotStart.Add(90 * time.Minute).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("Fill() error: %v", err)
	}
	if !result.Preenchido || result.Agendamento.ClientID != secondClient.ID {
		t.Error("second Fill() did not promote the second queued client")
	}
}

func TestFillSlotConcurrentClaimsPromoteOnce(t *testing.T) {
	env := newTestEnv(t)
	uc := newWaitlistUsecase(t, env)

	if _, err := uc.Join(env.ctx(), env.joinRequest()); err != nil {
		t.Fatalf("Join() error: %v", err)
	}

	// two promoters race for the single queued entry over different slots
	slotStart := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	results := make(chan *dto.FillSlotResponse, 2)
	errs := make(chan error, 2)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		offset := time.Duration(i) * time.Hour
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := uc.Fill(env.ctx(), &dto.FillSlotRequest{
				ProfissionalID: env.professional.ID,
				Inicio:         slotStart.Add(offset).Format(time.RFC3339),
				Fim:            slotStart.Add(offset + 30*time.Minute).Format(time.RFC3339),
			})
			results <- res
			errs <- err
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("Fill() error: %v", err)
		}
	}

	promoted := 0
	for res := range results {
		if res.Preenchido {
			promoted++
		}
	}
	if promoted != 1 {
		t.Errorf("promotions = %d, want exactly one for a single queued entry", promoted)
	}

	var count int64
	env.db.Model(&entity.Appointment{}).Count(&count)
	if count != 1 {
		t.Errorf("appointment count = %d, want 1", count)
	}
}

func TestFillSlotEmptyQueue(t *testing.T) {
	env := newTestEnv(t)
	uc := newWaitlistUsecase(t, env)

	slotStart := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	result, err := uc.Fill(env.ctx(), &dto.FillSlotRequest{
		ProfissionalID: env.professional.ID,
		Inicio:         slotStart.Format(time.RFC3339),
		Fim:            slotStart.Add(30 * time.Minute).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("Fill() error: %v", err)
	}

	if result.Preenchido || result.Agendamento != nil {
		t.Error("Fill() on an empty queue must report preenchido=false with no appointment")
	}
}

func TestFillSlotInvalidInterval(t *testing.T) {
	env := newTestEnv(t)
	uc := newWaitlistUsecase(t, env)

	slotStart := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	_, err := uc.Fill(env.ctx(), &dto.FillSlotRequest{
		ProfissionalID: env.professional.ID,
		Inicio:         slotStart.Format(time.RFC3339),
		Fim:            slotStart.Format(time.RFC3339),
	})
	if err != ErrInvalidSlotInterval {
		t.Errorf("Fill() error = %v, want ErrInvalidSlotInterval", err)
	}
}
