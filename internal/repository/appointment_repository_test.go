package repository

import (
	"testing"
	"time"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	// a single connection keeps the in-memory database alive and serialized
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.Establishment{},
		&entity.Client{},
		&entity.Professional{},
		&entity.Absence{},
		&entity.Service{},
		&entity.Asset{},
		&entity.Appointment{},
		&entity.CancellationPolicy{},
		&entity.Cancellation{},
		&entity.Sale{},
		&entity.WaitlistEntry{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

type fixture struct {
	establishment *entity.Establishment
	client        *entity.Client
	professional  *entity.Professional
	service       *entity.Service
}

func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()

	f := &fixture{
		establishment: &entity.Establishment{
			Name:     "Studio Bela",
			Email:    "contato@studiobela.com",
			Password: "hashed",
		},
	}
	if err := db.Create(f.establishment).Error; err != nil {
		t.Fatalf("failed to seed establishment: %v", err)
	}

	f.client = &entity.Client{
		EstablishmentID: f.establishment.ID,
		FullName:        "Ana Souza",
		Email:           "ana@example.com",
	}
	if err := db.Create(f.client).Error; err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}

	f.professional = &entity.Professional{
		EstablishmentID: f.establishment.ID,
		FullName:        "Carlos Lima",
		Active:          true,
	}
	if err := db.Create(f.professional).Error; err != nil {
		t.Fatalf("failed to seed professional: %v", err)
	}

	f.service = &entity.Service{
		EstablishmentID: f.establishment.ID,
		Name:            "Corte",
		DurationMinutes: 30,
		Price:           decimal.NewFromInt(100),
		Active:          true,
	}
	if err := db.Create(f.service).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}

	return f
}

func (f *fixture) newAppointment(start time.Time, duration time.Duration, status entity.AppointmentStatus) *entity.Appointment {
	return &entity.Appointment{
		EstablishmentID: f.establishment.ID,
		ClientID:        f.client.ID,
		ProfessionalID:  f.professional.ID,
		ServiceID:       f.service.ID,
		StartTime:       start,
		EndTime:         start.Add(duration),
		Status:          status,
	}
}

func TestFindOverlappingForProfessional(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewAppointmentRepository()

	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	booked := f.newAppointment(base, 30*time.Minute, entity.AppointmentStatusScheduled)
	if err := repo.Create(db, booked); err != nil {
		t.Fatalf("failed to create appointment: %v", err)
	}

	tests := []struct {
		name          string
		start, end    time.Time
		wantConflicts int
	}{
		{"overlapping window conflicts", base.Add(15 * time.Minute), base.Add(45 * time.Minute), 1},
		{"contained window conflicts", base.Add(5 * time.Minute), base.Add(10 * time.Minute), 1},
		{"back-to-back after is free", base.Add(30 * time.Minute), base.Add(time.Hour), 0},
		{"back-to-back before is free", base.Add(-30 * time.Minute), base, 0},
		{"disjoint is free", base.Add(2 * time.Hour), base.Add(3 * time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts, err := repo.FindOverlappingForProfessional(db, f.professional.ID, tt.start, tt.end, nil)
			if err != nil {
				t.Fatalf("FindOverlappingForProfessional() error: %v", err)
			}
			if len(conflicts) != tt.wantConflicts {
				t.Errorf("got %d conflicts, want %d", len(conflicts), tt.wantConflicts)
			}
		})
	}
}

func TestFindOverlappingIgnoresCanceledAndNoShow(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewAppointmentRepository()

	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	for _, status := range []entity.AppointmentStatus{entity.AppointmentStatusCanceled, entity.AppointmentStatusNoShow} {
		if err := repo.Create(db, f.newAppointment(base, 30*time.Minute, status)); err != nil {
			t.Fatalf("failed to create appointment: %v", err)
		}
	}

	conflicts, err := repo.FindOverlappingForProfessional(db, f.professional.ID, base, base.Add(30*time.Minute), nil)
	if err != nil {
		t.Fatalf("FindOverlappingForProfessional() error: %v", err)
	}
	if len(conflicts) != 0 {
		t.Errorf("got %d conflicts, want 0: canceled and no-show slots are free", len(conflicts))
	}

	// a completed appointment still blocks
	if err := repo.Create(db, f.newAppointment(base, 30*time.Minute, entity.AppointmentStatusCompleted)); err != nil {
		t.Fatalf("failed to create appointment: %v", err)
	}
	conflicts, err = repo.FindOverlappingForProfessional(db, f.professional.ID, base, base.Add(30*time.Minute), nil)
	if err != nil {
		t.Fatalf("FindOverlappingForProfessional() error: %v", err)
	}
	if len(conflicts) != 1 {
		t.Errorf("got %d conflicts, want 1: completed slots still block", len(conflicts))
	}
}

func TestFindOverlappingExcludesOwnRow(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewAppointmentRepository()

	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	booked := f.newAppointment(base, 30*time.Minute, entity.AppointmentStatusScheduled)
	if err := repo.Create(db, booked); err != nil {
		t.Fatalf("failed to create appointment: %v", err)
	}

	conflicts, err := repo.FindOverlappingForProfessional(db, f.professional.ID, base, base.Add(30*time.Minute), &booked.ID)
	if err != nil {
		t.Fatalf("FindOverlappingForProfessional() error: %v", err)
	}
	if len(conflicts) != 0 {
		t.Errorf("got %d conflicts, want 0 when excluding the appointment's own row", len(conflicts))
	}
}

func TestUpdateStatusFrom(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewAppointmentRepository()

	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	appointment := f.newAppointment(base, 30*time.Minute, entity.AppointmentStatusScheduled)
	if err := repo.Create(db, appointment); err != nil {
		t.Fatalf("failed to create appointment: %v", err)
	}

	rows, err := repo.UpdateStatusFrom(db, appointment.ID, entity.AppointmentStatusScheduled, entity.AppointmentStatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatusFrom() error: %v", err)
	}
	if rows != 1 {
		t.Fatalf("UpdateStatusFrom() rows = %d, want 1", rows)
	}

	// second claim on the same expected status loses
	rows, err = repo.UpdateStatusFrom(db, appointment.ID, entity.AppointmentStatusScheduled, entity.AppointmentStatusCanceled)
	if err != nil {
		t.Fatalf("UpdateStatusFrom() error: %v", err)
	}
	if rows != 0 {
		t.Errorf("UpdateStatusFrom() rows = %d, want 0 after the status already moved", rows)
	}

	got, err := repo.FindByID(db, f.establishment.ID, appointment.ID)
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}
	if got.Status != entity.AppointmentStatusCompleted {
		t.Errorf("status = %s, want COMPLETED", got.Status)
	}
}

func TestListOrdersByStartTime(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewAppointmentRepository()

	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		if err := repo.Create(db, f.newAppointment(base.Add(offset), 30*time.Minute, entity.AppointmentStatusScheduled)); err != nil {
			t.Fatalf("failed to create appointment: %v", err)
		}
	}

	appointments, err := repo.List(db, f.establishment.ID, nil)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(appointments) != 3 {
		t.Fatalf("got %d appointments, want 3", len(appointments))
	}
	for i := 1; i < len(appointments); i++ {
		if appointments[i].StartTime.Before(appointments[i-1].StartTime) {
			t.Errorf("appointments out of order at index %d", i)
		}
	}
}

func TestListFilters(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewAppointmentRepository()

	other := &entity.Professional{EstablishmentID: f.establishment.ID, FullName: "Joana Reis", Active: true}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("failed to seed professional: %v", err)
	}

	day1 := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	if err := repo.Create(db, f.newAppointment(day1, 30*time.Minute, entity.AppointmentStatusScheduled)); err != nil {
		t.Fatal(err)
	}
	second := f.newAppointment(day2, 30*time.Minute, entity.AppointmentStatusScheduled)
	second.ProfessionalID = other.ID
	if err := repo.Create(db, second); err != nil {
		t.Fatal(err)
	}

	byProfessional, err := repo.List(db, f.establishment.ID, &entity.AppointmentFilter{ProfessionalID: &f.professional.ID})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(byProfessional) != 1 || byProfessional[0].ProfessionalID != f.professional.ID {
		t.Errorf("professional filter returned %d rows", len(byProfessional))
	}

	rangeStart := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	byDate, err := repo.List(db, f.establishment.ID, &entity.AppointmentFilter{StartDate: &rangeStart})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(byDate) != 1 || !byDate[0].StartTime.Equal(day2) {
		t.Errorf("date filter returned %d rows", len(byDate))
	}
}

func TestDeleteScopedToEstablishment(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewAppointmentRepository()

	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	appointment := f.newAppointment(base, 30*time.Minute, entity.AppointmentStatusScheduled)
	if err := repo.Create(db, appointment); err != nil {
		t.Fatalf("failed to create appointment: %v", err)
	}

	rows, err := repo.Delete(db, uuid.New(), appointment.ID)
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if rows != 0 {
		t.Errorf("Delete() rows = %d, want 0 for a foreign establishment", rows)
	}

	rows, err = repo.Delete(db, f.establishment.ID, appointment.ID)
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if rows != 1 {
		t.Errorf("Delete() rows = %d, want 1", rows)
	}
}
