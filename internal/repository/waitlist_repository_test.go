package repository

import (
	"testing"
	"time"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
)

func TestFindOldestActiveIsFIFO(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewWaitlistRepository()

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	var entries []*entity.WaitlistEntry
	for i := 0; i < 3; i++ {
		entry := &entity.WaitlistEntry{
			EstablishmentID: f.establishment.ID,
			ClientID:        f.client.ID,
			ProfessionalID:  f.professional.ID,
			ServiceID:       f.service.ID,
			Status:          entity.WaitlistStatusActive,
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(db, entry); err != nil {
			t.Fatalf("failed to create waitlist entry: %v", err)
		}
		entries = append(entries, entry)
	}

	oldest, err := repo.FindOldestActive(db, f.establishment.ID, f.professional.ID)
	if err != nil {
		t.Fatalf("FindOldestActive() error: %v", err)
	}
	if oldest == nil || oldest.ID != entries[0].ID {
		t.Fatalf("FindOldestActive() did not return the first entry")
	}

	if _, err := repo.MarkFulfilled(db, oldest.ID); err != nil {
		t.Fatalf("MarkFulfilled() error: %v", err)
	}

	next, err := repo.FindOldestActive(db, f.establishment.ID, f.professional.ID)
	if err != nil {
		t.Fatalf("FindOldestActive() error: %v", err)
	}
	if next == nil || next.ID != entries[1].ID {
		t.Fatalf("FindOldestActive() did not advance to the second entry")
	}
}

func TestMarkFulfilledClaimsOnce(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewWaitlistRepository()

	entry := &entity.WaitlistEntry{
		EstablishmentID: f.establishment.ID,
		ClientID:        f.client.ID,
		ProfessionalID:  f.professional.ID,
		ServiceID:       f.service.ID,
		Status:          entity.WaitlistStatusActive,
	}
	if err := repo.Create(db, entry); err != nil {
		t.Fatalf("failed to create waitlist entry: %v", err)
	}

	rows, err := repo.MarkFulfilled(db, entry.ID)
	if err != nil {
		t.Fatalf("MarkFulfilled() error: %v", err)
	}
	if rows != 1 {
		t.Fatalf("first claim rows = %d, want 1", rows)
	}

	rows, err = repo.MarkFulfilled(db, entry.ID)
	if err != nil {
		t.Fatalf("MarkFulfilled() error: %v", err)
	}
	if rows != 0 {
		t.Errorf("second claim rows = %d, want 0", rows)
	}
}

func TestFindOldestActiveEmptyQueue(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewWaitlistRepository()

	entry, err := repo.FindOldestActive(db, f.establishment.ID, f.professional.ID)
	if err != nil {
		t.Fatalf("FindOldestActive() error: %v", err)
	}
	if entry != nil {
		t.Errorf("FindOldestActive() = %v, want nil for an empty queue", entry)
	}
}
