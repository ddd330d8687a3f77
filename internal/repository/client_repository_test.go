package repository

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestClientMetricIncrements(t *testing.T) {
	db := openTestDB(t)
	f := seedFixture(t, db)
	repo := NewClientRepository()

	if err := repo.IncrementEarnedIncome(db, f.client.ID, decimal.NewFromInt(100)); err != nil {
		t.Fatalf("IncrementEarnedIncome() error: %v", err)
	}
	if err := repo.IncrementEarnedIncome(db, f.client.ID, decimal.NewFromFloat(59.90)); err != nil {
		t.Fatalf("IncrementEarnedIncome() error: %v", err)
	}
	if err := repo.IncrementNoShow(db, f.client.ID, decimal.NewFromInt(100)); err != nil {
		t.Fatalf("IncrementNoShow() error: %v", err)
	}
	if err := repo.IncrementCancellations(db, f.client.ID); err != nil {
		t.Fatalf("IncrementCancellations() error: %v", err)
	}

	client, err := repo.FindByID(db, f.establishment.ID, f.client.ID)
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}

	if !client.EarnedIncome.Equal(decimal.NewFromFloat(159.90)) {
		t.Errorf("earned_income = %s, want 159.90", client.EarnedIncome)
	}
	if !client.LostIncome.Equal(decimal.NewFromInt(100)) {
		t.Errorf("lost_income = %s, want 100", client.LostIncome)
	}
	if client.NoShows != 1 {
		t.Errorf("no_shows = %d, want 1", client.NoShows)
	}
	if client.Cancellations != 1 {
		t.Errorf("cancellations = %d, want 1", client.Cancellations)
	}
}
