package service

import (
	"testing"
	"time"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestComputeFee(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	price := decimal.NewFromInt(100)

	percentPolicy := &entity.CancellationPolicy{
		MinimumNoticeHours: decimal.NewFromInt(24),
		FeeType:            entity.FeeTypePercentage,
		FeeValue:           decimal.NewFromInt(50),
	}
	fixedPolicy := &entity.CancellationPolicy{
		MinimumNoticeHours: decimal.NewFromInt(24),
		FeeType:            entity.FeeTypeFixed,
		FeeValue:           decimal.NewFromInt(20),
	}

	svc := NewCancellationFeeService()

	tests := []struct {
		name      string
		startTime time.Time
		policy    *entity.CancellationPolicy
		want      decimal.Decimal
	}{
		{"no policy means free", now.Add(1 * time.Hour), nil, decimal.Zero},
		{"enough notice means free", now.Add(30 * time.Hour), percentPolicy, decimal.Zero},
		{"notice exactly at threshold is free", now.Add(24 * time.Hour), percentPolicy, decimal.Zero},
		{"late cancel charges percentage", now.Add(10 * time.Hour), percentPolicy, decimal.NewFromInt(50)},
		{"late cancel charges fixed value", now.Add(10 * time.Hour), fixedPolicy, decimal.NewFromInt(20)},
		{"past start still charges", now.Add(-1 * time.Hour), percentPolicy, decimal.NewFromInt(50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.ComputeFee(tt.startTime, price, tt.policy, now)
			if !got.Equal(tt.want) {
				t.Errorf("ComputeFee() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestComputeFeePercentageRounding(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	policy := &entity.CancellationPolicy{
		MinimumNoticeHours: decimal.NewFromInt(24),
		FeeType:            entity.FeeTypePercentage,
		FeeValue:           decimal.NewFromFloat(33.33),
	}

	svc := NewCancellationFeeService()
	got := svc.ComputeFee(now.Add(time.Hour), decimal.NewFromFloat(59.90), policy, now)

	want := decimal.NewFromFloat(19.96)
	if !got.Equal(want) {
		t.Errorf("ComputeFee() = %s, want %s", got, want)
	}
}
