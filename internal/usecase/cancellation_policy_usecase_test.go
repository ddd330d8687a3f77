package usecase

import (
	"io"
	"testing"

	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func newPolicyUsecase(t *testing.T, env *testEnv) CancellationPolicyUsecase {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewCancellationPolicyUsecase(env.db, log, repository.NewCancellationPolicyRepository())
}

func TestUpsertPolicyAllowsZeroValues(t *testing.T) {
	env := newTestEnv(t)
	uc := newPolicyUsecase(t, env)

	policy, err := uc.Upsert(env.ctx(), &dto.UpsertCancellationPolicyRequest{FeeType: "FIXED"})
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}
	if !policy.MinimumNoticeHours.IsZero() || !policy.FeeValue.IsZero() {
		t.Errorf("policy = %+v, want zero notice hours and a free fixed fee", policy)
	}

	got, err := uc.Get(env.ctx())
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.FeeType != "FIXED" {
		t.Errorf("fee_type = %s, want FIXED", got.FeeType)
	}
}

func TestUpsertPolicyReplacesPrevious(t *testing.T) {
	env := newTestEnv(t)
	uc := newPolicyUsecase(t, env)

	if _, err := uc.Upsert(env.ctx(), &dto.UpsertCancellationPolicyRequest{
		MinimumNoticeHours: decimal.NewFromInt(24),
		FeeType:            "PERCENTAGE",
		FeeValue:           decimal.NewFromInt(50),
	}); err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}

	if _, err := uc.Upsert(env.ctx(), &dto.UpsertCancellationPolicyRequest{
		MinimumNoticeHours: decimal.NewFromInt(12),
		FeeType:            "FIXED",
		FeeValue:           decimal.NewFromInt(20),
	}); err != nil {
		t.Fatalf("second Upsert() error: %v", err)
	}

	got, err := uc.Get(env.ctx())
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.FeeType != "FIXED" || !got.FeeValue.Equal(decimal.NewFromInt(20)) {
		t.Errorf("policy = %s/%s, want the replacement FIXED/20", got.FeeType, got.FeeValue)
	}
}

func TestUpsertPolicyRejectsNegativeValues(t *testing.T) {
	env := newTestEnv(t)
	uc := newPolicyUsecase(t, env)

	_, err := uc.Upsert(env.ctx(), &dto.UpsertCancellationPolicyRequest{
		FeeType:  "FIXED",
		FeeValue: decimal.NewFromInt(-10),
	})
	if err != ErrNegativePolicyValue {
		t.Errorf("Upsert() error = %v, want ErrNegativePolicyValue", err)
	}
}

func TestGetPolicyNotFound(t *testing.T) {
	env := newTestEnv(t)
	uc := newPolicyUsecase(t, env)

	if _, err := uc.Get(env.ctx()); err != ErrPolicyNotFound {
		t.Errorf("Get() error = %v, want ErrPolicyNotFound", err)
	}
}
