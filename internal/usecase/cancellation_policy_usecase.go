package usecase

import (
	"context"
	"errors"

	"github.com/MatheusScaranello/AgendaProBack/internal/converter"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/dto"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/http/middleware"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPolicyNotFound      = errors.New("cancellation policy not found")
	ErrNegativePolicyValue = errors.New("minimum_notice_hours and fee_value must not be negative")
)

// CancellationPolicyUsecase maintains the per-establishment cancellation
// policy. One policy per tenant: Upsert replaces the previous one, and the
// fee engine consults whatever row is current at cancellation time.
type CancellationPolicyUsecase interface {
	Upsert(ctx context.Context, req *dto.UpsertCancellationPolicyRequest) (*dto.CancellationPolicyResponse, error)
	Get(ctx context.Context) (*dto.CancellationPolicyResponse, error)
}

type cancellationPolicyUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	policyRepo repository.CancellationPolicyRepository
}

func NewCancellationPolicyUsecase(db *gorm.DB, log *logrus.Logger, policyRepo repository.CancellationPolicyRepository) CancellationPolicyUsecase {
	return &cancellationPolicyUsecase{db: db, log: log, policyRepo: policyRepo}
}

func (u *cancellationPolicyUsecase) Upsert(ctx context.Context, req *dto.UpsertCancellationPolicyRequest) (*dto.CancellationPolicyResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	if req.MinimumNoticeHours.IsNegative() || req.FeeValue.IsNegative() {
		return nil, ErrNegativePolicyValue
	}

	policy := &entity.CancellationPolicy{
		EstablishmentID:    establishmentID,
		MinimumNoticeHours: req.MinimumNoticeHours,
		FeeType:            entity.CancellationFeeType(req.FeeType),
		FeeValue:           req.FeeValue,
	}

	if err := u.policyRepo.Upsert(u.db.WithContext(ctx), policy); err != nil {
		u.log.Warnf("Failed to upsert cancellation policy: %+v", err)
		return nil, err
	}

	u.log.Infof("Cancellation policy set: establishment=%s, type=%s", establishmentID, policy.FeeType)
	return converter.CancellationPolicyToResponse(policy), nil
}

func (u *cancellationPolicyUsecase) Get(ctx context.Context) (*dto.CancellationPolicyResponse, error) {
	establishmentID, ok := middleware.GetEstablishmentIDFromContext(ctx)
	if !ok {
		return nil, ErrNoEstablishmentInContext
	}

	policy, err := u.policyRepo.FindByEstablishment(u.db.WithContext(ctx), establishmentID)
	if err != nil {
		u.log.Warnf("Failed to find cancellation policy: %+v", err)
		return nil, err
	}
	if policy == nil {
		return nil, ErrPolicyNotFound
	}

	return converter.CancellationPolicyToResponse(policy), nil
}
