package service

import (
	"time"

	"github.com/MatheusScaranello/AgendaProBack/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CancellationFeeService computes the late-cancellation fee from an
// establishment's policy and the time remaining before the appointment. The
// fee is informational: it is persisted on the cancellation record but does
// not trigger a payment capture.
type CancellationFeeService interface {
	ComputeFee(startTime time.Time, price decimal.Decimal, policy *entity.CancellationPolicy, now time.Time) decimal.Decimal
}

type cancellationFeeService struct{}

func NewCancellationFeeService() CancellationFeeService {
	return &cancellationFeeService{}
}

// ComputeFee returns zero when no policy exists or when the cancellation
// respects the minimum notice. Otherwise the fee is the fixed value or the
// configured percentage of the service price.
func (s *cancellationFeeService) ComputeFee(startTime time.Time, price decimal.Decimal, policy *entity.CancellationPolicy, now time.Time) decimal.Decimal {
	if policy == nil {
		return decimal.Zero
	}

	hoursUntilStart := decimal.NewFromFloat(startTime.Sub(now).Hours())
	if hoursUntilStart.GreaterThanOrEqual(policy.MinimumNoticeHours) {
		return decimal.Zero
	}

	if policy.FeeType == entity.FeeTypeFixed {
		return policy.FeeValue
	}
	return price.Mul(policy.FeeValue).Div(hundred).Round(2)
}
