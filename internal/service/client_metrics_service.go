package service

import (
	"github.com/MatheusScaranello/AgendaProBack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ClientMetricsService applies the per-client counter side effects of
// appointment lifecycle transitions. Always invoked with the caller's
// transaction so the counters commit or roll back with the transition itself.
type ClientMetricsService interface {
	RecordCompleted(tx *gorm.DB, clientID uuid.UUID, amount decimal.Decimal) error
	RecordNoShow(tx *gorm.DB, clientID uuid.UUID, lostAmount decimal.Decimal) error
	RecordCancellation(tx *gorm.DB, clientID uuid.UUID) error
}

type clientMetricsService struct {
	log        *logrus.Logger
	clientRepo repository.ClientRepository
}

func NewClientMetricsService(log *logrus.Logger, clientRepo repository.ClientRepository) ClientMetricsService {
	return &clientMetricsService{
		log:        log,
		clientRepo: clientRepo,
	}
}

func (s *clientMetricsService) RecordCompleted(tx *gorm.DB, clientID uuid.UUID, amount decimal.Decimal) error {
	if err := s.clientRepo.IncrementEarnedIncome(tx, clientID, amount); err != nil {
		s.log.Warnf("Failed to record earned income for client %s: %+v", clientID, err)
		return err
	}
	return nil
}

func (s *clientMetricsService) RecordNoShow(tx *gorm.DB, clientID uuid.UUID, lostAmount decimal.Decimal) error {
	if err := s.clientRepo.IncrementNoShow(tx, clientID, lostAmount); err != nil {
		s.log.Warnf("Failed to record no-show for client %s: %+v", clientID, err)
		return err
	}
	return nil
}

func (s *clientMetricsService) RecordCancellation(tx *gorm.DB, clientID uuid.UUID) error {
	if err := s.clientRepo.IncrementCancellations(tx, clientID); err != nil {
		s.log.Warnf("Failed to record cancellation for client %s: %+v", clientID, err)
		return err
	}
	return nil
}
