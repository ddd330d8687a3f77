package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CancellationFeeType determines how a cancellation fee is computed
type CancellationFeeType string

const (
	FeeTypePercentage CancellationFeeType = "PERCENTAGE"
	FeeTypeFixed      CancellationFeeType = "FIXED"
)

// CancellationPolicy configures the late-cancellation fee of an
// establishment. At most one policy per establishment is consulted; when no
// policy exists, cancellations are free.
type CancellationPolicy struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	EstablishmentID     uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:cancellation_policies_establishment_key" json:"establishment_id"`
	MinimumNoticeHours  decimal.Decimal     `gorm:"type:decimal(6,2);not null" json:"minimum_notice_hours"`
	FeeType             CancellationFeeType `gorm:"type:varchar(20);not null" json:"fee_type"`
	FeeValue            decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"fee_value"`
	CreatedAt           time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CancellationPolicy) TableName() string {
	return "cancellation_policies"
}

func (p *CancellationPolicy) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
