package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleStatus represents the payment status of a sale
type SaleStatus string

const (
	SaleStatusPaid    SaleStatus = "PAID"
	SaleStatusPending SaleStatus = "PENDING"
)

// Sale is the ledger record written when an appointment completes. Sales
// created by the lifecycle manager are marked paid immediately.
type Sale struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	EstablishmentID uuid.UUID       `gorm:"type:uuid;not null;index" json:"establishment_id"`
	ClientID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
	AppointmentID   *uuid.UUID      `gorm:"type:uuid;index" json:"appointment_id"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	FinalAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"final_amount"`
	Status          SaleStatus      `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Sale) TableName() string {
	return "sales"
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
