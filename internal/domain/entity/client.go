package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Client represents a customer of an establishment.
// The metric counters are side effects of appointment lifecycle transitions
// and are never written directly by API callers.
type Client struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	EstablishmentID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:clients_email_key" json:"establishment_id"`
	FullName        string          `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone           string          `gorm:"type:varchar(20)" json:"phone"`
	Email           string          `gorm:"type:varchar(255);uniqueIndex:clients_email_key" json:"email"`
	BirthDate       *time.Time      `json:"birth_date"`
	Address         string          `gorm:"type:text" json:"address"`
	EarnedIncome    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"earned_income"`
	LostIncome      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"lost_income"`
	NoShows         int             `gorm:"not null;default:0" json:"no_shows"`
	Cancellations   int             `gorm:"not null;default:0" json:"cancellations"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
