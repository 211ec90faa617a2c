package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Savings records a deliberate set-aside of cash. Each entry is mirrored by
// a savings-type Transaction so the balance pipeline stays in one place.
type Savings struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(255)" json:"description,omitempty"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Savings
func (s *Savings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now()
	if s.Date.IsZero() {
		s.Date = now
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}

	return s.Validate()
}

// Validate validates the savings fields
func (s *Savings) Validate() error {
	if s.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if s.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// TableName returns the table name for Savings
func (s *Savings) TableName() string {
	return "savings"
}
