package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Profile carries the per-user financial state: declared monthly income and
// the cash-on-hand figure every transaction is applied against.
type Profile struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	MonthlyIncome decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"monthly_income"`
	CashOnHand    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"cash_on_hand"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Profile
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

// BeforeUpdate hook for Profile
func (p *Profile) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}

// Validate validates the profile fields
func (p *Profile) Validate() error {
	if p.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if p.MonthlyIncome.IsNegative() {
		return errors.New("monthly income cannot be negative")
	}
	return nil
}

// AvailableToAllocate returns how much cash remains available to be
// reserved into budgets, given the sum of active allocations.
func (p *Profile) AvailableToAllocate(allocated decimal.Decimal) decimal.Decimal {
	return p.CashOnHand.Sub(allocated)
}

// TableName returns the table name for Profile
func (p *Profile) TableName() string {
	return "profiles"
}
