package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetTypeWeekly  = "weekly"
	BudgetTypeMonthly = "monthly"
)

var ErrInvalidBudgetType = errors.New("invalid budget type")

// Budget reserves an amount of cash on hand for a weekly or monthly period.
// Allocations are tracked against Profile.CashOnHand; closing a budget only
// deactivates it, returning funds is the caller's decision.
type Budget struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string          `gorm:"type:varchar(150);not null;default:'Budget'" json:"name"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	BudgetType string          `gorm:"type:varchar(10);not null" json:"budget_type"`
	CategoryID *uuid.UUID      `gorm:"type:uuid" json:"category_id,omitempty"`
	StartDate  time.Time       `gorm:"not null;index" json:"start_date"`
	EndDate    *time.Time      `json:"end_date,omitempty"`
	IsActive   bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	if b.EndDate == nil {
		end := b.PeriodEnd()
		b.EndDate = &end
	}
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if !IsValidBudgetType(b.BudgetType) {
		return ErrInvalidBudgetType
	}
	if b.StartDate.IsZero() {
		return errors.New("start date is required")
	}
	return nil
}

// PeriodEnd derives the natural end of the budget period from its start:
// six days after the start for weekly budgets, the last day of the starting
// month for monthly ones.
func (b *Budget) PeriodEnd() time.Time {
	if b.BudgetType == BudgetTypeWeekly {
		return b.StartDate.AddDate(0, 0, 6)
	}
	firstOfMonth := time.Date(b.StartDate.Year(), b.StartDate.Month(), 1, 0, 0, 0, 0, b.StartDate.Location())
	return firstOfMonth.AddDate(0, 1, -1)
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// IsValidBudgetType checks if the budget type is valid
func IsValidBudgetType(budgetType string) bool {
	return budgetType == BudgetTypeWeekly || budgetType == BudgetTypeMonthly
}
