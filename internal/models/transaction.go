package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
	TransactionTypeSavings = "savings"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
)

// Transaction represents a single recorded income, expense, or savings event.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Title           string          `gorm:"type:varchar(200)" json:"title"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	TransactionType string          `gorm:"type:varchar(10);not null;index" json:"transaction_type"`
	CategoryID      *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Date            time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	if t.Date.IsZero() {
		t.Date = now
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if len(t.Title) > 200 {
		return errors.New("title too long")
	}

	return nil
}

// IsIncome returns true if the transaction adds to cash on hand
func (t *Transaction) IsIncome() bool {
	return t.TransactionType == TransactionTypeIncome
}

// IsExpense returns true if the transaction is an expense
func (t *Transaction) IsExpense() bool {
	return t.TransactionType == TransactionTypeExpense
}

// BalanceEffect returns the signed amount this transaction applies to
// cash on hand: income adds, expense and savings deduct.
func (t *Transaction) BalanceEffect() decimal.Decimal {
	if t.IsIncome() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// CategoryName returns the display name of the attached category,
// or an empty string when the transaction is uncategorized.
func (t *Transaction) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeSavings:
		return true
	default:
		return false
	}
}
