package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     bool
		errMsg      string
	}{
		{
			name: "valid income",
			transaction: Transaction{
				UserID:          validUserID,
				Title:           "Salary",
				Amount:          decimal.NewFromFloat(3200.00),
				TransactionType: TransactionTypeIncome,
			},
			wantErr: false,
		},
		{
			name: "valid expense",
			transaction: Transaction{
				UserID:          validUserID,
				Title:           "Groceries",
				Amount:          decimal.NewFromFloat(82.50),
				TransactionType: TransactionTypeExpense,
			},
			wantErr: false,
		},
		{
			name: "valid savings",
			transaction: Transaction{
				UserID:          validUserID,
				Title:           "Savings",
				Amount:          decimal.NewFromFloat(150.00),
				TransactionType: TransactionTypeSavings,
			},
			wantErr: false,
		},
		{
			name: "missing user ID",
			transaction: Transaction{
				Amount:          decimal.NewFromFloat(10.00),
				TransactionType: TransactionTypeExpense,
			},
			wantErr: true,
			errMsg:  "user ID is required",
		},
		{
			name: "invalid type",
			transaction: Transaction{
				UserID:          validUserID,
				Amount:          decimal.NewFromFloat(10.00),
				TransactionType: "transfer",
			},
			wantErr: true,
			errMsg:  "invalid transaction type",
		},
		{
			name: "zero amount",
			transaction: Transaction{
				UserID:          validUserID,
				Amount:          decimal.Zero,
				TransactionType: TransactionTypeExpense,
			},
			wantErr: true,
			errMsg:  "must be positive",
		},
		{
			name: "negative amount",
			transaction: Transaction{
				UserID:          validUserID,
				Amount:          decimal.NewFromFloat(-5.00),
				TransactionType: TransactionTypeExpense,
			},
			wantErr: true,
			errMsg:  "must be positive",
		},
		{
			name: "title too long",
			transaction: Transaction{
				UserID:          validUserID,
				Title:           strings.Repeat("x", 201),
				Amount:          decimal.NewFromFloat(10.00),
				TransactionType: TransactionTypeExpense,
			},
			wantErr: true,
			errMsg:  "title too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_BalanceEffect(t *testing.T) {
	amount := decimal.NewFromFloat(45.50)

	income := Transaction{TransactionType: TransactionTypeIncome, Amount: amount}
	assert.True(t, income.BalanceEffect().Equal(amount))

	expense := Transaction{TransactionType: TransactionTypeExpense, Amount: amount}
	assert.True(t, expense.BalanceEffect().Equal(amount.Neg()))

	// Savings leave the ledger but also leave cash on hand.
	savings := Transaction{TransactionType: TransactionTypeSavings, Amount: amount}
	assert.True(t, savings.BalanceEffect().Equal(amount.Neg()))
}

func TestTransaction_CategoryName(t *testing.T) {
	withCategory := Transaction{Category: &Category{Name: "Food & Dining"}}
	assert.Equal(t, "Food & Dining", withCategory.CategoryName())

	uncategorized := Transaction{}
	assert.Equal(t, "", uncategorized.CategoryName())
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType(TransactionTypeIncome))
	assert.True(t, IsValidTransactionType(TransactionTypeExpense))
	assert.True(t, IsValidTransactionType(TransactionTypeSavings))
	assert.False(t, IsValidTransactionType("transfer"))
	assert.False(t, IsValidTransactionType(""))
	assert.False(t, IsValidTransactionType("Income"))
}
