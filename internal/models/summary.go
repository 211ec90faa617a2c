package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionSummary contains the per-type totals of a transaction sequence.
// NetBalance is always income minus expenses.
type TransactionSummary struct {
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	SavingsTotal decimal.Decimal `json:"savings_total"`
	NetBalance   decimal.Decimal `json:"net_balance"`
}

// CategoryBreakdownEntry is one slice of the expense-by-category view:
// the category's total and its percentage share of all expenses.
type CategoryBreakdownEntry struct {
	CategoryID       *uuid.UUID      `json:"category_id,omitempty"`
	Name             string          `json:"name"`
	Color            string          `json:"color"`
	Total            decimal.Decimal `json:"total"`
	PercentOfExpense float64         `json:"percent_of_expense"`
	TransactionCount int             `json:"transaction_count"`
}

// CategoryTotal is the raw per-category aggregate produced by the repository
// layer for dashboard and report queries.
type CategoryTotal struct {
	CategoryID *uuid.UUID      `json:"category_id,omitempty"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
}
