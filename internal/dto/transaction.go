package dto

import (
	"time"

	"github.com/google/uuid"
)

// FilterParams carries the raw query-string filter inputs. Numeric and date
// fields stay strings here; malformed values are treated as absent filters
// when mapped onto models.FilterCriteria.
type FilterParams struct {
	Preset    string `query:"preset"`
	From      string `query:"from"`
	To        string `query:"to"`
	Type      string `query:"type"`
	Category  string `query:"category"`
	MinAmount string `query:"min_amount"`
	MaxAmount string `query:"max_amount"`
	Search    string `query:"search"`
	Sort      string `query:"sort"`
	Page      string `query:"page"`
}

// CreateTransactionRequest contains the full transaction creation form
type CreateTransactionRequest struct {
	Title           string `json:"title" validate:"max=200"`
	Description     string `json:"description,omitempty" validate:"max=1000"`
	Amount          string `json:"amount" validate:"required"`
	TransactionType string `json:"transaction_type" validate:"required,transaction_type"`
	CategoryID      string `json:"category_id,omitempty"`
	Date            string `json:"date,omitempty"`
}

// CategoryRef is the serialized category reference attached to transactions
type CategoryRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

// TransactionResponse is the serialized transaction record
type TransactionResponse struct {
	ID              uuid.UUID    `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description,omitempty"`
	Amount          string       `json:"amount"`
	TransactionType string       `json:"transaction_type"`
	Category        *CategoryRef `json:"category,omitempty"`
	Date            time.Time    `json:"date"`
}

// PageControl is one page-control affordance: a page number or an ellipsis
type PageControl struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// PaginationInfo contains pagination metadata for a listing response
type PaginationInfo struct {
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	TotalItems int           `json:"total_items"`
	Window     []PageControl `json:"window"`
}

// SummaryResponse carries the aggregate totals of the filtered working set
type SummaryResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	SavingsTotal string `json:"savings_total"`
	NetBalance   string `json:"net_balance"`
}

// CategoryBreakdownResponse is one expense-by-category slice
type CategoryBreakdownResponse struct {
	CategoryID       *uuid.UUID `json:"category_id,omitempty"`
	Name             string     `json:"name"`
	Color            string     `json:"color"`
	Total            string     `json:"total"`
	PercentOfExpense float64    `json:"percent_of_expense"`
}

// ListTransactionsResponse represents the response for a filtered listing
type ListTransactionsResponse struct {
	Transactions []TransactionResponse       `json:"transactions"`
	Summary      SummaryResponse             `json:"summary"`
	Breakdown    []CategoryBreakdownResponse `json:"breakdown"`
	Pagination   PaginationInfo              `json:"pagination"`
	Sort         string                      `json:"sort"`
}
