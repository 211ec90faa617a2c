package dto

import "time"

// BudgetOverview describes one budget's progress for reports and dashboards
type BudgetOverview struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	BudgetType string  `json:"budget_type"`
	Amount     string  `json:"amount"`
	Spent      string  `json:"spent"`
	Remaining  string  `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// WeeklyReportResponse is the weekly report payload
type WeeklyReportResponse struct {
	WeekStart       time.Time                   `json:"week_start"`
	WeekEnd         time.Time                   `json:"week_end"`
	AllowanceTotal  string                      `json:"allowance_total"`
	SavingsTotal    string                      `json:"savings_total"`
	ExpenseTotal    string                      `json:"expense_total"`
	ExpensesByCat   []CategoryBreakdownResponse `json:"expenses_by_category"`
	Budget          *BudgetOverview             `json:"budget,omitempty"`
}

// MonthlyReportResponse is the monthly report payload
type MonthlyReportResponse struct {
	Month         int                         `json:"month"`
	Year          int                         `json:"year"`
	MonthStart    time.Time                   `json:"month_start"`
	MonthEnd      time.Time                   `json:"month_end"`
	SavingsTotal  string                      `json:"savings_total"`
	ExpenseTotal  string                      `json:"expense_total"`
	ExpensesByCat []CategoryBreakdownResponse `json:"expenses_by_category"`
	Budget        *BudgetOverview             `json:"budget,omitempty"`
}

// CreateBudgetRequest allocates a weekly or monthly budget
type CreateBudgetRequest struct {
	Amount string `json:"amount" form:"amount" validate:"required"`
	// Weekly budgets take a week_start date, monthly ones a month + year.
	WeekStart string `json:"week_start,omitempty" form:"week_start"`
	Month     int    `json:"month,omitempty" form:"month"`
	Year      int    `json:"year,omitempty" form:"year"`
}

// UpdateBudgetRequest changes a budget's allocated amount
type UpdateBudgetRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// CreateSavingsRequest records a savings entry
type CreateSavingsRequest struct {
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description,omitempty" validate:"max=255"`
	Date        string `json:"date,omitempty"`
}
