package dto

// QuickExpenseRequest is the abbreviated expense-entry form. Amount arrives
// as a string so malformed input can be rejected with a specific reason
// instead of a bind failure.
type QuickExpenseRequest struct {
	Amount      string `json:"amount" form:"amount" validate:"required"`
	Category    string `json:"category" form:"category" validate:"required"`
	Description string `json:"description,omitempty" form:"description" validate:"max=200"`
}

// QuickExpenseResponse is the structured acknowledgment of a quick-expense
// write: on success it carries everything the client needs to patch its
// cached figures and prepend the new transaction.
type QuickExpenseResponse struct {
	Success            bool                 `json:"success"`
	Message            string               `json:"message"`
	NewCashOnHand      string               `json:"new_cash_on_hand,omitempty"`
	NewMonthlyExpenses string               `json:"new_monthly_expenses,omitempty"`
	Transaction        *TransactionResponse `json:"transaction,omitempty"`
}

// AddCashRequest tops up the cash-on-hand figure
type AddCashRequest struct {
	Amount      string `json:"amount" form:"amount" validate:"required"`
	Description string `json:"description,omitempty" form:"description" validate:"max=200"`
}

// ChartData is the expense-by-category input for the pie/doughnut view
type ChartData struct {
	Categories []string  `json:"categories"`
	Amounts    []float64 `json:"amounts"`
	Colors     []string  `json:"colors"`
}

// TrendPoint is one month of the month-over-month expense trend series
type TrendPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// DashboardResponse is the initial data feed supplied before interactive
// code runs: the full snapshot plus all derived chart inputs.
type DashboardResponse struct {
	MonthlyIncome      string                `json:"monthly_income"`
	MonthlyExpenses    string                `json:"monthly_expenses"`
	MonthlySavings     string                `json:"monthly_savings"`
	WeeklyExpenses     string                `json:"weekly_expenses"`
	TotalSavings       string                `json:"total_savings"`
	CashOnHand         string                `json:"cash_on_hand"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	Snapshot           []TransactionResponse `json:"snapshot"`
	ChartData          ChartData             `json:"chart_data"`
	MonthlyTrend       []TrendPoint          `json:"monthly_trend"`
	CurrentMonth       string                `json:"current_month"`
}
