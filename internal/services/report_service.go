package services

import (
	"errors"
	"log/slog"
	"time"

	"financehub/internal/dto"
	"financehub/internal/models"
	"financehub/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidReportPeriod = errors.New("invalid report period")

// reportService implements ReportServiceInterface
type reportService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	savingsRepo     repositories.SavingsRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	logger          *slog.Logger
}

// NewReportService creates the weekly/monthly report builder
func NewReportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	savingsRepo repositories.SavingsRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	logger *slog.Logger,
) ReportServiceInterface {
	return &reportService{
		transactionRepo: transactionRepo,
		savingsRepo:     savingsRepo,
		budgetRepo:      budgetRepo,
		logger:          logger,
	}
}

// WeeklyReport builds the report for the week beginning at weekStart. The
// start is normalized to Monday midnight; the period runs through the end of
// the following Sunday.
func (s *reportService) WeeklyReport(userID uuid.UUID, weekStart time.Time) (*dto.WeeklyReportResponse, error) {
	start := startOfISOWeek(weekStart)
	end := endOfDay(start.AddDate(0, 0, 6))

	allowance, err := s.transactionRepo.SumAmountByCategoryType(userID, models.CategoryTypeAllowance, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.transactionRepo.SumAmountByType(userID, models.TransactionTypeExpense, start, end)
	if err != nil {
		return nil, err
	}
	savings, err := s.savingsRepo.SumByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.categoryBreakdown(userID, start, end)
	if err != nil {
		return nil, err
	}
	budget, err := s.budgetOverview(userID, models.BudgetTypeWeekly, start, expenses)
	if err != nil {
		return nil, err
	}

	return &dto.WeeklyReportResponse{
		WeekStart:      start,
		WeekEnd:        end,
		AllowanceTotal: allowance.StringFixed(2),
		SavingsTotal:   savings.StringFixed(2),
		ExpenseTotal:   expenses.StringFixed(2),
		ExpensesByCat:  breakdown,
		Budget:         budget,
	}, nil
}

// MonthlyReport builds the report for the given calendar month.
func (s *reportService) MonthlyReport(userID uuid.UUID, month, year int) (*dto.MonthlyReportResponse, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidReportPeriod
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := endOfDay(start.AddDate(0, 1, -1))

	expenses, err := s.transactionRepo.SumAmountByType(userID, models.TransactionTypeExpense, start, end)
	if err != nil {
		return nil, err
	}
	savings, err := s.savingsRepo.SumByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.categoryBreakdown(userID, start, end)
	if err != nil {
		return nil, err
	}
	budget, err := s.budgetOverview(userID, models.BudgetTypeMonthly, start, expenses)
	if err != nil {
		return nil, err
	}

	return &dto.MonthlyReportResponse{
		Month:         month,
		Year:          year,
		MonthStart:    start,
		MonthEnd:      end,
		SavingsTotal:  savings.StringFixed(2),
		ExpenseTotal:  expenses.StringFixed(2),
		ExpensesByCat: breakdown,
		Budget:        budget,
	}, nil
}

func (s *reportService) categoryBreakdown(userID uuid.UUID, start, end time.Time) ([]dto.CategoryBreakdownResponse, error) {
	totals, err := s.transactionRepo.GetCategoryTotals(userID, start, end)
	if err != nil {
		return nil, err
	}
	return dto.NewBreakdownResponses(BreakdownFromTotals(totals)), nil
}

// budgetOverview reports progress against the period's budget, if one was
// allocated. The spent percentage is capped at 100 so a blown budget still
// renders a full bar; remaining never goes below zero.
func (s *reportService) budgetOverview(userID uuid.UUID, budgetType string, periodStart time.Time, spent decimal.Decimal) (*dto.BudgetOverview, error) {
	budget, err := s.budgetRepo.FindByTypeAndStart(userID, budgetType, periodStart)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, nil
		}
		return nil, err
	}

	remaining := budget.Amount.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	percentage := 0.0
	if budget.Amount.IsPositive() {
		percentage = spent.Mul(decimal.NewFromInt(100)).Div(budget.Amount).InexactFloat64()
		if percentage > 100 {
			percentage = 100
		}
	}

	return &dto.BudgetOverview{
		ID:         budget.ID.String(),
		Name:       budget.Name,
		BudgetType: budget.BudgetType,
		Amount:     budget.Amount.StringFixed(2),
		Spent:      spent.StringFixed(2),
		Remaining:  remaining.StringFixed(2),
		Percentage: percentage,
	}, nil
}
