package services

import (
	"log/slog"
	"time"

	"financehub/internal/dto"
	"financehub/internal/models"
	"financehub/internal/repositories"

	"github.com/google/uuid"
)

// dashboardService implements DashboardServiceInterface
type dashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	profileRepo     repositories.ProfileRepositoryInterface
	savingsRepo     repositories.SavingsRepositoryInterface
	logger          *slog.Logger
}

// NewDashboardService creates the dashboard feed assembler
func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	savingsRepo repositories.SavingsRepositoryInterface,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &dashboardService{
		transactionRepo: transactionRepo,
		profileRepo:     profileRepo,
		savingsRepo:     savingsRepo,
		logger:          logger,
	}
}

// GetDashboard assembles the initial data feed: current-period totals, the
// expense-by-category chart inputs, the six-month trend, the ten most recent
// transactions, and the full snapshot the client filters against.
func (s *dashboardService) GetDashboard(userID uuid.UUID, now time.Time) (*dto.DashboardResponse, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	weekStart := startOfISOWeek(now)

	monthlyIncome, err := s.transactionRepo.SumAmountByType(userID, models.TransactionTypeIncome, monthStart, now)
	if err != nil {
		return nil, err
	}
	monthlyExpenses, err := s.transactionRepo.SumAmountByType(userID, models.TransactionTypeExpense, monthStart, now)
	if err != nil {
		return nil, err
	}
	monthlySavings, err := s.transactionRepo.SumAmountByType(userID, models.TransactionTypeSavings, monthStart, now)
	if err != nil {
		return nil, err
	}
	weeklyExpenses, err := s.transactionRepo.SumAmountByType(userID, models.TransactionTypeExpense, weekStart, now)
	if err != nil {
		return nil, err
	}
	totalSavings, err := s.savingsRepo.TotalByUserID(userID)
	if err != nil {
		return nil, err
	}

	categoryTotals, err := s.transactionRepo.GetCategoryTotals(userID, monthStart, now)
	if err != nil {
		return nil, err
	}
	chart := dto.ChartData{
		Categories: make([]string, 0, len(categoryTotals)),
		Amounts:    make([]float64, 0, len(categoryTotals)),
		Colors:     make([]string, 0, len(categoryTotals)),
	}
	for _, total := range categoryTotals {
		name := total.Name
		if name == "" {
			name = "Uncategorized"
		}
		color := total.Color
		if color == "" {
			color = models.DefaultCategoryColor
		}
		chart.Categories = append(chart.Categories, name)
		chart.Amounts = append(chart.Amounts, total.Total.InexactFloat64())
		chart.Colors = append(chart.Colors, color)
	}

	trend, err := s.monthlyTrend(userID, now)
	if err != nil {
		return nil, err
	}

	recent, err := s.transactionRepo.GetRecentByUserID(userID, 10)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.transactionRepo.GetAllByUserID(userID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		MonthlyIncome:      monthlyIncome.StringFixed(2),
		MonthlyExpenses:    monthlyExpenses.StringFixed(2),
		MonthlySavings:     monthlySavings.StringFixed(2),
		WeeklyExpenses:     weeklyExpenses.StringFixed(2),
		TotalSavings:       totalSavings.StringFixed(2),
		CashOnHand:         profile.CashOnHand.StringFixed(2),
		RecentTransactions: dto.NewTransactionResponses(recent),
		Snapshot:           dto.NewTransactionResponses(snapshot),
		ChartData:          chart,
		MonthlyTrend:       trend,
		CurrentMonth:       now.Format("January 2006"),
	}, nil
}

// monthlyTrend computes the expense total of the current month and the five
// before it, oldest first.
func (s *dashboardService) monthlyTrend(userID uuid.UUID, now time.Time) ([]dto.TrendPoint, error) {
	points := make([]dto.TrendPoint, 0, 6)
	for offset := 5; offset >= 0; offset-- {
		monthStart := time.Date(now.Year(), now.Month()-time.Month(offset), 1, 0, 0, 0, 0, now.Location())
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
		if monthEnd.After(now) {
			monthEnd = now
		}

		total, err := s.transactionRepo.SumAmountByType(userID, models.TransactionTypeExpense, monthStart, monthEnd)
		if err != nil {
			return nil, err
		}
		points = append(points, dto.TrendPoint{
			Month:  monthStart.Format("Jan"),
			Amount: total.InexactFloat64(),
		})
	}
	return points, nil
}

// startOfISOWeek returns midnight of the Monday of t's week.
func startOfISOWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}
