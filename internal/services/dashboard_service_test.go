package services

import (
	"log/slog"
	"testing"
	"time"

	"financehub/internal/models"
	"financehub/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// DashboardServiceSuite defines the test suite for DashboardServiceInterface
type DashboardServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	profileRepo     *repository_mocks.MockProfileRepositoryInterface
	savingsRepo     *repository_mocks.MockSavingsRepositoryInterface
	service         *dashboardService
	testUserID      uuid.UUID
	now             time.Time
}

// SetupTest runs before each test in the suite
func (s *DashboardServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.profileRepo = repository_mocks.NewMockProfileRepositoryInterface(s.ctrl)
	s.savingsRepo = repository_mocks.NewMockSavingsRepositoryInterface(s.ctrl)
	s.service = NewDashboardService(s.transactionRepo, s.profileRepo, s.savingsRepo, slog.Default()).(*dashboardService)

	s.testUserID = uuid.New()
	// Wednesday, 2024-07-17
	s.now = time.Date(2024, time.July, 17, 15, 0, 0, 0, time.UTC)
}

// TearDownTest runs after each test in the suite
func (s *DashboardServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestDashboardServiceSuite runs the test suite
func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) TestGetDashboard_AssemblesFeed() {
	monthStart := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	weekStart := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	profile := &models.Profile{
		UserID:     s.testUserID,
		CashOnHand: decimal.RequireFromString("612.50"),
	}
	foodID := uuid.New()
	recent := []models.Transaction{{
		ID:              uuid.New(),
		UserID:          s.testUserID,
		Title:           "Coffee",
		Amount:          decimal.RequireFromString("4.50"),
		TransactionType: models.TransactionTypeExpense,
		Date:            s.now,
	}}

	s.profileRepo.EXPECT().GetByUserID(s.testUserID).Return(profile, nil)
	s.transactionRepo.EXPECT().
		SumAmountByType(s.testUserID, models.TransactionTypeIncome, monthStart, s.now).
		Return(decimal.RequireFromString("4200.00"), nil)
	s.transactionRepo.EXPECT().
		SumAmountByType(s.testUserID, models.TransactionTypeExpense, monthStart, s.now).
		Return(decimal.RequireFromString("1250.00"), nil)
	s.transactionRepo.EXPECT().
		SumAmountByType(s.testUserID, models.TransactionTypeSavings, monthStart, s.now).
		Return(decimal.RequireFromString("300.00"), nil)
	s.transactionRepo.EXPECT().
		SumAmountByType(s.testUserID, models.TransactionTypeExpense, weekStart, s.now).
		Return(decimal.RequireFromString("180.00"), nil)
	s.savingsRepo.EXPECT().TotalByUserID(s.testUserID).
		Return(decimal.RequireFromString("2750.00"), nil)
	s.transactionRepo.EXPECT().GetCategoryTotals(s.testUserID, monthStart, s.now).
		Return([]models.CategoryTotal{
			{CategoryID: &foodID, Name: "Food", Color: "#fd7e14", Total: decimal.RequireFromString("850.00")},
			{Name: "", Color: "", Total: decimal.RequireFromString("400.00")},
		}, nil)
	// One expense sum per trend month, current month included.
	s.transactionRepo.EXPECT().
		SumAmountByType(s.testUserID, models.TransactionTypeExpense, gomock.Any(), gomock.Any()).
		Return(decimal.RequireFromString("100.00"), nil).
		Times(6)
	s.transactionRepo.EXPECT().GetRecentByUserID(s.testUserID, 10).Return(recent, nil)
	s.transactionRepo.EXPECT().GetAllByUserID(s.testUserID).Return(recent, nil)

	dashboard, err := s.service.GetDashboard(s.testUserID, s.now)

	s.Require().NoError(err)
	s.Equal("4200.00", dashboard.MonthlyIncome)
	s.Equal("1250.00", dashboard.MonthlyExpenses)
	s.Equal("300.00", dashboard.MonthlySavings)
	s.Equal("180.00", dashboard.WeeklyExpenses)
	s.Equal("2750.00", dashboard.TotalSavings)
	s.Equal("612.50", dashboard.CashOnHand)
	s.Equal("July 2024", dashboard.CurrentMonth)

	s.Equal([]string{"Food", "Uncategorized"}, dashboard.ChartData.Categories)
	s.Equal([]string{"#fd7e14", models.DefaultCategoryColor}, dashboard.ChartData.Colors)
	s.InDelta(850.0, dashboard.ChartData.Amounts[0], 0.0001)

	s.Require().Len(dashboard.MonthlyTrend, 6)
	s.Equal("Feb", dashboard.MonthlyTrend[0].Month)
	s.Equal("Jul", dashboard.MonthlyTrend[5].Month)

	s.Require().Len(dashboard.RecentTransactions, 1)
	s.Equal("Coffee", dashboard.RecentTransactions[0].Title)
	s.Len(dashboard.Snapshot, 1)
}

func (s *DashboardServiceSuite) TestStartOfISOWeek() {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "midweek",
			in:   time.Date(2024, time.July, 17, 15, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday maps to itself",
			in:   time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the preceding monday",
			in:   time.Date(2024, time.July, 21, 23, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "week spanning a month boundary",
			in:   time.Date(2024, time.August, 1, 8, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.July, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, startOfISOWeek(tc.in))
		})
	}
}
