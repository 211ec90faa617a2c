package services

import (
	"log/slog"
	"testing"
	"time"

	"financehub/internal/models"
	"financehub/internal/repositories"
	"financehub/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetServiceSuite defines the test suite for BudgetServiceInterface
type BudgetServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	budgetRepo  *repository_mocks.MockBudgetRepositoryInterface
	profileRepo *repository_mocks.MockProfileRepositoryInterface
	service     *budgetService
	testUserID  uuid.UUID
	testProfile *models.Profile
}

// SetupTest runs before each test in the suite
func (s *BudgetServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.profileRepo = repository_mocks.NewMockProfileRepositoryInterface(s.ctrl)
	s.service = NewBudgetService(s.budgetRepo, s.profileRepo, nil, slog.Default()).(*budgetService)

	s.testUserID = uuid.New()
	s.testProfile = &models.Profile{
		UserID:     s.testUserID,
		CashOnHand: decimal.RequireFromString("1000.00"),
	}
}

// TearDownTest runs after each test in the suite
func (s *BudgetServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestBudgetServiceSuite runs the test suite
func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceSuite))
}

func (s *BudgetServiceSuite) TestAllocateWeekly_NormalizesToMonday() {
	// Wednesday; the budget week starts the preceding Monday.
	wednesday := time.Date(2024, time.July, 17, 14, 0, 0, 0, time.UTC)
	monday := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)

	s.budgetRepo.EXPECT().FindByTypeAndStart(s.testUserID, models.BudgetTypeWeekly, monday).
		Return(nil, repositories.ErrBudgetNotFound)
	s.profileRepo.EXPECT().GetByUserID(s.testUserID).Return(s.testProfile, nil)
	s.budgetRepo.EXPECT().CreateWithAllocation(gomock.Any()).DoAndReturn(
		func(budget *models.Budget) error {
			s.Equal(monday, budget.StartDate)
			s.True(budget.IsActive)
			budget.ID = uuid.New()
			return nil
		})

	budget, err := s.service.AllocateWeekly(s.testUserID, decimal.RequireFromString("200.00"), wednesday)

	s.Require().NoError(err)
	s.Equal("Week of Jul 15, 2024", budget.Name)
}

func (s *BudgetServiceSuite) TestAllocateMonthly_Success() {
	start := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	s.budgetRepo.EXPECT().FindByTypeAndStart(s.testUserID, models.BudgetTypeMonthly, start).
		Return(nil, repositories.ErrBudgetNotFound)
	s.profileRepo.EXPECT().GetByUserID(s.testUserID).Return(s.testProfile, nil)
	s.budgetRepo.EXPECT().CreateWithAllocation(gomock.Any()).Return(nil)

	budget, err := s.service.AllocateMonthly(s.testUserID, decimal.RequireFromString("800.00"), 7, 2024)

	s.Require().NoError(err)
	s.Equal("July 2024", budget.Name)
}

func (s *BudgetServiceSuite) TestAllocateMonthly_InvalidPeriod() {
	_, err := s.service.AllocateMonthly(s.testUserID, decimal.RequireFromString("100.00"), 13, 2024)
	s.Equal(ErrInvalidReportPeriod, err)

	_, err = s.service.AllocateMonthly(s.testUserID, decimal.RequireFromString("100.00"), 0, 2024)
	s.Equal(ErrInvalidReportPeriod, err)
}

func (s *BudgetServiceSuite) TestAllocate_DuplicatePeriodRejected() {
	start := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	existing := &models.Budget{ID: uuid.New(), UserID: s.testUserID}

	s.budgetRepo.EXPECT().FindByTypeAndStart(s.testUserID, models.BudgetTypeMonthly, start).
		Return(existing, nil)

	_, err := s.service.AllocateMonthly(s.testUserID, decimal.RequireFromString("100.00"), 7, 2024)

	s.Equal(ErrBudgetAlreadyExists, err)
}

func (s *BudgetServiceSuite) TestAllocate_InsufficientFunds() {
	start := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	// No CreateWithAllocation expectation: the funds check comes first.
	s.budgetRepo.EXPECT().FindByTypeAndStart(s.testUserID, models.BudgetTypeMonthly, start).
		Return(nil, repositories.ErrBudgetNotFound)
	s.profileRepo.EXPECT().GetByUserID(s.testUserID).Return(s.testProfile, nil)

	_, err := s.service.AllocateMonthly(s.testUserID, decimal.RequireFromString("1000.01"), 7, 2024)

	s.Equal(ErrBudgetInsufficientFunds, err)
}

func (s *BudgetServiceSuite) TestUpdateAmount_RaiseCheckedAgainstCash() {
	budget := &models.Budget{
		ID:     uuid.New(),
		UserID: s.testUserID,
		Amount: decimal.RequireFromString("200.00"),
	}

	s.budgetRepo.EXPECT().GetByID(budget.ID).Return(budget, nil)
	s.profileRepo.EXPECT().GetByUserID(s.testUserID).Return(s.testProfile, nil)
	s.budgetRepo.EXPECT().UpdateAmountWithAdjustment(budget, decimal.RequireFromString("300.00")).
		Return(nil)

	updated, err := s.service.UpdateAmount(s.testUserID, budget.ID, decimal.RequireFromString("300.00"))

	s.Require().NoError(err)
	s.True(updated.Amount.Equal(decimal.RequireFromString("300.00")))
}

func (s *BudgetServiceSuite) TestUpdateAmount_LoweringNeedsNoCash() {
	budget := &models.Budget{
		ID:     uuid.New(),
		UserID: s.testUserID,
		Amount: decimal.RequireFromString("200.00"),
	}

	// No profile lookup: releasing funds can never fail the balance check.
	s.budgetRepo.EXPECT().GetByID(budget.ID).Return(budget, nil)
	s.budgetRepo.EXPECT().UpdateAmountWithAdjustment(budget, decimal.RequireFromString("150.00")).
		Return(nil)

	_, err := s.service.UpdateAmount(s.testUserID, budget.ID, decimal.RequireFromString("150.00"))

	s.Require().NoError(err)
}

func (s *BudgetServiceSuite) TestUpdateAmount_RaiseBeyondCashRejected() {
	budget := &models.Budget{
		ID:     uuid.New(),
		UserID: s.testUserID,
		Amount: decimal.RequireFromString("200.00"),
	}

	s.budgetRepo.EXPECT().GetByID(budget.ID).Return(budget, nil)
	s.profileRepo.EXPECT().GetByUserID(s.testUserID).Return(s.testProfile, nil)

	_, err := s.service.UpdateAmount(s.testUserID, budget.ID, decimal.RequireFromString("1300.00"))

	s.Equal(ErrBudgetInsufficientFunds, err)
}

func (s *BudgetServiceSuite) TestCloseBudget_OwnershipEnforced() {
	foreign := &models.Budget{ID: uuid.New(), UserID: uuid.New()}

	s.budgetRepo.EXPECT().GetByID(foreign.ID).Return(foreign, nil)

	err := s.service.CloseBudget(s.testUserID, foreign.ID)

	s.Equal(ErrBudgetNotFound, err)
}

func (s *BudgetServiceSuite) TestCloseBudget_Success() {
	budget := &models.Budget{ID: uuid.New(), UserID: s.testUserID, IsActive: true}

	s.budgetRepo.EXPECT().GetByID(budget.ID).Return(budget, nil)
	s.budgetRepo.EXPECT().Close(budget.ID).Return(nil)

	s.NoError(s.service.CloseBudget(s.testUserID, budget.ID))
}
