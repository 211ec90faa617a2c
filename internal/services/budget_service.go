package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"financehub/internal/models"
	"financehub/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotFound          = errors.New("budget not found")
	ErrBudgetAlreadyExists     = errors.New("a budget already exists for this period")
	ErrBudgetInsufficientFunds = errors.New("insufficient cash on hand to allocate budget")
)

// budgetService implements BudgetServiceInterface
type budgetService struct {
	budgetRepo  repositories.BudgetRepositoryInterface
	profileRepo repositories.ProfileRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewBudgetService creates the budget allocation service
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:  budgetRepo,
		profileRepo: profileRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// AllocateWeekly reserves part of the user's cash on hand for the week
// beginning at weekStart. The start is normalized to Monday midnight and at
// most one weekly budget may exist per week.
func (s *budgetService) AllocateWeekly(userID uuid.UUID, amount decimal.Decimal, weekStart time.Time) (*models.Budget, error) {
	start := startOfISOWeek(weekStart)
	name := fmt.Sprintf("Week of %s", start.Format("Jan 2, 2006"))
	return s.allocate(userID, amount, models.BudgetTypeWeekly, start, name)
}

// AllocateMonthly reserves part of the user's cash on hand for the given
// calendar month.
func (s *budgetService) AllocateMonthly(userID uuid.UUID, amount decimal.Decimal, month, year int) (*models.Budget, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidReportPeriod
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	name := start.Format("January 2006")
	return s.allocate(userID, amount, models.BudgetTypeMonthly, start, name)
}

func (s *budgetService) allocate(userID uuid.UUID, amount decimal.Decimal, budgetType string, start time.Time, name string) (*models.Budget, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if _, err := s.budgetRepo.FindByTypeAndStart(userID, budgetType, start); err == nil {
		return nil, ErrBudgetAlreadyExists
	} else if !errors.Is(err, repositories.ErrBudgetNotFound) {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(profile.CashOnHand) {
		return nil, ErrBudgetInsufficientFunds
	}

	budget := &models.Budget{
		UserID:     userID,
		Name:       name,
		Amount:     amount,
		BudgetType: budgetType,
		StartDate:  start,
		IsActive:   true,
	}
	if err := s.budgetRepo.CreateWithAllocation(budget); err != nil {
		s.logger.Error("budget allocation failed", "user_id", userID, "budget_type", budgetType, "error", err)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("budget_allocated", map[string]string{"budget_type": budgetType})
	}
	s.logger.Info("budget allocated",
		"user_id", userID,
		"budget_id", budget.ID,
		"budget_type", budgetType,
		"amount", amount.String())

	return budget, nil
}

// UpdateAmount changes a budget's allocated amount. The difference is applied
// to cash on hand: raising the amount reserves more, lowering it releases the
// difference.
func (s *budgetService) UpdateAmount(userID, budgetID uuid.UUID, amount decimal.Decimal) (*models.Budget, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	budget, err := s.ownedBudget(userID, budgetID)
	if err != nil {
		return nil, err
	}

	delta := amount.Sub(budget.Amount)
	if delta.IsPositive() {
		profile, err := s.profileRepo.GetByUserID(userID)
		if err != nil {
			return nil, err
		}
		if delta.GreaterThan(profile.CashOnHand) {
			return nil, ErrBudgetInsufficientFunds
		}
	}

	if err := s.budgetRepo.UpdateAmountWithAdjustment(budget, amount); err != nil {
		return nil, err
	}
	budget.Amount = amount
	return budget, nil
}

// CloseBudget deactivates a budget. Allocated funds stay deducted; the period
// already consumed them.
func (s *budgetService) CloseBudget(userID, budgetID uuid.UUID) error {
	budget, err := s.ownedBudget(userID, budgetID)
	if err != nil {
		return err
	}
	return s.budgetRepo.Close(budget.ID)
}

func (s *budgetService) ownedBudget(userID, budgetID uuid.UUID) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByID(budgetID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, err
	}
	if budget.UserID != userID {
		return nil, ErrBudgetNotFound
	}
	return budget, nil
}
