package services

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"financehub/internal/dto"
	"financehub/internal/models"
	"financehub/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrExpenseCategoryRequired = errors.New("category is required")
	ErrExceedsAvailableBalance = errors.New("amount exceeds available balance")
)

// quickExpenseService implements QuickExpenseServiceInterface
type quickExpenseService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	profileRepo     repositories.ProfileRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewQuickExpenseService creates the abbreviated expense write path
func NewQuickExpenseService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) QuickExpenseServiceInterface {
	return &quickExpenseService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		profileRepo:     profileRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// RecordExpense validates the abbreviated expense form, then stores the
// expense and deducts it from cash on hand in one atomic write. Validation
// failures never reach the store: an expense above the available balance is
// rejected before anything is written.
func (s *quickExpenseService) RecordExpense(userID uuid.UUID, req *dto.QuickExpenseRequest, now time.Time) (*dto.QuickExpenseResponse, error) {
	start := time.Now()

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || !amount.IsPositive() {
		s.recordOutcome(start, "rejected")
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(req.Category) == "" {
		s.recordOutcome(start, "rejected")
		return nil, ErrExpenseCategoryRequired
	}

	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if amount.GreaterThan(profile.CashOnHand) {
		s.recordOutcome(start, "rejected")
		return nil, ErrExceedsAvailableBalance
	}

	category, err := s.resolveCategory(userID, req.Category)
	if err != nil {
		s.recordOutcome(start, "rejected")
		return nil, err
	}

	// Read the running monthly total before writing anything, so a failed
	// read never produces a negative acknowledgment for a committed write.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	priorMonthlyExpenses, err := s.transactionRepo.SumAmountByType(userID, models.TransactionTypeExpense, monthStart, now)
	if err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		UserID:          userID,
		Title:           category.Name,
		Description:     strings.TrimSpace(req.Description),
		Amount:          amount,
		TransactionType: models.TransactionTypeExpense,
		CategoryID:      &category.ID,
		Category:        category,
		Date:            now.UTC(),
	}

	if err := s.transactionRepo.CreateWithBalanceEffect(txn, txn.BalanceEffect()); err != nil {
		s.recordOutcome(start, "failed")
		s.logger.Error("quick expense write failed", "user_id", userID, "error", err)
		return nil, err
	}

	monthlyExpenses := priorMonthlyExpenses.Add(amount)

	newCashOnHand := profile.CashOnHand.Sub(amount)
	s.recordOutcome(start, "recorded")
	s.logger.Info("quick expense recorded",
		"user_id", userID,
		"category", category.Name,
		"amount", amount.String(),
		"new_cash_on_hand", newCashOnHand.String())

	txnResponse := dto.NewTransactionResponse(txn)
	return &dto.QuickExpenseResponse{
		Success:            true,
		Message:            "Expense recorded",
		NewCashOnHand:      newCashOnHand.StringFixed(2),
		NewMonthlyExpenses: monthlyExpenses.StringFixed(2),
		Transaction:        &txnResponse,
	}, nil
}

// resolveCategory accepts either a category ID or a category name; names are
// matched case-insensitively against the user's own categories.
func (s *quickExpenseService) resolveCategory(userID uuid.UUID, raw string) (*models.Category, error) {
	raw = strings.TrimSpace(raw)

	if categoryID, err := uuid.Parse(raw); err == nil {
		category, err := s.categoryRepo.GetByID(categoryID)
		if err != nil || category.UserID != userID {
			return nil, ErrCategoryNotFound
		}
		return category, nil
	}

	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if strings.EqualFold(categories[i].Name, raw) {
			return &categories[i], nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (s *quickExpenseService) recordOutcome(start time.Time, status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("quick_expense", map[string]string{"status": status})
	s.metrics.RecordProcessingTime("quick_expense", time.Since(start))
}
