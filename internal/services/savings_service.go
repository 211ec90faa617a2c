package services

import (
	"log/slog"
	"strings"
	"time"

	"financehub/internal/models"
	"financehub/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// savingsService implements SavingsServiceInterface
type savingsService struct {
	savingsRepo  repositories.SavingsRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewSavingsService creates the savings recording service
func NewSavingsService(
	savingsRepo repositories.SavingsRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	logger *slog.Logger,
) SavingsServiceInterface {
	return &savingsService{
		savingsRepo:  savingsRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// RecordSavings stores a savings entry and the matching savings transaction
// in one atomic write, so the amount both accumulates in the savings total
// and is deducted from cash on hand like any other outgoing transaction. If
// any part of the write fails, nothing is recorded and nothing is deducted.
func (s *savingsService) RecordSavings(userID uuid.UUID, amount decimal.Decimal, description string, date time.Time) (*models.Savings, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}
	description = strings.TrimSpace(description)

	category, err := s.categoryRepo.GetOrCreateByType(userID, models.CategoryTypeSavings, "Savings", models.DefaultCategoryColor)
	if err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		UserID:          userID,
		Title:           "Savings",
		Description:     description,
		Amount:          amount,
		TransactionType: models.TransactionTypeSavings,
		CategoryID:      &category.ID,
		Date:            date,
	}
	entry := &models.Savings{
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	if err := s.savingsRepo.CreateWithTransaction(entry, txn, txn.BalanceEffect()); err != nil {
		s.logger.Error("savings write failed", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("savings recorded", "user_id", userID, "amount", amount.String())
	return entry, nil
}
