package repositories

import (
	"errors"
	"fmt"
	"time"

	"financehub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateWithBalanceEffect creates the transaction and applies its balance
// delta to the owner's profile in one database transaction, so a failed
// write never leaves a half-applied balance.
func (r *transactionRepository) CreateWithBalanceEffect(transaction *models.Transaction, balanceDelta decimal.Decimal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		result := tx.Model(&models.Profile{}).
			Where("user_id = ?", transaction.UserID).
			Update("cash_on_hand", gorm.Expr("cash_on_hand + ?", balanceDelta))
		if result.Error != nil {
			return fmt.Errorf("failed to apply balance effect: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrProfileNotFound
		}

		return nil
	})
}

// GetByID retrieves a transaction by ID with its category preloaded
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Preload("Category").First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetAllByUserID retrieves the user's full transaction snapshot
func (r *transactionRepository) GetAllByUserID(userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetRecentByUserID retrieves the most recent transactions for a user
func (r *transactionRepository) GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

// SumAmountByType sums transaction amounts of one type within a date range
func (r *transactionRepository) SumAmountByType(userID uuid.UUID, transactionType string, startDate, endDate time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.Model(&models.Transaction{}).
		Select("SUM(amount)").
		Where("user_id = ? AND transaction_type = ? AND date BETWEEN ? AND ?",
			userID, transactionType, startDate, endDate).
		Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}

	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// SumAmountByCategoryType sums transaction amounts whose category carries the
// given category type within a date range
func (r *transactionRepository) SumAmountByCategoryType(userID uuid.UUID, categoryType string, startDate, endDate time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.Model(&models.Transaction{}).
		Select("SUM(transactions.amount)").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND categories.category_type = ? AND transactions.date BETWEEN ? AND ?",
			userID, categoryType, startDate, endDate).
		Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions by category type: %w", err)
	}

	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// GetCategoryTotals aggregates expense amounts per category for a date range
func (r *transactionRepository) GetCategoryTotals(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategoryTotal, error) {
	var totals []models.CategoryTotal
	if err := r.db.Model(&models.Transaction{}).
		Select("transactions.category_id AS category_id, categories.name AS name, categories.color AS color, SUM(transactions.amount) AS total").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.transaction_type = ? AND transactions.date BETWEEN ? AND ?",
			userID, models.TransactionTypeExpense, startDate, endDate).
		Group("transactions.category_id, categories.name, categories.color").
		Order("total DESC").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}
	return totals, nil
}
