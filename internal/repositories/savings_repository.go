package repositories

import (
	"fmt"
	"time"

	"financehub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// savingsRepository implements SavingsRepositoryInterface
type savingsRepository struct {
	db *gorm.DB
}

// NewSavingsRepository creates a new savings repository
func NewSavingsRepository(db *gorm.DB) SavingsRepositoryInterface {
	return &savingsRepository{
		db: db,
	}
}

// Create creates a new savings entry
func (r *savingsRepository) Create(savings *models.Savings) error {
	if err := r.db.Create(savings).Error; err != nil {
		return fmt.Errorf("failed to create savings entry: %w", err)
	}
	return nil
}

// CreateWithTransaction stores the savings entry together with its matching
// transaction and applies the balance delta to the owner's cash on hand, all
// in one database transaction. A failure on any write rolls back the others.
func (r *savingsRepository) CreateWithTransaction(savings *models.Savings, transaction *models.Transaction, balanceDelta decimal.Decimal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(savings).Error; err != nil {
			return fmt.Errorf("failed to create savings entry: %w", err)
		}
		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create savings transaction: %w", err)
		}

		result := tx.Model(&models.Profile{}).
			Where("user_id = ?", savings.UserID).
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

// SumByDateRange sums savings within a date range
func (r *savingsRepository) SumByDateRange(userID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.Model(&models.Savings{}).
		Select("SUM(amount)").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).
		Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum savings: %w", err)
	}

	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// TotalByUserID sums all savings for a user
func (r *savingsRepository) TotalByUserID(userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.Model(&models.Savings{}).
		Select("SUM(amount)").
		Where("user_id = ?", userID).
		Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to total savings: %w", err)
	}

	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
