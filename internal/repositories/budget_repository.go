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
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// CreateWithAllocation stores the budget and deducts its amount from the
// owner's cash on hand in one database transaction.
func (r *budgetRepository) CreateWithAllocation(budget *models.Budget) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(budget).Error; err != nil {
			return fmt.Errorf("failed to create budget: %w", err)
		}

		result := tx.Model(&models.Profile{}).
			Where("user_id = ?", budget.UserID).
			Update("cash_on_hand", gorm.Expr("cash_on_hand - ?", budget.Amount))
		if result.Error != nil {
			return fmt.Errorf("failed to allocate budget funds: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrProfileNotFound
		}

		return nil
	})
}

// GetByID retrieves a budget by ID
func (r *budgetRepository) GetByID(id uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.First(&budget, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// GetActiveByUserID retrieves all active budgets for a user
func (r *budgetRepository) GetActiveByUserID(userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("start_date DESC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get active budgets: %w", err)
	}
	return budgets, nil
}

// FindByTypeAndStart finds a budget by its type and period start
func (r *budgetRepository) FindByTypeAndStart(userID uuid.UUID, budgetType string, startDate time.Time) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("user_id = ? AND budget_type = ? AND start_date = ?",
		userID, budgetType, startDate).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	return &budget, nil
}

// SumActiveByUserID sums the amounts of all active budgets for a user
func (r *budgetRepository) SumActiveByUserID(userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.Model(&models.Budget{}).
		Select("SUM(amount)").
		Where("user_id = ? AND is_active = ?", userID, true).
		Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum budgets: %w", err)
	}

	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// UpdateAmountWithAdjustment changes the budget amount and applies the
// allocation delta to the owner's cash on hand atomically. Increasing a
// budget deducts the difference; decreasing it returns the freed funds.
func (r *budgetRepository) UpdateAmountWithAdjustment(budget *models.Budget, newAmount decimal.Decimal) error {
	delta := newAmount.Sub(budget.Amount)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Budget{}).
			Where("id = ?", budget.ID).
			Update("amount", newAmount).Error; err != nil {
			return fmt.Errorf("failed to update budget amount: %w", err)
		}

		if delta.IsZero() {
			budget.Amount = newAmount
			return nil
		}

		result := tx.Model(&models.Profile{}).
			Where("user_id = ?", budget.UserID).
			Update("cash_on_hand", gorm.Expr("cash_on_hand - ?", delta))
		if result.Error != nil {
			return fmt.Errorf("failed to adjust allocation: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrProfileNotFound
		}

		budget.Amount = newAmount
		return nil
	})
}

// Close deactivates a budget
func (r *budgetRepository) Close(id uuid.UUID) error {
	result := r.db.Model(&models.Budget{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to close budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

// Upsert updates the budget matching (user, type, start) or creates it.
// Used by the report pages where setting the period's cash amount replaces
// any earlier figure.
func (r *budgetRepository) Upsert(budget *models.Budget) error {
	existing, err := r.FindByTypeAndStart(budget.UserID, budget.BudgetType, budget.StartDate)
	if err != nil {
		if errors.Is(err, ErrBudgetNotFound) {
			if createErr := r.db.Create(budget).Error; createErr != nil {
				return fmt.Errorf("failed to create budget: %w", createErr)
			}
			return nil
		}
		return err
	}

	existing.Name = budget.Name
	existing.Amount = budget.Amount
	existing.IsActive = true
	if err := r.db.Save(existing).Error; err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	*budget = *existing
	return nil
}
