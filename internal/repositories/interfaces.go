package repositories

import (
	"time"

	"financehub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=repository_mocks/mocks.go -package=repository_mocks

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	// CreateWithBalanceEffect atomically stores the transaction and applies
	// its signed balance effect to the owner's cash on hand.
	CreateWithBalanceEffect(transaction *models.Transaction, balanceDelta decimal.Decimal) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	// GetAllByUserID returns the user's complete snapshot ordered by date
	// descending, then creation time descending, with categories preloaded.
	GetAllByUserID(userID uuid.UUID) ([]models.Transaction, error)
	GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error)
	SumAmountByType(userID uuid.UUID, transactionType string, startDate, endDate time.Time) (decimal.Decimal, error)
	// SumAmountByCategoryType sums amounts across all transaction types
	// whose category carries the given category type.
	SumAmountByCategoryType(userID uuid.UUID, categoryType string, startDate, endDate time.Time) (decimal.Decimal, error)
	// GetCategoryTotals aggregates expense amounts per category for the date
	// range, ordered by total descending.
	GetCategoryTotals(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategoryTotal, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	CreateBatch(categories []models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByUserID(userID uuid.UUID) ([]models.Category, error)
	GetOrCreateByType(userID uuid.UUID, categoryType, defaultName, defaultColor string) (*models.Category, error)
}

// ProfileRepositoryInterface defines the contract for profile repository operations
type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByUserID(userID uuid.UUID) (*models.Profile, error)
	Update(profile *models.Profile) error
	// AdjustCashOnHand applies a signed delta to the stored cash-on-hand figure.
	AdjustCashOnHand(userID uuid.UUID, delta decimal.Decimal) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
}

// SavingsRepositoryInterface defines the contract for savings repository operations
type SavingsRepositoryInterface interface {
	Create(savings *models.Savings) error
	// CreateWithTransaction atomically stores the savings entry, its
	// matching transaction, and the cash on hand deduction.
	CreateWithTransaction(savings *models.Savings, transaction *models.Transaction, balanceDelta decimal.Decimal) error
	SumByDateRange(userID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error)
	TotalByUserID(userID uuid.UUID) (decimal.Decimal, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	// CreateWithAllocation atomically stores the budget and deducts its
	// amount from the owner's cash on hand.
	CreateWithAllocation(budget *models.Budget) error
	GetByID(id uuid.UUID) (*models.Budget, error)
	GetActiveByUserID(userID uuid.UUID) ([]models.Budget, error)
	FindByTypeAndStart(userID uuid.UUID, budgetType string, startDate time.Time) (*models.Budget, error)
	SumActiveByUserID(userID uuid.UUID) (decimal.Decimal, error)
	// UpdateAmountWithAdjustment atomically changes the budget amount and
	// applies the allocation delta to the owner's cash on hand.
	UpdateAmountWithAdjustment(budget *models.Budget, newAmount decimal.Decimal) error
	Close(id uuid.UUID) error
	Upsert(budget *models.Budget) error
}
