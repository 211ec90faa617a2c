package services

import (
	"time"

	"financehub/internal/dto"
	"financehub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthServiceInterface defines registration and login operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress string) (*dto.TokenResponse, error)
	Login(req *dto.LoginRequest, ipAddress string) (*dto.TokenResponse, error)
	GetProfile(userID uuid.UUID) (*dto.UserProfileResponse, error)
}

// TransactionServiceInterface defines transaction lifecycle operations
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	ListTransactions(userID uuid.UUID, params dto.FilterParams, now time.Time) (*dto.ListTransactionsResponse, error)
	// FilteredTransactions returns the whole filtered working set without
	// pagination, for exports.
	FilteredTransactions(userID uuid.UUID, params dto.FilterParams, now time.Time) ([]models.Transaction, error)
	AddCashOnHand(userID uuid.UUID, amount decimal.Decimal) (*models.Transaction, *models.Profile, error)
}

// QuickExpenseServiceInterface defines the single-call expense write path
type QuickExpenseServiceInterface interface {
	RecordExpense(userID uuid.UUID, req *dto.QuickExpenseRequest, now time.Time) (*dto.QuickExpenseResponse, error)
}

// DashboardServiceInterface assembles the initial dashboard feed
type DashboardServiceInterface interface {
	GetDashboard(userID uuid.UUID, now time.Time) (*dto.DashboardResponse, error)
}

// ReportServiceInterface builds weekly and monthly spending reports
type ReportServiceInterface interface {
	WeeklyReport(userID uuid.UUID, weekStart time.Time) (*dto.WeeklyReportResponse, error)
	MonthlyReport(userID uuid.UUID, month int, year int) (*dto.MonthlyReportResponse, error)
}

// BudgetServiceInterface manages weekly and monthly budget allocations
type BudgetServiceInterface interface {
	AllocateWeekly(userID uuid.UUID, amount decimal.Decimal, weekStart time.Time) (*models.Budget, error)
	AllocateMonthly(userID uuid.UUID, amount decimal.Decimal, month int, year int) (*models.Budget, error)
	UpdateAmount(userID, budgetID uuid.UUID, amount decimal.Decimal) (*models.Budget, error)
	CloseBudget(userID, budgetID uuid.UUID) error
}

// SavingsServiceInterface records savings entries
type SavingsServiceInterface interface {
	RecordSavings(userID uuid.UUID, amount decimal.Decimal, description string, date time.Time) (*models.Savings, error)
}

// ExportServiceInterface renders filtered transactions as downloadable files
type ExportServiceInterface interface {
	ExportCSV(transactions []models.Transaction, now time.Time) (filename string, data []byte, err error)
}

// MetricsRecorderInterface defines the contract for recording operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TokenServiceInterface issues and validates access tokens
type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
}

// PasswordServiceInterface hashes and verifies passwords
type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hash, password string) error
	ValidatePasswordStrength(password string) error
}
