package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"financehub/internal/config"
	"financehub/internal/database"
	"financehub/internal/models"
	"financehub/internal/repositories"
	"financehub/internal/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Seeds a demo user with six months of realistic transactions. Intended for
// local development only.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	email := flag.String("email", "demo@financehub.dev", "demo user email")
	password := flag.String("password", "demo-pass-123", "demo user password")
	count := flag.Int("transactions", 180, "number of transactions to generate")
	flag.Parse()

	cfg := config.Load()
	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		logger.Error("automigrate failed", "error", err)
		os.Exit(1)
	}

	userRepo := repositories.NewUserRepository(db.DB)
	profileRepo := repositories.NewProfileRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)

	if exists, err := userRepo.ExistsByEmail(*email); err != nil {
		logger.Error("lookup failed", "error", err)
		os.Exit(1)
	} else if exists {
		logger.Info("demo user already seeded", "email", *email)
		return
	}

	passwordService := services.NewPasswordService()
	hash, err := passwordService.HashPassword(*password)
	if err != nil {
		logger.Error("failed to hash password", "error", err)
		os.Exit(1)
	}

	user := &models.User{
		Email:        *email,
		PasswordHash: hash,
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
	}
	if err := userRepo.Create(user); err != nil {
		logger.Error("failed to create user", "error", err)
		os.Exit(1)
	}

	profile := &models.Profile{
		UserID:        user.ID,
		MonthlyIncome: decimal.NewFromInt(4200),
		CashOnHand:    decimal.NewFromInt(2500),
	}
	if err := profileRepo.Create(profile); err != nil {
		logger.Error("failed to create profile", "error", err)
		os.Exit(1)
	}

	categories := make([]models.Category, 0)
	for _, spec := range models.DefaultCategories() {
		categories = append(categories, models.Category{
			UserID:       user.ID,
			Name:         spec.Name,
			CategoryType: spec.Type,
			Color:        spec.Color,
		})
	}
	if err := categoryRepo.CreateBatch(categories); err != nil {
		logger.Error("failed to create categories", "error", err)
		os.Exit(1)
	}
	stored, err := categoryRepo.GetByUserID(user.ID)
	if err != nil {
		logger.Error("failed to load categories", "error", err)
		os.Exit(1)
	}

	now := time.Now().UTC()
	for i := 0; i < *count; i++ {
		txn := randomTransaction(user.ID, stored, now)
		if err := transactionRepo.Create(txn); err != nil {
			logger.Error("failed to create transaction", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("seed complete",
		"email", *email,
		"transactions", *count,
		"categories", len(stored))
}

func randomTransaction(userID uuid.UUID, categories []models.Category, now time.Time) *models.Transaction {
	category := categories[gofakeit.Number(0, len(categories)-1)]

	txnType := models.TransactionTypeExpense
	amount := decimal.NewFromFloat(gofakeit.Price(3, 250))
	switch gofakeit.Number(1, 10) {
	case 1:
		txnType = models.TransactionTypeIncome
		amount = decimal.NewFromFloat(gofakeit.Price(500, 4500))
	case 2:
		txnType = models.TransactionTypeSavings
		amount = decimal.NewFromFloat(gofakeit.Price(20, 400))
	}

	daysBack := gofakeit.Number(0, 180)
	date := now.AddDate(0, 0, -daysBack)

	return &models.Transaction{
		UserID:          userID,
		Title:           gofakeit.ProductName(),
		Description:     gofakeit.Sentence(6),
		Amount:          amount.Round(2),
		TransactionType: txnType,
		CategoryID:      &category.ID,
		Date:            date,
	}
}
