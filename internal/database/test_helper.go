package database

import (
	"fmt"
	"testing"
	"time"

	"financehub/internal/config"
	"financehub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"budgets",
		"savings",
		"transactions",
		"categories",
		"profiles",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		FirstName:    "Test",
		LastName:     "User",
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestProfile(t *testing.T, db *DB, userID uuid.UUID, cashOnHand decimal.Decimal) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		UserID:     userID,
		CashOnHand: cashOnHand,
	}

	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}

	return profile
}

func CreateTestCategory(t *testing.T, db *DB, userID uuid.UUID, name, categoryType, color string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:       userID,
		Name:         name,
		CategoryType: categoryType,
		Color:        color,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestTransaction(t *testing.T, db *DB, userID uuid.UUID, txType string, amount decimal.Decimal, date time.Time, categoryID *uuid.UUID) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		UserID:          userID,
		Title:           "Test " + txType,
		Amount:          amount,
		TransactionType: txType,
		CategoryID:      categoryID,
		Date:            date,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}
