package repositories

import (
	"testing"
	"time"

	"financehub/internal/database"
	"financehub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// SavingsRepositorySuite defines the test suite for SavingsRepository
type SavingsRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     SavingsRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *SavingsRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSavingsRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "test@example.com")
}

// TearDownTest runs after each test in the suite
func (s *SavingsRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestSavingsRepositorySuite runs the test suite
func TestSavingsRepositorySuite(t *testing.T) {
	suite.Run(t, new(SavingsRepositorySuite))
}

func (s *SavingsRepositorySuite) save(amount string, date time.Time) *models.Savings {
	entry := &models.Savings{
		UserID:      s.testUser.ID,
		Amount:      decimal.RequireFromString(amount),
		Description: gofakeit.Sentence(5),
		Date:        date,
	}
	s.Require().NoError(s.repo.Create(entry))
	return entry
}

func (s *SavingsRepositorySuite) TestCreate() {
	entry := s.save("150.00", time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC))

	s.NotEqual(uuid.Nil, entry.ID)
	s.False(entry.CreatedAt.IsZero())
}

func (s *SavingsRepositorySuite) TestCreateWithTransaction() {
	database.CreateTestProfile(s.T(), s.db, s.testUser.ID, decimal.RequireFromString("500.00"))

	date := time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)
	entry := &models.Savings{
		UserID: s.testUser.ID,
		Amount: decimal.RequireFromString("150.00"),
		Date:   date,
	}
	txn := &models.Transaction{
		UserID:          s.testUser.ID,
		Title:           "Savings",
		Amount:          decimal.RequireFromString("150.00"),
		TransactionType: models.TransactionTypeSavings,
		Date:            date,
	}

	err := s.repo.CreateWithTransaction(entry, txn, decimal.RequireFromString("-150.00"))

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, entry.ID)
	s.NotEqual(uuid.Nil, txn.ID)

	var profile models.Profile
	s.Require().NoError(s.db.First(&profile, "user_id = ?", s.testUser.ID).Error)
	s.True(profile.CashOnHand.Equal(decimal.RequireFromString("350.00")))
}

func (s *SavingsRepositorySuite) TestCreateWithTransaction_MissingProfileRollsBack() {
	date := time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)
	entry := &models.Savings{
		UserID: s.testUser.ID,
		Amount: decimal.RequireFromString("150.00"),
		Date:   date,
	}
	txn := &models.Transaction{
		UserID:          s.testUser.ID,
		Title:           "Savings",
		Amount:          decimal.RequireFromString("150.00"),
		TransactionType: models.TransactionTypeSavings,
		Date:            date,
	}

	err := s.repo.CreateWithTransaction(entry, txn, decimal.RequireFromString("-150.00"))

	s.Require().ErrorIs(err, ErrProfileNotFound)

	// Neither the savings entry nor the transaction survives the rollback.
	var savingsCount, txnCount int64
	s.Require().NoError(s.db.Model(&models.Savings{}).Where("user_id = ?", s.testUser.ID).Count(&savingsCount).Error)
	s.Require().NoError(s.db.Model(&models.Transaction{}).Where("user_id = ?", s.testUser.ID).Count(&txnCount).Error)
	s.Zero(savingsCount)
	s.Zero(txnCount)
}

func (s *SavingsRepositorySuite) TestSumByDateRange() {
	s.save("100.00", time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC))
	s.save("50.25", time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC))
	// Outside the range.
	s.save("999.00", time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC))

	start := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.July, 31, 23, 59, 59, 0, time.UTC)
	total, err := s.repo.SumByDateRange(s.testUser.ID, start, end)

	s.Require().NoError(err)
	s.True(total.Equal(decimal.RequireFromString("150.25")))
}

func (s *SavingsRepositorySuite) TestSumByDateRange_NoEntries() {
	start := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.July, 31, 23, 59, 59, 0, time.UTC)

	total, err := s.repo.SumByDateRange(s.testUser.ID, start, end)

	s.Require().NoError(err)
	s.True(total.IsZero())
}

func (s *SavingsRepositorySuite) TestTotalByUserID() {
	s.save("100.00", time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC))
	s.save("200.00", time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC))

	otherUser := database.CreateTestUser(s.T(), s.db, "other@example.com")
	other := &models.Savings{
		UserID: otherUser.ID,
		Amount: decimal.RequireFromString("77.00"),
		Date:   time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.repo.Create(other))

	total, err := s.repo.TotalByUserID(s.testUser.ID)

	s.Require().NoError(err)
	s.True(total.Equal(decimal.RequireFromString("300.00")))
}
