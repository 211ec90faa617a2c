package repositories

import (
	"testing"

	"financehub/internal/database"
	"financehub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ProfileRepositorySuite defines the test suite for ProfileRepository
type ProfileRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     ProfileRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *ProfileRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewProfileRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "test@example.com")
}

// TearDownTest runs after each test in the suite
func (s *ProfileRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestProfileRepositorySuite runs the test suite
func TestProfileRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositorySuite))
}

func (s *ProfileRepositorySuite) TestCreate() {
	profile := &models.Profile{
		UserID:        s.testUser.ID,
		MonthlyIncome: decimal.RequireFromString("4200.00"),
		CashOnHand:    decimal.RequireFromString("600.00"),
	}

	err := s.repo.Create(profile)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, profile.ID)
}

func (s *ProfileRepositorySuite) TestGetByUserID() {
	database.CreateTestProfile(s.T(), s.db, s.testUser.ID, decimal.RequireFromString("500.00"))

	profile, err := s.repo.GetByUserID(s.testUser.ID)

	s.Require().NoError(err)
	s.True(profile.CashOnHand.Equal(decimal.RequireFromString("500.00")))
}

func (s *ProfileRepositorySuite) TestGetByUserID_NotFound() {
	_, err := s.repo.GetByUserID(uuid.New())
	s.ErrorIs(err, ErrProfileNotFound)
}

func (s *ProfileRepositorySuite) TestUpdate() {
	database.CreateTestProfile(s.T(), s.db, s.testUser.ID, decimal.RequireFromString("500.00"))

	profile, err := s.repo.GetByUserID(s.testUser.ID)
	s.Require().NoError(err)

	profile.MonthlyIncome = decimal.RequireFromString("5000.00")
	s.Require().NoError(s.repo.Update(profile))

	updated, err := s.repo.GetByUserID(s.testUser.ID)
	s.Require().NoError(err)
	s.True(updated.MonthlyIncome.Equal(decimal.RequireFromString("5000.00")))
}

func (s *ProfileRepositorySuite) TestAdjustCashOnHand() {
	database.CreateTestProfile(s.T(), s.db, s.testUser.ID, decimal.RequireFromString("500.00"))

	s.Require().NoError(s.repo.AdjustCashOnHand(s.testUser.ID, decimal.RequireFromString("-45.50")))
	s.Require().NoError(s.repo.AdjustCashOnHand(s.testUser.ID, decimal.RequireFromString("100.00")))

	profile, err := s.repo.GetByUserID(s.testUser.ID)
	s.Require().NoError(err)
	s.True(profile.CashOnHand.Equal(decimal.RequireFromString("554.50")))
}

func (s *ProfileRepositorySuite) TestAdjustCashOnHand_NoProfile() {
	err := s.repo.AdjustCashOnHand(uuid.New(), decimal.RequireFromString("10.00"))
	s.ErrorIs(err, ErrProfileNotFound)
}
