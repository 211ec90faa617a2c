package repositories

import (
	"testing"

	"financehub/internal/database"
	"financehub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// UserRepositorySuite defines the test suite for UserRepository
type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestUserRepositorySuite runs the test suite
func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

func (s *UserRepositorySuite) TestCreate() {
	user := &models.User{
		Email:        "new@example.com",
		PasswordHash: "hashed_password",
		FirstName:    "New",
		LastName:     "User",
	}

	err := s.repo.Create(user)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
}

func (s *UserRepositorySuite) TestGetByID() {
	created := database.CreateTestUser(s.T(), s.db, "test@example.com")

	found, err := s.repo.GetByID(created.ID)

	s.Require().NoError(err)
	s.Equal(created.Email, found.Email)
}

func (s *UserRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestGetByEmail_CaseInsensitive() {
	created := database.CreateTestUser(s.T(), s.db, "test@example.com")

	found, err := s.repo.GetByEmail("Test@Example.COM")

	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)
}

func (s *UserRepositorySuite) TestGetByEmail_NotFound() {
	_, err := s.repo.GetByEmail("missing@example.com")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestExistsByEmail() {
	database.CreateTestUser(s.T(), s.db, "test@example.com")

	exists, err := s.repo.ExistsByEmail("TEST@example.com")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsByEmail("missing@example.com")
	s.Require().NoError(err)
	s.False(exists)
}
