package repositories

import (
	"testing"

	"financehub/internal/database"
	"financehub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CategoryRepositorySuite defines the test suite for CategoryRepository
type CategoryRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     CategoryRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "test@example.com")
}

// TearDownTest runs after each test in the suite
func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCategoryRepositorySuite runs the test suite
func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

func (s *CategoryRepositorySuite) TestCreate() {
	category := &models.Category{
		UserID:       s.testUser.ID,
		Name:         "Food",
		CategoryType: models.CategoryTypeFood,
		Color:        "#fd7e14",
	}

	err := s.repo.Create(category)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, category.ID)
	s.False(category.CreatedAt.IsZero())
}

func (s *CategoryRepositorySuite) TestCreate_DefaultColor() {
	category := &models.Category{
		UserID:       s.testUser.ID,
		Name:         "Misc",
		CategoryType: models.CategoryTypeOther,
	}

	s.Require().NoError(s.repo.Create(category))
	s.Equal(models.DefaultCategoryColor, category.Color)
}

func (s *CategoryRepositorySuite) TestCreate_DuplicateNamePerUser() {
	first := &models.Category{UserID: s.testUser.ID, Name: "Food", CategoryType: models.CategoryTypeFood}
	s.Require().NoError(s.repo.Create(first))

	dup := &models.Category{UserID: s.testUser.ID, Name: "Food", CategoryType: models.CategoryTypeOther}
	s.Error(s.repo.Create(dup))

	// The same name is fine for a different user.
	otherUser := database.CreateTestUser(s.T(), s.db, "other@example.com")
	theirs := &models.Category{UserID: otherUser.ID, Name: "Food", CategoryType: models.CategoryTypeFood}
	s.NoError(s.repo.Create(theirs))
}

func (s *CategoryRepositorySuite) TestCreateBatch() {
	specs := models.DefaultCategories()
	categories := make([]models.Category, 0, len(specs))
	for _, spec := range specs {
		categories = append(categories, models.Category{
			UserID:       s.testUser.ID,
			Name:         spec.Name,
			CategoryType: spec.Type,
			Color:        spec.Color,
		})
	}

	err := s.repo.CreateBatch(categories)
	s.Require().NoError(err)

	stored, err := s.repo.GetByUserID(s.testUser.ID)
	s.Require().NoError(err)
	s.Len(stored, len(categories))
}

func (s *CategoryRepositorySuite) TestCreateBatch_Empty() {
	s.NoError(s.repo.CreateBatch(nil))
}

func (s *CategoryRepositorySuite) TestGetByID() {
	category := database.CreateTestCategory(s.T(), s.db, s.testUser.ID, "Rent", models.CategoryTypeNeeds, "#0d6efd")

	found, err := s.repo.GetByID(category.ID)

	s.Require().NoError(err)
	s.Equal("Rent", found.Name)
	s.Equal("#0d6efd", found.Color)
}

func (s *CategoryRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestGetByUserID_OrderedByName() {
	database.CreateTestCategory(s.T(), s.db, s.testUser.ID, "Rent", models.CategoryTypeNeeds, "#0d6efd")
	database.CreateTestCategory(s.T(), s.db, s.testUser.ID, "Food", models.CategoryTypeFood, "#fd7e14")

	otherUser := database.CreateTestUser(s.T(), s.db, "other@example.com")
	database.CreateTestCategory(s.T(), s.db, otherUser.ID, "Theirs", models.CategoryTypeOther, "#6f42c1")

	categories, err := s.repo.GetByUserID(s.testUser.ID)

	s.Require().NoError(err)
	s.Require().Len(categories, 2)
	s.Equal("Food", categories[0].Name)
	s.Equal("Rent", categories[1].Name)
}

func (s *CategoryRepositorySuite) TestGetOrCreateByType_CreatesOnFirstUse() {
	category, err := s.repo.GetOrCreateByType(s.testUser.ID, models.CategoryTypeOther, "Other", models.DefaultCategoryColor)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, category.ID)
	s.Equal("Other", category.Name)
	s.Equal(models.CategoryTypeOther, category.CategoryType)
	s.Equal(models.DefaultCategoryColor, category.Color)
}

func (s *CategoryRepositorySuite) TestGetOrCreateByType_ReusesExisting() {
	existing := database.CreateTestCategory(s.T(), s.db, s.testUser.ID, "Everything else", models.CategoryTypeOther, "#999999")

	category, err := s.repo.GetOrCreateByType(s.testUser.ID, models.CategoryTypeOther, "Other", models.DefaultCategoryColor)

	s.Require().NoError(err)
	s.Equal(existing.ID, category.ID)
	// Defaults must not overwrite what the user already has.
	s.Equal("Everything else", category.Name)
	s.Equal("#999999", category.Color)
}
