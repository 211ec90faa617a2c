package repositories

import (
	"errors"
	"fmt"

	"financehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// CreateBatch creates multiple categories at once
func (r *categoryRepository) CreateBatch(categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}
	if err := r.db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *categoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetByUserID retrieves all categories belonging to a user
func (r *categoryRepository) GetByUserID(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetOrCreateByType finds the user's category of the given type, creating it
// with the supplied defaults when it does not exist yet.
func (r *categoryRepository) GetOrCreateByType(userID uuid.UUID, categoryType, defaultName, defaultColor string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("user_id = ? AND category_type = ?", userID, categoryType).
		First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get category by type: %w", err)
	}

	category = models.Category{
		UserID:       userID,
		Name:         defaultName,
		CategoryType: categoryType,
		Color:        defaultColor,
	}
	if err := r.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}
