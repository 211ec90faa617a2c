package repositories

import (
	"errors"
	"fmt"

	"financehub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

// profileRepository implements ProfileRepositoryInterface
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepositoryInterface {
	return &profileRepository{
		db: db,
	}
}

// Create creates a new profile
func (r *profileRepository) Create(profile *models.Profile) error {
	if err := r.db.Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetByUserID retrieves the profile for a user
func (r *profileRepository) GetByUserID(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// Update persists the profile
func (r *profileRepository) Update(profile *models.Profile) error {
	if err := r.db.Save(profile).Error; err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// AdjustCashOnHand applies a signed delta to the cash-on-hand figure
func (r *profileRepository) AdjustCashOnHand(userID uuid.UUID, delta decimal.Decimal) error {
	result := r.db.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Update("cash_on_hand", gorm.Expr("cash_on_hand + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust cash on hand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
