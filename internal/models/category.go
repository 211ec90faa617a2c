package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category types available to every user
const (
	CategoryTypeBills          = "bills"
	CategoryTypeWants          = "wants"
	CategoryTypeNeeds          = "needs"
	CategoryTypeGrocery        = "grocery"
	CategoryTypeSchool         = "school"
	CategoryTypeAllowance      = "allowance"
	CategoryTypeLoad           = "load"
	CategoryTypeTransportation = "transportation"
	CategoryTypeFood           = "food"
	CategoryTypeEntertainment  = "entertainment"
	CategoryTypeHealth         = "health"
	CategoryTypeClothing       = "clothing"
	CategoryTypeSavings        = "savings"
	CategoryTypeShopping       = "shopping"
	CategoryTypeOther          = "other"
	CategoryTypeIncome         = "income"
)

// DefaultCategoryColor is used when no color is supplied.
const DefaultCategoryColor = "#6f42c1"

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Category is a user-defined label with a display color, attached to transactions.
type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name" json:"user_id"`
	Name         string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name" json:"name"`
	CategoryType string    `gorm:"type:varchar(30);not null;default:'other'" json:"category_type"`
	Color        string    `gorm:"type:varchar(7);not null;default:'#6f42c1'" json:"color"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if c.Name == "" {
		return errors.New("category name is required")
	}
	if !IsValidCategoryType(c.CategoryType) {
		return errors.New("invalid category type")
	}
	if !hexColorRegex.MatchString(c.Color) {
		return errors.New("color must be a hex code like #6f42c1")
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// AllCategoryTypes returns all valid category type constants
func AllCategoryTypes() []string {
	return []string{
		CategoryTypeBills,
		CategoryTypeWants,
		CategoryTypeNeeds,
		CategoryTypeGrocery,
		CategoryTypeSchool,
		CategoryTypeAllowance,
		CategoryTypeLoad,
		CategoryTypeTransportation,
		CategoryTypeFood,
		CategoryTypeEntertainment,
		CategoryTypeHealth,
		CategoryTypeClothing,
		CategoryTypeSavings,
		CategoryTypeShopping,
		CategoryTypeOther,
		CategoryTypeIncome,
	}
}

// IsValidCategoryType checks if a category type string is valid
func IsValidCategoryType(categoryType string) bool {
	for _, valid := range AllCategoryTypes() {
		if categoryType == valid {
			return true
		}
	}
	return false
}

// DefaultCategorySpec describes one of the categories created for every new user.
type DefaultCategorySpec struct {
	Name  string
	Type  string
	Color string
}

// DefaultCategories returns the category set created on registration.
func DefaultCategories() []DefaultCategorySpec {
	return []DefaultCategorySpec{
		{"Bills", CategoryTypeBills, "#dc3545"},
		{"Wants", CategoryTypeWants, "#8b5cf6"},
		{"Needs", CategoryTypeNeeds, "#6f42c1"},
		{"Grocery", CategoryTypeGrocery, "#28a745"},
		{"School/Education", CategoryTypeSchool, "#007bff"},
		{"Daily Allowance", CategoryTypeAllowance, "#ffc107"},
		{"Mobile Load", CategoryTypeLoad, "#17a2b8"},
		{"Transportation", CategoryTypeTransportation, "#6c757d"},
		{"Food & Dining", CategoryTypeFood, "#fd7e14"},
		{"Entertainment", CategoryTypeEntertainment, "#e83e8c"},
		{"Health & Medical", CategoryTypeHealth, "#20c997"},
		{"Savings", CategoryTypeSavings, "#6f42c1"},
		{"Other", CategoryTypeOther, "#6c757d"},
	}
}
