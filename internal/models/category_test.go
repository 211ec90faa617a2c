package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCategory_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name     string
		category Category
		wantErr  bool
		errMsg   string
	}{
		{
			name: "valid category",
			category: Category{
				UserID:       validUserID,
				Name:         "Food & Dining",
				CategoryType: CategoryTypeFood,
				Color:        "#fd7e14",
			},
			wantErr: false,
		},
		{
			name: "missing user ID",
			category: Category{
				Name:         "Food",
				CategoryType: CategoryTypeFood,
				Color:        "#fd7e14",
			},
			wantErr: true,
			errMsg:  "user ID is required",
		},
		{
			name: "missing name",
			category: Category{
				UserID:       validUserID,
				CategoryType: CategoryTypeFood,
				Color:        "#fd7e14",
			},
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name: "invalid category type",
			category: Category{
				UserID:       validUserID,
				Name:         "Food",
				CategoryType: "housing",
				Color:        "#fd7e14",
			},
			wantErr: true,
			errMsg:  "invalid category type",
		},
		{
			name: "malformed color",
			category: Category{
				UserID:       validUserID,
				Name:         "Food",
				CategoryType: CategoryTypeFood,
				Color:        "orange",
			},
			wantErr: true,
			errMsg:  "hex code",
		},
		{
			name: "short hex color",
			category: Category{
				UserID:       validUserID,
				Name:         "Food",
				CategoryType: CategoryTypeFood,
				Color:        "#fff",
			},
			wantErr: true,
			errMsg:  "hex code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.category.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultCategories(t *testing.T) {
	specs := DefaultCategories()

	assert.NotEmpty(t, specs)

	seen := make(map[string]bool, len(specs))
	for _, spec := range specs {
		assert.NotEmpty(t, spec.Name)
		assert.True(t, IsValidCategoryType(spec.Type), "type %q must be valid", spec.Type)
		assert.Regexp(t, `^#[0-9a-fA-F]{6}$`, spec.Color)
		assert.False(t, seen[spec.Name], "duplicate default category %q", spec.Name)
		seen[spec.Name] = true
	}
}

func TestIsValidCategoryType(t *testing.T) {
	for _, categoryType := range AllCategoryTypes() {
		assert.True(t, IsValidCategoryType(categoryType))
	}
	assert.False(t, IsValidCategoryType("housing"))
	assert.False(t, IsValidCategoryType(""))
}
