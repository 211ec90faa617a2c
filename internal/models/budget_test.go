package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBudget_Validate(t *testing.T) {
	validUserID := uuid.New()
	start := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		budget  Budget
		wantErr bool
	}{
		{
			name: "valid weekly budget",
			budget: Budget{
				UserID:     validUserID,
				Amount:     decimal.NewFromFloat(200.00),
				BudgetType: BudgetTypeWeekly,
				StartDate:  start,
			},
			wantErr: false,
		},
		{
			name: "missing user ID",
			budget: Budget{
				Amount:     decimal.NewFromFloat(200.00),
				BudgetType: BudgetTypeWeekly,
				StartDate:  start,
			},
			wantErr: true,
		},
		{
			name: "non-positive amount",
			budget: Budget{
				UserID:     validUserID,
				Amount:     decimal.Zero,
				BudgetType: BudgetTypeMonthly,
				StartDate:  start,
			},
			wantErr: true,
		},
		{
			name: "invalid budget type",
			budget: Budget{
				UserID:     validUserID,
				Amount:     decimal.NewFromFloat(200.00),
				BudgetType: "quarterly",
				StartDate:  start,
			},
			wantErr: true,
		},
		{
			name: "missing start date",
			budget: Budget{
				UserID:     validUserID,
				Amount:     decimal.NewFromFloat(200.00),
				BudgetType: BudgetTypeWeekly,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.budget.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBudget_PeriodEnd(t *testing.T) {
	weekly := Budget{
		BudgetType: BudgetTypeWeekly,
		StartDate:  time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, time.Date(2024, time.July, 21, 0, 0, 0, 0, time.UTC), weekly.PeriodEnd())

	monthly := Budget{
		BudgetType: BudgetTypeMonthly,
		StartDate:  time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, time.Date(2024, time.July, 31, 0, 0, 0, 0, time.UTC), monthly.PeriodEnd())

	// Leap February.
	february := Budget{
		BudgetType: BudgetTypeMonthly,
		StartDate:  time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), february.PeriodEnd())
}

func TestIsValidBudgetType(t *testing.T) {
	assert.True(t, IsValidBudgetType(BudgetTypeWeekly))
	assert.True(t, IsValidBudgetType(BudgetTypeMonthly))
	assert.False(t, IsValidBudgetType("quarterly"))
	assert.False(t, IsValidBudgetType(""))
}
