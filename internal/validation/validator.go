package validation

import (
	"reflect"
	"regexp"
	"strings"

	"financehub/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("budget_type", validateBudgetType)
	_ = v.RegisterValidation("hex_color", validateHexColor)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionType validates that transaction type is one of the allowed types
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(strings.ToLower(fl.Field().String()))
}

// validateBudgetType validates that budget type is weekly or monthly
func validateBudgetType(fl validator.FieldLevel) bool {
	return models.IsValidBudgetType(strings.ToLower(fl.Field().String()))
}

// validateHexColor validates a six-digit hex color like #dc3545
func validateHexColor(fl validator.FieldLevel) bool {
	matched, _ := regexp.MatchString(`^#[0-9a-fA-F]{6}$`, fl.Field().String())
	return matched
}

// validatePositiveAmount validates that a string-encoded amount parses and is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	return amount.IsPositive()
}
