package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthEmailTaken         ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
	TransactionExceedsCash   ErrorCode = "TRANSACTION_004"
	TransactionNoCategory    ErrorCode = "TRANSACTION_005"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInvalidType   ErrorCode = "CATEGORY_003"
)

// Profile error codes (PROFILE_*)
const (
	ProfileNotFound ErrorCode = "PROFILE_001"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound          ErrorCode = "BUDGET_001"
	BudgetInsufficientFunds ErrorCode = "BUDGET_002"
	BudgetInvalidType       ErrorCode = "BUDGET_003"
	BudgetInactive          ErrorCode = "BUDGET_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemDatabaseError     ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid email or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthEmailTaken:         "An account with this email already exists",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Amount must be a positive number",
	TransactionInvalidType:   "Invalid transaction type",
	TransactionExceedsCash:   "Amount exceeds available balance",
	TransactionNoCategory:    "A category must be selected",

	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryInvalidType:   "Invalid category type",

	ProfileNotFound: "Profile not found",

	BudgetNotFound:          "Budget not found",
	BudgetInsufficientFunds: "Insufficient available funds for this allocation",
	BudgetInvalidType:       "Invalid budget type",
	BudgetInactive:          "Budget is already closed",

	SystemInternalError:     "An internal error occurred",
	SystemDatabaseError:     "A database error occurred",
	SystemRateLimitExceeded: "Too many requests, please slow down",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, ok := errorMessages[code]; ok {
		return message
	}
	return "Unknown error"
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate,
		TransactionInvalidAmount, TransactionInvalidType, TransactionNoCategory,
		CategoryInvalidType, BudgetInvalidType:
		return http.StatusBadRequest

	case AuthInvalidCredentials, AuthMissingToken, AuthExpiredToken, AuthInvalidTokenFormat:
		return http.StatusUnauthorized

	case TransactionNotFound, CategoryNotFound, ProfileNotFound, BudgetNotFound:
		return http.StatusNotFound

	case AuthEmailTaken, CategoryAlreadyExists, TransactionExceedsCash,
		BudgetInsufficientFunds, BudgetInactive:
		return http.StatusUnprocessableEntity

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemInternalError, SystemDatabaseError:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}
