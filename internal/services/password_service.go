package services

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const (
	// BCryptCost factor 12 for credential storage
	BCryptCost = 12

	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt algorithm limitation
)

var (
	ErrPasswordEmpty    = errors.New("password cannot be empty")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrPasswordTooLong  = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	ErrPasswordNoLetter = errors.New("password must contain at least one letter")
	ErrPasswordNoNumber = errors.New("password must contain at least one number")
	ErrWrongPassword    = errors.New("password does not match")

	letterRegex = regexp.MustCompile(`[a-zA-Z]`)
	numberRegex = regexp.MustCompile(`[0-9]`)
)

// PasswordService handles password hashing and verification
type PasswordService struct {
	cost int
}

// NewPasswordService creates a password service with default settings
func NewPasswordService() PasswordServiceInterface {
	return &PasswordService{cost: BCryptCost}
}

// ValidatePasswordStrength checks if a password meets the minimum requirements
func (ps *PasswordService) ValidatePasswordStrength(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	if !letterRegex.MatchString(password) {
		return ErrPasswordNoLetter
	}
	if !numberRegex.MatchString(password) {
		return ErrPasswordNoNumber
	}
	return nil
}

// HashPassword validates and hashes a password using bcrypt
func (ps *PasswordService) HashPassword(password string) (string, error) {
	if err := ps.ValidatePasswordStrength(password); err != nil {
		return "", fmt.Errorf("password validation failed: %w", err)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), ps.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// VerifyPassword compares a plain password against a stored hash
func (ps *PasswordService) VerifyPassword(hash, password string) error {
	// bcrypt.CompareHashAndPassword provides timing-attack resistance
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrWrongPassword
	}
	return nil
}
