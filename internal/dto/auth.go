package dto

import "time"

// Auth Request DTOs

// RegisterRequest contains user registration data. The optional starting
// figures seed the new profile.
type RegisterRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	FirstName     string `json:"firstName" validate:"required,min=1,max=100"`
	LastName      string `json:"lastName" validate:"required,min=1,max=100"`
	MonthlyIncome string `json:"monthlyIncome,omitempty"`
	CashOnHand    string `json:"cashOnHand,omitempty"`
}

// LoginRequest contains login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Auth Response DTOs

// TokenResponse contains the issued access token
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// UserProfileResponse represents the authenticated user's profile
type UserProfileResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	MonthlyIncome string `json:"monthlyIncome"`
	CashOnHand    string `json:"cashOnHand"`
}
