package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims represents the custom claims in our JWT access tokens
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}
