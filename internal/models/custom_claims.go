package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CustomClaims represents the custom claims in our JWT tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}

// ParsedUserID returns the user_id claim as a UUID
func (c *CustomClaims) ParsedUserID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}
