package dto

import (
	"time"

	"subtrack/internal/models"
)

// Auth Request DTOs

// RegisterRequest contains user registration data
type RegisterRequest struct {
	Email                     string `json:"email" validate:"required,email"`
	Password                  string `json:"password" validate:"required,min=12"`
	FirstName                 string `json:"first_name" validate:"required,min=1,max=100"`
	LastName                  string `json:"last_name" validate:"required,min=1,max=100"`
	DefaultReminderDaysBefore *int   `json:"default_reminder_days_before,omitempty" validate:"omitempty,min=0,max=60"`
}

// LoginRequest contains login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest contains refresh token for renewal
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Auth Response DTOs

// TokenResponse contains authentication tokens
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// UserProfileResponse represents the authenticated user's profile
type UserProfileResponse struct {
	ID                        string     `json:"id"`
	Email                     string     `json:"email"`
	FirstName                 string     `json:"first_name"`
	LastName                  string     `json:"last_name"`
	Role                      string     `json:"role"`
	DefaultReminderDaysBefore int        `json:"default_reminder_days_before"`
	LastLoginAt               *time.Time `json:"last_login_at,omitempty"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`
}

func ToUserProfileResponse(user *models.User) UserProfileResponse {
	return UserProfileResponse{
		ID:                        user.ID.String(),
		Email:                     user.Email,
		FirstName:                 user.FirstName,
		LastName:                  user.LastName,
		Role:                      user.Role,
		DefaultReminderDaysBefore: user.DefaultReminderDaysBefore,
		LastLoginAt:               user.LastLoginAt,
		CreatedAt:                 user.CreatedAt,
		UpdatedAt:                 user.UpdatedAt,
	}
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	User   UserProfileResponse `json:"user"`
	Tokens *TokenResponse      `json:"tokens"`
}
