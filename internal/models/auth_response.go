package models

import (
	"accounts-be/internal/entities"
)

// AuthResponse represents the response after successful registration or login
type AuthResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"` // always "bearer"
	User        *entities.User `json:"user"`
}

// NewAuthResponse builds the token + user envelope returned by /auth routes
func NewAuthResponse(token string, user *entities.User) *AuthResponse {
	return &AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}
}
