package dto

import (
	"time"

	"budget-backend/internal/models"

	"github.com/google/uuid"
)

// RegisterRequest carries the signup payload. Email is optional but must be
// unique across accounts when supplied.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,max=150,username"`
	Email           string `json:"email" validate:"omitempty,email,max=254"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenResponse is returned from register, login and refresh.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserSummary(user *models.User) *UserSummary {
	return &UserSummary{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

type AuthResponse struct {
	User   *UserSummary   `json:"user"`
	Tokens *TokenResponse `json:"tokens"`
}
