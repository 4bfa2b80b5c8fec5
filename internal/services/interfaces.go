package services

import (
	"time"

	"budget-backend/internal/dto"
	"budget-backend/internal/models"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, *dto.TokenResponse, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*models.User, *dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// DashboardServiceInterface summarizes one month of a user's activity
type DashboardServiceInterface interface {
	MonthlySummary(userID uuid.UUID, month, year int) (*models.MonthlySummary, error)
}

// SampleDataServiceInterface generates realistic demo data for development environments
type SampleDataServiceInterface interface {
	SeedDemoUser(username, password string, months int) (*models.User, error)
}
