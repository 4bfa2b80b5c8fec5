package services

import (
	"errors"
	"fmt"
	"log/slog"

	"budget-backend/internal/config"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password is too long")
)

// PasswordService handles password hashing and validation.
type PasswordService struct {
	cost      int
	minLength int
}

func NewPasswordService(cfg *config.Config) *PasswordService {
	return &PasswordService{
		cost:      cfg.Security.BCryptCost,
		minLength: cfg.Security.PasswordMinLength,
	}
}

// ValidatePassword enforces the length policy. There are no composition
// rules beyond length.
func (s *PasswordService) ValidatePassword(password string) error {
	if len(password) < s.minLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooShort, s.minLength)
	}
	// bcrypt truncates input beyond 72 bytes
	if len(password) > 72 {
		return ErrPasswordTooLong
	}
	return nil
}

func (s *PasswordService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *PasswordService) ComparePassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		slog.Warn("Password comparison failed", "error", err)
	}
	return err == nil
}
