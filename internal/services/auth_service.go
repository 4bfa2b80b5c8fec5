package services

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"budget-backend/internal/dto"
	"budget-backend/internal/models"
	"budget-backend/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUsernameTaken       = errors.New("a user with that username already exists")
	ErrEmailTaken          = errors.New("a user with that email already exists")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrInvalidAccessToken  = errors.New("invalid access token")
)

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	userRepo             repositories.UserRepositoryInterface
	refreshTokenRepo     repositories.RefreshTokenRepositoryInterface
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface
	passwordService      PasswordServiceInterface
	tokenService         TokenServiceInterface
	logger               *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface,
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:             userRepo,
		refreshTokenRepo:     refreshTokenRepo,
		blacklistedTokenRepo: blacklistedTokenRepo,
		passwordService:      passwordService,
		tokenService:         tokenService,
		logger:               logger,
	}
}

// Register creates a new user account and signs them in
func (s *AuthService) Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, *dto.TokenResponse, error) {
	if req.Password != req.PasswordConfirm {
		return nil, nil, ErrPasswordMismatch
	}

	if err := s.passwordService.ValidatePassword(req.Password); err != nil {
		return nil, nil, err
	}

	existingUser, err := s.userRepo.GetByUsername(req.Username)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if existingUser != nil {
		s.logger.Info("registration rejected",
			"reason", "username_taken",
			"username", req.Username,
			"ip_address", ipAddress)
		return nil, nil, ErrUsernameTaken
	}

	// Email has no database-level unique constraint because it is optional,
	// so uniqueness is enforced here.
	if req.Email != "" {
		byEmail, err := s.userRepo.GetByEmail(req.Email)
		if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, fmt.Errorf("failed to check existing email: %w", err)
		}
		if byEmail != nil {
			s.logger.Info("registration rejected",
				"reason", "email_taken",
				"ip_address", ipAddress)
			return nil, nil, ErrEmailTaken
		}
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, nil, ErrUsernameTaken
		}
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"username", user.Username,
		"ip_address", ipAddress,
		"user_agent", userAgent)

	return user, tokens, nil
}

// Login authenticates a user by username and returns tokens
func (s *AuthService) Login(req *dto.LoginRequest, ipAddress, userAgent string) (*models.User, *dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.logger.Info("login rejected",
				"reason", "user_not_found",
				"username", req.Username,
				"ip_address", ipAddress)
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.logger.Info("login rejected",
			"reason", "invalid_password",
			"user_id", user.ID,
			"ip_address", ipAddress)
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.logger.Info("user logged in",
		"user_id", user.ID,
		"username", user.Username,
		"ip_address", ipAddress,
		"user_agent", userAgent)

	return user, tokens, nil
}

// RefreshTokens generates new tokens using a refresh token
func (s *AuthService) RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	storedToken, err := s.refreshTokenRepo.GetByTokenHash(hashToken(refreshToken))
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	if !storedToken.IsValid() {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	storedToken.Revoke()
	if err := s.refreshTokenRepo.Update(storedToken); err != nil {
		// Non-critical: revocation failure shouldn't block refresh
		s.logger.Warn("failed to revoke old token",
			"error", err,
			"user_id", user.ID,
			"token_id", storedToken.ID)
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	s.logger.Info("tokens refreshed",
		"user_id", user.ID,
		"ip_address", ipAddress,
		"user_agent", userAgent)

	return tokens, nil
}

// Logout invalidates the user's tokens
func (s *AuthService) Logout(accessToken, ipAddress, userAgent string) error {
	claims, err := s.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		if !errors.Is(err, ErrExpiredToken) {
			return ErrInvalidAccessToken
		}

		// Blacklist even expired tokens to prevent reuse
		jti, _ := s.tokenService.GetJTI(accessToken)
		if jti != "" {
			if err := s.blacklistToken(jti, uuid.Nil, time.Now().Add(24*time.Hour)); err != nil {
				s.logger.Error("failed to blacklist expired token",
					"error", err,
					"jti", jti)
			}
		}
		return nil
	}

	userID, _ := uuid.Parse(claims.UserID)

	expiry, _ := s.tokenService.GetTokenExpiry(accessToken)
	if err := s.blacklistToken(claims.ID, userID, expiry); err != nil {
		s.logger.Error("failed to blacklist token",
			"error", err,
			"jti", claims.ID,
			"user_id", userID)
	}

	if err := s.refreshTokenRepo.RevokeAllForUser(userID); err != nil {
		// Non-critical: subsequent refresh attempts will fail token validation
		s.logger.Warn("failed to revoke refresh tokens",
			"error", err,
			"user_id", userID)
	}

	s.logger.Info("user logged out",
		"user_id", userID,
		"ip_address", ipAddress,
		"user_agent", userAgent)

	return nil
}

func (s *AuthService) generateTokens(user *models.User) (*dto.TokenResponse, error) {
	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: refreshExpiresAt,
	}

	if err := s.refreshTokenRepo.Create(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *AuthService) blacklistToken(jti string, userID uuid.UUID, expiresAt time.Time) error {
	token := &models.BlacklistedToken{
		JTI:       jti,
		ExpiresAt: expiresAt,
	}
	if userID != uuid.Nil {
		token.UserID = &userID
	}
	return s.blacklistedTokenRepo.Create(token)
}

func hashToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return fmt.Sprintf("%x", hasher.Sum(nil))
}
