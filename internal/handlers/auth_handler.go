package handlers

import (
	"errors"
	"net/http"
	"strings"

	"budget-backend/internal/dto"
	apierrors "budget-backend/internal/errors"
	"budget-backend/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration. A successful registration signs the
// user in and returns tokens alongside the account summary.
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	user, tokens, err := h.authService.Register(&req, ipAddress, userAgent)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			return SendError(c, apierrors.UsernameTaken)
		case errors.Is(err, services.ErrEmailTaken):
			return SendError(c, apierrors.EmailTaken)
		case errors.Is(err, services.ErrPasswordMismatch):
			return SendError(c, apierrors.PasswordMismatch)
		case errors.Is(err, services.ErrPasswordTooShort), errors.Is(err, services.ErrPasswordTooLong):
			return SendError(c, apierrors.PasswordTooShort, apierrors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.AuthResponse{
			User:   dto.NewUserSummary(user),
			Tokens: tokens,
		},
		Message: "User registered successfully",
	})
}

// Login authenticates a user by username and password
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	user, tokens, err := h.authService.Login(&req, ipAddress, userAgent)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return SendError(c, apierrors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		User:   dto.NewUserSummary(user),
		Tokens: tokens,
	})
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req dto.RefreshTokenRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	tokens, err := h.authService.RefreshTokens(req.RefreshToken, ipAddress, userAgent)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRefreshToken) {
			return SendError(c, apierrors.AuthInvalidTokenFormat, apierrors.WithDetails("Invalid or expired refresh token"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Logout invalidates the caller's access and refresh tokens
func (h *AuthHandler) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return SendError(c, apierrors.AuthMissingToken)
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
		return SendError(c, apierrors.AuthInvalidTokenFormat)
	}

	accessToken := tokenParts[1]
	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	if err := h.authService.Logout(accessToken, ipAddress, userAgent); err != nil {
		if errors.Is(err, services.ErrInvalidAccessToken) {
			return SendError(c, apierrors.AuthInvalidTokenFormat)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Logout successful",
	})
}
