package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budget-backend/internal/dto"
	"budget-backend/internal/models"
	"budget-backend/internal/services"
	"budget-backend/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	e           *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) postJSON(path string, payload any) (*httptest.ResponseRecorder, echo.Context) {
	body, err := json.Marshal(payload)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, s.e.NewContext(req, rec)
}

func (s *AuthHandlerSuite) tokenResponse() *dto.TokenResponse {
	return &dto.TokenResponse{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresAt:    time.Now().Add(24 * time.Hour),
	}
}

func (s *AuthHandlerSuite) TestRegister_Success() {
	user := &models.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
	}

	s.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(user, s.tokenResponse(), nil).
		Times(1)

	rec, c := s.postJSON("/api/v1/auth/register", map[string]string{
		"username":         "alice",
		"email":            "alice@example.com",
		"password":         "secret-password",
		"password_confirm": "secret-password",
	})

	err := s.handler.Register(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotNil(response.Data)
	s.Contains(rec.Body.String(), "alice")
	s.Contains(rec.Body.String(), "access-token")
}

func (s *AuthHandlerSuite) TestRegister_UsernameTaken() {
	s.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil, services.ErrUsernameTaken).
		Times(1)

	rec, c := s.postJSON("/api/v1/auth/register", map[string]string{
		"username":         "alice",
		"password":         "secret-password",
		"password_confirm": "secret-password",
	})

	err := s.handler.Register(c)
	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *AuthHandlerSuite) TestRegister_PasswordMismatch() {
	s.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil, services.ErrPasswordMismatch).
		Times(1)

	rec, c := s.postJSON("/api/v1/auth/register", map[string]string{
		"username":         "alice",
		"password":         "secret-password",
		"password_confirm": "other-password",
	})

	err := s.handler.Register(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AuthHandlerSuite) TestRegister_ValidationFailure() {
	// username contains a disallowed character, the service is never called
	rec, c := s.postJSON("/api/v1/auth/register", map[string]string{
		"username":         "bad user",
		"password":         "secret-password",
		"password_confirm": "secret-password",
	})

	err := s.handler.Register(c)
	s.Error(err)
	s.Zero(rec.Body.Len())
}

func (s *AuthHandlerSuite) TestLogin_Success() {
	user := &models.User{
		ID:       uuid.New(),
		Username: "alice",
	}

	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(user, s.tokenResponse(), nil).
		Times(1)

	rec, c := s.postJSON("/api/v1/auth/login", map[string]string{
		"username": "alice",
		"password": "secret-password",
	})

	err := s.handler.Login(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("alice", response.User.Username)
	s.Equal("access-token", response.Tokens.AccessToken)
}

func (s *AuthHandlerSuite) TestLogin_InvalidCredentials() {
	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil, services.ErrInvalidCredentials).
		Times(1)

	rec, c := s.postJSON("/api/v1/auth/login", map[string]string{
		"username": "alice",
		"password": "wrong-password",
	})

	err := s.handler.Login(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthHandlerSuite) TestRefreshToken_Success() {
	s.authService.EXPECT().
		RefreshTokens("old-refresh-token", gomock.Any(), gomock.Any()).
		Return(s.tokenResponse(), nil).
		Times(1)

	rec, c := s.postJSON("/api/v1/auth/refresh", map[string]string{
		"refresh_token": "old-refresh-token",
	})

	err := s.handler.RefreshToken(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "access-token")
}

func (s *AuthHandlerSuite) TestRefreshToken_Invalid() {
	s.authService.EXPECT().
		RefreshTokens("bad-token", gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidRefreshToken).
		Times(1)

	rec, c := s.postJSON("/api/v1/auth/refresh", map[string]string{
		"refresh_token": "bad-token",
	})

	err := s.handler.RefreshToken(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthHandlerSuite) TestLogout_Success() {
	s.authService.EXPECT().
		Logout("the-access-token", gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer the-access-token")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := s.handler.Logout(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Logout successful")
}

func (s *AuthHandlerSuite) TestLogout_ForgedToken() {
	s.authService.EXPECT().
		Logout("forged-token", gomock.Any(), gomock.Any()).
		Return(services.ErrInvalidAccessToken).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer forged-token")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := s.handler.Logout(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.NotContains(rec.Body.String(), "Logout successful")
}

func (s *AuthHandlerSuite) TestLogout_MissingHeader() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := s.handler.Logout(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
