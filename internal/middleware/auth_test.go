package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budget-backend/internal/config"
	"budget-backend/internal/models"
	"budget-backend/internal/repositories"
	"budget-backend/internal/repositories/repository_mocks"
	"budget-backend/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl                     *gomock.Controller
	tokenService             services.TokenServiceInterface
	mockBlacklistedTokenRepo *repository_mocks.MockBlacklistedTokenRepositoryInterface
	e                        *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	jwtConfig := &config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "test-issuer",
		AccessTokenDuration:  24 * time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	}

	s.tokenService = services.NewTokenService(jwtConfig)
	s.mockBlacklistedTokenRepo = repository_mocks.NewMockBlacklistedTokenRepositoryInterface(s.ctrl)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) request(authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return rec, s.e.NewContext(req, rec)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	user := &models.User{
		ID:       uuid.New(),
		Username: "alice",
	}

	s.mockBlacklistedTokenRepo.EXPECT().GetByJTI(gomock.Any()).
		Return(nil, repositories.ErrBlacklistedTokenNotFound)

	token, _, err := s.tokenService.GenerateAccessToken(user)
	s.Require().NoError(err)

	handler := middleware(func(c echo.Context) error {
		s.Equal(user.ID, c.Get("user_id"))
		s.Equal(user.Username, c.Get("username"))
		s.NotEmpty(c.Get("token_jti"))
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	rec, c := s.request("Bearer " + token)
	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	handler := middleware(func(c echo.Context) error {
		s.Fail("handler should not be reached")
		return nil
	})

	rec, c := s.request("")
	err := handler(c)
	// SendError writes the response and returns nil
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedHeader() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	handler := middleware(func(c echo.Context) error {
		s.Fail("handler should not be reached")
		return nil
	})

	for _, header := range []string{"not-a-bearer-token", "Basic abc"} {
		rec, c := s.request(header)
		err := handler(c)
		s.NoError(err)
		s.Equal(http.StatusUnauthorized, rec.Code, "header: %q", header)
	}
}

func (s *AuthMiddlewareSuite) TestRequireAuth_GarbageToken() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	handler := middleware(func(c echo.Context) error {
		s.Fail("handler should not be reached")
		return nil
	})

	rec, c := s.request("Bearer not.a.jwt")
	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	// same issuer so only the expiry fails validation
	expiredService := services.NewTokenService(&config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "test-issuer",
		AccessTokenDuration:  -time.Hour,
		RefreshTokenDuration: -time.Hour,
	})

	verifyingService := services.NewTokenService(&config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "test-issuer",
		AccessTokenDuration:  24 * time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	})

	token, _, err := expiredService.GenerateAccessToken(&models.User{ID: uuid.New(), Username: "alice"})
	s.Require().NoError(err)

	middleware := RequireAuth(verifyingService, s.mockBlacklistedTokenRepo)
	handler := middleware(func(c echo.Context) error {
		s.Fail("handler should not be reached")
		return nil
	})

	rec, c := s.request("Bearer " + token)
	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "expired")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_RevokedToken() {
	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)

	user := &models.User{ID: uuid.New(), Username: "alice"}
	token, _, err := s.tokenService.GenerateAccessToken(user)
	s.Require().NoError(err)

	jti, err := s.tokenService.GetJTI(token)
	s.Require().NoError(err)

	s.mockBlacklistedTokenRepo.EXPECT().GetByJTI(jti).
		Return(&models.BlacklistedToken{JTI: jti}, nil)

	handler := middleware(func(c echo.Context) error {
		s.Fail("handler should not be reached")
		return nil
	})

	rec, c := s.request("Bearer " + token)
	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "revoked")
}

func (s *AuthMiddlewareSuite) TestRequireAuth_WrongSigningKey() {
	otherPrivate, otherPublic, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	otherService := services.NewTokenService(&config.JWTConfig{
		PrivateKey:           otherPrivate,
		PublicKey:            otherPublic,
		Issuer:               "test-issuer",
		AccessTokenDuration:  24 * time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
	})

	token, _, err := otherService.GenerateAccessToken(&models.User{ID: uuid.New(), Username: "alice"})
	s.Require().NoError(err)

	middleware := RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo)
	handler := middleware(func(c echo.Context) error {
		s.Fail("handler should not be reached")
		return nil
	})

	rec, c := s.request("Bearer " + token)
	err = handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
