package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"financehub/internal/config"
	"financehub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokenService = s.newTokenService(time.Hour)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) newTokenService(duration time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "financehub-test",
		AccessTokenDuration: duration,
	})
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	middleware := RequireAuth(s.tokenService)

	userID := uuid.New()
	token, _, err := s.tokenService.GenerateAccessToken(userID, "test@example.com")
	s.Require().NoError(err)

	handler := middleware(func(c echo.Context) error {
		s.Equal(userID, c.Get("user_id"))
		s.Equal("test@example.com", c.Get("user_email"))
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingAuthorizationHeader() {
	middleware := RequireAuth(s.tokenService)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	// The middleware answers through SendError and returns nil.
	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_InvalidTokenFormat() {
	middleware := RequireAuth(s.tokenService)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "InvalidToken")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedJWT() {
	middleware := RequireAuth(s.tokenService)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid.jwt.token")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	expiredService := s.newTokenService(-time.Hour)
	middleware := RequireAuth(expiredService)

	token, _, err := expiredService.GenerateAccessToken(uuid.New(), "test@example.com")
	s.Require().NoError(err)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenSignedWithDifferentKey() {
	otherService := s.newTokenService(time.Hour)
	token, _, err := otherService.GenerateAccessToken(uuid.New(), "test@example.com")
	s.Require().NoError(err)

	middleware := RequireAuth(s.tokenService)
	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(handler(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
