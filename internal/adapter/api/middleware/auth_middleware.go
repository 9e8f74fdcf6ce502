package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"huhu/internal/domain/entity"
)

// Context keys set for authenticated requests.
const (
	ContextUID   = "uid"
	ContextEmail = "email"
	ContextUser  = "user"
)

// TokenVerifier turns an ID token into the caller it identifies.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (*entity.AuthUser, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate rejects requests without a valid ID token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		idToken, err := tokenFromRequest(c)
		if err != nil {
			return err
		}
		if idToken == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		user, err := m.verifier.VerifyToken(c.Request().Context(), idToken)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		setUser(c, user)
		return next(c)
	}
}

// Optional identifies the caller when a valid token is present and lets
// anonymous requests through.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		idToken, err := tokenFromRequest(c)
		if err != nil || idToken == "" {
			return next(c)
		}

		if user, err := m.verifier.VerifyToken(c.Request().Context(), idToken); err == nil {
			setUser(c, user)
		}
		return next(c)
	}
}

// tokenFromRequest reads a Bearer header, or the token query parameter that
// browsers use for WebSocket upgrades.
func tokenFromRequest(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return strings.TrimSpace(c.QueryParam("token")), nil
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}
	return parts[1], nil
}

func setUser(c echo.Context, user *entity.AuthUser) {
	c.Set(ContextUID, user.UID)
	c.Set(ContextEmail, user.Email)
	c.Set(ContextUser, *user)
}

// CurrentUser returns the caller set by the auth middleware, or the zero user.
func CurrentUser(c echo.Context) entity.AuthUser {
	user, _ := c.Get(ContextUser).(entity.AuthUser)
	return user
}
