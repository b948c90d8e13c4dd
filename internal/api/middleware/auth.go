package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hireflow/interviewer/internal/core/domain"
)

// ClaimsKey is the echo context key holding the verified *domain.AdminClaims.
const ClaimsKey = "admin_claims"

// TokenVerifier validates a bearer token and returns the admin it was issued to.
type TokenVerifier interface {
	Verify(token string) (*domain.AdminClaims, bool)
}

// Auth validates the bearer token and injects the admin claims into context.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, ok := verifier.Verify(strings.TrimSpace(parts[1]))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}
