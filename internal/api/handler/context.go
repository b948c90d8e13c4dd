package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hireflow/interviewer/internal/api/middleware"
	"github.com/hireflow/interviewer/internal/core/domain"
)

// ctxAdmin extracts the claims injected by the Auth middleware. Their absence
// means the route was mounted without the middleware.
func ctxAdmin(c echo.Context) (*domain.AdminClaims, error) {
	claims, _ := c.Get(middleware.ClaimsKey).(*domain.AdminClaims)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
