package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cinemateca/catalog-api/internal/core/token"
)

// Context keys populated by Auth for downstream handlers and RBAC.
const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// Auth validates the bearer token and injects its claims into context.
type Verifier interface {
	Parse(tokenString string) (*token.Claims, error)
}

func Auth(verifier Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Parse(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextUsername, claims.Name)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}
