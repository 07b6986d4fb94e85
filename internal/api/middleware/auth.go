package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/prana-g/livestock-api/internal/core/domain"
	"github.com/prana-g/livestock-api/internal/core/service"
)

// VerifyAuth validates the bearer token and injects the caller's identity
// into context. The three failure modes stay distinguishable for clients:
// missing header, token that cannot be verified, and token that verified but
// has expired.
func VerifyAuth(tokenSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			token := authHeader
			if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = parts[1]
			}

			claims, err := service.ParseToken(tokenSecret, token)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set("userId", claims.UserID)
			c.Set("phone", claims.Phone)

			return next(c)
		}
	}
}
