package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campusauth/auth-api/internal/core/domain"
	"github.com/campusauth/auth-api/internal/core/ports"
)

// Context keys under which the resolved identity is stored for handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Auth resolves the bearer token into an identity and injects it into the
// echo context. A missing header, a malformed header, and a token that fails
// verification all produce the same domain.ErrInvalidToken so the response
// never reveals which check failed.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrInvalidToken
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrInvalidToken
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return err
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
