package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/campusauth/auth-api/internal/core/domain"
)

// RequireRole gates a route to the given roles. Must run after Auth.
// An insufficient role returns the same 401 envelope as a failed
// authentication; the API does not distinguish the two.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrUnauthorized
			}
			return next(c)
		}
	}
}
