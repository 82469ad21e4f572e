package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/campusauth/auth-api/internal/api/middleware"
	"github.com/campusauth/auth-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. An
// empty user id means the middleware did not run (or a token without an id
// slipped through); reject rather than trust the request.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", "", domain.ErrInvalidToken
	}
	role, _ = c.Get(middleware.CtxRole).(string)
	return userID, role, nil
}
