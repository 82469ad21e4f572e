package ports

import (
	"context"

	"github.com/campusauth/auth-api/internal/core/domain"
)

// AuthService verifies credentials and issues tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
