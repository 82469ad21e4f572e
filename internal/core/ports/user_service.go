package ports

import (
	"context"

	"github.com/campusauth/auth-api/internal/core/domain"
)

// RegisterInput carries a validated registration request. Role is not part
// of the input: new accounts always start as plain users.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UpdateInput carries the self-service updatable fields. Empty strings mean
// "leave unchanged". Role is deliberately absent from this path.
type UpdateInput struct {
	Username string
	Email    string
	Password string
}

// AdminUpdateInput extends UpdateInput with the target id and an optional
// role change, available to admins only.
type AdminUpdateInput struct {
	ID string
	UpdateInput
	Role string
}

// UserService implements user lifecycle operations.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	ListPublic(ctx context.Context) ([]domain.UserOutput, error)
	GetPublic(ctx context.Context, id string) (*domain.UserOutput, error)
	UpdateSelf(ctx context.Context, id string, input UpdateInput) (*domain.User, error)
	UpdateAsAdmin(ctx context.Context, input AdminUpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
