package ports

import (
	"context"

	"github.com/campusauth/auth-api/internal/core/domain"
)

// UserUpdate carries the fields to change on an existing record. Empty
// strings mean "leave unchanged"; the store never persists empty values.
type UserUpdate struct {
	Username     string
	Email        string
	PasswordHash string
	Role         string
}

// UserRepository defines the persistence contract for user records. The
// store enforces email uniqueness and assigns ids on creation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
