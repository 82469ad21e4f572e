package ports

import (
	"context"

	"github.com/campusauth/auth-api/internal/core/domain"
)

// UserCache caches public user projections. Implementations are best-effort:
// a cache failure must degrade to a miss, never to a request failure.
type UserCache interface {
	GetList(ctx context.Context) ([]domain.UserOutput, bool)
	SetList(ctx context.Context, users []domain.UserOutput)
	GetUser(ctx context.Context, id string) (*domain.UserOutput, bool)
	SetUser(ctx context.Context, user domain.UserOutput)
	// Invalidate drops both the list entry and the per-user entry for id.
	Invalidate(ctx context.Context, id string)
}
