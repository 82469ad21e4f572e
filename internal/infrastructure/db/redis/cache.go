package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campusauth/auth-api/internal/api/metrics"
	"github.com/campusauth/auth-api/internal/core/domain"
)

const (
	cacheTTL    = 5 * time.Minute
	listKey     = "users:public"
	userKeyBase = "users:public:"
)

// UserCache caches the public user projections in Redis. All operations are
// best-effort: any Redis or codec failure is logged and treated as a cache
// miss, never surfaced to the request.
type UserCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewUserCache(client *redis.Client, log zerolog.Logger) *UserCache {
	return &UserCache{client: client, log: log}
}

func (c *UserCache) GetList(ctx context.Context) ([]domain.UserOutput, bool) {
	raw, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("user cache: list read failed")
		}
		metrics.CacheChecksTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var users []domain.UserOutput
	if err := json.Unmarshal(raw, &users); err != nil {
		c.log.Warn().Err(err).Msg("user cache: list decode failed")
		metrics.CacheChecksTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.CacheChecksTotal.WithLabelValues("hit").Inc()
	return users, true
}

func (c *UserCache) SetList(ctx context.Context, users []domain.UserOutput) {
	raw, err := json.Marshal(users)
	if err != nil {
		c.log.Warn().Err(err).Msg("user cache: list encode failed")
		return
	}
	if err := c.client.Set(ctx, listKey, raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("user cache: list write failed")
	}
}

func (c *UserCache) GetUser(ctx context.Context, id string) (*domain.UserOutput, bool) {
	raw, err := c.client.Get(ctx, userKeyBase+id).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("user_id", id).Msg("user cache: read failed")
		}
		metrics.CacheChecksTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var user domain.UserOutput
	if err := json.Unmarshal(raw, &user); err != nil {
		c.log.Warn().Err(err).Str("user_id", id).Msg("user cache: decode failed")
		metrics.CacheChecksTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.CacheChecksTotal.WithLabelValues("hit").Inc()
	return &user, true
}

func (c *UserCache) SetUser(ctx context.Context, user domain.UserOutput) {
	raw, err := json.Marshal(user)
	if err != nil {
		c.log.Warn().Err(err).Str("user_id", user.ID).Msg("user cache: encode failed")
		return
	}
	if err := c.client.Set(ctx, userKeyBase+user.ID, raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("user_id", user.ID).Msg("user cache: write failed")
	}
}

// Invalidate drops both the list entry and the per-user entry. Called after
// every mutation so stale projections live at most until the next write.
func (c *UserCache) Invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, listKey, userKeyBase+id).Err(); err != nil {
		c.log.Warn().Err(err).Str("user_id", id).Msg("user cache: invalidate failed")
	}
}
