package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusauth/auth-api/internal/api/metrics"
	"github.com/campusauth/auth-api/internal/core/domain"
	"github.com/campusauth/auth-api/internal/core/ports"
)

// UserService implements the user lifecycle: registration, public reads
// (through the cache), self-service updates, and admin mutations.
type UserService struct {
	repo   ports.UserRepository
	cache  ports.UserCache
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache ports.UserCache, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, logger: logger}
}

// Register hashes the password and creates the record. New accounts always
// get the plain user role; only an admin update can change it afterwards.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.cache.Invalidate(ctx, created.ID)
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Get returns the full record for id. Used where the caller is entitled to
// the role field (token check); public reads go through GetPublic instead.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// ListPublic returns every user projected without password and role,
// read-through the cache.
func (s *UserService) ListPublic(ctx context.Context) ([]domain.UserOutput, error) {
	if cached, ok := s.cache.GetList(ctx); ok {
		return cached, nil
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	outputs := make([]domain.UserOutput, 0, len(users))
	for i := range users {
		outputs = append(outputs, users[i].Output(false))
	}

	s.cache.SetList(ctx, outputs)
	return outputs, nil
}

// GetPublic returns a single user in the public projection, read-through the
// cache.
func (s *UserService) GetPublic(ctx context.Context, id string) (*domain.UserOutput, error) {
	if cached, ok := s.cache.GetUser(ctx, id); ok {
		return cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	out := user.Output(false)
	s.cache.SetUser(ctx, out)
	return &out, nil
}

// UpdateSelf applies the caller's own changes. The id comes from the
// verified token, never from the body, and the role cannot change here.
func (s *UserService) UpdateSelf(ctx context.Context, id string, input ports.UpdateInput) (*domain.User, error) {
	update, err := buildUpdate(input)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	metrics.UserMutationsTotal.WithLabelValues("self_update").Inc()
	s.cache.Invalidate(ctx, id)
	return updated, nil
}

// UpdateAsAdmin applies changes to an arbitrary record, including the role.
// The handler layer has already checked the caller is an admin and validated
// the role value.
func (s *UserService) UpdateAsAdmin(ctx context.Context, input ports.AdminUpdateInput) (*domain.User, error) {
	update, err := buildUpdate(input.UpdateInput)
	if err != nil {
		return nil, err
	}
	update.Role = input.Role

	updated, err := s.repo.Update(ctx, input.ID, update)
	if err != nil {
		return nil, err
	}

	metrics.UserMutationsTotal.WithLabelValues("admin_update").Inc()
	s.cache.Invalidate(ctx, input.ID)
	return updated, nil
}

// Delete removes the record and returns it for the response envelope.
func (s *UserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.UserMutationsTotal.WithLabelValues("delete").Inc()
	s.cache.Invalidate(ctx, id)
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return deleted, nil
}

// buildUpdate maps an UpdateInput to a store-level update, hashing the
// password when one was supplied.
func buildUpdate(input ports.UpdateInput) (ports.UserUpdate, error) {
	update := ports.UserUpdate{
		Username: input.Username,
		Email:    input.Email,
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return ports.UserUpdate{}, err
		}
		update.PasswordHash = string(hash)
	}
	return update, nil
}
