package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusauth/auth-api/internal/core/domain"
	"github.com/campusauth/auth-api/internal/core/ports"
)

// stubUserRepo is an in-memory UserRepository enforcing email uniqueness,
// shared by the service tests in this package.
type stubUserRepo struct {
	users   map[string]*domain.User
	nextID  int
	updates []ports.UserUpdate
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	created := cloneUser(user)
	created.ID = "id-" + strconv.Itoa(r.nextID)
	r.nextID++
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	r.updates = append(r.updates, update)
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Username != "" {
		u.Username = update.Username
	}
	if update.Email != "" {
		u.Email = update.Email
	}
	if update.PasswordHash != "" {
		u.PasswordHash = update.PasswordHash
	}
	if update.Role != "" {
		u.Role = update.Role
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.users, id)
	return u, nil
}

// stubCache records invalidations and can be preloaded with a list entry.
type stubCache struct {
	list        []domain.UserOutput
	hasList     bool
	invalidated []string
	setList     int
}

func (c *stubCache) GetList(_ context.Context) ([]domain.UserOutput, bool) {
	return c.list, c.hasList
}

func (c *stubCache) SetList(_ context.Context, users []domain.UserOutput) {
	c.list = users
	c.hasList = true
	c.setList++
}

func (c *stubCache) GetUser(_ context.Context, _ string) (*domain.UserOutput, bool) {
	return nil, false
}

func (c *stubCache) SetUser(_ context.Context, _ domain.UserOutput) {}

func (c *stubCache) Invalidate(_ context.Context, id string) {
	c.invalidated = append(c.invalidated, id)
	c.hasList = false
}

func newUserService(repo ports.UserRepository, cache ports.UserCache) *UserService {
	return NewUserService(repo, cache, zerolog.Nop())
}

func TestUserService_Register_HashesPasswordAndDefaultsRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, &stubCache{})

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice01",
		Email:    "a@x.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "secret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, &stubCache{})

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "alice01", Email: "a@x.com", Password: "secret"}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "other", Email: "a@x.com", Password: "pw"}); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.users))
	}
}

func TestUserService_ListPublic_OmitsSensitiveFields(t *testing.T) {
	repo := newStubUserRepo()
	cache := &stubCache{}
	svc := newUserService(repo, cache)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "alice01", Email: "a@x.com", Password: "secret"})

	outputs, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("ListPublic returned error: %v", err)
	}
	if len(outputs) != 1 {
		t.Fatalf("expected 1 user, got %d", len(outputs))
	}
	if outputs[0].Role != "" {
		t.Fatalf("public projection must omit role, got %q", outputs[0].Role)
	}
	if cache.setList != 1 {
		t.Fatalf("expected list to be cached once, got %d", cache.setList)
	}
}

func TestUserService_ListPublic_ServesFromCache(t *testing.T) {
	repo := newStubUserRepo()
	cache := &stubCache{
		list:    []domain.UserOutput{{ID: "cached", Username: "cached", Email: "c@x.com"}},
		hasList: true,
	}
	svc := newUserService(repo, cache)

	outputs, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("ListPublic returned error: %v", err)
	}
	if len(outputs) != 1 || outputs[0].ID != "cached" {
		t.Fatalf("expected cached list, got %+v", outputs)
	}
}

func TestUserService_UpdateSelf_NeverChangesRole(t *testing.T) {
	repo := newStubUserRepo()
	cache := &stubCache{}
	svc := newUserService(repo, cache)

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Username: "alice01", Email: "a@x.com", Password: "secret"})

	updated, err := svc.UpdateSelf(context.Background(), created.ID, ports.UpdateInput{Username: "alice02"})
	if err != nil {
		t.Fatalf("UpdateSelf returned error: %v", err)
	}
	if updated.Username != "alice02" {
		t.Fatalf("unexpected username: %s", updated.Username)
	}
	if updated.Role != domain.RoleUser {
		t.Fatalf("self-update changed role to %q", updated.Role)
	}
	for _, u := range repo.updates {
		if u.Role != "" {
			t.Fatalf("self-update must never carry a role, got %q", u.Role)
		}
	}
	if len(cache.invalidated) == 0 {
		t.Fatalf("expected cache invalidation on update")
	}
}

func TestUserService_UpdateSelf_EmptyInputIsNoOp(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, &stubCache{})

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Username: "alice01", Email: "a@x.com", Password: "secret"})

	updated, err := svc.UpdateSelf(context.Background(), created.ID, ports.UpdateInput{})
	if err != nil {
		t.Fatalf("UpdateSelf with empty input returned error: %v", err)
	}
	if updated.Username != "alice01" || updated.Email != "a@x.com" {
		t.Fatalf("empty update changed the record: %+v", updated)
	}
	if updated.PasswordHash != created.PasswordHash {
		t.Fatalf("empty update changed the password hash")
	}
	if len(repo.updates) != 1 || repo.updates[0] != (ports.UserUpdate{}) {
		t.Fatalf("expected one empty store update, got %+v", repo.updates)
	}
}

func TestUserService_UpdateSelf_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, &stubCache{})

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Username: "alice01", Email: "a@x.com", Password: "secret"})

	updated, err := svc.UpdateSelf(context.Background(), created.ID, ports.UpdateInput{Password: "newpass"})
	if err != nil {
		t.Fatalf("UpdateSelf returned error: %v", err)
	}
	if updated.PasswordHash == "newpass" {
		t.Fatalf("expected new password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("new hash does not match new password: %v", err)
	}
}

func TestUserService_UpdateAsAdmin_ChangesRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, &stubCache{})

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Username: "alice01", Email: "a@x.com", Password: "secret"})

	updated, err := svc.UpdateAsAdmin(context.Background(), ports.AdminUpdateInput{ID: created.ID, Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("UpdateAsAdmin returned error: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("expected role %q, got %q", domain.RoleAdmin, updated.Role)
	}
}

func TestUserService_UpdateAsAdmin_MissingTarget(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, &stubCache{})

	if _, err := svc.UpdateAsAdmin(context.Background(), ports.AdminUpdateInput{ID: "ghost"}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete_Twice(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, &stubCache{})

	created, _ := svc.Register(context.Background(), ports.RegisterInput{Username: "alice01", Email: "a@x.com", Password: "secret"})
	_, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Email: "b@x.com", Password: "pw"})

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("unexpected deleted id: %s", deleted.ID)
	}

	if _, err := svc.Delete(context.Background(), created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected store count to decrease by exactly one, got %d records", len(repo.users))
	}
}
