package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusauth/auth-api/internal/core/domain"
	"github.com/campusauth/auth-api/internal/core/ports"
)

func newAuthFixture(t *testing.T) (*stubUserRepo, *AuthService, *UserService) {
	t.Helper()
	repo := newStubUserRepo()
	tokens := NewTokenIssuer("secret", time.Hour)
	authSvc := NewAuthService(repo, tokens, zerolog.Nop())
	userSvc := NewUserService(repo, &stubCache{}, zerolog.Nop())
	return repo, authSvc, userSvc
}

func TestAuthService_Login_Success(t *testing.T) {
	_, authSvc, userSvc := newAuthFixture(t)

	created, err := userSvc.Register(context.Background(), ports.RegisterInput{
		Username: "carol", Email: "carol@example.com", Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := authSvc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := NewTokenIssuer("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != created.ID || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	_, authSvc, userSvc := newAuthFixture(t)

	_, _ = userSvc.Register(context.Background(), ports.RegisterInput{
		Username: "dave", Email: "dave@example.com", Password: "goodpass",
	})

	if _, _, err := authSvc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	_, authSvc, _ := newAuthFixture(t)

	// Unknown email must not be distinguishable from a wrong password.
	if _, _, err := authSvc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	_, authSvc, userSvc := newAuthFixture(t)

	_, _ = userSvc.Register(context.Background(), ports.RegisterInput{
		Username: "erin", Email: "erin@example.com", Password: "goodpass",
	})

	// An empty password for an existing account must get the same generic
	// error as a wrong password, with no field-level hint.
	if _, _, err := authSvc.Login(context.Background(), "erin@example.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
	if _, _, err := authSvc.Login(context.Background(), "", "goodpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
}

func TestAuthService_Login_MalformedStoredHash(t *testing.T) {
	repo, authSvc, _ := newAuthFixture(t)

	repo.users["broken"] = &domain.User{
		ID: "broken", Username: "broken", Email: "broken@example.com",
		PasswordHash: "not-a-bcrypt-hash", Role: domain.RoleUser,
	}

	if _, _, err := authSvc.Login(context.Background(), "broken@example.com", "whatever"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for malformed hash, got %v", err)
	}
}
