package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campusauth/auth-api/internal/core/domain"
	"github.com/campusauth/auth-api/internal/core/ports"
)

// TokenIssuer signs and verifies HS256 JWTs carrying {id, role}. The secret
// is process-wide configuration, loaded once at startup and read-only after.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issue produces a signed token for the given identity.
func (t *TokenIssuer) Issue(userID, role string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses and validates a token. Every failure mode (bad signature,
// malformed payload, expired, wrong algorithm) collapses into
// domain.ErrInvalidToken so callers cannot tell which check failed.
func (t *TokenIssuer) Verify(token string) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid || claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{UserID: claims.UserID, Role: claims.Role}, nil
}
