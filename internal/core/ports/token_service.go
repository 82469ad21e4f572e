package ports

// TokenClaims is the identity a verified token resolves to.
type TokenClaims struct {
	UserID string
	Role   string
}

// TokenService signs and verifies bearer tokens carrying {id, role}.
type TokenService interface {
	Issue(userID, role string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
