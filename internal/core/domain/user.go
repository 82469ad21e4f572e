package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an account record as persisted in the store.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserOutput is the public projection of a User. The password hash never
// appears here; the role appears only where the caller asked for it.
type UserOutput struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
}

// Output projects u into its public view. Pass includeRole=true only in
// contexts owned by the authenticated user themselves (login, token check).
func (u *User) Output(includeRole bool) UserOutput {
	out := UserOutput{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
	if includeRole {
		out.Role = u.Role
	}
	return out
}
