package domain

import (
	"time"
)

// Role is the closed set of user roles. Keeping it a distinct type makes
// role checks exhaustive instead of comparing free-form strings.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid reports whether the role is a member of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	}
	return false
}

// User represents a registered user of the task tracking service.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	Name           string    `json:"name"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// AuthenticatedUser is the request-scoped identity reconstructed from a
// verified token's claims. It is never persisted.
type AuthenticatedUser struct {
	ID   int64
	Role Role
}

// IsAdmin reports whether the authenticated caller holds the admin role.
func (u AuthenticatedUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NewUser creates a User with the given fields. The caller is responsible
// for hashing the password; this constructor only validates shape.
func NewUser(email, hashedPassword, name string, role Role) (*User, error) {
	user := &User{
		Email:          email,
		HashedPassword: hashedPassword,
		Name:           name,
		Role:           role,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Email == "" {
		return NewValidationError("email", "cannot be empty", ErrValidation)
	}
	if u.HashedPassword == "" {
		return NewValidationError("password", "hash cannot be empty", ErrValidation)
	}
	if !u.Role.Valid() {
		return NewValidationError("role", "must be admin or member", ErrInvalidRole)
	}
	return nil
}
