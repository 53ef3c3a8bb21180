package store

import (
	"context"

	"github.com/taskwell/taskwell-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user and fills in the store-assigned ID and
	// creation timestamp. Returns ErrEmailExists if the email is taken.
	Create(ctx context.Context, user *domain.User) error

	// CreateIfEmpty inserts the user only if the users table is empty, as
	// a single atomic statement. Returns true if the row was inserted.
	// This is the first-run bootstrap primitive: two processes racing an
	// empty table cannot both seed.
	CreateIfEmpty(ctx context.Context, user *domain.User) (bool, error)

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users ordered by creation time, oldest first.
	List(ctx context.Context) ([]*domain.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// UpdatePassword replaces the user's password hash.
	// Returns ErrUserNotFound if the user does not exist.
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error

	// Delete removes a user by ID. Tasks referencing the user keep their
	// (now dangling) weak references.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error
}
