package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
	"github.com/taskwell/taskwell-api/internal/service/auth"
	"github.com/taskwell/taskwell-api/internal/store"
)

// UserService implements user management, authentication, and the
// first-run admin bootstrap.
type UserService struct {
	users    store.UserStore
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	jwt      auth.JWTService
}

// NewUserService creates a UserService with the given dependencies.
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	jwt auth.JWTService,
) *UserService {
	return &UserService{
		users:    users,
		hasher:   hasher,
		verifier: verifier,
		jwt:      jwt,
	}
}

// Login verifies the credentials and issues a session token.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	ok, err := s.verifier.Verify(password, user.HashedPassword)
	if err != nil {
		return "", nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// ChangePassword verifies the caller's current password and replaces it.
// A wrong current password returns ErrWrongPassword. Existing tokens stay
// valid for their full lifetime; that is a stated limitation of the token
// model, not an oversight.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	ok, err := s.verifier.Verify(currentPassword, user.HashedPassword)
	if err != nil {
		return fmt.Errorf("failed to verify current password: %w", err)
	}
	if !ok {
		return ErrWrongPassword
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, newHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// CreateUser hashes the password and persists a new user.
// Returns store.ErrEmailExists when the email is already taken.
func (s *UserService) CreateUser(ctx context.Context, email, password, name string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.NewValidationError("role", "must be admin or member", domain.ErrInvalidRole)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(email, hash, name, role)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// ListUsers returns all users, oldest first.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes a user. Tasks referencing the user keep their weak
// references; nothing cascades.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

// EnsureAdmin seeds a single admin account on an empty user table. The
// emptiness check and the insert are one atomic store operation, so
// concurrent first-run startups cannot double-seed. Calling it against a
// populated table is a logged no-op.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin, err := domain.NewUser(email, hash, "Admin", domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("invalid admin account: %w", err)
	}

	inserted, err := s.users.CreateIfEmpty(ctx, admin)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if inserted {
		log.Info("created initial admin user", "email", email, "user_id", admin.ID)
		return nil
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		count = -1
	}
	log.Info("users already exist, skipping admin creation", "user_count", count)

	return nil
}
