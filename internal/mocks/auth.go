package mocks

import (
	"context"

	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/service/auth"
)

// MockJWTService is a configurable test double for auth.JWTService.
type MockJWTService struct {
	Token       string
	GenerateErr error
	Claims      *auth.Claims
	ValidateErr error
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken returns the configured token or error.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID int64, role domain.Role) (string, error) {
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	return m.Token, nil
}

// ValidateToken returns the configured claims or error.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Claims, nil
}

// MockPasswordHasher is a trivial reversible "hasher" for tests.
type MockPasswordHasher struct {
	Err error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)
var _ auth.PasswordVerifier = (*MockPasswordHasher)(nil)

// Hash prefixes the password instead of hashing it.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return "hashed:" + password, nil
}

// Verify checks against the prefix scheme used by Hash.
func (m *MockPasswordHasher) Verify(password, hashedPassword string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return hashedPassword == "hashed:"+password, nil
}
