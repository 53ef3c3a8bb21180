package auth

import (
	"context"
	"time"

	"github.com/taskwell/taskwell-api/internal/domain"
)

// JWTService defines operations for managing JWT session tokens.
type JWTService interface {
	// GenerateToken creates a signed token carrying the user's identity
	// and role. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID int64, role domain.Role) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Every failure mode (bad signature, malformed token, expiry)
	// yields an error that callers must surface as a single generic
	// unauthorized outcome; validation internals are never leaked.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified payload of a session token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID int64 `json:"uid"`

	// Role is the user's role at issuance time. Tokens stay valid for
	// their full lifetime even if the role is later edited.
	Role domain.Role `json:"role"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
