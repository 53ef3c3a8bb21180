package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskwell/taskwell-api/internal/domain"
)

// ContextKey is a private key type for context values.
type ContextKey string

const (
	// AuthUserContextKey is the context key for the authenticated caller.
	AuthUserContextKey ContextKey = "authUser"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"
)

// WithAuthUser returns a context carrying the authenticated caller's
// identity, as placed there by the authentication middleware.
func WithAuthUser(ctx context.Context, user domain.AuthenticatedUser) context.Context {
	return context.WithValue(ctx, AuthUserContextKey, user)
}

// AuthUser retrieves the authenticated caller from the context.
func AuthUser(ctx context.Context) (domain.AuthenticatedUser, bool) {
	user, ok := ctx.Value(AuthUserContextKey).(domain.AuthenticatedUser)
	if !ok || user.ID == 0 {
		return domain.AuthenticatedUser{}, false
	}
	return user, true
}

// SetTraceID adds a fresh trace ID to the context. Used to correlate logs
// with error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context, or "" if absent.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
