package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/mocks"
	"github.com/taskwell/taskwell-api/internal/service/auth"
)

func okHandler(t *testing.T, wantUser *domain.AuthenticatedUser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantUser != nil {
			user, ok := shared.AuthUser(r.Context())
			assert.True(t, ok)
			assert.Equal(t, *wantUser, user)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	memberClaims := &auth.Claims{UserID: 42, Role: domain.RoleMember}

	tests := []struct {
		name       string
		header     string
		jwtService *mocks.MockJWTService
		wantStatus int
	}{
		{
			name:       "valid bearer token",
			header:     "Bearer good-token",
			jwtService: &mocks.MockJWTService{Claims: memberClaims},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			header:     "",
			jwtService: &mocks.MockJWTService{Claims: memberClaims},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing Bearer prefix",
			header:     "good-token",
			jwtService: &mocks.MockJWTService{Claims: memberClaims},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic good-token",
			jwtService: &mocks.MockJWTService{Claims: memberClaims},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer bad-token",
			jwtService: &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			header:     "Bearer stale-token",
			jwtService: &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mw := NewAuthMiddleware(tt.jwtService)

			var wantUser *domain.AuthenticatedUser
			if tt.wantStatus == http.StatusOK {
				wantUser = &domain.AuthenticatedUser{ID: 42, Role: domain.RoleMember}
			}

			req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			mw.Authenticate(okHandler(t, wantUser)).ServeHTTP(recorder, req)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	mw := NewAuthMiddleware(&mocks.MockJWTService{})

	t.Run("admin passes", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
		ctx := shared.WithAuthUser(req.Context(), domain.AuthenticatedUser{ID: 1, Role: domain.RoleAdmin})
		recorder := httptest.NewRecorder()

		mw.RequireAdmin(okHandler(t, nil)).ServeHTTP(recorder, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("member is forbidden, not unauthorized", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
		ctx := shared.WithAuthUser(req.Context(), domain.AuthenticatedUser{ID: 2, Role: domain.RoleMember})
		recorder := httptest.NewRecorder()

		mw.RequireAdmin(okHandler(t, nil)).ServeHTTP(recorder, req.WithContext(ctx))
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("no identity is unauthorized", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
		recorder := httptest.NewRecorder()

		mw.RequireAdmin(okHandler(t, nil)).ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
