package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskwell/taskwell-api/internal/api"
	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/mocks"
	"github.com/taskwell/taskwell-api/internal/service"
)

// identity injects a fixed authenticated user, standing in for the JWT
// middleware in handler tests.
func identity(user domain.AuthenticatedUser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.WithAuthUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

// seedUser creates a user directly in the mock store with the reversible
// test hashing scheme.
func seedUser(t *testing.T, users *mocks.MockUserStore, email, password string, role domain.Role) *domain.User {
	t.Helper()
	user, err := domain.NewUser(email, "hashed:"+password, "Test User", role)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func newAuthTestServer(users *mocks.MockUserStore, caller *domain.AuthenticatedUser) http.Handler {
	hasher := &mocks.MockPasswordHasher{}
	svc := service.NewUserService(users, hasher, hasher, &mocks.MockJWTService{Token: "test-token"})
	h := api.NewAuthHandler(svc)

	r := chi.NewRouter()
	r.Post("/api/login", h.Login)
	if caller != nil {
		r.Group(func(r chi.Router) {
			r.Use(identity(*caller))
			r.Post("/api/change-password", h.ChangePassword)
		})
	} else {
		r.Post("/api/change-password", h.ChangePassword)
	}
	return r
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials return token and user", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		seedUser(t, users, "alice@example.com", "correct-horse", domain.RoleMember)
		srv := newAuthTestServer(users, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/login", jsonBody(t, map[string]string{
			"email":    "alice@example.com",
			"password": "correct-horse",
		}))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Token string         `json:"token"`
			User  map[string]any `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "test-token", resp.Token)
		assert.Equal(t, "alice@example.com", resp.User["email"])
		assert.NotContains(t, rec.Body.String(), "hashed:", "password hash must never appear in a response")
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		seedUser(t, users, "alice@example.com", "correct-horse", domain.RoleMember)
		srv := newAuthTestServer(users, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/login", jsonBody(t, map[string]string{
			"email":    "alice@example.com",
			"password": "wrong",
		}))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	})

	t.Run("unknown email is the same 401", func(t *testing.T) {
		t.Parallel()
		srv := newAuthTestServer(mocks.NewMockUserStore(), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/login", jsonBody(t, map[string]string{
			"email":    "nobody@example.com",
			"password": "whatever",
		}))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		t.Parallel()
		srv := newAuthTestServer(mocks.NewMockUserStore(), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		t.Parallel()
		srv := newAuthTestServer(mocks.NewMockUserStore(), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/login", jsonBody(t, map[string]string{
			"email": "alice@example.com",
		}))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("correct current password updates the hash", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		user := seedUser(t, users, "alice@example.com", "old-password", domain.RoleMember)
		srv := newAuthTestServer(users, &domain.AuthenticatedUser{ID: user.ID, Role: user.Role})

		req := httptest.NewRequest(http.MethodPost, "/api/change-password", jsonBody(t, map[string]string{
			"current_password": "old-password",
			"new_password":     "new-password-1",
		}))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		stored, err := users.GetByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "hashed:new-password-1", stored.HashedPassword)
	})

	t.Run("wrong current password is 400, not 401", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		user := seedUser(t, users, "alice@example.com", "old-password", domain.RoleMember)
		srv := newAuthTestServer(users, &domain.AuthenticatedUser{ID: user.ID, Role: user.Role})

		req := httptest.NewRequest(http.MethodPost, "/api/change-password", jsonBody(t, map[string]string{
			"current_password": "not-the-password",
			"new_password":     "new-password-1",
		}))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Current password is incorrect")
	})

	t.Run("short new password fails validation", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		user := seedUser(t, users, "alice@example.com", "old-password", domain.RoleMember)
		srv := newAuthTestServer(users, &domain.AuthenticatedUser{ID: user.ID, Role: user.Role})

		req := httptest.NewRequest(http.MethodPost, "/api/change-password", jsonBody(t, map[string]string{
			"current_password": "old-password",
			"new_password":     "short",
		}))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing identity is 401", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		seedUser(t, users, "alice@example.com", "old-password", domain.RoleMember)
		srv := newAuthTestServer(users, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/change-password", jsonBody(t, map[string]string{
			"current_password": "old-password",
			"new_password":     "new-password-1",
		}))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
