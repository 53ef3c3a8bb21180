package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskwell/taskwell-api/internal/config"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/mocks"
	"github.com/taskwell/taskwell-api/internal/service"
	"github.com/taskwell/taskwell-api/internal/service/auth"
)

const testJWTSecret = "test-secret-key-that-is-long-enough-123"

// newTestApplication wires the router against in-memory stores and a real
// JWT service, so requests cross the same middleware chain as production.
func newTestApplication(t *testing.T, users *mocks.MockUserStore) *application {
	t.Helper()

	jwtService := auth.NewTestJWTService(testJWTSecret, time.Hour, time.Now)
	hasher := &mocks.MockPasswordHasher{}

	return &application{
		config:      &config.Config{Server: config.ServerConfig{Port: 0, LogLevel: "error"}},
		logger:      slog.Default(),
		jwtService:  jwtService,
		userService: service.NewUserService(users, hasher, hasher, jwtService),
		taskService: service.NewTaskService(mocks.NewMockTaskStore(), &mocks.MockEstimator{}),
	}
}

func seedAccount(t *testing.T, users *mocks.MockUserStore, email, password string, role domain.Role) *domain.User {
	t.Helper()
	user, err := domain.NewUser(email, "hashed:"+password, "Test User", role)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

// login performs a real login request against the router and returns the
// issued token.
func login(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRouterAuthFlow(t *testing.T) {
	users := mocks.NewMockUserStore()
	seedAccount(t, users, "admin@example.com", "admin-password", domain.RoleAdmin)
	seedAccount(t, users, "member@example.com", "member-password", domain.RoleMember)
	router := newTestApplication(t, users).setupRouter()

	t.Run("health check is public", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("task routes require a token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("member can create tasks with a real token", func(t *testing.T) {
		token := login(t, router, "member@example.com", "member-password")

		body := bytes.NewReader([]byte(`{"title":"File expenses"}`))
		req := httptest.NewRequest(http.MethodPost, "/api/tasks", body)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var created domain.Task
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, int64(2), created.CreatedBy, "creator identity comes from the token")
	})

	t.Run("member cannot create users", func(t *testing.T) {
		token := login(t, router, "member@example.com", "member-password")

		body := bytes.NewReader([]byte(`{"email":"new@example.com","password":"some-password","name":"New"}`))
		req := httptest.NewRequest(http.MethodPost, "/api/users", body)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin can create users", func(t *testing.T) {
		token := login(t, router, "admin@example.com", "admin-password")

		body := bytes.NewReader([]byte(`{"email":"new@example.com","password":"some-password","name":"New"}`))
		req := httptest.NewRequest(http.MethodPost, "/api/users", body)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		token := login(t, router, "member@example.com", "member-password")

		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
