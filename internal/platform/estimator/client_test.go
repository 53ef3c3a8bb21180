package estimator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskwell/taskwell-api/internal/config"
)

func newTestClient(url string) *Client {
	return NewClient(config.EstimatorConfig{URL: url, TimeoutSeconds: 1})
}

func TestPredict(t *testing.T) {
	t.Parallel()

	t.Run("returns predicted hours", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/predict", r.URL.Path)

			var req struct {
				Title       string  `json:"title"`
				Description *string `json:"description"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Write release notes", req.Title)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"predicted_hours": 2.5}`))
		}))
		defer server.Close()

		hours, err := newTestClient(server.URL).Predict(context.Background(), "Write release notes", nil)
		require.NoError(t, err)
		assert.Equal(t, 2.5, hours)
	})

	t.Run("propagates non-success status", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Predict(context.Background(), "title", nil)
		assert.Error(t, err)
	})

	t.Run("propagates missing field", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"something_else": 1}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Predict(context.Background(), "title", nil)
		assert.Error(t, err)
	})
}

func TestPredictSafe(t *testing.T) {
	t.Parallel()

	t.Run("returns estimate on success", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"predicted_hours": 4}`))
		}))
		defer server.Close()

		hours := newTestClient(server.URL).PredictSafe(context.Background(), "title", nil)
		require.NotNil(t, hours)
		assert.Equal(t, 4.0, *hours)
	})

	t.Run("nil on server error", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		assert.Nil(t, newTestClient(server.URL).PredictSafe(context.Background(), "title", nil))
	})

	t.Run("nil on malformed response", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		assert.Nil(t, newTestClient(server.URL).PredictSafe(context.Background(), "title", nil))
	})

	t.Run("nil on timeout", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		start := time.Now()
		result := newTestClient(server.URL).PredictSafe(context.Background(), "title", nil)
		assert.Nil(t, result)
		// The 1s client timeout must bound the call.
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("nil on unreachable service", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, newTestClient("http://127.0.0.1:1").PredictSafe(context.Background(), "title", nil))
	})
}
