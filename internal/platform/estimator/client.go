package estimator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/taskwell/taskwell-api/internal/config"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
)

// Client calls the external duration-prediction service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// predictRequest is the wire format sent to the prediction service.
type predictRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// predictResponse is the wire format returned by the prediction service.
type predictResponse struct {
	PredictedHours *float64 `json:"predicted_hours"`
}

// NewClient creates a Client for the configured prediction service. The
// HTTP client carries the configured timeout so a stalled estimator cannot
// occupy a request handler.
func NewClient(cfg config.EstimatorConfig) *Client {
	return &Client{
		baseURL: cfg.URL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// Predict sends the task title and description to the prediction service
// and returns the predicted duration in hours.
//
// This is the strict variant: failures propagate. It exists for internal
// diagnostics and must not be used on the task creation hot path — use
// PredictSafe there.
func (c *Client) Predict(ctx context.Context, title string, description *string) (float64, error) {
	body, err := json.Marshal(predictRequest{Title: title, Description: description})
	if err != nil {
		return 0, fmt.Errorf("failed to encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("prediction service unavailable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("prediction service returned status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("invalid prediction response: %w", err)
	}
	if out.PredictedHours == nil {
		return 0, fmt.Errorf("prediction response missing predicted_hours")
	}

	return *out.PredictedHours, nil
}

// PredictSafe is the best-effort variant used during task creation. Any
// failure — network error, non-success status, malformed response — is
// logged at warn level and converted to nil. It never returns an error.
//
// A single bounded attempt, no retries: the estimate is additive, not
// load-bearing.
func (c *Client) PredictSafe(ctx context.Context, title string, description *string) *float64 {
	log := logger.FromContext(ctx)

	hours, err := c.Predict(ctx, title, description)
	if err != nil {
		log.Warn("prediction unavailable, creating task without estimate", "error", err)
		return nil
	}

	return &hours
}
