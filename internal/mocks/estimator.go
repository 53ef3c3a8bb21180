package mocks

import "context"

// MockEstimator is a test double for service.Estimator. A nil Hours mimics
// an unavailable prediction service.
type MockEstimator struct {
	Hours *float64

	// Calls counts PredictSafe invocations.
	Calls int
}

// PredictSafe returns the configured estimate.
func (m *MockEstimator) PredictSafe(ctx context.Context, title string, description *string) *float64 {
	m.Calls++
	if m.Hours == nil {
		return nil
	}
	v := *m.Hours
	return &v
}
