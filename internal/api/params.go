package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taskwell/taskwell-api/internal/domain"
)

// idParam extracts the "id" URL parameter as an int64. A missing or
// non-numeric value wraps domain.ErrInvalidID so the central error mapper
// turns it into a 400.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}
	return id, nil
}
