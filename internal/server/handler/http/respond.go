package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atinyakov/fakeforge/internal/faker"
	"github.com/atinyakov/fakeforge/internal/generator"
	"github.com/atinyakov/fakeforge/internal/repository"
	"github.com/atinyakov/fakeforge/internal/service"
)

// warningResponse carries a single-line, user-facing warning.
type warningResponse struct {
	Warning string `json:"warning"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses. Generation validation
// failures become 422 warnings rather than errors.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case generator.IsValidation(err):
		writeJSON(w, http.StatusUnprocessableEntity, warningResponse{Warning: err.Error()})
	case errors.Is(err, faker.ErrUnknownOperation):
		writeJSON(w, http.StatusUnprocessableEntity, warningResponse{Warning: err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrDuplicateProperty):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrEmptyName):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
