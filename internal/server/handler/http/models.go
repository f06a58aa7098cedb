// Package http provides HTTP handlers for models, properties and record
// generation.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/fakeforge/internal/models"
)

// ModelService defines the model operations required by the ModelHandler.
type ModelService interface {
	Create(ctx context.Context, name string) (*models.Model, error)
	Get(ctx context.Context, id string) (*models.Model, error)
	List(ctx context.Context) ([]models.Model, error)
	// Delete removes the model and all of its properties.
	Delete(ctx context.Context, id string) error
}

// ModelHandler handles HTTP requests for models.
type ModelHandler struct {
	ModelService ModelService
}

// CreateModelRequest is the JSON payload for creating a model.
type CreateModelRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/models.
func (h *ModelHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.ModelService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /api/models.
func (h *ModelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	m, err := h.ModelService.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// Get handles GET /api/models/{id}.
func (h *ModelHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.ModelService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Delete handles DELETE /api/models/{id}.
func (h *ModelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ModelService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
