package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/fakeforge/internal/models"
)

// PropertyService defines the property operations required by the PropertyHandler.
type PropertyService interface {
	Add(ctx context.Context, modelID, propName string) (*models.Property, error)
	Configure(ctx context.Context, modelID, propName, group, fn string) error
	Remove(ctx context.Context, modelID, propName string) error
	List(ctx context.Context, modelID string) ([]models.Property, error)
	Count(ctx context.Context, modelID string) (int, error)
}

// CountResponse is the body of GET /api/models/{id}/properties/count.
type CountResponse struct {
	Count int `json:"count"`
}

// PropertyHandler handles HTTP requests for the properties of a model.
type PropertyHandler struct {
	PropertyService PropertyService
}

// AddPropertyRequest is the JSON payload for adding a property.
type AddPropertyRequest struct {
	PropName string `json:"propName"`
}

// ConfigurePropertyRequest binds a property to a provider operation.
type ConfigurePropertyRequest struct {
	GroupName string `json:"groupName"`
	Func      string `json:"func"`
}

// List handles GET /api/models/{id}/properties.
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	props, err := h.PropertyService.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if props == nil {
		props = []models.Property{}
	}
	writeJSON(w, http.StatusOK, props)
}

// Count handles GET /api/models/{id}/properties/count.
func (h *PropertyHandler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.PropertyService.Count(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CountResponse{Count: n})
}

// Add handles POST /api/models/{id}/properties.
func (h *PropertyHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	p, err := h.PropertyService.Add(r.Context(), chi.URLParam(r, "id"), req.PropName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// Configure handles PUT /api/models/{id}/properties/{prop}.
func (h *PropertyHandler) Configure(w http.ResponseWriter, r *http.Request) {
	var req ConfigurePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	modelID, propName := chi.URLParam(r, "id"), chi.URLParam(r, "prop")
	if err := h.PropertyService.Configure(r.Context(), modelID, propName, req.GroupName, req.Func); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.Property{
		ModelID:   modelID,
		PropName:  propName,
		GroupName: req.GroupName,
		Func:      req.Func,
	})
}

// Remove handles DELETE /api/models/{id}/properties/{prop}.
func (h *PropertyHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.PropertyService.Remove(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "prop")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
