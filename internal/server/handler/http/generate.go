package http

import (
	"context"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/atinyakov/fakeforge/internal/generator"
)

// GenerateService defines the generation operation required by the GenerateHandler.
type GenerateService interface {
	Generate(ctx context.Context, modelID string, count int) (*generator.File, error)
}

// ProviderCatalog lists the registered fake-value operations by group.
type ProviderCatalog interface {
	Groups() map[string][]string
}

// GenerateHandler serves generated record files and the provider catalog.
type GenerateHandler struct {
	GenerateService GenerateService
	Catalog         ProviderCatalog
}

// Generate handles GET /api/models/{id}/generate?count=N. The response is
// an attachment named after the model; a missing count means the default.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	count := generator.DefaultCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid count", http.StatusBadRequest)
			return
		}
		count = n
	}

	file, err := h.GenerateService.Generate(r.Context(), chi.URLParam(r, "id"), count)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": file.Name,
	}))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}

// Providers handles GET /api/providers.
func (h *GenerateHandler) Providers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Groups())
}
