package http

import (
	"net/http"

	"github.com/atinyakov/fakeforge/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// fakeforge API under /api.
//
// Routes:
//
//	GET    /api/models                          → modelHandler.List
//	POST   /api/models                          → modelHandler.Create
//	GET    /api/models/{id}                     → modelHandler.Get
//	DELETE /api/models/{id}                     → modelHandler.Delete
//	GET    /api/models/{id}/properties          → propertyHandler.List
//	GET    /api/models/{id}/properties/count    → propertyHandler.Count
//	POST   /api/models/{id}/properties          → propertyHandler.Add
//	PUT    /api/models/{id}/properties/{prop}   → propertyHandler.Configure
//	DELETE /api/models/{id}/properties/{prop}   → propertyHandler.Remove
//	GET    /api/models/{id}/generate            → generateHandler.Generate
//	GET    /api/providers                       → generateHandler.Providers
//
// Middleware chain (applied in order):
//  1. RequestID
//  2. Recoverer
//  3. AllowContentType("application/json"): rejects non-JSON bodies
//  4. WithRequestLogging(logger)
func NewRouter(
	modelHandler *ModelHandler,
	propertyHandler *PropertyHandler,
	generateHandler *GenerateHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	r.Use(middleware.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/providers", generateHandler.Providers)

		r.Route("/models", func(r chi.Router) {
			r.Get("/", modelHandler.List)
			r.Post("/", modelHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", modelHandler.Get)
				r.Delete("/", modelHandler.Delete)
				r.Get("/generate", generateHandler.Generate)

				r.Get("/properties", propertyHandler.List)
				r.Get("/properties/count", propertyHandler.Count)
				r.Post("/properties", propertyHandler.Add)
				r.Put("/properties/{prop}", propertyHandler.Configure)
				r.Delete("/properties/{prop}", propertyHandler.Remove)
			})
		})
	})

	return r
}
