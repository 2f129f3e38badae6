// Package router sets up the HTTP routes and middleware chain for the
// widget configuration service.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"newschools/internal/handlers"
	"newschools/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(widgets *handlers.Widgets) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	// Widget configuration API. Authentication is handled by the
	// deployment's edge proxy; this service trusts its callers.
	r.Route("/api", func(r chi.Router) {
		r.Route("/sites/{siteID}/widgets", func(r chi.Router) {
			r.Get("/", widgets.ListForSite)
			r.Post("/", widgets.Create)
		})

		r.Route("/widgets/{widgetID}", func(r chi.Router) {
			r.Get("/", widgets.Get)
			r.Put("/config", widgets.SyncConfig)
			r.Patch("/", widgets.UpdateMeta)
			r.Delete("/", widgets.Delete)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
