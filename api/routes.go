package api

import (
	"github.com/go-chi/chi/v5"
)

// setupFrontendRoutes sets up the public routes consumed by the site
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.getHealth())

		// Project catalog endpoints
		r.Get("/projects", handlers.projectHandler.getProjects())
		r.Get("/projects/categories", handlers.projectHandler.getCategories())
		r.Get("/projects/slugs", handlers.projectHandler.getSlugs())
		r.Get("/project/{slug}", handlers.projectHandler.getProject())

		// Contact form
		r.Post("/contact", handlers.contactHandler.postContact())
	})
}
