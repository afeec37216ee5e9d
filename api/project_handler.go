package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/folioverse-backend/catalog"
	"github.com/rpupo63/folioverse-backend/errs"
)

// relatedProjectsLimit caps the related projects shown on a detail page
const relatedProjectsLimit = 3

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	snapshot  *catalog.Snapshot
}

func newProjectHandler(snapshot *catalog.Snapshot) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		snapshot:  snapshot,
	}
}

// getProjects returns the projects matching the q and category query
// parameters. A missing or empty category means "all". view is echoed back
// for the front end and does not affect the result.
func (h projectHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		viewMode, err := catalog.ParseViewMode(params.Get("view"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		query := params.Get("q")
		category := params.Get("category")
		if category == "" {
			category = catalog.AllCategories
		}

		projects := h.snapshot.Projects()
		filtered := h.snapshot.Filter(query, category)

		h.responder.WriteJSON(w, ProjectCollection{
			Projects:   filtered,
			Categories: h.snapshot.Categories(),
			Stats:      catalog.NewStats(projects, filtered),
			Query:      query,
			Category:   category,
			ViewMode:   viewMode,
		})
	}
}

func (h projectHandler) getCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, CategoriesResponse{Categories: h.snapshot.Categories()})
	}
}

func (h projectHandler) getSlugs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, SlugsResponse{Slugs: h.snapshot.Slugs()})
	}
}

// getProject returns the project with the given slug and up to three
// others from its category
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("slug"))
			return
		}

		project, ok := h.snapshot.Lookup(slug)
		if !ok {
			h.logger.Debug().Str("slug", slug).Msg("project not found")
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, ProjectDetail{
			Project: project,
			Related: h.snapshot.Related(project, relatedProjectsLimit),
		})
	}
}
