package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/rpupo63/folioverse-backend/catalog"
	"github.com/rpupo63/folioverse-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	contactHandler contactHandler
	healthHandler  healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// ProjectCollection is a filtered project listing with the data the
// listing page needs around it
type ProjectCollection struct {
	Projects   []models.Project `json:"projects"`
	Categories []string         `json:"categories"`
	Stats      catalog.Stats    `json:"stats"`
	Query      string           `json:"query"`
	Category   string           `json:"category"`
	ViewMode   catalog.ViewMode `json:"viewMode"`
}

// ProjectDetail is a single project with others from its category
type ProjectDetail struct {
	Project models.Project   `json:"project"`
	Related []models.Project `json:"related"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type SlugsResponse struct {
	Slugs []string `json:"slugs"`
}

// ContactRequest is the body of a contact form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactResponse struct {
	ID          uuid.UUID `json:"id"`
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type HealthResponse struct {
	Status      string    `json:"status"`
	StartupTime time.Time `json:"startupTime"`
	Uptime      string    `json:"uptime"`
	Projects    int       `json:"projects"`
}
