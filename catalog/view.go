package catalog

import (
	"fmt"

	"github.com/rpupo63/folioverse-backend/errs"
	"github.com/rpupo63/folioverse-backend/models"
)

// ViewMode selects the layout the front end uses for a listing. It has no
// effect on which projects are returned.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// ParseViewMode converts a query value to a ViewMode. An empty value means
// ViewGrid.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case "":
		return ViewGrid, nil
	case ViewGrid, ViewList:
		return ViewMode(s), nil
	}
	return "", errs.NewInvalidFieldError("view", fmt.Sprintf("must be %q or %q, got %q", ViewGrid, ViewList, s))
}

// Stats are the counters shown above a project listing.
type Stats struct {
	Total      int `json:"total"`
	Categories int `json:"categories"`
	Showing    int `json:"showing"`
}

// NewStats counts the full collection, its distinct categories and the
// filtered subset.
func NewStats(projects, filtered []models.Project) Stats {
	return Stats{
		Total:      len(projects),
		Categories: len(ListCategories(projects)) - 1,
		Showing:    len(filtered),
	}
}
