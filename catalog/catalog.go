// Package catalog derives views of the project collection: filtered
// listings, the category menu, slug lookup and related projects.
//
// Every function here is pure. Inputs are never modified and the same
// inputs always produce the same outputs, so a single collection can be
// shared by any number of concurrent callers.
package catalog

import (
	"strings"

	"github.com/rpupo63/folioverse-backend/models"
)

// AllCategories is the category selector that matches every project.
const AllCategories = "all"

// ListCategories returns AllCategories followed by each distinct non-empty
// category in the order it first appears in projects.
func ListCategories(projects []models.Project) []string {
	categories := []string{AllCategories}
	seen := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

// FilterProjects returns the projects matching both query and category, in
// their original order.
//
// A project matches query when query is empty or appears, ignoring case, in
// its title or description. It matches category when category is
// AllCategories or equals the project's category exactly.
func FilterProjects(projects []models.Project, query, category string) []models.Project {
	needle := strings.ToLower(query)
	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if matchesQuery(p, needle) && matchesCategory(p, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// needle must already be lower-cased
func matchesQuery(p models.Project, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

func matchesCategory(p models.Project, category string) bool {
	return category == AllCategories || category == p.Category
}

// FindBySlug returns the first project whose slug equals slug exactly. The
// boolean is false when no project matches.
func FindBySlug(projects []models.Project, slug string) (models.Project, bool) {
	for _, p := range projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Project{}, false
}

// RelatedProjects returns up to limit other projects sharing project's
// category, in collection order. A project without a category has no
// related projects.
func RelatedProjects(projects []models.Project, project models.Project, limit int) []models.Project {
	related := make([]models.Project, 0, limit)
	if project.Category == "" || limit <= 0 {
		return related
	}
	for _, p := range projects {
		if len(related) == limit {
			break
		}
		if p.ID != project.ID && p.Category == project.Category {
			related = append(related, p)
		}
	}
	return related
}

// Slugs returns the slug of every project in collection order.
func Slugs(projects []models.Project) []string {
	slugs := make([]string, 0, len(projects))
	for _, p := range projects {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}
