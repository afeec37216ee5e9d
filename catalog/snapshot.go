package catalog

import "github.com/rpupo63/folioverse-backend/models"

// Snapshot is a read-only project collection loaded once at startup.
type Snapshot struct {
	projects   []models.Project
	categories []string
}

// NewSnapshot takes a private copy of projects so later changes by the
// caller cannot leak into the snapshot.
func NewSnapshot(projects []models.Project) *Snapshot {
	owned := make([]models.Project, len(projects))
	for i, p := range projects {
		owned[i] = p.Clone()
	}
	return &Snapshot{
		projects:   owned,
		categories: ListCategories(owned),
	}
}

// Len returns the number of projects in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.projects)
}

// Projects returns the collection. The result must not be modified.
func (s *Snapshot) Projects() []models.Project {
	return s.projects
}

// Categories returns the category menu. The result must not be modified.
func (s *Snapshot) Categories() []string {
	return s.categories
}

// Filter applies FilterProjects to the snapshot.
func (s *Snapshot) Filter(query, category string) []models.Project {
	return FilterProjects(s.projects, query, category)
}

// Lookup applies FindBySlug to the snapshot.
func (s *Snapshot) Lookup(slug string) (models.Project, bool) {
	return FindBySlug(s.projects, slug)
}

// Related applies RelatedProjects to the snapshot.
func (s *Snapshot) Related(project models.Project, limit int) []models.Project {
	return RelatedProjects(s.projects, project, limit)
}

// Slugs applies Slugs to the snapshot.
func (s *Snapshot) Slugs() []string {
	return Slugs(s.projects)
}
