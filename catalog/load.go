package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpupo63/folioverse-backend/models"
)

// ErrDuplicateKey is returned by Validate when two projects share an id or
// a slug.
var ErrDuplicateKey = errors.New("duplicate project key")

// Source supplies the project collection, in display order.
type Source interface {
	LoadProjects(ctx context.Context) ([]models.Project, error)
}

// Load reads the collection from src once and freezes it into a Snapshot.
func Load(ctx context.Context, src Source) (*Snapshot, error) {
	projects, err := src.LoadProjects(ctx)
	if err != nil {
		return nil, err
	}
	if err := Validate(projects); err != nil {
		return nil, err
	}
	return NewSnapshot(projects), nil
}

// Validate checks that ids and slugs are unique across projects.
func Validate(projects []models.Project) error {
	ids := make(map[string]struct{}, len(projects))
	slugs := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		if _, ok := ids[p.ID]; ok {
			return fmt.Errorf("%w: id %q", ErrDuplicateKey, p.ID)
		}
		ids[p.ID] = struct{}{}
		if _, ok := slugs[p.Slug]; ok {
			return fmt.Errorf("%w: slug %q", ErrDuplicateKey, p.Slug)
		}
		slugs[p.Slug] = struct{}{}
	}
	return nil
}
