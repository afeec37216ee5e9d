package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/folioverse-backend/errs"
	"github.com/rpupo63/folioverse-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// LoadProjects returns every project with its tags, both in display order
func (r *ProjectRepo) LoadProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC").Order("id ASC")
		}).
		Order("position ASC").
		Order("id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return withTagSlices(projects), nil
}

// Seed inserts projects, overwriting rows that share an id. Positions are
// taken from the order of projects.
func (r *ProjectRepo) Seed(ctx context.Context, projects []models.Project) error {
	rows := SeedRows(projects)
	if len(rows) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			tags := rows[i].Tags
			rows[i].Tags = nil

			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows[i]).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id = ?", rows[i].ID).Delete(&models.Tag{}).Error; err != nil {
				return err
			}
			if len(tags) > 0 {
				if err := tx.Create(&tags).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return errs.NewDatabaseError("seed", "projects", err)
	}
	return nil
}

// withTagSlices gives untagged projects an empty tag list so they encode as
// [] like the fixtures do
func withTagSlices(projects []models.Project) []models.Project {
	for i := range projects {
		if projects[i].Tags == nil {
			projects[i].Tags = []models.Tag{}
		}
	}
	return projects
}

// SeedRows prepares projects for insertion: positions follow slice order and
// every tag points at its project.
func SeedRows(projects []models.Project) []models.Project {
	rows := make([]models.Project, len(projects))
	for i, p := range projects {
		row := p.Clone()
		row.Position = i
		for j := range row.Tags {
			row.Tags[j].ProjectID = row.ID
			row.Tags[j].Position = j
		}
		rows[i] = row
	}
	return rows
}
