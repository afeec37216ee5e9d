package database

import (
	"context"
	"sync"

	"gorm.io/gorm/schema"

	"github.com/rpupo63/folioverse-backend/errs"
	"github.com/rpupo63/folioverse-backend/models"
)

// TableReport lists the columns of one table that the Go model does not map
type TableReport struct {
	Table    string
	Exists   bool
	Unmapped []string
}

// reportModels are the models whose tables ColumnReport inspects
var reportModels = []any{&models.Project{}, &models.Tag{}}

// ColumnReport compares each project table with its model. Tables that do not
// exist yet are reported with Exists set to false.
func (d Database) ColumnReport(ctx context.Context) ([]TableReport, error) {
	db := d.db.WithContext(ctx)
	migrator := db.Migrator()

	var reports []TableReport
	for _, model := range reportModels {
		s, err := parseModel(model)
		if err != nil {
			return nil, errs.NewInternalErrorWithCause("parse model schema", err)
		}

		report := TableReport{Table: s.Table}
		if !migrator.HasTable(model) {
			reports = append(reports, report)
			continue
		}
		report.Exists = true

		columnTypes, err := migrator.ColumnTypes(model)
		if err != nil {
			return nil, errs.NewDatabaseError("inspect columns of", s.Table, err)
		}
		dbColumns := make([]string, 0, len(columnTypes))
		for _, ct := range columnTypes {
			dbColumns = append(dbColumns, ct.Name())
		}

		report.Unmapped = findColumnMismatches(dbColumns, s.DBNames)
		reports = append(reports, report)
	}
	return reports, nil
}

var schemaCache sync.Map

func parseModel(model any) (*schema.Schema, error) {
	return schema.Parse(model, &schemaCache, schema.NamingStrategy{})
}

// findColumnMismatches finds columns that exist in the database but not in the model
func findColumnMismatches(dbColumns, modelFields []string) []string {
	modelFieldSet := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		modelFieldSet[field] = true
	}

	var mismatches []string
	for _, col := range dbColumns {
		if !modelFieldSet[col] {
			mismatches = append(mismatches, col)
		}
	}

	return mismatches
}
