package database

import (
	"context"
	"os"
	"reflect"
	"slices"
	"testing"

	"github.com/rpupo63/folioverse-backend/models"
)

func TestFindColumnMismatches(t *testing.T) {
	tests := []struct {
		name      string
		dbColumns []string
		fields    []string
		want      []string
	}{
		{name: "all mapped", dbColumns: []string{"id", "name"}, fields: []string{"id", "name", "extra"}},
		{name: "legacy column", dbColumns: []string{"id", "tag_name", "name"}, fields: []string{"id", "name"}, want: []string{"tag_name"}},
		{name: "no model fields", dbColumns: []string{"a", "b"}, want: []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findColumnMismatches(tt.dbColumns, tt.fields)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("findColumnMismatches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseModelColumns(t *testing.T) {
	tests := []struct {
		model any
		table string
		want  []string
	}{
		{&models.Project{}, "projects", []string{"id", "position", "slug", "live_url", "github_url", "year"}},
		{&models.Tag{}, "project_tags", []string{"id", "project_id", "position", "name"}},
	}
	for _, tt := range tests {
		s, err := parseModel(tt.model)
		if err != nil {
			t.Fatalf("parseModel(%T) error = %v", tt.model, err)
		}
		if s.Table != tt.table {
			t.Errorf("table = %q, want %q", s.Table, tt.table)
		}
		for _, col := range tt.want {
			if !slices.Contains(s.DBNames, col) {
				t.Errorf("%s columns %v missing %q", s.Table, s.DBNames, col)
			}
		}
		if slices.Contains(s.DBNames, "tags") {
			t.Errorf("%s columns include the tags relation", s.Table)
		}
	}
}

// Runs against a real Postgres when PORTFOLIO_TEST_DATABASE_URL is set.
func TestColumnReportAfterMigrate(t *testing.T) {
	dsn := os.Getenv("PORTFOLIO_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("PORTFOLIO_TEST_DATABASE_URL not set")
	}

	gormDB, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	db := New(gormDB)
	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	reports, err := db.ColumnReport(ctx)
	if err != nil {
		t.Fatalf("ColumnReport() error = %v", err)
	}
	for _, r := range reports {
		if !r.Exists || len(r.Unmapped) != 0 {
			t.Errorf("report for %s = %+v, want existing table with every column mapped", r.Table, r)
		}
	}
}
