package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/folioverse-backend/config"
	"github.com/rpupo63/folioverse-backend/errs"
	"github.com/rpupo63/folioverse-backend/models"
)

// Supported DB_TYPE values
const (
	TypeFixtures = "fixtures"
	TypePostgres = "postgres"
	TypeSupabase = "supa"
)

type Database struct {
	db          *gorm.DB
	projectRepo *ProjectRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:          db,
		projectRepo: NewProjectRepo(db),
	}
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

// Migrate creates or updates the project tables
func (d Database) Migrate(ctx context.Context) error {
	if err := d.db.WithContext(ctx).AutoMigrate(&models.Project{}, &models.Tag{}); err != nil {
		return errs.NewDatabaseError("migrate", "project tables", err)
	}
	return nil
}

// UsesDatabase reports whether DB_TYPE selects a database over the
// compiled-in fixtures
func UsesDatabase(c map[string]string) bool {
	switch strings.ToLower(config.GetString(c, "DB_TYPE", "")) {
	case "", TypeFixtures:
		return false
	}
	return true
}

// DSN builds the connection string for DB_TYPE
func DSN(c map[string]string) (string, error) {
	dbType := strings.ToLower(config.GetString(c, "DB_TYPE", ""))
	switch dbType {
	case TypePostgres:
		dsn := config.GetString(c, "DATABASE_URL", "")
		if dsn == "" {
			return "", errs.NewConfigInvalidError("DATABASE_URL", "required when DB_TYPE=postgres")
		}
		return dsn, nil
	case TypeSupabase:
		host := config.GetString(c, "SUPABASE_DB_HOST", "")
		if host == "" {
			return "", errs.NewConfigInvalidError("SUPABASE_DB_HOST", "required when DB_TYPE=supa")
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=require",
			host,
			config.GetString(c, "SUPABASE_DB_USER", ""),
			config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(c, "SUPABASE_DB_NAME", ""),
			config.GetInt(c, "SUPABASE_DB_PORT", 5432),
		), nil
	}
	return "", errs.NewConfigInvalidError("DB_TYPE", fmt.Sprintf("unsupported value %q", dbType))
}

// Open connects to Postgres and checks the connection
func Open(dsn string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		return nil, errs.NewDatabaseError("connect to", "database", err)
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, errs.NewDatabaseError("test connection to", "database", err)
	}

	return db, nil
}
