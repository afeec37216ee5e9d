package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	api "github.com/rpupo63/folioverse-backend/api"
	"github.com/rpupo63/folioverse-backend/catalog"
	"github.com/rpupo63/folioverse-backend/config"
	"github.com/rpupo63/folioverse-backend/database"
	"github.com/rpupo63/folioverse-backend/fixtures"
	"github.com/rpupo63/folioverse-backend/services"
)

func main() {
	c := config.Load()
	log.Logger = newLogger(c, os.Stderr)
	zerolog.SetGlobalLevel(logLevel(c))

	log.Info().Msg("Initializing app...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	source, err := projectSource(ctx, c)
	if err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Error preparing project source")
	}

	snapshot, err := catalog.Load(ctx, source)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading projects")
	}
	log.Info().
		Int("projects", snapshot.Len()).
		Int("categories", len(snapshot.Categories())-1).
		Msg("Project catalog loaded")

	notifier, err := services.NewNotifierFromConfig(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error configuring contact delivery")
	}

	// Sized for the interrupt and a server error so no sender blocks after
	// main stops receiving.
	errChannel := make(chan error, 2)

	server, err := api.NewServer(c, snapshot, services.NewContactService(notifier))
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// projectSource returns the compiled-in fixtures unless DB_TYPE selects a
// database, in which case the schema is migrated and optionally seeded first.
func projectSource(ctx context.Context, c map[string]string) (catalog.Source, error) {
	if !database.UsesDatabase(c) {
		log.Info().Msg("Serving compiled-in project fixtures")
		return fixtures.Source{}, nil
	}

	dsn, err := database.DSN(c)
	if err != nil {
		return nil, err
	}

	log.Info().Str("DB_TYPE", config.GetString(c, "DB_TYPE", "")).Msg("Connecting to database...")
	gormDB, err := database.Open(dsn)
	if err != nil {
		return nil, err
	}

	db := database.New(gormDB)
	if err := db.Migrate(ctx); err != nil {
		return nil, err
	}

	if config.GetBool(c, "GENERATE_COLUMN_REPORT", false) {
		logColumnReport(ctx, db)
	}

	if config.GetBool(c, "SEED_PROJECTS", false) {
		log.Info().Msg("Seeding projects from fixtures...")
		if err := db.ProjectRepo().Seed(ctx, fixtures.Projects()); err != nil {
			return nil, err
		}
	}

	return db.ProjectRepo(), nil
}

// logColumnReport warns about database columns the project models do not map.
// A failed report is logged and never stops startup.
func logColumnReport(ctx context.Context, db database.Database) {
	reports, err := db.ColumnReport(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Column report failed")
		return
	}
	for _, r := range reports {
		switch {
		case !r.Exists:
			log.Warn().Str("table", r.Table).Msg("Table does not exist")
		case len(r.Unmapped) > 0:
			log.Warn().Str("table", r.Table).Strs("columns", r.Unmapped).Msg("Columns not mapped by model")
		default:
			log.Info().Str("table", r.Table).Msg("All columns mapped")
		}
	}
}

// newLogger writes JSON when LOG_FORMAT=json and a colored console format otherwise
func newLogger(c map[string]string, out io.Writer) zerolog.Logger {
	if strings.EqualFold(config.GetString(c, "LOG_FORMAT", "console"), "json") {
		return zerolog.New(out).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

func logLevel(c map[string]string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
