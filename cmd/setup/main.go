// Command setup creates the hostel database when missing, applies migrations
// and seeds the default admin and rooms.
package main

import (
	"context"
	"os"
	"time"

	"github.com/yigit/hostelhub/internal/bootstrap"
	"github.com/yigit/hostelhub/internal/db"
	"github.com/yigit/hostelhub/internal/pkg/logger"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	created, err := db.EnsureDatabase(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to ensure database exists")
		os.Exit(1)
	}
	if created {
		lgr.Info().Str("database", cfg.Database.DBName).Msg("Database created")
	} else {
		lgr.Info().Str("database", cfg.Database.DBName).Msg("Database already exists")
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		os.Exit(1)
	}
	defer database.Close()

	if err := bootstrap.PrepareDatabase(ctx, cfg, database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Database setup failed")
		database.Close()
		os.Exit(1)
	}

	lgr.Info().Msg("Database setup complete")
}
