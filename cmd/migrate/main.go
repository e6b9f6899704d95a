// Command migrate applies the embedded schema migrations and exits.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/duynhne/exam-service/config"
	database "github.com/duynhne/exam-service/internal/core"
	"github.com/duynhne/exam-service/internal/logger"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.Logging.Level)

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("Migration failed")
		os.Exit(1)
	}
	log.Info().Str("database", cfg.Database.Name).Msg("Migrations applied")
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	return database.Migrate(ctx, pool)
}
