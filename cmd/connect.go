package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rana718/volunteer-verse/internal/config"
	"github.com/Rana718/volunteer-verse/internal/database"
	"github.com/fatih/color"
)

// loadConfig loads and validates the configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// connect resolves the database URL, opens the adapter and pings the store.
func connect(ctx context.Context, cfg *config.Config) (database.DatabaseAdapter, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	adapter := database.NewAdapter(cfg.Database.Provider)
	err = adapter.Connect(ctx, dbURL)
	if err == nil {
		if err = adapter.Ping(ctx); err != nil {
			adapter.Close()
		}
	}
	if err != nil {
		if errors.Is(err, database.ErrConnectivity) {
			color.Yellow("💡 Check that the database is running and %s points at it", cfg.Database.URLEnv)
		}
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	color.Green("🔌 Connected to %s", cfg.Dialect())
	return adapter, nil
}
