package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingDatabaseURL is returned when the configured environment variable is unset.
var ErrMissingDatabaseURL = errors.New("database URL not found")

const (
	DefaultVolunteers = 265500
	DefaultURLEnv     = "POSTGRES_URI"
	DefaultProvider   = "postgresql"

	TransactionPerRun   = "run"
	TransactionPerTable = "table"
)

type Config struct {
	Version  string   `json:"version" mapstructure:"version"`
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Seed struct {
	Volunteers  int    `json:"volunteers" mapstructure:"volunteers"`
	RandomSeed  uint64 `json:"random_seed" mapstructure:"random_seed"` // 0 = seeded from the clock
	Transaction string `json:"transaction" mapstructure:"transaction"`
}

// setDefaults registers every key, so Unmarshal also resolves keys that only
// come from the environment.
func setDefaults() {
	viper.SetDefault("version", "1")
	viper.SetDefault("database.provider", DefaultProvider)
	viper.SetDefault("database.url_env", DefaultURLEnv)
	viper.SetDefault("seed.volunteers", DefaultVolunteers)
	viper.SetDefault("seed.random_seed", 0)
	viper.SetDefault("seed.transaction", TransactionPerRun)
}

// BindEnv lets environment variables override any key, e.g. SEED_VOLUNTEERS
// for seed.volunteers.
func BindEnv() {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func Load() (*Config, error) {
	var cfg Config

	setDefaults()
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("%w in environment variable %s", ErrMissingDatabaseURL, c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.Seed.Volunteers <= 0 {
		return fmt.Errorf("seed.volunteers must be positive, got %d", c.Seed.Volunteers)
	}

	switch c.Seed.Transaction {
	case TransactionPerRun, TransactionPerTable:
	default:
		return fmt.Errorf("seed.transaction must be %q or %q, got %q", TransactionPerRun, TransactionPerTable, c.Seed.Transaction)
	}

	return nil
}

// Dialect collapses provider aliases to postgres, mysql or sqlite.
func (c *Config) Dialect() string {
	switch c.Database.Provider {
	case "mysql":
		return "mysql"
	case "sqlite", "sqlite3":
		return "sqlite"
	default:
		return "postgres"
	}
}
