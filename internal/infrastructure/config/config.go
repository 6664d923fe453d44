package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	// Storage
	DataDir          string `env:"LEDGER_DATA_DIR"          envDefault:"."`
	Backend          string `env:"LEDGER_BACKEND"           envDefault:"json"`
	BalanceFile      string `env:"LEDGER_BALANCE_FILE"      envDefault:"balance.json"`
	TransactionsFile string `env:"LEDGER_TRANSACTIONS_FILE" envDefault:"expenses.json"`
	CategoriesFile   string `env:"LEDGER_CATEGORIES_FILE"   envDefault:"categories.json"`
	SQLitePath       string `env:"LEDGER_SQLITE_PATH"       envDefault:"ledger.db"`

	// Wipe balance and transactions when the menu exits. The original
	// tracker always did this; it looks like a bug, so it is opt-in.
	WipeOnExit bool `env:"LEDGER_WIPE_ON_EXIT" envDefault:"false"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load loads configuration from a .env file (best effort) and the
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.Backend != BackendJSON && cfg.Backend != BackendSQLite {
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	return cfg, nil
}

// BalancePath returns the balance file location under the data directory.
func (c *Config) BalancePath() string {
	return filepath.Join(c.DataDir, c.BalanceFile)
}

// TransactionsPath returns the transactions file location under the data directory.
func (c *Config) TransactionsPath() string {
	return filepath.Join(c.DataDir, c.TransactionsFile)
}

// CategoriesPath returns the categories file location under the data directory.
func (c *Config) CategoriesPath() string {
	return filepath.Join(c.DataDir, c.CategoriesFile)
}

// SQLiteDBPath returns the sqlite database location under the data directory.
func (c *Config) SQLiteDBPath() string {
	return filepath.Join(c.DataDir, c.SQLitePath)
}
