package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for garagekeep.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values. Secrets (PGPASSWORD) must
// only come from environment variables.
type Config struct {
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// MigrationsPath is the directory containing SQL migration files.
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`

	// Database configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string        `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string        `yaml:"user" env:"PGUSER" env-default:"garage"`
	Password       string        `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string        `yaml:"database" env:"PGDATABASE" env-default:"garage_db"`
	MaxConnections int32         `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
	ConnLifetime   time.Duration `yaml:"conn_lifetime" env:"PGCONN_LIFETIME" env-default:"1h"`
	ConnIdleTime   time.Duration `yaml:"conn_idle_time" env:"PGCONN_IDLE_TIME" env-default:"30m"`
	SSLMode        string        `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. When no config.yaml exists (e.g. in containers configured purely
// through the environment), it falls back to environment variables alone.
// The version parameter is injected at build time and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
