// Package database manages the PostgreSQL connection pool and migrations.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool tuning fallbacks, applied when the corresponding Config field is zero.
const (
	defaultMaxConns     = int32(25)
	defaultConnLifetime = time.Hour
	defaultConnIdleTime = 30 * time.Minute
)

// DB wraps a pgxpool connection pool.
type DB struct {
	*pgxpool.Pool
}

// Config holds database connection configuration. Zero-valued tuning fields
// fall back to package defaults.
type Config struct {
	URL          string
	MaxConns     int32
	ConnLifetime time.Duration
	ConnIdleTime time.Duration
}

// poolConfig translates cfg into a pgxpool configuration with defaults filled.
func (c *Config) poolConfig() (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(c.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}

	poolCfg.MaxConns = c.MaxConns
	poolCfg.MaxConnLifetime = c.ConnLifetime
	poolCfg.MaxConnIdleTime = c.ConnIdleTime

	if poolCfg.MaxConns <= 0 {
		poolCfg.MaxConns = defaultMaxConns
	}
	if poolCfg.MaxConnLifetime <= 0 {
		poolCfg.MaxConnLifetime = defaultConnLifetime
	}
	if poolCfg.MaxConnIdleTime <= 0 {
		poolCfg.MaxConnIdleTime = defaultConnIdleTime
	}

	return poolCfg, nil
}

// NewConnection opens a connection pool for cfg and verifies it with a ping.
func NewConnection(ctx context.Context, cfg *Config) (*DB, error) {
	poolCfg, err := cfg.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	db.Pool.Close()
}
