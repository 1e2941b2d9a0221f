package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("test-version")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Version != "test-version" {
		t.Errorf("expected version 'test-version', got %q", cfg.Version)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "local" {
		t.Errorf("expected default env 'local', got %q", cfg.Env)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("expected default host 'localhost', got %q", cfg.Database.Host)
	}
	if cfg.Database.SSLMode != "disable" {
		t.Errorf("expected default ssl_mode 'disable', got %q", cfg.Database.SSLMode)
	}
	if cfg.Database.ConnLifetime != time.Hour {
		t.Errorf("expected default conn_lifetime 1h, got %v", cfg.Database.ConnLifetime)
	}
	if cfg.Database.ConnIdleTime != 30*time.Minute {
		t.Errorf("expected default conn_idle_time 30m, got %v", cfg.Database.ConnIdleTime)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PGHOST", "db.internal")
	t.Setenv("PGPASSWORD", "s3cret")
	t.Setenv("PGCONN_LIFETIME", "45m")

	cfg, err := Load("test-version")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Errorf("expected env 'production', got %q", cfg.Env)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("expected host 'db.internal', got %q", cfg.Database.Host)
	}
	if cfg.Database.Password != "s3cret" {
		t.Errorf("expected password from environment, got %q", cfg.Database.Password)
	}
	if cfg.Database.ConnLifetime != 45*time.Minute {
		t.Errorf("expected conn_lifetime 45m, got %v", cfg.Database.ConnLifetime)
	}
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "garage",
		Password: "pw",
		Database: "garage_db",
		SSLMode:  "disable",
	}

	want := "host=localhost port=5432 user=garage password=pw dbname=garage_db sslmode=disable"
	if got := cfg.ConnectionString(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
