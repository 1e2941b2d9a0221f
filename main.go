package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for database/sql (migrations)
	"go.uber.org/zap"

	"github.com/garagekeep/garagekeep/pkg/config"
	"github.com/garagekeep/garagekeep/pkg/database"
	"github.com/garagekeep/garagekeep/pkg/handlers"
	"github.com/garagekeep/garagekeep/pkg/middleware"
	"github.com/garagekeep/garagekeep/pkg/repositories"
	"github.com/garagekeep/garagekeep/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure on exit is harmless

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("database", cfg.Database.Database),
		zap.String("db_host", cfg.Database.Host),
	)

	// Migrations go through database/sql; the service itself uses pgx pools.
	migrationDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		logger.Fatal("Failed to open database for migrations", zap.Error(err))
	}
	if err := database.RunMigrations(migrationDB, cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := migrationDB.Close(); err != nil {
		logger.Warn("Failed to close migration connection", zap.Error(err))
	}

	ctx := context.Background()
	db, err := database.NewConnection(ctx, &database.Config{
		URL:          cfg.Database.ConnectionString(),
		MaxConns:     cfg.Database.MaxConnections,
		ConnLifetime: cfg.Database.ConnLifetime,
		ConnIdleTime: cfg.Database.ConnIdleTime,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	projectRepo := repositories.NewProjectRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	itemRepo := repositories.NewItemRepository(db)

	projectService := services.NewProjectService(projectRepo, logger)
	locationService := services.NewLocationService(locationRepo, logger)
	itemService := services.NewItemService(itemRepo, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewProjectsHandler(projectService, logger).RegisterRoutes(mux)
	handlers.NewLocationsHandler(locationService, logger).RegisterRoutes(mux)
	handlers.NewItemsHandler(itemService, logger).RegisterRoutes(mux)

	handler := middleware.RequestID(middleware.RequestLogger(logger)(mux))

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting garagekeep",
		zap.String("addr", addr),
		zap.String("version", cfg.Version),
	)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
