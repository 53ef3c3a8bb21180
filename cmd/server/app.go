package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskwell/taskwell-api/internal/config"
	"github.com/taskwell/taskwell-api/internal/platform/estimator"
	"github.com/taskwell/taskwell-api/internal/platform/postgres"
	"github.com/taskwell/taskwell-api/internal/service"
	"github.com/taskwell/taskwell-api/internal/service/auth"
)

// application holds the fully wired dependency graph. Everything is
// constructed once in newApplication and handed down; no component
// reaches for globals.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService  auth.JWTService
	userService *service.UserService
	taskService *service.TaskService
}

// newApplication connects to the database and builds the service layer.
func newApplication(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) (*application, error) {
	db, err := setupDatabase(ctx, cfg, appLogger)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeDB(db, appLogger)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	userStore := postgres.NewUserStore(db)
	taskStore := postgres.NewTaskStore(db)

	return &application{
		config:      cfg,
		logger:      appLogger,
		db:          db,
		jwtService:  jwtService,
		userService: service.NewUserService(userStore, hasher, hasher, jwtService),
		taskService: service.NewTaskService(taskStore, estimator.NewClient(cfg.Estimator)),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeDB(app.db, app.logger)
}

func closeDB(db *sql.DB, appLogger *slog.Logger) {
	if err := db.Close(); err != nil {
		appLogger.Error("Failed to close database connection", "error", err)
	}
}

// migrateUp applies any pending schema migrations on the application's
// own connection pool.
func (app *application) migrateUp() error {
	start := time.Now()
	if err := runMigrations(app.db, "up"); err != nil {
		return err
	}
	app.logger.Info("Migrations applied", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
