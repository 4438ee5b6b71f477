package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/kambeshwar/creditnote_backend/internal/core/services"
	"github.com/kambeshwar/creditnote_backend/internal/dispatch"
	"github.com/kambeshwar/creditnote_backend/internal/handlers"
	"github.com/kambeshwar/creditnote_backend/internal/middleware"
	"github.com/kambeshwar/creditnote_backend/internal/pdf"
	"github.com/kambeshwar/creditnote_backend/internal/platform/config"
	"github.com/kambeshwar/creditnote_backend/internal/repositories/database/pgsql"
	"github.com/kambeshwar/creditnote_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Credit Note Backend API
// @version 1.0
// @description Credit note computation, document generation and admin console backend.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	renderer := pdf.NewRenderer(pdf.NewWatermarkCache(cfg.WatermarkImageURL))

	var dispatcher = buildDispatcher(cfg, logger)

	serviceContainer := services.NewServiceContainer(cfg, repos, renderer, dispatcher)

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildDispatcher wires the webhook dispatcher, wrapped with the sheet
// mirror when one is configured.
func buildDispatcher(cfg *config.Config, logger *slog.Logger) *dispatch.MirroredDispatcher {
	script := dispatch.NewScriptDispatcher(cfg.ScriptURL, cfg.DispatchTimeout)

	var mirror *dispatch.SheetMirror
	if cfg.SheetID != "" && cfg.SheetCredentialsFile != "" {
		var err error
		mirror, err = dispatch.NewSheetMirror(context.Background(), cfg.SheetID, cfg.SheetCredentialsFile)
		if err != nil {
			logger.Warn("Sheet mirror disabled", slog.String("error", err.Error()))
		}
	}
	return dispatch.NewMirroredDispatcher(script, mirror)
}

func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
