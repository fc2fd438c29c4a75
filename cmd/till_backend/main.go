package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/till_reconciliation_app/internal/core/currencytable"
	portsrepo "github.com/SscSPs/till_reconciliation_app/internal/core/ports/repositories"
	"github.com/SscSPs/till_reconciliation_app/internal/core/services"
	"github.com/SscSPs/till_reconciliation_app/internal/handlers"
	"github.com/SscSPs/till_reconciliation_app/internal/middleware"
	"github.com/SscSPs/till_reconciliation_app/internal/platform/config"
	"github.com/SscSPs/till_reconciliation_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/till_reconciliation_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/till_reconciliation_app/internal/utils"
	"github.com/SscSPs/till_reconciliation_app/pkg/database"
	"github.com/SscSPs/till_reconciliation_app/pkg/logger"
	"github.com/gin-gonic/gin"
)

// @title Till Reconciliation API
// @version 1.0
// @description Splits a cash drawer count into the float left in the till and the bank deposit.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	appLogger, logCloser := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer logCloser.Close()
	slog.SetDefault(appLogger)

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	currencies, err := loadCurrencies(cfg)
	if err != nil {
		return err
	}
	logger.Info("Currency tables loaded", slog.Any("currencies", currencies.Codes()))

	repos, closeDB, err := openRepositories(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	serviceContainer := services.NewServiceContainer(cfg, repos, currencies)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	return r.Run(":" + cfg.Port)
}

func loadCurrencies(cfg *config.Config) (*currencytable.Table, error) {
	if cfg.CurrencyTablePath == "" {
		return currencytable.Default()
	}
	table, err := currencytable.Load(cfg.CurrencyTablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency tables from %s: %w", cfg.CurrencyTablePath, err)
	}
	return table, nil
}

// openRepositories connects the configured store and returns its repositories with a close func.
func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		if err := sqlite.AutoMigrate(db); err != nil {
			_ = database.CloseSQLite(db)
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
		}
		logger.Info("SQLite database opened", slog.String("path", cfg.SQLitePath))
		return sqlite.NewRepositoryProvider(db), func() {
			if err := database.CloseSQLite(db); err != nil {
				logger.Error("Error closing sqlite database", slog.String("error", err.Error()))
			}
		}, nil
	default:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")

		if cfg.RunMigrations {
			logger.Info("Running database migrations...")
			if err := database.RunMigrations(cfg.DatabaseURL, database.DefaultMigrationsPath, logger); err != nil {
				database.ClosePgxPool(dbPool)
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	}
}
