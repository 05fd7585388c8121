package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fixed_asset_ledger/internal/core/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/handlers"
	"github.com/SscSPs/fixed_asset_ledger/internal/middleware"
	"github.com/SscSPs/fixed_asset_ledger/internal/observability/metrics"
	"github.com/SscSPs/fixed_asset_ledger/internal/platform/config"
	"github.com/SscSPs/fixed_asset_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/fixed_asset_ledger/internal/repositories/memory"
	"github.com/SscSPs/fixed_asset_ledger/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Fixed Asset Ledger API
// @version 1.0
// @description Tax credit, depreciation and disposal engine for fixed assets.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	repos, closeRepos, err := setupRepositories(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	var ledgerMetrics *metrics.LedgerMetrics
	var svcOpts []services.Option
	if cfg.MetricsEnabled {
		environment := "development"
		if cfg.IsProduction {
			environment = "production"
		}
		ledgerMetrics = metrics.New(metrics.Config{ServiceName: "fal_backend", Environment: environment})
		svcOpts = append(svcOpts, services.WithObserver(ledgerMetrics))
	}

	serviceContainer, err := services.NewServiceContainer(cfg, repos, svcOpts...)
	if err != nil {
		logger.Error("Failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit, cfg.RedisURL)
	if err != nil {
		logger.Error("Failed to initialize rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, metrics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))
	var metricsHandler http.Handler
	if ledgerMetrics != nil {
		r.Use(middleware.Metrics(ledgerMetrics))
		metricsHandler = ledgerMetrics.Handler()
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, metricsHandler,
		middleware.RateLimit(rateLimiter),
		middleware.AuditUser(),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting",
			slog.String("port", cfg.Port),
			slog.String("storage", cfg.StorageDriver),
			slog.String("accrual_strategy", cfg.DepreciationAccrualStrategy))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}

// setupRepositories selects the storage backend. For postgres it opens the pool
// and applies pending migrations first.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.RepositoryProvider, func(), error) {
	if cfg.StorageDriver != config.StoragePostgres {
		logger.Info("Using in-memory storage; data is lost on restart.")
		return memory.NewRepositoryProvider(), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return repositories.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		database.ClosePgxPool(dbPool)
		return repositories.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}
