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

	"github.com/SscSPs/currency_bar/internal/adapters/database/pgsql"
	"github.com/SscSPs/currency_bar/internal/adapters/exchangerate"
	"github.com/SscSPs/currency_bar/internal/adapters/memory"
	"github.com/SscSPs/currency_bar/internal/adapters/reachability"
	"github.com/SscSPs/currency_bar/internal/adapters/settings"
	"github.com/SscSPs/currency_bar/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_bar/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_bar/internal/core/ports/services"
	"github.com/SscSPs/currency_bar/internal/core/services"
	"github.com/SscSPs/currency_bar/internal/handlers"
	"github.com/SscSPs/currency_bar/internal/middleware"
	"github.com/SscSPs/currency_bar/internal/platform/config"
	"github.com/SscSPs/currency_bar/internal/validation"
	"github.com/SscSPs/currency_bar/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "issue-token" {
		os.Exit(runIssueToken(os.Args[2:], cfg.JWTSecret, os.Stdout, os.Stderr))
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	validation.Initialize()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settingsStore := settings.NewStore(cfg.SettingsFile, domain.Settings{RefreshInterval: cfg.DefaultRefreshInterval})
	current, err := settingsStore.LoadSettings(ctx)
	if err != nil {
		logger.Warn("Failed to load settings, using defaults", slog.String("error", err.Error()))
		current = domain.Settings{RefreshInterval: cfg.DefaultRefreshInterval}
	}

	repos, dbPool, err := setupRepositories(ctx, cfg, settingsStore, logger)
	if err != nil {
		logger.Error("Failed to initialize asset store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool, logger)

	converter := exchangerate.NewClient(cfg.ExchangeAPIURL, cfg.ExchangeAPITimeout,
		exchangerate.WithAPIKey(cfg.ExchangeAPIKey),
		exchangerate.WithRateLimit(cfg.ExchangeRateLimitRPS),
	)

	probeAddress := cfg.ReachabilityHost
	if probeAddress == "" {
		probeAddress, err = reachability.AddressFromURL(cfg.ExchangeAPIURL)
		if err != nil {
			logger.Error("Failed to derive reachability address", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	checker := reachability.NewChecker(probeAddress, cfg.ReachabilityTimeout, logger)

	hub := services.NewEventHub()
	scheduler := services.NewRefreshScheduler(
		repos.AssetRepo,
		converter,
		checker,
		current.RefreshInterval,
		hub,
		logger,
		services.WithConcurrency(cfg.RefreshConcurrency),
		services.WithConvertTimeout(cfg.ExchangeAPITimeout),
	)
	if err := scheduler.Start(ctx); err != nil {
		logger.Error("Failed to start refresh scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, scheduler, hub, logger)

	r, err := setupRouter(cfg, serviceContainer, logger)
	if err != nil {
		logger.Error("Failed to set up router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("reachability_address", checker.Address()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
		}
	}

	// Event streams stay open until their subscriptions close, so the hub goes first.
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	scheduler.Stop()
	logger.Info("Server stopped")
}

// setupRepositories selects PostgreSQL when a database URL is configured and the
// in-memory store otherwise. The returned pool is nil for the in-memory store.
func setupRepositories(ctx context.Context, cfg *config.Config, settingsRepo portsrepo.SettingsRepository, logger *slog.Logger) (portsrepo.RepositoryProvider, *pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		logger.Info("Using in-memory asset store")
		return portsrepo.RepositoryProvider{
			AssetRepo:    memory.NewAssetRepository(),
			SettingsRepo: settingsRepo,
		}, nil, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool, settingsRepo), dbPool, nil
}

func setupRouter(cfg *config.Config, serviceContainer *portssvc.ServiceContainer, logger *slog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	if cfg.APIRateLimit != "" {
		lim, err := middleware.NewMemoryLimiter(cfg.APIRateLimit)
		if err != nil {
			return nil, err
		}
		r.Use(middleware.RateLimit(lim))
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)
	return r, nil
}

func logLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo
	}
	return level
}
