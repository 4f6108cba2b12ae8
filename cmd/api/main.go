// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/meta4-erp/internal/adapters/inventoryapi"
	"github.com/ammerola/meta4-erp/internal/adapters/memory"
	redis_a "github.com/ammerola/meta4-erp/internal/adapters/redis_adapter"
	"github.com/ammerola/meta4-erp/internal/core/ports"
	"github.com/ammerola/meta4-erp/internal/core/services"
	"github.com/ammerola/meta4-erp/internal/handlers"
	"github.com/ammerola/meta4-erp/internal/handlers/middleware"
	"github.com/ammerola/meta4-erp/internal/pkg/config"
	"github.com/ammerola/meta4-erp/internal/pkg/logger"
	"github.com/ammerola/meta4-erp/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting meta4 erp dashboard api",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
		slog.String("upstream_mode", cfg.Upstream.Mode),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		deps.views.Run(ctx)
	}()

	server := setupHTTPServer(ctx, cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}
	}

	// Stops the session sweeper and closes every mounted session
	cancel()
	<-sweeperDone
	slogger.Info("server shutdown complete")
}

// upstream is a record source that can be health checked
type upstream interface {
	ports.RecordSource
	handlers.Pinger
}

// dependencies holds all application dependencies
type dependencies struct {
	redisClient    *redis.Client
	asynqInspector *asynq.Inspector
	views          *services.ViewManager
	routes         handlers.Routes
}

func (d *dependencies) cleanup() {
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	secrets, err := config.NewSecretSource(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets manager: %w", err)
	}
	if err := config.ResolveServiceToken(ctx, cfg, secrets); err != nil {
		return nil, err
	}

	var origin upstream
	switch cfg.Upstream.Mode {
	case config.UpstreamMemory:
		logger.Warn("serving seeded in-memory collections")
		origin = memory.NewSeededSource()
	default:
		logger.Info("using upstream inventory API", slog.String("base_url", cfg.Upstream.BaseURL))
		origin = inventoryapi.NewClient(inventoryapi.Config{
			BaseURL:         cfg.Upstream.BaseURL,
			Timeout:         cfg.Upstream.Timeout,
			RateLimit:       cfg.Upstream.RateLimit,
			RateBurst:       cfg.Upstream.RateBurst,
			RequestIDHeader: cfg.Security.RequestIDHeader,
		}, inventoryapi.NewBearerTokens(cfg.Upstream.ServiceToken), logger)
	}

	var (
		source ports.RecordSource = origin
		warmer ports.CollectionWarmer
		cache  ports.SnapshotCache
	)

	if cfg.Redis.CacheEnabled {
		logger.Info("connecting to Redis",
			slog.String("host", cfg.Redis.Host),
			slog.String("port", cfg.Redis.Port),
		)

		redisClient := redis.NewClient(&redis.Options{
			Addr:         cfg.GetRedisAddress(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			MaxRetries:   cfg.Redis.MaxRetries,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			PoolTimeout:  cfg.Redis.PoolTimeout,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			redisClient.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		deps.redisClient = redisClient

		redisCache := redis_a.NewCache(redisClient, logger)
		cached := redis_a.NewCachedSource(origin, redisCache, cfg.Redis.TTL, logger)
		source, warmer, cache = cached, cached, redisCache

		deps.asynqInspector = asynq.NewInspector(workers.RedisOpt(cfg.Asynq))
	}

	projects := memory.NewSeededProjectStore()

	deps.views = services.NewViewManager(source, projects, warmer, services.ManagerConfig{
		IdleTimeout:   cfg.Views.IdleTimeout,
		MaxSessions:   cfg.Views.MaxSessions,
		SweepInterval: cfg.Views.SweepInterval,
	}, logger)
	dashboard := services.NewDashboardService(source, logger)
	auth := inventoryapi.NewAuthClient(cfg.Upstream.AuthBaseURL, cfg.Upstream.Timeout, logger)

	deps.routes = handlers.Routes{
		Views:     handlers.NewViewHandler(deps.views, cfg.Views.MountTimeout, logger),
		Export:    handlers.NewExportHandler(deps.views, logger),
		Dashboard: handlers.NewDashboardHandler(dashboard, cache, cfg.Redis.TTL, logger),
		Projects:  handlers.NewProjectHandler(projects, logger),
		Auth:      handlers.NewAuthHandler(auth, logger),
		Health:    handlers.NewHealthHandler(origin, deps.redisClient, deps.asynqInspector, deps.views, cfg, logger),
	}

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(ctx context.Context, cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	deps.routes.Register(mux)

	// First listed runs first
	chain := []middleware.Middleware{
		middleware.RequestID(cfg.Security.RequestIDHeader),
		middleware.RealIP(cfg.Security.TrustedProxies),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		chain = append(chain, middleware.CORS(cfg.Security.AllowedOrigins))
	}
	if cfg.Security.RateLimitRequests > 0 {
		chain = append(chain, middleware.RateLimit(ctx, cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration))
	}
	if cfg.Security.SecureHeaders {
		chain = append(chain, middleware.SecureHeaders)
	}
	chain = append(chain, middleware.BearerToken)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        middleware.Chain(mux, chain...),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}
