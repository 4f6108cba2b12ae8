// cmd/worker/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/meta4-erp/internal/adapters/inventoryapi"
	"github.com/ammerola/meta4-erp/internal/adapters/memory"
	redis_a "github.com/ammerola/meta4-erp/internal/adapters/redis_adapter"
	"github.com/ammerola/meta4-erp/internal/core/ports"
	"github.com/ammerola/meta4-erp/internal/pkg/config"
	"github.com/ammerola/meta4-erp/internal/pkg/logger"
	"github.com/ammerola/meta4-erp/internal/workers"
)

func main() {
	slogger := logger.SetupLogger("info", "json")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	ctx := context.Background()

	redisClient, warmer, err := initWarmer(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize collection cache", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()

	srv := workers.NewServer(cfg.Asynq, slogger)
	mux := workers.NewServeMux(workers.NewRefreshProcessor(warmer, slogger))

	scheduler := workers.NewScheduler(cfg.Asynq, slogger)
	if _, err := workers.RegisterRefresh(scheduler, cfg.Views.RefreshInterval, "default", cfg.Asynq.RetryMax, slogger); err != nil {
		slogger.Error("failed to schedule collection refresh", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("failed to run worker server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	if err := scheduler.Start(); err != nil {
		slogger.Error("failed to start scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues),
		slog.Duration("refresh_interval", cfg.Views.RefreshInterval))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	scheduler.Shutdown()
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}

// initWarmer builds the cached record source the refresh tasks rewarm
func initWarmer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*redis.Client, ports.CollectionWarmer, error) {
	secrets, err := config.NewSecretSource(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize secrets manager: %w", err)
	}
	if err := config.ResolveServiceToken(ctx, cfg, secrets); err != nil {
		return nil, nil, err
	}

	var origin ports.RecordSource
	if cfg.Upstream.Mode == config.UpstreamMemory {
		origin = memory.NewSeededSource()
	} else {
		origin = inventoryapi.NewClient(inventoryapi.Config{
			BaseURL:   cfg.Upstream.BaseURL,
			Timeout:   cfg.Upstream.Timeout,
			RateLimit: cfg.Upstream.RateLimit,
			RateBurst: cfg.Upstream.RateBurst,
		}, inventoryapi.NewBearerTokens(cfg.Upstream.ServiceToken), logger)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddress(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := redis_a.NewCache(redisClient, logger)
	return redisClient, redis_a.NewCachedSource(origin, cache, cfg.Redis.TTL, logger), nil
}
