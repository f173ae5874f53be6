// Package main is the entry point for the Money Manager API server.
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
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/money-manager/backend/config"
	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/infra/db"
	"github.com/money-manager/backend/internal/infra/dependency"
	"github.com/money-manager/backend/internal/integration/adapters"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Money Manager API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.Migrate(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	rateLimitStore, closeStore := newRateLimitStore(cfg.Redis)
	defer closeStore()

	injector := dependency.NewInjector(cfg, database.DB(), rateLimitStore, nil)
	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}

	slog.Info("Server exited properly")
}

// newRateLimitStore connects to Redis when enabled and falls back to an
// in-process store when Redis is disabled or unreachable.
func newRateLimitStore(cfg config.RedisConfig) (adapter.RateLimitStore, func()) {
	noop := func() {}
	if !cfg.Enabled {
		return adapters.NewMemoryRateLimitStore(), noop
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, using in-memory rate limiting", "error", err)
		return adapters.NewMemoryRateLimitStore(), noop
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		_ = client.Close()
		return adapters.NewMemoryRateLimitStore(), noop
	}

	slog.Info("Redis connection established", "addr", opts.Addr)
	return adapters.NewRedisRateLimitStore(client), func() {
		if err := client.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}
}
