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

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/seatflow/internal/adapter/cache"
	"github.com/srgjo27/seatflow/internal/adapter/gateway"
	"github.com/srgjo27/seatflow/internal/adapter/handler"
	"github.com/srgjo27/seatflow/internal/adapter/repository/postgres"
	"github.com/srgjo27/seatflow/internal/core/ports"
	"github.com/srgjo27/seatflow/internal/core/services"
	"github.com/srgjo27/seatflow/internal/platform/config"
	"github.com/srgjo27/seatflow/internal/platform/database"
	"github.com/srgjo27/seatflow/internal/platform/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.Env)
	slog.SetDefault(log)

	ctx := context.Background()

	var (
		tokenStore ports.TokenStore
		eventCache ports.EventCache
		receipts   ports.ReceiptRepository
	)

	if cfg.Redis.Enabled {
		log.Info("connecting to redis", slog.String("addr", cfg.Redis.Addr))

		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()

		if err != nil {
			log.Warn("redis unavailable, running without token persistence and event cache", slog.String("error", err.Error()))
		} else {
			log.Info("redis connected")
			tokenStore = cache.NewTokenStore(redisClient, cfg.Profile)
			eventCache = cache.NewEventCache(redisClient, cfg.Redis.EventCacheTTL)
		}
	}

	if cfg.Database.Enabled {
		db, err := database.NewPostgresDB(ctx, database.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.Name,
			SSLMode:  cfg.Database.SSLMode,
		}, log)
		if err != nil {
			log.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()

		repo := postgres.NewReceiptRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Error("failed to prepare receipt schema", slog.String("error", err.Error()))
			os.Exit(1)
		}
		receipts = repo
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	authAPI := gateway.NewAuthAPI(cfg.AuthURL, httpClient, log)
	session := services.NewSessionManager(authAPI, tokenStore, log)

	mobileAPI := gateway.NewMobileAPI(cfg.BackendURL, httpClient, session, log)

	catalog := services.NewEventCatalog(mobileAPI, eventCache, log)
	registry := services.NewSelectionRegistry(mobileAPI, log)
	checkout := services.NewCheckoutService(mobileAPI, receipts, log)

	h := handler.NewHandler(session, catalog, registry, checkout, log)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      handler.NewRouter(h),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server starting", slog.String("addr", cfg.ListenAddr), slog.String("backend", cfg.BackendURL))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server startup failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("shutting down server")

	registry.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	log.Info("server exiting")
}
