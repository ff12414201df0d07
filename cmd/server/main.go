package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zenbase/gateway/internal/api"
	"github.com/zenbase/gateway/internal/config"
	"github.com/zenbase/gateway/internal/domain"
	"github.com/zenbase/gateway/internal/identity"
	"github.com/zenbase/gateway/internal/store"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if err := config.Load(); err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx := context.Background()

	var (
		tenants domain.TenantStore
		factory domain.ScopedClientFactory
	)

	switch config.DataBackend() {
	case config.BackendLive:
		pool, err := pgxpool.New(ctx, config.DatabaseURL())
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			logger.Fatal("failed to ping database", zap.Error(err))
		}
		logger.Info("connected to database")

		tenants = store.NewTenantStore(pool)
		factory = store.NewScopedFactory(pool, logger)

	default:
		logger.Warn("backing store not configured, serving placeholder data")
		placeholder := store.NewPlaceholder()
		tenants = placeholder
		factory = placeholder
	}

	var verifier domain.TokenVerifier
	if url := config.IdentityURL(); url != "" {
		verifier = identity.NewClient(url, config.IdentityAPIKey())
		logger.Info("identity provider configured", zap.String("url", url))
	} else {
		logger.Warn("identity provider not configured, using static verifier")
		verifier = identity.NewStatic()
	}

	app := api.NewApp(
		api.Config{
			BaseDomain:     config.BaseDomain(),
			LocalDevSuffix: config.LocalDevSuffix(),
			CORSOrigin:     config.CORSOrigin(),
			RateLimitRPS:   config.RateLimitRPS(),
			RateLimitBurst: config.RateLimitBurst(),
			Development:    config.IsDevelopment(),
		},
		api.Deps{
			Tenants:  tenants,
			Factory:  factory,
			Verifier: verifier,
		},
		logger,
	)

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:    addr,
		Handler: app.Router,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting",
			zap.String("addr", addr),
			zap.String("base_domain", config.BaseDomain()),
			zap.String("environment", config.Environment()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
