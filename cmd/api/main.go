package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aerolinehq/ndc-backend/api/routes"
	"github.com/aerolinehq/ndc-backend/internal/identity"
	"github.com/aerolinehq/ndc-backend/internal/offers"
	"github.com/aerolinehq/ndc-backend/internal/pricing"
	"github.com/aerolinehq/ndc-backend/internal/shopping"
	"github.com/aerolinehq/ndc-backend/pkg/config"
	"github.com/aerolinehq/ndc-backend/pkg/db"
	"github.com/aerolinehq/ndc-backend/pkg/logger"
	"github.com/aerolinehq/ndc-backend/pkg/migrate"
	"github.com/aerolinehq/ndc-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	offerRepo := offers.NewRepository(dbClient.DB())

	shoppingService := shopping.NewService(offerRepo, redisClient, logg, cfg.Shopping, cfg.OfferStore.OfferTTL)
	pricingService := pricing.NewService(pricing.NewResolver(offerRepo, cfg.OfferStore.LookupTimeout), logg)

	var identityService *identity.Service
	if cfg.Identity.DirectoryBaseURL != "" {
		directory, err := identity.NewHTTPDirectory(cfg.Identity)
		if err != nil {
			logg.Error(context.Background(), "failed to create identity directory client", err)
			os.Exit(1)
		}
		identityService = identity.NewService(directory, redisClient, logg, cfg.JWT, cfg.Identity)
	} else {
		logg.Warn(context.Background(), "identity directory url not configured, sign-in disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, registry, dbClient, redisClient, shoppingService, pricingService, identityService),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}

	logg.Info(ctx, "api server stopped")
}
