package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aerolinehq/ndc-backend/internal/cron"
	"github.com/aerolinehq/ndc-backend/internal/offers"
	"github.com/aerolinehq/ndc-backend/pkg/config"
	"github.com/aerolinehq/ndc-backend/pkg/db"
	"github.com/aerolinehq/ndc-backend/pkg/logger"
	"github.com/aerolinehq/ndc-backend/pkg/metrics"
	"github.com/aerolinehq/ndc-backend/pkg/migrate"
	"github.com/aerolinehq/ndc-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "cron-worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	cfg.Service.Kind = "cron-worker"

	logg = logger.New(logger.Options{
		ServiceName: "cron-worker",
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

	jobMetrics := metrics.NewJobMetrics(prometheus.DefaultRegisterer)

	lock, err := cron.NewRedisLock(redisClient, redisClient.LockKey("offer_purge"), 0)
	if err != nil {
		logg.Error(context.Background(), "failed to create cron lock", err)
		os.Exit(1)
	}

	purgeJob, err := cron.NewOfferPurgeJob(cron.OfferPurgeJobParams{
		Logger:     logg,
		Repository: offers.NewRepository(dbClient.DB()),
		Metrics:    jobMetrics,
		Retention:  cfg.OfferStore.PurgeRetention,
		BatchSize:  cfg.OfferStore.PurgeBatchSize,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create offer purge job", err)
		os.Exit(1)
	}

	service, err := cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: cron.NewRegistry(purgeJob),
		Lock:     lock,
		Metrics:  jobMetrics,
		Interval: cfg.OfferStore.PurgeInterval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cron service", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":         cfg.App.Env,
		"serviceKind": cfg.Service.Kind,
	})
	logg.Info(ctx, "starting cron worker")

	if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "cron worker stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "cron worker shutting down gracefully")
}
