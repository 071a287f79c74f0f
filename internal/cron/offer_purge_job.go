package cron

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/aerolinehq/ndc-backend/pkg/logger"
	"github.com/aerolinehq/ndc-backend/pkg/metrics"
)

const (
	defaultPurgeRetention = 30 * 24 * time.Hour
	defaultPurgeBatchSize = 500
	maxPurgeBatchesPerRun = 100
)

// offerPurgeRepo is the offer store surface the purge job needs.
type offerPurgeRepo interface {
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time, batchSize int) (int64, error)
}

// OfferPurgeJobParams configure the expired offer purge job.
type OfferPurgeJobParams struct {
	Logger     *logger.Logger
	Repository offerPurgeRepo
	Metrics    *metrics.JobMetrics
	Retention  time.Duration
	BatchSize  int
}

// NewOfferPurgeJob builds the job that removes offer tombstones past the
// retention window. Expired offers stay readable (the resolver classifies
// them as expired) until this job deletes them.
func NewOfferPurgeJob(params OfferPurgeJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Repository == nil {
		return nil, fmt.Errorf("offer repository required")
	}
	retention := params.Retention
	if retention <= 0 {
		retention = defaultPurgeRetention
	}
	batchSize := params.BatchSize
	if batchSize <= 0 {
		batchSize = defaultPurgeBatchSize
	}
	return &offerPurgeJob{
		logg:      params.Logger,
		repo:      params.Repository,
		metrics:   params.Metrics,
		retention: retention,
		batchSize: batchSize,
		now:       time.Now,
	}, nil
}

type offerPurgeJob struct {
	logg      *logger.Logger
	repo      offerPurgeRepo
	metrics   *metrics.JobMetrics
	retention time.Duration
	batchSize int
	now       func() time.Time
}

func (j *offerPurgeJob) Name() string { return "offer-purge" }

func (j *offerPurgeJob) Run(ctx context.Context) error {
	cutoff := j.now().UTC().Add(-j.retention)

	var purged int64
	var errs error
	for batch := 1; batch <= maxPurgeBatchesPerRun; batch++ {
		removed, err := j.repo.DeleteExpiredBefore(ctx, cutoff, j.batchSize)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("purge batch %d: %w", batch, err))
			break
		}
		if removed == 0 {
			break
		}
		purged += removed
	}

	j.metrics.AddPurged(j.Name(), purged)

	logCtx := j.logg.WithFields(ctx, map[string]any{
		"cutoff":       cutoff,
		"rows_deleted": purged,
	})
	if errs != nil {
		return errs
	}
	j.logg.Info(logCtx, "offer purge complete")
	return nil
}
