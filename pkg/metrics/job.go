package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// JobMetrics records metadata for scheduled jobs.
type JobMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	purged   *prometheus.CounterVec
}

// NewJobMetrics registers the scheduled job metrics on the provided registerer.
func NewJobMetrics(reg prometheus.Registerer) *JobMetrics {
	if reg == nil {
		return &JobMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "job_duration_seconds",
		Help:    "Duration of scheduled jobs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "job_success",
		Help: "Successful scheduled job executions.",
	}, []string{"job"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "job_failure",
		Help: "Failed scheduled job executions.",
	}, []string{"job"})
	purged := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "job_offers_purged_total",
		Help: "Expired offers removed by the purge job.",
	}, []string{"job"})
	reg.MustRegister(duration, success, failure, purged)
	return &JobMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		purged:   purged,
	}
}

// ObserveDuration records the duration for the named job.
func (j *JobMetrics) ObserveDuration(job string, duration time.Duration) {
	if j == nil || j.duration == nil {
		return
	}
	j.duration.WithLabelValues(normalizeLabel(job)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named job.
func (j *JobMetrics) IncSuccess(job string) {
	if j == nil || j.success == nil {
		return
	}
	j.success.WithLabelValues(normalizeLabel(job)).Inc()
}

// IncFailure increments the failure counter for the named job.
func (j *JobMetrics) IncFailure(job string) {
	if j == nil || j.failure == nil {
		return
	}
	j.failure.WithLabelValues(normalizeLabel(job)).Inc()
}

// AddPurged records the number of expired offers removed by the named job.
func (j *JobMetrics) AddPurged(job string, count int64) {
	if j == nil || j.purged == nil || count <= 0 {
		return
	}
	j.purged.WithLabelValues(normalizeLabel(job)).Add(float64(count))
}

func normalizeLabel(job string) string {
	if job == "" {
		return "unknown"
	}
	return job
}
