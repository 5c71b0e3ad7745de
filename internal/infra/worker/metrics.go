package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Job run statuses.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// JobMetrics holds the Prometheus metrics of the refresh job.
type JobMetrics struct {
	RunsTotal            *prometheus.CounterVec
	DurationSeconds      prometheus.Histogram
	LastSuccessTimestamp prometheus.Gauge
}

// NewJobMetrics creates the job metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewJobMetrics(reg prometheus.Registerer) *JobMetrics {
	factory := promauto.With(reg)
	return &JobMetrics{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "refresh_job_runs_total",
			Help: "Total number of refresh job runs by status",
		}, []string{"status"}),

		DurationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "refresh_job_duration_seconds",
			Help:    "Duration of refresh job runs in seconds",
			Buckets: []float64{.01, .05, .1, .5, 1, 5, 30},
		}),

		LastSuccessTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Name: "refresh_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful refresh job run",
		}),
	}
}

// RecordJobRun increments the run counter for status.
func (m *JobMetrics) RecordJobRun(status string) {
	m.RunsTotal.WithLabelValues(status).Inc()
}

// RecordJobDuration observes one run duration in seconds.
func (m *JobMetrics) RecordJobDuration(seconds float64) {
	m.DurationSeconds.Observe(seconds)
}

// RecordLastSuccess stamps the current time as the last successful run.
func (m *JobMetrics) RecordLastSuccess() {
	m.LastSuccessTimestamp.SetToCurrentTime()
}
