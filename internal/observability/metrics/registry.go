package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metadata resolution metrics
var (
	// SourceAttemptsTotal counts source invocations by outcome (complete, partial, empty)
	SourceAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metadata_source_attempts_total",
			Help: "Total number of metadata source attempts by outcome",
		},
		[]string{"source", "outcome"},
	)

	// SourceDuration measures how long each source took to answer
	SourceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "metadata_source_duration_seconds",
			Help:    "Duration of a single metadata source attempt in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)

	// SourceBreakerState is the circuit breaker state per upstream (0 closed, 1 half-open, 2 open)
	SourceBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "metadata_source_breaker_state",
			Help: "Circuit breaker state per metadata source: 0 closed, 1 half-open, 2 open",
		},
		[]string{"source"},
	)

	// ResolutionsTotal counts resolve calls by result (resolved or fallback)
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metadata_resolutions_total",
			Help: "Total number of metadata resolutions by result",
		},
		[]string{"result"},
	)
)

// Video metrics
var (
	// VideosPublishedTotal counts publish requests by outcome
	VideosPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videos_published_total",
			Help: "Total number of publish requests by outcome",
		},
		[]string{"outcome"},
	)

	// VideosTotal is the number of videos stored, refreshed periodically
	VideosTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "videos_total",
			Help: "Total number of videos in the database",
		},
	)

	// VideosTotalRefreshErrors counts failed refreshes of VideosTotal
	VideosTotalRefreshErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "videos_total_refresh_errors_total",
			Help: "Total number of failed video count refreshes",
		},
	)
)

// Database metrics
var (
	// DBQueryDuration measures database query duration by operation
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)
)
