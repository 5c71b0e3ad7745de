package metrics

import "time"

// Resolution results.
const (
	ResolutionResolved = "resolved"
	ResolutionFallback = "fallback"
)

// Publish outcomes.
const (
	PublishPublished         = "published"
	PublishInvalidID         = "invalid_id"
	PublishDuplicate         = "duplicate"
	PublishAcquisitionFailed = "acquisition_failed"
	PublishViewLimitExceeded = "view_limit_exceeded"
	PublishInvalidMetadata   = "invalid_metadata"
	PublishStorageError      = "storage_error"
)

// RecordSourceAttempt records one metadata source invocation and its latency.
func RecordSourceAttempt(source, outcome string, duration time.Duration) {
	SourceAttemptsTotal.WithLabelValues(source, outcome).Inc()
	SourceDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordBreakerState publishes the numeric breaker state of a source.
func RecordBreakerState(source string, state float64) {
	SourceBreakerState.WithLabelValues(source).Set(state)
}

// RecordResolution records whether a resolve call found a complete source.
func RecordResolution(result string) {
	ResolutionsTotal.WithLabelValues(result).Inc()
}

// RecordPublish records the outcome of a publish request.
func RecordPublish(outcome string) {
	VideosPublishedTotal.WithLabelValues(outcome).Inc()
}

// UpdateVideosTotal updates the total count of stored videos.
// This gauge should be updated periodically to reflect the current state.
func UpdateVideosTotal(count int64) {
	VideosTotal.Set(float64(count))
}

// RecordVideosTotalRefreshError records a failed attempt to refresh the video count.
func RecordVideosTotalRefreshError() {
	VideosTotalRefreshErrors.Inc()
}

// RecordDBQuery records the duration of a database operation.
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
