package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSourceAttempt(t *testing.T) {
	before := testutil.ToFloat64(SourceAttemptsTotal.WithLabelValues("watchpage", "complete"))

	RecordSourceAttempt("watchpage", "complete", 150*time.Millisecond)

	after := testutil.ToFloat64(SourceAttemptsTotal.WithLabelValues("watchpage", "complete"))
	assert.Equal(t, before+1, after)
}

func TestRecordBreakerState(t *testing.T) {
	RecordBreakerState("noembed", 2)
	assert.Equal(t, 2.0, testutil.ToFloat64(SourceBreakerState.WithLabelValues("noembed")))

	RecordBreakerState("noembed", 0)
	assert.Equal(t, 0.0, testutil.ToFloat64(SourceBreakerState.WithLabelValues("noembed")))
}

func TestRecordResolution(t *testing.T) {
	tests := []string{ResolutionResolved, ResolutionFallback}

	for _, result := range tests {
		t.Run(result, func(t *testing.T) {
			before := testutil.ToFloat64(ResolutionsTotal.WithLabelValues(result))
			RecordResolution(result)
			assert.Equal(t, before+1, testutil.ToFloat64(ResolutionsTotal.WithLabelValues(result)))
		})
	}
}

func TestRecordPublish(t *testing.T) {
	outcomes := []string{
		PublishPublished,
		PublishInvalidID,
		PublishDuplicate,
		PublishAcquisitionFailed,
		PublishViewLimitExceeded,
		PublishInvalidMetadata,
		PublishStorageError,
	}

	for _, outcome := range outcomes {
		t.Run(outcome, func(t *testing.T) {
			before := testutil.ToFloat64(VideosPublishedTotal.WithLabelValues(outcome))
			RecordPublish(outcome)
			assert.Equal(t, before+1, testutil.ToFloat64(VideosPublishedTotal.WithLabelValues(outcome)))
		})
	}
}

func TestUpdateVideosTotal(t *testing.T) {
	UpdateVideosTotal(42)
	assert.Equal(t, float64(42), testutil.ToFloat64(VideosTotal))

	UpdateVideosTotal(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(VideosTotal))
}

func TestRecordDBQuery(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordDBQuery("get", 3*time.Millisecond)
	})
}
