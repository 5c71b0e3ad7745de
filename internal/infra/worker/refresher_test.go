package worker

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randomyt/internal/observability/metrics"
	"randomyt/internal/repository"
)

type stubCounter struct {
	count    int64
	err      error
	calls    atomic.Int32
	mu       sync.Mutex
	deadline bool
	filters  repository.VideoFilters
}

func (s *stubCounter) Count(ctx context.Context, filters repository.VideoFilters) (int64, error) {
	s.calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	_, s.deadline = ctx.Deadline()
	s.filters = filters
	return s.count, s.err
}

func newRefresher(counter VideoCounter) *Refresher {
	return &Refresher{
		Counter: counter,
		Metrics: NewJobMetrics(prometheus.NewRegistry()),
		Logger:  slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		Timeout: time.Second,
	}
}

func TestRefresher_Run_Success(t *testing.T) {
	counter := &stubCounter{count: 42}
	r := newRefresher(counter)

	count, err := r.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
	assert.True(t, counter.deadline, "run must carry a timeout")
	assert.Equal(t, repository.VideoFilters{}, counter.filters)
	assert.Equal(t, 42.0, testutil.ToFloat64(metrics.VideosTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Metrics.RunsTotal.WithLabelValues(StatusSuccess)))
	assert.Greater(t, testutil.ToFloat64(r.Metrics.LastSuccessTimestamp), 0.0)
}

func TestRefresher_Run_Failure(t *testing.T) {
	metrics.UpdateVideosTotal(7)
	before := testutil.ToFloat64(metrics.VideosTotalRefreshErrors)

	r := newRefresher(&stubCounter{err: errors.New("connection refused")})

	_, err := r.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "count videos")
	assert.Equal(t, 7.0, testutil.ToFloat64(metrics.VideosTotal), "gauge keeps its last value")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.VideosTotalRefreshErrors))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Metrics.RunsTotal.WithLabelValues(StatusFailure)))
	assert.Zero(t, testutil.ToFloat64(r.Metrics.LastSuccessTimestamp))
}

func TestNewScheduler_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Schedule = "bogus"

	_, err := NewScheduler(cfg, newRefresher(&stubCounter{}), slog.Default())

	require.Error(t, err)
}

func TestScheduler_StartRunsImmediately(t *testing.T) {
	counter := &stubCounter{count: 3}
	r := newRefresher(counter)
	r.Timeout = 0

	cfg := DefaultConfig()
	cfg.Schedule = "@every 1h"
	cfg.Timeout = 2 * time.Second

	s, err := NewScheduler(cfg, r, r.Logger)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, r.Timeout, "timeout inherited from config")

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	assert.Equal(t, int32(1), counter.calls.Load())
}

func TestScheduler_RunsOnSchedule(t *testing.T) {
	counter := &stubCounter{count: 1}
	r := newRefresher(counter)

	cfg := DefaultConfig()
	cfg.Schedule = "@every 1s"

	s, err := NewScheduler(cfg, r, r.Logger)
	require.NoError(t, err)

	s.Start()
	assert.Eventually(t, func() bool { return counter.calls.Load() >= 2 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}
