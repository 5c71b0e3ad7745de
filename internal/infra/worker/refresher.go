// Package worker runs the background jobs of the API process.
//
// The only job today keeps the videos_total gauge in step with the
// database. It runs on a cron schedule inside the API process.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"randomyt/internal/observability/metrics"
	"randomyt/internal/repository"
)

// VideoCounter is the slice of the repository the refresher needs.
type VideoCounter interface {
	Count(ctx context.Context, filters repository.VideoFilters) (int64, error)
}

// Refresher counts the stored videos and publishes the result as a gauge.
type Refresher struct {
	Counter VideoCounter
	Metrics *JobMetrics
	Logger  *slog.Logger
	Timeout time.Duration
}

// Run performs one refresh. It returns the count it observed.
func (r *Refresher) Run(ctx context.Context) (int64, error) {
	start := time.Now()

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	count, err := r.Counter.Count(ctx, repository.VideoFilters{})
	r.Metrics.RecordJobDuration(time.Since(start).Seconds())
	if err != nil {
		r.Metrics.RecordJobRun(StatusFailure)
		metrics.RecordVideosTotalRefreshError()
		return 0, fmt.Errorf("count videos: %w", err)
	}

	metrics.UpdateVideosTotal(count)
	r.Metrics.RecordJobRun(StatusSuccess)
	r.Metrics.RecordLastSuccess()
	return count, nil
}

// Scheduler drives a Refresher from a cron schedule.
type Scheduler struct {
	cron      *cron.Cron
	refresher *Refresher
	logger    *slog.Logger
}

// NewScheduler validates cfg and registers the refresh job. The job does not
// run until Start is called.
func NewScheduler(cfg Config, refresher *Refresher, logger *slog.Logger) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	if refresher.Timeout == 0 {
		refresher.Timeout = cfg.Timeout
	}

	s := &Scheduler{
		cron:      cron.New(cron.WithLocation(loc), cron.WithParser(specParser)),
		refresher: refresher,
		logger:    logger,
	}
	if _, err := s.cron.AddFunc(cfg.Schedule, s.runOnce); err != nil {
		return nil, fmt.Errorf("add refresh job: %w", err)
	}
	return s, nil
}

func (s *Scheduler) runOnce() {
	count, err := s.refresher.Run(context.Background())
	if err != nil {
		s.logger.Error("video count refresh failed", slog.Any("error", err))
		return
	}
	s.logger.Debug("video count refreshed", slog.Int64("count", count))
}

// Start runs the job once immediately, then hands it to the cron scheduler.
func (s *Scheduler) Start() {
	s.runOnce()
	s.cron.Start()
}

// Stop halts scheduling and waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
