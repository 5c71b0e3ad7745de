// Package retry waits out transient failures with capped exponential backoff.
// Only the start-up database connection uses it; metadata sources are never retried.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"time"
)

// Policy describes how often and how patiently an operation is retried.
type Policy struct {
	Attempts   int
	FirstDelay time.Duration
	MaxDelay   time.Duration
	Factor     float64
	// Jitter adds up to this fraction of each delay at random, 0 to 1.
	Jitter float64
}

// Startup is the policy for reaching the database while it may still be
// booting next to the service: six attempts spread over roughly fifteen seconds.
func Startup() Policy {
	return Policy{
		Attempts:   6,
		FirstDelay: 500 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Factor:     2,
		Jitter:     0.1,
	}
}

// transientError marks an error as worth another attempt.
type transientError struct{ err error }

func (e *transientError) Error() string { return "transient: " + e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// Transient wraps err so Do retries it. Transient(nil) is nil.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// IsTransient reports whether err should be retried: it was wrapped with
// Transient or it is a network timeout. Context errors never are.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var t *transientError
	if errors.As(err, &t) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Do calls fn until it succeeds, returns a non-transient error, the policy's
// attempts run out or ctx is done. The returned error wraps fn's last error.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	attempts := max(p.Attempts, 1)
	delay := p.FirstDelay

	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(ctx); err == nil {
			if attempt > 1 {
				slog.Info("operation succeeded after retry", slog.Int("attempt", attempt))
			}
			return nil
		}
		if !IsTransient(err) {
			return err
		}
		if attempt == attempts {
			return fmt.Errorf("gave up after %d attempts: %w", attempts, err)
		}

		wait := withJitter(delay, p.Jitter)
		slog.Warn("operation failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("attempts", attempts),
			slog.Duration("wait", wait),
			slog.Any("error", err))

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry aborted: %w", errors.Join(ctx.Err(), err))
		}

		delay = min(time.Duration(float64(delay)*p.Factor), p.MaxDelay)
	}
}

func withJitter(d time.Duration, fraction float64) time.Duration {
	if fraction <= 0 || d <= 0 {
		return d
	}
	fraction = min(fraction, 1)
	// #nosec G404 -- backoff jitter does not need a cryptographic source.
	return d + time.Duration(rand.Float64()*fraction*float64(d))
}
