// Package circuitbreaker guards calls to one upstream with github.com/sony/gobreaker.
package circuitbreaker

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"randomyt/internal/observability/metrics"
)

// Settings tune when a breaker trips and how it recovers.
type Settings struct {
	// Upstream names the guarded dependency in logs and the breaker-state gauge.
	Upstream string

	// Probes is how many calls a half-open breaker lets through.
	Probes uint32

	// Window clears the closed-state counts on this period. Zero never clears.
	Window time.Duration

	// Cooldown is how long the breaker stays open before probing.
	Cooldown time.Duration

	// TripRatio is the failure share (0..1) that opens the breaker once
	// MinCalls calls have been counted in the current window.
	TripRatio float64
	MinCalls  uint32

	// Benign reports errors that must not count as failures. Nil counts every error.
	Benign func(err error) bool
}

// ForSource returns the settings used for a video metadata source. A tripped
// source is skipped by the resolution chain, so the cooldown is short.
func ForSource(name string) Settings {
	return Settings{
		Upstream:  name,
		Probes:    1,
		Window:    time.Minute,
		Cooldown:  30 * time.Second,
		TripRatio: 0.8,
		MinCalls:  5,
	}
}

// Breaker is a named gobreaker.CircuitBreaker.
type Breaker struct {
	cb       *gobreaker.CircuitBreaker
	upstream string
}

// New creates a breaker and publishes its initial closed state.
func New(s Settings) *Breaker {
	var isSuccessful func(error) bool
	if s.Benign != nil {
		benign := s.Benign
		isSuccessful = func(err error) bool { return err == nil || benign(err) }
	}

	b := &Breaker{upstream: s.Upstream}
	b.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:         s.Upstream,
		MaxRequests:  s.Probes,
		Interval:     s.Window,
		Timeout:      s.Cooldown,
		IsSuccessful: isSuccessful,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.Requests >= s.MinCalls &&
				float64(c.TotalFailures)/float64(c.Requests) >= s.TripRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("upstream", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.RecordBreakerState(name, stateValue(to))
		},
	})
	metrics.RecordBreakerState(s.Upstream, stateValue(gobreaker.StateClosed))
	return b
}

// Execute runs fn unless the breaker is open, in which case it returns
// gobreaker.ErrOpenState without calling fn. A half-open breaker that has used
// up its probes returns gobreaker.ErrTooManyRequests.
func (b *Breaker) Execute(fn func() (any, error)) (any, error) {
	return b.cb.Execute(fn)
}

// State returns "closed", "half-open" or "open".
func (b *Breaker) State() string { return b.cb.State().String() }

// Open reports whether calls are currently rejected.
func (b *Breaker) Open() bool { return b.cb.State() == gobreaker.StateOpen }

// Upstream returns the guarded dependency's name.
func (b *Breaker) Upstream() string { return b.upstream }

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
