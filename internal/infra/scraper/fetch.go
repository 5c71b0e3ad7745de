package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"randomyt/internal/resilience/circuitbreaker"
)

const (
	maxBodySize = 10 * 1024 * 1024 // 10MB

	// DefaultUserAgent is a desktop browser agent; the watch page serves a
	// reduced document to unknown clients.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	defaultTimeout = 10 * time.Second
)

// StatusError is returned for a non-2xx upstream answer.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "unexpected status: " + e.Status
}

// fetcher performs one bounded GET for a single source: rate limited, guarded
// by the source's circuit breaker and never retried.
type fetcher struct {
	client    *http.Client
	breaker   *circuitbreaker.Breaker
	limiter   *RateLimiter
	timeout   time.Duration
	userAgent string
}

func newFetcher(name string, client *http.Client, limiter *RateLimiter, timeout time.Duration, userAgent string) *fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	settings := circuitbreaker.ForSource(name)
	settings.Benign = isClientSide

	return &fetcher{
		client:    client,
		breaker:   circuitbreaker.New(settings),
		limiter:   limiter,
		timeout:   timeout,
		userAgent: userAgent,
	}
}

// get fetches url and returns at most maxBodySize bytes of the body.
// Any non-2xx status is reported as *StatusError.
func (f *fetcher) get(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	if f.limiter != nil {
		if err := f.limiter.Allow(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	out, err := f.breaker.Execute(func() (any, error) {
		return f.do(ctx, url)
	})
	if err != nil {
		return nil, err
	}
	return out.([]byte), nil
}

func (f *fetcher) do(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}

// isClientSide keeps client-side answers (unknown video, bad request) and
// caller cancellation from opening the circuit. Only 429, 5xx and transport
// failures count against the upstream.
func isClientSide(err error) bool {
	if errors.Is(err, context.Canceled) {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 && statusErr.StatusCode != http.StatusTooManyRequests
	}
	return false
}
