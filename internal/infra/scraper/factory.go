package scraper

import (
	"fmt"
	"log/slog"
	"net/http"

	"randomyt/internal/config"
	"randomyt/internal/usecase/metadata"
)

// Factory builds the configured metadata sources. All sources share one HTTP
// client; each gets its own rate limiter and circuit breaker.
type Factory struct {
	client *http.Client
	rps    float64
	burst  int
	logger *slog.Logger
}

// NewFactory creates a Factory. The client should not set its own Timeout;
// each source bounds its calls with its configured timeout.
func NewFactory(client *http.Client, requestsPerSecond float64, burst int, logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{client: client, rps: requestsPerSecond, burst: burst, logger: logger}
}

// Build creates the enabled sources in the order given.
func (f *Factory) Build(settings []config.SourceSettings) ([]*Source, error) {
	sources := make([]*Source, 0, len(settings))
	for _, s := range settings {
		if !s.IsEnabled() {
			f.logger.Info("metadata source disabled", slog.String("source", s.Name))
			continue
		}

		opts := Options{
			URL:       s.URL,
			Timeout:   s.Timeout,
			UserAgent: s.UserAgent,
			APIKey:    s.APIKey,
			Client:    f.client,
			Limiter:   NewRateLimiter(f.rps, f.burst),
			Logger:    f.logger,
		}

		var src *Source
		switch s.Name {
		case config.SourceWatchPage:
			src = NewWatchPage(opts)
		case config.SourceDataAPI:
			if s.APIKey == "" {
				f.logger.Warn("data API source has no API key, it will be skipped at resolve time")
			}
			src = NewDataAPI(opts)
		case config.SourceNoEmbed:
			src = NewNoEmbed(opts)
		case config.SourceOEmbed:
			src = NewOEmbed(opts)
		default:
			return nil, fmt.Errorf("unknown metadata source %q", s.Name)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// AsMetadataSources converts built sources to the resolver's interface.
func AsMetadataSources(sources []*Source) []metadata.Source {
	out := make([]metadata.Source, len(sources))
	for i, s := range sources {
		out[i] = s
	}
	return out
}
