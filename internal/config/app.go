// Package config loads the service configuration from the environment,
// with an optional YAML file describing the metadata sources.
package config

import (
	"errors"
	"fmt"
	"time"

	envcfg "randomyt/pkg/config"
)

// Default values used when the corresponding variable is unset.
const (
	DefaultLimitViews      int64 = 2000
	DefaultRootRedirectURL       = "https://beta.lueyo.es/randomyt/?p=create"
	DefaultSourceTimeout         = 10 * time.Second
	DefaultRefreshSchedule       = "@every 5m"
)

// AppConfig holds the configuration of the API process.
// It is read once at start and treated as immutable afterwards.
type AppConfig struct {
	// DatabaseURL is the Postgres DSN. Required.
	DatabaseURL string

	// Addr is the HTTP listen address. Default: ":8080"
	Addr string

	// Version is reported by /health. Default: "dev"
	Version string

	// LimitViews is the view-count ceiling; a video with more views is rejected.
	LimitViews int64

	// RootRedirectURL is where GET / redirects to.
	RootRedirectURL string

	// Sources lists the metadata sources in priority order.
	Sources []SourceSettings

	// SourceRPS and SourceBurst pace the requests sent to each upstream.
	SourceRPS   float64
	SourceBurst int

	// RefreshSchedule is the cron spec for refreshing the stored-video gauge.
	RefreshSchedule string

	// PublishPerMinute caps POST /publish calls per client IP. Default 0 leaves it off.
	PublishPerMinute int

	// TraceSampleRatio is the fraction of new traces that are sampled. Default: 1
	TraceSampleRatio float64

	// CORSAllowedOrigins is the origin whitelist; "*" allows any origin.
	CORSAllowedOrigins []string

	// ShutdownTimeout bounds graceful shutdown. Default: 5s
	ShutdownTimeout time.Duration
}

// Load reads AppConfig from the environment. When SOURCES_FILE is set, the
// metadata sources are read from that YAML file instead of the built-in order.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		DatabaseURL:        envcfg.GetEnvString("DATABASE_URL", ""),
		Addr:               ":" + envcfg.GetEnvString("PORT", "8080"),
		Version:            envcfg.GetEnvString("VERSION", "dev"),
		LimitViews:         envcfg.GetEnvInt64("LIMIT_VIEWS", DefaultLimitViews),
		RootRedirectURL:    envcfg.GetEnvString("ROOT_REDIRECT_URL", DefaultRootRedirectURL),
		SourceRPS:          envcfg.GetEnvFloat("SOURCE_RPS", 5),
		SourceBurst:        envcfg.GetEnvInt("SOURCE_BURST", 10),
		RefreshSchedule:    envcfg.GetEnvString("METRICS_REFRESH_SCHEDULE", DefaultRefreshSchedule),
		PublishPerMinute:   envcfg.GetEnvInt("PUBLISH_RATE_PER_MINUTE", 0),
		TraceSampleRatio:   envcfg.GetEnvFloat("TRACE_SAMPLE_RATIO", 1),
		CORSAllowedOrigins: envcfg.GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ShutdownTimeout:    envcfg.GetEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	timeout := envcfg.GetEnvDuration("SOURCE_TIMEOUT", DefaultSourceTimeout)
	if path := envcfg.GetEnvString("SOURCES_FILE", ""); path != "" {
		file, err := LoadSourcesFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Sources = file.Sources
	} else {
		cfg.Sources = DefaultSources()
	}
	cfg.Sources = resolveSources(cfg.Sources, timeout)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness.
func (c *AppConfig) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL must be set")
	}
	if err := envcfg.ValidatePositiveInt("LIMIT_VIEWS", c.LimitViews); err != nil {
		return err
	}
	if c.SourceRPS <= 0 {
		return fmt.Errorf("SOURCE_RPS must be positive, got %v", c.SourceRPS)
	}
	if err := envcfg.ValidatePositiveInt("SOURCE_BURST", int64(c.SourceBurst)); err != nil {
		return err
	}
	if err := envcfg.ValidatePositiveDuration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout); err != nil {
		return err
	}
	if c.PublishPerMinute < 0 {
		return fmt.Errorf("PUBLISH_RATE_PER_MINUTE cannot be negative, got %d", c.PublishPerMinute)
	}
	if c.TraceSampleRatio < 0 || c.TraceSampleRatio > 1 {
		return fmt.Errorf("TRACE_SAMPLE_RATIO must be within [0, 1], got %v", c.TraceSampleRatio)
	}
	if c.RefreshSchedule == "" {
		return errors.New("METRICS_REFRESH_SCHEDULE cannot be empty")
	}
	return validateSources(c.Sources)
}
