package worker

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	envcfg "randomyt/pkg/config"
)

// Default values for the refresh job.
const (
	DefaultSchedule = "@every 5m"
	DefaultTimezone = "UTC"
	DefaultTimeout  = 30 * time.Second

	minTimeout = time.Second
	maxTimeout = 5 * time.Minute
)

// specParser accepts the five-field standard syntax and descriptors such as @every.
var specParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Config controls when and how long the refresh job runs.
type Config struct {
	// Schedule is a cron expression or descriptor. Default: "@every 5m"
	Schedule string

	// Timezone is the IANA location the schedule is evaluated in. Default: "UTC"
	Timezone string

	// Timeout bounds a single run. Default: 30s
	Timeout time.Duration
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	return Config{
		Schedule: DefaultSchedule,
		Timezone: DefaultTimezone,
		Timeout:  DefaultTimeout,
	}
}

// Validate checks the schedule and timezone, and that the timeout lies within [1s, 5m].
func (c Config) Validate() error {
	if _, err := specParser.Parse(c.Schedule); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", c.Schedule, err)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return envcfg.ValidateDurationRange("timeout", c.Timeout, minTimeout, maxTimeout)
}

// LoadConfigFromEnv builds a Config from the given schedule plus the
// REFRESH_TIMEZONE and REFRESH_TIMEOUT variables. Invalid values fall back to
// the defaults with a warning so a bad refresh setting never blocks start-up.
func LoadConfigFromEnv(schedule string, logger *slog.Logger) Config {
	cfg := Config{
		Schedule: schedule,
		Timezone: envcfg.GetEnvString("REFRESH_TIMEZONE", DefaultTimezone),
		Timeout:  envcfg.GetEnvDuration("REFRESH_TIMEOUT", DefaultTimeout),
	}

	if _, err := specParser.Parse(cfg.Schedule); err != nil {
		logger.Warn("invalid refresh schedule, using default",
			slog.String("schedule", cfg.Schedule),
			slog.String("default", DefaultSchedule),
			slog.Any("error", err))
		cfg.Schedule = DefaultSchedule
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		logger.Warn("invalid refresh timezone, using default",
			slog.String("timezone", cfg.Timezone),
			slog.String("default", DefaultTimezone))
		cfg.Timezone = DefaultTimezone
	}
	if envcfg.ValidateDurationRange("timeout", cfg.Timeout, minTimeout, maxTimeout) != nil {
		logger.Warn("invalid refresh timeout, using default",
			slog.Duration("timeout", cfg.Timeout),
			slog.Duration("default", DefaultTimeout))
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}
