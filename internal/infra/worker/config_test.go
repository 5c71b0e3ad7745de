package worker

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "@every 5m", cfg.Schedule)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "standard five-field spec", mutate: func(c *Config) { c.Schedule = "*/10 * * * *" }},
		{name: "hourly descriptor", mutate: func(c *Config) { c.Schedule = "@hourly" }},
		{name: "named timezone", mutate: func(c *Config) { c.Timezone = "Europe/Madrid" }},
		{name: "garbage schedule", mutate: func(c *Config) { c.Schedule = "every now and then" }, wantErr: "invalid schedule"},
		{name: "empty schedule", mutate: func(c *Config) { c.Schedule = "" }, wantErr: "invalid schedule"},
		{name: "unknown timezone", mutate: func(c *Config) { c.Timezone = "Mars/Olympus" }, wantErr: "invalid timezone"},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: "timeout"},
		{name: "timeout too long", mutate: func(c *Config) { c.Timeout = time.Hour }, wantErr: "timeout"},
		{name: "timeout at upper bound", mutate: func(c *Config) { c.Timeout = 5 * time.Minute }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("REFRESH_TIMEZONE", "Asia/Tokyo")
	t.Setenv("REFRESH_TIMEOUT", "5s")

	cfg := LoadConfigFromEnv("@every 1m", slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	assert.Equal(t, Config{Schedule: "@every 1m", Timezone: "Asia/Tokyo", Timeout: 5 * time.Second}, cfg)
}

func TestLoadConfigFromEnv_FallsBack(t *testing.T) {
	t.Setenv("REFRESH_TIMEZONE", "Nowhere/Special")
	t.Setenv("REFRESH_TIMEOUT", "-1s")

	var buf bytes.Buffer
	cfg := LoadConfigFromEnv("not a schedule", slog.New(slog.NewTextHandler(&buf, nil)))

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Contains(t, buf.String(), "invalid refresh schedule")
	assert.Contains(t, buf.String(), "invalid refresh timezone")
	assert.Contains(t, buf.String(), "invalid refresh timeout")
}
