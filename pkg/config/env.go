// Package config provides typed environment variable accessors with defaults.
//
// Every getter falls back to its default when the variable is unset or empty.
// Unparseable values also fall back, with a warning logged so that a typo in a
// deployment manifest is visible instead of silently ignored.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the value of an environment variable or the default value if not set.
//
//	apiURL := GetEnvString("YOUTUBE_API_URL", "https://www.googleapis.com/youtube/v3")
func GetEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the value of an environment variable as an int.
func GetEnvInt(key string, defaultValue int) int {
	v, ok := parseEnv(key, func(s string) (int, error) { return strconv.Atoi(s) })
	if !ok {
		return defaultValue
	}
	return v
}

// GetEnvInt64 returns the value of an environment variable as an int64.
//
//	limit := GetEnvInt64("LIMIT_VIEWS", 2000)
func GetEnvInt64(key string, defaultValue int64) int64 {
	v, ok := parseEnv(key, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
	if !ok {
		return defaultValue
	}
	return v
}

// GetEnvFloat returns the value of an environment variable as a float64.
func GetEnvFloat(key string, defaultValue float64) float64 {
	v, ok := parseEnv(key, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	if !ok {
		return defaultValue
	}
	return v
}

// GetEnvDuration returns the value of an environment variable as a time.Duration.
// The value must be parseable by time.ParseDuration (e.g., "10s", "1m30s").
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, ok := parseEnv(key, time.ParseDuration)
	if !ok {
		return defaultValue
	}
	return v
}

// GetEnvStringList returns a comma-separated list of strings from an environment variable.
// Values are trimmed and empty entries dropped.
//
//	// CORS_ALLOWED_ORIGINS="https://a.example, https://b.example"
//	origins := GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{"*"})
func GetEnvStringList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}
	return result
}

func parseEnv[T any](key string, parse func(string) (T, error)) (T, bool) {
	var zero T
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return zero, false
	}
	v, err := parse(raw)
	if err != nil {
		slog.Warn("invalid value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.String("error", err.Error()))
		return zero, false
	}
	return v, true
}
