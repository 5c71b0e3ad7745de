// Package pagination provides offset pagination helpers shared by the search
// endpoints: query parsing, page arithmetic and the page response model.
package pagination

import (
	envcfg "randomyt/pkg/config"
)

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage     int // Default page number (typically 1)
	DefaultPageSize int // Default items per page, also used when pageSize < 1
	MaxPageSize     int // Larger page sizes are capped to this value
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, pageSize=30, max=100
func DefaultConfig() Config {
	return Config{
		DefaultPage:     1,
		DefaultPageSize: 30,
		MaxPageSize:     100,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE_SIZE: Default items per page
//   - PAGINATION_MAX_PAGE_SIZE: Maximum items per page
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	def := DefaultConfig()
	cfg := Config{
		DefaultPage:     def.DefaultPage,
		DefaultPageSize: envcfg.GetEnvInt("PAGINATION_DEFAULT_PAGE_SIZE", def.DefaultPageSize),
		MaxPageSize:     envcfg.GetEnvInt("PAGINATION_MAX_PAGE_SIZE", def.MaxPageSize),
	}
	if cfg.MaxPageSize < 1 {
		cfg.MaxPageSize = def.MaxPageSize
	}
	if cfg.DefaultPageSize < 1 || cfg.DefaultPageSize > cfg.MaxPageSize {
		cfg.DefaultPageSize = min(def.DefaultPageSize, cfg.MaxPageSize)
	}
	return cfg
}
