// Package middleware contains the cross-origin policy applied in front of the API.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig holds the cross-origin policy.
type CORSConfig struct {
	// Validator decides which origins get CORS headers.
	Validator OriginValidator

	// AllowedMethods is sent in preflight responses.
	AllowedMethods []string

	// AllowedHeaders is sent in preflight responses.
	AllowedHeaders []string

	// ExposedHeaders lists response headers readable by browser scripts.
	ExposedHeaders []string

	// MaxAge is how long, in seconds, browsers may cache a preflight result.
	MaxAge int

	// Logger receives rejected origins at debug level. Optional.
	Logger *slog.Logger
}

// NewCORSConfig returns the policy for origins with the API's methods and headers.
func NewCORSConfig(origins []string, logger *slog.Logger) CORSConfig {
	return CORSConfig{
		Validator:      NewOriginValidator(origins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Trace-Id"},
		MaxAge:         86400,
		Logger:         logger,
	}
}

// CORS returns middleware applying config. Requests without an Origin header
// pass through untouched. Disallowed origins get no CORS headers, so the
// browser blocks the response. Allowed preflights are answered with 204.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	exposed := strings.Join(config.ExposedHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")
			if !config.Validator.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Debug("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path))
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			if exposed != "" {
				w.Header().Set("Access-Control-Expose-Headers", exposed)
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
