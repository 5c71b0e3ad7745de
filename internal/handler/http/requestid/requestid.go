// Package requestid assigns every HTTP request an ID that is echoed back to the
// client and attached to log lines.
package requestid

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const (
	// RequestIDKey is the context key for storing request IDs.
	RequestIDKey contextKey = "request_id"
	// RequestIDHeader is the HTTP header carrying the request ID in both directions.
	RequestIDHeader = "X-Request-ID"

	maxIDLength = 128
)

// FromContext retrieves the request ID from the context, or "" when unset.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Logger returns base annotated with the request ID found in ctx.
func Logger(ctx context.Context, base *slog.Logger) *slog.Logger {
	if id := FromContext(ctx); id != "" {
		return base.With(slog.String("request_id", id))
	}
	return base
}

// Middleware propagates a client supplied X-Request-ID or generates a UUID v4.
// Client IDs that are too long or contain characters outside [A-Za-z0-9._-]
// are replaced, since they end up verbatim in log lines.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !valid(id) {
			id = uuid.New().String()
			r.Header.Set(RequestIDHeader, id)
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}

func valid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.':
		default:
			return false
		}
	}
	return true
}
