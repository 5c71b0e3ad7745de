// Package http holds the HTTP plumbing shared by every route: health probes,
// access logging, panic recovery, request metrics and client throttling.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"randomyt/internal/handler/http/respond"
)

// Check statuses reported by /health.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthResponse represents the JSON response of /health.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"` // RFC 3339, UTC
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// BreakerReporter exposes the circuit breaker state of a metadata source.
type BreakerReporter interface {
	Name() string
	BreakerState() string
}

// HealthHandler reports database connectivity and the breaker state of every
// metadata source. Only the database decides the overall status: with every
// source open, publishes still succeed with the placeholder record.
type HealthHandler struct {
	DB      *sql.DB
	Version string
	Sources []BreakerReporter
	Logger  *slog.Logger
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus, 2)
	healthy := true

	if h.DB != nil {
		checks["database"] = h.checkDatabase(ctx)
		healthy = checks["database"].Status != StatusUnhealthy
	} else {
		checks["database"] = CheckStatus{Status: StatusUnhealthy, Message: "not configured"}
		healthy = false
	}

	if len(h.Sources) > 0 {
		checks["sources"] = h.checkSources()
	}

	status, code := StatusHealthy, http.StatusOK
	if !healthy {
		status, code = StatusUnhealthy, http.StatusServiceUnavailable
	}

	if !healthy && h.Logger != nil {
		h.Logger.Warn("health check failed", slog.String("database", checks["database"].Message))
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// checkDatabase pings the database and reports pool statistics. A pool at or
// above 80% utilization is degraded but still serves traffic.
func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: StatusUnhealthy, Message: respond.SanitizeError(err)}
	}

	stats := h.DB.Stats()
	details := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}

	if stats.MaxOpenConnections == 0 {
		return CheckStatus{
			Status:  StatusDegraded,
			Message: "connection pool max connections not configured",
			Details: details,
		}
	}

	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= 80.0 {
		return CheckStatus{
			Status:  StatusDegraded,
			Message: "connection pool utilization above 80%",
			Details: details,
		}
	}
	return CheckStatus{Status: StatusHealthy, Details: details}
}

// checkSources lists the breaker state per source. The check is degraded when
// at least one breaker is not closed.
func (h *HealthHandler) checkSources() CheckStatus {
	details := make(map[string]any, len(h.Sources))
	open := 0
	for _, s := range h.Sources {
		state := s.BreakerState()
		details[s.Name()] = state
		if state != "closed" {
			open++
		}
	}

	if open > 0 {
		return CheckStatus{
			Status:  StatusDegraded,
			Message: "one or more metadata sources are short-circuited",
			Details: details,
		}
	}
	return CheckStatus{Status: StatusHealthy, Details: details}
}

// ReadyHandler answers the readiness probe once the database accepts connections.
type ReadyHandler struct {
	DB *sql.DB
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}
	if err := h.DB.PingContext(ctx); err != nil {
		http.Error(w, "database not ready", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// LiveHandler answers the liveness probe.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}
