package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_PathNormalization(t *testing.T) {
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))

	tests := []struct {
		name         string
		path         string
		expectedPath string
	}{
		{name: "find with video id", path: "/find/dQw4w9WgXcQ", expectedPath: "/find/:video_id"},
		{name: "static endpoint", path: "/random", expectedPath: "/random"},
		{name: "query string dropped", path: "/search/day?day=01/01/2020", expectedPath: "/search/day"},
		{name: "unknown path", path: "/.git/config", expectedPath: "/unmatched"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			handler.ServeHTTP(httptest.NewRecorder(), req)

			count := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, tt.expectedPath, "200"))
			assert.Equal(t, float64(1), count)
		})
	}
}

func TestMetricsMiddleware_CardinalityReduction(t *testing.T) {
	httpRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	ids := []string{"aaaaaaaaaaa", "bbbbbbbbbbb", "ccccccccccc", "ddddddddddd"}
	for _, id := range ids {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/find/"+id, nil))
	}

	count := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/find/:video_id", "404"))
	assert.Equal(t, float64(len(ids)), count)
	assert.Equal(t, 1, testutil.CollectAndCount(httpRequestsTotal))
}

func TestMetricsMiddleware_StatusCodes(t *testing.T) {
	httpRequestsTotal.Reset()

	codes := []int{http.StatusCreated, http.StatusBadRequest, http.StatusConflict, http.StatusInternalServerError}
	for _, code := range codes {
		handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/publish", nil))
	}

	for _, status := range []string{"201", "400", "409", "500"} {
		count := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/publish", status))
		assert.Equal(t, float64(1), count, "status %s", status)
	}
}

func TestMetricsMiddleware_InFlight(t *testing.T) {
	var during float64
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = testutil.ToFloat64(httpRequestsInFlight)
	}))

	before := testutil.ToFloat64(httpRequestsInFlight)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, before+1, during)
	assert.Equal(t, before, testutil.ToFloat64(httpRequestsInFlight))
}

func TestMetricsMiddleware_ResponseSize(t *testing.T) {
	httpResponseSize.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 500)))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/count", nil))

	assert.Equal(t, 1, testutil.CollectAndCount(httpResponseSize))
}

func TestMetricsHandler(t *testing.T) {
	httpRequestsTotal.WithLabelValues(http.MethodGet, "/ping", "200").Inc()

	rec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "http_requests_total")
}
