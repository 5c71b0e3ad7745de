package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts paginated search requests.
	// Labels: status (HTTP status code), page_range (page bucket: 1-10, 11-50, etc.)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_search_requests_total",
			Help: "Total number of paginated video search requests",
		},
		[]string{"status", "page_range"},
	)

	// PageSize tracks the effective page sizes requested.
	PageSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "video_search_page_size",
			Help:    "Effective page size of video search requests",
			Buckets: []float64{1, 10, 30, 50, 100},
		},
	)
)

// RecordRequest records a paginated request.
func RecordRequest(statusCode int, params Params) {
	RequestsTotal.WithLabelValues(strconv.Itoa(statusCode), getPageRangeBucket(params.Page)).Inc()
	PageSize.Observe(float64(params.PageSize))
}

// getPageRangeBucket returns the page range bucket for a given page number.
func getPageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
