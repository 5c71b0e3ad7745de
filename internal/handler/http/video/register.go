// Package video exposes the video use cases over HTTP.
package video

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"randomyt/internal/common/pagination"
	videoUC "randomyt/internal/usecase/video"
)

// Handlers carries the dependencies shared by every video route.
type Handlers struct {
	Svc        *videoUC.Service
	Pagination pagination.Config
	Logger     *slog.Logger
}

// Routes configures Register.
type Routes struct {
	// RootRedirectURL is the target of GET /.
	RootRedirectURL string

	// PublishLimit wraps POST /publish. Nil leaves the route unthrottled.
	PublishLimit func(http.Handler) http.Handler
}

// Register mounts the video API on mux.
func Register(mux *http.ServeMux, h Handlers, routes Routes) {
	publish := http.Handler(PublishHandler{h})
	if routes.PublishLimit != nil {
		publish = routes.PublishLimit(publish)
	}

	mux.Handle("GET /{$}", RootHandler{URL: routes.RootRedirectURL})
	mux.Handle("GET /ping", PingHandler{})
	mux.Handle("POST /publish", publish)

	mux.Handle("GET /random", RandomHandler{h})
	mux.Handle("PUT /random", RandomHandler{h})
	mux.Handle("GET /random/day", RandomByDayHandler{h})
	mux.Handle("PUT /random/day", RandomByDayHandler{h})
	mux.Handle("GET /random/interval", RandomByIntervalHandler{h})
	mux.Handle("PUT /random/interval", RandomByIntervalHandler{h})

	mux.Handle("GET /find/{video_id}", FindHandler{h})
	mux.Handle("GET /count", CountHandler{h})
	mux.Handle("GET /search/day", SearchByDayHandler{h})
	mux.Handle("GET /search/interval", SearchByIntervalHandler{h})
}

func (h Handlers) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

var errInvalidBody = errors.New("invalid request body")

// decodeBody decodes a JSON request body into dst. Unknown fields are ignored.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return errInvalidBody
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errInvalidBody
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return maxErr
		}
		return errInvalidBody
	}
	return nil
}
