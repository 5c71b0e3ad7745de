package pagination

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrInvalidPage is returned for a page parameter that is not a positive integer.
var ErrInvalidPage = errors.New("invalid query parameter: page must be a positive integer")

// ErrInvalidPageSize is returned for a pageSize parameter that is not an integer.
var ErrInvalidPageSize = errors.New("invalid query parameter: pageSize must be an integer")

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page     int // 1-based page number
	PageSize int // Items per page
}

// ParseQueryParams parses the page and pageSize query parameters.
//
// Missing parameters take their defaults. pageSize is normalized rather than
// rejected: values above config.MaxPageSize are capped and values below 1
// fall back to config.DefaultPageSize.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page:     config.DefaultPage,
		PageSize: config.DefaultPageSize,
	}

	q := r.URL.Query()
	if pageStr := q.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, ErrInvalidPage
		}
		params.Page = page
	}

	if sizeStr := q.Get("pageSize"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return params, ErrInvalidPageSize
		}
		params.PageSize = size
	}

	return params.WithDefaults(config), nil
}
