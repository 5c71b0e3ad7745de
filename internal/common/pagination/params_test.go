package pagination_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"randomyt/internal/common/pagination"
)

func TestParseQueryParams(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	tests := []struct {
		name    string
		query   string
		want    pagination.Params
		wantErr error
	}{
		{
			name:  "valid parameters",
			query: "page=2&pageSize=50",
			want:  pagination.Params{Page: 2, PageSize: 50},
		},
		{
			name:  "no parameters (use defaults)",
			query: "",
			want:  pagination.Params{Page: 1, PageSize: 30},
		},
		{
			name:  "only page parameter",
			query: "page=3",
			want:  pagination.Params{Page: 3, PageSize: 30},
		},
		{
			name:  "page size above maximum is capped",
			query: "pageSize=500",
			want:  pagination.Params{Page: 1, PageSize: 100},
		},
		{
			name:  "page size zero falls back to default",
			query: "pageSize=0",
			want:  pagination.Params{Page: 1, PageSize: 30},
		},
		{
			name:  "negative page size falls back to default",
			query: "pageSize=-4",
			want:  pagination.Params{Page: 1, PageSize: 30},
		},
		{
			name:    "page zero",
			query:   "page=0",
			wantErr: pagination.ErrInvalidPage,
		},
		{
			name:    "non-numeric page",
			query:   "page=two",
			wantErr: pagination.ErrInvalidPage,
		},
		{
			name:    "non-numeric page size",
			query:   "pageSize=lots",
			wantErr: pagination.ErrInvalidPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/search/day?"+tt.query, nil)
			got, err := pagination.ParseQueryParams(req, config)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseQueryParams() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQueryParams() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseQueryParams() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParams_WithDefaults(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()
	got := pagination.Params{Page: -1, PageSize: 1000}.WithDefaults(config)
	want := pagination.Params{Page: 1, PageSize: 100}
	if got != want {
		t.Errorf("WithDefaults() = %+v, want %+v", got, want)
	}
}

func TestParams_Offset(t *testing.T) {
	t.Parallel()

	if got := (pagination.Params{Page: 3, PageSize: 30}).Offset(); got != 60 {
		t.Errorf("Offset() = %d, want 60", got)
	}
}
