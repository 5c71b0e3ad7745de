package pagination

// Page is one page of results together with its navigation metadata.
//
// NextPage is set only when CurrentPage < TotalPages and PreviousPage only
// when CurrentPage > 1.
type Page[T any] struct {
	Results      []T   `json:"results"`
	CurrentPage  int   `json:"currentPage"`
	PageSize     int   `json:"pageSize"`
	TotalPages   int   `json:"totalPages"`
	Total        int64 `json:"total"`
	NextPage     *int  `json:"nextPage,omitempty"`
	PreviousPage *int  `json:"previousPage,omitempty"`
}

// NewPage builds a Page for results found at params out of total matches.
func NewPage[T any](results []T, params Params, total int64) Page[T] {
	if results == nil {
		results = []T{}
	}
	p := Page[T]{
		Results:     results,
		CurrentPage: params.Page,
		PageSize:    params.PageSize,
		TotalPages:  CalculateTotalPages(total, params.PageSize),
		Total:       total,
	}
	if p.CurrentPage < p.TotalPages {
		next := p.CurrentPage + 1
		p.NextPage = &next
	}
	if p.CurrentPage > 1 {
		prev := p.CurrentPage - 1
		p.PreviousPage = &prev
	}
	return p
}

// Map converts the results of a page, keeping its metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(p.Results))
	for i, r := range p.Results {
		out[i] = fn(r)
	}
	return Page[U]{
		Results:      out,
		CurrentPage:  p.CurrentPage,
		PageSize:     p.PageSize,
		TotalPages:   p.TotalPages,
		Total:        p.Total,
		NextPage:     p.NextPage,
		PreviousPage: p.PreviousPage,
	}
}
