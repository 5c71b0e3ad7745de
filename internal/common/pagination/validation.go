package pagination

// WithDefaults normalizes Params against config.
//
// Rules:
//   - If page <= 0, set to config.DefaultPage
//   - If pageSize <= 0, set to config.DefaultPageSize
//   - If pageSize > config.MaxPageSize, cap to config.MaxPageSize
func (p Params) WithDefaults(config Config) Params {
	if p.Page <= 0 {
		p.Page = config.DefaultPage
	}
	if p.PageSize <= 0 {
		p.PageSize = config.DefaultPageSize
	}
	if p.PageSize > config.MaxPageSize {
		p.PageSize = config.MaxPageSize
	}
	return p
}

// Offset returns the row offset of the page described by p.
func (p Params) Offset() int {
	return CalculateOffset(p.Page, p.PageSize)
}
