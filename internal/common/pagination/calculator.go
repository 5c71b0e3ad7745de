package pagination

// CalculateOffset calculates the database OFFSET value based on page number and page size.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Examples:
//   - Page 1, Size 30 -> Offset 0
//   - Page 2, Size 30 -> Offset 30
//   - Page 3, Size 10 -> Offset 20
func CalculateOffset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// CalculateTotalPages returns ceil(total / pageSize), or 0 when there is nothing to page.
//
// Examples:
//   - Total 0, Size 30 -> 0 pages
//   - Total 10, Size 30 -> 1 page
//   - Total 31, Size 30 -> 2 pages
func CalculateTotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
