// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"randomyt/internal/repository"

	"github.com/lib/pq"
)

// VideoQueryBuilder builds WHERE clauses for video queries.
// The same clause is shared by COUNT, random sampling and paged SELECTs.
type VideoQueryBuilder struct{}

// NewVideoQueryBuilder creates a new query builder instance.
func NewVideoQueryBuilder() *VideoQueryBuilder {
	return &VideoQueryBuilder{}
}

// BuildWhereClause returns a WHERE clause (including the keyword) and its
// arguments, numbered from $1. It returns an empty clause when no filter is set.
func (qb *VideoQueryBuilder) BuildWhereClause(filters repository.VideoFilters) (clause string, args []interface{}) {
	var conditions []string

	if filters.From != nil {
		args = append(args, filters.From.UTC())
		conditions = append(conditions, fmt.Sprintf("upload_date >= $%d", len(args)))
	}
	if filters.To != nil {
		args = append(args, filters.To.UTC())
		conditions = append(conditions, fmt.Sprintf("upload_date < $%d", len(args)))
	}
	if len(filters.ExcludeIDs) > 0 {
		args = append(args, pq.Array(filters.ExcludeIDs))
		conditions = append(conditions, fmt.Sprintf("id <> ALL($%d)", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// OrderBy returns the ORDER BY clause for a sort order. Unknown orders sort ascending.
// The id tiebreaker keeps pages stable when upload dates collide.
func (qb *VideoQueryBuilder) OrderBy(sort repository.SortOrder) string {
	if sort == repository.SortDesc {
		return "ORDER BY upload_date DESC, id DESC"
	}
	return "ORDER BY upload_date ASC, id ASC"
}
