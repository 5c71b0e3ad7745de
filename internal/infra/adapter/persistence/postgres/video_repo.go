package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"randomyt/internal/domain/entity"
	"randomyt/internal/observability/metrics"
	"randomyt/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const videoColumns = `id, title, posted_date, upload_date, tags, views`

type VideoRepo struct {
	db           *sql.DB
	queryBuilder *VideoQueryBuilder
}

func NewVideoRepo(db *sql.DB) repository.VideoRepository {
	return &VideoRepo{
		db:           db,
		queryBuilder: NewVideoQueryBuilder(),
	}
}

func (repo *VideoRepo) Get(ctx context.Context, id string) (*entity.Video, error) {
	defer observe("get", time.Now())

	const query = `
SELECT ` + videoColumns + `
FROM videos
WHERE id = $1
LIMIT 1`
	video, err := scanVideo(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return video, nil
}

func (repo *VideoRepo) Create(ctx context.Context, video *entity.Video) error {
	defer observe("create", time.Now())

	const query = `
INSERT INTO videos (id, title, posted_date, upload_date, tags, views)
VALUES ($1, $2, $3, $4, $5, $6)`
	tags := video.Tags
	if tags == nil {
		tags = []string{}
	}
	_, err := repo.db.ExecContext(ctx, query,
		video.ID, video.Title, video.PostedDate.UTC(), video.UploadDate.UTC(), pq.Array(tags), video.Views)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Random samples uniformly among matching rows with ORDER BY random().
func (repo *VideoRepo) Random(ctx context.Context, filters repository.VideoFilters) (*entity.Video, error) {
	defer observe("random", time.Now())

	where, args := repo.queryBuilder.BuildWhereClause(filters)
	query := fmt.Sprintf(`
SELECT %s
FROM videos
%s
ORDER BY random()
LIMIT 1`, videoColumns, where)

	video, err := scanVideo(repo.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Random: %w", err)
	}
	return video, nil
}

func (repo *VideoRepo) Count(ctx context.Context, filters repository.VideoFilters) (int64, error) {
	defer observe("count", time.Now())

	where, args := repo.queryBuilder.BuildWhereClause(filters)
	query := `SELECT COUNT(*) FROM videos ` + where

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *VideoRepo) Search(ctx context.Context, filters repository.VideoFilters, sort repository.SortOrder, offset, limit int) ([]*entity.Video, error) {
	defer observe("search", time.Now())

	where, args := repo.queryBuilder.BuildWhereClause(filters)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`
SELECT %s
FROM videos
%s
%s
LIMIT $%d OFFSET $%d`, videoColumns, where, repo.queryBuilder.OrderBy(sort), len(args)-1, len(args))

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	videos := make([]*entity.Video, 0, limit)
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("Search: Scan: %w", err)
		}
		videos = append(videos, video)
	}
	return videos, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVideo(row rowScanner) (*entity.Video, error) {
	var (
		v    entity.Video
		tags pq.StringArray
	)
	if err := row.Scan(&v.ID, &v.Title, &v.PostedDate, &v.UploadDate, &tags, &v.Views); err != nil {
		return nil, err
	}
	v.PostedDate = v.PostedDate.UTC()
	v.UploadDate = v.UploadDate.UTC()
	v.Tags = []string(tags)
	if v.Tags == nil {
		v.Tags = []string{}
	}
	return &v, nil
}

// isUniqueViolation recognizes unique violations from both pgx and lib/pq drivers.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}

func observe(operation string, start time.Time) {
	metrics.RecordDBQuery(operation, time.Since(start))
}
