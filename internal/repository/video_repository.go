package repository

import (
	"context"
	"errors"
	"time"

	"randomyt/internal/domain/entity"
)

// ErrDuplicate is returned by Create when a video with the same id already exists.
var ErrDuplicate = errors.New("repository: duplicate video id")

// SortOrder orders search results by upload date.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// VideoFilters contains optional filters shared by random sampling, counting and search.
type VideoFilters struct {
	From       *time.Time // Optional: upload_date >= From
	To         *time.Time // Optional: upload_date < To
	ExcludeIDs []string   // Optional: ids that must not be returned
}

type VideoRepository interface {
	// Get returns (nil, nil) when the video does not exist.
	Get(ctx context.Context, id string) (*entity.Video, error)
	// Create inserts a new video. It returns ErrDuplicate if the id is taken.
	Create(ctx context.Context, video *entity.Video) error
	// Random returns one uniformly sampled video matching filters, or (nil, nil) when none match.
	Random(ctx context.Context, filters VideoFilters) (*entity.Video, error)
	// Count returns the number of videos matching filters.
	Count(ctx context.Context, filters VideoFilters) (int64, error)
	// Search returns one page of videos matching filters ordered by upload date.
	Search(ctx context.Context, filters VideoFilters, sort SortOrder, offset, limit int) ([]*entity.Video, error)
}
