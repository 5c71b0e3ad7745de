package video

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"randomyt/internal/common/pagination"
	"randomyt/internal/domain/entity"
	"randomyt/internal/observability/metrics"
	"randomyt/internal/observability/tracing"
	"randomyt/internal/repository"
	"randomyt/internal/usecase/metadata"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// MetadataResolver resolves the metadata of a video id.
// *metadata.Resolver is the production implementation.
type MetadataResolver interface {
	Resolve(ctx context.Context, videoID string) (metadata.Resolved, []metadata.Attempt, error)
}

// Service provides video use cases.
// Repo and Resolver are required; LimitViews is the inclusive view ceiling.
type Service struct {
	Repo       repository.VideoRepository
	Resolver   MetadataResolver
	LimitViews int64

	// Now overrides the clock in tests. Nil means time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

// Publish resolves the metadata of videoID and stores it.
// It returns the stored id, or one of the package's sentinel errors or a
// *StorageError describing why the video was rejected.
func (s *Service) Publish(ctx context.Context, videoID string) (string, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "video.Publish")
	defer span.End()
	span.SetAttributes(attribute.String("video.id", videoID))

	id, outcome, err := s.publish(ctx, videoID)
	metrics.RecordPublish(outcome)
	span.SetAttributes(attribute.String("publish.outcome", outcome))

	logger := s.logger().With(slog.String("video_id", videoID), slog.String("outcome", outcome))
	switch {
	case err == nil:
		logger.Info("video published")
	case outcome == metrics.PublishStorageError:
		span.RecordError(err)
		span.SetStatus(codes.Error, "storage error")
		logger.Error("video publish failed", slog.Any("error", err))
	default:
		logger.Info("video publish rejected", slog.Any("error", err))
	}
	return id, err
}

func (s *Service) publish(ctx context.Context, videoID string) (string, string, error) {
	if !entity.ValidateVideoID(videoID) {
		return "", metrics.PublishInvalidID, ErrInvalidVideoID
	}

	existing, err := s.Repo.Get(ctx, videoID)
	if err != nil {
		return "", metrics.PublishStorageError, &StorageError{Op: "get", Err: err}
	}
	if existing != nil {
		return "", metrics.PublishDuplicate, ErrDuplicateVideo
	}

	resolved, attempts, err := s.Resolver.Resolve(ctx, videoID)
	if err != nil {
		return "", metrics.PublishAcquisitionFailed, fmt.Errorf("%w: %v", ErrAcquisitionFailed, err)
	}
	if resolved.IsFallback() {
		s.logger().Warn("storing fallback metadata",
			slog.String("video_id", videoID),
			slog.Int("attempts", len(attempts)))
	}

	if resolved.ViewCount > s.LimitViews {
		return "", metrics.PublishViewLimitExceeded,
			fmt.Errorf("%w: %d views, limit is %d", ErrViewLimitExceeded, resolved.ViewCount, s.LimitViews)
	}
	if strings.TrimSpace(resolved.Title) == "" {
		return "", metrics.PublishInvalidMetadata, ErrInvalidMetadata
	}

	video := &entity.Video{
		ID:         videoID,
		Title:      resolved.Title,
		PostedDate: s.now().UTC(),
		UploadDate: resolved.UploadDate.UTC(),
		Tags:       resolved.Tags,
		Views:      resolved.ViewCount,
	}
	if err := video.Validate(s.LimitViews); err != nil {
		return "", metrics.PublishInvalidMetadata, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}

	if err := s.Repo.Create(ctx, video); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", metrics.PublishDuplicate, ErrDuplicateVideo
		}
		return "", metrics.PublishStorageError, &StorageError{Op: "create", Err: err}
	}
	return video.ID, metrics.PublishPublished, nil
}

// Get retrieves a single video by its id.
func (s *Service) Get(ctx context.Context, videoID string) (*entity.Video, error) {
	if !entity.ValidateVideoID(videoID) {
		return nil, ErrInvalidVideoID
	}

	video, err := s.Repo.Get(ctx, videoID)
	if err != nil {
		return nil, &StorageError{Op: "get", Err: err}
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}
	return video, nil
}

// Count returns the number of stored videos.
func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.Repo.Count(ctx, repository.VideoFilters{})
	if err != nil {
		return 0, &StorageError{Op: "count", Err: err}
	}
	return count, nil
}

// Random returns a random stored video whose id is not in exclude.
// It returns ErrNoVideos when nothing is left to pick.
func (s *Service) Random(ctx context.Context, exclude []string) (*entity.Video, error) {
	return s.random(ctx, repository.VideoFilters{ExcludeIDs: exclude})
}

// RandomByDay returns a random video uploaded on day (dd/MM/YYYY, empty means today).
func (s *Service) RandomByDay(ctx context.Context, day string, exclude []string) (*entity.Video, error) {
	r, err := s.dayRange(day)
	if err != nil {
		return nil, err
	}
	return s.random(ctx, rangeFilters(r, exclude))
}

// RandomByInterval returns a random video uploaded between startDay and endDay inclusive.
func (s *Service) RandomByInterval(ctx context.Context, startDay, endDay string, exclude []string) (*entity.Video, error) {
	r, err := s.intervalRange(startDay, endDay)
	if err != nil {
		return nil, err
	}
	return s.random(ctx, rangeFilters(r, exclude))
}

func (s *Service) random(ctx context.Context, filters repository.VideoFilters) (*entity.Video, error) {
	video, err := s.Repo.Random(ctx, filters)
	if err != nil {
		return nil, &StorageError{Op: "random", Err: err}
	}
	if video == nil {
		return nil, ErrNoVideos
	}
	return video, nil
}

// SearchByDay returns one page of the videos uploaded on day.
func (s *Service) SearchByDay(ctx context.Context, day string, params pagination.Params, sort repository.SortOrder) (pagination.Page[*entity.Video], error) {
	r, err := s.dayRange(day)
	if err != nil {
		return pagination.Page[*entity.Video]{}, err
	}
	return s.search(ctx, rangeFilters(r, nil), params, sort)
}

// SearchByInterval returns one page of the videos uploaded between startDay and endDay inclusive.
func (s *Service) SearchByInterval(ctx context.Context, startDay, endDay string, params pagination.Params, sort repository.SortOrder) (pagination.Page[*entity.Video], error) {
	r, err := s.intervalRange(startDay, endDay)
	if err != nil {
		return pagination.Page[*entity.Video]{}, err
	}
	return s.search(ctx, rangeFilters(r, nil), params, sort)
}

// search loads the page and the total match count concurrently.
func (s *Service) search(ctx context.Context, filters repository.VideoFilters, params pagination.Params, sort repository.SortOrder) (pagination.Page[*entity.Video], error) {
	var (
		videos []*entity.Video
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.Repo.Count(gctx, filters)
		return err
	})
	g.Go(func() error {
		var err error
		videos, err = s.Repo.Search(gctx, filters, sort, params.Offset(), params.PageSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return pagination.Page[*entity.Video]{}, &StorageError{Op: "search", Err: err}
	}

	return pagination.NewPage(videos, params, total), nil
}

// ParseSort maps a sort query parameter to a SortOrder. Anything but "desc" sorts ascending.
func ParseSort(value string) repository.SortOrder {
	if strings.EqualFold(strings.TrimSpace(value), string(repository.SortDesc)) {
		return repository.SortDesc
	}
	return repository.SortAsc
}

func rangeFilters(r DateRange, exclude []string) repository.VideoFilters {
	from, to := r.From, r.To
	return repository.VideoFilters{From: &from, To: &to, ExcludeIDs: exclude}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
