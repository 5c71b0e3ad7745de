package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"randomyt/internal/domain/entity"
	"randomyt/internal/observability/metrics"
	"randomyt/internal/observability/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Attempt outcomes reported in the trace and in metrics.
const (
	OutcomeComplete = "complete"
	OutcomePartial  = "partial"
	OutcomeEmpty    = "empty"
)

// Resolved is the metadata handed to the publish workflow.
// Either every field comes from the single source named in Source,
// or Source is empty and the record is the fallback.
type Resolved struct {
	Title      string
	UploadDate time.Time
	Tags       []string
	ViewCount  int64
	Source     string
}

// IsFallback reports whether no source satisfied the completeness policy.
func (r Resolved) IsFallback() bool { return r.Source == "" }

// Attempt records one source invocation during a Resolve call.
type Attempt struct {
	Source   string
	Outcome  string
	Duration time.Duration
}

// SourceError is returned when a source broke its contract by panicking.
type SourceError struct {
	Source string
	Panic  any
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("metadata source %s panicked: %v", e.Source, e.Panic)
}

// Resolver walks the configured sources in priority order.
// It holds no per-call state and is safe for concurrent use.
type Resolver struct {
	sources []Source
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock overrides the clock used to stamp fallback records.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// WithLogger sets the logger used for attempt diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// NewResolver returns a Resolver trying sources in the given order.
func NewResolver(sources []Source, opts ...Option) *Resolver {
	r := &Resolver{
		sources: append([]Source(nil), sources...),
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Sources returns the source names in priority order.
func (r *Resolver) Sources() []string {
	names := make([]string, len(r.sources))
	for i, s := range r.sources {
		names[i] = s.Name()
	}
	return names
}

// Resolve returns the metadata of the first source whose result is complete,
// or the fallback record when every source is exhausted.
// Source failures never surface as errors. An error is returned only when ctx is
// done before a complete result was found, or when a source panicked.
func (r *Resolver) Resolve(ctx context.Context, videoID string) (Resolved, []Attempt, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "metadata.Resolve")
	defer span.End()
	span.SetAttributes(attribute.String("video.id", videoID))

	attempts := make([]Attempt, 0, len(r.sources))
	for _, src := range r.sources {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "context done")
			return Resolved{}, attempts, fmt.Errorf("resolve %s: %w", videoID, err)
		}

		start := time.Now()
		res, err := r.fetch(ctx, src, videoID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "source panicked")
			return Resolved{}, attempts, err
		}

		attempt := Attempt{Source: src.Name(), Outcome: outcomeOf(res), Duration: time.Since(start)}
		attempts = append(attempts, attempt)
		metrics.RecordSourceAttempt(attempt.Source, attempt.Outcome, attempt.Duration)

		r.logger.Debug("metadata source attempted",
			slog.String("video_id", videoID),
			slog.String("source", attempt.Source),
			slog.String("outcome", attempt.Outcome),
			slog.String("title", res.Title.State().String()),
			slog.String("upload_date", res.UploadDate.State().String()),
			slog.String("view_count", res.ViewCount.State().String()),
			slog.Duration("duration", attempt.Duration))

		if res.Complete() {
			span.SetAttributes(attribute.String("metadata.source", attempt.Source))
			metrics.RecordResolution(metrics.ResolutionResolved)
			return fromRaw(src.Name(), res), attempts, nil
		}
	}

	r.logger.Warn("no metadata source was complete, using fallback",
		slog.String("video_id", videoID),
		slog.Int("attempts", len(attempts)))
	span.SetAttributes(attribute.Bool("metadata.fallback", true))
	metrics.RecordResolution(metrics.ResolutionFallback)
	return r.fallback(), attempts, nil
}

func (r *Resolver) fetch(ctx context.Context, src Source, videoID string) (res RawResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &SourceError{Source: src.Name(), Panic: rec}
		}
	}()
	return src.Fetch(ctx, videoID), nil
}

func (r *Resolver) fallback() Resolved {
	return Resolved{
		Title:      entity.UnknownTitle,
		UploadDate: r.now().UTC(),
		Tags:       []string{},
		ViewCount:  0,
	}
}

func fromRaw(source string, res RawResult) Resolved {
	title, _ := res.Title.Get()
	uploaded, _ := res.UploadDate.Get()
	views, _ := res.ViewCount.Get()
	tags := res.Tags.Or(nil)
	if tags == nil {
		tags = []string{}
	}
	return Resolved{
		Title:      title,
		UploadDate: uploaded,
		Tags:       append([]string{}, tags...),
		ViewCount:  views,
		Source:     source,
	}
}

func outcomeOf(res RawResult) string {
	switch {
	case res.Complete():
		return OutcomeComplete
	case res.Empty():
		return OutcomeEmpty
	default:
		return OutcomePartial
	}
}
