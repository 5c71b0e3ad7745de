package metadata_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"randomyt/internal/domain/entity"
	"randomyt/internal/usecase/metadata"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ─── test doubles ─── */

type stubSource struct {
	name  string
	res   metadata.RawResult
	calls int
	panic bool
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(_ context.Context, _ string) metadata.RawResult {
	s.calls++
	if s.panic {
		panic("boom")
	}
	return s.res
}

var uploaded = time.Date(2023, 3, 25, 10, 0, 0, 0, time.UTC)

func completeResult() metadata.RawResult {
	return metadata.RawResult{
		Title:      metadata.Of("Never Gonna Give You Up"),
		UploadDate: metadata.Of(uploaded),
		Tags:       metadata.Of([]string{"music", "80s"}),
		ViewCount:  metadata.Of(int64(1234)),
	}
}

/* ─── 1. short-circuit ─── */

func TestResolve_PrimaryCompleteShortCircuits(t *testing.T) {
	primary := &stubSource{name: "watchpage", res: completeResult()}
	secondary := &stubSource{name: "dataapi", res: completeResult()}
	r := metadata.NewResolver([]metadata.Source{primary, secondary})

	got, attempts, err := r.Resolve(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)

	want := metadata.Resolved{
		Title:      "Never Gonna Give You Up",
		UploadDate: uploaded,
		Tags:       []string{"music", "80s"},
		ViewCount:  1234,
		Source:     "watchpage",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls)
	require.Len(t, attempts, 1)
	assert.Equal(t, metadata.OutcomeComplete, attempts[0].Outcome)
}

/* ─── 2. completeness requires the full triplet ─── */

func TestResolve_TitleOnlyFallsThrough(t *testing.T) {
	primary := &stubSource{name: "watchpage", res: metadata.RawResult{Title: metadata.Of("Only a title")}}
	secondary := &stubSource{name: "dataapi", res: completeResult()}
	r := metadata.NewResolver([]metadata.Source{primary, secondary})

	got, attempts, err := r.Resolve(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, "dataapi", got.Source)
	assert.Equal(t, "Never Gonna Give You Up", got.Title)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
	require.Len(t, attempts, 2)
	assert.Equal(t, metadata.OutcomePartial, attempts[0].Outcome)
}

func TestResolve_UnparseableViewCountIsNotComplete(t *testing.T) {
	res := completeResult()
	res.ViewCount = metadata.Invalid[int64]()
	primary := &stubSource{name: "watchpage", res: res}
	secondary := &stubSource{name: "dataapi"}
	r := metadata.NewResolver([]metadata.Source{primary, secondary})

	got, _, err := r.Resolve(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.True(t, got.IsFallback())
	assert.Equal(t, 1, secondary.calls)
}

func TestResolve_AbsentTagsBecomeEmpty(t *testing.T) {
	res := completeResult()
	res.Tags = metadata.Field[[]string]{}
	r := metadata.NewResolver([]metadata.Source{&stubSource{name: "dataapi", res: res}})

	got, _, err := r.Resolve(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

/* ─── 3. fallback ─── */

func TestResolve_AllSourcesExhausted(t *testing.T) {
	sources := []*stubSource{
		{name: "watchpage"},
		{name: "dataapi", res: metadata.RawResult{Title: metadata.Of("partial")}},
		{name: "noembed", res: metadata.RawResult{Title: metadata.Of("Real title")}},
		{name: "oembed", res: metadata.RawResult{Title: metadata.Of("Real title")}},
	}
	list := make([]metadata.Source, len(sources))
	for i, s := range sources {
		list[i] = s
	}
	r := metadata.NewResolver(list)

	start := time.Now()
	got, attempts, err := r.Resolve(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.True(t, got.IsFallback())
	assert.Equal(t, entity.UnknownTitle, got.Title)
	assert.Equal(t, int64(0), got.ViewCount)
	require.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
	assert.WithinDuration(t, start, got.UploadDate, 5*time.Second)
	assert.Len(t, attempts, 4)
	for _, s := range sources {
		assert.Equal(t, 1, s.calls, s.name)
	}
}

func TestResolve_FallbackUsesClock(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	r := metadata.NewResolver(nil, metadata.WithClock(func() time.Time { return fixed }))

	got, attempts, err := r.Resolve(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, fixed, got.UploadDate)
	assert.Empty(t, attempts)
}

/* ─── 4. idempotence ─── */

func TestResolve_Idempotent(t *testing.T) {
	r := metadata.NewResolver([]metadata.Source{&stubSource{name: "watchpage", res: completeResult()}})

	first, _, err := r.Resolve(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	first.Tags[0] = "mutated by caller"

	second, _, err := r.Resolve(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, []string{"music", "80s"}, second.Tags)
	first.Tags[0] = "music"
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second Resolve differs (-first +second):\n%s", diff)
	}
}

/* ─── 5. errors ─── */

func TestResolve_ContextCancelled(t *testing.T) {
	src := &stubSource{name: "watchpage", res: completeResult()}
	r := metadata.NewResolver([]metadata.Source{src})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := r.Resolve(ctx, "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, src.calls)
}

func TestResolve_SourcePanicIsReported(t *testing.T) {
	bad := &stubSource{name: "watchpage", panic: true}
	next := &stubSource{name: "dataapi", res: completeResult()}
	r := metadata.NewResolver([]metadata.Source{bad, next})

	_, _, err := r.Resolve(context.Background(), "dQw4w9WgXcQ")

	var srcErr *metadata.SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, "watchpage", srcErr.Source)
	assert.Equal(t, 0, next.calls)
}

func TestResolver_Sources(t *testing.T) {
	r := metadata.NewResolver([]metadata.Source{&stubSource{name: "a"}, &stubSource{name: "b"}})
	assert.Equal(t, []string{"a", "b"}, r.Sources())
}
