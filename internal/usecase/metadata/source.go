package metadata

import (
	"context"
	"time"
)

// RawResult is what one source contributed for one identifier.
// It lives for a single Resolve call and is never persisted.
type RawResult struct {
	Title      Field[string]
	UploadDate Field[time.Time]
	Tags       Field[[]string]
	ViewCount  Field[int64]
}

// Complete reports whether the result alone satisfies the completeness policy:
// title, upload date and view count must all be present with a usable value.
// Tags are optional.
func (r RawResult) Complete() bool {
	return r.Title.Available() && r.UploadDate.Available() && r.ViewCount.Available()
}

// Empty reports whether the source contributed nothing at all.
func (r RawResult) Empty() bool {
	return !r.Title.Provided() && !r.UploadDate.Provided() && !r.Tags.Provided() && !r.ViewCount.Provided()
}

// Source is one upstream able to describe a video.
//
// Fetch must not return an error or panic: every failure (network, status, timeout,
// payload shape) is reported as an empty RawResult.
type Source interface {
	Name() string
	Fetch(ctx context.Context, videoID string) RawResult
}
