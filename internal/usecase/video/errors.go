// Package video provides the video use cases: publishing a new id and the
// random, lookup and date-search queries over stored videos.
package video

import (
	"errors"
	"fmt"
)

// Sentinel errors for video use case operations.
var (
	// ErrInvalidVideoID indicates an id that is not 11 characters of [A-Za-z0-9_-].
	ErrInvalidVideoID = errors.New("invalid video ID")

	// ErrDuplicateVideo indicates the video has already been published.
	ErrDuplicateVideo = errors.New("video is already published")

	// ErrAcquisitionFailed indicates metadata resolution failed outright.
	ErrAcquisitionFailed = errors.New("failed to retrieve video information")

	// ErrViewLimitExceeded indicates the video has more views than the configured limit.
	ErrViewLimitExceeded = errors.New("video has more views than allowed")

	// ErrInvalidMetadata indicates the resolved metadata cannot be stored (blank title).
	ErrInvalidMetadata = errors.New("invalid video data")

	// ErrVideoNotFound indicates no video exists with the requested id.
	ErrVideoNotFound = errors.New("video not found")

	// ErrNoVideos indicates that no stored video matches a random query.
	ErrNoVideos = errors.New("no videos found")

	// ErrInvalidDate indicates a day parameter not in dd/MM/YYYY form.
	ErrInvalidDate = errors.New("invalid date format, expected dd/MM/YYYY")

	// ErrInvalidRange indicates an interval whose start is after its end.
	ErrInvalidRange = errors.New("start_day cannot be greater than end_day")
)

// StorageError reports a persistence failure during an operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
