package video

import (
	"errors"
	"fmt"
	"net/http"

	"randomyt/internal/common/pagination"
	"randomyt/internal/handler/http/respond"
	videoUC "randomyt/internal/usecase/video"
)

// Messages shown to API clients.
const (
	msgInvalidVideoID    = "Invalid video ID"
	msgDuplicate         = "Video is in database"
	msgAcquisitionFailed = "Failed to retrieve video information"
	msgInvalidMetadata   = "Invalid video data"
	msgVideoNotFound     = "Video not found"
	msgNoVideos          = "No videos found"
	msgAllSeen           = "No videos found, all videos have been seen"
	msgInvalidBody       = "Invalid request body"
)

// writeError maps a use case error onto a status code and a client message.
// noVideosMsg is the message used for ErrNoVideos, which depends on whether
// the client sent a list of already seen ids.
func (h Handlers) writeError(w http.ResponseWriter, err error, noVideosMsg string) {
	respond.SafeError(w, http.StatusInternalServerError, h.classify(err, noVideosMsg))
}

func (h Handlers) classify(err error, noVideosMsg string) error {
	switch {
	case errors.Is(err, videoUC.ErrInvalidVideoID):
		return respond.NewAppError(http.StatusBadRequest, msgInvalidVideoID, nil)
	case errors.Is(err, videoUC.ErrDuplicateVideo):
		return respond.NewAppError(http.StatusConflict, msgDuplicate, nil)
	case errors.Is(err, videoUC.ErrAcquisitionFailed):
		return respond.NewAppError(http.StatusBadRequest, msgAcquisitionFailed, err)
	case errors.Is(err, videoUC.ErrViewLimitExceeded):
		return respond.NewAppError(http.StatusBadRequest,
			fmt.Sprintf("Video has more than %d views", h.Svc.LimitViews), nil)
	case errors.Is(err, videoUC.ErrInvalidMetadata):
		return respond.NewAppError(http.StatusBadRequest, msgInvalidMetadata, nil)
	case errors.Is(err, videoUC.ErrVideoNotFound):
		return respond.NewAppError(http.StatusNotFound, msgVideoNotFound, nil)
	case errors.Is(err, videoUC.ErrNoVideos):
		return respond.NewAppError(http.StatusNotFound, noVideosMsg, nil)
	case errors.Is(err, videoUC.ErrInvalidDate),
		errors.Is(err, videoUC.ErrInvalidRange),
		errors.Is(err, pagination.ErrInvalidPage),
		errors.Is(err, pagination.ErrInvalidPageSize):
		return respond.NewAppError(http.StatusBadRequest, err.Error(), nil)
	default:
		return err
	}
}
