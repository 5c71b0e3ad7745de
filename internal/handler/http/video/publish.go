package video

import (
	"errors"
	"log/slog"
	"net/http"

	"randomyt/internal/handler/http/requestid"
	"randomyt/internal/handler/http/respond"
)

type PublishHandler struct{ Handlers }

// ServeHTTP publishes a video
// @Summary      Publish a video
// @Description  Resolves the metadata of a YouTube video and stores it. Videos with more views than LIMIT_VIEWS are rejected.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request body PublishRequest true "Video to publish"
// @Success      201 {object} PublishResponse "Stored video id"
// @Failure      400 {object} respond.ErrorBody "Invalid id, view limit exceeded, invalid data or acquisition failure"
// @Failure      409 {object} respond.ErrorBody "Video already published"
// @Failure      413 {object} respond.ErrorBody "Body too large"
// @Failure      429 {object} respond.ErrorBody "Too many publish requests"
// @Failure      500 {object} respond.ErrorBody "Storage failure"
// @Router       /publish [post]
func (h PublishHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req PublishRequest
	if err := decodeBody(r, &req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Detail(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		respond.Detail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	id, err := h.Svc.Publish(r.Context(), req.VideoID)
	if err != nil {
		requestid.Logger(r.Context(), h.logger()).Info("publish rejected",
			slog.String("video_id", req.VideoID),
			slog.String("reason", respond.SanitizeError(err)))
		h.writeError(w, err, msgNoVideos)
		return
	}

	respond.JSON(w, http.StatusCreated, PublishResponse{ID: id})
}
