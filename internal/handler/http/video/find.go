package video

import (
	"net/http"

	"randomyt/internal/handler/http/respond"
)

type FindHandler struct{ Handlers }

// ServeHTTP returns a video by id
// @Summary      Find video
// @Description  Returns the stored video with the given id.
// @Tags         videos
// @Produce      json
// @Param        video_id path string true "YouTube video id" example(dQw4w9WgXcQ)
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorBody "Invalid video id"
// @Failure      404 {object} respond.ErrorBody "Video not found"
// @Failure      500 {object} respond.ErrorBody "Storage failure"
// @Router       /find/{video_id} [get]
func (h FindHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v, err := h.Svc.Get(r.Context(), r.PathValue("video_id"))
	if err != nil {
		h.writeError(w, err, msgNoVideos)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(v))
}

type CountHandler struct{ Handlers }

// ServeHTTP returns the number of stored videos
// @Summary      Count videos
// @Tags         videos
// @Produce      json
// @Success      200 {object} CountResponse
// @Failure      500 {object} respond.ErrorBody "Storage failure"
// @Router       /count [get]
func (h CountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n, err := h.Svc.Count(r.Context())
	if err != nil {
		h.writeError(w, err, msgNoVideos)
		return
	}
	respond.JSON(w, http.StatusOK, CountResponse{Count: n})
}

type PingHandler struct{}

// ServeHTTP answers pong
// @Summary      Ping
// @Tags         system
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /ping [get]
func (PingHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, MessageResponse{Message: "pong"})
}

type RootHandler struct{ URL string }

// ServeHTTP redirects to the web client
// @Summary      Root redirect
// @Tags         system
// @Success      307
// @Router       / [get]
func (h RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.URL, http.StatusTemporaryRedirect)
}
