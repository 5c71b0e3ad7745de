package video

import (
	"net/http"

	"randomyt/internal/domain/entity"
	"randomyt/internal/handler/http/respond"
)

// readExclude returns the ids to skip. GET requests never exclude anything;
// PUT requests carry {"ids": [...]}.
func readExclude(r *http.Request) ([]string, string, error) {
	if r.Method != http.MethodPut {
		return nil, msgNoVideos, nil
	}
	var req ExcludeRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, msgAllSeen, err
	}
	return req.IDs, msgAllSeen, nil
}

func (h Handlers) serveRandom(w http.ResponseWriter, r *http.Request, pick func(exclude []string) (*entity.Video, error)) {
	exclude, noVideosMsg, err := readExclude(r)
	if err != nil {
		respond.Detail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	v, err := pick(exclude)
	if err != nil {
		h.writeError(w, err, noVideosMsg)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(v))
}

type RandomHandler struct{ Handlers }

// ServeHTTP returns a random video
// @Summary      Random video
// @Description  GET returns any stored video. PUT skips the ids listed in the body.
// @Tags         random
// @Accept       json
// @Produce      json
// @Param        request body ExcludeRequest false "Ids already seen (PUT only)"
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorBody "Invalid body"
// @Failure      404 {object} respond.ErrorBody "No videos found"
// @Failure      500 {object} respond.ErrorBody "Storage failure"
// @Router       /random [get]
// @Router       /random [put]
func (h RandomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.serveRandom(w, r, func(exclude []string) (*entity.Video, error) {
		return h.Svc.Random(r.Context(), exclude)
	})
}

type RandomByDayHandler struct{ Handlers }

// ServeHTTP returns a random video uploaded on a day
// @Summary      Random video by day
// @Description  Picks a random video uploaded on the given day. PUT skips the ids listed in the body.
// @Tags         random
// @Accept       json
// @Produce      json
// @Param        day query string false "Day in dd/MM/YYYY, defaults to today" example(25/03/2023)
// @Param        request body ExcludeRequest false "Ids already seen (PUT only)"
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorBody "Invalid date or body"
// @Failure      404 {object} respond.ErrorBody "No videos found"
// @Failure      500 {object} respond.ErrorBody "Storage failure"
// @Router       /random/day [get]
// @Router       /random/day [put]
func (h RandomByDayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	h.serveRandom(w, r, func(exclude []string) (*entity.Video, error) {
		return h.Svc.RandomByDay(r.Context(), day, exclude)
	})
}

type RandomByIntervalHandler struct{ Handlers }

// ServeHTTP returns a random video uploaded within an interval
// @Summary      Random video by interval
// @Description  Picks a random video uploaded between startDay and endDay, both inclusive. PUT skips the ids listed in the body.
// @Tags         random
// @Accept       json
// @Produce      json
// @Param        startDay query string false "Start day in dd/MM/YYYY" default(23/04/2005)
// @Param        endDay query string false "End day in dd/MM/YYYY, defaults to today"
// @Param        request body ExcludeRequest false "Ids already seen (PUT only)"
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorBody "Invalid date, range or body"
// @Failure      404 {object} respond.ErrorBody "No videos found"
// @Failure      500 {object} respond.ErrorBody "Storage failure"
// @Router       /random/interval [get]
// @Router       /random/interval [put]
func (h RandomByIntervalHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, end := q.Get("startDay"), q.Get("endDay")
	h.serveRandom(w, r, func(exclude []string) (*entity.Video, error) {
		return h.Svc.RandomByInterval(r.Context(), start, end, exclude)
	})
}
