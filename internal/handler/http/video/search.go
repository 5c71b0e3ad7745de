package video

import (
	"net/http"
	"time"

	"randomyt/internal/common/pagination"
	"randomyt/internal/domain/entity"
	"randomyt/internal/handler/http/requestid"
	"randomyt/internal/handler/http/respond"
	videoUC "randomyt/internal/usecase/video"
)

type searchFunc func(params pagination.Params, sort string) (pagination.Page[*entity.Video], error)

// serveSearch parses paging parameters, runs search and records paging
// metrics for every outcome.
func (h Handlers) serveSearch(w http.ResponseWriter, r *http.Request, search searchFunc) {
	start := time.Now()
	reqID := requestid.FromContext(r.Context())

	params, err := pagination.ParseQueryParams(r, h.Pagination)
	if err != nil {
		pagination.RecordRequest(http.StatusBadRequest, params)
		pagination.LogResponse(h.logger(), reqID, params, 0, time.Since(start), http.StatusBadRequest)
		h.writeError(w, err, msgNoVideos)
		return
	}

	page, err := search(params, r.URL.Query().Get("sort"))
	if err != nil {
		appErr := h.classify(err, msgNoVideos)
		status := http.StatusInternalServerError
		if ae, ok := appErr.(*respond.AppError); ok {
			status = ae.Code
		}
		pagination.RecordRequest(status, params)
		pagination.LogResponse(h.logger(), reqID, params, 0, time.Since(start), status)
		respond.SafeError(w, status, appErr)
		return
	}

	pagination.RecordRequest(http.StatusOK, params)
	pagination.LogResponse(h.logger(), reqID, params, len(page.Results), time.Since(start), http.StatusOK)
	respond.JSON(w, http.StatusOK, pagination.Map(page, toDTO))
}

type SearchByDayHandler struct{ Handlers }

// ServeHTTP lists the videos uploaded on a day
// @Summary      Search videos by day
// @Description  Returns one page of the videos uploaded on the given day, ordered by upload date.
// @Tags         search
// @Produce      json
// @Param        day query string false "Day in dd/MM/YYYY, defaults to today" example(25/03/2023)
// @Param        page query int false "Page number (>= 1)" default(1)
// @Param        pageSize query int false "Items per page, capped at 100" default(30)
// @Param        sort query string false "asc (oldest first) or desc" Enums(asc, desc) default(asc)
// @Success      200 {object} PageDTO
// @Failure      400 {object} respond.ErrorBody "Invalid date or paging parameter"
// @Failure      500 {object} respond.ErrorBody "Storage failure"
// @Router       /search/day [get]
func (h SearchByDayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	h.serveSearch(w, r, func(params pagination.Params, sort string) (pagination.Page[*entity.Video], error) {
		return h.Svc.SearchByDay(r.Context(), day, params, videoUC.ParseSort(sort))
	})
}

type SearchByIntervalHandler struct{ Handlers }

// ServeHTTP lists the videos uploaded within an interval
// @Summary      Search videos by interval
// @Description  Returns one page of the videos uploaded between startDay and endDay, both inclusive.
// @Tags         search
// @Produce      json
// @Param        startDay query string false "Start day in dd/MM/YYYY" default(23/04/2005)
// @Param        endDay query string false "End day in dd/MM/YYYY, defaults to today"
// @Param        page query int false "Page number (>= 1)" default(1)
// @Param        pageSize query int false "Items per page, capped at 100" default(30)
// @Param        sort query string false "asc (oldest first) or desc" Enums(asc, desc) default(asc)
// @Success      200 {object} PageDTO
// @Failure      400 {object} respond.ErrorBody "Invalid date, range or paging parameter"
// @Failure      500 {object} respond.ErrorBody "Storage failure"
// @Router       /search/interval [get]
func (h SearchByIntervalHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, end := q.Get("startDay"), q.Get("endDay")
	h.serveSearch(w, r, func(params pagination.Params, sort string) (pagination.Page[*entity.Video], error) {
		return h.Svc.SearchByInterval(r.Context(), start, end, params, videoUC.ParseSort(sort))
	})
}
