package video

import (
	"time"

	"randomyt/internal/domain/entity"
)

// DTO is the JSON shape of a stored video.
type DTO struct {
	ID         string    `json:"id" example:"dQw4w9WgXcQ"`
	Title      string    `json:"title" example:"Never Gonna Give You Up"`
	PostedDate time.Time `json:"posted_date"`
	UploadDate time.Time `json:"upload_date"`
	Tags       []string  `json:"tags"`
	Views      int64     `json:"views" example:"1500"`
}

// PageDTO documents the paginated search response for swag.
type PageDTO struct {
	Results      []DTO `json:"results"`
	CurrentPage  int   `json:"currentPage" example:"1"`
	PageSize     int   `json:"pageSize" example:"30"`
	TotalPages   int   `json:"totalPages" example:"3"`
	Total        int64 `json:"total" example:"75"`
	NextPage     *int  `json:"nextPage,omitempty" example:"2"`
	PreviousPage *int  `json:"previousPage,omitempty"`
}

// PublishRequest is the body of POST /publish.
type PublishRequest struct {
	VideoID string `json:"video_id" example:"dQw4w9WgXcQ"`
}

// PublishResponse is returned when a video was stored.
type PublishResponse struct {
	ID string `json:"id" example:"dQw4w9WgXcQ"`
}

// ExcludeRequest is the body of the PUT random endpoints.
type ExcludeRequest struct {
	IDs []string `json:"ids"`
}

// CountResponse is returned by GET /count.
type CountResponse struct {
	Count int64 `json:"count" example:"42"`
}

// MessageResponse is returned by GET /ping.
type MessageResponse struct {
	Message string `json:"message" example:"pong"`
}

func toDTO(v *entity.Video) DTO {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		ID:         v.ID,
		Title:      v.Title,
		PostedDate: v.PostedDate.UTC(),
		UploadDate: v.UploadDate.UTC(),
		Tags:       tags,
		Views:      v.Views,
	}
}
