// Package entity defines the core domain entities and validation logic for the application.
// Video is the only persisted entity: the metadata of a YouTube clip captured at publish time.
package entity

import (
	"strings"
	"time"
)

// UnknownTitle is the title carried by a fallback record when no metadata source answered.
const UnknownTitle = "Desconocido"

// Video represents a published video and the metadata resolved for it.
// Records are created once at publish time and never updated afterwards.
type Video struct {
	ID         string
	Title      string
	PostedDate time.Time
	UploadDate time.Time
	Tags       []string
	Views      int64
}

// Validate checks the invariants a video must satisfy before it is stored.
// A non-positive limit disables the view ceiling check.
func (v *Video) Validate(limitViews int64) error {
	if !ValidateVideoID(v.ID) {
		return &ValidationError{Field: "id", Message: "must be 11 characters of [A-Za-z0-9_-]"}
	}
	if strings.TrimSpace(v.Title) == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if v.Views < 0 {
		return &ValidationError{Field: "views", Message: "views cannot be negative"}
	}
	if limitViews > 0 && v.Views > limitViews {
		return &ValidationError{Field: "views", Message: "views must be at most the configured limit"}
	}
	if v.UploadDate.IsZero() {
		return &ValidationError{Field: "upload_date", Message: "upload date is required"}
	}
	return nil
}
