package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVideo() *Video {
	return &Video{
		ID:         "dQw4w9WgXcQ",
		Title:      "Never Gonna Give You Up",
		PostedDate: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		UploadDate: time.Date(2009, 10, 25, 0, 0, 0, 0, time.UTC),
		Tags:       []string{"music"},
		Views:      2000,
	}
}

func TestVideo_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(v *Video)
		limit     int64
		wantField string
	}{
		{name: "valid at the ceiling", mutate: func(v *Video) {}, limit: 2000},
		{name: "ceiling disabled", mutate: func(v *Video) { v.Views = 1 << 40 }, limit: 0},
		{name: "invalid id", mutate: func(v *Video) { v.ID = "bad" }, limit: 2000, wantField: "id"},
		{name: "blank title", mutate: func(v *Video) { v.Title = "   " }, limit: 2000, wantField: "title"},
		{name: "negative views", mutate: func(v *Video) { v.Views = -1 }, limit: 2000, wantField: "views"},
		{name: "over the ceiling", mutate: func(v *Video) { v.Views = 2001 }, limit: 2000, wantField: "views"},
		{name: "missing upload date", mutate: func(v *Video) { v.UploadDate = time.Time{} }, limit: 2000, wantField: "upload_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validVideo()
			tt.mutate(v)

			err := v.Validate(tt.limit)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "id", Message: "required"}
	assert.Equal(t, "validation error on field 'id': required", err.Error())
}
