package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVideoID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "canonical id", id: "dQw4w9WgXcQ", want: true},
		{name: "dash and underscore", id: "a-b_c-d_e-f", want: true},
		{name: "all digits", id: "01234567890", want: true},
		{name: "too short", id: "short", want: false},
		{name: "too long", id: "toolongvideoid123", want: false},
		{name: "ten characters", id: "dQw4w9WgXc", want: false},
		{name: "twelve characters", id: "dQw4w9WgXcQQ", want: false},
		{name: "empty", id: "", want: false},
		{name: "space inside", id: "dQw4w9 gXcQ", want: false},
		{name: "dot inside", id: "dQw4w9.gXcQ", want: false},
		{name: "trailing newline", id: "dQw4w9WgXcQ\n", want: false},
		{name: "non ascii", id: "dQw4w9WgXcñ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateVideoID(tt.id))
		})
	}
}
