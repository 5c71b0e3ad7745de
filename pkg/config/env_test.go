package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("RYT_STRING", "value")
	assert.Equal(t, "value", GetEnvString("RYT_STRING", "default"))

	t.Setenv("RYT_STRING", "")
	assert.Equal(t, "default", GetEnvString("RYT_STRING", "default"))
}

func TestGetEnvInt64(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int64
	}{
		{name: "unset", value: "", want: 2000},
		{name: "valid", value: "150", want: 150},
		{name: "surrounding spaces", value: " 42 ", want: 42},
		{name: "negative", value: "-5", want: -5},
		{name: "not a number", value: "lots", want: 2000},
		{name: "decimal", value: "1.5", want: 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RYT_INT64", tt.value)
			assert.Equal(t, tt.want, GetEnvInt64("RYT_INT64", 2000))
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("RYT_INT", "7")
	assert.Equal(t, 7, GetEnvInt("RYT_INT", 1))

	t.Setenv("RYT_INT", "seven")
	assert.Equal(t, 1, GetEnvInt("RYT_INT", 1))
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("RYT_FLOAT", "0.25")
	assert.InDelta(t, 0.25, GetEnvFloat("RYT_FLOAT", 1), 1e-9)

	t.Setenv("RYT_FLOAT", "quarter")
	assert.InDelta(t, 1.0, GetEnvFloat("RYT_FLOAT", 1), 1e-9)
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("RYT_DURATION", "1m30s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("RYT_DURATION", time.Second))

	t.Setenv("RYT_DURATION", "90")
	assert.Equal(t, time.Second, GetEnvDuration("RYT_DURATION", time.Second))
}

func TestGetEnvStringList(t *testing.T) {
	def := []string{"*"}

	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "unset", value: "", want: def},
		{name: "single", value: "https://a.example", want: []string{"https://a.example"}},
		{name: "trimmed", value: " https://a.example , https://b.example ", want: []string{"https://a.example", "https://b.example"}},
		{name: "empty entries dropped", value: "a,,b,", want: []string{"a", "b"}},
		{name: "only separators", value: " , ,", want: def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RYT_LIST", tt.value)
			assert.Equal(t, tt.want, GetEnvStringList("RYT_LIST", def))
		})
	}
}
