package scraper

import (
	"math"
	"strconv"
	"strings"
	"time"

	"randomyt/internal/usecase/metadata"

	"github.com/tidwall/gjson"
)

// The extractors below turn one gjson value into a three-state field.
// A missing key path yields an absent field; a present value that cannot be
// converted yields an unparseable one.

// StringField reads a string value. Non-string values are unparseable.
func StringField(r gjson.Result) metadata.Field[string] {
	if !r.Exists() {
		return metadata.Field[string]{}
	}
	if r.Type != gjson.String {
		return metadata.Invalid[string]()
	}
	return metadata.Of(r.Str)
}

// IntField reads a non-negative integer from a JSON number or a numeric string.
// Numbers written with a fraction or exponent count when their value is integral.
func IntField(r gjson.Result) metadata.Field[int64] {
	if !r.Exists() {
		return metadata.Field[int64]{}
	}

	switch r.Type {
	case gjson.Number:
		if n, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
			return nonNegative(n)
		}
		f := r.Num
		if f != math.Trunc(f) || f < 0 || f >= math.MaxInt64 {
			return metadata.Invalid[int64]()
		}
		return metadata.Of(int64(f))
	case gjson.String:
		n, err := strconv.ParseInt(strings.TrimSpace(r.Str), 10, 64)
		if err != nil {
			return metadata.Invalid[int64]()
		}
		return nonNegative(n)
	default:
		return metadata.Invalid[int64]()
	}
}

func nonNegative(n int64) metadata.Field[int64] {
	if n < 0 {
		return metadata.Invalid[int64]()
	}
	return metadata.Of(n)
}

// TimeField reads an ISO-8601 timestamp and normalizes it to UTC.
//
// Full timestamps must carry "Z" or an explicit offset. Otherwise the date
// part before any "T" is read as YYYY-MM-DD at midnight UTC.
func TimeField(r gjson.Result) metadata.Field[time.Time] {
	if !r.Exists() {
		return metadata.Field[time.Time]{}
	}
	if r.Type != gjson.String {
		return metadata.Invalid[time.Time]()
	}

	t, ok := parseTimestamp(r.Str)
	if !ok {
		return metadata.Invalid[time.Time]()
	}
	return metadata.Of(t)
}

// parseTimestamp applies the rules of TimeField to a plain string.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), true
	}

	date, _, _ := strings.Cut(s, "T")
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// TagsField reads an array of strings, preserving order.
// Any non-string element makes the whole field unparseable.
func TagsField(r gjson.Result) metadata.Field[[]string] {
	if !r.Exists() {
		return metadata.Field[[]string]{}
	}
	if !r.IsArray() {
		return metadata.Invalid[[]string]()
	}

	items := r.Array()
	tags := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type != gjson.String {
			return metadata.Invalid[[]string]()
		}
		tags = append(tags, item.Str)
	}
	return metadata.Of(tags)
}

// Paths maps each metadata field to its key path inside a source payload.
// An empty path means the source never carries that field.
type Paths struct {
	Title      string
	UploadDate string
	Tags       string
	ViewCount  string
}

// Extract reads every configured path out of a parsed payload.
func (p Paths) Extract(doc gjson.Result) metadata.RawResult {
	var res metadata.RawResult
	if p.Title != "" {
		res.Title = StringField(doc.Get(p.Title))
	}
	if p.UploadDate != "" {
		res.UploadDate = TimeField(doc.Get(p.UploadDate))
	}
	if p.Tags != "" {
		res.Tags = TagsField(doc.Get(p.Tags))
	}
	if p.ViewCount != "" {
		res.ViewCount = IntField(doc.Get(p.ViewCount))
	}
	return res
}
