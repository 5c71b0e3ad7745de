package video

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the dd/MM/YYYY layout of day query parameters.
const DateLayout = "02/01/2006"

// FirstUploadDay is the default start of an interval search: the day the
// first video was uploaded to the platform.
var FirstUploadDay = time.Date(2005, 4, 23, 0, 0, 0, 0, time.UTC)

// DateRange is a half-open [From, To) range of upload timestamps.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDay parses a dd/MM/YYYY day as midnight UTC.
func ParseDay(field, value string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s=%q", ErrInvalidDate, field, value)
	}
	return day, nil
}

// dayRange covers one whole day. An empty day means today.
func (s *Service) dayRange(day string) (DateRange, error) {
	start := s.today()
	if day != "" {
		var err error
		if start, err = ParseDay("day", day); err != nil {
			return DateRange{}, err
		}
	}
	return DateRange{From: start, To: start.AddDate(0, 0, 1)}, nil
}

// intervalRange covers startDay through the whole of endDay.
// Empty bounds default to FirstUploadDay and today.
func (s *Service) intervalRange(startDay, endDay string) (DateRange, error) {
	start, end := FirstUploadDay, s.today()

	var err error
	if startDay != "" {
		if start, err = ParseDay("startDay", startDay); err != nil {
			return DateRange{}, err
		}
	}
	if endDay != "" {
		if end, err = ParseDay("endDay", endDay); err != nil {
			return DateRange{}, err
		}
	}
	if start.After(end) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{From: start, To: end.AddDate(0, 0, 1)}, nil
}

func (s *Service) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
