package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidFormTime = errors.New("invalid date/time")

// Layouts accepted from datetime-local inputs and hand-typed values.
var formTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParseFormTime parses a form timestamp as wall-clock time in loc.
func ParseFormTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range formTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q", ErrInvalidFormTime, value)
}

// ParseDate parses a YYYY-MM-DD value and returns the bounds [start, end) of
// that calendar day in loc.
func ParseDate(value string, loc *time.Location) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w %q", ErrInvalidFormTime, value)
	}
	return day, day.AddDate(0, 0, 1), nil
}

// DayBounds returns the start of the day containing t in loc and the start of
// the following day.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// CalendarDate returns the date of t in loc as midnight UTC. DATE columns
// keep that value whatever zone the driver converts to.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
