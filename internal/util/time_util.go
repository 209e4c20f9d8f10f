package util

import (
	"time"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses YYYY-MM-DD into a UTC midnight
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// TruncateToDate drops the time of day, keeping the calendar date
// as seen in t's own location
func TruncateToDate(t time.Time) time.Time {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}
