package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// TruncateToDate drops the time of day and normalises to UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(TruncateToDate(end).Sub(TruncateToDate(start)).Hours() / 24)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(layout, s)
}

// ParseDateOrToday returns today's date when s is empty.
func ParseDateOrToday(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDate(time.Now()), nil
	}
	return ParseDate(s)
}
