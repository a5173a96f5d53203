package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutClock    = "15:04"
	layoutClockSec = "15:04:05"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// ParseClock accepts "HH:MM" or "HH:MM:SS" and returns hour, minute and second.
func ParseClock(s string) (int, int, int, error) {
	s = strings.TrimSpace(s)
	layout := layoutClock
	if strings.Count(s, ":") == 2 {
		layout = layoutClockSec
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("time %q must be HH:MM or HH:MM:SS", s)
	}
	return t.Hour(), t.Minute(), t.Second(), nil
}
