package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Wire formats of dates.
const (
	DateTimeLayout = "2006/01/02 15:04"
	DayLayout      = "2006/01/02"
)

var dateLayouts = []string{
	DateTimeLayout,
	DayLayout,
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
}

var rfidPattern = regexp.MustCompile(`^[0-9]{32}$`)

// ParseDate accepts any of the supported layouts and returns a UTC time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date %q", s)
}

// FormatDate renders t as "YYYY/MM/DD HH:mm".
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// FormatDay renders t as "YYYY/MM/DD".
func FormatDay(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// ValidRFID reports whether s is a 32 digit RFID.
func ValidRFID(s string) bool {
	return rfidPattern.MatchString(s)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
