package timeparse

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidClock = errors.New("invalid time format, use HH:MM or an ISO datetime")
	ErrInvalidDate  = errors.New("invalid date format, use YYYY-MM-DD")
)

// Clock is a wall-clock time of day, detached from any date or zone.
type Clock struct {
	Hour   int
	Minute int
}

// Minutes returns the clock as minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) Before(other Clock) bool {
	return c.Minutes() < other.Minutes()
}

// String renders the zero-padded 24h form, e.g. "09:30".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Appointment payloads carry times in two encodings: a full ISO datetime
// ("2025-09-13T09:30:00") or a bare clock ("09:30"). clockLayouts covers both,
// most specific first.
var clockLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"15:04:05",
	"15:04",
}

// ParseClock extracts the local wall-clock time from either encoding.
func ParseClock(s string) (Clock, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
}

// NormalizeClock is the fail-soft variant used on uncontrolled upstream data.
// Unparseable input collapses to midnight and is logged, never propagated.
func NormalizeClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		logrus.Warnf("Failed to parse time %q, defaulting to 00:00", s)
		return Clock{}
	}
	return c
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
}

// ParseDate parses a calendar date, tolerating a full ISO datetime and
// discarding its time component.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// NormalizeDate canonicalizes any supported date encoding to YYYY-MM-DD.
// Unparseable input is returned unchanged so equality checks still fail loudly
// rather than matching everything on an empty string.
func NormalizeDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("2006-01-02")
}

// FormatSlot renders the 12-hour grid label, e.g. "9:30 AM".
func FormatSlot(c Clock) string {
	return clockTime(c).Format("3:04 PM")
}

// FormatDetail renders the zero-padded 24h form, e.g. "09:30".
func FormatDetail(c Clock) string {
	return c.String()
}

// FormatCompact renders the short badge form, e.g. "9:30a".
func FormatCompact(c Clock) string {
	suffix := "a"
	if c.Hour >= 12 {
		suffix = "p"
	}
	return clockTime(c).Format("3:04") + suffix
}

func clockTime(c Clock) time.Time {
	return time.Date(0, 1, 1, c.Hour, c.Minute, 0, 0, time.UTC)
}
