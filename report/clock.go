package report

import (
	"fmt"
	"time"
)

// Clock is a time of day stored as seconds since midnight.
type Clock int

// ParseClock parses an "HH:MM" value. A blank field yields no value, and so
// does malformed text: rejecting bad input belongs to the record save, the
// calculators only ever see a value or nothing.
func ParseClock(s string) *Clock {
	if s == "" {
		return nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return nil
	}
	c := Clock(t.Hour()*3600 + t.Minute()*60)
	return &c
}

// Seconds returns the offset from midnight. Reading the remote field as a
// duration goes through this same routine.
func (c Clock) Seconds() int {
	return int(c)
}

func (c Clock) String() string {
	secs := int(c) % (24 * 3600)
	return fmt.Sprintf("%02d:%02d", secs/3600, secs%3600/60)
}

// FormatHourMinute renders a duration in seconds as zero-padded HH:MM.
func FormatHourMinute(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/3600, seconds/60%60)
}

// FormatSignedHourMinute renders signed seconds as +HH:MM or -HH:MM.
func FormatSignedHourMinute(seconds int) string {
	if seconds < 0 {
		return "-" + FormatHourMinute(-seconds)
	}
	return "+" + FormatHourMinute(seconds)
}
