package sip2

import (
	"fmt"
	"time"
)

// TimestampLayout is the 18 character SIP2 date: YYYYMMDD, four spaces, HHMMSS.
const TimestampLayout = "20060102    150405"

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp decodes a SIP2 date in loc. A nil loc means time.Local.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if len(raw) != len(TimestampLayout) {
		return time.Time{}, fmt.Errorf("sip2 timestamp %q: want %d characters, got %d", raw, len(TimestampLayout), len(raw))
	}

	parsed, err := time.ParseInLocation(TimestampLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("sip2 timestamp %q: %w", raw, err)
	}
	return parsed, nil
}
