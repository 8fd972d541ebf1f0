// Package dates normalizes RSS pubDate strings into timestamps.
package dates

import (
	"strings"
	"time"
)

// layouts covers the RFC 2822 family that RSS feeds actually emit:
// RFC 1123 / RFC 822 with numeric or named zones, plus the
// single-digit-day variants the standard library won't match with the
// zero-padded layouts.
var layouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"02 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	time.RFC822Z,
	time.RFC822,
}

// Normalize parses an RSS pubDate string. Empty input or a string no
// layout matches yields the zero time, which sorts before every real
// date and is detectable with IsSentinel.
func Normalize(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}

	return time.Time{}
}

// IsSentinel reports whether t is the "no parseable date" placeholder.
// Callers render these as "Recent" rather than a date string.
func IsSentinel(t time.Time) bool {
	return t.IsZero()
}
