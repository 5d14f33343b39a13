package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	isoTimestamp   = regexp.MustCompile(`^([0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9:.+\-Z]+)(?:\s|$)`)
	ymdTimestamp   = regexp.MustCompile(`^([0-9]{4}-[0-9]{2}-[0-9]{2})[ T]([0-9]{2}:[0-9]{2}(?::[0-9]{2}(?:\.[0-9]+)?)?)(?:\s|$)`)
	slashTimestamp = regexp.MustCompile(`^([0-9]{4}/[0-9]{2}/[0-9]{2})(?:\s|$)`)
)

// Layouts with an explicit zone are parsed as-is; the rest in the caller's location.
var (
	zonedISOLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04Z07:00"}
	localISOLayouts = []string{"2006-01-02T15:04:05", "2006-01-02T15:04"}
)

// ParseTimestamp extracts a leading date or date-time from text. It tries an
// ISO-8601 prefix, then "YYYY-MM-DD HH:MM[:SS[.frac]]", then "YYYY/MM/DD",
// then a generic parse of the first whitespace-delimited token. The first
// rule yielding a valid time wins. Values without a zone are read in loc.
//
// This is a heuristic: the generic fallback can read ambiguous tokens as dates.
func ParseTimestamp(text string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}

	if m := isoTimestamp.FindStringSubmatch(s); m != nil {
		if t, ok := parseLayouts(m[1], loc); ok {
			return t, true
		}
	}

	if m := ymdTimestamp.FindStringSubmatch(s); m != nil {
		if t, ok := parseLayouts(m[1]+"T"+m[2], loc); ok {
			return t, true
		}
	}

	if m := slashTimestamp.FindStringSubmatch(s); m != nil {
		if t, err := time.ParseInLocation("2006/01/02", m[1], loc); err == nil {
			return t, true
		}
	}

	return parseToken(strings.Fields(s)[0], loc)
}

func parseLayouts(value string, loc *time.Location) (time.Time, bool) {
	for _, layout := range zonedISOLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	for _, layout := range localISOLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseToken runs the generic date parser over a single token. dateparse
// panics on a handful of malformed inputs, which count as "not a date".
func parseToken(token string, loc *time.Location) (t time.Time, ok bool) {
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()
	parsed, err := dateparse.ParseIn(token, loc)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
