package domain

import (
	"fmt"
	"strings"
	"time"
)

// WallTimeLayout is the canonical zone-less timestamp form used everywhere:
// in the database, in the AI request/response payloads, and in the UI.
// Timestamps are naive local wall-clock values. No component applies a UTC
// offset or performs zone conversion; a parsed value means "this clock time
// on this calendar date", wherever the user happens to be.
const WallTimeLayout = "2006-01-02T15:04:05"

// wallTimeShortLayout accepts timestamps without a seconds component,
// as produced by datetime inputs and by some AI responses.
const wallTimeShortLayout = "2006-01-02T15:04"

// ParseWallTime parses a naive local timestamp. Trailing zone designators
// (Z or ±hh:mm) are stripped rather than honored: the clock time on the wire
// is the clock time we keep.
func ParseWallTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	s = trimZoneSuffix(s)

	if t, err := time.Parse(WallTimeLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(wallTimeShortLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing wall time %q: %w", s, err)
	}
	return t, nil
}

// FormatWallTime renders t in the canonical zone-less form.
func FormatWallTime(t time.Time) string {
	return t.Format(WallTimeLayout)
}

// SameWallDay reports whether a and b fall on the same calendar date.
func SameWallDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// trimZoneSuffix removes a trailing Z or ±hh:mm offset from an otherwise
// ISO-shaped timestamp string, without shifting the clock components.
func trimZoneSuffix(s string) string {
	if strings.HasSuffix(s, "Z") {
		return s[:len(s)-1]
	}
	// Offsets only appear after the time-of-day part, so a sign past
	// position 10 (the date) is a zone designator.
	for i := len(s) - 1; i > 10; i-- {
		if s[i] == '+' || s[i] == '-' {
			return s[:i]
		}
		if s[i] == ':' || s[i] >= '0' && s[i] <= '9' {
			continue
		}
		break
	}
	return s
}
