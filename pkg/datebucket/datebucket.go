package datebucket

import (
	"strings"
	"time"
)

// Calls store their date as a free-form string, so parsing is best-effort:
// a record whose date does not match any known layout is excluded from every
// time bucket rather than treated as an error.
var layouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
}

// Parse attempts to interpret raw as a calendar date. The second return value
// is false when raw is empty or matches no known layout. Parse is
// deterministic and never panics on malformed input.
func Parse(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// InMonth reports whether t falls in the same (year, month) bucket as now.
func InMonth(t, now time.Time) bool {
	return t.Year() == now.Year() && t.Month() == now.Month()
}

// InYear reports whether t falls in the same year bucket as now. Yearly
// membership is independent of monthly membership, so the yearly bucket is a
// superset of the monthly one.
func InYear(t, now time.Time) bool {
	return t.Year() == now.Year()
}
