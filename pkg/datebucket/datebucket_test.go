package datebucket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{name: "iso date", raw: "2025-03-14", want: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "iso datetime", raw: "2025-03-14 08:30:00", want: time.Date(2025, 3, 14, 8, 30, 0, 0, time.UTC), ok: true},
		{name: "rfc3339", raw: "2025-03-14T08:30:00Z", want: time.Date(2025, 3, 14, 8, 30, 0, 0, time.UTC), ok: true},
		{name: "slash date", raw: "2025/03/14", want: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "us date", raw: "03/14/2025", want: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "dotted date", raw: "14.03.2025", want: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "surrounding whitespace", raw: "  2025-03-14  ", want: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "empty", raw: "", ok: false},
		{name: "garbage", raw: "not a date", ok: false},
		{name: "partial", raw: "2025-03", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse(tc.raw)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.True(t, tc.want.Equal(got), "got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBuckets(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("same month", func(t *testing.T) {
		d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		assert.True(t, InMonth(d, now))
		assert.True(t, InYear(d, now))
	})

	t.Run("same year different month", func(t *testing.T) {
		d := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
		assert.False(t, InMonth(d, now))
		assert.True(t, InYear(d, now))
	})

	t.Run("same month previous year", func(t *testing.T) {
		d := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		assert.False(t, InMonth(d, now))
		assert.False(t, InYear(d, now))
	})

	t.Run("yearly is superset of monthly", func(t *testing.T) {
		for _, d := range []time.Time{
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC),
		} {
			if InMonth(d, now) {
				assert.True(t, InYear(d, now))
			}
		}
	})
}
