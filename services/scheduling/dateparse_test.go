package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refDate = time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
}

func TestParseUserDate_YearFirst(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-03-15", date(2024, 3, 15)},
		{"2024/3/5", date(2024, 3, 5)},
		{"2024-12-31", date(2024, 12, 31)},
		{"  2024-03-15  ", date(2024, 3, 15)},
		{"2024-02-29", date(2024, 2, 29)}, // leap day
	}

	for _, tc := range tests {
		got, ok := ParseUserDate(tc.in, refDate)
		require.True(t, ok, "ParseUserDate(%q)", tc.in)
		assert.True(t, got.Equal(tc.want), "ParseUserDate(%q) = %v, want %v", tc.in, got, tc.want)
	}
}

func TestParseUserDate_MonthFirstPreferred(t *testing.T) {
	// First component fits as a month, so the US-style reading wins
	// even though the day-first reading would also be valid.
	got, ok := ParseUserDate("03/04/2024", refDate)
	require.True(t, ok)
	assert.True(t, got.Equal(date(2024, 3, 4)))

	got, ok = ParseUserDate("03/15/2024", refDate)
	require.True(t, ok)
	assert.True(t, got.Equal(date(2024, 3, 15)))
}

func TestParseUserDate_DayFirstFallback(t *testing.T) {
	// 15 cannot be a month, so roles swap: day 15, month 3.
	got, ok := ParseUserDate("15/03/2024", refDate)
	require.True(t, ok)
	assert.True(t, got.Equal(date(2024, 3, 15)))

	got, ok = ParseUserDate("31-1-2024", refDate)
	require.True(t, ok)
	assert.True(t, got.Equal(date(2024, 1, 31)))
}

func TestParseUserDate_YearDefaultsFromRef(t *testing.T) {
	got, ok := ParseUserDate("3/15", refDate)
	require.True(t, ok)
	assert.True(t, got.Equal(date(2024, 3, 15)))

	got, ok = ParseUserDate("3/15", date(2030, 1, 1))
	require.True(t, ok)
	assert.True(t, got.Equal(date(2030, 3, 15)))
}

func TestParseUserDate_Failures(t *testing.T) {
	tests := []string{
		"",
		"not a date",
		"13/13/2024",  // neither role assignment works
		"2024-02-30",  // year-first shape, impossible day: no fallback
		"2024-13-01",  // month 13
		"02/30/2024",  // Feb 30 both ways
		"29/02/2023",  // Feb 29 in a non-leap year
		"0/10/2024",   // month and day cannot be zero
		"10/0/2024",
		"2024-03-15T10:00", // trailing garbage
		"3.15.2024",        // unsupported separator
		"15/3/24",          // 2-digit year is not a recognized shape
	}

	for _, in := range tests {
		_, ok := ParseUserDate(in, refDate)
		assert.False(t, ok, "ParseUserDate(%q) should fail", in)
	}
}

func TestParseUserDate_NeverPanics(t *testing.T) {
	inputs := []string{"////", "--", "99999999", "AM/PM", "\x00\x01", "𝟙𝟚/𝟛𝟜"}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			ParseUserDate(in, refDate)
		}, "input %q", in)
	}
}
