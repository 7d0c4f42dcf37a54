package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"14:30", 870, true},
		{"23:59", 1439, true},
		{"9:00 AM", 540, true},
		{"2:30 PM", 870, true},
		{"12:00 AM", 0, true},
		{"12:30 AM", 30, true},
		{"12:00 PM", 720, true},
		{"12:45 PM", 765, true},
		{"11:59 PM", 1439, true},
		{"  5:00 pm ", 1020, true}, // whitespace and case tolerated
		{"24:00", 0, false},
		{"9:60", 0, false},
		{"13:00 PM", 0, false},
		{"0:30 AM", 0, false},
		{"9:5", 0, false},
		{"", 0, false},
		{"noon", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseClockTime(tc.in)
		assert.Equal(t, tc.wantOK, ok, "ParseClockTime(%q) ok", tc.in)
		if tc.wantOK {
			assert.Equal(t, tc.want, got, "ParseClockTime(%q)", tc.in)
		}
	}
}

func TestFormatClockTime(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "12:00 AM"},
		{30, "12:30 AM"},
		{540, "9:00 AM"},
		{720, "12:00 PM"},
		{765, "12:45 PM"},
		{870, "2:30 PM"},
		{1020, "5:00 PM"},
		{1439, "11:59 PM"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatClockTime(tc.in), "FormatClockTime(%d)", tc.in)
	}
}

// Formatting a minute value and parsing it back must be exact for
// every possible slot start, otherwise slots and bookings drift apart.
func TestClockRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m += SlotStepMinutes {
		got, ok := ParseClockTime(FormatClockTime(m))
		if !ok {
			t.Fatalf("round-trip of %d failed to parse %q", m, FormatClockTime(m))
		}
		if got != m {
			t.Fatalf("round-trip of %d drifted to %d via %q", m, got, FormatClockTime(m))
		}
	}
}
