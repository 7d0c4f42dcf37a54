package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-03-18 is a Monday; 2024-03-19 a Tuesday.
var (
	monday  = time.Date(2024, 3, 18, 0, 0, 0, 0, time.Local)
	tuesday = time.Date(2024, 3, 19, 0, 0, 0, 0, time.Local)
)

var weekdayHours = []string{
	"Monday 09:00-17:00",
	"Wednesday 09:00-13:00",
}

func TestComputeAvailableSlots_FullDay(t *testing.T) {
	require.Equal(t, time.Monday, monday.Weekday())

	slots := ComputeAvailableSlots(weekdayHours, monday, 30, nil)
	require.NotEmpty(t, slots)

	// 09:00 through 16:30 in 30-minute steps.
	assert.Len(t, slots, 16)
	assert.Equal(t, "9:00 AM", slots[0])
	assert.Equal(t, "4:30 PM", slots[len(slots)-1])
}

func TestComputeAvailableSlots_BookingExcludesSlot(t *testing.T) {
	booked := []BookedInterval{{Start: 540, Duration: 30}} // 9:00 AM

	slots := ComputeAvailableSlots(weekdayHours, monday, 30, booked)
	assert.NotContains(t, slots, "9:00 AM")
	assert.Contains(t, slots, "9:30 AM")
}

func TestComputeAvailableSlots_PartialOverlapExcludesBothNeighbours(t *testing.T) {
	// A 9:15 booking straddles both the 9:00 and 9:30 candidates.
	booked := []BookedInterval{{Start: 555, Duration: 30}}

	slots := ComputeAvailableSlots(weekdayHours, monday, 30, booked)
	assert.NotContains(t, slots, "9:00 AM")
	assert.NotContains(t, slots, "9:30 AM")
	assert.Contains(t, slots, "10:00 AM")
}

func TestComputeAvailableSlots_DurationMustFitWindow(t *testing.T) {
	// 60-minute visits: the last start that still fits 17:00 is 4:00 PM.
	slots := ComputeAvailableSlots(weekdayHours, monday, 60, nil)
	require.NotEmpty(t, slots)
	assert.Equal(t, "4:00 PM", slots[len(slots)-1])
	assert.NotContains(t, slots, "4:30 PM")
}

func TestComputeAvailableSlots_EmptyOutcomes(t *testing.T) {
	tests := []struct {
		name         string
		availability []string
		date         time.Time
		duration     int
	}{
		{"no window for weekday", weekdayHours, tuesday, 30},
		{"no availability at all", nil, monday, 30},
		{"zero duration", weekdayHours, monday, 0},
		{"negative duration", weekdayHours, monday, -15},
		{"window shorter than duration", []string{"Monday 09:00-09:15"}, monday, 30},
		{"malformed time range", []string{"Monday 09:00/17:00"}, monday, 30},
		{"unparseable endpoint", []string{"Monday 09:00-banana"}, monday, 30},
		{"inverted window", []string{"Monday 17:00-09:00"}, monday, 30},
		{"weekday token only", []string{"Monday"}, monday, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, ComputeAvailableSlots(tc.availability, tc.date, tc.duration, nil))
		})
	}
}

func TestComputeAvailableSlots_TwelveHourWindow(t *testing.T) {
	slots := ComputeAvailableSlots([]string{"Monday 9:00 AM-5:00 PM"}, monday, 30, nil)
	require.NotEmpty(t, slots)
	assert.Equal(t, "9:00 AM", slots[0])
	assert.Equal(t, "4:30 PM", slots[len(slots)-1])
}

func TestComputeAvailableSlots_CaseInsensitiveWeekday(t *testing.T) {
	slots := ComputeAvailableSlots([]string{"monday 09:00-10:00"}, monday, 30, nil)
	assert.Equal(t, []string{"9:00 AM", "9:30 AM"}, slots)
}

// Every returned slot, parsed back, must start inside
// [windowStart, windowEnd-duration] and come out in ascending order.
func TestComputeAvailableSlots_RoundTripAndOrdering(t *testing.T) {
	const duration = 45
	booked := []BookedInterval{
		{Start: 600, Duration: 30},
		{Start: 780, Duration: 60},
	}

	slots := ComputeAvailableSlots(weekdayHours, monday, duration, booked)
	require.NotEmpty(t, slots)

	prev := -1
	for _, s := range slots {
		m, ok := ParseClockTime(s)
		require.True(t, ok, "slot %q must re-parse", s)
		assert.GreaterOrEqual(t, m, 540)
		assert.LessOrEqual(t, m, 1020-duration)
		assert.Greater(t, m, prev, "slots must ascend")
		prev = m
	}
}

func TestComputeAvailableSlots_FullyBookedDay(t *testing.T) {
	booked := []BookedInterval{{Start: 540, Duration: 480}} // 9:00-17:00 solid
	assert.Empty(t, ComputeAvailableSlots(weekdayHours, monday, 30, booked))
}
