// File: vetcare/services/scheduling/slots.go
package scheduling

import (
	"strings"
	"time"
)

// SlotStepMinutes is the fixed walk increment between candidate start times.
const SlotStepMinutes = 30

// DefaultDurationMinutes is the standard appointment length callers
// should substitute for bookings stored without a duration. The engine
// itself never guesses.
const DefaultDurationMinutes = 30

// BookedInterval is an existing commitment on a staff member's day,
// in minutes since midnight.
type BookedInterval struct {
	Start    int
	Duration int
}

// End returns the first minute after the interval.
func (b BookedInterval) End() int {
	return b.Start + b.Duration
}

// ComputeAvailableSlots returns the bookable start times for a staff
// member on targetDate, as 12-hour display strings in ascending order.
//
// availability holds one window string per working day in the form
// "<Weekday> <start>-<end>" (clock in 24-hour or 12-hour form). A date
// whose weekday has no matching window yields an empty result, as does
// a malformed window string: this function backs a booking UI and
// treats configuration errors as "no availability" rather than failing.
func ComputeAvailableSlots(availability []string, targetDate time.Time, durationMinutes int, bookings []BookedInterval) []string {
	if durationMinutes <= 0 {
		return nil
	}

	windowStart, windowEnd, ok := windowForWeekday(availability, targetDate.Weekday().String())
	if !ok {
		return nil
	}

	var slots []string
	for t := windowStart; t+durationMinutes <= windowEnd; t += SlotStepMinutes {
		if overlapsAny(t, t+durationMinutes, bookings) {
			continue
		}
		slots = append(slots, FormatClockTime(t))
	}
	return slots
}

// ParseWindow parses a weekly availability entry of the form
// "<Weekday> <start>-<end>" into its weekday name and minute range.
// The window must be non-empty (start strictly before end).
func ParseWindow(entry string) (weekday string, start, end int, ok bool) {
	day, rest, found := strings.Cut(strings.TrimSpace(entry), " ")
	if !found {
		return "", 0, 0, false
	}

	startStr, endStr, found := strings.Cut(rest, "-")
	if !found {
		return "", 0, 0, false
	}
	start, sok := ParseClockTime(startStr)
	end, eok := ParseClockTime(endStr)
	if !sok || !eok || start >= end {
		return "", 0, 0, false
	}
	return day, start, end, true
}

// windowForWeekday selects the availability string whose leading token
// equals the weekday name and parses its "<start>-<end>" range.
func windowForWeekday(availability []string, weekday string) (start, end int, ok bool) {
	for _, entry := range availability {
		day, _, _ := strings.Cut(strings.TrimSpace(entry), " ")
		if !strings.EqualFold(day, weekday) {
			continue
		}
		_, start, end, ok := ParseWindow(entry)
		return start, end, ok
	}
	return 0, 0, false
}

// overlapsAny reports whether the candidate [start, end) collides with
// any booked interval. A single conflict excludes the slot.
func overlapsAny(start, end int, bookings []BookedInterval) bool {
	for _, b := range bookings {
		if start < b.End() && end > b.Start {
			return true
		}
	}
	return false
}
