// File: vetcare/services/scheduling/clock.go
package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Matches "HH:MM", "H:MM AM" and "H:MM PM" (case-insensitive meridiem).
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s*(AM|PM))?$`)

// ParseClockTime converts a clock string to minutes since midnight.
// Both 24-hour ("14:30") and 12-hour ("2:30 PM") forms are accepted;
// availability windows and stored booking times go through this same
// routine so the two can never drift apart.
//
// 12-hour rule: 12 AM maps to hour 0, 12 PM stays 12, any other PM
// hour gets +12. Returns false for anything else.
func ParseClockTime(s string) (int, bool) {
	m := clockPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return 0, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if minute > 59 {
		return 0, false
	}

	switch m[3] {
	case "":
		// 24-hour clock.
		if hour > 23 {
			return 0, false
		}
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	}

	return hour*60 + minute, true
}

// FormatClockTime renders minutes since midnight as a 12-hour display
// string ("9:00 AM"): no leading zero on the hour, zero-padded minutes.
// Formatting a value and re-parsing it with ParseClockTime round-trips
// exactly.
func FormatClockTime(minutes int) string {
	hour := (minutes / 60) % 24
	minute := minutes % 60

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHour, minute, meridiem)
}
