// File: vetcare/services/scheduling/dateparse.go
package scheduling

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// 4-digit year first: "2024-03-15", "2024/3/5".
	yearFirstPattern = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	// 1-2 digit components with optional 4-digit year: "03/15/2024", "3-4".
	shortDatePattern = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})(?:[-/](\d{4}))?$`)
)

// ParseUserDate resolves free-form date text to a calendar date at
// local midnight, or reports failure. It never panics on malformed
// input; the second return value is false when the text does not match
// a recognized shape or names an impossible date (Feb 30, month 13).
//
// ref supplies the default year for short dates entered without one,
// so behavior stays deterministic under test; callers pass time.Now().
//
// Short numeric dates are ambiguous ("03/04": March 4th or April
// 3rd?). The month-first (US-style) reading is preferred, falling back
// to day-first only when month-first is calendrically impossible.
func ParseUserDate(input string, ref time.Time) (time.Time, bool) {
	s := strings.TrimSpace(input)

	if m := yearFirstPattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return makeDate(year, month, day)
	}

	if m := shortDatePattern.FindStringSubmatch(s); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		year := ref.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}

		// Month-first, then swap roles if that cannot be a real date.
		if d, ok := makeDate(year, first, second); ok {
			return d, true
		}
		return makeDate(year, second, first)
	}

	return time.Time{}, false
}

// makeDate constructs a local-midnight date and verifies the
// components round-trip, rejecting values time.Date would silently
// normalize (day 32 rolling into the next month).
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
