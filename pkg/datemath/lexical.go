package datemath

import (
	"strconv"
	"strings"
	"time"
)

// weekday names indexed Monday=0 .. Sunday=6.
var dayNames = [7]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// weekdayIndex maps a token to a weekday ordinal (Monday=0), or -1.
//
// A token shorter than 3 characters never matches. Otherwise it matches on
// an exact name, or as an abbreviation when it is a contiguous substring of
// the day name with every "day" removed: "mon" → monday, "tues" → tuesday,
// even "ues" → tuesday. The looseness is intentional; "day" itself can never
// pick a specific day.
func weekdayIndex(tok string) int {
	if len(tok) < 3 {
		return -1
	}
	for i, name := range dayNames {
		if tok == name {
			return i
		}
		if strings.Contains(strings.ReplaceAll(name, "day", ""), tok) {
			return i
		}
	}
	return -1
}

// mondayIndex returns t's weekday with Monday=0 .. Sunday=6.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// nextWeekday returns the closest date on or after t that falls on the
// target weekday. When t already is that weekday it returns t itself;
// callers wanting the next distinct occurrence add 7 days themselves.
func nextWeekday(t time.Time, target int) time.Time {
	return t.AddDate(0, 0, (target-mondayIndex(t)+7)%7)
}

// crossesWeek reports whether resolving the target weekday from t lands in
// the following week rather than later in the current one.
func crossesWeek(t time.Time, target int) bool {
	return target < mondayIndex(t)
}

// parseIntToken is a strict base-10 integer parse: digits only, no sign.
func parseIntToken(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseClock interprets a token as a clock time, trying in order:
//
//  1. "H:MM" / "HH:MM" — colon form, exactly two minute digits
//  2. "HMM" / "HHMM" — compact form, 3 or 4 digits, last two are minutes
//  3. "H" / "HH" — bare hour, minutes zero
func parseClock(tok string) (hour, minute int, ok bool) {
	if h, m, found := strings.Cut(tok, ":"); found {
		if len(h) < 1 || len(h) > 2 || len(m) != 2 {
			return 0, 0, false
		}
		hour, hok := parseIntToken(h)
		minute, mok := parseIntToken(m)
		if !hok || !mok {
			return 0, 0, false
		}
		return hour, minute, true
	}
	if _, isNum := parseIntToken(tok); !isNum {
		return 0, 0, false
	}
	switch len(tok) {
	case 3, 4:
		hour, _ = parseIntToken(tok[:len(tok)-2])
		minute, _ = parseIntToken(tok[len(tok)-2:])
		return hour, minute, true
	case 1, 2:
		hour, _ = parseIntToken(tok)
		return hour, 0, true
	}
	return 0, 0, false
}

// matchesUnit reports whether tok is the unit word or its plural.
func matchesUnit(tok, unit string) bool {
	return tok == unit || tok == unit+"s"
}

// addMonths performs calendar-aware month addition, clamping the day of
// month to the last valid day of the target month (Jan 31 + 1 month is the
// last day of February). Clock components are preserved.
func addMonths(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month(), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).
		AddDate(0, months, 0)

	day := t.Day()
	if last := lastDayOfMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
