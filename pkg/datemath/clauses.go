package datemath

import (
	"errors"
	"strings"
	"time"
)

// errUnexpectedEnd is raised when a clause needs a token that isn't there.
// It aborts the whole parse; the entry point turns it into a total failure.
var errUnexpectedEnd = errors.New("unexpected end of input")

// errClockOutOfRange aborts the parse when an "at" clause resolves an hour
// or minute that no clock has.
var errClockOutOfRange = errors.New("clock value out of range")

// parseNext interprets the tokens following a "next" keyword.
//
// Extra leading "next" tokens each push the result one unit further out:
// "next next tuesday" is the tuesday after next. The unit token decides the
// arithmetic; an unrecognized unit leaves the reference unchanged.
func parseNext(ts *tokenStream, cur time.Time) (time.Time, error) {
	tok, ok := ts.consume()
	if !ok {
		return time.Time{}, errUnexpectedEnd
	}

	offset := 0
	for tok == "next" {
		tok, ok = ts.consume()
		if !ok {
			return time.Time{}, errUnexpectedEnd
		}
		offset++
	}

	switch tok {
	case "week":
		if ts.weekdayCrossed {
			// A weekday earlier in the phrase already moved into next
			// week; only the extra "next"s count.
			return cur.AddDate(0, 0, 7*offset), nil
		}
		// Monday that starts the next week, plus any extra weeks.
		return cur.AddDate(0, 0, 7-mondayIndex(cur)+7*offset), nil
	case "day":
		return cur.AddDate(0, 0, offset+1), nil
	case "month":
		// Lands on the first of the target month.
		t := addMonths(cur, offset+1)
		return time.Date(t.Year(), t.Month(), 1,
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()), nil
	}

	if wd := weekdayIndex(tok); wd >= 0 {
		return nextWeekday(cur, wd).AddDate(0, 0, 7*offset), nil
	}

	// Unrecognized unit: deliberate no-op, not an error.
	return cur, nil
}

// parseIn interprets the tokens following an "in" keyword: an optional
// "a"/"an" article, an optional count (default 1), and a unit word in
// singular or plural form. An unrecognized unit is a silent no-op.
func parseIn(ts *tokenStream, cur time.Time) (time.Time, error) {
	ts.match("a", "an")

	tok, ok := ts.consume()
	if !ok {
		return time.Time{}, errUnexpectedEnd
	}

	offset := 1
	if n, isNum := parseIntToken(tok); isNum {
		offset = n
		if tok, ok = ts.consume(); !ok {
			return time.Time{}, errUnexpectedEnd
		}
	}

	switch {
	case matchesUnit(tok, "minute"):
		ts.precise = true
		return cur.Add(time.Duration(offset) * time.Minute), nil
	case matchesUnit(tok, "hour"):
		ts.precise = true
		return cur.Add(time.Duration(offset) * time.Hour), nil
	case matchesUnit(tok, "day"):
		return cur.AddDate(0, 0, offset), nil
	case matchesUnit(tok, "week"):
		if ts.weekdayCrossed {
			// "in a week monday": the weekday resolution already
			// crossed into next week, so one week is already counted.
			offset--
		}
		return cur.AddDate(0, 0, 7*offset), nil
	case matchesUnit(tok, "month"):
		return addMonths(cur, offset), nil
	}

	return cur, nil
}

// parseAt interprets a time-of-day. candidate is non-empty when the driver
// saw a bare numeric token and treats it as time shorthand; otherwise the
// token after "at" is used. When the following token is also numeric it is
// concatenated on, which lets "at 5 45" mean 05:45. A candidate that isn't
// numeric (colon aside) leaves the reference unchanged.
func parseAt(ts *tokenStream, cur time.Time, candidate string) (time.Time, error) {
	tok := candidate
	if tok == "" {
		var ok bool
		if tok, ok = ts.consume(); !ok {
			return time.Time{}, errUnexpectedEnd
		}
	}

	if _, isNum := parseIntToken(strings.ReplaceAll(tok, ":", "")); !isNum {
		return cur, nil
	}

	if next, ok := ts.peek(); ok {
		if _, isNum := parseIntToken(next); isNum {
			more, _ := ts.consume()
			tok += more
		}
	}

	hour, minute, ok := parseClock(tok)
	if !ok {
		return cur, nil
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, errClockOutOfRange
	}

	ts.precise = true
	return time.Date(cur.Year(), cur.Month(), cur.Day(), hour, minute,
		cur.Second(), cur.Nanosecond(), cur.Location()), nil
}
