package datemath

import (
	"reflect"
	"testing"
	"time"
)

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		tok  string
		want int
	}{
		{"monday", 0},
		{"tuesday", 1},
		{"sunday", 6},
		{"mon", 0},
		{"tue", 1},
		{"tues", 1},
		{"ues", 1}, // loose by design: substring of "tues"
		{"wednes", 2},
		{"thurs", 3},
		{"fri", 4},
		{"satur", 5},
		{"sun", 6},
		{"day", -1}, // "day" is stripped before matching
		{"mo", -1},  // too short
		{"fr", -1},
		{"someday", -1},
		{"", -1},
	}
	for _, tt := range tests {
		if got := weekdayIndex(tt.tok); got != tt.want {
			t.Errorf("weekdayIndex(%q) = %d, want %d", tt.tok, got, tt.want)
		}
	}
}

func TestNextWeekday(t *testing.T) {
	sat := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	// Same weekday resolves to today, not next week.
	if got := nextWeekday(sat, 5); !got.Equal(sat) {
		t.Errorf("nextWeekday to same day = %v, want %v", got, sat)
	}
	if got := nextWeekday(sat, 0); got.Day() != 2 {
		t.Errorf("nextWeekday(sat, monday) = %v, want June 2", got)
	}
	if got := nextWeekday(sat, 6); got.Day() != 1 {
		t.Errorf("nextWeekday(sat, sunday) = %v, want June 1", got)
	}

	if !crossesWeek(sat, 0) {
		t.Errorf("monday from saturday should cross the week boundary")
	}
	if crossesWeek(sat, 6) {
		t.Errorf("sunday from saturday should not cross the week boundary")
	}
}

func TestParseIntToken(t *testing.T) {
	for tok, want := range map[string]bool{
		"0":    true,
		"42":   true,
		"007":  true,
		"":     false,
		"-1":   false,
		"+1":   false,
		"4 2":  false,
		"42x":  false,
		"x42":  false,
		"4.2":  false,
		"½":    false,
		"4:20": false,
	} {
		if _, got := parseIntToken(tok); got != want {
			t.Errorf("parseIntToken(%q) ok = %v, want %v", tok, got, want)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		tok    string
		hour   int
		minute int
		ok     bool
	}{
		{"6:30", 6, 30, true},
		{"17:45", 17, 45, true},
		{"530", 5, 30, true},
		{"1745", 17, 45, true},
		{"6", 6, 0, true},
		{"17", 17, 0, true},
		{"17:5", 0, 0, false},  // minutes need two digits
		{"123:45", 0, 0, false},
		{"12345", 0, 0, false}, // too many digits for compact form
		{"6:3a", 0, 0, false},
		{"noon", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		hour, minute, ok := parseClock(tt.tok)
		if ok != tt.ok || hour != tt.hour || minute != tt.minute {
			t.Errorf("parseClock(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tt.tok, hour, minute, ok, tt.hour, tt.minute, tt.ok)
		}
	}
}

func TestMatchesUnit(t *testing.T) {
	if !matchesUnit("day", "day") || !matchesUnit("days", "day") {
		t.Errorf("singular and plural forms should match")
	}
	if matchesUnit("dayx", "day") || matchesUnit("da", "day") {
		t.Errorf("only a trailing s pluralizes")
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{
			name:   "clamps to shorter month",
			start:  time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "no clamp when target month is long enough",
			start:  time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
			months: 2,
			want:   time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "february non-leap",
			start:  time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "february leap",
			start:  time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "year rollover keeps clock",
			start:  time.Date(2025, 11, 15, 9, 30, 0, 0, time.UTC),
			months: 3,
			want:   time.Date(2026, 2, 15, 9, 30, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := addMonths(tt.start, tt.months); !got.Equal(tt.want) {
				t.Errorf("addMonths(%v, %d) = %v, want %v", tt.start, tt.months, got, tt.want)
			}
		})
	}
}

func TestTokenStream(t *testing.T) {
	ts := newTokenStream("  Buy   MILK next  Tuesday ")

	if got := ts.remaining(); !reflect.DeepEqual(got, []string{"buy", "milk", "next", "tuesday"}) {
		t.Fatalf("remaining() = %v", got)
	}

	if tok, ok := ts.peek(); !ok || tok != "buy" {
		t.Errorf("peek() = %q, %v", tok, ok)
	}
	if tok, ok := ts.consume(); !ok || tok != "buy" {
		t.Errorf("consume() = %q, %v", tok, ok)
	}

	// match is a no-op when the next token is not a candidate.
	if _, ok := ts.match("next"); ok {
		t.Errorf("match should not consume %q", "milk")
	}
	if tok, ok := ts.consume(); !ok || tok != "milk" {
		t.Errorf("consume() = %q, %v", tok, ok)
	}
	if tok, ok := ts.match("in", "next"); !ok || tok != "next" {
		t.Errorf("match() = %q, %v", tok, ok)
	}

	if got := ts.remaining(); !reflect.DeepEqual(got, []string{"tuesday"}) {
		t.Errorf("remaining() = %v", got)
	}

	ts.consume()
	if _, ok := ts.consume(); ok {
		t.Errorf("consume past end should report no token")
	}
	if _, ok := ts.peek(); ok {
		t.Errorf("peek past end should report no token")
	}
}
