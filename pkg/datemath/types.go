package datemath

import "time"

// Result holds the outcome of parsing a free-form reminder line.
type Result struct {
	// DueAt is the resolved due instant. Only meaningful when HasDue is true.
	DueAt time.Time
	// HasDue reports whether the line carried any date information at all.
	// When false the whole input collapsed into Title.
	HasDue bool
	// Title is the leftover free text, whitespace-normalized, in input order.
	Title string
	// Precise reports whether a time-of-day was resolved. When false the
	// result represents an all-day date.
	Precise bool
}

// AllDay reports whether the result should be stored as an all-day task.
func (r Result) AllDay() bool {
	return !r.Precise
}
