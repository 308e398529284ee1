package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser splits a free-form reminder line into a due instant, a precision
// flag, and the leftover text to use as the task title.
//
// The grammar is a fixed vocabulary of relative-date keywords ("next", "in",
// "at", "tomorrow", weekday names and their abbreviations, bare numeric
// times) interpreted in a single left-to-right pass. Everything the pass
// does not recognize becomes title text. A Parser is stateless between
// calls and safe for concurrent use.
type Parser struct {
	location *time.Location
}

// NewParser creates a new parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// titleState tracks the title-capture run. A title run opens on the first
// free-text token, is closed by any recognized keyword, and once closed
// never reopens: stray free text after a closed run is dropped. That loss
// is a compatibility-preserving quirk, not an accident.
type titleState int

const (
	titleNotStarted titleState = iota
	titleActive
	titleClosed
)

// Parse interprets text against the given reference instant. The returned
// Result carries a due instant only when at least one date keyword was
// recognized. A non-nil error means the line could not be interpreted at
// all; no partial result is produced.
func (p *Parser) Parse(text string, base time.Time) (Result, error) {
	ts := newTokenStream(text)

	due, title, err := p.parseExpression(ts, base.In(p.location))
	if err != nil {
		return Result{}, fmt.Errorf("parse %q: %w", text, err)
	}

	res := Result{Title: title, Precise: ts.precise}
	if ts.anyInfo {
		res.DueAt = due
		res.HasDue = true
	}
	return res, nil
}

// ParseNow is Parse with the current time in the parser's timezone as the
// reference instant.
func (p *Parser) ParseNow(text string) (Result, error) {
	return p.Parse(text, time.Now().In(p.location))
}

// parseExpression is the top-level driver: one forward pass dispatching
// keywords to clause parsers while separating date vocabulary from title
// text.
func (p *Parser) parseExpression(ts *tokenStream, base time.Time) (time.Time, string, error) {
	result := base
	var title []string
	state := titleNotStarted

	for {
		tok, ok := ts.consume()
		if !ok {
			break
		}

		// Once a title run has started after date information is known,
		// everything to the end of input is title text, keywords included.
		if ts.anyInfo && state == titleActive {
			title = append(title, tok)
			continue
		}

		var err error
		switch {
		case tok == "next":
			ts.anyInfo = true
			state = closeTitle(state)
			result, err = parseNext(ts, result)

		case tok == "tomorrow":
			ts.anyInfo = true
			state = closeTitle(state)
			result = result.AddDate(0, 0, 1)

		case weekdayIndex(tok) >= 0:
			wd := weekdayIndex(tok)
			ts.anyInfo = true
			state = closeTitle(state)
			if crossesWeek(result, wd) {
				ts.weekdayCrossed = true
			}
			result = nextWeekday(result, wd)

		case tok == "in":
			ts.anyInfo = true
			state = closeTitle(state)
			result, err = parseIn(ts, result)

		case tok == "at":
			ts.anyInfo = true
			state = closeTitle(state)
			result, err = parseAt(ts, result, "")

		case isInteger(tok):
			// A bare number is time-of-day shorthand: "6" means "at 6".
			ts.anyInfo = true
			state = closeTitle(state)
			result, err = parseAt(ts, result, tok)

		default:
			switch state {
			case titleActive:
				title = append(title, tok)
			case titleNotStarted:
				state = titleActive
				title = append(title, tok)
			case titleClosed:
				// Stray word after a closed title run: dropped.
			}
		}
		if err != nil {
			return time.Time{}, "", err
		}
	}

	return result, strings.Join(title, " "), nil
}

func closeTitle(state titleState) titleState {
	if state == titleActive {
		return titleClosed
	}
	return state
}

func isInteger(tok string) bool {
	_, ok := parseIntToken(tok)
	return ok
}
