package datemath

import "strings"

// tokenStream is a forward-only cursor over the token sequence. It also
// carries the cross-cutting interpretation state shared between the
// expression driver and the clause parsers:
//
//   - precise: a time-of-day was resolved (false→true only)
//   - anyInfo: at least one date keyword was recognized (false→true only)
//   - weekdayCrossed: a bare weekday reference rolled into the following
//     week, so a later "in N weeks" must not count that week twice
type tokenStream struct {
	tokens []string
	pos    int

	precise        bool
	anyInfo        bool
	weekdayCrossed bool
}

// newTokenStream lower-cases the input and splits it on runs of whitespace.
// Empty tokens are dropped; punctuation stays attached ("6:30" is one token).
func newTokenStream(text string) *tokenStream {
	return &tokenStream{tokens: strings.Fields(strings.ToLower(text))}
}

// peek returns the next token without consuming it.
func (s *tokenStream) peek() (string, bool) {
	if s.pos >= len(s.tokens) {
		return "", false
	}
	return s.tokens[s.pos], true
}

// consume returns the next token and advances the cursor.
func (s *tokenStream) consume() (string, bool) {
	tok, ok := s.peek()
	if ok {
		s.pos++
	}
	return tok, ok
}

// match consumes and returns the next token only if it equals one of the
// candidates; otherwise the cursor does not move.
func (s *tokenStream) match(candidates ...string) (string, bool) {
	tok, ok := s.peek()
	if !ok {
		return "", false
	}
	for _, c := range candidates {
		if tok == c {
			return s.consume()
		}
	}
	return "", false
}

// remaining returns the unconsumed tail of the token sequence.
func (s *tokenStream) remaining() []string {
	return s.tokens[s.pos:]
}
