// Package tokens yields the strings of a command line invocation one at a
// time.
package tokens

import "errors"

// ErrExhausted is returned by Peek and Next when no tokens remain.
var ErrExhausted = errors.New("tokens: stream is exhausted")

// Stream is a forward-only cursor over a borrowed token slice.
type Stream struct {
	tokens []string
	next   int
}

// New returns a stream positioned at the first token.
func New(tokens []string) *Stream {
	return &Stream{tokens: tokens}
}

// Remaining is the number of tokens not yet consumed.
func (s *Stream) Remaining() int {
	return len(s.tokens) - s.next
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() (string, error) {
	if s.Remaining() == 0 {
		return "", ErrExhausted
	}
	return s.tokens[s.next], nil
}

// Next consumes and returns the next token.
func (s *Stream) Next() (string, error) {
	tok, err := s.Peek()
	if err != nil {
		return "", err
	}
	s.next++
	return tok, nil
}
