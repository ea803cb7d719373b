// Package parse provides the token cursor and command-line lexing used by
// the parser.
package parse

import (
	deque "github.com/ef-ds/deque/v2"
)

// State is a peekable cursor over the remaining argument tokens of one parse
type State interface {
	// Peek returns the next token without consuming it
	Peek() (string, bool)
	// Next consumes and returns the next token
	Next() (string, bool)
	// Len returns the number of remaining tokens
	Len() int
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	tokens deque.Deque[string]
}

// NewState creates a new State over the given argument list
func NewState(args []string) State {
	s := &DefaultState{}
	for _, arg := range args {
		s.tokens.PushBack(arg)
	}

	return s
}

// Peek returns the next token without consuming it
func (s *DefaultState) Peek() (string, bool) {
	return s.tokens.Front()
}

// Next consumes and returns the next token
func (s *DefaultState) Next() (string, bool) {
	return s.tokens.PopFront()
}

// Len returns the number of remaining tokens
func (s *DefaultState) Len() int {
	return s.tokens.Len()
}
