package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrMalformedLine    = errors.New("malformed line")
	ErrUnknownNode      = errors.New("node not in graph")
	ErrUnassignedNode   = errors.New("node has no community")
	ErrInvalidCommunity = errors.New("invalid community id")
	ErrSizeMismatch     = errors.New("partition size does not match graph")
)

// ParseError locates a failure inside an input file.
type ParseError struct {
	Path  string // Source name, empty for anonymous readers
	Line  int    // 1-based line number, 0 when not tied to a line
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	source := e.Path
	if source == "" {
		source = "input"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", source, e.Line, e.Cause)
	}
	return fmt.Sprintf("%s: %v", source, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}
