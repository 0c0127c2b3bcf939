package surprise

import (
	"errors"
	"fmt"
)

// ErrPreconditionViolation is matched by every input rejected before evaluation.
var ErrPreconditionViolation = errors.New("precondition violation")

// PreconditionError describes which input fell outside the hypergeometric support.
type PreconditionError struct {
	Op         string // Operation that rejected the input (e.g., "LogBinomial", "Score")
	Field      string // Offending parameter
	Value      int64  // Offending value
	Constraint string // Human readable bound, e.g. "<= min(N, M) = 15"
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v: %s", e.Op, ErrPreconditionViolation, e.Constraint)
	}
	return fmt.Sprintf("%s: %v: %s=%d must be %s", e.Op, ErrPreconditionViolation, e.Field, e.Value, e.Constraint)
}

// Unwrap returns the sentinel so callers can use errors.Is.
func (e *PreconditionError) Unwrap() error {
	return ErrPreconditionViolation
}

// Is reports whether target is the precondition sentinel.
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPreconditionViolation
}

func violation(op, field string, value int64, format string, args ...any) error {
	return &PreconditionError{
		Op:         op,
		Field:      field,
		Value:      value,
		Constraint: fmt.Sprintf(format, args...),
	}
}
