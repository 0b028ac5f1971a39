package filter

import (
	"errors"
	"fmt"
)

// ErrUnknownFilter is returned when a named filter is not registered
var ErrUnknownFilter = errors.New("filter not found")

// Error types for filter operations
type (
	// CompilationError indicates a filter expression could not be compiled
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// DecodeError indicates a response body is not a listing of objects
	DecodeError struct {
		Reason string
		Err    error
	}
)

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compilation error in '%s': %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot decode records: %s: %v", e.Reason, e.Err)
	}
	return "cannot decode records: " + e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
