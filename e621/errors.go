package e621

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors
var (
	// ErrMissingProject indicates NewClient was called without a project name
	ErrMissingProject = errors.New("e621: project name is required to identify your project")
	// ErrInvalidArgument is matched by every ValidationError
	ErrInvalidArgument = errors.New("e621: invalid argument")
)

// ValidationError is returned before any request is sent when the caller's
// arguments are incomplete or out of range.
type ValidationError struct {
	// Op is the client method that rejected the call.
	Op string
	// Missing lists required arguments that were not supplied.
	Missing []string
	// Field and Reason describe a supplied but invalid argument.
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		noun := "argument"
		if len(e.Missing) > 1 {
			noun = "arguments"
		}
		return fmt.Sprintf("e621: %s: missing required %s: %s", e.Op, noun, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("e621: %s: invalid %s: %s", e.Op, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func invalidArg(op, field, format string, args ...any) *ValidationError {
	return &ValidationError{Op: op, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// argCheck pairs an argument name with whether it is missing.
type argCheck struct {
	name    string
	missing bool
}

func arg(name string, missing bool) argCheck {
	return argCheck{name: name, missing: missing}
}

// requireArgs collects every missing argument into one ValidationError.
func requireArgs(op string, checks ...argCheck) error {
	var missing []string
	for _, c := range checks {
		if c.missing {
			missing = append(missing, c.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Op: op, Missing: missing}
}

// StatusError reports a response whose status differs from the one the
// operation expects. The response is returned alongside it.
type StatusError struct {
	Method     string
	Path       string
	Expected   int
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("e621 API error: %s %s: status %d (expected %d): %s",
		e.Method, e.Path, e.StatusCode, e.Expected, truncate(e.Body, 256))
}

// IsNotFound checks if the error indicates a not found response
func (e *StatusError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *StatusError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the server asked the caller to slow down
func (e *StatusError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode == http.StatusServiceUnavailable
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
