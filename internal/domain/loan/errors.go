package loan

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound  = errors.New("loan not found")
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidTransition is the match target for TransitionError; repositories
	// return it directly when a compare-and-set update touches zero rows.
	ErrInvalidTransition = errors.New("invalid transition")
)

// TransitionError reports a refused lifecycle transition: the attempted
// operation plus the status the record was in when it was refused.
type TransitionError struct {
	Op      Operation
	Current Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot %s loan in status %q", e.Op, e.Current)
}

func (e *TransitionError) Is(target error) bool { return target == ErrInvalidTransition }

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every failed field of a malformed submission so the
// caller can present all problems at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "validation failed: " + strings.Join(names, ", ")
}

// HasField reports whether the error names the given field.
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// UpstreamError wraps a persistence or cache failure. Transient from the
// engine's point of view: safe for the caller to retry, never retried here.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("upstream %s: %v", e.Op, e.Err) }
func (e *UpstreamError) Unwrap() error { return e.Err }
