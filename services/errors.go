package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownUser is returned when intake references an unregistered email.
	ErrUnknownUser = errors.New("unknown user")

	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when a status move is not an edge of
	// the transition graph (including no-op moves and moves out of a terminal
	// status). Callers recover by re-reading the current state.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNoMechanicAvailable is a business condition, not a fault: the caller
	// should leave the complaint unassigned rather than fail the request.
	ErrNoMechanicAvailable = errors.New("no mechanic available")

	// ErrConflict signals an optimistic-write collision; retry with fresh state.
	ErrConflict = errors.New("concurrent update conflict")

	// ErrPersistence wraps collaborator faults. The core never retries these.
	ErrPersistence = errors.New("persistence error")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError enumerates every violated field so forms can highlight all
// problems at once instead of failing on the first one.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) has() bool { return len(e.Fields) > 0 }

func persistErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}
