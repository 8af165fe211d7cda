package collection

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidJSON is returned when the document is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = errors.New("missing field")

	// ErrUnexpectedType is returned when a field holds the wrong kind of JSON value.
	ErrUnexpectedType = errors.New("unexpected type")
)

// FieldError records where in the document a field could not be read or written.
type FieldError struct {
	Location string
	Field    string
	Err      error
}

func (e *FieldError) Error() string {
	loc := e.Location
	if loc == "" {
		loc = "<root>"
	}
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", loc, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missing(loc, field string) error {
	return &FieldError{Location: loc, Field: field, Err: ErrMissingField}
}

func wrongType(loc, field, want string) error {
	return &FieldError{Location: loc, Field: field, Err: fmt.Errorf("%w: want %s", ErrUnexpectedType, want)}
}
