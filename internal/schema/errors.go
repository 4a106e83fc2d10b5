package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a generator input lacks a required field.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField is returned when a field holds an out-of-range value.
	ErrInvalidField = errors.New("invalid field")
)

// MissingFieldError names the schema and field that were missing.
type MissingFieldError struct {
	Schema string
	Field  string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s schema: %s: %s", e.Schema, ErrMissingField, e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

func missing(schema, field string) error {
	return &MissingFieldError{Schema: schema, Field: field}
}

// InvalidFieldError names a field whose value was rejected.
type InvalidFieldError struct {
	Schema string
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s schema: %s: %s %s", e.Schema, ErrInvalidField, e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidField.
func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}
