package domain

import (
	"errors"
	"strings"
)

// Error kinds. Match with errors.Is; the HTTP layer maps each to a status.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrAccessDenied = errors.New("access denied")
	ErrConflict     = errors.New("conflict")
	ErrAuth         = errors.New("authentication failed")
)

// Error carries a client-safe message for one of the error kinds.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func NotFound(msg string) error     { return &Error{Kind: ErrNotFound, Message: msg} }
func AccessDenied(msg string) error { return &Error{Kind: ErrAccessDenied, Message: msg} }
func Conflict(msg string) error     { return &Error{Kind: ErrConflict, Message: msg} }
func Unauthorized(msg string) error { return &Error{Kind: ErrAuth, Message: msg} }

// FieldError is one failed rule on one input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Add records a failure for field.
func (e *ValidationError) Add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// Has reports whether field has at least one failure.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Err returns e when it has failures and nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Invalid is shorthand for a single-field ValidationError.
func Invalid(field, msg string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: msg}}}
}
