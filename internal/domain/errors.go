// Package domain contains business logic types and errors.
// Domain errors represent roster-level failures, NOT presentation errors.
// They are infrastructure-agnostic and are mapped to user messages by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested person does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a person is missing one of its required fields.
	ErrValidation = errors.New("validation failed")

	// ErrIO indicates a roster file could not be opened, read or written.
	ErrIO = errors.New("i/o failure")

	// ErrParse indicates a roster file is not well-formed.
	ErrParse = errors.New("parse failure")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IOError wraps a file system failure with the operation and path involved.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Op, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes both the ErrIO sentinel and the underlying cause.
func (e *IOError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrIO}
	}

	return []error{ErrIO, e.Err}
}

// NewIOError creates an I/O error for op on path.
func NewIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}

// ParseError reports a malformed roster document. Line is 0 when unknown.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	where := e.Path
	if where == "" {
		where = "document"
	}

	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", where, e.Line)
	}

	if e.Err != nil {
		return fmt.Sprintf("parsing %s: %v", where, e.Err)
	}

	return "parsing " + where
}

// Unwrap exposes both the ErrParse sentinel and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}

	return []error{ErrParse, e.Err}
}

// NewParseError creates a parse error for path.
func NewParseError(path string, line int, err error) error {
	return &ParseError{Path: path, Line: line, Err: err}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsIO checks if an error is an I/O error.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsParse checks if an error is a parse error.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}
