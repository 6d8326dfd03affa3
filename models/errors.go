package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies schedule domain failures so callers can map them to a
// transport-level response without string matching.
type ErrorKind string

const (
	// ErrKindFormat marks malformed time or date text. Caller input bug, never retried.
	ErrKindFormat ErrorKind = "format"
	// ErrKindValidation marks semantically invalid intervals or conflicting schedule state.
	ErrKindValidation ErrorKind = "validation"
	// ErrKindNotFound marks a targeted template/override that does not exist.
	ErrKindNotFound ErrorKind = "not_found"
	// ErrKindConflict marks a write that lost a race; retry the whole sequence once.
	ErrKindConflict ErrorKind = "conflict"
)

// Error is the structured failure type returned by the scheduling core.
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewFormatError(field, message string) *Error {
	return &Error{Kind: ErrKindFormat, Field: field, Message: message}
}

func NewValidationError(field, message string) *Error {
	return &Error{Kind: ErrKindValidation, Field: field, Message: message}
}

func NewNotFoundError(field, message string) *Error {
	return &Error{Kind: ErrKindNotFound, Field: field, Message: message}
}

func NewConflictError(field, message string) *Error {
	return &Error{Kind: ErrKindConflict, Field: field, Message: message}
}

// IsKind reports whether err is (or wraps) a schedule Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == kind
}

// KindOf extracts the kind of a schedule Error, or "" for foreign errors.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
