package store

import (
	"errors"
	"fmt"
)

// Error represents a failed store operation.
//
// Store errors include:
//   - Validation: malformed or missing required input field
//   - Not found: operation referencing a nonexistent id/name
//   - Duplicate: category name collision
//   - Conflict: category deletion while still referenced
//   - Format: import document missing required sections
//   - Auth: login candidate mismatch
//   - Persistence: in-memory mutation succeeded but the flush failed
//
// Error includes structured fields for diagnostics; no store error is
// fatal, every failure returns control to the previous valid state.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Field names the offending input field (validation errors).
	Field string

	// Ref identifies the affected id or name, when one exists.
	Ref string

	// Err is the underlying cause (persistence errors).
	Err error
}

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// ErrCodeValidation indicates malformed or missing required input.
	ErrCodeValidation ErrorCode = "VALIDATION"

	// ErrCodeNotFound indicates a reference to a nonexistent id or name.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeDuplicate indicates a category name collision.
	ErrCodeDuplicate ErrorCode = "DUPLICATE"

	// ErrCodeConflict indicates a refused category deletion while in use.
	ErrCodeConflict ErrorCode = "CONFLICT"

	// ErrCodeFormat indicates an import document missing required sections.
	ErrCodeFormat ErrorCode = "FORMAT"

	// ErrCodeAuth indicates a failed login attempt.
	ErrCodeAuth ErrorCode = "AUTH"

	// ErrCodePersistence indicates state was mutated in memory but the
	// durable flush failed.
	ErrCodePersistence ErrorCode = "PERSISTENCE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Ref != "" && e.Field != "":
		return fmt.Sprintf("%s: %s (field=%s, ref=%s)", e.Code, e.Message, e.Field, e.Ref)
	case e.Field != "":
		return fmt.Sprintf("%s: %s (field=%s)", e.Code, e.Message, e.Field)
	case e.Ref != "":
		return fmt.Sprintf("%s: %s (ref=%s)", e.Code, e.Message, e.Ref)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf extracts the error code from an error chain.
// Returns the empty code if err is not a store error.
func CodeOf(err error) ErrorCode {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsValidation reports whether err is a validation error.
// Uses errors.As to handle wrapped errors.
func IsValidation(err error) bool { return CodeOf(err) == ErrCodeValidation }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return CodeOf(err) == ErrCodeNotFound }

// IsDuplicate reports whether err is a duplicate-name error.
func IsDuplicate(err error) bool { return CodeOf(err) == ErrCodeDuplicate }

// IsConflict reports whether err is a refused-deletion conflict.
func IsConflict(err error) bool { return CodeOf(err) == ErrCodeConflict }

// IsFormat reports whether err is an import format error.
func IsFormat(err error) bool { return CodeOf(err) == ErrCodeFormat }

// IsAuth reports whether err is an authentication failure.
func IsAuth(err error) bool { return CodeOf(err) == ErrCodeAuth }

// IsPersistence reports whether err is a failed durable flush.
func IsPersistence(err error) bool { return CodeOf(err) == ErrCodePersistence }

// NewValidationError creates an Error for a rejected input field.
func NewValidationError(field, message string) *Error {
	return &Error{Code: ErrCodeValidation, Message: message, Field: field}
}

// NewNotFoundError creates an Error for a missing id or name.
func NewNotFoundError(kind, ref string) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", kind),
		Ref:     ref,
	}
}

// NewDuplicateError creates an Error for a category name collision.
func NewDuplicateError(name string) *Error {
	return &Error{
		Code:    ErrCodeDuplicate,
		Message: "category already exists",
		Ref:     name,
	}
}

// NewConflictError creates an Error for a category still in use.
func NewConflictError(name string, count int) *Error {
	return &Error{
		Code:    ErrCodeConflict,
		Message: fmt.Sprintf("category is referenced by %d product(s)", count),
		Ref:     name,
	}
}

// NewFormatError creates an Error for an invalid import document.
func NewFormatError(message string) *Error {
	return &Error{Code: ErrCodeFormat, Message: message}
}

// NewAuthError creates an Error for a failed login.
func NewAuthError() *Error {
	return &Error{Code: ErrCodeAuth, Message: "incorrect store password"}
}

// NewPersistenceError creates an Error for a failed durable flush.
// The in-memory mutation has already been applied when this is returned.
func NewPersistenceError(key string, err error) *Error {
	return &Error{
		Code:    ErrCodePersistence,
		Message: "state mutated but not saved",
		Ref:     key,
		Err:     err,
	}
}
