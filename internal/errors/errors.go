// Package errors provides consistent error types for the Voxnote CLI.
// It defines two main categories: UserError (fixable by user) and
// SystemError (host or environment issues).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrCaptureUnsupported = errors.New("speech capture is not available on this system")
	ErrCaptureActive      = errors.New("a capture session is already active")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrTextTooLong        = errors.New("entry text too long")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
)

// UserError represents an error that the user can fix.
// Examples: invalid input, missing required arguments, incorrect format.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
}

func (e *UserError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// SystemError represents a system-level error that the user cannot directly fix.
// Examples: missing transcriber binary, capture process failure.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
	}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
