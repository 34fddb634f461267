// ABOUTME: Error types and handling for the translator library
// ABOUTME: Provides structured errors with context for client setup

package translator

import (
	"errors"
	"fmt"

	coreerrors "profile-translate-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrNoStorage is returned when the client is built without profile or settings storage
var ErrNoStorage = NewError(ErrorTypeConfiguration, "no profile storage configured")

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == ErrorTypeConfiguration
	}
	return false
}

// IsNoSuchDescription reports whether err means the requested user does not exist
func IsNoSuchDescription(err error) bool {
	return coreerrors.HasID(err, coreerrors.IDNoSuchDescription)
}
