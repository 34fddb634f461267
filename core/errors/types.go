// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured and identified errors for lookups, validation and provider calls

package errors

import (
	"errors"
	"fmt"
)

// Identifiers for errors that callers match on by ID rather than by type.
const (
	// IDNoSuchUser is raised by profile lookups when the user does not exist
	IDNoSuchUser = "9725d0ce-ba28-4dde-95a7-2cbb2c15de24"

	// IDNoSuchDescription is raised by the translate operation for unknown users
	IDNoSuchDescription = "bea9b03f-36e0-49c5-a4db-627a029f8971"
)

// ErrNoSuchDescription is returned when the user whose description was
// requested cannot be found.
var ErrNoSuchDescription = &APIError{
	Code:    "NO_SUCH_DESCRIPTION",
	ID:      IDNoSuchDescription,
	Message: "No such description.",
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// APIError is an error the API surfaces to clients with a stable code and ID
type APIError struct {
	Code    string
	ID      string
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%s): %s", e.Code, e.ID, e.Message)
}

// NewNoSuchUserError builds the lookup error for an unknown user
func NewNoSuchUserError() *APIError {
	return &APIError{
		Code:    "NO_SUCH_USER",
		ID:      IDNoSuchUser,
		Message: "No such user.",
	}
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// HasID reports whether err, or anything it wraps, is an APIError with the given ID
func HasID(err error, id string) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.ID == id
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
