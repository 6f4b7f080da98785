package errors

import (
	"fmt"
	"net/http"
)

// Common error creators for frequent use cases

// NewValidationError creates a validation error with field context
func NewValidationError(field, message string) *AppError {
	return New(ErrCodeValidationFailed, message).
		WithContext("field", field).
		WithUserMessage(message)
}

// NewConfigError creates a configuration error
func NewConfigError(key, message string) *AppError {
	return New(ErrCodeInvalidConfig, message).
		WithContext("config_key", key).
		WithUserMessage("Configuration error")
}

// NewAuthRequiredError creates an error for requests with no valid session
func NewAuthRequiredError() *AppError {
	return New(ErrCodeAuthRequired, "no authenticated session").
		WithUserMessage("Not authenticated")
}

// NewSessionExpiredError creates an error for idle-expired sessions
func NewSessionExpiredError() *AppError {
	return New(ErrCodeSessionExpired, "session idle timeout exceeded").
		WithUserMessage("Session expired")
}

// NewCsrfError creates an error for missing or mismatched CSRF tokens
func NewCsrfError() *AppError {
	return New(ErrCodeCsrfMismatch, "csrf token missing or mismatched").
		WithUserMessage("Invalid CSRF token")
}

// NewNotFoundError creates a not found error with resource context
func NewNotFoundError(resource, identifier string) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource)).
		WithContext("resource", resource).
		WithContext("identifier", identifier).
		WithUserMessage(fmt.Sprintf("%s not found", resource))
}

// NewPersistenceError wraps a store encode/write failure
func NewPersistenceError(operation string, err error) *AppError {
	return Wrap(err, ErrCodePersistence, fmt.Sprintf("store %s failed", operation)).
		WithContext("operation", operation).
		WithUserMessage("Failed to persist data")
}

// HTTPStatusCode maps error codes to appropriate HTTP status codes
func HTTPStatusCode(err error) int {
	code := GetCode(err)

	switch code {
	case ErrCodeValidationFailed, ErrCodeInvalidInput, ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case ErrCodeAuthRequired, ErrCodeSessionExpired:
		return http.StatusUnauthorized
	case ErrCodeCsrfMismatch:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodePersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
