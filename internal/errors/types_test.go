package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorFormatting(t *testing.T) {
	err := New(ErrCodeValidationFailed, "missing id")
	assert.Equal(t, "VALIDATION_FAILED: missing id", err.Error())

	cause := fmt.Errorf("disk full")
	wrapped := Wrap(cause, ErrCodePersistence, "save failed")
	assert.Equal(t, "PERSISTENCE: save failed: disk full", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, cause))
}

func TestWithContext(t *testing.T) {
	err := New(ErrCodeNotFound, "message not found").
		WithContext("id", "msg_1001").
		WithContext("resource", "message")

	require.NotNil(t, err.Context)
	assert.Equal(t, "msg_1001", err.Context["id"])
	assert.Equal(t, "message", err.Context["resource"])
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeCsrfMismatch, GetCode(NewCsrfError()))
	assert.Equal(t, ErrCodeInternalError, GetCode(fmt.Errorf("plain error")))
}

func TestGetUserMessage(t *testing.T) {
	assert.Equal(t, "Session expired", GetUserMessage(NewSessionExpiredError()))

	// Errors without a user message fall back to a generic line so
	// internals never leak to the client.
	assert.Equal(t, "An internal error occurred", GetUserMessage(fmt.Errorf("sql: table missing")))
	assert.Equal(t, "An internal error occurred", GetUserMessage(New(ErrCodeInternalError, "oops")))
}

func TestHelperConstructors(t *testing.T) {
	tests := []struct {
		err     *AppError
		code    ErrorCode
		userMsg string
	}{
		{NewAuthRequiredError(), ErrCodeAuthRequired, "Not authenticated"},
		{NewSessionExpiredError(), ErrCodeSessionExpired, "Session expired"},
		{NewCsrfError(), ErrCodeCsrfMismatch, "Invalid CSRF token"},
		{NewValidationError("id", "Missing id"), ErrCodeValidationFailed, "Missing id"},
		{NewNotFoundError("message", "msg_1"), ErrCodeNotFound, "message not found"},
		{NewPersistenceError("write", fmt.Errorf("boom")), ErrCodePersistence, "Failed to persist data"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.userMsg, GetUserMessage(tt.err))
		})
	}
}

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{NewValidationError("id", "missing"), http.StatusBadRequest},
		{New(ErrCodeInvalidInput, "too large"), http.StatusBadRequest},
		{NewAuthRequiredError(), http.StatusUnauthorized},
		{NewSessionExpiredError(), http.StatusUnauthorized},
		{NewCsrfError(), http.StatusForbidden},
		{NewNotFoundError("message", "x"), http.StatusNotFound},
		{NewPersistenceError("write", fmt.Errorf("boom")), http.StatusInternalServerError},
		{fmt.Errorf("plain error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatusCode(tt.err))
	}
}
