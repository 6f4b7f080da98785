package validation

import (
	"net/http"
	"strings"
	"testing"

	"smssync/internal/constants"
	apperrors "smssync/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentials(t *testing.T) {
	assert.NoError(t, ValidateCredentials("user@example.com", "secret"))

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "secret"},
		{"blank email", "   ", "secret"},
		{"empty password", "user@example.com", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCredentials(tt.email, tt.password)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeValidationFailed, apperrors.GetCode(err))
			assert.Equal(t, "Missing credentials", apperrors.GetUserMessage(err))
		})
	}
}

func TestValidateUpdateRequest(t *testing.T) {
	assert.NoError(t, ValidateUpdateRequest("msg_1001", "mark_read"))

	err := ValidateUpdateRequest("", "mark_read")
	require.Error(t, err)
	assert.Equal(t, "Missing id or action", apperrors.GetUserMessage(err))

	err = ValidateUpdateRequest("msg_1001", "")
	require.Error(t, err)
	assert.Equal(t, "Missing id or action", apperrors.GetUserMessage(err))
}

func TestValidateBulkRequest(t *testing.T) {
	assert.NoError(t, ValidateBulkRequest([]string{"msg_1001"}, "star"))

	err := ValidateBulkRequest(nil, "star")
	require.Error(t, err)
	assert.Equal(t, "Missing ids or action", apperrors.GetUserMessage(err))

	err = ValidateBulkRequest([]string{"msg_1001"}, "")
	require.Error(t, err)
	assert.Equal(t, "Missing ids or action", apperrors.GetUserMessage(err))

	oversized := make([]string, constants.MaxBulkIDs+1)
	for i := range oversized {
		oversized[i] = "msg"
	}
	err = ValidateBulkRequest(oversized, "star")
	require.Error(t, err)
	assert.Equal(t, "Too many ids", apperrors.GetUserMessage(err))
}

func TestValidateSearch(t *testing.T) {
	assert.NoError(t, ValidateSearch(""))
	assert.NoError(t, ValidateSearch("otp"))
	assert.NoError(t, ValidateSearch(strings.Repeat("a", constants.MaxSearchLength)))

	err := ValidateSearch(strings.Repeat("a", constants.MaxSearchLength+1))
	require.Error(t, err)
	assert.Equal(t, "Search text too long", apperrors.GetUserMessage(err))
}

func TestValidateHTTPRequestSize(t *testing.T) {
	r := &http.Request{ContentLength: 100}
	assert.NoError(t, ValidateHTTPRequestSize(r, 100))

	r = &http.Request{ContentLength: 101}
	err := ValidateHTTPRequestSize(r, 100)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidInput, apperrors.GetCode(err))

	// Unknown length (-1) is handled by MaxBytesReader downstream.
	r = &http.Request{ContentLength: -1}
	assert.NoError(t, ValidateHTTPRequestSize(r, 100))
}
