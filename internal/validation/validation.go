package validation

import (
	"fmt"
	"net/http"
	"strings"

	"smssync/internal/constants"
	"smssync/internal/errors"
)

// ValidateCredentials checks that a login request carries both fields.
func ValidateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return errors.New(errors.ErrCodeValidationFailed, "missing credentials").
			WithUserMessage("Missing credentials")
	}
	return nil
}

// ValidateUpdateRequest checks the shape of a single-item mutation request.
// The action name itself is validated by models.ParseAction.
func ValidateUpdateRequest(id, action string) error {
	if id == "" || action == "" {
		return errors.New(errors.ErrCodeValidationFailed, "missing id or action").
			WithUserMessage("Missing id or action")
	}
	return nil
}

// ValidateBulkRequest checks the shape of a batch mutation request.
func ValidateBulkRequest(ids []string, action string) error {
	if len(ids) == 0 || action == "" {
		return errors.New(errors.ErrCodeValidationFailed, "missing ids or action").
			WithUserMessage("Missing ids or action")
	}
	if len(ids) > constants.MaxBulkIDs {
		return errors.New(errors.ErrCodeValidationFailed,
			fmt.Sprintf("too many ids in one batch (max %d)", constants.MaxBulkIDs)).
			WithUserMessage("Too many ids")
	}
	return nil
}

// ValidateSearch bounds the search text length.
func ValidateSearch(search string) error {
	if len(search) > constants.MaxSearchLength {
		return errors.New(errors.ErrCodeValidationFailed,
			fmt.Sprintf("search text too long (max %d characters)", constants.MaxSearchLength)).
			WithUserMessage("Search text too long")
	}
	return nil
}

// ValidateHTTPRequestSize validates incoming HTTP request size
func ValidateHTTPRequestSize(r *http.Request, maxSizeBytes int64) error {
	if r.ContentLength > maxSizeBytes {
		return errors.New(errors.ErrCodeInvalidInput,
			fmt.Sprintf("request too large: %d bytes (max %d bytes)", r.ContentLength, maxSizeBytes)).
			WithUserMessage("Request too large")
	}
	return nil
}
