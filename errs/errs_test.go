package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestApiErrStatusAndSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    *ApiErr
		status int
		is     func(error) bool
	}{
		{"not found", NewNotFound("project"), http.StatusNotFound, IsNotFound},
		{"bad request", NewBadRequestError("missing slug"), http.StatusBadRequest, IsBadRequest},
		{"missing field", NewMissingRequiredFieldError("name"), http.StatusBadRequest, IsMissingRequiredFieldError},
		{"invalid field", NewInvalidFieldError("view", "unknown"), http.StatusBadRequest, IsInvalidFieldError},
		{"invalid json", NewInvalidJSONError(errors.New("eof")), http.StatusBadRequest, IsInvalidJSONError},
		{"body too large", NewMaxBodySizeExceededError(10), http.StatusRequestEntityTooLarge, IsMaxBodySizeExceededError},
		{"media type", NewUnsupportedMediaTypeError("text/plain", []string{"application/json"}), http.StatusUnsupportedMediaType, IsUnsupportedMediaTypeError},
		{"cors", NewCORSError("https://evil.example"), http.StatusForbidden, IsCORSBlocked},
		{"delivery", NewDeliveryError("resend", errors.New("boom")), http.StatusBadGateway, IsDeliveryFailedError},
		{"timeout", NewRequestTimeoutError("send", nil), http.StatusRequestTimeout, IsRequestTimeoutError},
		{"internal", NewInternalErrorWithCause("encode", errors.New("x")), http.StatusInternalServerError, IsInternal},
		{"config", NewConfigInvalidError("DB_TYPE", "unknown"), http.StatusInternalServerError, IsConfigInvalidError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", tt.err.StatusCode, tt.status)
			}
			if !tt.is(tt.err) {
				t.Errorf("sentinel check failed for %v", tt.err)
			}
			wrapped := fmt.Errorf("handler: %w", tt.err)
			if !tt.is(wrapped) {
				t.Errorf("sentinel check failed through wrapping for %v", wrapped)
			}
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	if got := NewNotFound("project").Error(); got != "project not found" {
		t.Errorf("Error() = %q, want %q", got, "project not found")
	}
}

func TestGetFullErrorFollowsCauses(t *testing.T) {
	inner := NewDeliveryError("resend", errors.New("status 500"))
	outer := NewInternalErrorWithCause("contact", inner)

	want := "internal server error: contact -> message delivery failed: resend could not deliver the message -> status 500"
	if got := outer.GetFullError(); got != want {
		t.Errorf("GetFullError() = %q, want %q", got, want)
	}
}

func TestNewDatabaseErrorClassifies(t *testing.T) {
	tests := []struct {
		cause  error
		status int
	}{
		{errors.New("ERROR: duplicate key value violates unique constraint"), http.StatusConflict},
		{errors.New("failed to connect: connection refused"), http.StatusServiceUnavailable},
		{errors.New("syntax error"), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := NewDatabaseError("load", "projects", tt.cause)
		if err.StatusCode != tt.status {
			t.Errorf("NewDatabaseError(%v).StatusCode = %d, want %d", tt.cause, err.StatusCode, tt.status)
		}
	}
}
