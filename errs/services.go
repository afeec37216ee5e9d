package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Third-party delivery errors
var (
	ErrDeliveryFailed     = errors.New("message delivery failed")
	ErrRequestTimeout     = errors.New("request timeout")
)

// NewDeliveryError wraps a failure from a notification backend such as the
// email API
func NewDeliveryError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrDeliveryFailed,
		Details:    fmt.Sprintf("%s could not deliver the message", service),
		Cause:      cause,
	}
}

func NewRequestTimeoutError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusRequestTimeout,
		err:        ErrRequestTimeout,
		Details:    fmt.Sprintf("%s was cancelled before it completed", operation),
		Cause:      cause,
	}
}

func IsDeliveryFailedError(err error) bool {
	return errors.Is(err, ErrDeliveryFailed)
}

func IsRequestTimeoutError(err error) bool {
	return errors.Is(err, ErrRequestTimeout)
}
