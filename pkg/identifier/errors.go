package identifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrInvalidArgument is returned, wrapped in a ValidationError, when a request
// is missing or one of its required fields is empty. No call is made.
var ErrInvalidArgument = errors.New("invalid argument")

// Static errors for err113 compliance.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrRegionRequired    = errors.New("region is required when the base URL contains {region}")
	ErrTransportRequired = errors.New("transport is required")
)

// ValidationError reports the request fields that failed validation.
type ValidationError struct {
	Operation string
	Fields    []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s: request is required", e.Operation, ErrInvalidArgument)
	}

	return fmt.Sprintf("%s: %s: %s", e.Operation, ErrInvalidArgument, strings.Join(e.Fields, ", "))
}

// Unwrap makes errors.Is(err, ErrInvalidArgument) hold.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// ResponseError represents an error response from the API.
type ResponseError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	RequestID  string `json:"-"`
	Body       []byte `json:"-"`
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	message := e.Message
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}

	if e.RequestID != "" {
		return fmt.Sprintf("%s (status: %d, request id: %s)", message, e.StatusCode, e.RequestID)
	}

	return fmt.Sprintf("%s (status: %d)", message, e.StatusCode)
}

// ParseResponseError builds a ResponseError from an error response body.
// Bodies that are not JSON are kept as the message.
func ParseResponseError(statusCode int, data []byte) *ResponseError {
	errResp := &ResponseError{StatusCode: statusCode, Body: data}

	err := json.Unmarshal(data, errResp)
	if err != nil {
		errResp.Message = strings.TrimSpace(string(data))
	}

	return errResp
}

// IsInvalidArgument checks if the error is a local validation failure.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsConflict checks if the error reports an already existing resource.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

// IsTooManyRequests checks if the error is a rate limiting error.
func IsTooManyRequests(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, statusCode int) bool {
	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		return errResp.StatusCode == statusCode
	}

	return false
}
