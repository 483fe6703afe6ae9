package identifier_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

func TestParseResponseError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		message string
		text    string
	}{
		{
			name:    "json message",
			status:  http.StatusNotFound,
			body:    `{"message":"user not found"}`,
			message: "user not found",
			text:    "user not found (status: 404)",
		},
		{
			name:    "plain text body",
			status:  http.StatusBadGateway,
			body:    "upstream failed\n",
			message: "upstream failed",
			text:    "upstream failed (status: 502)",
		},
		{
			name:    "empty body",
			status:  http.StatusForbidden,
			body:    "",
			message: "",
			text:    "Forbidden (status: 403)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := identifier.ParseResponseError(tt.status, []byte(tt.body))
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.text, err.Error())
			assert.Equal(t, []byte(tt.body), err.Body)
		})
	}
}

func TestResponseError_RequestID(t *testing.T) {
	t.Parallel()

	err := &identifier.ResponseError{StatusCode: http.StatusConflict, Message: "exists", RequestID: "req-1"}
	assert.Equal(t, "exists (status: 409, request id: req-1)", err.Error())
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	wrap := func(status int) error {
		return fmt.Errorf("failed to get user: %w", &identifier.ResponseError{StatusCode: status})
	}

	assert.True(t, identifier.IsNotFound(wrap(http.StatusNotFound)))
	assert.True(t, identifier.IsUnauthorized(wrap(http.StatusUnauthorized)))
	assert.True(t, identifier.IsForbidden(wrap(http.StatusForbidden)))
	assert.True(t, identifier.IsConflict(wrap(http.StatusConflict)))
	assert.True(t, identifier.IsTooManyRequests(wrap(http.StatusTooManyRequests)))

	assert.False(t, identifier.IsNotFound(wrap(http.StatusInternalServerError)))
	assert.False(t, identifier.IsNotFound(identifier.ErrConfigRequired))
	assert.False(t, identifier.IsNotFound(nil))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := &identifier.ValidationError{Operation: "GetUser", Fields: []string{"userName"}}
	assert.Equal(t, "GetUser: invalid argument: userName", err.Error())
	require.ErrorIs(t, err, identifier.ErrInvalidArgument)
	assert.True(t, identifier.IsInvalidArgument(fmt.Errorf("wrapped: %w", err)))

	missing := &identifier.ValidationError{Operation: "DeleteUser"}
	assert.Equal(t, "DeleteUser: invalid argument: request is required", missing.Error())
}
