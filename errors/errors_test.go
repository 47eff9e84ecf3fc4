package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ValidationError, "invalid input", "field required")
	assert.Equal(t, ValidationError, err.Type)
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "field required", err.Detail)
	assert.Equal(t, 400, err.HTTPStatus)
}

func TestWrap(t *testing.T) {
	originalErr := fmt.Errorf("original error")
	wrappedErr := Wrap(originalErr, ServerError, "operation failed")

	assert.Equal(t, ServerError, wrappedErr.Type)
	assert.Equal(t, "operation failed", wrappedErr.Message)
	assert.Equal(t, originalErr.Error(), wrappedErr.Detail)
	assert.Equal(t, 500, wrappedErr.HTTPStatus)
	assert.Equal(t, originalErr, wrappedErr.Raw)
	assert.True(t, stderrors.Is(wrappedErr, originalErr))

	assert.Nil(t, Wrap(nil, ServerError, "nothing"))
}

func TestNotFound(t *testing.T) {
	err := NotFound("Contact session", "abc")
	assert.Equal(t, NotFoundError, err.Type)
	assert.Equal(t, "Contact session not found", err.Message)
	assert.Equal(t, "ID: abc", err.Detail)
	assert.Equal(t, 404, err.HTTPStatus)
}

func TestFieldValidationFailed(t *testing.T) {
	fields := map[string]string{"name": "Name is required"}
	err := FieldValidationFailed(fields)
	assert.Equal(t, FieldValidationError, err.Type)
	assert.Equal(t, fields, err.Fields)
	assert.Equal(t, 422, err.HTTPStatus)
}

func TestDeliveryFailed(t *testing.T) {
	cause := fmt.Errorf("smtp unreachable")
	err := DeliveryFailed(cause)
	assert.Equal(t, DeliveryError, err.Type)
	assert.Equal(t, DeliveryFailedMessage, err.Message)
	assert.Equal(t, "smtp unreachable", err.Detail)
	assert.Equal(t, 502, err.HTTPStatus)
	assert.True(t, stderrors.Is(err, cause))

	assert.Empty(t, DeliveryFailed(nil).Detail)
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name: "with detail",
			err: &AppError{
				Type:    ValidationError,
				Message: "invalid input",
				Detail:  "field required",
			},
			expected: "VALIDATION_ERROR: invalid input (field required)",
		},
		{
			name: "without detail",
			err: &AppError{
				Type:    ServiceUnavailableError,
				Message: "too many sessions",
			},
			expected: "SERVICE_UNAVAILABLE: too many sessions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		errType  ErrorType
		expected int
	}{
		{ValidationError, 400},
		{FieldValidationError, 422},
		{NotFoundError, 404},
		{ConflictError, 409},
		{DeliveryError, 502},
		{ServiceUnavailableError, 503},
		{TimeoutError, 504},
		{ServerError, 500},
		{ErrorType("UNKNOWN"), 500},
	}

	for _, tt := range tests {
		t.Run(string(tt.errType), func(t *testing.T) {
			assert.Equal(t, tt.expected, getHTTPStatus(tt.errType))
		})
	}
}
