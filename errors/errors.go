package errors

import (
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ValidationError         ErrorType = "VALIDATION_ERROR"
	FieldValidationError    ErrorType = "FIELD_VALIDATION_ERROR"
	NotFoundError           ErrorType = "NOT_FOUND"
	ConflictError           ErrorType = "CONFLICT"
	DeliveryError           ErrorType = "DELIVERY_ERROR"
	ServiceUnavailableError ErrorType = "SERVICE_UNAVAILABLE"
	TimeoutError            ErrorType = "TIMEOUT"
	ServerError             ErrorType = "SERVER_ERROR"
)

// DeliveryFailedMessage is shown to visitors when a message could not be sent.
const DeliveryFailedMessage = "An error occurred. Please try again."

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType         `json:"type"`
	Code       string            `json:"code,omitempty"`
	Message    string            `json:"message"`
	Detail     string            `json:"detail,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	HTTPStatus int               `json:"-"`
	Raw        error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// Helper functions for common errors
func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

// ValidationFailed reports a malformed request (bad JSON, unknown keys).
func ValidationFailed(message string, details string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// FieldValidationFailed reports a well-formed submission whose field values
// break the form rules. fields maps field key to its single message.
func FieldValidationFailed(fields map[string]string) *AppError {
	return &AppError{
		Type:       FieldValidationError,
		Message:    "Please correct the highlighted fields",
		Fields:     fields,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// DeliveryFailed wraps a delivery error. The visitor only sees the generic
// message; the cause stays in Raw for logging.
func DeliveryFailed(err error) *AppError {
	appErr := &AppError{
		Type:       DeliveryError,
		Message:    DeliveryFailedMessage,
		HTTPStatus: http.StatusBadGateway,
		Raw:        err,
	}
	if err != nil {
		appErr.Detail = err.Error()
	}
	return appErr
}

func NewConflictError(message string, detail string) *AppError {
	return &AppError{
		Type:       ConflictError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusConflict,
	}
}

func ServiceUnavailable(message string) *AppError {
	return &AppError{
		Type:       ServiceUnavailableError,
		Message:    message,
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

func Timeout(message string) *AppError {
	return &AppError{
		Type:       TimeoutError,
		Message:    message,
		HTTPStatus: http.StatusGatewayTimeout,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case FieldValidationError:
		return http.StatusUnprocessableEntity
	case NotFoundError:
		return http.StatusNotFound
	case ConflictError:
		return http.StatusConflict
	case DeliveryError:
		return http.StatusBadGateway
	case ServiceUnavailableError:
		return http.StatusServiceUnavailable
	case TimeoutError:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
