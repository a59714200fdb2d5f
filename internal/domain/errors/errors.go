// Package errors defines the application error taxonomy for the session
// consistency and messaging engines.
package errors

import (
	"net/http"

	"salon/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types.
//
// CorruptedProfile and DeletedAccount are resolved locally by forcing a
// logout and are never surfaced raw to the delivery layer, only as a
// resulting unauthenticated state. PermissionDenied and ServiceUnavailable
// during account verification are security-relevant and also force a logout.
var (
	ErrCorruptedProfile = NewBaseError(
		http.StatusUnauthorized,
		"CORRUPTED_PROFILE",
		"account record is corrupted",
		"",
	)

	ErrDeletedAccount = NewBaseError(
		http.StatusUnauthorized,
		"DELETED_ACCOUNT",
		"account record no longer exists",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"access to the account record was denied",
		"",
	)

	ErrServiceUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"SERVICE_UNAVAILABLE",
		"account store is unavailable",
		"",
	)

	ErrNetworkUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"NETWORK_UNAVAILABLE",
		"network is unreachable",
		"",
	)

	// SendFailure is surfaced to the caller synchronously: the send did not
	// happen and nothing was merged or dispatched.
	ErrSendFailure = NewBaseError(
		http.StatusBadGateway,
		"SEND_FAILURE",
		"message could not be persisted",
		"",
	)

	// DispatchFailure is non-fatal: logged and swallowed, never retried.
	ErrDispatchFailure = NewBaseError(
		http.StatusBadGateway,
		"DISPATCH_FAILURE",
		"push notification could not be delivered",
		"",
	)

	ErrStaleSend = NewBaseError(
		http.StatusGatewayTimeout,
		"STALE_SEND",
		"message was never confirmed by the stream",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// Response is the unified error payload shape of the HTTP delivery layer.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code and detail of a failure.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}
