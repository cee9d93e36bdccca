package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Authentication and authorization errors
	ErrCodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden      ErrorCode = "FORBIDDEN"
	ErrCodeInvalidSession ErrorCode = "INVALID_SESSION"
	ErrCodeInvalidAdminKey ErrorCode = "INVALID_ADMIN_KEY"

	// Resource errors
	ErrCodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	ErrCodeLinkNotFound       ErrorCode = "LINK_NOT_FOUND"
	ErrCodeCollectionNotFound ErrorCode = "COLLECTION_NOT_FOUND"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeConflict           ErrorCode = "CONFLICT"

	// Validation errors
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"

	// System errors
	ErrCodeInternalError  ErrorCode = "INTERNAL_ERROR"
	ErrCodeDatabaseError  ErrorCode = "DATABASE_ERROR"
	ErrCodeIdentityError  ErrorCode = "IDENTITY_PROVIDER_ERROR"
	ErrCodePolicyError    ErrorCode = "POLICY_APPLY_ERROR"
	ErrCodeConfigError    ErrorCode = "CONFIG_ERROR"

	// Rate limiting
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"

	// Generic errors
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       ErrorCode         `json:"code"`
	Message    string            `json:"message"`
	Details    string            `json:"details,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	StatusCode int               `json:"-"`
	Cause      error             `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause adds a cause to the error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithFields attaches per-field validation messages
func (e *AppError) WithFields(fields map[string]string) *AppError {
	e.Fields = fields
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatusCode gets the HTTP status code for an error
func GetHTTPStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeUnauthorized, ErrCodeInvalidSession, ErrCodeInvalidAdminKey:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeUserNotFound, ErrCodeLinkNotFound, ErrCodeCollectionNotFound, ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeValidationFailed, ErrCodeInvalidInput, ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeIdentityError:
		return http.StatusServiceUnavailable
	case ErrCodeInternalError, ErrCodeDatabaseError, ErrCodePolicyError, ErrCodeConfigError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Predefined common errors

var (
	ErrUnauthorized   = New(ErrCodeUnauthorized, "authentication required")
	ErrForbidden      = New(ErrCodeForbidden, "access denied")
	ErrInvalidSession = New(ErrCodeInvalidSession, "invalid session")
	ErrInvalidAdminKey = New(ErrCodeInvalidAdminKey, "invalid admin key")
)

var (
	ErrUserNotFound       = New(ErrCodeUserNotFound, "user not found")
	ErrLinkNotFound       = New(ErrCodeLinkNotFound, "link not found")
	ErrCollectionNotFound = New(ErrCodeCollectionNotFound, "collection not found")
	ErrNotFound           = New(ErrCodeNotFound, "resource not found")
	ErrConflict           = New(ErrCodeConflict, "resource conflict")
)

var (
	ErrInternalError = New(ErrCodeInternalError, "internal server error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "database error")
	ErrIdentityError = New(ErrCodeIdentityError, "identity provider error")
	ErrPolicyError   = New(ErrCodePolicyError, "failed to apply row level security")
)

// Helper functions for creating contextual errors

// NewNotFound creates a not found error for a named resource
func NewNotFound(resource string) *AppError {
	return Newf(ErrCodeNotFound, "%s not found", resource)
}

// NewValidationError creates a validation error with per-field messages
func NewValidationError(fields map[string]string) *AppError {
	return New(ErrCodeValidationFailed, "validation failed").WithFields(fields)
}

// NewInternalError creates an internal error with cause
func NewInternalError(cause error) *AppError {
	return Wrap(ErrCodeInternalError, "internal server error", cause)
}

// NewDatabaseError creates a database error with cause
func NewDatabaseError(cause error) *AppError {
	return Wrap(ErrCodeDatabaseError, "database operation failed", cause)
}

// NewIdentityError creates an identity provider error with cause
func NewIdentityError(cause error) *AppError {
	return Wrap(ErrCodeIdentityError, "identity provider error", cause)
}

// NewPolicyError creates a policy application error with cause
func NewPolicyError(cause error) *AppError {
	return Wrap(ErrCodePolicyError, "failed to apply row level security", cause)
}
