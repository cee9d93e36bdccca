package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeLinkNotFound, "link not found"),
			want: "LINK_NOT_FOUND: link not found",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeDatabaseError, "database operation failed", errors.New("connection refused")),
			want: "DATABASE_ERROR: database operation failed (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := Wrap(ErrCodeInternalError, "internal server error", cause)

	assert.ErrorIs(t, err, cause)
}

func TestGetHTTPStatusCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeInvalidAdminKey, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeLinkNotFound, http.StatusNotFound},
		{ErrCodeCollectionNotFound, http.StatusNotFound},
		{ErrCodeValidationFailed, http.StatusBadRequest},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{ErrCodeDatabaseError, http.StatusInternalServerError},
		{ErrCodePolicyError, http.StatusInternalServerError},
		{ErrCodeIdentityError, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatusCode(New(tt.code, "msg")))
		})
	}
}

func TestGetHTTPStatusCode_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatusCode(errors.New("plain")))
}

func TestAsAppError(t *testing.T) {
	appErr := New(ErrCodeForbidden, "access denied")
	wrapped := fmt.Errorf("handler: %w", appErr)

	got, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrCodeForbidden, got.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError(map[string]string{
		"url":   "url must be a valid URL",
		"title": "title is required",
	})

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Len(t, err.Fields, 2)
	assert.Contains(t, err.Fields, "url")
	assert.Contains(t, err.Fields, "title")
}
