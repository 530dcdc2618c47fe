package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("VLT_003", "Insufficient balance", http.StatusPaymentRequired),
			expected: "[VLT_003] Insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "Storage error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] Storage error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VLT_001", "test", http.StatusForbidden)
	assert.Nil(t, appErr.Unwrap())
}

func TestVaultErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Unauthorized", ErrUnauthorized(), CodeUnauthorized, 403},
		{"InvalidAmount", ErrInvalidAmount(), CodeInvalidAmount, 400},
		{"InsufficientBalance", ErrInsufficientBalance(), CodeInsufficientBalance, 402},
		{"AlreadyInitialized", ErrAlreadyInitialized("vault"), CodeAlreadyInitialized, 409},
		{"NotFound", ErrNotFound("vault"), CodeNotFound, 404},
		{"Paused", ErrPaused(), CodePaused, 423},
		{"ExecutorNotSet", ErrExecutorNotSet(), CodeExecutorNotSet, 404},
		{"CapabilityDisabled", ErrCapabilityDisabled("pause"), CodeCapabilityDisabled, 409},
		{"AlreadyRegistered", ErrAlreadyRegistered(), CodeAlreadyRegistered, 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestSecurityErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"MissingCredentials", ErrMissingCredentials(), "SEC_001", 401},
		{"InvalidSignature", ErrInvalidSignature(), "SEC_002", 401},
		{"TimestampExpired", ErrTimestampExpired(), "SEC_003", 403},
		{"NonceUsed", ErrNonceUsed(), "SEC_004", 403},
		{"InvalidToken", ErrInvalidToken(), "SEC_005", 401},
		{"InvalidIdentity", ErrInvalidIdentity(), "SEC_006", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestNotFound_IncludesEntity(t *testing.T) {
	err := ErrNotFound("audit log")
	assert.Equal(t, "audit log not found", err.Message)
}

func TestSystemErrors_WrapCause(t *testing.T) {
	cause := errors.New("redis down")

	assert.ErrorIs(t, ErrStorageError(cause), cause)
	assert.ErrorIs(t, ErrLockTimeout(cause), cause)
	assert.ErrorIs(t, ErrCorruptState(cause), cause)
	assert.Equal(t, http.StatusInsufficientStorage, ErrStorageExhausted().HTTPStatus)
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("spend: %w", ErrPaused())

	assert.True(t, Is(wrapped, CodePaused))
	assert.False(t, Is(wrapped, CodeUnauthorized))
	assert.False(t, Is(errors.New("plain"), CodePaused))
	assert.False(t, Is(nil, CodePaused))
}

func TestInternal(t *testing.T) {
	assert.Nil(t, Internal(nil))

	appErr := ErrUnauthorized()
	assert.Same(t, appErr, Internal(appErr))

	plain := errors.New("boom")
	got := Internal(plain)
	assert.True(t, Is(got, "SYS_001"))
	assert.ErrorIs(t, got, plain)
}
