package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Is reports whether err (or anything it wraps) is an AppError with the given code.
func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Error codes of the vault taxonomy. Callers branch on these.
const (
	CodeUnauthorized        = "VLT_001"
	CodeInvalidAmount       = "VLT_002"
	CodeInsufficientBalance = "VLT_003"
	CodeAlreadyInitialized  = "VLT_004"
	CodeNotFound            = "VLT_005"
	CodePaused              = "VLT_006"
	CodeExecutorNotSet      = "VLT_007"
	CodeCapabilityDisabled  = "VLT_008"
	CodeAlreadyRegistered   = "VLT_009"
	CodeValidation          = "VLT_010"
)

// ---- Vault & Ledger (VLT) ----

func ErrUnauthorized() *AppError {
	return New(CodeUnauthorized, "Caller is not authorized for this operation", http.StatusForbidden)
}

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Amount must be a positive integer", http.StatusBadRequest)
}

func ErrInsufficientBalance() *AppError {
	return New(CodeInsufficientBalance, "Insufficient balance", http.StatusPaymentRequired)
}

func ErrAlreadyInitialized(entity string) *AppError {
	return New(CodeAlreadyInitialized, fmt.Sprintf("%s already initialized", entity), http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrPaused() *AppError {
	return New(CodePaused, "Vault is paused", http.StatusLocked)
}

func ErrExecutorNotSet() *AppError {
	return New(CodeExecutorNotSet, "Executor not set", http.StatusNotFound)
}

func ErrCapabilityDisabled(capability string) *AppError {
	return New(CodeCapabilityDisabled, fmt.Sprintf("Vault does not support %s", capability), http.StatusConflict)
}

func ErrAlreadyRegistered() *AppError {
	return New(CodeAlreadyRegistered, "Creator already has a vault", http.StatusConflict)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// ---- Security & Authentication (SEC) ----

func ErrMissingCredentials() *AppError {
	return New("SEC_001", "Missing authentication credentials", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_004", "Nonce has already been used", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("SEC_005", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidIdentity() *AppError {
	return New("SEC_006", "Invalid identity", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrStorageError(err error) *AppError {
	return Wrap("SYS_001", "Internal storage error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

func ErrCorruptState(err error) *AppError {
	return Wrap("SYS_003", "Stored state is malformed", http.StatusInternalServerError, err)
}

func ErrStorageExhausted() *AppError {
	return New("SYS_004", "Storage capacity exhausted", http.StatusInsufficientStorage)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Internal passes AppErrors through untouched and wraps anything else as InternalError.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	return InternalError(err)
}
