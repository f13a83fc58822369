package apperror

import (
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

// ---- Admin & Authorization (ADM) ----

func ErrNotInitialized() *AppError {
	return New("ADM_001", "Service not initialized", http.StatusConflict)
}

func ErrUnauthorized() *AppError {
	return New("ADM_002", "Caller is not the administrator", http.StatusForbidden)
}

func ErrAlreadyInitialized() *AppError {
	return New("ADM_003", "Service already initialized", http.StatusConflict)
}

func ErrInvalidCredentials() *AppError {
	return New("ADM_004", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("ADM_005", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Batch preconditions (BATCH) ----

func ErrEmptyBatch() *AppError {
	return New("BATCH_001", "Batch contains no requests", http.StatusBadRequest)
}

func ErrBatchTooLarge(max int) *AppError {
	return New("BATCH_002", fmt.Sprintf("Batch exceeds maximum size of %d", max), http.StatusBadRequest)
}

// ---- Spending limits (LIMIT) ----

func ErrInvalidAmount() *AppError {
	return New("LIMIT_001", "Amount must be positive", http.StatusBadRequest)
}

func ErrInvalidCategory() *AppError {
	return New("LIMIT_002", "Category label is not well-formed", http.StatusBadRequest)
}

func ErrDailyLimitExceeded() *AppError {
	return New("LIMIT_003", "Daily spending limit exceeded", http.StatusUnprocessableEntity)
}

func ErrMonthlyLimitExceeded() *AppError {
	return New("LIMIT_004", "Monthly spending limit exceeded", http.StatusUnprocessableEntity)
}

// ErrCounterOverflow signals a stored period counter that cannot be
// accumulated (corrupt negative total). Normal accumulation saturates and
// never returns this.
func ErrCounterOverflow() *AppError {
	return New("LIMIT_005", "Period counter overflow", http.StatusInternalServerError)
}

func ErrInvalidPrincipal() *AppError {
	return New("LIMIT_006", "Principal identity is not well-formed", http.StatusBadRequest)
}

// ---- Delegation (DLG) ----

func ErrSelfDelegation() *AppError {
	return New("DLG_001", "Owner and delegate must differ", http.StatusBadRequest)
}

func ErrNoDelegation() *AppError {
	return New("DLG_002", "No delegation configured for this pair", http.StatusNotFound)
}

func ErrAllowanceExceeded() *AppError {
	return New("DLG_003", "Amount exceeds remaining allowance", http.StatusUnprocessableEntity)
}

// ---- Security (SEC) ----

func ErrInvalidSignature() *AppError {
	return New("SEC_001", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_002", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_003", "Nonce has already been used", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a generic bad-request validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest)
}
