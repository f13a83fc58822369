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
			appErr:   New("LIMIT_003", "Daily spending limit exceeded", http.StatusUnprocessableEntity),
			expected: "[LIMIT_003] Daily spending limit exceeded",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
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
	appErr := New("LIMIT_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestAdminErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"NotInitialized", ErrNotInitialized(), "ADM_001", 409},
		{"Unauthorized", ErrUnauthorized(), "ADM_002", 403},
		{"AlreadyInitialized", ErrAlreadyInitialized(), "ADM_003", 409},
		{"InvalidCredentials", ErrInvalidCredentials(), "ADM_004", 401},
		{"InvalidToken", ErrInvalidToken(), "ADM_005", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestBatchErrors(t *testing.T) {
	empty := ErrEmptyBatch()
	assert.Equal(t, "BATCH_001", empty.Code)
	assert.Equal(t, 400, empty.HTTPStatus)

	tooLarge := ErrBatchTooLarge(100)
	assert.Equal(t, "BATCH_002", tooLarge.Code)
	assert.Equal(t, 400, tooLarge.HTTPStatus)
	assert.Contains(t, tooLarge.Message, "100")
}

func TestLimitErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidAmount", ErrInvalidAmount(), "LIMIT_001", 400},
		{"InvalidCategory", ErrInvalidCategory(), "LIMIT_002", 400},
		{"DailyLimitExceeded", ErrDailyLimitExceeded(), "LIMIT_003", 422},
		{"MonthlyLimitExceeded", ErrMonthlyLimitExceeded(), "LIMIT_004", 422},
		{"CounterOverflow", ErrCounterOverflow(), "LIMIT_005", 500},
		{"InvalidPrincipal", ErrInvalidPrincipal(), "LIMIT_006", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestDelegationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"SelfDelegation", ErrSelfDelegation(), "DLG_001", 400},
		{"NoDelegation", ErrNoDelegation(), "DLG_002", 404},
		{"AllowanceExceeded", ErrAllowanceExceeded(), "DLG_003", 422},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
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
		{"InvalidSignature", ErrInvalidSignature(), "SEC_001", 401},
		{"TimestampExpired", ErrTimestampExpired(), "SEC_002", 403},
		{"NonceUsed", ErrNonceUsed(), "SEC_003", 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	sysErr := InternalError(inner)
	assert.Equal(t, "SYS_001", sysErr.Code)
	assert.Equal(t, 500, sysErr.HTTPStatus)
	assert.True(t, errors.Is(sysErr, inner))

	valErr := Validation("field is required")
	assert.Equal(t, "SYS_002", valErr.Code)
	assert.Equal(t, 400, valErr.HTTPStatus)
	assert.Equal(t, "field is required", valErr.Message)
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}
