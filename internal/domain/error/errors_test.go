package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"MissingInput", ErrMissingInput, CodeMissingInput},
		{"InvalidAmount", ErrInvalidAmount, CodeInvalidAmount},
		{"InvalidShares", ErrInvalidShares, CodeInvalidShares},
		{"InvalidSymbol", ErrInvalidSymbol, CodeInvalidSymbol},
		{"InsufficientBalance", ErrInsufficientBalance, CodeInsufficientBalance},
		{"InsufficientShares", ErrInsufficientShares, CodeInsufficientShares},
		{"DuplicateUsername", ErrDuplicateUsername, CodeDuplicateUsername},
		{"InvalidCredentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"UserNotFound", ErrUserNotFound, CodeUserNotFound},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidSymbol), CodeInvalidSymbol},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if code := ErrorCode(tc.err); code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"MissingInput", ErrMissingInput, http.StatusBadRequest},
		{"InsufficientBalance", ErrInsufficientBalance, http.StatusBadRequest},
		{"InsufficientShares", ErrInsufficientShares, http.StatusBadRequest},
		{"DuplicateUsername", ErrDuplicateUsername, http.StatusBadRequest},
		{"InvalidCredentials", ErrInvalidCredentials, http.StatusForbidden},
		{"WrongPassword", ErrWrongPassword, http.StatusUnauthorized},
		{"SessionNotFound", ErrSessionNotFound, http.StatusUnauthorized},
		{"UserNotFound", ErrUserNotFound, http.StatusNotFound},
		{"DatabaseConnection", ErrDatabaseConnection, http.StatusInternalServerError},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if status := HTTPStatus(tc.err); status != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, status, tc.expected)
			}
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError("alice", 15000, 10000)

	if !errors.Is(err, ErrInsufficientBalance) {
		t.Error("errors.Is(err, ErrInsufficientBalance) = false, want true")
	}

	var typed *InsufficientBalanceError
	if !errors.As(err, &typed) {
		t.Fatal("errors.As(err, *InsufficientBalanceError) = false, want true")
	}
	if typed.CostInCents != 15000 || typed.CashInCents != 10000 {
		t.Errorf("unexpected detail: cost=%d cash=%d", typed.CostInCents, typed.CashInCents)
	}

	fields := typed.LogFields()
	if fields["username"] != "alice" {
		t.Errorf("LogFields username = %v, want alice", fields["username"])
	}
}

func TestInsufficientSharesError(t *testing.T) {
	err := NewInsufficientSharesError("alice", "AAPL", 5, 2)

	if !errors.Is(err, ErrInsufficientShares) {
		t.Error("errors.Is(err, ErrInsufficientShares) = false, want true")
	}

	var typed *InsufficientSharesError
	if !errors.As(err, &typed) {
		t.Fatal("errors.As(err, *InsufficientSharesError) = false, want true")
	}
	if typed.Requested != 5 || typed.Owned != 2 {
		t.Errorf("unexpected detail: requested=%d owned=%d", typed.Requested, typed.Owned)
	}
}
