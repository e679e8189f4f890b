package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized responses and logs
const (
	// 4xxx - Client errors
	CodeMissingInput        = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidShares       = 4003
	CodeInvalidSymbol       = 4004
	CodeInsufficientBalance = 4005
	CodeInsufficientShares  = 4006
	CodeDuplicateUsername   = 4007
	CodeAmountOverflow      = 4008
	CodePasswordMismatch    = 4009
	CodeInvalidCredentials  = 4030
	CodeWrongPassword       = 4031
	CodeUnauthenticated     = 4032
	CodeUserNotFound        = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrMissingInput is returned when a required form field is absent or empty
	ErrMissingInput = errors.New("missing input")

	// ErrInvalidAmount is returned when a cash amount is malformed or non-positive
	ErrInvalidAmount = errors.New("invalid cash amount")

	// ErrNegativeAmount is returned when a money amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidShares is returned when a share count is not a positive integer
	ErrInvalidShares = errors.New("invalid number of shares")

	// ErrAmountOverflow is returned when a computed total would overflow int64 cents
	ErrAmountOverflow = errors.New("amount is too large")

	// ErrInvalidSymbol is returned when the quote provider cannot resolve a symbol
	ErrInvalidSymbol = errors.New("invalid stock symbol")

	// ErrInsufficientBalance is returned when a purchase costs more than the user's cash
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientShares is returned when a sale requests more shares than owned
	ErrInsufficientShares = errors.New("you own fewer shares")

	// ErrDuplicateUsername is returned when registering a username that already exists
	ErrDuplicateUsername = errors.New("username is unavailable")

	// ErrPasswordMismatch is returned when password and confirmation differ
	ErrPasswordMismatch = errors.New("confirmed password doesn't match")

	// ErrInvalidCredentials is the single generic login failure. It deliberately does
	// not distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username and/or password")

	// ErrWrongPassword is returned when a password change supplies the wrong current password
	ErrWrongPassword = errors.New("wrong password")

	// ErrUnauthenticated is returned when a request carries no valid session
	ErrUnauthenticated = errors.New("not logged in")

	// ErrSessionNotFound is returned when a session token is unknown or expired
	ErrSessionNotFound = errors.New("session not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrHoldingNotFound is returned when a user owns no shares of a symbol
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrQuoteUnavailable is returned when the quote provider cannot be reached
	ErrQuoteUnavailable = errors.New("quote provider unavailable")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrUserLocked is returned when a user row is locked by a concurrent ledger operation
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns the standardized code for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingInput):
		return CodeMissingInput
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidShares):
		return CodeInvalidShares
	case errors.Is(err, ErrInvalidSymbol):
		return CodeInvalidSymbol
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInsufficientShares):
		return CodeInsufficientShares
	case errors.Is(err, ErrDuplicateUsername):
		return CodeDuplicateUsername
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrPasswordMismatch):
		return CodePasswordMismatch
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrWrongPassword):
		return CodeWrongPassword
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrSessionNotFound):
		return CodeUnauthenticated
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status the request boundary should answer with.
// Validation and domain rejections are 4xx; anything unrecognized is an infrastructure failure.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingInput),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrInvalidShares),
		errors.Is(err, ErrAmountOverflow),
		errors.Is(err, ErrInvalidSymbol),
		errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrInsufficientShares),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrPasswordMismatch):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusForbidden
	case errors.Is(err, ErrWrongPassword),
		errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// InsufficientBalanceError provides detailed error information for a rejected purchase
type InsufficientBalanceError struct {
	Username    string
	CostInCents int64
	CashInCents int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %s: required %d cents, available %d cents",
		e.Username, e.CostInCents, e.CashInCents)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"username":   e.Username,
		"cost":       e.CostInCents,
		"cash":       e.CashInCents,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a detailed insufficient balance error
func NewInsufficientBalanceError(username string, costInCents, cashInCents int64) error {
	return &InsufficientBalanceError{
		Username:    username,
		CostInCents: costInCents,
		CashInCents: cashInCents,
	}
}

// InsufficientSharesError provides detailed error information for a rejected sale
type InsufficientSharesError struct {
	Username  string
	Symbol    string
	Requested int64
	Owned     int64
}

// Error implements the error interface
func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("user %s owns %d shares of %s, cannot sell %d",
		e.Username, e.Owned, e.Symbol, e.Requested)
}

// Is checks if the target error is an ErrInsufficientShares
func (e *InsufficientSharesError) Is(target error) bool {
	return target == ErrInsufficientShares
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientSharesError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_shares",
		"username":   e.Username,
		"symbol":     e.Symbol,
		"requested":  e.Requested,
		"owned":      e.Owned,
		"error_code": CodeInsufficientShares,
	}
}

// NewInsufficientSharesError creates a detailed insufficient shares error
func NewInsufficientSharesError(username, symbol string, requested, owned int64) error {
	return &InsufficientSharesError{
		Username:  username,
		Symbol:    symbol,
		Requested: requested,
		Owned:     owned,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsInsufficientSharesError checks if the error is related to insufficient shares
func IsInsufficientSharesError(err error) bool {
	return errors.Is(err, ErrInsufficientShares)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrHoldingNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}
