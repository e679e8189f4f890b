package entity

import (
	"strings"
	"time"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
)

// User represents a registered account holding simulated cash
type User struct {
	ID           uint64    // Database identifier
	Username     string    // Unique login name, matched case-sensitively
	passwordHash string    // Salted hash of the password (private)
	cash         int64     // Cash balance in cents (private)
	CreatedAt    time.Time // When the user registered
	UpdatedAt    time.Time // When the user was last updated
}

// NewUser creates a new user with the given starting cash grant in cents
func NewUser(username, passwordHash string, startingCash int64, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(username) == "" || passwordHash == "" {
		return nil, errs.ErrMissingInput
	}
	if startingCash < 0 {
		return nil, errs.ErrNegativeAmount
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		passwordHash: passwordHash,
		cash:         startingCash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Cash returns the current cash balance in cents
func (u *User) Cash() int64 {
	return u.cash
}

// FormatCash returns the cash balance as a decimal string with 2 places
func (u *User) FormatCash() string {
	return AmountInCentsToString(u.cash)
}

// SetCash replaces the cash balance directly (for repositories)
func (u *User) SetCash(cashInCents int64, timeProvider coreport.TimeProvider) {
	u.cash = cashInCents
	u.UpdatedAt = timeProvider.Now()
}

// Credit adds the given cents to the cash balance
func (u *User) Credit(amountInCents int64, timeProvider coreport.TimeProvider) {
	u.cash += amountInCents
	u.UpdatedAt = timeProvider.Now()
}

// Debit subtracts the given cents from the cash balance.
// Returns an error if that would leave the balance negative.
func (u *User) Debit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if u.cash < amountInCents {
		return errs.ErrInsufficientBalance
	}
	u.cash -= amountInCents
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// CanAfford reports whether the balance covers the given cost
func (u *User) CanAfford(costInCents int64) bool {
	return u.cash >= costInCents
}

// PasswordHash returns the stored password hash (for verification)
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// SetPasswordHash replaces the stored password hash
func (u *User) SetPasswordHash(hash string, timeProvider coreport.TimeProvider) {
	u.passwordHash = hash
	u.UpdatedAt = timeProvider.Now()
}
