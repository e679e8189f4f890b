package entity

import (
	"time"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
)

// Action identifies the kind of ledger operation a history record describes
type Action string

// Ledger actions
const (
	ActionBought    Action = "bought"
	ActionSold      Action = "sold"
	ActionDeposited Action = "deposited"
)

// SymbolNone is the symbol sentinel for history records of non-stock actions
const SymbolNone = "N.A."

// HistoryRecord is an immutable append-only entry describing one ledger operation.
// Exactly one record is written per cash-affecting event, inside the same
// database transaction as the cash and holding mutations.
type HistoryRecord struct {
	ID         uint64
	Username   string
	Action     Action
	Symbol     string
	Shares     int64
	Rate       int64 // Unit price in cents at the time of the operation
	TotalValue int64 // Total cents moved by the operation
	RecordedAt time.Time
}

// NewTradeRecord creates the history entry for a buy or sell
func NewTradeRecord(username string, action Action, symbol string, shares, rateInCents int64, timeProvider coreport.TimeProvider) (*HistoryRecord, error) {
	if action != ActionBought && action != ActionSold {
		return nil, errs.ErrInternalServer
	}
	total, err := MultiplyCents(rateInCents, shares)
	if err != nil {
		return nil, err
	}
	return &HistoryRecord{
		Username:   username,
		Action:     action,
		Symbol:     symbol,
		Shares:     shares,
		Rate:       rateInCents,
		TotalValue: total,
		RecordedAt: timeProvider.Now(),
	}, nil
}

// NewDepositRecord creates the history entry for a cash deposit
func NewDepositRecord(username string, amountInCents int64, timeProvider coreport.TimeProvider) *HistoryRecord {
	return &HistoryRecord{
		Username:   username,
		Action:     ActionDeposited,
		Symbol:     SymbolNone,
		Shares:     0,
		Rate:       0,
		TotalValue: amountInCents,
		RecordedAt: timeProvider.Now(),
	}
}

// FormatRate returns the unit price as a decimal string
func (r *HistoryRecord) FormatRate() string {
	return AmountInCentsToString(r.Rate)
}

// FormatTotal returns the total value as a decimal string
func (r *HistoryRecord) FormatTotal() string {
	return AmountInCentsToString(r.TotalValue)
}

// FormatDate returns the date portion for display
func (r *HistoryRecord) FormatDate() string {
	return r.RecordedAt.Format("02-01-2006")
}

// FormatTime returns the time of day portion for display
func (r *HistoryRecord) FormatTime() string {
	return r.RecordedAt.Format("15:04:05")
}
