package market

import (
	"context"

	"github.com/dampdigits/stockplay/internal/domain/entity"
)

// QuoteProvider resolves live share prices from an external source.
// Symbol matching is case-insensitive; implementations canonicalize to upper case.
type QuoteProvider interface {
	// Lookup returns the current quote for a symbol.
	//
	// Possible errors:
	// - ErrInvalidSymbol: If the symbol cannot be resolved
	// - ErrQuoteUnavailable: If the provider cannot be reached
	Lookup(ctx context.Context, symbol string) (*entity.Quote, error)
}
