package market

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
	"github.com/dampdigits/stockplay/internal/infrastructure/adapter/logger"
)

// newQuoteServer answers GLOBAL_QUOTE requests with the given price per symbol.
// Unknown symbols get the API's real behavior: an empty quote object.
func newQuoteServer(t *testing.T, prices map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "GLOBAL_QUOTE", r.URL.Query().Get("function"))

		symbol := r.URL.Query().Get("symbol")
		w.Header().Set("Content-Type", "application/json")
		price, ok := prices[symbol]
		if !ok {
			fmt.Fprint(w, `{"Global Quote": {}}`)
			return
		}
		fmt.Fprintf(w, `{"Global Quote": {"01. symbol": %q, "05. price": %q}}`, symbol, price)
	}))
}

func TestAlphaVantageProvider_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves a quote and converts the price to cents", func(t *testing.T) {
		server := newQuoteServer(t, map[string]string{"AAPL": "150.2500"})
		defer server.Close()

		provider := NewAlphaVantageProvider("test-key", server.URL, time.Second, logger.NewNoopLogger())

		quote, err := provider.Lookup(ctx, "AAPL")

		require.NoError(t, err)
		assert.Equal(t, "AAPL", quote.Symbol)
		assert.Equal(t, int64(15025), quote.PriceInCents)
		assert.Equal(t, "150.25", quote.FormatPrice())
	})

	t.Run("canonicalizes the symbol to upper case", func(t *testing.T) {
		server := newQuoteServer(t, map[string]string{"NFLX": "600.10"})
		defer server.Close()

		provider := NewAlphaVantageProvider("test-key", server.URL, time.Second, logger.NewNoopLogger())

		quote, err := provider.Lookup(ctx, "  nflx ")

		require.NoError(t, err)
		assert.Equal(t, "NFLX", quote.Symbol)
	})

	t.Run("empty quote object means an invalid symbol", func(t *testing.T) {
		server := newQuoteServer(t, nil)
		defer server.Close()

		provider := NewAlphaVantageProvider("test-key", server.URL, time.Second, logger.NewNoopLogger())

		_, err := provider.Lookup(ctx, "NOPE")
		assert.ErrorIs(t, err, errs.ErrInvalidSymbol)
	})

	t.Run("blank symbol is rejected without a request", func(t *testing.T) {
		provider := NewAlphaVantageProvider("test-key", "http://127.0.0.1:0", time.Second, logger.NewNoopLogger())

		_, err := provider.Lookup(ctx, "   ")
		assert.ErrorIs(t, err, errs.ErrInvalidSymbol)
	})

	t.Run("non-OK status means the provider is unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		provider := NewAlphaVantageProvider("test-key", server.URL, time.Second, logger.NewNoopLogger())

		_, err := provider.Lookup(ctx, "AAPL")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})

	t.Run("unreachable provider means unavailable", func(t *testing.T) {
		server := newQuoteServer(t, nil)
		server.Close() // closed on purpose

		provider := NewAlphaVantageProvider("test-key", server.URL, time.Second, logger.NewNoopLogger())

		_, err := provider.Lookup(ctx, "AAPL")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})
}

func TestParsePrice(t *testing.T) {
	t.Run("truncates beyond two decimal places", func(t *testing.T) {
		cents, err := parsePrice("123.4567")
		require.NoError(t, err)
		assert.Equal(t, int64(12345), cents)
	})

	t.Run("rejects zero and malformed prices", func(t *testing.T) {
		_, err := parsePrice("0.00")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)

		_, err = parsePrice("not-a-price")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})
}
