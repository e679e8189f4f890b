package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dampdigits/stockplay/internal/domain/entity"
	errs "github.com/dampdigits/stockplay/internal/domain/error"
	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
	"github.com/dampdigits/stockplay/internal/domain/port/market"
)

// DefaultBaseURL is the Alpha Vantage endpoint used unless overridden
const DefaultBaseURL = "https://www.alphavantage.co"

// globalQuoteResponse mirrors the GLOBAL_QUOTE payload shape
type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol string `json:"01. symbol"`
		Price  string `json:"05. price"`
	} `json:"Global Quote"`
}

// AlphaVantageProvider resolves quotes against the Alpha Vantage HTTP API.
// Each lookup is a single blocking call with the request-scoped timeout;
// failures are surfaced immediately, never retried.
type AlphaVantageProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     coreport.Logger
}

// NewAlphaVantageProvider creates a quote provider with the given API key and
// per-request timeout. baseURL is overridable for tests.
func NewAlphaVantageProvider(apiKey, baseURL string, timeout time.Duration, logger coreport.Logger) market.QuoteProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &AlphaVantageProvider{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Lookup resolves the current quote for a symbol
func (p *AlphaVantageProvider) Lookup(ctx context.Context, symbol string) (*entity.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, errs.ErrInvalidSymbol
	}

	endpoint := fmt.Sprintf("%s/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		p.baseURL, url.QueryEscape(symbol), url.QueryEscape(p.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrQuoteUnavailable, err.Error())
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Error("Quote lookup request failed", map[string]any{
			"symbol": symbol,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrQuoteUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.logger.Error("Quote lookup returned non-OK status", map[string]any{
			"symbol": symbol,
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("%w: status %d", errs.ErrQuoteUnavailable, resp.StatusCode)
	}

	var payload globalQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %s", errs.ErrQuoteUnavailable, err.Error())
	}

	// The API answers an unknown symbol with an empty quote object
	if payload.GlobalQuote.Price == "" {
		p.logger.Warn("Unknown stock symbol", map[string]any{
			"symbol": symbol,
		})
		return nil, errs.ErrInvalidSymbol
	}

	priceInCents, err := parsePrice(payload.GlobalQuote.Price)
	if err != nil {
		return nil, err
	}

	canonical := payload.GlobalQuote.Symbol
	if canonical == "" {
		canonical = symbol
	}

	return &entity.Quote{
		Symbol:       canonical,
		CompanyName:  canonical,
		PriceInCents: priceInCents,
	}, nil
}

// parsePrice converts the API's decimal price string to cents, truncating any
// digits beyond two decimal places
func parsePrice(price string) (int64, error) {
	parts := strings.SplitN(price, ".", 2)
	if len(parts) == 2 && len(parts[1]) > entity.MaxDecimalPlaces {
		price = parts[0] + "." + parts[1][:entity.MaxDecimalPlaces]
	}
	cents, err := entity.ValidateAndConvertAmount(price)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed price %q", errs.ErrQuoteUnavailable, price)
	}
	if cents <= 0 {
		return 0, fmt.Errorf("%w: non-positive price %q", errs.ErrQuoteUnavailable, price)
	}
	return cents, nil
}
