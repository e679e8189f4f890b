package market

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/dampdigits/stockplay/internal/domain/entity"
	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
	"github.com/dampdigits/stockplay/internal/domain/port/market"
)

const cacheKeyPrefix = "quote:"

// CachedQuoteProvider wraps a QuoteProvider with a short-TTL Redis cache to
// keep repeated page loads from hammering the upstream API. Cache failures are
// treated as misses; a stale entry can never outlive the configured TTL.
type CachedQuoteProvider struct {
	inner  market.QuoteProvider
	client *redis.Client
	ttl    time.Duration
	logger coreport.Logger
}

// NewCachedQuoteProvider wraps inner with a Redis cache
func NewCachedQuoteProvider(inner market.QuoteProvider, client *redis.Client, ttl time.Duration, logger coreport.Logger) market.QuoteProvider {
	return &CachedQuoteProvider{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Lookup serves from cache when possible, falling through to the inner provider
func (p *CachedQuoteProvider) Lookup(ctx context.Context, symbol string) (*entity.Quote, error) {
	key := cacheKeyPrefix + strings.ToUpper(strings.TrimSpace(symbol))

	cached, err := p.client.Get(ctx, key).Result()
	if err == nil {
		var quote entity.Quote
		if unmarshalErr := json.Unmarshal([]byte(cached), &quote); unmarshalErr == nil {
			return &quote, nil
		}
		// Unreadable cache entries fall through to a fresh lookup
	} else if !errors.Is(err, redis.Nil) {
		p.logger.Warn("Quote cache read failed", map[string]any{
			"symbol": symbol,
			"error":  err.Error(),
		})
	}

	quote, err := p.inner.Lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if data, marshalErr := json.Marshal(quote); marshalErr == nil {
		if setErr := p.client.Set(ctx, cacheKeyPrefix+quote.Symbol, data, p.ttl).Err(); setErr != nil {
			p.logger.Warn("Quote cache write failed", map[string]any{
				"symbol": quote.Symbol,
				"error":  setErr.Error(),
			})
		}
	}

	return quote, nil
}
