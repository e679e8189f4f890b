package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
	"github.com/dampdigits/stockplay/internal/domain/port/session"
)

const (
	keyPrefix = "session:"
	tokenSize = 32
)

// RedisStore implements the session Store on Redis with TTL-bounded keys.
// Tokens are opaque random strings; losing Redis loses only login state,
// never durable ledger data.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger coreport.Logger
}

// NewRedisStore creates a session store with the given token lifetime
func NewRedisStore(client *redis.Client, ttl time.Duration, logger coreport.Logger) session.Store {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Create mints a fresh random token bound to the username
func (s *RedisStore) Create(ctx context.Context, username string) (string, error) {
	buf := make([]byte, tokenSize)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: generating session token: %s", errs.ErrInternalServer, err.Error())
	}
	token := hex.EncodeToString(buf)

	if err := s.client.Set(ctx, keyPrefix+token, username, s.ttl).Err(); err != nil {
		s.logger.Error("Failed to store session", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return "", fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	return token, nil
}

// Resolve returns the username a token is bound to
func (s *RedisStore) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", errs.ErrSessionNotFound
	}

	username, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errs.ErrSessionNotFound
		}
		s.logger.Error("Failed to resolve session", map[string]any{
			"error": err.Error(),
		})
		return "", fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	return username, nil
}

// Destroy invalidates a token. Unknown tokens are ignored.
func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		s.logger.Error("Failed to destroy session", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	return nil
}
