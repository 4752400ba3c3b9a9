package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTokenKey = "session:token"

// TokenStore keeps the session token in redis so it survives restarts.
type TokenStore struct {
	rdb *redis.Client
	key string
}

func NewTokenStore(rdb *redis.Client, profile string) *TokenStore {
	key := defaultTokenKey
	if profile != "" {
		key = fmt.Sprintf("%s:%s", defaultTokenKey, profile)
	}

	return &TokenStore{rdb: rdb, key: key}
}

func (s *TokenStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, s.key, token, ttl).Err(); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	return nil
}

func (s *TokenStore) Get(ctx context.Context) (string, error) {
	token, err := s.rdb.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}

	return token, nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}

	return nil
}
