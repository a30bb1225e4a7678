package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const verificationKeyPrefix = "guardian:verified:"

// RedisStore keeps verifications as Redis keys that expire with the TTL, so every
// gateway instance shares one cache.
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedis(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func verificationKey(guardianDID string) string {
	return verificationKeyPrefix + guardianDID
}

func (s *RedisStore) MarkVerified(ctx context.Context, guardianDID string, ttl time.Duration) error {
	value := time.Now().UTC().Format(time.RFC3339Nano)
	if err := s.client.Set(ctx, verificationKey(guardianDID), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set verification: %w", err)
	}
	return nil
}

func (s *RedisStore) IsVerified(ctx context.Context, guardianDID string) (bool, error) {
	err := s.client.Get(ctx, verificationKey(guardianDID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get verification: %w", err)
	}
	return true, nil
}

func (s *RedisStore) Clear(ctx context.Context, guardianDID string) error {
	if err := s.client.Del(ctx, verificationKey(guardianDID)).Err(); err != nil {
		return fmt.Errorf("redis delete verification: %w", err)
	}
	return nil
}
