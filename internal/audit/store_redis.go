package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const eventsKeyPrefix = "audit:events:"

// RedisStore keeps each holder's events in a capped Redis list so every gateway
// instance writes to one trail.
type RedisStore struct {
	client    redis.UniversalClient
	retention int64
}

func NewRedisStore(client redis.UniversalClient, retention int) *RedisStore {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &RedisStore{client: client, retention: int64(retention)}
}

func eventsKey(holderDID string) string {
	return eventsKeyPrefix + holderDID
}

func (s *RedisStore) Append(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	key := eventsKey(event.HolderDID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, payload)
		pipe.LTrim(ctx, key, -s.retention, -1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis append audit event: %w", err)
	}
	return nil
}

func (s *RedisStore) ListByHolder(ctx context.Context, holderDID string) ([]Event, error) {
	raw, err := s.client.LRange(ctx, eventsKey(holderDID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list audit events: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrNotFound
	}
	events := make([]Event, 0, len(raw))
	for _, item := range raw {
		var event Event
		if err := json.Unmarshal([]byte(item), &event); err != nil {
			return nil, fmt.Errorf("decode audit event: %w", err)
		}
		events = append(events, event)
	}
	return events, nil
}
