package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/voltkart/storefront-backend/pkg/redis"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a cart store backed by Redis. Snapshots are
// stored as JSON and expire after ttl of inactivity.
func NewRedisStore(client *redis.Client, ttl time.Duration) (Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &redisStore{client: client, ttl: ttl}, nil
}

func (s *redisStore) Get(ctx context.Context, sessionID string) (*Snapshot, error) {
	payload, err := s.client.Get(ctx, s.client.CartKey(sessionID))
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading cart snapshot: %w", err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
		return nil, fmt.Errorf("decoding cart snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *redisStore) Put(ctx context.Context, snapshot *Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding cart snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.client.CartKey(snapshot.SessionID), string(payload), s.ttl); err != nil {
		return fmt.Errorf("storing cart snapshot: %w", err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.client.CartKey(sessionID)); err != nil {
		return fmt.Errorf("deleting cart snapshot: %w", err)
	}
	return nil
}
