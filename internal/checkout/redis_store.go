package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/voltkart/storefront-backend/pkg/redis"
)

type redisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStateStore returns a checkout state store backed by Redis,
// expiring states after ttl of inactivity.
func NewRedisStateStore(client *redis.Client, ttl time.Duration) (StateStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &redisStateStore{client: client, ttl: ttl}, nil
}

func (s *redisStateStore) Get(ctx context.Context, sessionID string) (*State, error) {
	payload, err := s.client.Get(ctx, s.client.CheckoutKey(sessionID))
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading checkout state: %w", err)
	}
	var state State
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, fmt.Errorf("decoding checkout state: %w", err)
	}
	return &state, nil
}

func (s *redisStateStore) Put(ctx context.Context, state *State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding checkout state: %w", err)
	}
	if err := s.client.Set(ctx, s.client.CheckoutKey(state.SessionID), string(payload), s.ttl); err != nil {
		return fmt.Errorf("storing checkout state: %w", err)
	}
	return nil
}

func (s *redisStateStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.client.CheckoutKey(sessionID)); err != nil {
		return fmt.Errorf("deleting checkout state: %w", err)
	}
	return nil
}
