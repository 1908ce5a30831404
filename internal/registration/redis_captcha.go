package registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/voltkart/storefront-backend/pkg/redis"
)

type redisCaptchaStore struct {
	client *redis.Client
}

// NewRedisCaptchaStore returns a captcha store backed by Redis, relying
// on key expiry for the challenge TTL.
func NewRedisCaptchaStore(client *redis.Client) (CaptchaStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &redisCaptchaStore{client: client}, nil
}

func (s *redisCaptchaStore) Put(ctx context.Context, id, text string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.client.CaptchaKey(id), text, ttl); err != nil {
		return fmt.Errorf("storing captcha: %w", err)
	}
	return nil
}

func (s *redisCaptchaStore) Take(ctx context.Context, id string) (string, bool, error) {
	key := s.client.CaptchaKey(id)
	text, err := s.client.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("loading captcha: %w", err)
	}
	if err := s.client.Del(ctx, key); err != nil {
		return "", false, fmt.Errorf("consuming captcha: %w", err)
	}
	return text, true, nil
}
