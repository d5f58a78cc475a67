package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

// Connect initializes a Redis client from URL or host:port input.
// Supporting both formats keeps local/dev and container config paths simple.
func Connect(_ context.Context, redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") {
		opt, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			return nil, fmt.Errorf("parse redis url: %w", parseErr)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

// RedisSessionSlotStore mirrors the signed-in identity into Redis so the
// slot survives process restarts. One key per app name, no TTL.
type RedisSessionSlotStore struct {
	client  *redis.Client
	appName string
}

// NewRedisSessionSlotStore creates the shared-slot adapter.
func NewRedisSessionSlotStore(client *redis.Client, appName string) *RedisSessionSlotStore {
	return &RedisSessionSlotStore{client: client, appName: appName}
}

func (s *RedisSessionSlotStore) key() string {
	return "session:" + s.appName
}

func (s *RedisSessionSlotStore) Save(ctx context.Context, identity domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(), raw, 0).Err()
}

func (s *RedisSessionSlotStore) Load(ctx context.Context) (domain.Identity, bool, error) {
	raw, err := s.client.Get(ctx, s.key()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Identity{}, false, nil
		}
		return domain.Identity{}, false, err
	}
	var out domain.Identity
	if err := json.Unmarshal(raw, &out); err != nil {
		return domain.Identity{}, false, err
	}
	return out, true, nil
}

func (s *RedisSessionSlotStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key()).Err()
}
