// internal/domain/cart/storage.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage persists the serialized cart under a single key.
// Load returns (nil, nil) when nothing has been stored yet.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// SessionKey returns the storage key of a guest session cart
func SessionKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// RedisStorage keeps carts in Redis with a sliding expiry
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage creates a Redis backed cart storage
func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{
		client: client,
		ttl:    ttl,
	}
}

// Load reads the cart blob stored at key
func (s *RedisStorage) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return data, nil
}

// Save overwrites the cart blob at key and refreshes its expiry
func (s *RedisStorage) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
