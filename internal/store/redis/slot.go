package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store persists slots as plain Redis strings without expiry.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis slot store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Get retrieves the blob of a slot
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, SlotKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get slot: %w", err)
	}
	return value, true, nil
}

// Set replaces the blob of a slot
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, SlotKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save slot: %w", err)
	}
	return nil
}

// Ping checks the connection, used by /readyz
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client
func (s *Store) Close() error {
	return s.client.Close()
}
