// Package redis implements the client storage repository on Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"storefront/internal/adapter/seal"
	"storefront/internal/domain"
)

const keyPrefix = "storefront:client:"

// Store implements domain.StorageRepository. Values are sealed and expire
// after ttl; a zero ttl keeps them forever.
type Store struct {
	client *goredis.Client
	box    *seal.Box
	ttl    time.Duration
}

var _ domain.StorageRepository = (*Store)(nil)

// Open connects to the Redis server at url and pings it.
func Open(url string, box *seal.Box, ttl time.Duration) (*Store, error) {
	opt, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := goredis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &Store{client: client, box: box, ttl: ttl}, nil
}

// Close closes the client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Get returns the value stored under key for clientID.
func (s *Store) Get(ctx context.Context, clientID, key string) (string, error) {
	sealed, err := s.client.Get(ctx, storageKey(clientID, key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	v, err := s.box.Open(sealed)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", key, err)
	}
	return v, nil
}

// Set stores value under key for clientID.
func (s *Store) Set(ctx context.Context, clientID, key, value string) error {
	sealed, err := s.box.Seal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, storageKey(clientID, key), sealed, s.ttl).Err()
}

// Delete removes key for clientID.
func (s *Store) Delete(ctx context.Context, clientID, key string) error {
	return s.client.Del(ctx, storageKey(clientID, key)).Err()
}

func storageKey(clientID, key string) string {
	return keyPrefix + clientID + ":" + key
}
