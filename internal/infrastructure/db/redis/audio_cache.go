package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const audioTTL = 7 * 24 * time.Hour

// kv is the subset of the Redis client the cache needs.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// AudioCache stores synthesized question audio backed by Redis.
// Key format: tts:<sha256 of question text>
type AudioCache struct {
	client kv
	ttl    time.Duration
}

// NewAudioCache creates an AudioCache wrapping the given Redis client.
func NewAudioCache(client *redis.Client) *AudioCache {
	return &AudioCache{client: client, ttl: audioTTL}
}

// Get returns the cached audio; found is false on a miss.
func (a *AudioCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := a.client.Get(ctx, a.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("audio cache get: %w", err)
	}
	return data, true, nil
}

// Set stores audio under key, overwriting any previous value.
func (a *AudioCache) Set(ctx context.Context, key string, data []byte) error {
	if err := a.client.Set(ctx, a.key(key), data, a.ttl).Err(); err != nil {
		return fmt.Errorf("audio cache set: %w", err)
	}
	return nil
}

func (a *AudioCache) key(hash string) string {
	return "tts:" + hash
}
