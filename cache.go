package docpress

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/gofiber/storage/memory/v2"
	"github.com/redis/go-redis/v9"
)

// Store is the backend for the optional render cache. Get returns (nil, nil)
// on a miss; a ttl of zero or less means the backend's default expiry.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, ttl time.Duration) error
}

// cacheKey derives a stable key from the serialized payload, so two requests
// that compile to the same document share a cache entry.
func cacheKey(payload []byte) string {
	sum := sha256.Sum256(payload)
	return "rendercache:" + hex.EncodeToString(sum[:])
}

// MemoryStore is an in-process Store with per-entry TTL.
type MemoryStore struct {
	s *memory.Storage
}

// NewMemoryStore creates an in-process render cache.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{s: memory.New()}
}

func (m *MemoryStore) Get(key string) ([]byte, error) {
	return m.s.Get(key)
}

func (m *MemoryStore) Set(key string, val []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return m.s.Set(key, val, ttl)
}

// RedisStore is a Store backed by a caller-owned Redis client, for sharing
// rendered output across processes.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an existing Redis client. The caller keeps ownership of
// the client and its lifecycle.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (r *RedisStore) Get(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	val, err := r.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (r *RedisStore) Set(key string, val []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if ttl <= 0 {
		ttl = time.Minute
	}
	return r.rdb.Set(ctx, key, val, ttl).Err()
}
