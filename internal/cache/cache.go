package cache

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"
	"strconv"
	"time" // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

const generationPrefix = "gen:"

// Cache stores JSON encoded values in Redis with a fixed TTL.
// A nil *Cache is valid and never hits.
//
// Values are grouped in scopes. A scope's entries live under Key(scope, gen)
// and writers call Bump after committing, so a reader that loaded data before
// the write can only fill a key no later reader will look at.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Key returns the key holding scope's value at generation gen
func Key(scope string, gen int64) string {
	return scope + ":v" + strconv.FormatInt(gen, 10)
}

// Generation returns the current generation of scope, 0 when it was never bumped
func (c *Cache) Generation(ctx context.Context, scope string) (int64, error) {
	if c == nil {
		return 0, nil
	}
	gen, err := c.rdb.Get(ctx, generationPrefix+scope).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil // Never bumped
	}
	return gen, err
}

// Bump advances the generation of every scope given
func (c *Cache) Bump(ctx context.Context, scopes ...string) error {
	if c == nil || len(scopes) == 0 {
		return nil
	}
	pipe := c.rdb.TxPipeline()
	for _, scope := range scopes {
		pipe.Incr(ctx, generationPrefix+scope) // INCR is atomic, concurrent writers never share a generation
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Get retrieves a value from Redis and unmarshals it into dest
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	val, err := c.rdb.Get(ctx, key).Bytes() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal(val, dest) // Unmarshal JSON into dest
}

// Set stores value under key for the cache TTL
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}
