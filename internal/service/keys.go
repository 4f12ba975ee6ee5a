package service

import (
	"context"
	"strconv"

	"event_manager/internal/cache"

	"github.com/sirupsen/logrus"
)

// Cache scopes
const eventsScope = "events"

func registrationsScope(eventID uint) string {
	return "registrations:event:" + strconv.FormatUint(uint64(eventID), 10)
}

// loadCached returns scope's cached value, or calls load and caches the result.
// The generation is read before load so a write that commits meanwhile moves later readers past whatever this call stores.
func loadCached[T any](ctx context.Context, c *cache.Cache, scope string, load func(context.Context) (T, error)) (T, error) {
	gen, err := c.Generation(ctx, scope)
	if err != nil {
		logrus.WithError(err).WithField("scope", scope).Warn("Cache generation read failed")
		return load(ctx) // Serve from the store without caching
	}
	key := cache.Key(scope, gen)

	var out T
	if found, err := c.Get(ctx, key, &out); err == nil && found {
		return out, nil // Cache hit
	} else if err != nil {
		logrus.WithError(err).WithField("scope", scope).Warn("Cache read failed")
	}

	out, err = load(ctx)
	if err != nil {
		return out, err
	}
	if err := c.Set(ctx, key, out); err != nil {
		logrus.WithError(err).WithField("scope", scope).Warn("Cache write failed")
	}
	return out, nil
}

// invalidate moves scopes to a new generation; failures leave stale entries until the TTL
func invalidate(ctx context.Context, c *cache.Cache, scopes ...string) {
	if err := c.Bump(ctx, scopes...); err != nil {
		logrus.WithError(err).WithField("scopes", scopes).Warn("Cache invalidation failed")
	}
}
