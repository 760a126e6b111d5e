// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed cache for the rendered festival page.
// The page has only two variants (menu open or closed) per content
// revision, so keys carry the menu state and the renderer's cache tag.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"kosenfes/internal/metrics"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached pages.
	pageKeyPrefix = "kosenfes:page:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// Pages stores rendered pages. Failures are logged and treated as misses;
// the site keeps serving from the renderer.
type Pages interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, html []byte)
}

// PageCache keeps rendered pages in Valkey under pageKeyPrefix.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache wraps client. A zero ttl means DefaultPageTTL.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get returns the stored page and records a hit or miss.
func (pc *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, pageKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.PageCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "key", key, "error", err)
		metrics.PageCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	slog.Debug("page cache hit", "key", key)
	metrics.PageCacheLookups.WithLabelValues("hit").Inc()
	return val, true
}

// Set stores html until the TTL runs out.
func (pc *PageCache) Set(ctx context.Context, key string, html []byte) {
	if err := pc.client.Set(ctx, pageKeyPrefix+key, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "key", key, "error", err)
	}
}

// InvalidateAll deletes every key under the page prefix and reports how
// many were removed.
func (pc *PageCache) InvalidateAll(ctx context.Context) (int, error) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				return deleted, err
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("page cache cleared", "deleted", deleted)
	}
	return deleted, nil
}

// Nop is a Pages that never stores anything. It is used when Valkey is not
// configured.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool) {
	metrics.PageCacheLookups.WithLabelValues("miss").Inc()
	return nil, false
}

func (Nop) Set(context.Context, string, []byte) {}

// HomeKey returns the cache key for the page in one menu state. tag must
// change whenever the rendered bytes could change.
func HomeKey(menuOpen bool, tag string) string {
	state := "closed"
	if menuOpen {
		state = "open"
	}
	return "home:" + state + ":" + tag
}
