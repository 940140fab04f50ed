// Package revalidate holds rendered read models per page path and drops them
// when a mutation marks the path stale.
//
// Entries live in a local LRU and, when redis is configured, in a shared tier.
// Invalidations are published on a redis channel so every instance drops its
// local copy.
package revalidate

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/karlseguin/ccache/v3"
)

const (
	channel   = "views:revalidate"
	keyPrefix = "views:"
	idxPrefix = "views:idx:"
)

type Cache struct {
	local *ccache.Cache[[]byte]
	redis *redis.Client
	ttl   time.Duration

	// gen moves on every invalidation seen by this instance. A load that
	// overlaps a move is returned to its caller but never stored.
	gen atomic.Uint64
}

// New builds a cache. rdb may be nil, in which case only the local tier is used.
func New(rdb *redis.Client, maxSize int64, ttl time.Duration) *Cache {
	return &Cache{
		local: ccache.New(ccache.Configure[[]byte]().MaxSize(maxSize)),
		redis: rdb,
		ttl:   ttl,
	}
}

func entryKey(path, view string) string {
	return path + "|" + view
}

func (c *Cache) get(ctx context.Context, key string) ([]byte, bool) {
	if item := c.local.Get(key); item != nil && !item.Expired() {
		return item.Value(), true
	}

	if c.redis == nil {
		return nil, false
	}

	b, err := c.redis.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("view cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	c.local.Set(key, b, c.ttl)
	return b, true
}

func (c *Cache) set(ctx context.Context, path, key string, b []byte) {
	c.local.Set(key, b, c.ttl)

	if c.redis == nil {
		return
	}

	pipe := c.redis.TxPipeline()
	pipe.Set(ctx, keyPrefix+key, b, c.ttl)
	pipe.SAdd(ctx, idxPrefix+path, key)
	pipe.Expire(ctx, idxPrefix+path, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("view cache write failed", "key", key, "error", err)
	}
}

// Revalidate marks paths stale. It never fails the caller.
func (c *Cache) Revalidate(ctx context.Context, paths ...string) {
	for _, path := range paths {
		c.gen.Add(1)
		c.local.DeletePrefix(path + "|")

		if c.redis == nil {
			continue
		}

		keys, err := c.redis.SMembers(ctx, idxPrefix+path).Result()
		if err != nil {
			slog.Warn("revalidate lookup failed", "path", path, "error", err)
			continue
		}

		full := make([]string, 0, len(keys)+1)
		for _, k := range keys {
			full = append(full, keyPrefix+k)
		}
		full = append(full, idxPrefix+path)

		if err := c.redis.Del(ctx, full...).Err(); err != nil {
			slog.Warn("revalidate delete failed", "path", path, "error", err)
		}
		if err := c.redis.Publish(ctx, channel, path).Err(); err != nil {
			slog.Warn("revalidate publish failed", "path", path, "error", err)
		}
	}
}

// Listen drops local entries invalidated by other instances until ctx ends.
func (c *Cache) Listen(ctx context.Context) {
	if c.redis == nil {
		return
	}

	sub := c.redis.Subscribe(ctx, channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			c.gen.Add(1)
			c.local.DeletePrefix(msg.Payload + "|")
		}
	}
}

// Load returns the cached view for (path, view) or calls load and caches its
// result. Load errors are not cached.
func Load[T any](ctx context.Context, c *Cache, path, view string, load func() (T, error)) (T, error) {
	if c == nil {
		return load()
	}

	key := entryKey(path, view)
	if b, ok := c.get(ctx, key); ok {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
	}

	gen := c.gen.Load()
	v, err := load()
	if err != nil {
		return v, err
	}
	if c.gen.Load() != gen {
		return v, nil
	}

	if b, err := json.Marshal(v); err == nil {
		c.set(ctx, path, key, b)
	}
	return v, nil
}
