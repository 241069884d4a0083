package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// SearchCache keeps recent availability search results in Redis. Any cache
// failure degrades to a miss so search never depends on Redis being up.
type SearchCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSearchCache(rdb *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{rdb: rdb, ttl: ttl}
}

func (c *SearchCache) Get(ctx context.Context, key string) (*queries.SearchView, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("search cache get failed", "key", key, "error", err.Error())
		}
		return nil, false
	}

	var view queries.SearchView
	if err := json.Unmarshal(raw, &view); err != nil {
		slog.Debug("search cache entry corrupt", "key", key, "error", err.Error())
		return nil, false
	}
	return &view, true
}

func (c *SearchCache) Set(ctx context.Context, key string, view *queries.SearchView) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(view)
	if err != nil {
		slog.Debug("search cache marshal failed", "key", key, "error", err.Error())
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Debug("search cache set failed", "key", key, "error", err.Error())
	}
}
