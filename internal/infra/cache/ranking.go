package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"koskita/internal/pkg/config"
	"koskita/internal/usecase/queries"
)

// NewRedisClient connects to redis when an address is configured. A nil
// client is a valid result and disables caching entirely.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	if !cfg.Enabled() {
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, func() {}, fmt.Errorf("failed to connect to redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
	return client, cleanup, nil
}

// RankingCache stores search result pages keyed by their filter. Misses and
// redis failures both fall through to Postgres.
type RankingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRankingCache(client *redis.Client, cfg config.RedisConfig) *RankingCache {
	return &RankingCache{client: client, ttl: cfg.ScoreTTL}
}

func (c *RankingCache) enabled() bool {
	return c != nil && c.client != nil
}

func searchKey(filter queries.KosSearchFilter) string {
	var b strings.Builder
	b.WriteString("kos:search:")
	b.WriteString(string(filter.Sort))
	if filter.City != nil {
		fmt.Fprintf(&b, ":city=%s", strings.ToLower(*filter.City))
	}
	if filter.Gender != nil {
		fmt.Fprintf(&b, ":gender=%s", *filter.Gender)
	}
	if filter.MinPrice != nil {
		fmt.Fprintf(&b, ":min=%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		fmt.Fprintf(&b, ":max=%d", *filter.MaxPrice)
	}
	fmt.Fprintf(&b, ":limit=%d", filter.Limit)
	return b.String()
}

func (c *RankingCache) GetSearch(ctx context.Context, filter queries.KosSearchFilter) ([]*queries.KosListItem, bool) {
	if !c.enabled() {
		return nil, false
	}
	raw, err := c.client.Get(ctx, searchKey(filter)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("redis get failed", "error", err)
		}
		return nil, false
	}
	var items []*queries.KosListItem
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("failed to decode cached search result", "error", err)
		return nil, false
	}
	return items, true
}

func (c *RankingCache) SetSearch(ctx context.Context, filter queries.KosSearchFilter, items []*queries.KosListItem) {
	if !c.enabled() {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		slog.Warn("failed to encode search result for cache", "error", err)
		return
	}
	if err := c.client.Set(ctx, searchKey(filter), raw, c.ttl).Err(); err != nil {
		slog.Warn("redis set failed", "error", err)
	}
}

// InvalidateSearch drops cached pages after listing or review writes.
// SCAN keeps it non-blocking; the key space stays small in practice.
func (c *RankingCache) InvalidateSearch(ctx context.Context) {
	if !c.enabled() {
		return
	}
	iter := c.client.Scan(ctx, 0, "kos:search:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			slog.Warn("redis del failed", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		slog.Warn("redis scan failed", "error", err)
	}
}
