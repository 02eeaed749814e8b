// Package matchcache caches match summaries in Redis so repeated summary
// lookups skip the archive. Query results are never cached; they are
// recomputed from the in-memory index on every call.
package matchcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/riolytics/matchsearch/internal/game"
	"github.com/riolytics/matchsearch/pkg/metrics"
	"github.com/riolytics/matchsearch/pkg/redis"
)

// Cache is a best-effort summary cache: a miss or a Redis failure falls
// back to the caller's slow path, never into an error the caller must
// handle.
type Cache struct {
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a summary cache. Metrics may be nil.
func New(client *redis.Client, ttl time.Duration, m *metrics.Metrics) *Cache {
	return &Cache{
		client:  client,
		ttl:     ttl,
		logger:  slog.Default().With("component", "matchcache"),
		metrics: m,
	}
}

func summaryKey(gameID string) string {
	return fmt.Sprintf("match:summary:%s", gameID)
}

// GetSummary returns the cached summary for a game, or nil on a miss.
func (c *Cache) GetSummary(ctx context.Context, gameID string) *game.Summary {
	data, err := c.client.Get(ctx, summaryKey(gameID))
	if err != nil {
		if !redis.IsNilError(err) {
			c.logger.Warn("summary cache read failed", "game_id", gameID, "error", err)
		}
		c.miss()
		return nil
	}
	var summary game.Summary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		c.logger.Warn("corrupt cached summary, dropping", "game_id", gameID, "error", err)
		_ = c.client.Del(ctx, summaryKey(gameID))
		c.miss()
		return nil
	}
	if c.metrics != nil {
		c.metrics.SummaryCacheHits.Inc()
	}
	return &summary
}

// PutSummary stores a summary with the configured TTL. Failures are logged
// and swallowed; the cache is advisory.
func (c *Cache) PutSummary(ctx context.Context, summary *game.Summary) {
	data, err := json.Marshal(summary)
	if err != nil {
		c.logger.Warn("summary marshal failed", "game_id", summary.GameID, "error", err)
		return
	}
	if err := c.client.Set(ctx, summaryKey(summary.GameID), data, c.ttl); err != nil {
		c.logger.Warn("summary cache write failed", "game_id", summary.GameID, "error", err)
	}
}

// Invalidate removes a game's cached summary.
func (c *Cache) Invalidate(ctx context.Context, gameID string) {
	if err := c.client.Del(ctx, summaryKey(gameID)); err != nil {
		c.logger.Warn("summary cache invalidation failed", "game_id", gameID, "error", err)
	}
}

func (c *Cache) miss() {
	if c.metrics != nil {
		c.metrics.SummaryCacheMisses.Inc()
	}
}
