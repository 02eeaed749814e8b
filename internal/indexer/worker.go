// Package indexer consumes decoded match records from Kafka, verifies they
// index cleanly, archives them in PostgreSQL and announces completion on a
// build-complete topic.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/riolytics/matchsearch/internal/archive"
	"github.com/riolytics/matchsearch/internal/game"
	"github.com/riolytics/matchsearch/internal/lookup"
	"github.com/riolytics/matchsearch/internal/matchcache"
	"github.com/riolytics/matchsearch/internal/search"
	"github.com/riolytics/matchsearch/pkg/kafka"
	"github.com/riolytics/matchsearch/pkg/metrics"
	"github.com/riolytics/matchsearch/pkg/resilience"
)

// BuildComplete is published after a match has been indexed and archived.
type BuildComplete struct {
	GameID     string    `json:"game_id"`
	Events     int       `json:"events"`
	Version    string    `json:"version"`
	Stadium    string    `json:"stadium"`
	ArchivedAt time.Time `json:"archived_at"`
}

// Worker drives the ingest pipeline for one consumer instance.
type Worker struct {
	store    *archive.Store
	cache    *matchcache.Cache
	producer *kafka.Producer
	domain   *lookup.Domain
	metrics  *metrics.Metrics
	retry    resilience.RetryConfig
	logger   *slog.Logger
}

// NewWorker creates an ingest worker. cache and m may be nil; producer may
// be nil to disable completion events.
func NewWorker(store *archive.Store, cache *matchcache.Cache, producer *kafka.Producer, domain *lookup.Domain, m *metrics.Metrics) *Worker {
	return &Worker{
		store:    store,
		cache:    cache,
		producer: producer,
		domain:   domain,
		metrics:  m,
		retry: resilience.RetryConfig{
			MaxAttempts:  5,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     5 * time.Second,
		},
		logger: slog.Default().With("component", "indexer-worker"),
	}
}

// HandleMessage is the Kafka handler for the match-ingest topic. The value
// is one decoded match record. Malformed records are logged and dropped;
// archive failures are returned so the message is redelivered.
func (w *Worker) HandleMessage(ctx context.Context, key, value []byte) error {
	rec, err := game.DecodeBytes(value)
	if err != nil {
		w.logger.Error("dropping undecodable match record", "key", string(key), "error", err)
		return nil
	}
	if err := w.Process(ctx, rec); err != nil {
		var ce *game.ConstructionError
		if errors.As(err, &ce) {
			// Redelivery cannot fix a malformed record.
			w.logger.Error("dropping malformed match record", "game_id", rec.GameID, "error", err)
			return nil
		}
		return err
	}
	return nil
}

// Process indexes, archives and announces one match record.
func (w *Worker) Process(ctx context.Context, rec *game.GameRecord) error {
	// Building the engine proves the record indexes cleanly before anything
	// is persisted. The engine itself is discarded; the searcher rebuilds
	// its own from the archived record.
	eng, err := search.New(rec, w.domain, w.logger, w.metrics)
	if err != nil {
		return err
	}

	summary, err := game.BuildSummary(rec)
	if err != nil {
		return fmt.Errorf("computing summary for %s: %w", rec.GameID, err)
	}

	err = resilience.Retry(ctx, "archive-save", w.retry, func() error {
		return w.store.SaveMatch(ctx, rec, summary)
	})
	if w.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		w.metrics.ArchiveWritesTotal.WithLabelValues(status).Inc()
	}
	if err != nil {
		return fmt.Errorf("archiving match %s: %w", rec.GameID, err)
	}

	if w.cache != nil {
		w.cache.PutSummary(ctx, summary)
	}

	if w.producer != nil {
		event := BuildComplete{
			GameID:     rec.GameID,
			Events:     eng.NumEvents(),
			Version:    rec.Version(),
			Stadium:    rec.Stadium(),
			ArchivedAt: time.Now().UTC(),
		}
		if err := w.producer.Publish(ctx, kafka.Message{Key: rec.GameID, Value: event}); err != nil {
			// The match is archived; losing the announcement is recoverable.
			w.logger.Warn("build-complete publish failed", "game_id", rec.GameID, "error", err)
		}
	}

	w.logger.Info("match ingested", "game_id", rec.GameID, "events", rec.NumEvents())
	return nil
}
