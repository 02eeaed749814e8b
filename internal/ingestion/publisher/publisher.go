// Package publisher forwards validated match records to the match-ingest
// Kafka topic, deduplicating against the PostgreSQL archive so a re-uploaded
// game is acknowledged without being re-indexed.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/riolytics/matchsearch/internal/archive"
	"github.com/riolytics/matchsearch/internal/game"
	"github.com/riolytics/matchsearch/internal/ingestion"
	apperrors "github.com/riolytics/matchsearch/pkg/errors"
	"github.com/riolytics/matchsearch/pkg/kafka"
)

// Publisher coordinates archive deduplication and Kafka event production.
type Publisher struct {
	store    *archive.Store
	producer *kafka.Producer
	logger   *slog.Logger
}

// New creates a Publisher over the match archive and a Kafka producer for
// the match-ingest topic.
func New(store *archive.Store, producer *kafka.Producer) *Publisher {
	return &Publisher{
		store:    store,
		producer: producer,
		logger:   slog.Default().With("component", "ingest-publisher"),
	}
}

// Ingest forwards one decoded match record to Kafka, keyed by game id so all
// events for a match land on the same partition. raw is the original upload
// body; it is forwarded untouched so the indexer decodes exactly what the
// uploader sent. Records already present in the archive are acknowledged as
// duplicates without publishing.
func (p *Publisher) Ingest(ctx context.Context, rec *game.GameRecord, raw []byte) (*ingestion.IngestResponse, error) {
	exists, err := p.store.HasMatch(ctx, rec.GameID)
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrArchiveUnavailable, 503,
			"checking archive for %s: %v", rec.GameID, err)
	}
	if exists {
		p.logger.Info("duplicate match upload", "game_id", rec.GameID)
		return &ingestion.IngestResponse{
			GameID: rec.GameID,
			Status: ingestion.StatusDuplicate,
			Events: len(rec.Events),
		}, nil
	}

	msg := kafka.Message{
		Key:   rec.GameID,
		Value: json.RawMessage(raw),
	}
	if err := p.producer.Publish(ctx, msg); err != nil {
		return nil, fmt.Errorf("publishing match %s: %w", rec.GameID, err)
	}

	p.logger.Info("match queued for indexing",
		"game_id", rec.GameID,
		"events", len(rec.Events),
		"version", rec.Version(),
	)
	return &ingestion.IngestResponse{
		GameID: rec.GameID,
		Status: ingestion.StatusAccepted,
		Events: len(rec.Events),
	}, nil
}
