// Package archive provides durable storage of match summaries and raw
// match records in PostgreSQL. The per-match index itself is never
// persisted; it is cheap to rebuild from the stored record.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/riolytics/matchsearch/internal/game"
	apperrors "github.com/riolytics/matchsearch/pkg/errors"
	"github.com/riolytics/matchsearch/pkg/postgres"
)

// Store persists decoded matches and their box-score summaries.
type Store struct {
	db     *postgres.Client
	logger *slog.Logger
}

// NewStore creates a match archive over an existing database client.
func NewStore(db *postgres.Client) *Store {
	return &Store{
		db:     db,
		logger: slog.Default().With("component", "archive"),
	}
}

// EnsureSchema creates the archive tables if they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS matches (
		    game_id     TEXT PRIMARY KEY,
		    version     TEXT NOT NULL,
		    stadium     TEXT NOT NULL,
		    events      INT NOT NULL,
		    record      JSONB NOT NULL,
		    summary     JSONB NOT NULL,
		    archived_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("creating matches table: %w", err)
	}
	return nil
}

// SaveMatch stores a match record and its summary in one transaction.
// Re-archiving the same game id replaces the previous copy.
func (s *Store) SaveMatch(ctx context.Context, rec *game.GameRecord, summary *game.Summary) error {
	recData, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling match record: %w", err)
	}
	sumData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshaling match summary: %w", err)
	}

	err = s.db.InTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO matches (game_id, version, stadium, events, record, summary, archived_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (game_id) DO UPDATE SET
			    version = EXCLUDED.version,
			    stadium = EXCLUDED.stadium,
			    events = EXCLUDED.events,
			    record = EXCLUDED.record,
			    summary = EXCLUDED.summary,
			    archived_at = EXCLUDED.archived_at`,
			rec.GameID, rec.Version(), rec.Stadium(), rec.NumEvents(),
			recData, sumData, time.Now().UTC(),
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("archiving match %s: %w", rec.GameID, err)
	}

	s.logger.Info("match archived", "game_id", rec.GameID, "events", rec.NumEvents())
	return nil
}

// HasMatch reports whether a game id is already archived.
func (s *Store) HasMatch(ctx context.Context, gameID string) (bool, error) {
	var one int
	err := s.db.DB.QueryRowContext(ctx,
		`SELECT 1 FROM matches WHERE game_id = $1`, gameID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking match %s: %w", gameID, err)
	}
	return true, nil
}

// LoadMatch fetches one archived match record by game id.
func (s *Store) LoadMatch(ctx context.Context, gameID string) (*game.GameRecord, error) {
	var data []byte
	err := s.db.DB.QueryRowContext(ctx,
		`SELECT record FROM matches WHERE game_id = $1`, gameID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("match %s not archived: %w", gameID, apperrors.ErrMatchNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying match %s: %w", gameID, err)
	}
	rec, err := game.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decoding archived match %s: %w", gameID, err)
	}
	return rec, nil
}

// LoadSummary fetches one archived match summary by game id.
func (s *Store) LoadSummary(ctx context.Context, gameID string) (*game.Summary, error) {
	var data []byte
	err := s.db.DB.QueryRowContext(ctx,
		`SELECT summary FROM matches WHERE game_id = $1`, gameID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("match %s not archived: %w", gameID, apperrors.ErrMatchNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying summary for %s: %w", gameID, err)
	}
	var summary game.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("unmarshaling summary for %s: %w", gameID, err)
	}
	return &summary, nil
}

// ListMatches returns the most recently archived game ids, newest first.
func (s *Store) ListMatches(ctx context.Context, limit int) ([]string, error) {
	rows, err := s.db.DB.QueryContext(ctx,
		`SELECT game_id FROM matches ORDER BY archived_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing matches: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning match row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
