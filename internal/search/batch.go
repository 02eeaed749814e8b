package search

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/riolytics/matchsearch/internal/game"
	"github.com/riolytics/matchsearch/internal/lookup"
	"github.com/riolytics/matchsearch/pkg/metrics"
)

// BuildAll builds engines for many independent matches in parallel. Each
// build is self-contained, so the only coordination is the concurrency
// limit and collecting results. A record that fails to build fails the
// whole batch; callers wanting best-effort loading filter records first.
func BuildAll(ctx context.Context, records []*game.GameRecord, dom *lookup.Domain, log *slog.Logger, m *metrics.Metrics, concurrency int) (map[string]*Engine, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	var mu sync.Mutex
	engines := make(map[string]*Engine, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, rec := range records {
		rec := rec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			eng, err := New(rec, dom, log, m)
			if err != nil {
				return err
			}
			mu.Lock()
			engines[rec.GameID] = eng
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return engines, nil
}
