package search

import (
	"log/slog"

	"github.com/riolytics/matchsearch/internal/game"
	"github.com/riolytics/matchsearch/internal/lookup"
	"github.com/riolytics/matchsearch/pkg/metrics"
)

// Engine answers set-algebra queries over one match's built indices. It has
// exactly two states: under construction inside New, and ready. Once New
// returns, the engine is immutable and safe for any number of concurrent
// callers.
type Engine struct {
	rec *game.GameRecord
	dom *lookup.Domain
	ix  *Index
}

// New builds the index for rec and returns a ready engine. The record is
// never mutated or copied; callers resolve returned event ids back through
// it.
func New(rec *game.GameRecord, dom *lookup.Domain, log *slog.Logger, m *metrics.Metrics) (*Engine, error) {
	ix, err := NewBuilder(log, m).Build(rec, dom)
	if err != nil {
		return nil, err
	}
	return &Engine{rec: rec, dom: dom, ix: ix}, nil
}

// Record returns the match record the engine was built from.
func (e *Engine) Record() *game.GameRecord {
	return e.rec
}

// NumEvents returns the number of indexed events.
func (e *Engine) NumEvents() int {
	return e.ix.numEvents
}
