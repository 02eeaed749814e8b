// Package validator checks uploaded match records before they are handed to
// the indexing pipeline. It rejects records missing the fields the indexer
// cannot recover from and returns per-field error details.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riolytics/matchsearch/internal/game"
)

// maxEvents bounds the number of events accepted in a single record. A full
// nine-inning game stays well under this; anything larger is a corrupt file.
const maxEvents = 4096

// ValidationError holds per-field validation failure messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(parts, "; ")
}

// ValidateRecord checks that a decoded match record carries a game id and a
// contiguous, non-empty event list. Deeper per-event checks are left to the
// index builder, which tolerates partially populated events.
func ValidateRecord(rec *game.GameRecord) error {
	errs := make(map[string]string)

	if strings.TrimSpace(rec.GameID) == "" {
		errs["game_id"] = "game id is required"
	}
	switch {
	case len(rec.Events) == 0:
		errs["events"] = "at least one event is required"
	case len(rec.Events) > maxEvents:
		errs["events"] = fmt.Sprintf("record has %d events, limit is %d", len(rec.Events), maxEvents)
	default:
		if err := rec.Validate(); err != nil {
			errs["events"] = err.Error()
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
