package handler

import (
	"fmt"
	"sort"
	"sync"

	"github.com/riolytics/matchsearch/internal/search"
	apperrors "github.com/riolytics/matchsearch/pkg/errors"
)

// Registry holds the loaded match engines. Engines are immutable once
// built, so the lock only guards the map itself.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]*search.Engine
	limit   int
}

// NewRegistry creates a registry capped at limit loaded matches. A limit
// of zero or less means unbounded.
func NewRegistry(limit int) *Registry {
	return &Registry{
		engines: make(map[string]*search.Engine),
		limit:   limit,
	}
}

// Put registers an engine under its game id. Loading a game id twice is a
// conflict; unload first to replace.
func (r *Registry) Put(gameID string, eng *search.Engine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.engines[gameID]; ok {
		return fmt.Errorf("match %s: %w", gameID, apperrors.ErrMatchExists)
	}
	if r.limit > 0 && len(r.engines) >= r.limit {
		return fmt.Errorf("match limit %d reached: %w", r.limit, apperrors.ErrInternal)
	}
	r.engines[gameID] = eng
	return nil
}

// Get returns the engine for a game id.
func (r *Registry) Get(gameID string) (*search.Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	eng, ok := r.engines[gameID]
	if !ok {
		return nil, fmt.Errorf("match %s: %w", gameID, apperrors.ErrMatchNotFound)
	}
	return eng, nil
}

// Remove unloads a match. Removing an unknown id is a no-op.
func (r *Registry) Remove(gameID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.engines, gameID)
}

// GameIDs returns the loaded game ids in sorted order.
func (r *Registry) GameIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.engines))
	for id := range r.engines {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of loaded matches.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.engines)
}
