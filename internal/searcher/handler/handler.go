// Package handler exposes the match search HTTP API: loading decoded match
// records, querying their event indices, and serving box-score summaries.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/riolytics/matchsearch/internal/export"
	"github.com/riolytics/matchsearch/internal/game"
	"github.com/riolytics/matchsearch/internal/lookup"
	"github.com/riolytics/matchsearch/internal/matchcache"
	"github.com/riolytics/matchsearch/internal/search"
	apperrors "github.com/riolytics/matchsearch/pkg/errors"
	"github.com/riolytics/matchsearch/pkg/logger"
	"github.com/riolytics/matchsearch/pkg/metrics"
)

// maxRecordBytes bounds one uploaded match record.
const maxRecordBytes = 16 << 20

type Handler struct {
	registry *Registry
	domain   *lookup.Domain
	cache    *matchcache.Cache
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// New creates the API handler. cache and m may be nil.
func New(registry *Registry, domain *lookup.Domain, cache *matchcache.Cache, m *metrics.Metrics) *Handler {
	return &Handler{
		registry: registry,
		domain:   domain,
		cache:    cache,
		metrics:  m,
		logger:   slog.Default().With("component", "search-handler"),
	}
}

// Register wires the API routes onto mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/matches", h.LoadMatch)
	mux.HandleFunc("GET /api/v1/matches", h.ListMatches)
	mux.HandleFunc("DELETE /api/v1/matches/{id}", h.UnloadMatch)
	mux.HandleFunc("GET /api/v1/matches/{id}/search", h.Search)
	mux.HandleFunc("GET /api/v1/matches/{id}/summary", h.Summary)
	mux.HandleFunc("GET /api/v1/matches/{id}/pitches.csv", h.PitchCSV)
}

// LoadMatch decodes the posted match record, builds its index and registers
// the engine under the record's game id.
func (h *Handler) LoadMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	rec, err := game.Decode(http.MaxBytesReader(w, r.Body, maxRecordBytes))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed match record: "+err.Error())
		return
	}
	if rec.GameID == "" {
		h.writeError(w, http.StatusBadRequest, "match record has no game id")
		return
	}

	eng, err := search.New(rec, h.domain, log, h.metrics)
	if err != nil {
		var ce *game.ConstructionError
		if errors.As(err, &ce) {
			h.writeError(w, http.StatusBadRequest, ce.Error())
			return
		}
		log.Error("index build failed", "game_id", rec.GameID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "index build failed")
		return
	}
	if err := h.registry.Put(rec.GameID, eng); err != nil {
		h.writeError(w, apperrors.HTTPStatusCode(err), err.Error())
		return
	}
	if h.metrics != nil {
		h.metrics.LoadedMatches.Set(float64(h.registry.Len()))
	}

	summary, err := game.BuildSummary(rec)
	if err != nil {
		log.Warn("summary computation failed", "game_id", rec.GameID, "error", err)
		h.writeJSON(w, http.StatusCreated, map[string]any{
			"game_id": rec.GameID,
			"events":  rec.NumEvents(),
		})
		return
	}
	if h.cache != nil {
		h.cache.PutSummary(ctx, summary)
	}

	log.Info("match loaded", "game_id", rec.GameID, "events", rec.NumEvents())
	h.writeJSON(w, http.StatusCreated, summary)
}

// ListMatches returns the loaded game ids.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"matches": h.registry.GameIDs(),
		"count":   h.registry.Len(),
	})
}

// UnloadMatch drops a loaded match's index.
func (h *Handler) UnloadMatch(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	h.registry.Remove(gameID)
	if h.cache != nil {
		h.cache.Invalidate(r.Context(), gameID)
	}
	if h.metrics != nil {
		h.metrics.LoadedMatches.Set(float64(h.registry.Len()))
	}
	w.WriteHeader(http.StatusNoContent)
}

// Search evaluates the composable event query against one match. Every
// recognized query parameter narrows the result; the empty query returns
// all events.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := logger.FromContext(r.Context())
	gameID := r.PathValue("id")

	eng, err := h.registry.Get(gameID)
	if err != nil {
		h.writeError(w, apperrors.HTTPStatusCode(err), err.Error())
		return
	}

	result, axes, err := evalQuery(eng, r.URL.Query())
	if err != nil {
		h.countQuery(axes, "error")
		var ve *search.ValidationError
		if errors.As(err, &ve) {
			h.writeError(w, http.StatusBadRequest, ve.Error())
			return
		}
		h.writeError(w, apperrors.HTTPStatusCode(err), err.Error())
		return
	}
	h.countQuery(axes, "ok")
	if h.metrics != nil {
		h.metrics.QueryLatency.Observe(time.Since(start).Seconds())
	}

	log.Info("search completed",
		"game_id", gameID,
		"axes", axes,
		"matched", result.Len(),
		"latency_ms", time.Since(start).Milliseconds(),
	)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"game_id":   gameID,
		"count":     result.Len(),
		"event_ids": result.Sorted(),
	})
}

// Summary serves the match box score, checking the cache first when one is
// wired.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	gameID := r.PathValue("id")

	if h.cache != nil {
		if summary := h.cache.GetSummary(ctx, gameID); summary != nil {
			h.writeJSON(w, http.StatusOK, summary)
			return
		}
	}

	eng, err := h.registry.Get(gameID)
	if err != nil {
		h.writeError(w, apperrors.HTTPStatusCode(err), err.Error())
		return
	}
	summary, err := game.BuildSummary(eng.Record())
	if err != nil {
		h.logger.Error("summary computation failed", "game_id", gameID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "summary computation failed")
		return
	}
	if h.cache != nil {
		h.cache.PutSummary(ctx, summary)
	}
	h.writeJSON(w, http.StatusOK, summary)
}

// PitchCSV streams the pitch-level export for one loaded match.
func (h *Handler) PitchCSV(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	eng, err := h.registry.Get(gameID)
	if err != nil {
		h.writeError(w, apperrors.HTTPStatusCode(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="pitches_`+gameID+`.csv"`)
	if err := export.WriteCSV(w, []*game.GameRecord{eng.Record()}); err != nil {
		h.logger.Error("pitch export failed", "game_id", gameID, "error", err)
	}
}

func (h *Handler) countQuery(axes []string, outcome string) {
	if h.metrics == nil {
		return
	}
	if len(axes) == 0 {
		h.metrics.QueriesTotal.WithLabelValues("all", outcome).Inc()
		return
	}
	for _, axis := range axes {
		h.metrics.QueriesTotal.WithLabelValues(axis, outcome).Inc()
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
