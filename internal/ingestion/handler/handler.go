// Package handler implements the HTTP surface of the match upload service.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/riolytics/matchsearch/internal/game"
	"github.com/riolytics/matchsearch/internal/ingestion"
	"github.com/riolytics/matchsearch/internal/ingestion/validator"
	apperrors "github.com/riolytics/matchsearch/pkg/errors"
	"github.com/riolytics/matchsearch/pkg/logger"
	"github.com/riolytics/matchsearch/pkg/metrics"
)

// maxBodyBytes caps the accepted upload size. Decoded match files run a few
// hundred kilobytes; 8 MiB leaves ample headroom.
const maxBodyBytes = 8 << 20

// Ingestor accepts a validated match record for archival and indexing.
type Ingestor interface {
	Ingest(ctx context.Context, rec *game.GameRecord, raw []byte) (*ingestion.IngestResponse, error)
}

// Handler serves the match upload endpoint.
type Handler struct {
	ingestor Ingestor
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// New creates a Handler. m may be nil to disable metric counting.
func New(ingestor Ingestor, m *metrics.Metrics) *Handler {
	return &Handler{
		ingestor: ingestor,
		metrics:  m,
		logger:   slog.Default().With("component", "ingest-handler"),
	}
}

// Register mounts the upload routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/matches", h.Ingest)
}

// Ingest accepts one decoded match record as the request body, validates it
// and queues it for indexing. The response is 202 with the queue status; a
// record already archived is acknowledged with status DUPLICATE.
func (h *Handler) Ingest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.countReceived("rejected")
		h.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	rec, err := game.DecodeBytes(body)
	if err != nil {
		h.countReceived("rejected")
		h.writeError(w, http.StatusBadRequest, "malformed match record: "+err.Error())
		return
	}
	if err := validator.ValidateRecord(rec); err != nil {
		h.countReceived("rejected")
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			h.writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":  "validation failed",
				"fields": ve.Fields,
			})
			return
		}
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.ingestor.Ingest(ctx, rec, body)
	if err != nil {
		status := apperrors.HTTPStatusCode(err)
		log.Error("match upload failed",
			"game_id", rec.GameID,
			"status_code", status,
			"error", err,
		)
		h.countReceived("rejected")
		h.writeError(w, status, "upload failed")
		return
	}

	switch resp.Status {
	case ingestion.StatusDuplicate:
		h.countReceived("duplicate")
	default:
		h.countReceived("accepted")
	}
	log.Info("match upload accepted",
		"game_id", resp.GameID,
		"status", resp.Status,
		"events", resp.Events,
	)
	h.writeJSON(w, http.StatusAccepted, resp)
}

func (h *Handler) countReceived(outcome string) {
	if h.metrics != nil {
		h.metrics.MatchesReceivedTotal.WithLabelValues(outcome).Inc()
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
