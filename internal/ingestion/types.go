// Package ingestion defines the response types used by the match upload
// pipeline. Uploaded records are decoded and validated at the edge, then
// forwarded to Kafka for the indexer workers to archive.
package ingestion

// Ingest statuses reported to the uploader.
const (
	StatusAccepted  = "ACCEPTED"
	StatusDuplicate = "DUPLICATE"
)

// IngestResponse is returned to the caller after a match record is accepted.
type IngestResponse struct {
	GameID string `json:"game_id"`
	Status string `json:"status"`
	Events int    `json:"events"`
}
