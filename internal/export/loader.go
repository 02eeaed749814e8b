package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/riolytics/matchsearch/internal/game"
)

// LoadDirectory reads every decoded stat file in dir. Only files whose name
// contains "decoded" are considered; the decoder leaves raw save files next
// to its output. Files that fail to decode are logged and skipped so one
// bad file does not sink a whole directory.
func LoadDirectory(dir string, log *slog.Logger) ([]*game.GameRecord, error) {
	if log == nil {
		log = slog.Default()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading match directory: %w", err)
	}
	var records []*game.GameRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.Contains(entry.Name(), "decoded") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		rec, err := game.Load(path)
		if err != nil {
			log.Warn("skipping unreadable match file", "path", path, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
