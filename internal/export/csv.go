package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/riolytics/matchsearch/internal/game"
)

// WriteCSV streams the pitch rows of every record to w, header first.
func WriteCSV(w io.Writer, records []*game.GameRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, rec := range records {
		rows, err := PitchRows(rec)
		if err != nil {
			return fmt.Errorf("match %s: %w", rec.GameID, err)
		}
		for i := range rows {
			if err := cw.Write(rows[i].fields()); err != nil {
				return fmt.Errorf("writing row for match %s: %w", rec.GameID, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the pitch data set to path, replacing any existing
// file.
func WriteCSVFile(path string, records []*game.GameRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
