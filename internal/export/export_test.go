package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/riolytics/matchsearch/internal/game"
)

func ip(v int) *int       { return &v }
func sp(s string) *string { return &s }

func exportEvent(id int, pitch *game.Pitch) game.Event {
	return game.Event{
		EventNum:        ip(id),
		Inning:          ip(1),
		HalfInning:      ip(0),
		AwayScore:       ip(1),
		HomeScore:       ip(0),
		Balls:           ip(2),
		Strikes:         ip(1),
		Outs:            ip(0),
		StarChance:      ip(0),
		AwayStars:       ip(3),
		HomeStars:       ip(1),
		PitcherStamina:  ip(8),
		ChemLinksOnBase: ip(0),
		PitcherRoster:   ip(0),
		BatterRoster:    ip(2),
		RBI:             ip(0),
		OutsDuringPlay:  ip(0),
		ResultOfAB:      sp("Single"),
		Pitch:           pitch,
	}
}

func exportRecord() *game.GameRecord {
	stats := make(map[string]game.CharacterStats)
	for slot := 0; slot < game.RosterSize; slot++ {
		stats[fmt.Sprintf("Away Roster %d", slot)] = game.CharacterStats{
			CharID: "Shy Guy(R)", BattingHand: 1,
		}
		stats[fmt.Sprintf("Home Roster %d", slot)] = game.CharacterStats{
			CharID: "Magikoopa(B)",
		}
	}
	return &game.GameRecord{
		GameID:         "CAFE01",
		TagSetID:       game.FlexInt(3),
		RawVersion:     "1.9.7",
		StadiumID:      "Peach's Garden",
		AwayPlayer:     "AwaySide",
		HomePlayer:     "HomeSide",
		AwayScore:      1,
		CharacterStats: stats,
		Events: []game.Event{
			exportEvent(0, &game.Pitch{
				PitchType: "Curve", PositionStrikezone: 0.25, InStrikezone: 1,
				TypeOfSwing: "Slap", BatContactPosX: -0.4, BatContactPosZ: 1.5,
			}),
			exportEvent(1, nil), // non-pitch event, must not produce a row
			exportEvent(2, &game.Pitch{PitchType: "Charge", TypeOfSwing: "None"}),
		},
	}
}

func TestPitchRows(t *testing.T) {
	rec := exportRecord()
	rec.Events[2].Runner1B = &game.Runner{InitialBase: 1, Steal: "None"}
	rec.Events[2].Runner3B = &game.Runner{InitialBase: 3, Steal: "None"}

	rows, err := PitchRows(rec)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (pitch events only)", len(rows))
	}

	r := rows[0]
	if r.EventNumber != 0 {
		t.Errorf("EventNumber = %d", r.EventNumber)
	}
	if r.PitchingPlayer != "HomeSide" || r.BattingPlayer != "AwaySide" {
		t.Errorf("players = %q pitching, %q batting", r.PitchingPlayer, r.BattingPlayer)
	}
	if r.BattingCharacter != "Shy Guy(R)" || r.BattingCharacterNoVariant != "Shy Guy" {
		t.Errorf("batting character = %q / %q", r.BattingCharacter, r.BattingCharacterNoVariant)
	}
	if r.PitchingCharacter != "Magikoopa(B)" {
		t.Errorf("pitching character = %q", r.PitchingCharacter)
	}
	if r.PitchingScore != 0 || r.BattingScore != 1 {
		t.Errorf("scores = %d pitching, %d batting", r.PitchingScore, r.BattingScore)
	}
	if r.PitchingStars != 1 || r.BattingStars != 3 {
		t.Errorf("stars = %d pitching, %d batting", r.PitchingStars, r.BattingStars)
	}
	if r.BatterHand != 1 {
		t.Errorf("BatterHand = %d", r.BatterHand)
	}
	if r.BattingOrder != 2 {
		t.Errorf("BattingOrder = %d", r.BattingOrder)
	}
	if r.Runners != 0 {
		t.Errorf("Runners = %d, want 0", r.Runners)
	}
	if r.PitchType != "Curve" || r.SwingType != "Slap" {
		t.Errorf("pitch = %q / %q", r.PitchType, r.SwingType)
	}
	if r.Stadium != "Peach Garden" {
		t.Errorf("Stadium = %q, want legacy alias normalised", r.Stadium)
	}
	if r.GameMode != 3 {
		t.Errorf("GameMode = %d", r.GameMode)
	}

	if rows[1].EventNumber != 2 {
		t.Errorf("second row from event %d, want 2", rows[1].EventNumber)
	}
	if rows[1].Runners != 2 {
		t.Errorf("Runners = %d, want 2", rows[1].Runners)
	}
}

func TestStripVariant(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Shy Guy(R)", "Shy Guy"},
		{"Mario (Fire)", "Mario "},
		{"Bowser", "Bowser"},
	}
	for _, tt := range tests {
		if got := stripVariant(tt.in); got != tt.want {
			t.Errorf("stripVariant(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []*game.GameRecord{exportRecord()}); err != nil {
		t.Fatal(err)
	}

	lines, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 3 { // header plus two pitch rows
		t.Fatalf("got %d csv lines, want 3", len(lines))
	}
	if !reflect.DeepEqual(lines[0], Header) {
		t.Errorf("header = %v", lines[0])
	}
	if len(lines[1]) != len(Header) {
		t.Errorf("row has %d fields, header has %d", len(lines[1]), len(Header))
	}
	if lines[1][0] != "0" || lines[2][0] != "2" {
		t.Errorf("row event numbers = %q, %q", lines[1][0], lines[2][0])
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()

	rec := exportRecord()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `{"GameID": %q, "Version": "1.9.7", "Events": [{"Event Num": 0}]}`, rec.GameID)

	writeFile := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	writeFile("match.decoded.json", buf.String())
	writeFile("match.raw.bin", "not json at all")
	writeFile("broken.decoded.json", "{")

	records, err := LoadDirectory(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("loaded %d records, want 1 (raw skipped, broken logged)", len(records))
	}
	if records[0].GameID != rec.GameID {
		t.Errorf("GameID = %q", records[0].GameID)
	}

	if _, err := LoadDirectory(filepath.Join(dir, "missing"), nil); err == nil {
		t.Error("LoadDirectory accepted a missing directory")
	}
}
