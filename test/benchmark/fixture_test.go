// Package benchmark holds micro-benchmarks for index construction and event
// queries over synthetic match records.
//
// Run with:
//
//	go test -bench=. -benchmem ./test/benchmark/...
package benchmark

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/riolytics/matchsearch/internal/game"
	"github.com/riolytics/matchsearch/internal/lookup"
	"github.com/riolytics/matchsearch/internal/search"
)

func ip(v int) *int       { return &v }
func sp(s string) *string { return &s }

var benchResults = []string{
	"None", "None", "None", "Strikeout", "Single",
	"None", "Out", "None", "HR", "Caught",
}

var benchPitchTypes = []string{"Curve", "Charge", "ChangeUp"}
var benchSwingTypes = []string{"Slap", "Charge", "None", "Star"}

// syntheticRecord builds a plausible decoded match with n events cycling
// through the common value ranges so every axis ends up populated.
func syntheticRecord(gameID string, n int) *game.GameRecord {
	events := make([]game.Event, 0, n)
	awayScore, homeScore := 0, 0

	for i := 0; i < n; i++ {
		inning := min(i/30+1, 9)
		result := benchResults[i%len(benchResults)]
		if result == "HR" {
			awayScore++
		}
		if i%37 == 0 && i > 0 {
			homeScore++
		}

		ev := game.Event{
			EventNum:        ip(i),
			Inning:          ip(inning),
			HalfInning:      ip(i % 2),
			AwayScore:       ip(awayScore),
			HomeScore:       ip(homeScore),
			Balls:           ip(i % 4),
			Strikes:         ip(i % 3),
			Outs:            ip(i % 3),
			StarChance:      ip(i % 5 / 4),
			AwayStars:       ip(i % 6),
			HomeStars:       ip(i % 4),
			PitcherStamina:  ip(10 - i%11),
			ChemLinksOnBase: ip(i % 4),
			PitcherRoster:   ip(i % game.RosterSize),
			BatterRoster:    ip((i + 3) % game.RosterSize),
			CatcherRoster:   ip(4),
			RBI:             ip(i % 5 / 4),
			OutsDuringPlay:  ip(i % 4 / 3),
			ResultOfAB:      sp(result),
		}
		if i%3 > 0 {
			ev.Runner1B = &game.Runner{
				RosterLoc: i % game.RosterSize, CharID: "Mario",
				InitialBase: 1, OutType: "None", Steal: "None",
			}
		}
		if i%5 == 0 {
			ev.Runner2B = &game.Runner{
				RosterLoc: (i + 1) % game.RosterSize, CharID: "Luigi",
				InitialBase: 2, OutType: "None", Steal: "Ready",
			}
		}
		chargeType := "N/A"
		if i%7 == 0 {
			chargeType = "Slider"
		}
		ev.Pitch = &game.Pitch{
			PitcherCharID:      "Bowser",
			PitchType:          benchPitchTypes[i%len(benchPitchTypes)],
			ChargeType:         chargeType,
			TypeOfSwing:        benchSwingTypes[i%len(benchSwingTypes)],
			PositionStrikezone: float64(i%41-20) / 40,
			InStrikezone:       i % 2,
		}
		if result == "Single" || result == "HR" || result == "Out" || result == "Caught" {
			ev.Pitch.Contact = &game.Contact{
				TypeOfContact:   "Nice - Left",
				InputStick:      "Left",
				Frame:           game.FlexInt(i % 11),
				BallContactPosX: float64(i%21-10) / 10,
			}
		}
		events = append(events, ev)
	}

	stats := make(map[string]game.CharacterStats, 2*game.RosterSize)
	for slot := 0; slot < game.RosterSize; slot++ {
		stats[fmt.Sprintf("Away Roster %d", slot)] = game.CharacterStats{
			CharID: fmt.Sprintf("%d", slot), Team: game.FlexInt(game.TeamAway),
		}
		stats[fmt.Sprintf("Home Roster %d", slot)] = game.CharacterStats{
			CharID: fmt.Sprintf("%d", game.RosterSize+slot), Team: game.FlexInt(game.TeamHome),
		}
	}

	return &game.GameRecord{
		GameID:          gameID,
		RawVersion:      "1.9.7",
		StadiumID:       "Mario Stadium",
		AwayPlayer:      "VicklessFalcon",
		HomePlayer:      "MattGree",
		AwayScore:       awayScore,
		HomeScore:       homeScore,
		InningsSelected: 9,
		InningsPlayed:   min(n/30+1, 9),
		CharacterStats:  stats,
		Events:          events,
	}
}

func buildEngine(b *testing.B, n int) *search.Engine {
	b.Helper()
	eng, err := search.New(syntheticRecord("BENCH00", n), lookup.DefaultDomain(), slog.Default(), nil)
	if err != nil {
		b.Fatalf("building engine: %v", err)
	}
	return eng
}
