package search

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/riolytics/matchsearch/internal/game"
	"github.com/riolytics/matchsearch/internal/lookup"
)

var awayRoster = []string{
	"Mario", "Luigi", "Peach", "Daisy", "Yoshi",
	"Birdo", "Wario", "Waluigi", "DK",
}

var homeRoster = []string{
	"Bowser", "Bowser Jr", "Diddy", "Dixie", "Goomba",
	"Paragoomba", "Koopa(G)", "Toad(R)", "Boo",
}

func intp(v int) *int       { return &v }
func strp(s string) *string { return &s }

// eventSpec is the knobs a test cares about; everything else gets a
// plausible default.
type eventSpec struct {
	inning     int
	half       int
	awayScore  int
	homeScore  int
	balls      int
	strikes    int
	outs       int
	stamina    int
	chem       int
	rbi        int
	outsDuring int
	starChance int
	result     string
	runners    []int // bases 1..3 with a runner
	steal      string
	pitch      *game.Pitch
}

func makeEvent(id int, spec eventSpec) game.Event {
	if spec.inning == 0 {
		spec.inning = 1
	}
	if spec.result == "" {
		spec.result = "None"
	}
	ev := game.Event{
		EventNum:        intp(id),
		Inning:          intp(spec.inning),
		HalfInning:      intp(spec.half),
		AwayScore:       intp(spec.awayScore),
		HomeScore:       intp(spec.homeScore),
		Balls:           intp(spec.balls),
		Strikes:         intp(spec.strikes),
		Outs:            intp(spec.outs),
		StarChance:      intp(spec.starChance),
		AwayStars:       intp(0),
		HomeStars:       intp(0),
		PitcherStamina:  intp(spec.stamina),
		ChemLinksOnBase: intp(spec.chem),
		PitcherRoster:   intp(0),
		BatterRoster:    intp(id % game.RosterSize),
		CatcherRoster:   intp(4),
		RBI:             intp(spec.rbi),
		OutsDuringPlay:  intp(spec.outsDuring),
		ResultOfAB:      strp(spec.result),
		Pitch:           spec.pitch,
	}
	for _, base := range spec.runners {
		r := &game.Runner{RosterLoc: base, CharID: "Mario", InitialBase: base, OutType: "None", Steal: "None"}
		if spec.steal != "" {
			r.Steal = spec.steal
		}
		switch base {
		case 1:
			ev.Runner1B = r
		case 2:
			ev.Runner2B = r
		case 3:
			ev.Runner3B = r
		}
	}
	return ev
}

func testDomain() *lookup.Domain {
	return lookup.DefaultDomain()
}

// makeRecord wraps events into a complete decoded record with full rosters
// and consistent final scores.
func makeRecord(events []game.Event) *game.GameRecord {
	awayFinal, homeFinal := 0, 0
	innings := 1
	for i := range events {
		if s := *events[i].AwayScore; s > awayFinal {
			awayFinal = s
		}
		if s := *events[i].HomeScore; s > homeFinal {
			homeFinal = s
		}
		if n := *events[i].Inning; n > innings {
			innings = n
		}
	}

	stats := make(map[string]game.CharacterStats, 18)
	for slot, name := range awayRoster {
		stats[fmt.Sprintf("Away Roster %d", slot)] = game.CharacterStats{CharID: name}
	}
	for slot, name := range homeRoster {
		stats[fmt.Sprintf("Home Roster %d", slot)] = game.CharacterStats{CharID: name}
	}

	return &game.GameRecord{
		GameID:          "1A2B3C",
		RawVersion:      "1.9.7",
		StadiumID:       "Mario Stadium",
		AwayPlayer:      "VicklessFalcon",
		HomePlayer:      "MattGree",
		AwayScore:       awayFinal,
		HomeScore:       homeFinal,
		InningsSelected: 9,
		InningsPlayed:   innings,
		CharacterStats:  stats,
		Events:          events,
	}
}

func newTestEngine(t *testing.T, events []game.Event) *Engine {
	t.Helper()
	eng, err := New(makeRecord(events), testDomain(), slog.Default(), nil)
	if err != nil {
		t.Fatalf("building engine: %v", err)
	}
	return eng
}

func wantSet(t *testing.T, got Set, want ...int) {
	t.Helper()
	if !got.Equal(NewSet(want...)) {
		t.Fatalf("got %v, want %v", got.Sorted(), want)
	}
}
