package search

import (
	"errors"
	"testing"

	"github.com/riolytics/matchsearch/internal/game"
	apperrors "github.com/riolytics/matchsearch/pkg/errors"
)

// sampleEvents builds a six-event half-game exercising every axis: a full
// at-bat in the top of the 1st (take, strikeout, single, two-run homer) and
// two outs in the bottom of the 2nd.
func sampleEvents() []game.Event {
	return []game.Event{
		// 0: called ball, 0-0 count, nobody on
		makeEvent(0, eventSpec{
			balls: 0, strikes: 0, stamina: 10,
			pitch: &game.Pitch{
				PitcherCharID: "Bowser", PitchType: "Curve", ChargeType: "N/A",
				PositionStrikezone: 0.12, InStrikezone: 1, TypeOfSwing: "None",
			},
		}),
		// 1: strikeout on a 1-2 count
		makeEvent(1, eventSpec{
			balls: 1, strikes: 2, stamina: 9, outsDuring: 1, result: "Strikeout",
			pitch: &game.Pitch{
				PitcherCharID: "Bowser", PitchType: "Curve", ChargeType: "N/A",
				PositionStrikezone: 0.04, InStrikezone: 1, TypeOfSwing: "Slap",
			},
		}),
		// 2: single, fielded by the shortstop on a sliding bobble
		makeEvent(2, eventSpec{
			balls: 0, strikes: 1, outs: 1, stamina: 8, result: "Single",
			pitch: &game.Pitch{
				PitcherCharID: "Bowser", PitchType: "Charge", ChargeType: "N/A",
				PositionStrikezone: -0.18, InStrikezone: 1, TypeOfSwing: "Slap",
				Contact: &game.Contact{
					TypeOfContact: "Nice - Left", InputStick: "Left",
					Frame: game.FlexInt(3), BallContactPosX: 0.55,
					FirstFielder: &game.FirstFielder{
						Position: "SS", Character: "Koopa(G)",
						Action: "Sliding", Bobble: "Slip",
						ManualSelected: "No Selected Char",
					},
				},
			},
		}),
		// 3: two-run five-star homer off a star pitch, runner stealing from 1B
		makeEvent(3, eventSpec{
			balls: 3, strikes: 1, outs: 1, stamina: 7, chem: 2, rbi: 2,
			starChance: 1, result: "HR", runners: []int{1}, steal: "Ready",
			pitch: &game.Pitch{
				PitcherCharID: "Bowser", PitchType: "Charge", ChargeType: "Perfect",
				StarPitch: 1, PositionStrikezone: -0.33, InStrikezone: 0,
				TypeOfSwing: "Star",
				Contact: &game.Contact{
					TypeOfContact: "Perfect", InputStick: "Right",
					StarSwingFiveStar: 1,
					Frame:             game.FlexInt(7), BallContactPosX: -0.8,
				},
			},
		}),
		// 4: groundout, bottom of the 2nd, away now leading
		makeEvent(4, eventSpec{
			inning: 2, half: 1, awayScore: 2, balls: 2, strikes: 1,
			stamina: 6, outsDuring: 1, result: "Out",
			pitch: &game.Pitch{
				PitcherCharID: "Mario", PitchType: "ChangeUp", ChargeType: "Slider",
				PositionStrikezone: 0.0, InStrikezone: 1, TypeOfSwing: "None",
			},
		}),
		// 5: fly ball caught at the wall, fielder burned by a fireball
		makeEvent(5, eventSpec{
			inning: 2, half: 1, awayScore: 2, strikes: 2, outs: 1,
			stamina: 5, outsDuring: 1, result: "Caught", runners: []int{2},
			pitch: &game.Pitch{
				PitcherCharID: "Mario", PitchType: "Curve", ChargeType: "N/A",
				PositionStrikezone: 0.07, InStrikezone: 0, TypeOfSwing: "Charge",
				Contact: &game.Contact{
					TypeOfContact: "Sour - Right", InputStick: "",
					Frame: game.FlexInt(2), BallContactPosX: 0.2,
					FirstFielder: &game.FirstFielder{
						Position: "CF", Character: "DK",
						Action: "Walljump", Bobble: "Fireball",
						ManualSelected: "Boo",
					},
				},
			},
		}),
	}
}

func TestResultQueries(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	wantSet(t, eng.NoneResultEvents(), 0)
	wantSet(t, eng.StrikeoutResultEvents(), 1)
	wantSet(t, eng.OutResultEvents(), 4)
	wantSet(t, eng.CaughtResultEvents(), 5)

	got, err := eng.ResultEvents("Single")
	if err != nil {
		t.Fatalf("ResultEvents(Single): %v", err)
	}
	wantSet(t, got, 2)

	if _, err := eng.ResultEvents("Tater"); !IsValidationError(err) {
		t.Fatalf("ResultEvents(Tater) error = %v, want validation error", err)
	}
}

func TestHitAndOutUnions(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	wantSet(t, eng.HitResultEvents(1), 2)
	wantSet(t, eng.HitResultEvents(4), 3)
	wantSet(t, eng.HitResultEvents(0), 2, 3)
	wantSet(t, eng.AllOutResultEvents(), 1, 4, 5)
	wantSet(t, eng.WalkResultEvents(true, true))
}

// TestResultBucketsPartition checks that every event lands in exactly one
// outcome bucket: the buckets are pairwise disjoint and cover the match.
func TestResultBucketsPartition(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	covered := make(Set)
	for _, result := range []string{
		"None", "Strikeout", "Walk (BB)", "Walk (HBP)", "Out", "Caught",
		"Caught line-drive", "Single", "Double", "Triple", "HR",
		"Error - Input", "Error - Chem", "Bunt", "SacFly",
		"Ground ball double Play", "Foul catch",
	} {
		bucket, err := eng.ResultEvents(result)
		if err != nil {
			t.Fatalf("ResultEvents(%s): %v", result, err)
		}
		for id := range bucket {
			if covered.Contains(id) {
				t.Fatalf("event %d appears in more than one outcome bucket", id)
			}
			covered.Add(id)
		}
	}
	if covered.Len() != eng.NumEvents() {
		t.Fatalf("outcome buckets cover %d of %d events", covered.Len(), eng.NumEvents())
	}
}

func TestRunnerOnBaseEvents(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	tests := []struct {
		name  string
		bases []int
		want  []int
	}{
		{"required first", []int{1}, []int{3}},
		{"optional first", []int{-1}, []int{3}},
		{"bases empty", []int{0}, []int{0, 1, 2, 4}},
		{"first and second required", []int{1, 2}, nil},
		{"empty or maybe second", []int{0, -2}, []int{0, 1, 2, 4, 5}},
		{"second required", []int{2}, []int{5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eng.RunnerOnBaseEvents(tt.bases)
			if err != nil {
				t.Fatalf("RunnerOnBaseEvents(%v): %v", tt.bases, err)
			}
			wantSet(t, got, tt.want...)
		})
	}
}

func TestRunnerOnBaseEventsRejectsContradictions(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	for _, bases := range [][]int{{0, 1}, {4}, {-5}, {1, 2, 3, 0}} {
		_, err := eng.RunnerOnBaseEvents(bases)
		if !IsValidationError(err) {
			t.Errorf("RunnerOnBaseEvents(%v) error = %v, want validation error", bases, err)
		}
		if !errors.Is(err, apperrors.ErrInvalidQuery) {
			t.Errorf("RunnerOnBaseEvents(%v) error does not unwrap to ErrInvalidQuery", bases)
		}
	}
}

// TestRequiredImpliesOptional checks the containment between the two runner
// query modes: demanding a runner on a base can never match more events than
// merely allowing one.
func TestRequiredImpliesOptional(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	for base := 1; base <= 3; base++ {
		required, err := eng.RunnerOnBaseEvents([]int{base})
		if err != nil {
			t.Fatal(err)
		}
		optional, err := eng.RunnerOnBaseEvents([]int{-base})
		if err != nil {
			t.Fatal(err)
		}
		for id := range required {
			if !optional.Contains(id) {
				t.Errorf("base %d: event %d matches required but not optional", base, id)
			}
		}
	}
}

func TestSignedThresholdPolarity(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	// counting axes treat a negative value as an at-least threshold
	wantSet(t, eng.AwayScoreEventsSigned(-1), 4, 5)
	wantSet(t, eng.BallEventsSigned(-2), 3, 4)
	wantSet(t, eng.StrikeEventsSigned(-2), 1, 5)
	wantSet(t, eng.RBIEventsSigned(-1), 3)
	wantSet(t, eng.ChemOnBaseEventsSigned(-1), 3)
	wantSet(t, eng.NumOutsDuringPlayEventsSigned(-1), 1, 4, 5)
	wantSet(t, eng.ContactFrameEventsSigned(-5), 3)

	// stamina runs the other way: negative means at-most
	wantSet(t, eng.PitcherStaminaEventsSigned(-6), 4, 5)
	wantSet(t, eng.PitcherStaminaEventsSigned(6), 4)

	// positive values and lists stay exact
	wantSet(t, eng.AwayScoreEventsSigned(2), 4, 5)
	wantSet(t, eng.BallEventsSigned(0, 1), 0, 1, 2, 5)
}

func TestTaggedOrdinalQueries(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	wantSet(t, eng.InningEvents(Exact(2)), 4, 5)
	wantSet(t, eng.InningEvents(AtLeast(2)), 4, 5)
	wantSet(t, eng.OutsInInningEvents(Exact(1)), 2, 3, 5)
	wantSet(t, eng.StrikeEvents(AnyOf(0, 2)), 0, 1, 5)
	wantSet(t, eng.PitcherStaminaEvents(AtMost(7)), 3, 4, 5)

	// an exact value nobody seeded answers empty rather than erroring
	wantSet(t, eng.InningEvents(Exact(42)))
	wantSet(t, eng.RBIEventsSigned(4))
}

func TestHalfInningAndPlayers(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	top, err := eng.HalfInningEvents(0)
	if err != nil {
		t.Fatal(err)
	}
	wantSet(t, top, 0, 1, 2, 3)

	bottom, err := eng.HalfInningEvents(1)
	if err != nil {
		t.Fatal(err)
	}
	wantSet(t, bottom, 4, 5)

	if _, err := eng.HalfInningEvents(2); !IsValidationError(err) {
		t.Fatalf("HalfInningEvents(2) error = %v, want validation error", err)
	}

	wantSet(t, eng.PlayerBattingEvents("vicklessfalcon"), 0, 1, 2, 3)
	wantSet(t, eng.PlayerBattingEvents("MattGree"), 4, 5)
	wantSet(t, eng.PlayerPitchingEvents("MattGree"), 0, 1, 2, 3)
	wantSet(t, eng.PlayerPitchingEvents("nobody"))
}

func TestMarkerQueries(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	wantSet(t, eng.StealEvents(), 3)
	wantSet(t, eng.StarPitchEvents(), 3)
	wantSet(t, eng.FiveStarDingerEvents(), 3)
	wantSet(t, eng.BobbleEvents(), 2, 5)
	wantSet(t, eng.FireballBurnEvents(), 5)
	wantSet(t, eng.SlidingCatchEvents(), 2)
	wantSet(t, eng.WallJumpEvents(), 5)
	wantSet(t, eng.ManualCharacterSelectionEvents(), 5)
	wantSet(t, eng.FirstPitchOfABEvents(), 0)
	wantSet(t, eng.LastPitchOfABEvents(), 1, 2, 3, 4, 5)
	wantSet(t, eng.GameTiedEvents(), 0, 1, 2, 3)
	wantSet(t, eng.AwayTeamWinningEvents(), 4, 5)
	wantSet(t, eng.HomeTeamWinningEvents())
	wantSet(t, eng.LeadChangedEvents(), 3)
	wantSet(t, eng.StarChanceEvents(true), 3)
	wantSet(t, eng.StarChanceEvents(false), 0, 1, 2, 4, 5)
	wantSet(t, eng.InStrikezoneEvents(), 0, 1, 2, 4)
}

func TestWalkoffEvents(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())
	wantSet(t, eng.WalkoffEvents()) // final event drove in nothing

	events := sampleEvents()
	events = append(events, makeEvent(6, eventSpec{
		inning: 2, half: 1, awayScore: 2, homeScore: 3, rbi: 3, result: "HR",
	}))
	eng = newTestEngine(t, events)
	wantSet(t, eng.WalkoffEvents(), 6)
}

func TestPitchAndSwingTypeQueries(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	wantSet(t, eng.CurvePitchTypeEvents(), 0, 1, 5)
	wantSet(t, eng.ChargePitchTypeEvents(), 2, 3)
	wantSet(t, eng.ChangeUpPitchTypeEvents(), 4)
	wantSet(t, eng.SliderPitchTypeEvents(), 4)
	wantSet(t, eng.PerfectChargePitchTypeEvents(), 3)

	got, err := eng.PitchTypeEvents("curve", "slider")
	if err != nil {
		t.Fatal(err)
	}
	wantSet(t, got, 0, 1, 4, 5)

	if _, err := eng.PitchTypeEvents("knuckle"); !IsValidationError(err) {
		t.Fatalf("PitchTypeEvents(knuckle) error = %v, want validation error", err)
	}

	wantSet(t, eng.SlapSwingTypeEvents(), 1, 2)
	wantSet(t, eng.StarSwingTypeEvents(), 3)
	got, err = eng.SwingTypeEvents("slap", "star")
	if err != nil {
		t.Fatal(err)
	}
	wantSet(t, got, 1, 2, 3)
}

func TestContactTypeQueries(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	wantSet(t, eng.PerfectContactTypeEvents(), 3)

	nice, err := eng.NiceContactTypeEvents(SideBoth)
	if err != nil {
		t.Fatal(err)
	}
	wantSet(t, nice, 2)

	niceRight, err := eng.NiceContactTypeEvents(SideRight)
	if err != nil {
		t.Fatal(err)
	}
	wantSet(t, niceRight)

	sour, err := eng.SourContactTypeEvents(SideBoth)
	if err != nil {
		t.Fatal(err)
	}
	wantSet(t, sour, 5)

	if _, err := eng.NiceContactTypeEvents(Side("x")); !IsValidationError(err) {
		t.Fatalf("NiceContactTypeEvents(x) error = %v, want validation error", err)
	}

	all, err := eng.ContactTypeEvents("nice", "sour", "perfect")
	if err != nil {
		t.Fatal(err)
	}
	wantSet(t, all, 2, 3, 5)
}

func TestInputDirectionAndFielderPosition(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	got, err := eng.InputDirectionEvents("Left")
	if err != nil {
		t.Fatal(err)
	}
	wantSet(t, got, 2)

	if _, err := eng.InputDirectionEvents("Diagonal"); !IsValidationError(err) {
		t.Fatalf("InputDirectionEvents(Diagonal) error = %v, want validation error", err)
	}

	ss, err := eng.FirstFielderPositionEvents("ss")
	if err != nil {
		t.Fatal(err)
	}
	wantSet(t, ss, 2)

	cf, err := eng.FirstFielderPositionEvents("CF")
	if err != nil {
		t.Fatal(err)
	}
	wantSet(t, cf, 5)

	if _, err := eng.FirstFielderPositionEvents("XX"); !IsValidationError(err) {
		t.Fatalf("FirstFielderPositionEvents(XX) error = %v, want validation error", err)
	}
}

func TestParticipationQueries(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	wantSet(t, eng.CharacterAtBatEvents("Mario"), 0)
	wantSet(t, eng.CharacterAtBatEvents("Daisy"), 3)
	wantSet(t, eng.CharacterPitchingEvents("Bowser"), 0, 1, 2, 3)
	wantSet(t, eng.CharacterPitchingEvents("Mario"), 4, 5)
	wantSet(t, eng.CharacterFieldingEvents("Koopa(G)"), 2)
	wantSet(t, eng.CharacterFieldingEvents("DK"), 5)

	// rostered but never fielded, and entirely unknown, both answer empty
	wantSet(t, eng.CharacterAtBatEvents("Birdo"))
	wantSet(t, eng.CharacterAtBatEvents("Petey"))
}

func TestBandedPositionQueries(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	wantSet(t, eng.BallPositionStrikezoneEvents(0.15), 2, 3)
	wantSet(t, eng.BallPositionStrikezoneEvents(-0.3), 3)
	wantSet(t, eng.BallPositionStrikezoneEvents(0), 0, 1, 2, 3, 4, 5)
	wantSet(t, eng.BallContactPositionEvents(0.5), 2, 3)
	wantSet(t, eng.BallContactPositionEvents(0.1), 2, 3, 5)
}

// TestUnknownCategoricalValueTolerated checks that a value outside an axis
// domain drops the event from that one bucket without failing the build.
func TestUnknownCategoricalValueTolerated(t *testing.T) {
	events := sampleEvents()
	events[0].Pitch.PitchType = "Knuckle"
	eng := newTestEngine(t, events)

	wantSet(t, eng.CurvePitchTypeEvents(), 1, 5)
	// the event is still present on every other axis
	wantSet(t, eng.NoneResultEvents(), 0)
	wantSet(t, eng.InStrikezoneEvents(), 0, 1, 2, 4)
}

func TestBuildRejectsMalformedRecords(t *testing.T) {
	t.Run("no events", func(t *testing.T) {
		_, err := New(makeRecord(nil), testDomain(), nil, nil)
		var cerr *game.ConstructionError
		if !errors.As(err, &cerr) {
			t.Fatalf("error = %v, want ConstructionError", err)
		}
	})

	t.Run("missing mandatory field", func(t *testing.T) {
		events := sampleEvents()
		events[2].Balls = nil
		_, err := New(makeRecord(events), testDomain(), nil, nil)
		var cerr *game.ConstructionError
		if !errors.As(err, &cerr) {
			t.Fatalf("error = %v, want ConstructionError", err)
		}
		if cerr.Event != 2 || cerr.Field != "Balls" {
			t.Fatalf("ConstructionError = %+v, want event 2 field Balls", cerr)
		}
	})
}

// TestBuildDeterminism builds the same record twice and checks a sample of
// query answers agree.
func TestBuildDeterminism(t *testing.T) {
	a := newTestEngine(t, sampleEvents())
	b := newTestEngine(t, sampleEvents())

	pairs := []struct {
		name string
		x, y Set
	}{
		{"hits", a.HitResultEvents(0), b.HitResultEvents(0)},
		{"outs", a.AllOutResultEvents(), b.AllOutResultEvents()},
		{"steals", a.StealEvents(), b.StealEvents()},
		{"stamina", a.PitcherStaminaEventsSigned(-6), b.PitcherStaminaEventsSigned(-6)},
	}
	for _, p := range pairs {
		if !p.x.Equal(p.y) {
			t.Errorf("%s: %v != %v", p.name, p.x.Sorted(), p.y.Sorted())
		}
	}
}

func TestQueryResultsAreCopies(t *testing.T) {
	eng := newTestEngine(t, sampleEvents())

	first := eng.StrikeoutResultEvents()
	first.Add(99)
	second := eng.StrikeoutResultEvents()
	if second.Contains(99) {
		t.Fatal("mutating a query result leaked into the index")
	}
}
