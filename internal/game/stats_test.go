package game

import (
	"math"
	"testing"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// statsRecord seeds two away batters and one away pitcher with counters the
// derived stats can be checked against by hand.
func statsRecord() *GameRecord {
	rec := testRecord()

	s0 := rec.CharacterStats["Away Roster 0"]
	s0.Offense = OffensiveStats{
		AtBats: 4, Hits: 2, Singles: 1, Homeruns: 1,
		WalksBB: 1, WalksHit: 0, Strikeouts: 1, RBI: 2,
	}
	s0.Defense = DefensiveStats{
		RunsAllowed: 2, OutsPitched: 9, Strikeouts: 3, BattersFaced: 14,
	}
	rec.CharacterStats["Away Roster 0"] = s0

	s1 := rec.CharacterStats["Away Roster 1"]
	s1.Offense = OffensiveStats{
		AtBats: 3, Hits: 1, Doubles: 1, WalksHit: 1,
	}
	rec.CharacterStats["Away Roster 1"] = s1

	return rec
}

func TestCounterSums(t *testing.T) {
	rec := statsRecord()

	ab, err := rec.AtBats(TeamAway, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ab != 4 {
		t.Errorf("AtBats(slot 0) = %d, want 4", ab)
	}

	ab, err = rec.AtBats(TeamAway, AllSlots)
	if err != nil {
		t.Fatal(err)
	}
	if ab != 7 {
		t.Errorf("AtBats(all slots) = %d, want 7", ab)
	}

	walks, err := rec.Walks(TeamAway, AllSlots)
	if err != nil {
		t.Fatal(err)
	}
	if walks != 2 {
		t.Errorf("Walks(all slots) = %d, want 1 BB + 1 HBP", walks)
	}

	faced, err := rec.BattersFaced(TeamAway, 0)
	if err != nil {
		t.Fatal(err)
	}
	if faced != 14 {
		t.Errorf("BattersFaced(slot 0) = %d, want 14", faced)
	}

	if _, err := rec.AtBats(5, 0); err == nil {
		t.Error("AtBats accepted an invalid team")
	}
}

func TestInningsPitchedAndERA(t *testing.T) {
	rec := statsRecord()

	ip, err := rec.InningsPitched(TeamAway, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !almost(ip, 3) {
		t.Errorf("InningsPitched = %v, want 3", ip)
	}

	era, err := rec.ERA(TeamAway, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !almost(era, 6) { // 9 * 2 runs / 3 innings
		t.Errorf("ERA = %v, want 6", era)
	}

	// a character who never pitched reads as zero, not a division error
	era, err = rec.ERA(TeamAway, 1)
	if err != nil {
		t.Fatal(err)
	}
	if era != 0 {
		t.Errorf("ERA with no outs pitched = %v, want 0", era)
	}
}

func TestDerivedBattingStats(t *testing.T) {
	rec := statsRecord()

	avg, err := rec.BattingAvg(TeamAway, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !almost(avg, 0.5) {
		t.Errorf("BattingAvg = %v, want .500", avg)
	}

	obp, err := rec.OBP(TeamAway, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !almost(obp, 0.75) { // (2 hits + 1 walk) / 4
		t.Errorf("OBP = %v, want .750", obp)
	}

	slg, err := rec.SLG(TeamAway, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !almost(slg, 5.0/3) { // (1 + 4 bases) / (4 AB - 1 walk)
		t.Errorf("SLG = %v, want %v", slg, 5.0/3)
	}

	ops, err := rec.OPS(TeamAway, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !almost(ops, 0.75+5.0/3) {
		t.Errorf("OPS = %v, want OBP+SLG", ops)
	}
}

func TestDerivedStatsZeroDenominators(t *testing.T) {
	rec := testRecord() // all counters zero

	for name, fn := range map[string]func(int, int) (float64, error){
		"BattingAvg": rec.BattingAvg,
		"OBP":        rec.OBP,
		"SLG":        rec.SLG,
		"OPS":        rec.OPS,
		"ERA":        rec.ERA,
	} {
		got, err := fn(TeamAway, AllSlots)
		if err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if got != 0 {
			t.Errorf("%s with empty counters = %v, want 0", name, got)
		}
	}
}

// TestSLGAllWalks covers at-bats entirely consumed by walks: the official
// at-bat count hits zero and the stat must not divide by it.
func TestSLGAllWalks(t *testing.T) {
	rec := testRecord()
	s := rec.CharacterStats["Away Roster 0"]
	s.Offense = OffensiveStats{AtBats: 2, WalksBB: 2}
	rec.CharacterStats["Away Roster 0"] = s

	slg, err := rec.SLG(TeamAway, 0)
	if err != nil {
		t.Fatal(err)
	}
	if slg != 0 {
		t.Errorf("SLG with zero official at-bats = %v, want 0", slg)
	}
}

func TestBuildSummary(t *testing.T) {
	rec := statsRecord()
	rec.Events = []Event{minimalEvent(0), minimalEvent(1)}

	sum, err := BuildSummary(rec)
	if err != nil {
		t.Fatal(err)
	}
	if sum.GameID != rec.GameID {
		t.Errorf("GameID = %q", sum.GameID)
	}
	if sum.WinningTeam != TeamAway {
		t.Errorf("WinningTeam = %d, want away", sum.WinningTeam)
	}
	if sum.Events != 2 {
		t.Errorf("Events = %d, want 2", sum.Events)
	}
	if sum.Away.Player != "PeacockLover" || sum.Home.Player != "GenericHomeUser" {
		t.Errorf("players = %q / %q", sum.Away.Player, sum.Home.Player)
	}
	if len(sum.Away.Roster) != RosterSize {
		t.Errorf("away roster has %d names", len(sum.Away.Roster))
	}
	if sum.Away.Hits != 3 || sum.Away.AtBats != 7 {
		t.Errorf("away line = %d hits / %d at-bats, want 3/7", sum.Away.Hits, sum.Away.AtBats)
	}
	if sum.Home.Hits != 0 {
		t.Errorf("home hits = %d, want 0", sum.Home.Hits)
	}
	if !almost(sum.Away.BattingAvg, 3.0/7) {
		t.Errorf("away avg = %v", sum.Away.BattingAvg)
	}
}
