package game

import "fmt"

// mandatory lists the scalar fields every event must carry for the indices
// to be buildable.
var mandatory = []string{
	"Inning", "Half Inning", "Away Score", "Home Score",
	"Balls", "Strikes", "Outs", "Star Chance", "Pitcher Stamina",
	"Chemistry Links on Base", "Pitcher Roster Loc", "Batter Roster Loc",
	"RBI", "Num Outs During Play", "Result of AB",
}

// EventView wraps one event with validated access. NewEventView checks the
// mandatory scalars once; accessors afterwards return plain values without
// further error paths.
type EventView struct {
	id  int
	rec *GameRecord
	ev  *Event
}

// NewEventView validates the event at position id and returns a view over
// it. A nil pointer in a mandatory field yields a ConstructionError naming
// the field.
func NewEventView(rec *GameRecord, id int) (*EventView, error) {
	if id < 0 || id >= len(rec.Events) {
		return nil, fmt.Errorf("event id %d out of range [0,%d)", id, len(rec.Events))
	}
	// EventNum is not required here; the position id is authoritative and
	// Validate already cross-checked any counter the file carries.
	ev := &rec.Events[id]
	ptrs := []*int{
		ev.Inning, ev.HalfInning, ev.AwayScore, ev.HomeScore,
		ev.Balls, ev.Strikes, ev.Outs, ev.StarChance, ev.PitcherStamina,
		ev.ChemLinksOnBase, ev.PitcherRoster, ev.BatterRoster,
		ev.RBI, ev.OutsDuringPlay,
	}
	for i, p := range ptrs {
		if p == nil {
			return nil, &ConstructionError{Event: id, Field: mandatory[i]}
		}
	}
	if ev.ResultOfAB == nil {
		return nil, &ConstructionError{Event: id, Field: "Result of AB"}
	}
	return &EventView{id: id, rec: rec, ev: ev}, nil
}

// ID returns the event's position in the match sequence.
func (v *EventView) ID() int { return v.id }

func (v *EventView) Inning() int          { return *v.ev.Inning }
func (v *EventView) HalfInning() int      { return *v.ev.HalfInning }
func (v *EventView) Balls() int           { return *v.ev.Balls }
func (v *EventView) Strikes() int         { return *v.ev.Strikes }
func (v *EventView) Outs() int            { return *v.ev.Outs }
func (v *EventView) StarChance() int      { return *v.ev.StarChance }
func (v *EventView) PitcherStamina() int  { return *v.ev.PitcherStamina }
func (v *EventView) ChemLinksOnBase() int { return *v.ev.ChemLinksOnBase }
func (v *EventView) PitcherRoster() int   { return *v.ev.PitcherRoster }
func (v *EventView) BatterRoster() int    { return *v.ev.BatterRoster }
func (v *EventView) RBI() int             { return *v.ev.RBI }
func (v *EventView) OutsDuringPlay() int  { return *v.ev.OutsDuringPlay }
func (v *EventView) ResultOfAB() string   { return *v.ev.ResultOfAB }

// CatcherRoster returns the catcher slot, or -1 when the file omits it.
func (v *EventView) CatcherRoster() int {
	if v.ev.CatcherRoster == nil {
		return -1
	}
	return *v.ev.CatcherRoster
}

// TeamStars returns the given side's star count on this event, 0 when the
// file omits star tracking.
func (v *EventView) TeamStars(team int) (int, error) {
	if err := checkTeam(team); err != nil {
		return 0, err
	}
	p := v.ev.AwayStars
	if team == TeamHome {
		p = v.ev.HomeStars
	}
	if p == nil {
		return 0, nil
	}
	return *p, nil
}

// Score returns the score of the given side as recorded on this event.
// Unlike match-level scores the per-event blocks are not version-flipped:
// the decoder fixed the ordering before per-event scores existed.
func (v *EventView) Score(team int) (int, error) {
	if err := checkTeam(team); err != nil {
		return 0, err
	}
	if team == TeamAway {
		return *v.ev.AwayScore, nil
	}
	return *v.ev.HomeScore, nil
}

// BattingTeam returns the side at bat: away in the top half, home in the
// bottom half.
func (v *EventView) BattingTeam() int {
	if v.HalfInning() == 0 {
		return TeamAway
	}
	return TeamHome
}

// FieldingTeam returns the side in the field.
func (v *EventView) FieldingTeam() int {
	return 1 - v.BattingTeam()
}

// BattingScore returns the batting side's score on this event.
func (v *EventView) BattingScore() int {
	s, _ := v.Score(v.BattingTeam())
	return s
}

// FieldingScore returns the fielding side's score on this event.
func (v *EventView) FieldingScore() int {
	s, _ := v.Score(v.FieldingTeam())
	return s
}

// Batter returns the batting character's name.
func (v *EventView) Batter() (string, error) {
	return v.rec.CharacterNameAt(v.BattingTeam(), v.BatterRoster())
}

// Pitcher returns the pitching character's name.
func (v *EventView) Pitcher() (string, error) {
	return v.rec.CharacterNameAt(v.FieldingTeam(), v.PitcherRoster())
}

// RunnerOn returns the runner sub-record for a base: 0 for the batter,
// 1 through 3 for the bases. ok is false when the base is empty.
func (v *EventView) RunnerOn(base int) (*Runner, bool) {
	var r *Runner
	switch base {
	case 0:
		r = v.ev.RunnerBatter
	case 1:
		r = v.ev.Runner1B
	case 2:
		r = v.ev.Runner2B
	case 3:
		r = v.ev.Runner3B
	}
	return r, r != nil
}

// HasSteal reports whether any runner on base attempted a steal.
func (v *EventView) HasSteal() bool {
	for base := 1; base <= 3; base++ {
		if r, ok := v.RunnerOn(base); ok && r.Stealing() {
			return true
		}
	}
	return false
}

// Pitch returns the pitch sub-record, ok false when the event carries none.
func (v *EventView) Pitch() (*Pitch, bool) {
	return v.ev.Pitch, v.ev.Pitch != nil
}

// Contact returns the contact sub-record, ok false when the batter made no
// contact or there was no pitch.
func (v *EventView) Contact() (*Contact, bool) {
	if v.ev.Pitch == nil || v.ev.Pitch.Contact == nil {
		return nil, false
	}
	return v.ev.Pitch.Contact, true
}

// FirstFielder returns the first-fielder sub-record, ok false when the ball
// never reached a fielder.
func (v *EventView) FirstFielder() (*FirstFielder, bool) {
	c, ok := v.Contact()
	if !ok || c.FirstFielder == nil {
		return nil, false
	}
	return c.FirstFielder, true
}

// FirstPitchOfAB reports whether this event opens an at-bat: a pitch thrown
// on a 0-0 count.
func (v *EventView) FirstPitchOfAB() bool {
	if _, ok := v.Pitch(); !ok {
		return false
	}
	return v.Balls() == 0 && v.Strikes() == 0
}

// LastPitchOfAB reports whether this event ends an at-bat.
func (v *EventView) LastPitchOfAB() bool {
	if _, ok := v.Pitch(); !ok {
		return false
	}
	return v.ResultOfAB() != "None"
}

// LeadChanged reports whether the play flipped which side leads: the batting
// side was not ahead going in and the runs batted in put it ahead.
func (v *EventView) LeadChanged() bool {
	batting, fielding := v.BattingScore(), v.FieldingScore()
	return batting+v.RBI() > fielding && batting <= fielding
}
