// Package export flattens match records into pitch-level tabular data for
// downstream analysis.
package export

import (
	"strconv"
	"strings"

	"github.com/riolytics/matchsearch/internal/game"
)

// PitchRow is one pitch flattened into analysis columns.
type PitchRow struct {
	EventNumber                int
	PitchingPlayer             string
	BattingPlayer              string
	PitchingCharacter          string
	BattingCharacter           string
	PitchingCharacterNoVariant string
	BattingCharacterNoVariant  string
	Inning                     int
	HalfInning                 int
	PitchingScore              int
	BattingScore               int
	PitchingStars              int
	BattingStars               int
	Balls                      int
	Strikes                    int
	Outs                       int
	StarChance                 int
	Stamina                    int
	Chemistry                  int
	BattingOrder               int
	BatterHand                 int
	Runners                    int
	PitchType                  string
	PitchXPos                  float64
	PitchInZone                int
	SwingType                  string
	BatterPosX                 float64
	BatterPosZ                 float64
	RBIs                       int
	Result                     string
	GameID                     string
	GameMode                   int
	Stadium                    string
}

// Header is the CSV column order, fixed for schema stability.
var Header = []string{
	"eventNumber",
	"pitchingPlayer",
	"battingPlayer",
	"pitchingCharacter",
	"battingCharacter",
	"pitchingCharacterNoVariant",
	"battingCharacterNoVariant",
	"inning",
	"halfInning",
	"pitchingScore",
	"battingScore",
	"pitchingStars",
	"battingStars",
	"balls",
	"strikes",
	"outs",
	"starChance",
	"stamina",
	"chemistry",
	"battingOrder",
	"batterHand",
	"runners",
	"pitchType",
	"pitchXPos",
	"pitchInZone",
	"swingType",
	"batterPosX",
	"batterPosZ",
	"rBIs",
	"result",
	"gameID",
	"gameMode",
	"stadium",
}

// stripVariant drops a variant suffix: "Mario (Fire)" reads as "Mario ".
// The trailing space is kept to match the historical column values.
func stripVariant(name string) string {
	if idx := strings.IndexByte(name, '('); idx != -1 {
		return name[:idx]
	}
	return name
}

// PitchRows flattens every pitch event in rec into rows, in event order.
// Non-pitch events contribute nothing.
func PitchRows(rec *game.GameRecord) ([]PitchRow, error) {
	rows := make([]PitchRow, 0, rec.NumEvents())
	for id := 0; id < rec.NumEvents(); id++ {
		view, err := game.NewEventView(rec, id)
		if err != nil {
			return nil, err
		}
		pitch, ok := view.Pitch()
		if !ok {
			continue
		}

		battingTeam := view.BattingTeam()
		fieldingTeam := view.FieldingTeam()

		pitchingPlayer, err := rec.Player(fieldingTeam)
		if err != nil {
			return nil, err
		}
		battingPlayer, err := rec.Player(battingTeam)
		if err != nil {
			return nil, err
		}
		pitchingCharacter, err := view.Pitcher()
		if err != nil {
			return nil, err
		}
		battingCharacter, err := view.Batter()
		if err != nil {
			return nil, err
		}
		batterHand, err := rec.BattingHand(battingTeam, view.BatterRoster())
		if err != nil {
			return nil, err
		}
		pitchingScore := view.FieldingScore()
		battingScore := view.BattingScore()
		pitchingStars, err := view.TeamStars(fieldingTeam)
		if err != nil {
			return nil, err
		}
		battingStars, err := view.TeamStars(battingTeam)
		if err != nil {
			return nil, err
		}

		runners := 0
		for base := 1; base <= 3; base++ {
			if _, ok := view.RunnerOn(base); ok {
				runners++
			}
		}

		rows = append(rows, PitchRow{
			EventNumber:                view.ID(),
			PitchingPlayer:             pitchingPlayer,
			BattingPlayer:              battingPlayer,
			PitchingCharacter:          pitchingCharacter,
			BattingCharacter:           battingCharacter,
			PitchingCharacterNoVariant: stripVariant(pitchingCharacter),
			BattingCharacterNoVariant:  stripVariant(battingCharacter),
			Inning:                     view.Inning(),
			HalfInning:                 view.HalfInning(),
			PitchingScore:              pitchingScore,
			BattingScore:               battingScore,
			PitchingStars:              pitchingStars,
			BattingStars:               battingStars,
			Balls:                      view.Balls(),
			Strikes:                    view.Strikes(),
			Outs:                       view.Outs(),
			StarChance:                 view.StarChance(),
			Stamina:                    view.PitcherStamina(),
			Chemistry:                  view.ChemLinksOnBase(),
			BattingOrder:               view.BatterRoster(),
			BatterHand:                 batterHand,
			Runners:                    runners,
			PitchType:                  pitch.PitchType,
			PitchXPos:                  pitch.PositionStrikezone,
			PitchInZone:                pitch.InStrikezone,
			SwingType:                  pitch.TypeOfSwing,
			BatterPosX:                 pitch.BatContactPosX,
			BatterPosZ:                 pitch.BatContactPosZ,
			RBIs:                       view.RBI(),
			Result:                     view.ResultOfAB(),
			GameID:                     rec.GameID,
			GameMode:                   rec.GameMode(),
			Stadium:                    rec.Stadium(),
		})
	}
	return rows, nil
}

// fields renders the row in Header order.
func (r *PitchRow) fields() []string {
	return []string{
		strconv.Itoa(r.EventNumber),
		r.PitchingPlayer,
		r.BattingPlayer,
		r.PitchingCharacter,
		r.BattingCharacter,
		r.PitchingCharacterNoVariant,
		r.BattingCharacterNoVariant,
		strconv.Itoa(r.Inning),
		strconv.Itoa(r.HalfInning),
		strconv.Itoa(r.PitchingScore),
		strconv.Itoa(r.BattingScore),
		strconv.Itoa(r.PitchingStars),
		strconv.Itoa(r.BattingStars),
		strconv.Itoa(r.Balls),
		strconv.Itoa(r.Strikes),
		strconv.Itoa(r.Outs),
		strconv.Itoa(r.StarChance),
		strconv.Itoa(r.Stamina),
		strconv.Itoa(r.Chemistry),
		strconv.Itoa(r.BattingOrder),
		strconv.Itoa(r.BatterHand),
		strconv.Itoa(r.Runners),
		r.PitchType,
		strconv.FormatFloat(r.PitchXPos, 'g', -1, 64),
		strconv.Itoa(r.PitchInZone),
		r.SwingType,
		strconv.FormatFloat(r.BatterPosX, 'g', -1, 64),
		strconv.FormatFloat(r.BatterPosZ, 'g', -1, 64),
		strconv.Itoa(r.RBIs),
		r.Result,
		r.GameID,
		strconv.Itoa(r.GameMode),
		r.Stadium,
	}
}
