package search

import (
	"strings"
)

// Side selects which handedness variants a contact-quality query covers.
type Side string

const (
	SideBoth  Side = "b"
	SideLeft  Side = "l"
	SideRight Side = "r"
)

// result-of-at-bat bucket names, as recorded by the decoder
const (
	resultNone            = "None"
	resultStrikeout       = "Strikeout"
	resultWalkBB          = "Walk (BB)"
	resultWalkHBP         = "Walk (HBP)"
	resultOut             = "Out"
	resultCaught          = "Caught"
	resultCaughtLineDrive = "Caught line-drive"
	resultSingle          = "Single"
	resultDouble          = "Double"
	resultTriple          = "Triple"
	resultHR              = "HR"
	resultErrorInput      = "Error - Input"
	resultErrorChem       = "Error - Chem"
	resultBunt            = "Bunt"
	resultSacFly          = "SacFly"
	resultGroundDP        = "Ground ball double Play"
	resultFoulCatch       = "Foul catch"
)

// known returns the bucket for a value the engine itself names. Seeded
// buckets always exist, so no validation path is needed.
func (a *strAxis) known(value string) Set {
	return a.buckets[value].Clone()
}

// ResultEvents returns the events whose at-bat outcome equals result.
func (e *Engine) ResultEvents(result string) (Set, error) {
	return e.ix.resultOfAB.bucket(result)
}

func (e *Engine) NoneResultEvents() Set      { return e.ix.resultOfAB.known(resultNone) }
func (e *Engine) StrikeoutResultEvents() Set { return e.ix.resultOfAB.known(resultStrikeout) }
func (e *Engine) OutResultEvents() Set       { return e.ix.resultOfAB.known(resultOut) }
func (e *Engine) CaughtResultEvents() Set    { return e.ix.resultOfAB.known(resultCaught) }
func (e *Engine) CaughtLineDriveResultEvents() Set {
	return e.ix.resultOfAB.known(resultCaughtLineDrive)
}
func (e *Engine) InputErrorResultEvents() Set { return e.ix.resultOfAB.known(resultErrorInput) }
func (e *Engine) ChemErrorResultEvents() Set  { return e.ix.resultOfAB.known(resultErrorChem) }
func (e *Engine) BuntResultEvents() Set       { return e.ix.resultOfAB.known(resultBunt) }
func (e *Engine) SacFlyResultEvents() Set     { return e.ix.resultOfAB.known(resultSacFly) }
func (e *Engine) GroundBallDoublePlayResultEvents() Set {
	return e.ix.resultOfAB.known(resultGroundDP)
}
func (e *Engine) FoulCatchResultEvents() Set { return e.ix.resultOfAB.known(resultFoulCatch) }

// WalkResultEvents returns walk events, optionally restricted to one walk
// kind. Asking for neither yields an empty set.
func (e *Engine) WalkResultEvents(includeHBP, includeBB bool) Set {
	switch {
	case includeHBP && includeBB:
		return unionAll(e.ix.resultOfAB.buckets[resultWalkHBP], e.ix.resultOfAB.buckets[resultWalkBB])
	case includeHBP:
		return e.ix.resultOfAB.known(resultWalkHBP)
	case includeBB:
		return e.ix.resultOfAB.known(resultWalkBB)
	default:
		return make(Set)
	}
}

// HitResultEvents returns hit events: bases 1-4 select singles through home
// runs, anything else selects all hits.
func (e *Engine) HitResultEvents(bases int) Set {
	switch bases {
	case 1:
		return e.ix.resultOfAB.known(resultSingle)
	case 2:
		return e.ix.resultOfAB.known(resultDouble)
	case 3:
		return e.ix.resultOfAB.known(resultTriple)
	case 4:
		return e.ix.resultOfAB.known(resultHR)
	default:
		return unionAll(
			e.ix.resultOfAB.buckets[resultSingle],
			e.ix.resultOfAB.buckets[resultDouble],
			e.ix.resultOfAB.buckets[resultTriple],
			e.ix.resultOfAB.buckets[resultHR],
		)
	}
}

// AllOutResultEvents returns every event whose outcome is any kind of out.
func (e *Engine) AllOutResultEvents() Set {
	return unionAll(
		e.ix.resultOfAB.buckets[resultStrikeout],
		e.ix.resultOfAB.buckets[resultOut],
		e.ix.resultOfAB.buckets[resultCaught],
		e.ix.resultOfAB.buckets[resultCaughtLineDrive],
		e.ix.resultOfAB.buckets[resultSacFly],
		e.ix.resultOfAB.buckets[resultGroundDP],
		e.ix.resultOfAB.buckets[resultFoulCatch],
	)
}

// Marker-set queries.

func (e *Engine) StealEvents() Set                    { return e.ix.steal.Clone() }
func (e *Engine) StarPitchEvents() Set                { return e.ix.starPitch.Clone() }
func (e *Engine) BobbleEvents() Set                   { return e.ix.bobble.Clone() }
func (e *Engine) FireballBurnEvents() Set             { return e.ix.fireballBurn.Clone() }
func (e *Engine) FiveStarDingerEvents() Set           { return e.ix.fiveStarDinger.Clone() }
func (e *Engine) SlidingCatchEvents() Set             { return e.ix.slidingCatch.Clone() }
func (e *Engine) WallJumpEvents() Set                 { return e.ix.wallJump.Clone() }
func (e *Engine) ManualCharacterSelectionEvents() Set { return e.ix.manualSelection.Clone() }
func (e *Engine) FirstPitchOfABEvents() Set           { return e.ix.firstPitch.Clone() }
func (e *Engine) LastPitchOfABEvents() Set            { return e.ix.lastPitch.Clone() }
func (e *Engine) AwayTeamWinningEvents() Set          { return e.ix.awayWinning.Clone() }
func (e *Engine) HomeTeamWinningEvents() Set          { return e.ix.homeWinning.Clone() }
func (e *Engine) GameTiedEvents() Set                 { return e.ix.gameTied.Clone() }
func (e *Engine) LeadChangedEvents() Set              { return e.ix.leadChanged.Clone() }

// WalkoffEvents returns the final event when it drove in the winning run,
// otherwise an empty set.
func (e *Engine) WalkoffEvents() Set {
	if e.ix.finalRBI != 0 {
		return NewSet(e.ix.numEvents - 1)
	}
	return make(Set)
}

// RunnerOnBaseEvents answers the tri-state occupancy query. Each element of
// bases is drawn from -3..3: a positive base must have a runner, a negative
// base may have one, and a base never mentioned must be empty. The literal
// 0 alone selects the bases-empty set; 0 combined with a required base is
// contradictory and rejected.
func (e *Engine) RunnerOnBaseEvents(bases []int) (Set, error) {
	for _, b := range bases {
		if b < -3 || b > 3 {
			return nil, validationErrorf("base number", b, "-3 to 3")
		}
	}
	if len(bases) > 3 {
		return nil, validationErrorf("base numbers", bases, "at most 3 bases")
	}
	if len(bases) == 1 && bases[0] == 0 {
		return e.ix.runners[0].Clone(), nil
	}

	excluded := map[int]bool{1: true, 2: true, 3: true}
	var required, optional []int
	zeroNamed := false
	for _, b := range bases {
		mag := b
		if mag < 0 {
			mag = -mag
		}
		delete(excluded, mag)
		switch {
		case b > 0:
			required = append(required, b)
		case b == 0:
			zeroNamed = true
		default:
			optional = append(optional, mag)
		}
	}
	if zeroNamed && len(required) > 0 {
		return nil, validationErrorf("base numbers", bases,
			"0 only alone or alongside optional (negative) bases")
	}

	var result Set
	if len(required) > 0 {
		result = e.ix.allEvents()
		for _, b := range required {
			result = result.Intersect(e.ix.runners[b])
		}
	} else {
		result = make(Set)
		for _, b := range optional {
			result = result.Union(e.ix.runners[b])
		}
		if zeroNamed {
			result = result.Union(e.ix.runners[0])
		}
	}
	for b := range excluded {
		result = result.Difference(e.ix.runners[b])
	}
	return result, nil
}

// Ordinal tagged queries. Each method evaluates tagged requests against one
// axis; an exact value outside the seeded range contributes an empty set.

func (e *Engine) InningEvents(reqs ...Request) Set       { return e.ix.inning.query(reqs...) }
func (e *Engine) AwayScoreEvents(reqs ...Request) Set    { return e.ix.awayScore.query(reqs...) }
func (e *Engine) HomeScoreEvents(reqs ...Request) Set    { return e.ix.homeScore.query(reqs...) }
func (e *Engine) BallEvents(reqs ...Request) Set         { return e.ix.balls.query(reqs...) }
func (e *Engine) StrikeEvents(reqs ...Request) Set       { return e.ix.strikes.query(reqs...) }
func (e *Engine) ChemOnBaseEvents(reqs ...Request) Set   { return e.ix.chemOnBase.query(reqs...) }
func (e *Engine) RBIEvents(reqs ...Request) Set          { return e.ix.rbi.query(reqs...) }
func (e *Engine) OutsInInningEvents(reqs ...Request) Set { return e.ix.outs.query(reqs...) }
func (e *Engine) PitcherStaminaEvents(reqs ...Request) Set {
	return e.ix.stamina.query(reqs...)
}
func (e *Engine) NumOutsDuringPlayEvents(reqs ...Request) Set {
	return e.ix.outsDuringPlay.query(reqs...)
}
func (e *Engine) ContactFrameEvents(reqs ...Request) Set { return e.ix.contactFrame.query(reqs...) }

// Signed variants translate the legacy convention (negative magnitude =
// threshold, direction fixed per axis) at the public boundary and delegate
// to the tagged queries above.

func (e *Engine) InningEventsSigned(values ...int) Set { return e.ix.inning.querySigned(values) }
func (e *Engine) AwayScoreEventsSigned(values ...int) Set {
	return e.ix.awayScore.querySigned(values)
}
func (e *Engine) HomeScoreEventsSigned(values ...int) Set {
	return e.ix.homeScore.querySigned(values)
}
func (e *Engine) BallEventsSigned(values ...int) Set   { return e.ix.balls.querySigned(values) }
func (e *Engine) StrikeEventsSigned(values ...int) Set { return e.ix.strikes.querySigned(values) }
func (e *Engine) ChemOnBaseEventsSigned(values ...int) Set {
	return e.ix.chemOnBase.querySigned(values)
}
func (e *Engine) RBIEventsSigned(values ...int) Set { return e.ix.rbi.querySigned(values) }
func (e *Engine) OutsInInningEventsSigned(values ...int) Set {
	return e.ix.outs.querySigned(values)
}
func (e *Engine) PitcherStaminaEventsSigned(values ...int) Set {
	return e.ix.stamina.querySigned(values)
}
func (e *Engine) NumOutsDuringPlayEventsSigned(values ...int) Set {
	return e.ix.outsDuringPlay.querySigned(values)
}
func (e *Engine) ContactFrameEventsSigned(values ...int) Set {
	return e.ix.contactFrame.querySigned(values)
}

// HalfInningEvents returns the events batted in the given half: 0 for the
// top (away batting), 1 for the bottom.
func (e *Engine) HalfInningEvents(half int) (Set, error) {
	if half != 0 && half != 1 {
		return nil, validationErrorf("half inning", half, "0 or 1")
	}
	return e.ix.halfInning.query(Exact(half)), nil
}

// StarChanceEvents returns the events during (or outside) a star chance.
func (e *Engine) StarChanceEvents(isStarChance bool) Set {
	if isStarChance {
		return e.ix.starChance.query(Exact(1))
	}
	return e.ix.starChance.query(Exact(0))
}

// InStrikezoneEvents returns the pitch events that crossed the strikezone.
func (e *Engine) InStrikezoneEvents() Set {
	return e.ix.inStrikezone.query(Exact(1))
}

// Pitch-type queries. Slider and perfect-charge pitches live on the
// secondary charge-type axis; the named union paves over that split.

func (e *Engine) CurvePitchTypeEvents() Set    { return e.ix.pitchType.known("Curve") }
func (e *Engine) ChargePitchTypeEvents() Set   { return e.ix.pitchType.known("Charge") }
func (e *Engine) ChangeUpPitchTypeEvents() Set { return e.ix.pitchType.known("ChangeUp") }
func (e *Engine) SliderPitchTypeEvents() Set   { return e.ix.chargeType.known("Slider") }
func (e *Engine) PerfectChargePitchTypeEvents() Set {
	return e.ix.chargeType.known("Perfect")
}

// PitchTypeEvents unions the buckets for the named pitch variants,
// case-insensitively.
func (e *Engine) PitchTypeEvents(types ...string) (Set, error) {
	result := make(Set)
	for _, t := range types {
		var s Set
		switch strings.ToLower(t) {
		case "curve":
			s = e.CurvePitchTypeEvents()
		case "charge":
			s = e.ChargePitchTypeEvents()
		case "slider":
			s = e.SliderPitchTypeEvents()
		case "perfect":
			s = e.PerfectChargePitchTypeEvents()
		case "changeup":
			s = e.ChangeUpPitchTypeEvents()
		default:
			return nil, validationErrorf("pitch type", t, "Curve, Charge, Slider, Perfect, ChangeUp")
		}
		result = result.Union(s)
	}
	return result, nil
}

// Swing-type queries.

func (e *Engine) NoneSwingTypeEvents() Set   { return e.ix.swingType.known("None") }
func (e *Engine) SlapSwingTypeEvents() Set   { return e.ix.swingType.known("Slap") }
func (e *Engine) ChargeSwingTypeEvents() Set { return e.ix.swingType.known("Charge") }
func (e *Engine) StarSwingTypeEvents() Set   { return e.ix.swingType.known("Star") }
func (e *Engine) BuntSwingTypeEvents() Set   { return e.ix.swingType.known("Bunt") }

// SwingTypeEvents unions the buckets for the named swing types,
// case-insensitively.
func (e *Engine) SwingTypeEvents(types ...string) (Set, error) {
	result := make(Set)
	for _, t := range types {
		var s Set
		switch strings.ToLower(t) {
		case "none":
			s = e.NoneSwingTypeEvents()
		case "slap":
			s = e.SlapSwingTypeEvents()
		case "charge":
			s = e.ChargeSwingTypeEvents()
		case "star":
			s = e.StarSwingTypeEvents()
		case "bunt":
			s = e.BuntSwingTypeEvents()
		default:
			return nil, validationErrorf("swing type", t, "None, Slap, Charge, Star, Bunt")
		}
		result = result.Union(s)
	}
	return result, nil
}

// Contact-quality queries. Nice and sour contact are recorded per pull
// side; the side argument selects one or unions both.

func (e *Engine) PerfectContactTypeEvents() Set { return e.ix.contactType.known("Perfect") }

func (e *Engine) NiceContactTypeEvents(side Side) (Set, error) {
	switch side {
	case SideBoth:
		return unionAll(e.ix.contactType.buckets["Nice - Left"], e.ix.contactType.buckets["Nice - Right"]), nil
	case SideLeft:
		return e.ix.contactType.known("Nice - Left"), nil
	case SideRight:
		return e.ix.contactType.known("Nice - Right"), nil
	default:
		return nil, validationErrorf("side", string(side), "b, l, r")
	}
}

func (e *Engine) SourContactTypeEvents(side Side) (Set, error) {
	switch side {
	case SideBoth:
		return unionAll(e.ix.contactType.buckets["Sour - Left"], e.ix.contactType.buckets["Sour - Right"]), nil
	case SideLeft:
		return e.ix.contactType.known("Sour - Left"), nil
	case SideRight:
		return e.ix.contactType.known("Sour - Right"), nil
	default:
		return nil, validationErrorf("side", string(side), "b, l, r")
	}
}

// ContactTypeEvents unions the buckets for the named contact qualities,
// case-insensitively, both sides for nice and sour.
func (e *Engine) ContactTypeEvents(types ...string) (Set, error) {
	result := make(Set)
	for _, t := range types {
		var s Set
		var err error
		switch strings.ToLower(t) {
		case "sour":
			s, err = e.SourContactTypeEvents(SideBoth)
		case "nice":
			s, err = e.NiceContactTypeEvents(SideBoth)
		case "perfect":
			s = e.PerfectContactTypeEvents()
		default:
			return nil, validationErrorf("contact type", t, "Sour, Nice, Perfect")
		}
		if err != nil {
			return nil, err
		}
		result = result.Union(s)
	}
	return result, nil
}

// InputDirectionEvents returns the contact events with the given stick
// input direction.
func (e *Engine) InputDirectionEvents(direction string) (Set, error) {
	return e.ix.inputDirection.bucket(direction)
}

// FirstFielderPositionEvents returns the events whose first fielder played
// the given position abbreviation (case-insensitive).
func (e *Engine) FirstFielderPositionEvents(pos string) (Set, error) {
	return e.ix.fielderPos.bucket(strings.ToUpper(pos))
}

// Participation queries. An unknown character answers empty rather than
// erroring; callers routinely probe characters who were never fielded.

func (e *Engine) CharacterAtBatEvents(character string) Set {
	if rs, ok := e.ix.participation[character]; ok {
		return rs.AtBat.Clone()
	}
	return make(Set)
}

func (e *Engine) CharacterPitchingEvents(character string) Set {
	if rs, ok := e.ix.participation[character]; ok {
		return rs.Pitching.Clone()
	}
	return make(Set)
}

func (e *Engine) CharacterFieldingEvents(character string) Set {
	if rs, ok := e.ix.participation[character]; ok {
		return rs.Fielding.Clone()
	}
	return make(Set)
}

// PlayerBattingEvents returns the events where the named player's side was
// batting. Unknown players answer empty.
func (e *Engine) PlayerBattingEvents(player string) Set {
	switch {
	case strings.EqualFold(player, e.ix.players[0]):
		return e.ix.halfInning.query(Exact(0))
	case strings.EqualFold(player, e.ix.players[1]):
		return e.ix.halfInning.query(Exact(1))
	default:
		return make(Set)
	}
}

// PlayerPitchingEvents returns the events where the named player's side was
// in the field.
func (e *Engine) PlayerPitchingEvents(player string) Set {
	switch {
	case strings.EqualFold(player, e.ix.players[0]):
		return e.ix.halfInning.query(Exact(1))
	case strings.EqualFold(player, e.ix.players[1]):
		return e.ix.halfInning.query(Exact(0))
	default:
		return make(Set)
	}
}

// BallPositionStrikezoneEvents returns the pitch events whose strikezone
// crossing position is at least |min| from center, either side.
func (e *Engine) BallPositionStrikezoneEvents(min float64) Set {
	return e.ix.strikezonePos.atLeastAbs(min)
}

// BallContactPositionEvents returns the contact events whose contact X
// position is at least |min| from center, either side.
func (e *Engine) BallContactPositionEvents(min float64) Set {
	return e.ix.contactPosX.atLeastAbs(min)
}
