package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riolytics/matchsearch/internal/search"
	apperrors "github.com/riolytics/matchsearch/pkg/errors"
)

// parseIntList parses a comma-separated signed integer list.
func parseIntList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer: %w", p, apperrors.ErrInvalidQuery)
		}
		values = append(values, v)
	}
	return values, nil
}

func parseStringList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}

func parseFlag(raw string) (bool, error) {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%q is not a boolean: %w", raw, apperrors.ErrInvalidQuery)
	}
	return v, nil
}

// signedAxes maps query parameters to their signed-list ordinal queries.
// Each axis keeps its own threshold polarity behind the engine method.
var signedAxes = map[string]func(*search.Engine, ...int) search.Set{
	"inning":           (*search.Engine).InningEventsSigned,
	"away_score":       (*search.Engine).AwayScoreEventsSigned,
	"home_score":       (*search.Engine).HomeScoreEventsSigned,
	"balls":            (*search.Engine).BallEventsSigned,
	"strikes":          (*search.Engine).StrikeEventsSigned,
	"outs":             (*search.Engine).OutsInInningEventsSigned,
	"chem":             (*search.Engine).ChemOnBaseEventsSigned,
	"rbi":              (*search.Engine).RBIEventsSigned,
	"stamina":          (*search.Engine).PitcherStaminaEventsSigned,
	"outs_during_play": (*search.Engine).NumOutsDuringPlayEventsSigned,
	"contact_frame":    (*search.Engine).ContactFrameEventsSigned,
}

// markerAxes maps boolean query parameters to their marker-set queries.
var markerAxes = map[string]func(*search.Engine) search.Set{
	"steal":         (*search.Engine).StealEvents,
	"star_pitch":    (*search.Engine).StarPitchEvents,
	"bobble":        (*search.Engine).BobbleEvents,
	"fireball_burn": (*search.Engine).FireballBurnEvents,
	"five_star":     (*search.Engine).FiveStarDingerEvents,
	"sliding_catch": (*search.Engine).SlidingCatchEvents,
	"wall_jump":     (*search.Engine).WallJumpEvents,
	"manual_select": (*search.Engine).ManualCharacterSelectionEvents,
	"first_pitch":   (*search.Engine).FirstPitchOfABEvents,
	"last_pitch":    (*search.Engine).LastPitchOfABEvents,
	"away_winning":  (*search.Engine).AwayTeamWinningEvents,
	"home_winning":  (*search.Engine).HomeTeamWinningEvents,
	"tied":          (*search.Engine).GameTiedEvents,
	"lead_changed":  (*search.Engine).LeadChangedEvents,
	"walkoff":       (*search.Engine).WalkoffEvents,
	"in_zone":       (*search.Engine).InStrikezoneEvents,
	"all_outs":      (*search.Engine).AllOutResultEvents,
}

// evalQuery turns the request's query parameters into per-axis result sets
// and intersects them. No parameters means the empty query: every event.
func evalQuery(eng *search.Engine, params url.Values) (search.Set, []string, error) {
	var sets []search.Set
	var axes []string

	add := func(axis string, s search.Set) {
		sets = append(sets, s)
		axes = append(axes, axis)
	}

	for axis, fn := range signedAxes {
		raw := params.Get(axis)
		if raw == "" {
			continue
		}
		values, err := parseIntList(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("parameter %s: %w", axis, err)
		}
		add(axis, fn(eng, values...))
	}

	for axis, fn := range markerAxes {
		raw := params.Get(axis)
		if raw == "" {
			continue
		}
		want, err := parseFlag(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("parameter %s: %w", axis, err)
		}
		if want {
			add(axis, fn(eng))
		}
	}

	if raw := params.Get("result"); raw != "" {
		s, err := eng.ResultEvents(raw)
		if err != nil {
			return nil, nil, err
		}
		add("result", s)
	}
	if raw := params.Get("hit_bases"); raw != "" {
		bases, err := strconv.Atoi(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("parameter hit_bases: %q is not an integer: %w", raw, apperrors.ErrInvalidQuery)
		}
		add("hit_bases", eng.HitResultEvents(bases))
	}
	if raw := params.Get("walks"); raw != "" {
		var s search.Set
		switch strings.ToLower(raw) {
		case "all":
			s = eng.WalkResultEvents(true, true)
		case "hbp":
			s = eng.WalkResultEvents(true, false)
		case "bb":
			s = eng.WalkResultEvents(false, true)
		default:
			return nil, nil, fmt.Errorf("parameter walks: %q not one of all, hbp, bb: %w", raw, apperrors.ErrInvalidQuery)
		}
		add("walks", s)
	}
	if raw := params.Get("runners"); raw != "" {
		bases, err := parseIntList(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("parameter runners: %w", err)
		}
		s, err := eng.RunnerOnBaseEvents(bases)
		if err != nil {
			return nil, nil, err
		}
		add("runners", s)
	}
	if raw := params.Get("half"); raw != "" {
		half, err := strconv.Atoi(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("parameter half: %q is not an integer: %w", raw, apperrors.ErrInvalidQuery)
		}
		s, err := eng.HalfInningEvents(half)
		if err != nil {
			return nil, nil, err
		}
		add("half", s)
	}
	if raw := params.Get("star_chance"); raw != "" {
		want, err := parseFlag(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("parameter star_chance: %w", err)
		}
		add("star_chance", eng.StarChanceEvents(want))
	}
	if raw := params.Get("pitch_type"); raw != "" {
		s, err := eng.PitchTypeEvents(parseStringList(raw)...)
		if err != nil {
			return nil, nil, err
		}
		add("pitch_type", s)
	}
	if raw := params.Get("swing_type"); raw != "" {
		s, err := eng.SwingTypeEvents(parseStringList(raw)...)
		if err != nil {
			return nil, nil, err
		}
		add("swing_type", s)
	}
	if raw := params.Get("contact_type"); raw != "" {
		s, err := eng.ContactTypeEvents(parseStringList(raw)...)
		if err != nil {
			return nil, nil, err
		}
		add("contact_type", s)
	}
	if raw := params.Get("input_direction"); raw != "" {
		s, err := eng.InputDirectionEvents(raw)
		if err != nil {
			return nil, nil, err
		}
		add("input_direction", s)
	}
	if raw := params.Get("fielder_pos"); raw != "" {
		s, err := eng.FirstFielderPositionEvents(raw)
		if err != nil {
			return nil, nil, err
		}
		add("fielder_pos", s)
	}
	if raw := params.Get("batter"); raw != "" {
		add("batter", eng.CharacterAtBatEvents(raw))
	}
	if raw := params.Get("pitcher"); raw != "" {
		add("pitcher", eng.CharacterPitchingEvents(raw))
	}
	if raw := params.Get("fielder"); raw != "" {
		add("fielder", eng.CharacterFieldingEvents(raw))
	}
	if raw := params.Get("player_batting"); raw != "" {
		add("player_batting", eng.PlayerBattingEvents(raw))
	}
	if raw := params.Get("player_pitching"); raw != "" {
		add("player_pitching", eng.PlayerPitchingEvents(raw))
	}
	if raw := params.Get("strikezone_min"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("parameter strikezone_min: %q is not a number: %w", raw, apperrors.ErrInvalidQuery)
		}
		add("strikezone_min", eng.BallPositionStrikezoneEvents(min))
	}
	if raw := params.Get("contact_x_min"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("parameter contact_x_min: %q is not a number: %w", raw, apperrors.ErrInvalidQuery)
		}
		add("contact_x_min", eng.BallContactPositionEvents(min))
	}

	if len(sets) == 0 {
		all := make(search.Set, eng.NumEvents())
		for i := 0; i < eng.NumEvents(); i++ {
			all.Add(i)
		}
		return all, nil, nil
	}

	result := sets[0]
	for _, s := range sets[1:] {
		result = result.Intersect(s)
	}
	return result, axes, nil
}
