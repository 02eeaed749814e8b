package game

// AllSlots selects every roster slot on a side when passed as the slot
// argument of the counter and derived-stat methods.
const AllSlots = -1

// sumOffense folds one offensive counter across the selected slots.
func (g *GameRecord) sumOffense(team, slot int, pick func(*OffensiveStats) int) (int, error) {
	if slot != AllSlots {
		stats, err := g.CharacterAt(team, slot)
		if err != nil {
			return 0, err
		}
		return pick(&stats.Offense), nil
	}
	total := 0
	for s := 0; s < RosterSize; s++ {
		stats, err := g.CharacterAt(team, s)
		if err != nil {
			return 0, err
		}
		total += pick(&stats.Offense)
	}
	return total, nil
}

// sumDefense folds one defensive counter across the selected slots.
func (g *GameRecord) sumDefense(team, slot int, pick func(*DefensiveStats) int) (int, error) {
	if slot != AllSlots {
		stats, err := g.CharacterAt(team, slot)
		if err != nil {
			return 0, err
		}
		return pick(&stats.Defense), nil
	}
	total := 0
	for s := 0; s < RosterSize; s++ {
		stats, err := g.CharacterAt(team, s)
		if err != nil {
			return 0, err
		}
		total += pick(&stats.Defense)
	}
	return total, nil
}

// Offensive counters. Slot AllSlots sums the whole side.

func (g *GameRecord) AtBats(team, slot int) (int, error) {
	return g.sumOffense(team, slot, func(o *OffensiveStats) int { return o.AtBats })
}

func (g *GameRecord) Hits(team, slot int) (int, error) {
	return g.sumOffense(team, slot, func(o *OffensiveStats) int { return o.Hits })
}

func (g *GameRecord) Singles(team, slot int) (int, error) {
	return g.sumOffense(team, slot, func(o *OffensiveStats) int { return o.Singles })
}

func (g *GameRecord) Doubles(team, slot int) (int, error) {
	return g.sumOffense(team, slot, func(o *OffensiveStats) int { return o.Doubles })
}

func (g *GameRecord) Triples(team, slot int) (int, error) {
	return g.sumOffense(team, slot, func(o *OffensiveStats) int { return o.Triples })
}

func (g *GameRecord) Homeruns(team, slot int) (int, error) {
	return g.sumOffense(team, slot, func(o *OffensiveStats) int { return o.Homeruns })
}

func (g *GameRecord) Bunts(team, slot int) (int, error) {
	return g.sumOffense(team, slot, func(o *OffensiveStats) int { return o.SuccessfulBunts })
}

func (g *GameRecord) SacFlys(team, slot int) (int, error) {
	return g.sumOffense(team, slot, func(o *OffensiveStats) int { return o.SacFlys })
}

func (g *GameRecord) Strikeouts(team, slot int) (int, error) {
	return g.sumOffense(team, slot, func(o *OffensiveStats) int { return o.Strikeouts })
}

func (g *GameRecord) WalksBallFour(team, slot int) (int, error) {
	return g.sumOffense(team, slot, func(o *OffensiveStats) int { return o.WalksBB })
}

func (g *GameRecord) WalksHitByPitch(team, slot int) (int, error) {
	return g.sumOffense(team, slot, func(o *OffensiveStats) int { return o.WalksHit })
}

// Walks sums four-ball and hit-by-pitch walks.
func (g *GameRecord) Walks(team, slot int) (int, error) {
	bb, err := g.WalksBallFour(team, slot)
	if err != nil {
		return 0, err
	}
	hbp, err := g.WalksHitByPitch(team, slot)
	if err != nil {
		return 0, err
	}
	return bb + hbp, nil
}

func (g *GameRecord) RBITotal(team, slot int) (int, error) {
	return g.sumOffense(team, slot, func(o *OffensiveStats) int { return o.RBI })
}

func (g *GameRecord) BasesStolen(team, slot int) (int, error) {
	return g.sumOffense(team, slot, func(o *OffensiveStats) int { return o.BasesStolen })
}

func (g *GameRecord) StarHits(team, slot int) (int, error) {
	return g.sumOffense(team, slot, func(o *OffensiveStats) int { return o.StarHits })
}

// Defensive counters.

func (g *GameRecord) BattersFaced(team, slot int) (int, error) {
	return g.sumDefense(team, slot, func(d *DefensiveStats) int { return d.BattersFaced })
}

func (g *GameRecord) RunsAllowed(team, slot int) (int, error) {
	return g.sumDefense(team, slot, func(d *DefensiveStats) int { return d.RunsAllowed })
}

func (g *GameRecord) BattersWalked(team, slot int) (int, error) {
	return g.sumDefense(team, slot, func(d *DefensiveStats) int { return d.BattersWalked })
}

func (g *GameRecord) HitsAllowed(team, slot int) (int, error) {
	return g.sumDefense(team, slot, func(d *DefensiveStats) int { return d.HitsAllowed })
}

func (g *GameRecord) HomerunsAllowed(team, slot int) (int, error) {
	return g.sumDefense(team, slot, func(d *DefensiveStats) int { return d.HRsAllowed })
}

func (g *GameRecord) PitchesThrown(team, slot int) (int, error) {
	return g.sumDefense(team, slot, func(d *DefensiveStats) int { return d.PitchesThrown })
}

func (g *GameRecord) StarPitchesThrown(team, slot int) (int, error) {
	return g.sumDefense(team, slot, func(d *DefensiveStats) int { return d.StarPitchesThrown })
}

func (g *GameRecord) PitchingStrikeouts(team, slot int) (int, error) {
	return g.sumDefense(team, slot, func(d *DefensiveStats) int { return d.Strikeouts })
}

func (g *GameRecord) BigPlays(team, slot int) (int, error) {
	return g.sumDefense(team, slot, func(d *DefensiveStats) int { return d.BigPlays })
}

func (g *GameRecord) OutsPitched(team, slot int) (int, error) {
	return g.sumDefense(team, slot, func(d *DefensiveStats) int { return d.OutsPitched })
}

// InningsPitched returns outs pitched divided by three.
func (g *GameRecord) InningsPitched(team, slot int) (float64, error) {
	outs, err := g.OutsPitched(team, slot)
	if err != nil {
		return 0, err
	}
	return float64(outs) / 3, nil
}

// Derived rate stats. All of these return 0 when the denominator is zero,
// so a character who never batted or pitched reads as zeros instead of an
// error path every caller would have to duplicate.

// ERA returns earned runs per nine innings pitched.
func (g *GameRecord) ERA(team, slot int) (float64, error) {
	runs, err := g.RunsAllowed(team, slot)
	if err != nil {
		return 0, err
	}
	ip, err := g.InningsPitched(team, slot)
	if err != nil {
		return 0, err
	}
	if ip == 0 {
		return 0, nil
	}
	return 9 * float64(runs) / ip, nil
}

// BattingAvg returns hits per at-bat.
func (g *GameRecord) BattingAvg(team, slot int) (float64, error) {
	ab, err := g.AtBats(team, slot)
	if err != nil {
		return 0, err
	}
	hits, err := g.Hits(team, slot)
	if err != nil {
		return 0, err
	}
	if ab == 0 {
		return 0, nil
	}
	return float64(hits) / float64(ab), nil
}

// OBP returns times on base (hits plus walks) per at-bat.
func (g *GameRecord) OBP(team, slot int) (float64, error) {
	ab, err := g.AtBats(team, slot)
	if err != nil {
		return 0, err
	}
	hits, err := g.Hits(team, slot)
	if err != nil {
		return 0, err
	}
	walks, err := g.Walks(team, slot)
	if err != nil {
		return 0, err
	}
	if ab == 0 {
		return 0, nil
	}
	return float64(hits+walks) / float64(ab), nil
}

// SLG returns total bases per official at-bat (at-bats less walks).
func (g *GameRecord) SLG(team, slot int) (float64, error) {
	ab, err := g.AtBats(team, slot)
	if err != nil {
		return 0, err
	}
	walks, err := g.Walks(team, slot)
	if err != nil {
		return 0, err
	}
	singles, err := g.Singles(team, slot)
	if err != nil {
		return 0, err
	}
	doubles, err := g.Doubles(team, slot)
	if err != nil {
		return 0, err
	}
	triples, err := g.Triples(team, slot)
	if err != nil {
		return 0, err
	}
	homeruns, err := g.Homeruns(team, slot)
	if err != nil {
		return 0, err
	}
	official := ab - walks
	if official <= 0 {
		return 0, nil
	}
	bases := singles + doubles*2 + triples*3 + homeruns*4
	return float64(bases) / float64(official), nil
}

// OPS returns on-base plus slugging.
func (g *GameRecord) OPS(team, slot int) (float64, error) {
	obp, err := g.OBP(team, slot)
	if err != nil {
		return 0, err
	}
	slg, err := g.SLG(team, slot)
	if err != nil {
		return 0, err
	}
	return obp + slg, nil
}
