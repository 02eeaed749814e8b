package search

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/riolytics/matchsearch/internal/game"
	"github.com/riolytics/matchsearch/internal/lookup"
	"github.com/riolytics/matchsearch/pkg/metrics"
)

// Index is the immutable snapshot of every inverted index for one match.
// It is produced by a single pass over the event sequence and is safe for
// concurrent reads once Build returns.
type Index struct {
	numEvents  int
	finalRBI   int
	players    [2]string
	finalScore [2]int

	// categorical axes
	resultOfAB     *strAxis
	fielderPos     *strAxis
	pitchType      *strAxis
	chargeType     *strAxis
	swingType      *strAxis
	contactType    *strAxis
	inputDirection *strAxis

	// ordinal axes
	rbi            *intAxis
	inning         *intAxis
	awayScore      *intAxis
	homeScore      *intAxis
	balls          *intAxis
	strikes        *intAxis
	outs           *intAxis
	halfInning     *intAxis
	chemOnBase     *intAxis
	stamina        *intAxis
	starChance     *intAxis
	outsDuringPlay *intAxis
	inStrikezone   *intAxis
	contactFrame   *intAxis

	// float axes banded to two decimals
	strikezonePos *bandAxis
	contactPosX   *bandAxis

	// runner occupancy: index 1..3 per base, index 0 = bases empty
	runners [4]Set

	// boolean marker sets
	steal           Set
	starPitch       Set
	bobble          Set
	fireballBurn    Set
	fiveStarDinger  Set
	slidingCatch    Set
	wallJump        Set
	manualSelection Set
	firstPitch      Set
	lastPitch       Set
	awayWinning     Set
	homeWinning     Set
	gameTied        Set
	leadChanged     Set

	// character → role → events, seeded from both rosters
	participation map[string]*roleSets
}

// allEvents returns the full event-id set {0..N-1}.
func (ix *Index) allEvents() Set {
	all := make(Set, ix.numEvents)
	for i := 0; i < ix.numEvents; i++ {
		all.Add(i)
	}
	return all
}

// Builder constructs Index snapshots. The zero value is unusable; use
// NewBuilder. Logger and metrics are optional.
type Builder struct {
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewBuilder returns a Builder that logs tolerated skips through log and
// counts build activity in m. Either may be nil.
func NewBuilder(log *slog.Logger, m *metrics.Metrics) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{log: log, metrics: m}
}

// skip records a tolerated per-axis skip: the event stays out of that one
// bucket and the build continues.
func (b *Builder) skip(gameID string, eventID int, axis string, value any) {
	b.log.Debug("value outside axis domain, event skipped for this axis",
		"game_id", gameID, "event_id", eventID, "axis", axis, "value", value)
	if b.metrics != nil {
		b.metrics.IndexSkipsTotal.WithLabelValues(axis).Inc()
	}
}

// Build runs the single indexing pass over rec. A missing mandatory field
// or an unresolvable roster reference aborts the build with a
// ConstructionError; unknown categorical values are tolerated per axis.
func (b *Builder) Build(rec *game.GameRecord, dom *lookup.Domain) (*Index, error) {
	start := time.Now()
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	awayFinal, err := rec.Score(game.TeamAway)
	if err != nil {
		return nil, err
	}
	homeFinal, err := rec.Score(game.TeamHome)
	if err != nil {
		return nil, err
	}

	ix := &Index{
		numEvents:  rec.NumEvents(),
		finalScore: [2]int{awayFinal, homeFinal},

		resultOfAB:     newStrAxis("result of at-bat", dom.FinalResults),
		fielderPos:     newStrAxis("fielder position", dom.Positions),
		pitchType:      newStrAxis("pitch type", dom.PitchTypes),
		chargeType:     newStrAxis("charge type", dom.ChargeTypes),
		swingType:      newStrAxis("swing type", dom.SwingTypes),
		contactType:    newStrAxis("contact type", dom.ContactTypes),
		inputDirection: newStrAxis("input direction", dom.InputDirections),

		rbi:            newIntAxis("rbi", 0, 4, Ascending),
		inning:         newIntAxis("inning", 1, max(rec.InningsPlayed, 1), Ascending),
		awayScore:      newIntAxis("away score", 0, awayFinal, Ascending),
		homeScore:      newIntAxis("home score", 0, homeFinal, Ascending),
		balls:          newIntAxis("balls", 0, 3, Ascending),
		strikes:        newIntAxis("strikes", 0, 4, Ascending),
		outs:           newIntAxis("outs", 0, 2, Ascending),
		halfInning:     newIntAxis("half inning", 0, 1, Ascending),
		chemOnBase:     newIntAxis("chemistry links on base", 0, 3, Ascending),
		stamina:        newIntAxis("pitcher stamina", 0, 10, Descending),
		starChance:     newIntAxis("star chance", 0, 1, Ascending),
		outsDuringPlay: newIntAxis("outs during play", 0, 3, Ascending),
		inStrikezone:   newIntAxis("in strikezone", 0, 1, Ascending),
		contactFrame:   newIntAxis("contact frame", 0, 10, Ascending),

		strikezonePos: newBandAxis("strikezone position"),
		contactPosX:   newBandAxis("contact position x"),

		steal:           make(Set),
		starPitch:       make(Set),
		bobble:          make(Set),
		fireballBurn:    make(Set),
		fiveStarDinger:  make(Set),
		slidingCatch:    make(Set),
		wallJump:        make(Set),
		manualSelection: make(Set),
		firstPitch:      make(Set),
		lastPitch:       make(Set),
		awayWinning:     make(Set),
		homeWinning:     make(Set),
		gameTied:        make(Set),
		leadChanged:     make(Set),

		participation: make(map[string]*roleSets),
	}
	for i := range ix.runners {
		ix.runners[i] = make(Set)
	}

	// Seed participation with every character on either roster so a query
	// for an unused character answers empty instead of failing.
	for team := game.TeamAway; team <= game.TeamHome; team++ {
		names, err := rec.RosterNames(team)
		if err != nil {
			return nil, err
		}
		player, err := rec.Player(team)
		if err != nil {
			return nil, err
		}
		ix.players[team] = player
		for _, name := range names {
			if _, ok := ix.participation[name]; !ok {
				ix.participation[name] = newRoleSets()
			}
		}
	}

	for id := 0; id < rec.NumEvents(); id++ {
		view, err := game.NewEventView(rec, id)
		if err != nil {
			return nil, err
		}
		if err := b.indexEvent(ix, rec, view); err != nil {
			return nil, err
		}
	}

	final, err := game.NewEventView(rec, rec.FinalEvent())
	if err != nil {
		return nil, err
	}
	ix.finalRBI = final.RBI()

	if b.metrics != nil {
		b.metrics.MatchesIndexedTotal.Inc()
		b.metrics.EventsIndexedTotal.Add(float64(rec.NumEvents()))
		b.metrics.IndexBuildDuration.Observe(time.Since(start).Seconds())
	}
	b.log.Info("match indexed",
		"game_id", rec.GameID,
		"events", rec.NumEvents(),
		"characters", len(ix.participation),
		"duration", time.Since(start))
	return ix, nil
}

// indexEvent files one event into every applicable axis. Gated sections
// mirror the sub-record nesting: pitch axes only when a pitch happened,
// contact axes only on contact, fielder axes only when the ball reached a
// fielder.
func (b *Builder) indexEvent(ix *Index, rec *game.GameRecord, v *game.EventView) error {
	id := v.ID()

	batter, err := v.Batter()
	if err != nil {
		return &game.ConstructionError{Event: id, Field: fmt.Sprintf("batter roster slot %d", v.BatterRoster())}
	}
	pitcher, err := v.Pitcher()
	if err != nil {
		return &game.ConstructionError{Event: id, Field: fmt.Sprintf("pitcher roster slot %d", v.PitcherRoster())}
	}
	ix.roles(batter).AtBat.Add(id)
	ix.roles(pitcher).Pitching.Add(id)

	awayScore, _ := v.Score(game.TeamAway)
	homeScore, _ := v.Score(game.TeamHome)
	if !ix.awayScore.insert(id, awayScore) {
		b.skip(rec.GameID, id, "away score", awayScore)
	}
	if !ix.homeScore.insert(id, homeScore) {
		b.skip(rec.GameID, id, "home score", homeScore)
	}
	switch {
	case awayScore > homeScore:
		ix.awayWinning.Add(id)
	case awayScore < homeScore:
		ix.homeWinning.Add(id)
	default:
		ix.gameTied.Add(id)
	}
	if v.LeadChanged() {
		ix.leadChanged.Add(id)
	}

	type intInsert struct {
		axis  *intAxis
		value int
	}
	for _, in := range []intInsert{
		{ix.outs, v.Outs()},
		{ix.chemOnBase, v.ChemLinksOnBase()},
		{ix.strikes, v.Strikes()},
		{ix.balls, v.Balls()},
		{ix.inning, v.Inning()},
		{ix.rbi, v.RBI()},
		{ix.stamina, v.PitcherStamina()},
		{ix.starChance, v.StarChance()},
		{ix.outsDuringPlay, v.OutsDuringPlay()},
		{ix.halfInning, v.HalfInning()},
	} {
		if !in.axis.insert(id, in.value) {
			b.skip(rec.GameID, id, in.axis.name, in.value)
		}
	}

	if !ix.resultOfAB.insert(id, v.ResultOfAB()) {
		b.skip(rec.GameID, id, ix.resultOfAB.name, v.ResultOfAB())
	}

	occupied := false
	for base := 1; base <= 3; base++ {
		if _, ok := v.RunnerOn(base); ok {
			ix.runners[base].Add(id)
			occupied = true
		}
	}
	if !occupied {
		ix.runners[0].Add(id)
	}
	if v.HasSteal() {
		ix.steal.Add(id)
	}

	pitch, ok := v.Pitch()
	if !ok {
		return nil
	}

	if v.FirstPitchOfAB() {
		ix.firstPitch.Add(id)
	}
	if v.LastPitchOfAB() {
		ix.lastPitch.Add(id)
	}
	if !ix.pitchType.insert(id, pitch.PitchType) {
		b.skip(rec.GameID, id, ix.pitchType.name, pitch.PitchType)
	}
	if !ix.chargeType.insert(id, pitch.ChargeType) {
		b.skip(rec.GameID, id, ix.chargeType.name, pitch.ChargeType)
	}
	if !ix.inStrikezone.insert(id, pitch.InStrikezone) {
		b.skip(rec.GameID, id, ix.inStrikezone.name, pitch.InStrikezone)
	}
	if !ix.swingType.insert(id, pitch.TypeOfSwing) {
		b.skip(rec.GameID, id, ix.swingType.name, pitch.TypeOfSwing)
	}
	if pitch.StarPitch == 1 {
		ix.starPitch.Add(id)
	}
	ix.strikezonePos.insert(id, pitch.PositionStrikezone)

	contact, ok := v.Contact()
	if !ok {
		return nil
	}

	if !ix.contactType.insert(id, contact.TypeOfContact) {
		b.skip(rec.GameID, id, ix.contactType.name, contact.TypeOfContact)
	}
	if !ix.inputDirection.insert(id, contact.InputStick) {
		b.skip(rec.GameID, id, ix.inputDirection.name, contact.InputStick)
	}
	if !ix.contactFrame.insert(id, contact.Frame.Int()) {
		b.skip(rec.GameID, id, ix.contactFrame.name, contact.Frame.Int())
	}
	if contact.StarSwingFiveStar == 1 {
		ix.fiveStarDinger.Add(id)
	}
	ix.contactPosX.insert(id, contact.BallContactPosX)

	fielder, ok := v.FirstFielder()
	if !ok {
		return nil
	}

	ix.roles(fielder.Character).Fielding.Add(id)
	if !ix.fielderPos.insert(id, fielder.Position) {
		b.skip(rec.GameID, id, ix.fielderPos.name, fielder.Position)
	}
	if fielder.Bobble != "None" {
		ix.bobble.Add(id)
	}
	if fielder.Bobble == "Fireball" {
		ix.fireballBurn.Add(id)
	}
	if fielder.Action == "Sliding" {
		ix.slidingCatch.Add(id)
	}
	if fielder.Action == "Walljump" {
		ix.wallJump.Add(id)
	}
	if fielder.ManualSelected != "No Selected Char" {
		ix.manualSelection.Add(id)
	}
	return nil
}

// roles returns (creating on first use) the participation buckets for a
// character name. Fielder identities occasionally fall outside the seeded
// rosters in old files; they still get indexed.
func (ix *Index) roles(name string) *roleSets {
	rs, ok := ix.participation[name]
	if !ok {
		rs = newRoleSets()
		ix.participation[name] = rs
	}
	return rs
}
