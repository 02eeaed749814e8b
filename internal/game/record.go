// Package game defines the decoded match record: an ordered sequence of
// events plus match metadata, exactly as produced by the stat-file decoder.
// Optional sub-records (runners, pitch, contact, first fielder) are pointer
// typed so that absence survives decoding and is never conflated with a
// zero value.
package game

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riolytics/matchsearch/internal/lookup"
)

// Team side selectors. Which JSON block ("Away"/"Home") a side maps to
// depends on the file's format version, see teamIndex.
const (
	TeamAway = 0
	TeamHome = 1
)

// RosterSize is the number of lineup slots per team.
const RosterSize = 9

// ConstructionError reports a record that violates a mandatory-field
// invariant. A record that produces one cannot be indexed.
type ConstructionError struct {
	Event int    // offending event id, -1 for record-level problems
	Field string // missing or malformed field
}

func (e *ConstructionError) Error() string {
	if e.Event < 0 {
		return fmt.Sprintf("malformed match record: %s", e.Field)
	}
	return fmt.Sprintf("malformed event %d: missing mandatory field %q", e.Event, e.Field)
}

// Runner is the sub-record for a runner on one base (or the batter).
type Runner struct {
	RosterLoc   int    `json:"Runner Roster Loc"`
	CharID      string `json:"Runner Char Id"`
	InitialBase int    `json:"Runner Initial Base"`
	OutType     string `json:"Out Type"`
	OutLocation int    `json:"Out Location"`
	Steal       string `json:"Steal"`
	ResultBase  int    `json:"Runner Result Base"`
}

// Stealing reports whether this runner attempted a steal on the event.
func (r *Runner) Stealing() bool {
	return r != nil && r.Steal != "" && r.Steal != "None"
}

// FirstFielder is the sub-record for the first fielder to touch the ball.
type FirstFielder struct {
	RosterLoc      int     `json:"Fielder Roster Location"`
	Position       string  `json:"Fielder Position"`
	Character      string  `json:"Fielder Character"`
	Action         string  `json:"Fielder Action"`
	Jump           string  `json:"Fielder Jump"`
	Swap           string  `json:"Fielder Swap"`
	ManualSelected string  `json:"Fielder Manual Selected"`
	PosX           float64 `json:"Fielder Position - X"`
	PosY           float64 `json:"Fielder Position - Y"`
	PosZ           float64 `json:"Fielder Position - Z"`
	Bobble         string  `json:"Fielder Bobble"`
}

// Contact is the sub-record present when the batter made contact.
type Contact struct {
	TypeOfContact     string        `json:"Type of Contact"`
	ChargePowerUp     float64       `json:"Charge Power Up"`
	ChargePowerDown   float64       `json:"Charge Power Down"`
	StarSwingFiveStar int           `json:"Star Swing Five-Star"`
	InputPushPull     string        `json:"Input Direction - Push/Pull"`
	InputStick        string        `json:"Input Direction - Stick"`
	Frame             FlexInt       `json:"Frame of Swing Upon Contact"`
	BallPower         FlexInt       `json:"Ball Power"`
	VertAngle         FlexInt       `json:"Vert Angle"`
	HorizAngle        FlexInt       `json:"Horiz Angle"`
	ContactAbsolute   float64       `json:"Contact Absolute"`
	ContactQuality    float64       `json:"Contact Quality"`
	RNG1              FlexInt       `json:"RNG1"`
	RNG2              FlexInt       `json:"RNG2"`
	RNG3              FlexInt       `json:"RNG3"`
	BallVelocityX     float64       `json:"Ball Velocity - X"`
	BallVelocityY     float64       `json:"Ball Velocity - Y"`
	BallVelocityZ     float64       `json:"Ball Velocity - Z"`
	BallContactPosX   float64       `json:"Ball Contact Pos - X"`
	BallContactPosZ   float64       `json:"Ball Contact Pos - Z"`
	BallLandingPosX   float64       `json:"Ball Landing Position - X"`
	BallLandingPosY   float64       `json:"Ball Landing Position - Y"`
	BallLandingPosZ   float64       `json:"Ball Landing Position - Z"`
	BallMaxHeight     float64       `json:"Ball Max Height"`
	BallHangTime      FlexInt       `json:"Ball Hang Time"`
	ResultPrimary     string        `json:"Contact Result - Primary"`
	ResultSecondary   string        `json:"Contact Result - Secondary"`
	FirstFielder      *FirstFielder `json:"First Fielder"`
}

// Pitch is the sub-record present on pitch events.
type Pitch struct {
	PitcherTeamID      int      `json:"Pitcher Team Id"`
	PitcherCharID      string   `json:"Pitcher Char Id"`
	PitchType          string   `json:"Pitch Type"`
	ChargeType         string   `json:"Charge Type"`
	StarPitch          int      `json:"Star Pitch"`
	PitchSpeed         int      `json:"Pitch Speed"`
	PositionStrikezone float64  `json:"Ball Position - Strikezone"`
	InStrikezone       int      `json:"In Strikezone"`
	BatContactPosX     float64  `json:"Bat Contact Pos - X"`
	BatContactPosZ     float64  `json:"Bat Contact Pos - Z"`
	DB                 int      `json:"DB"`
	TypeOfSwing        string   `json:"Type of Swing"`
	Contact            *Contact `json:"Contact"`
}

// Event is one decoded per-event entry. Mandatory scalar fields are pointer
// typed only so decoding can tell "absent" from "zero"; EventView validates
// them once and exposes plain values.
type Event struct {
	EventNum        *int    `json:"Event Num"`
	Inning          *int    `json:"Inning"`
	HalfInning      *int    `json:"Half Inning"`
	AwayScore       *int    `json:"Away Score"`
	HomeScore       *int    `json:"Home Score"`
	Balls           *int    `json:"Balls"`
	Strikes         *int    `json:"Strikes"`
	Outs            *int    `json:"Outs"`
	StarChance      *int    `json:"Star Chance"`
	AwayStars       *int    `json:"Away Stars"`
	HomeStars       *int    `json:"Home Stars"`
	PitcherStamina  *int    `json:"Pitcher Stamina"`
	ChemLinksOnBase *int    `json:"Chemistry Links on Base"`
	PitcherRoster   *int    `json:"Pitcher Roster Loc"`
	BatterRoster    *int    `json:"Batter Roster Loc"`
	CatcherRoster   *int    `json:"Catcher Roster Loc"`
	RBI             *int    `json:"RBI"`
	OutsDuringPlay  *int    `json:"Num Outs During Play"`
	ResultOfAB      *string `json:"Result of AB"`
	RunnerBatter    *Runner `json:"Runner Batter"`
	Runner1B        *Runner `json:"Runner 1B"`
	Runner2B        *Runner `json:"Runner 2B"`
	Runner3B        *Runner `json:"Runner 3B"`
	Pitch           *Pitch  `json:"Pitch"`
}

// OffensiveStats are the pre-summed batting counters for one character.
type OffensiveStats struct {
	AtBats          int `json:"At Bats"`
	Hits            int `json:"Hits"`
	Singles         int `json:"Singles"`
	Doubles         int `json:"Doubles"`
	Triples         int `json:"Triples"`
	Homeruns        int `json:"Homeruns"`
	SuccessfulBunts int `json:"Successful Bunts"`
	SacFlys         int `json:"Sac Flys"`
	Strikeouts      int `json:"Strikeouts"`
	WalksBB         int `json:"Walks (4 Balls)"`
	WalksHit        int `json:"Walks (Hit)"`
	RBI             int `json:"RBI"`
	BasesStolen     int `json:"Bases Stolen"`
	StarHits        int `json:"Star Hits"`
}

// DefensiveStats are the pre-summed pitching/fielding counters for one
// character.
type DefensiveStats struct {
	BattersFaced      int `json:"Batters Faced"`
	RunsAllowed       int `json:"Runs Allowed"`
	BattersWalked     int `json:"Batters Walked"`
	BattersHit        int `json:"Batters Hit"`
	HitsAllowed       int `json:"Hits Allowed"`
	HRsAllowed        int `json:"HRs Allowed"`
	PitchesThrown     int `json:"Pitches Thrown"`
	Stamina           int `json:"Stamina"`
	WasPitcher        int `json:"Was Pitcher"`
	Strikeouts        int `json:"Strikeouts"`
	StarPitchesThrown int `json:"Star Pitches Thrown"`
	BigPlays          int `json:"Big Plays"`
	OutsPitched       int `json:"Outs Pitched"`
}

// CharacterStats holds one roster slot's character and counters.
type CharacterStats struct {
	CharID       string         `json:"CharID"`
	Team         FlexInt        `json:"Team"`
	Captain      int            `json:"Captain"`
	Superstar    int            `json:"Superstar"`
	FieldingHand int            `json:"Fielding Hand"`
	BattingHand  int            `json:"Batting Hand"`
	Offense      OffensiveStats `json:"Offensive Stats"`
	Defense      DefensiveStats `json:"Defensive Stats"`
}

// GameRecord is one fully decoded match: ordered events plus match metadata.
// It is immutable once decoded; the index never mutates or copies it.
type GameRecord struct {
	GameID          string                    `json:"GameID"`
	TagSetID        FlexInt                   `json:"TagSetID"`
	DateStart       string                    `json:"Date - Start"`
	DateEnd         string                    `json:"Date - End"`
	RawVersion      string                    `json:"Version"`
	StadiumID       string                    `json:"StadiumID"`
	AwayPlayer      string                    `json:"Away Player"`
	HomePlayer      string                    `json:"Home Player"`
	AwayScore       int                       `json:"Away Score"`
	HomeScore       int                       `json:"Home Score"`
	InningsSelected int                       `json:"Innings Selected"`
	InningsPlayed   int                       `json:"Innings Played"`
	QuitterTeam     string                    `json:"Quitter Team"`
	AveragePing     int                       `json:"Average Ping"`
	LagSpikes       int                       `json:"Lag Spikes"`
	CharacterStats  map[string]CharacterStats `json:"Character Game Stats"`
	Events          []Event                   `json:"Events"`
}

// Decode reads one decoded stat file from r.
func Decode(r io.Reader) (*GameRecord, error) {
	var rec GameRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decoding match record: %w", err)
	}
	return &rec, nil
}

// DecodeBytes decodes one match record from a JSON byte slice.
func DecodeBytes(data []byte) (*GameRecord, error) {
	return Decode(strings.NewReader(string(data)))
}

// Load reads and decodes the file at path.
func Load(path string) (*GameRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening match file: %w", err)
	}
	defer f.Close()
	rec, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// dateLayout is the timestamp format written by the decoder.
const dateLayout = "Mon Jan 2 15:04:05 2006"

// StartTime parses the match start timestamp.
func (g *GameRecord) StartTime() (time.Time, error) {
	return time.Parse(dateLayout, g.DateStart)
}

// EndTime parses the match end timestamp.
func (g *GameRecord) EndTime() (time.Time, error) {
	return time.Parse(dateLayout, g.DateEnd)
}

// GameIDValue parses the hexadecimal game id (written with thousands
// separators in some files) into an integer.
func (g *GameRecord) GameIDValue() (int64, error) {
	cleaned := strings.ReplaceAll(g.GameID, ",", "")
	n, err := strconv.ParseInt(cleaned, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing game id %q: %w", g.GameID, err)
	}
	return n, nil
}

// GameMode returns the tag set the match was played under.
func (g *GameRecord) GameMode() int {
	return g.TagSetID.Int()
}

// Version returns the file format version, defaulting for files written
// before the version field existed.
func (g *GameRecord) Version() string {
	if g.RawVersion == "" {
		return "Pre 0.1.7"
	}
	return g.RawVersion
}

// Versions whose Away/Home JSON blocks are swapped relative to the side
// selectors used by callers.
var sidesFlippedVersions = map[string]bool{
	"Pre 0.1.7": true,
	"0.1.7a":    true,
	"0.1.8":     true,
	"0.1.9":     true,
	"1.9.1":     true,
}

// Versions that keyed the roster blocks "Team N Roster M" instead of
// "Away/Home Roster M".
var oldRosterKeyVersions = map[string]bool{
	"Pre 0.1.7": true,
	"0.1.7a":    true,
	"0.1.8":     true,
	"0.1.9":     true,
	"1.9.1":     true,
	"1.9.2":     true,
	"1.9.3":     true,
	"1.9.4":     true,
}

// Stadium names written by decoders older than the current one.
var legacyStadiumNames = map[string]string{
	"Bowser's Castle": "Bowser Castle",
	"Wario's Palace":  "Wario Palace",
	"Yoshi's Island":  "Yoshi Park",
	"Peach's Garden":  "Peach Garden",
	"DK's Jungle":     "DK Jungle",
}

func checkTeam(team int) error {
	if team != TeamAway && team != TeamHome {
		return fmt.Errorf("invalid team %d: accepted values are 0 (away) or 1 (home)", team)
	}
	return nil
}

func checkSlot(slot int) error {
	if slot < 0 || slot >= RosterSize {
		return fmt.Errorf("invalid roster slot %d: accepted values are 0 to %d", slot, RosterSize-1)
	}
	return nil
}

// teamIndex corrects the caller-facing side selector for format versions
// whose Away/Home blocks are swapped.
func (g *GameRecord) teamIndex(team int) (int, error) {
	if err := checkTeam(team); err != nil {
		return 0, err
	}
	if sidesFlippedVersions[g.Version()] {
		return 1 - team, nil
	}
	return team, nil
}

// Player returns the player name on the given side.
func (g *GameRecord) Player(team int) (string, error) {
	idx, err := g.teamIndex(team)
	if err != nil {
		return "", err
	}
	if idx == TeamAway {
		return g.AwayPlayer, nil
	}
	return g.HomePlayer, nil
}

// Score returns the final score of the given side.
func (g *GameRecord) Score(team int) (int, error) {
	idx, err := g.teamIndex(team)
	if err != nil {
		return 0, err
	}
	if idx == TeamAway {
		return g.AwayScore, nil
	}
	return g.HomeScore, nil
}

// WinningTeam returns 0 or 1 for the winner, or -1 for a tie.
func (g *GameRecord) WinningTeam() int {
	away, _ := g.Score(TeamAway)
	home, _ := g.Score(TeamHome)
	switch {
	case away > home:
		return TeamAway
	case home > away:
		return TeamHome
	default:
		return -1
	}
}

// IsMercy reports whether the match ended early on the mercy rule.
func (g *GameRecord) IsMercy() bool {
	away, _ := g.Score(TeamAway)
	home, _ := g.Score(TeamHome)
	diff := away - home
	if diff < 0 {
		diff = -diff
	}
	return g.InningsSelected-g.InningsPlayed >= 1 && diff > 10
}

// WasQuit reports whether a player quit before the match finished.
func (g *GameRecord) WasQuit() bool {
	return g.QuitterTeam != ""
}

// Stadium returns the stadium name, normalising legacy decoder spellings.
func (g *GameRecord) Stadium() string {
	if name, ok := legacyStadiumNames[g.StadiumID]; ok {
		return name
	}
	return g.StadiumID
}

// rosterKey builds the Character Game Stats key for a team/slot pair in
// whichever format this file's version uses.
func (g *GameRecord) rosterKey(team, slot int) string {
	if oldRosterKeyVersions[g.Version()] {
		return fmt.Sprintf("Team %d Roster %d", team, slot)
	}
	side := "Home"
	if team == TeamAway {
		side = "Away"
	}
	return fmt.Sprintf("%s Roster %d", side, slot)
}

// CharacterAt returns the stats block for the character at a roster slot.
func (g *GameRecord) CharacterAt(team, slot int) (*CharacterStats, error) {
	idx, err := g.teamIndex(team)
	if err != nil {
		return nil, err
	}
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	stats, ok := g.CharacterStats[g.rosterKey(idx, slot)]
	if !ok {
		return nil, &ConstructionError{Event: -1, Field: g.rosterKey(idx, slot)}
	}
	return &stats, nil
}

// CharacterNameAt resolves the character name at a roster slot through the
// lookup tables, so numeric ids in older files come back as names.
func (g *GameRecord) CharacterNameAt(team, slot int) (string, error) {
	stats, err := g.CharacterAt(team, slot)
	if err != nil {
		return "", err
	}
	return resolveCharName(stats.CharID), nil
}

// resolveCharName maps a CharID value to a display name. Most files store
// the name already; numeric ids are translated through the lookup table and
// anything unknown is passed through untouched.
func resolveCharName(id string) string {
	if code, err := strconv.Atoi(id); err == nil {
		if name, lerr := lookup.DefaultDomain().Characters.NameFor(code); lerr == nil {
			return name
		}
	}
	return id
}

// RosterNames returns the nine character names on one side, in slot order.
func (g *GameRecord) RosterNames(team int) ([]string, error) {
	names := make([]string, 0, RosterSize)
	for slot := 0; slot < RosterSize; slot++ {
		name, err := g.CharacterNameAt(team, slot)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// IsSuperstarGame reports whether any character in either roster is starred.
func (g *GameRecord) IsSuperstarGame() bool {
	for _, stats := range g.CharacterStats {
		if stats.Superstar == 1 {
			return true
		}
	}
	return false
}

// Captain returns the captain's character name on the given side, or ""
// if the rosters carry no captain flag.
func (g *GameRecord) Captain(team int) (string, error) {
	idx, err := g.teamIndex(team)
	if err != nil {
		return "", err
	}
	for _, stats := range g.CharacterStats {
		if stats.Captain == 1 && stats.Team.Int() == idx {
			return resolveCharName(stats.CharID), nil
		}
	}
	return "", nil
}

// BattingHand returns the batting handedness for a roster slot.
func (g *GameRecord) BattingHand(team, slot int) (int, error) {
	stats, err := g.CharacterAt(team, slot)
	if err != nil {
		return 0, err
	}
	return stats.BattingHand, nil
}

// FieldingHand returns the fielding handedness for a roster slot.
func (g *GameRecord) FieldingHand(team, slot int) (int, error) {
	stats, err := g.CharacterAt(team, slot)
	if err != nil {
		return 0, err
	}
	return stats.FieldingHand, nil
}

// NumEvents returns the number of events in the match.
func (g *GameRecord) NumEvents() int {
	return len(g.Events)
}

// FinalEvent returns the id of the last event, or -1 for an empty match.
func (g *GameRecord) FinalEvent() int {
	return len(g.Events) - 1
}

// Validate checks the record-level invariants the index relies on: events
// present and event numbers contiguous in occurrence order. Files written by
// old decoders overflowed the event counter at 256; both the plain position
// and the wrapped counter are accepted.
func (g *GameRecord) Validate() error {
	if len(g.Events) == 0 {
		return &ConstructionError{Event: -1, Field: "Events"}
	}
	for i := range g.Events {
		ev := &g.Events[i]
		if ev.EventNum == nil {
			continue // some early versions omitted the counter entirely
		}
		if *ev.EventNum != i && *ev.EventNum != i%256 {
			return &ConstructionError{
				Event: i,
				Field: fmt.Sprintf("Event Num (got %d, want %d)", *ev.EventNum, i),
			}
		}
	}
	return nil
}
