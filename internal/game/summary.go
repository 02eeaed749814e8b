package game

// TeamSummary is one side's line in a match summary.
type TeamSummary struct {
	Player     string   `json:"player"`
	Score      int      `json:"score"`
	Roster     []string `json:"roster"`
	Captain    string   `json:"captain,omitempty"`
	Hits       int      `json:"hits"`
	AtBats     int      `json:"at_bats"`
	Homeruns   int      `json:"homeruns"`
	Walks      int      `json:"walks"`
	Strikeouts int      `json:"strikeouts"`
	BattingAvg float64  `json:"batting_avg"`
	OBP        float64  `json:"obp"`
	SLG        float64  `json:"slg"`
	OPS        float64  `json:"ops"`
	ERA        float64  `json:"era"`
}

// Summary condenses a match record into the box-score shape the query
// service and archive hand out. It carries no per-event data.
type Summary struct {
	GameID        string      `json:"game_id"`
	Version       string      `json:"version"`
	Stadium       string      `json:"stadium"`
	DateStart     string      `json:"date_start"`
	DateEnd       string      `json:"date_end"`
	InningsPlayed int         `json:"innings_played"`
	Events        int         `json:"events"`
	WinningTeam   int         `json:"winning_team"`
	Mercy         bool        `json:"mercy"`
	Quit          bool        `json:"quit"`
	Superstar     bool        `json:"superstar"`
	Away          TeamSummary `json:"away"`
	Home          TeamSummary `json:"home"`
}

// BuildSummary computes the box score for a match.
func BuildSummary(rec *GameRecord) (*Summary, error) {
	away, err := teamSummary(rec, TeamAway)
	if err != nil {
		return nil, err
	}
	home, err := teamSummary(rec, TeamHome)
	if err != nil {
		return nil, err
	}
	return &Summary{
		GameID:        rec.GameID,
		Version:       rec.Version(),
		Stadium:       rec.Stadium(),
		DateStart:     rec.DateStart,
		DateEnd:       rec.DateEnd,
		InningsPlayed: rec.InningsPlayed,
		Events:        rec.NumEvents(),
		WinningTeam:   rec.WinningTeam(),
		Mercy:         rec.IsMercy(),
		Quit:          rec.WasQuit(),
		Superstar:     rec.IsSuperstarGame(),
		Away:          *away,
		Home:          *home,
	}, nil
}

func teamSummary(rec *GameRecord, team int) (*TeamSummary, error) {
	ts := &TeamSummary{}
	var err error
	if ts.Player, err = rec.Player(team); err != nil {
		return nil, err
	}
	if ts.Score, err = rec.Score(team); err != nil {
		return nil, err
	}
	if ts.Roster, err = rec.RosterNames(team); err != nil {
		return nil, err
	}
	if ts.Captain, err = rec.Captain(team); err != nil {
		return nil, err
	}
	if ts.Hits, err = rec.Hits(team, AllSlots); err != nil {
		return nil, err
	}
	if ts.AtBats, err = rec.AtBats(team, AllSlots); err != nil {
		return nil, err
	}
	if ts.Homeruns, err = rec.Homeruns(team, AllSlots); err != nil {
		return nil, err
	}
	if ts.Walks, err = rec.Walks(team, AllSlots); err != nil {
		return nil, err
	}
	if ts.Strikeouts, err = rec.Strikeouts(team, AllSlots); err != nil {
		return nil, err
	}
	if ts.BattingAvg, err = rec.BattingAvg(team, AllSlots); err != nil {
		return nil, err
	}
	if ts.OBP, err = rec.OBP(team, AllSlots); err != nil {
		return nil, err
	}
	if ts.SLG, err = rec.SLG(team, AllSlots); err != nil {
		return nil, err
	}
	if ts.OPS, err = rec.OPS(team, AllSlots); err != nil {
		return nil, err
	}
	if ts.ERA, err = rec.ERA(team, AllSlots); err != nil {
		return nil, err
	}
	return ts, nil
}
