package stage

import "riichi/tile"

// Event is the fixed alphabet of state transitions the Stage accepts. It is
// a tagged union: each concrete type below implements Event and Apply
// exhaustively switches over them.
type Event interface {
	eventKind() string
}

// EventBegin creates the game; must be the very first event applied to a
// fresh Stage.
type EventBegin struct{}

func (EventBegin) eventKind() string { return "Begin" }

// EventNew starts a round: resets per-round state, deals hands, reveals the
// first dora indicator.
type EventNew struct {
	Bakaze   int
	Kyoku    Seat
	Honba    int
	Kyoutaku int
	Doras    []tile.Tile // initial indicator(s), usually one
	Scores   [4]int
	Hands    [4][]tile.Tile // 13 tiles for each seat; the dealer may also be dealt 14
}

func (EventNew) eventKind() string { return "New" }

// EventDeal draws one tile for seat from the wall.
type EventDeal struct {
	Seat Seat
	Tile tile.Tile
}

func (EventDeal) eventKind() string { return "Deal" }

// EventDiscard discards a tile from seat's hand (or the just-drawn tile).
type EventDiscard struct {
	Seat     Seat
	Tile     tile.Tile
	IsDrawn  bool // true iff this is a tsumogiri of the just-drawn tile
	IsRiichi bool // true iff this discard is the riichi declaration tile
}

func (EventDiscard) eventKind() string { return "Discard" }

// EventMeld records a chi/pon/minkan/kakan/ankan declaration by Seat,
// consuming Consumed tiles from that seat's hand (for Kakan, the single
// added tile; for Ankan, all four).
type EventMeld struct {
	Seat     Seat
	Type     MeldType
	Consumed []tile.Tile
}

func (EventMeld) eventKind() string { return "Meld" }

// EventKita is the three-player north-tile set-aside call. Not exercised by
// the four-player core but included in the Event alphabet for completeness.
type EventKita struct {
	Seat    Seat
	IsDrawn bool
}

func (EventKita) eventKind() string { return "Kita" }

// EventDora reveals an additional dora indicator (from a kan).
type EventDora struct {
	Tile tile.Tile
}

func (EventDora) eventKind() string { return "Dora" }

// WinResult is one seat's outcome within an EventWin.
type WinResult struct {
	Seat         Seat
	DeltaScore   int
	Fu           int
	Fan          int
	YakumanTimes int
	Yaku         []string
}

// EventWin ends the round in one or more wins (multi-ron supported).
type EventWin struct {
	UraDoras []tile.Tile
	Results  []WinResult
}

func (EventWin) eventKind() string { return "Win" }

// EventDraw ends the round without a winner.
type EventDraw struct {
	Type        DrawType
	Hands       [4][]tile.Tile
	TenpaiFlags [4]bool
	DeltaScores [4]int
}

func (EventDraw) eventKind() string { return "Draw" }

// EventEnd terminates the game (no further New is expected).
type EventEnd struct{}

func (EventEnd) eventKind() string { return "End" }
