// Package stage implements the canonical table representation and the
// deterministic event reducer: wall, hands, discards, melds, doras, turn
// state, and per-tile provenance, updated by a fixed alphabet of events
// through the single mutator Apply.
package stage

import "riichi/tile"

// Seat identifies one of the four players, 0..3, counterclockwise.
type Seat int

const NumSeats = 4

// Next returns the seat counterclockwise from s.
func (s Seat) Next() Seat { return (s + 1) % NumSeats }

// MeldType enumerates the five call/kan shapes.
type MeldType int

const (
	Chi MeldType = iota
	Pon
	Minkan
	Kakan
	Ankan
)

func (m MeldType) String() string {
	switch m {
	case Chi:
		return "chi"
	case Pon:
		return "pon"
	case Minkan:
		return "minkan"
	case Kakan:
		return "kakan"
	case Ankan:
		return "ankan"
	default:
		return "?"
	}
}

// Meld is a called or concealed set of 3 (chi/pon) or 4 (kan) tiles.
type Meld struct {
	Type    MeldType
	Owner   Seat
	Tiles   []tile.Tile
	Donors  []Seat // parallel to Tiles; donor[i] == Owner for self-drawn tiles
	AtStep  int    // declaration step index, for ippatsu/ordering
	PonMeld *Meld  // for Kakan, a copy of the Pon record it promoted (informational)
}

// Discard records one river tile and the circumstances of its discard.
type Discard struct {
	Tile       tile.Tile
	Tsumogiri  bool // discarded the tile just drawn, without looking at hand
	IsRiichi   bool // this discard declared riichi
	CalledAway bool // taken by a chi/pon/kan and no longer "in the river" for wall purposes
}

// Player is one seat's complete, mutable state.
type Player struct {
	Seat            Seat
	Score           int
	Hand            tile.Table
	Drawn           *tile.Tile
	Melds           []Meld
	Discards        []Discard
	RiichiStep      *int // event step at which riichi was declared, nil if not riichi
	IsDoubleRiichi  bool
	IppatsuEligible bool // true for one uninterrupted go-around after riichi
	IsTenpai        bool
	IsFuriten       bool
	IsNagashiOK     bool // all own discards still uncalled and not a terminal/honor exception broken
	KitaCount       int

	// furitenWaits is the union, across the round, of every tile this player
	// has ever discarded plus every winning tile passed on while tenpai.
	// It is intersected against the current wait set to derive IsFuriten.
	furitenWaits map[tile.Tile]bool
}

func newPlayer(seat Seat, score int) Player {
	return Player{Seat: seat, Score: score, IsNagashiOK: true, furitenWaits: make(map[tile.Tile]bool)}
}

// HandSize returns count(hand)+3*|melds|+(drawn?1:0), which must be 13 or
// 14 at every quiescent point.
func (p *Player) HandSize() int {
	n := p.Hand.Size() + 3*len(p.Melds)
	if p.Drawn != nil {
		n++
	}
	return n
}

// TileStateKind tags a physical tile's provenance.
type TileStateKind int

const (
	StateUnknown TileStateKind = iota
	StateHand
	StateMeld
	StateKita
	StateDiscard
	StateDora
)

// TileState is the provenance of one physical tile copy.
type TileState struct {
	Kind  TileStateKind
	Seat  Seat // meaningful for Hand/Meld/Kita/Discard
	Index int  // meld index or discard index, meaningful for Meld/Discard
}

// LastOp tags what kind of event produced Stage.LastTile.
type LastOp int

const (
	LastDiscard LastOp = iota
	LastKakan
	LastAnkan
)

// LastTileInfo records the most recent discard/kakan/ankan tile, the basis
// for Ron/Chankan eligibility on the very next action-engine query.
type LastTileInfo struct {
	Seat Seat
	Op   LastOp
	Tile tile.Tile
}

// DrawType enumerates the ways a round can end without a win.
type DrawType int

const (
	DrawExhaustive DrawType = iota
	DrawKyushukyuhai
	DrawSuuchaRiichi
	DrawSuufonRenda
	DrawSuukaikan
	DrawSanchaho
)

// Stage is the canonical, deterministic table state. It is exclusively
// owned and mutated by Apply; everything else sees it read-only.
type Stage struct {
	Bakaze   int // 0=East .. 3=North
	Kyoku    Seat
	Honba    int
	Kyoutaku int

	Turn Seat
	Step int // monotone event counter

	WallRemaining int
	Doras         []tile.Tile // indicator tiles, in declaration order
	UraDoras      []tile.Tile

	LastTile   *LastTileInfo
	LastRiichi *Seat

	Players [NumSeats]Player

	// TileStates indexes [suit][rank][copy] where copy 0..3 for a normal
	// rank; for rank 5 copy 0 is the red five and copies 1..3 are the three
	// normal fives (four physical tiles total, matching tile.Table's slot[5]
	// count and slot[0] red flag). A normal five takes copy 0 only once
	// copies 1..3 are used, as in a game without red fives.
	TileStates [4][10][4]TileState

	Ended bool
}

// New constructs a zero Stage; Apply(EventNew) populates it for a round.
func New() *Stage {
	s := &Stage{}
	for seat := Seat(0); seat < NumSeats; seat++ {
		s.Players[seat] = newPlayer(seat, 0)
	}
	for suit := 0; suit < 4; suit++ {
		hi := 9
		if suit == 3 {
			hi = 7
		}
		for rank := 1; rank <= hi; rank++ {
			for copy := 0; copy < 4; copy++ {
				s.TileStates[suit][rank][copy] = TileState{Kind: StateUnknown}
			}
		}
	}
	return s
}

// totalPhysicalTiles is 136 for the four-player game (34 kinds * 4).
const totalPhysicalTiles = 136

// deadWallTiles is the standard 14-tile dead wall (dora/ura indicator
// stacks plus the four kan replacement tiles), never drawable.
const deadWallTiles = 14

// CountTileStates returns how many physical tiles are in each provenance
// bucket, for the conservation invariant.
func (s *Stage) CountTileStates() map[TileStateKind]int {
	out := make(map[TileStateKind]int, 6)
	for suit := 0; suit < 4; suit++ {
		hi := 9
		if suit == 3 {
			hi = 7
		}
		for rank := 1; rank <= hi; rank++ {
			for copy := 0; copy < 4; copy++ {
				out[s.TileStates[suit][rank][copy].Kind]++
			}
		}
	}
	return out
}
