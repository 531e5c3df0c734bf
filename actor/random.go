package actor

import (
	"math/rand/v2"

	"riichi/action"
	"riichi/stage"
	"riichi/tile"
)

// RandomDiscard is the trivial built-in reference policy: on its own turn
// it discards a uniformly random tile from hand, and otherwise (call
// decisions) always passes. It seeds a fixed PRNG from its config string
// so test runs stay deterministic.
type RandomDiscard struct {
	cfg  Config
	seat stage.Seat
	rng  *rand.Rand
}

func NewRandomDiscard(cfg Config) *RandomDiscard {
	seed := uint64(0)
	if len(cfg.Args) > 0 {
		for _, c := range cfg.Args[0] {
			seed = seed*31 + uint64(c)
		}
	}
	return &RandomDiscard{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (a *RandomDiscard) Init(seat stage.Seat) { a.seat = seat }

func (a *RandomDiscard) Config() Config { return a.cfg }

func (a *RandomDiscard) Clone() Actor {
	return &RandomDiscard{cfg: a.cfg, rng: rand.New(rand.NewPCG(0, 0x9e3779b97f4a7c15))}
}

// SelectAction picks Discard(random tile) whenever a Discard option is
// offered (i.e. it is this actor's turn); for any other decision point
// (call reactions) it always passes.
func (a *RandomDiscard) SelectAction(_ *stage.Stage, _ stage.Seat, acts []action.Action) action.Action {
	for _, act := range acts {
		if act.Type == action.Discard && len(act.Tiles) > 0 {
			choice := act.Tiles[a.rng.IntN(len(act.Tiles))]
			return action.Action{Type: action.Discard, Tiles: []tile.Tile{choice}}
		}
	}
	return action.Action{Type: action.Nop}
}
