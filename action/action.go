// Package action implements the legal-action engine: turn actions for the
// seat whose turn it is, call actions for the other three after a
// discard/kakan, priority resolution (ron > minkan/pon > chi, atamahane
// ordering), furiten, riichi-lock, and kuikae.
package action

import (
	"riichi/config"
	"riichi/shanten"
	"riichi/stage"
	"riichi/tile"
	"riichi/yaku"
)

// Type enumerates every action the engine can offer.
type Type int

const (
	Nop Type = iota
	Discard
	Ankan
	Kakan
	Riichi
	Tsumo
	Kyushukyuhai
	Kita
	Chi
	Pon
	Minkan
	Ron
)

func (t Type) String() string {
	switch t {
	case Nop:
		return "nop"
	case Discard:
		return "discard"
	case Ankan:
		return "ankan"
	case Kakan:
		return "kakan"
	case Riichi:
		return "riichi"
	case Tsumo:
		return "tsumo"
	case Kyushukyuhai:
		return "kyushukyuhai"
	case Kita:
		return "kita"
	case Chi:
		return "chi"
	case Pon:
		return "pon"
	case Minkan:
		return "minkan"
	case Ron:
		return "ron"
	default:
		return "?"
	}
}

// Action is (Type, consumed/target tiles): for calls/kans the tiles are
// those consumed from the actor's own hand; for Discard/Riichi it is the
// tile to discard.
type Action struct {
	Type  Type
	Tiles []tile.Tile
}

// Engine derives legal action sets from a Stage. It owns a shanten.Analyzer
// for its memoization cache, so callers should keep one Engine per
// long-lived game rather than constructing one per query.
type Engine struct {
	shanten *shanten.Analyzer
	rules   config.Rules
}

func NewEngine(rules config.Rules) *Engine {
	return &Engine{shanten: shanten.NewAnalyzer(), rules: rules}
}

func seatWindRank(bakaze int, kyoku, seat stage.Seat) int {
	offset := int(seat-kyoku+stage.NumSeats) % stage.NumSeats
	return tile.East + offset
}

func fixedMeldsOf(p *stage.Player) []yaku.Meld {
	out := make([]yaku.Meld, 0, len(p.Melds))
	for _, m := range p.Melds {
		var kind yaku.MeldKind
		switch m.Type {
		case stage.Chi:
			kind = yaku.Chi
		case stage.Pon:
			kind = yaku.Pon
		case stage.Minkan:
			kind = yaku.Minkan
		case stage.Kakan:
			kind = yaku.Kakan
		case stage.Ankan:
			kind = yaku.Ankan
		}
		out = append(out, yaku.Meld{Kind: kind, Tiles: m.Tiles})
	}
	return out
}

func fixedMeldCount(p *stage.Player) int { return len(p.Melds) }

func isMenzen(p *stage.Player) bool {
	for _, m := range p.Melds {
		if m.Type != stage.Ankan {
			return false
		}
	}
	return true
}
