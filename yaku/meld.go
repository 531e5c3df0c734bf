// Package yaku implements the hand evaluator: winning-shape decomposition,
// yaku/yakuman detection, fu/fan computation, and the points lookup tables.
package yaku

import "riichi/tile"

// MeldKind mirrors stage.MeldType without importing package stage, keeping
// yaku's dependency graph a leaf (tile only).
type MeldKind int

const (
	Chi MeldKind = iota
	Pon
	Minkan
	Kakan
	Ankan
)

// Meld is the caller-facing view of a called or concealed set: enough to
// score it without needing the full stage.Meld (donor seats, step index).
type Meld struct {
	Kind  MeldKind
	Tiles []tile.Tile // 3 tiles for Chi/Pon, 4 for the kan variants
}

func (m Meld) IsKan() bool { return m.Kind == Minkan || m.Kind == Kakan || m.Kind == Ankan }

func (m Meld) IsClosed() bool { return m.Kind == Ankan }

// IsOpen reports whether this meld came from calling another player's
// discard (disqualifies menzen / pinfu / most "closed-only" yaku handan).
func (m Meld) IsOpen() bool { return !m.IsClosed() }

func (m Meld) baseTile() tile.Tile { return m.Tiles[0].ToNormal() }
