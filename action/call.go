package action

import (
	"riichi/stage"
	"riichi/tile"
	"riichi/yaku"
)

// CallActions enumerates the legal reactions available to seat to the most
// recent discard or kakan. It returns nil if seat has nothing to react to
// (including reacting to its own discard).
func (e *Engine) CallActions(s *stage.Stage, seat stage.Seat) []Action {
	if s.LastTile == nil || s.LastTile.Seat == seat {
		return nil
	}
	switch s.LastTile.Op {
	case stage.LastKakan:
		return e.chankanActions(s, seat)
	case stage.LastAnkan:
		// A concealed kan cannot be robbed; only a kakan arms chankan, so
		// no other seat has any reaction to offer.
		return nil
	default:
		return e.discardCallActions(s, seat)
	}
}

func (e *Engine) discardCallActions(s *stage.Stage, seat stage.Seat) []Action {
	discarder := s.LastTile.Seat
	called := s.LastTile.Tile
	p := &s.Players[seat]

	var out []Action

	if e.canRon(s, seat, called, false) {
		out = append(out, Action{Type: Ron, Tiles: []tile.Tile{called}})
	}

	if p.RiichiStep != nil {
		// A riichi hand is locked: no chi/pon/minkan, ever (the one kan a
		// riichi player may still declare is a wait-preserving ankan on
		// their own draw, which is a turn action, not a call).
		return out
	}

	n := called.ToNormal()
	if p.Hand.Count(n.Suit, int(n.Rank)) >= 2 {
		out = append(out, ponCombinations(&p.Hand, n)...)
	}
	if !n.IsHonor() && p.Hand.Count(n.Suit, int(n.Rank)) >= 3 {
		out = append(out, Action{Type: Minkan, Tiles: minkanTiles(&p.Hand, n)})
	}

	if seat == discarder.Next() && n.IsSuit() {
		out = append(out, e.chiCombinations(p, n)...)
	}

	return out
}

func (e *Engine) chankanActions(s *stage.Stage, seat stage.Seat) []Action {
	called := s.LastTile.Tile
	if e.canRon(s, seat, called, true) {
		return []Action{{Type: Ron, Tiles: []tile.Tile{called}}}
	}
	return nil
}

// canRon checks Ron legality: a valid winning hand on called (with at
// least one yaku), and not furiten. isChankan relaxes nothing about
// furiten; robbing a kan is still blocked by furiten like any other ron.
func (e *Engine) canRon(s *stage.Stage, seat stage.Seat, called tile.Tile, isChankan bool) bool {
	p := &s.Players[seat]
	waits := e.shanten.WinningTiles(p.Hand, fixedMeldCount(p))
	s.RecomputeFuriten(seat, waits)
	if p.IsFuriten {
		return false
	}
	hasWait := false
	cn := called.ToNormal()
	for _, w := range waits {
		if w.ToNormal() == cn {
			hasWait = true
			break
		}
	}
	if !hasWait {
		return false
	}

	melds := fixedMeldsOf(p)
	flags := yaku.Flags{
		Riichi:  p.RiichiStep != nil,
		Ippatsu: p.IppatsuEligible,
		Houtei:  s.WallRemaining == 0 && !isChankan,
		Chankan: isChankan,
	}
	sw := seatWindRank(s.Bakaze, s.Kyoku, seat)
	wc, err := yaku.Evaluate(p.Hand, melds, s.Doras, s.UraDoras, called, false, seat == s.Kyoku, tile.East+s.Bakaze, sw, flags)
	if err != nil {
		return false
	}
	return e.winPermitted(p, wc)
}

// winPermitted applies the kuitan rule: with kuitan disabled, an open hand
// whose only yaku is tanyao has no valid win.
func (e *Engine) winPermitted(p *stage.Player, wc *yaku.WinContext) bool {
	if e.rules.KuitanAllowed || isMenzen(p) || wc.YakumanTimes > 0 {
		return true
	}
	for _, y := range wc.Yakus {
		if y.Name != "tanyao" {
			return true
		}
	}
	return false
}

// WinningTiles exposes the seat's current wait set (the shanten analyzer's
// winning-tile enumeration over the seat's concealed hand) without
// recomputing furiten, for callers that only need to know what a seat is
// waiting on, e.g. the Controller's exhaustive-draw tenpai payments and
// its declined-call furiten bookkeeping.
func (e *Engine) WinningTiles(s *stage.Stage, seat stage.Seat) []tile.Tile {
	p := &s.Players[seat]
	return e.shanten.WinningTiles(p.Hand, fixedMeldCount(p))
}

// heldVariants lists the physical representations of (suit, rank) the hand
// actually holds: for a suited five the red and the normal tile are
// distinct consumables, everything else has exactly one form.
func heldVariants(h *tile.Table, s tile.Suit, rank int) []tile.Tile {
	var out []tile.Tile
	normals := h.Count(s, rank)
	if rank == 5 && s != tile.Honor && h.HasRedFive(s) {
		normals--
		out = append(out, tile.RedFive(s))
	}
	if normals > 0 {
		out = append(out, tile.New(s, rank))
	}
	return out
}

// ponCombinations enumerates the consumable pairs for a pon on n. For a
// suited five this can be two actions (two normal fives, or red plus
// normal), and the red-bearing variant names the red tile so the reducer
// removes the copy the caller actually holds.
func ponCombinations(h *tile.Table, n tile.Tile) []Action {
	if !(n.IsSuit() && n.Rank == 5) {
		return []Action{{Type: Pon, Tiles: []tile.Tile{n, n}}}
	}
	normals := h.Count(n.Suit, 5)
	red := h.HasRedFive(n.Suit)
	if red {
		normals--
	}
	var out []Action
	if normals >= 2 {
		out = append(out, Action{Type: Pon, Tiles: []tile.Tile{tile.New(n.Suit, 5), tile.New(n.Suit, 5)}})
	}
	if red && normals >= 1 {
		out = append(out, Action{Type: Pon, Tiles: []tile.Tile{tile.RedFive(n.Suit), tile.New(n.Suit, 5)}})
	}
	return out
}

// minkanTiles consumes all three held copies, so the red five (when held)
// is always among them.
func minkanTiles(h *tile.Table, n tile.Tile) []tile.Tile {
	out := make([]tile.Tile, 0, 3)
	if n.IsSuit() && n.Rank == 5 && h.HasRedFive(n.Suit) {
		out = append(out, tile.RedFive(n.Suit))
	}
	for len(out) < 3 {
		out = append(out, n)
	}
	return out
}

// chiCombinations enumerates every run the called tile n can complete from
// p's concealed hand: n-2,n-1 / n-1,n+1 / n+1,n+2, each offered once per
// held representation of the partner tiles (a held red five yields its own
// variant alongside a held normal five).
func (e *Engine) chiCombinations(p *stage.Player, n tile.Tile) []Action {
	var out []Action
	rank := int(n.Rank)
	suit := n.Suit
	try := func(a, b int) {
		if a < 1 || b > 9 {
			return
		}
		for _, ta := range heldVariants(&p.Hand, suit, a) {
			for _, tb := range heldVariants(&p.Hand, suit, b) {
				out = append(out, Action{Type: Chi, Tiles: []tile.Tile{ta, tb}})
			}
		}
	}
	try(rank-2, rank-1)
	try(rank-1, rank+1)
	try(rank+1, rank+2)
	return out
}

// KuikaeForbidden returns the discards forbidden immediately after a chi
// call: the tile identical to the one just called, and, for an open-ended
// (ryanmen) chi, the tile on the opposite end that would complete the same
// run shape.
func KuikaeForbidden(called tile.Tile, consumed []tile.Tile) []tile.Tile {
	n := called.ToNormal()
	out := []tile.Tile{n}
	if len(consumed) != 2 {
		return out
	}
	a, b := int(consumed[0].Rank), int(consumed[1].Rank)
	if a > b {
		a, b = b, a
	}
	r := int(n.Rank)
	switch {
	case r == a-1: // called the low end: a,b = r+1,r+2
		// swap-calling: forbidden other end is r+3
		if b+1 <= 9 {
			out = append(out, tile.New(n.Suit, b+1))
		}
	case r == b+1: // called the high end: a,b = r-2,r-1
		if a-1 >= 1 {
			out = append(out, tile.New(n.Suit, a-1))
		}
	}
	return out
}
