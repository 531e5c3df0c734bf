package action

import (
	"riichi/stage"
	"riichi/tile"
	"riichi/yaku"
)

// TurnActions enumerates the legal actions for seat immediately after a
// Deal. anyCallsYet lets the caller (the Controller, which tracks call
// history across the round) gate Kyushukyuhai without the action engine
// needing its own copy of that history.
// Note: a seat can owe a discard either because it just drew (p.Drawn set)
// or because it just claimed a pon/chi/minkan off another seat's discard
// (p.Drawn nil, but stage.Apply already moved Stage.Turn to this seat) — the
// reducer never synthesizes a draw for a call, so Discard/Ankan/Kakan must
// not be gated on p.Drawn being set. Only Tsumo/Riichi/Kyushukyuhai, which
// require an actual just-drawn tile, are gated on it.
func (e *Engine) TurnActions(s *stage.Stage, seat stage.Seat, anyCallsYet bool) []Action {
	p := &s.Players[seat]

	var out []Action
	if p.RiichiStep != nil && p.Drawn != nil {
		// Riichi locks the hand: the only legal discard is the drawn tile.
		out = append(out, Action{Type: Discard, Tiles: []tile.Tile{*p.Drawn}})
	} else {
		out = append(out, Action{Type: Discard, Tiles: filterKuikae(s, p, discardCandidates(p))})
	}

	if p.Drawn != nil {
		drawn := *p.Drawn
		if wc := e.evaluateTurnWin(s, seat, drawn); wc != nil && e.winPermitted(p, wc) {
			out = append(out, Action{Type: Tsumo, Tiles: []tile.Tile{drawn}})
		}
		if e.canDeclareRiichi(s, seat) {
			out = append(out, Action{Type: Riichi, Tiles: riichiCandidates(s, e, p)})
		}
		if !anyCallsYet && len(p.Discards) == 0 && kyushukyuhaiEligible(p) {
			out = append(out, Action{Type: Kyushukyuhai})
		}
	}

	out = append(out, e.ankanCandidates(s, seat)...)
	out = append(out, e.kakanCandidates(s, seat)...)

	return out
}

// filterKuikae drops swap-calling discards when the seat's most recently
// declared meld is the chi it just claimed this very step, the only point
// at which kuikae applies.
func filterKuikae(s *stage.Stage, p *stage.Player, candidates []tile.Tile) []tile.Tile {
	if len(p.Melds) == 0 {
		return candidates
	}
	last := p.Melds[len(p.Melds)-1]
	if last.Type != stage.Chi || last.AtStep != s.Step {
		return candidates
	}
	called := last.Tiles[0] // applyCalledMeld always places the called tile first
	consumed := last.Tiles[1:]
	forbidden := map[tile.Tile]bool{}
	for _, t := range KuikaeForbidden(called, consumed) {
		forbidden[t] = true
	}
	out := make([]tile.Tile, 0, len(candidates))
	for _, t := range candidates {
		if !forbidden[t.ToNormal()] {
			out = append(out, t)
		}
	}
	return out
}

func discardCandidates(p *stage.Player) []tile.Tile {
	seen := map[tile.Tile]bool{}
	var out []tile.Tile
	full := p.Hand
	if p.Drawn != nil {
		full.Add(*p.Drawn)
	}
	for _, t := range full.Tiles() {
		n := t.ToNormal()
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, t)
	}
	return out
}

func (e *Engine) evaluateTurnWin(s *stage.Stage, seat stage.Seat, winTile tile.Tile) *yaku.WinContext {
	p := &s.Players[seat]
	concealed := p.Hand // Drawn already excluded; winTile passed separately
	melds := fixedMeldsOf(p)

	flags := yaku.Flags{
		Riichi:  p.RiichiStep != nil,
		Ippatsu: p.IppatsuEligible,
		Haitei:  s.WallRemaining == 0,
	}
	sw := seatWindRank(s.Bakaze, s.Kyoku, seat)
	wc, err := yaku.Evaluate(concealed, melds, s.Doras, s.UraDoras, winTile, true, seat == s.Kyoku, tile.East+s.Bakaze, sw, flags)
	if err != nil {
		return nil
	}
	return wc
}

func (e *Engine) canDeclareRiichi(s *stage.Stage, seat stage.Seat) bool {
	p := &s.Players[seat]
	if p.RiichiStep != nil || !isMenzen(p) {
		return false
	}
	if p.Score < 1000 || s.WallRemaining < 4 {
		return false
	}
	return len(riichiCandidates(s, e, p)) > 0
}

// riichiCandidates returns, among the tiles that could be discarded, those
// that leave the 13-tile hand tenpai.
func riichiCandidates(s *stage.Stage, e *Engine, p *stage.Player) []tile.Tile {
	var out []tile.Tile
	seen := map[tile.Tile]bool{}
	full := p.Hand
	if p.Drawn != nil {
		full.Add(*p.Drawn)
	}
	melds := fixedMeldCount(p)
	for _, t := range full.Tiles() {
		n := t.ToNormal()
		if seen[n] {
			continue
		}
		seen[n] = true
		work := full
		work.Remove(t)
		if e.shanten.Of(work, melds) == 0 {
			out = append(out, t)
		}
	}
	return out
}

func (e *Engine) ankanCandidates(s *stage.Stage, seat stage.Seat) []Action {
	p := &s.Players[seat]
	full := p.Hand
	if p.Drawn != nil {
		full.Add(*p.Drawn)
	}
	var out []Action
	for suit := tile.Man; suit <= tile.Honor; suit++ {
		hi := 9
		if suit == tile.Honor {
			hi = 7
		}
		for r := 1; r <= hi; r++ {
			if full.Count(suit, r) == 4 {
				if p.RiichiStep != nil && !ankanPreservesWait(e, p, suit, r) {
					continue
				}
				out = append(out, Action{Type: Ankan, Tiles: fourOf(suit, r)})
			}
		}
	}
	return out
}

func fourOf(s tile.Suit, rank int) []tile.Tile {
	out := make([]tile.Tile, 0, 4)
	if rank == 5 && s != tile.Honor {
		out = append(out, tile.RedFive(s))
		for i := 0; i < 3; i++ {
			out = append(out, tile.New(s, 5))
		}
		return out
	}
	for i := 0; i < 4; i++ {
		out = append(out, tile.New(s, rank))
	}
	return out
}

// ankanPreservesWait forbids a riichi ankan that would change the player's
// wait.
func ankanPreservesWait(e *Engine, p *stage.Player, s tile.Suit, rank int) bool {
	before := e.shanten.WinningTiles(p.Hand, fixedMeldCount(p))
	work := p.Hand
	for _, t := range fourOf(s, rank) {
		work.Remove(t)
	}
	after := e.shanten.WinningTiles(work, fixedMeldCount(p)+1)
	if len(before) != len(after) {
		return false
	}
	set := map[tile.Tile]bool{}
	for _, t := range before {
		set[t.ToNormal()] = true
	}
	for _, t := range after {
		if !set[t.ToNormal()] {
			return false
		}
	}
	return true
}

func (e *Engine) kakanCandidates(s *stage.Stage, seat stage.Seat) []Action {
	p := &s.Players[seat]
	var out []Action
	for i := range p.Melds {
		if p.Melds[i].Type != stage.Pon {
			continue
		}
		base := p.Melds[i].Tiles[0].ToNormal()
		if p.Drawn != nil && p.Drawn.ToNormal() == base {
			out = append(out, Action{Type: Kakan, Tiles: []tile.Tile{*p.Drawn}})
		} else if p.Hand.Has(base) {
			out = append(out, Action{Type: Kakan, Tiles: []tile.Tile{base}})
		} else if p.Hand.Has(tile.RedFive(base.Suit)) && base.Rank == 5 {
			out = append(out, Action{Type: Kakan, Tiles: []tile.Tile{tile.RedFive(base.Suit)}})
		}
	}
	return out
}

func kyushukyuhaiEligible(p *stage.Player) bool {
	full := p.Hand
	if p.Drawn != nil {
		full.Add(*p.Drawn)
	}
	distinct := map[tile.Tile]bool{}
	for _, t := range full.Tiles() {
		if t.IsTerminalOrHonor() {
			distinct[t.ToNormal()] = true
		}
	}
	return len(distinct) >= 9
}
