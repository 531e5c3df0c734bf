package stage

import (
	"fmt"

	"riichi/tile"
)

// Apply reduces one Event against Stage, mutating it in place. It is the
// sole public mutator: the Stage otherwise offers only read access.
//
// Illegal events (discarding a tile not in hand, claiming a tile nobody
// discarded, etc.) are driver/adapter bugs, not recoverable runtime
// conditions; they panic rather than return an error.
func Apply(s *Stage, e Event) {
	s.Step++
	switch ev := e.(type) {
	case EventBegin:
		// no-op: Stage is already fresh from New().
	case EventNew:
		applyNew(s, ev)
	case EventDeal:
		applyDeal(s, ev)
	case EventDiscard:
		applyDiscard(s, ev)
	case EventMeld:
		applyMeld(s, ev)
	case EventKita:
		applyKita(s, ev)
	case EventDora:
		applyDora(s, ev)
	case EventWin:
		applyWin(s, ev)
	case EventDraw:
		applyDraw(s, ev)
	case EventEnd:
		s.Ended = true
	default:
		panic(fmt.Sprintf("stage: unhandled event type %T", e))
	}
}

func tileSlot(t tile.Tile) (suit, rank int) {
	n := t.ToNormal()
	return int(n.Suit), int(n.Rank)
}

// copyScanOrder returns the order in which a non-red tile's physical copies
// are scanned (the red five is handled before either caller gets here). A
// normal suited five scans copies 1..3 first and reaches copy 0 last, so
// the red five's slot is only taken by a normal five in a game dealt
// without red fives. Honor rank 5, the White dragon, is an ordinary column.
func copyScanOrder(t tile.Tile) [4]int {
	if t.IsSuit() && t.ToNormal().Rank == 5 {
		return [4]int{1, 2, 3, 0}
	}
	return [4]int{0, 1, 2, 3}
}

// claimUnknownCopy finds one StateUnknown physical copy of t and assigns it
// kind/seat/index.
func (s *Stage) claimUnknownCopy(t tile.Tile, kind TileStateKind, seat Seat, index int) {
	suit, rank := tileSlot(t)
	if t.IsRedFive() {
		s.TileStates[suit][5][0] = TileState{Kind: kind, Seat: seat, Index: index}
		return
	}
	for _, c := range copyScanOrder(t) {
		if s.TileStates[suit][rank][c].Kind == StateUnknown {
			s.TileStates[suit][rank][c] = TileState{Kind: kind, Seat: seat, Index: index}
			return
		}
	}
	panic(fmt.Sprintf("stage: no unknown copy of %v left to claim", t))
}

// retagCopy moves whichever physical copy of t currently belongs to `from`
// into the new state. Used for hand->meld, hand->discard, meld->kakan.
func (s *Stage) retagCopy(t tile.Tile, from TileStateKind, fromSeat Seat, kind TileStateKind, seat Seat, index int) {
	suit, rank := tileSlot(t)
	if t.IsRedFive() {
		cur := s.TileStates[suit][5][0]
		if cur.Kind == from && cur.Seat == fromSeat {
			s.TileStates[suit][5][0] = TileState{Kind: kind, Seat: seat, Index: index}
			return
		}
		panic(fmt.Sprintf("stage: no %v-owned copy of %v to retag", fromSeat, t))
	}
	for _, c := range copyScanOrder(t) {
		cur := s.TileStates[suit][rank][c]
		if cur.Kind == from && cur.Seat == fromSeat {
			s.TileStates[suit][rank][c] = TileState{Kind: kind, Seat: seat, Index: index}
			return
		}
	}
	panic(fmt.Sprintf("stage: no %v-owned copy of %v to retag", fromSeat, t))
}

func applyNew(s *Stage, ev EventNew) {
	fresh := New()
	fresh.Bakaze = ev.Bakaze
	fresh.Kyoku = ev.Kyoku
	fresh.Honba = ev.Honba
	fresh.Kyoutaku = ev.Kyoutaku
	fresh.Turn = ev.Kyoku
	fresh.Step = s.Step // preserve the monotone counter across rounds
	for seat := Seat(0); seat < NumSeats; seat++ {
		fresh.Players[seat] = newPlayer(seat, ev.Scores[seat])
	}
	*s = *fresh

	for seat, hand := range ev.Hands {
		for _, t := range hand {
			s.Players[seat].Hand.Add(t)
			s.claimUnknownCopy(t, StateHand, Seat(seat), 0)
		}
	}

	total := 0
	for _, h := range ev.Hands {
		total += len(h)
	}
	// WallRemaining counts drawable tiles only: the 14-tile dead wall (dora
	// indicators plus kan replacement slots) is excluded up front, so
	// WallRemaining == 0 exactly at the haitei/houtei tile.
	s.WallRemaining = totalPhysicalTiles - total - deadWallTiles

	for _, d := range ev.Doras {
		s.Doras = append(s.Doras, d)
		s.claimUnknownCopy(d, StateDora, 0, len(s.Doras)-1)
	}
}

func applyDeal(s *Stage, ev EventDeal) {
	p := &s.Players[ev.Seat]
	if p.Drawn != nil {
		panic("stage: Deal while a tile is already drawn")
	}
	t := ev.Tile
	p.Drawn = &t
	s.WallRemaining--
	s.claimUnknownCopy(t, StateHand, ev.Seat, 0)
	s.LastTile = nil
	s.Turn = ev.Seat
}

func applyDiscard(s *Stage, ev EventDiscard) {
	p := &s.Players[ev.Seat]

	var discarded tile.Tile
	if ev.IsDrawn {
		if p.Drawn == nil || *p.Drawn != ev.Tile {
			panic("stage: tsumogiri discard does not match drawn tile")
		}
		discarded = *p.Drawn
		p.Drawn = nil
	} else {
		if !p.Hand.Has(ev.Tile) {
			panic(fmt.Sprintf("stage: seat %d discarded %v not in hand", ev.Seat, ev.Tile))
		}
		p.Hand.Remove(ev.Tile)
		discarded = ev.Tile
		if p.Drawn != nil {
			// the drawn tile, not discarded, folds back into the concealed hand
			p.Hand.Add(*p.Drawn)
			p.Drawn = nil
		}
	}

	idx := len(p.Discards)
	p.Discards = append(p.Discards, Discard{Tile: discarded, Tsumogiri: ev.IsDrawn, IsRiichi: ev.IsRiichi})
	s.retagCopy(discarded, StateHand, ev.Seat, StateDiscard, ev.Seat, idx)

	if ev.IsRiichi {
		step := s.Step
		p.RiichiStep = &step
		p.IppatsuEligible = true
		if len(p.Discards) == 1 && noMeldsDeclared(s) {
			p.IsDoubleRiichi = true
		}
		seat := ev.Seat
		s.LastRiichi = &seat
		// The stick goes onto the table the instant riichi is declared,
		// not when the turn safely passes — a ron on this very discard
		// still leaves the stick in the kyoutaku pot for the next riichi.
		p.Score -= 1000
		s.Kyoutaku++
	} else {
		// The discarder's own next discard closes their ippatsu window;
		// other seats' discards do not (only calls interrupt ippatsu).
		p.IppatsuEligible = false
	}

	if !discarded.IsTerminalOrHonor() {
		p.IsNagashiOK = false
	}

	updateFuritenOnDiscard(s, ev.Seat, discarded)

	s.LastTile = &LastTileInfo{Seat: ev.Seat, Op: LastDiscard, Tile: discarded}
}

// noMeldsDeclared reports whether the round is still call-free, the
// uninterrupted-first-go-around condition double riichi requires.
func noMeldsDeclared(s *Stage) bool {
	for seat := Seat(0); seat < NumSeats; seat++ {
		if len(s.Players[seat].Melds) > 0 {
			return false
		}
	}
	return true
}

// updateFuritenOnDiscard folds the discarded tile into the per-round
// furiten memory. Recomputing IsFuriten is the caller's (action engine's)
// job once it knows the current wait set; here we only seed the sticky
// memory.
func updateFuritenOnDiscard(s *Stage, seat Seat, discarded tile.Tile) {
	p := &s.Players[seat]
	p.furitenWaits[discarded.ToNormal()] = true
}

// RecomputeFuriten intersects a player's sticky furiten-wait memory with
// their current wait set and updates IsFuriten. The action engine calls
// this after recomputing waits; riichi furiten, once true, stays true until
// EventNew resets the player.
func (s *Stage) RecomputeFuriten(seat Seat, waits []tile.Tile) {
	p := &s.Players[seat]
	if p.IsFuriten && p.RiichiStep != nil {
		return // sticky for the whole round once riichi furiten triggers
	}
	hit := false
	for _, w := range waits {
		if p.furitenWaits[w.ToNormal()] {
			hit = true
			break
		}
	}
	p.IsFuriten = hit
}

// MarkPassedWhileTenpai records that seat saw a winning tile go by (a call
// opportunity it declined) while tenpai; this tile joins the sticky furiten
// memory even though it was never the player's own discard.
func (s *Stage) MarkPassedWhileTenpai(seat Seat, t tile.Tile) {
	s.Players[seat].furitenWaits[t.ToNormal()] = true
}

func applyMeld(s *Stage, ev EventMeld) {
	switch ev.Type {
	case Chi, Pon, Minkan:
		applyCalledMeld(s, ev)
	case Kakan:
		applyKakan(s, ev)
	case Ankan:
		applyAnkan(s, ev)
	default:
		panic(fmt.Sprintf("stage: unhandled meld type %v", ev.Type))
	}
}

func applyCalledMeld(s *Stage, ev EventMeld) {
	if s.LastTile == nil || s.LastTile.Op != LastDiscard {
		panic("stage: call meld with no pending discard to claim")
	}
	discarder := s.LastTile.Seat
	called := s.LastTile.Tile

	p := &s.Players[ev.Seat]
	meldIdx := len(p.Melds)

	tiles := append([]tile.Tile{called}, ev.Consumed...)
	donors := make([]Seat, len(tiles))
	donors[0] = discarder
	for i := 1; i < len(donors); i++ {
		donors[i] = ev.Seat
	}

	for _, t := range ev.Consumed {
		if !p.Hand.Has(t) {
			panic(fmt.Sprintf("stage: seat %d cannot meld %v, not in hand", ev.Seat, t))
		}
		p.Hand.Remove(t)
		s.retagCopy(t, StateHand, ev.Seat, StateMeld, ev.Seat, meldIdx)
	}
	s.retagCopy(called, StateDiscard, discarder, StateMeld, ev.Seat, meldIdx)

	discardPlayer := &s.Players[discarder]
	lastIdx := len(discardPlayer.Discards) - 1
	if lastIdx >= 0 {
		discardPlayer.Discards[lastIdx].CalledAway = true
	}
	discardPlayer.IsNagashiOK = false

	p.Melds = append(p.Melds, Meld{Type: ev.Type, Owner: ev.Seat, Tiles: tiles, Donors: donors, AtStep: s.Step})

	for seat := Seat(0); seat < NumSeats; seat++ {
		s.Players[seat].IppatsuEligible = false
	}

	s.Turn = ev.Seat
	s.LastTile = nil
}

func applyKakan(s *Stage, ev EventMeld) {
	if len(ev.Consumed) != 1 {
		panic("stage: kakan must consume exactly one tile")
	}
	added := ev.Consumed[0]
	p := &s.Players[ev.Seat]

	var pon *Meld
	for i := range p.Melds {
		if p.Melds[i].Type == Pon && p.Melds[i].Tiles[0].ToNormal() == added.ToNormal() {
			pon = &p.Melds[i]
			break
		}
	}
	if pon == nil {
		panic(fmt.Sprintf("stage: seat %d has no pon to promote with %v", ev.Seat, added))
	}

	if p.Drawn != nil && *p.Drawn == added {
		p.Drawn = nil
	} else if p.Hand.Has(added) {
		p.Hand.Remove(added)
		if p.Drawn != nil {
			// the drawn tile, not used by the kan, folds back into the concealed hand
			p.Hand.Add(*p.Drawn)
			p.Drawn = nil
		}
	} else {
		panic(fmt.Sprintf("stage: kakan tile %v not held by seat %d", added, ev.Seat))
	}

	fromKind := StateHand
	orig := *pon
	pon.PonMeld = &orig
	pon.Type = Kakan
	pon.Tiles = append(pon.Tiles, added)
	pon.Donors = append(pon.Donors, ev.Seat)
	s.retagCopy(added, fromKind, ev.Seat, StateMeld, ev.Seat, indexOfMeld(p, pon))

	for seat := Seat(0); seat < NumSeats; seat++ {
		if seat != ev.Seat {
			s.Players[seat].IppatsuEligible = false
		}
	}

	s.LastTile = &LastTileInfo{Seat: ev.Seat, Op: LastKakan, Tile: added}
}

func indexOfMeld(p *Player, m *Meld) int {
	for i := range p.Melds {
		if &p.Melds[i] == m {
			return i
		}
	}
	return -1
}

func applyAnkan(s *Stage, ev EventMeld) {
	if len(ev.Consumed) != 4 {
		panic("stage: ankan must consume exactly four tiles")
	}
	p := &s.Players[ev.Seat]
	meldIdx := len(p.Melds)

	for _, t := range ev.Consumed {
		if p.Drawn != nil && *p.Drawn == t {
			p.Drawn = nil
			s.retagCopy(t, StateHand, ev.Seat, StateMeld, ev.Seat, meldIdx)
			continue
		}
		if !p.Hand.Has(t) {
			panic(fmt.Sprintf("stage: seat %d cannot ankan %v, not in hand", ev.Seat, t))
		}
		p.Hand.Remove(t)
		s.retagCopy(t, StateHand, ev.Seat, StateMeld, ev.Seat, meldIdx)
	}
	if p.Drawn != nil {
		// the drawn tile, not used by the kan, folds back into the concealed hand
		p.Hand.Add(*p.Drawn)
		p.Drawn = nil
	}

	donors := make([]Seat, 4)
	for i := range donors {
		donors[i] = ev.Seat
	}
	p.Melds = append(p.Melds, Meld{Type: Ankan, Owner: ev.Seat, Tiles: append([]tile.Tile(nil), ev.Consumed...), Donors: donors, AtStep: s.Step})

	for seat := Seat(0); seat < NumSeats; seat++ {
		if seat != ev.Seat {
			s.Players[seat].IppatsuEligible = false
		}
	}

	s.LastTile = &LastTileInfo{Seat: ev.Seat, Op: LastAnkan, Tile: ev.Consumed[0]}
}

func applyKita(s *Stage, ev EventKita) {
	p := &s.Players[ev.Seat]
	kitaTile := tile.New(tile.Honor, tile.North)
	if ev.IsDrawn {
		if p.Drawn == nil || *p.Drawn != kitaTile {
			panic("stage: kita does not match drawn tile")
		}
		p.Drawn = nil
	} else if p.Hand.Has(kitaTile) {
		p.Hand.Remove(kitaTile)
	} else {
		panic("stage: kita tile not held")
	}
	s.retagCopy(kitaTile, StateHand, ev.Seat, StateKita, ev.Seat, p.KitaCount)
	p.KitaCount++
}

func applyDora(s *Stage, ev EventDora) {
	s.Doras = append(s.Doras, ev.Tile)
	s.claimUnknownCopy(ev.Tile, StateDora, 0, len(s.Doras)-1)
}

func applyWin(s *Stage, ev EventWin) {
	s.UraDoras = ev.UraDoras
	for _, r := range ev.Results {
		s.Players[r.Seat].Score += r.DeltaScore
	}
	s.Ended = true
}

func applyDraw(s *Stage, ev EventDraw) {
	for seat, d := range ev.DeltaScores {
		s.Players[seat].Score += d
	}
	for seat, ok := range ev.TenpaiFlags {
		s.Players[seat].IsTenpai = ok
	}
	s.Ended = true
}
