package controller

import (
	"math/rand/v2"

	"riichi/action"
	"riichi/stage"
	"riichi/tile"
	"riichi/yaku"
)

// PlayRound drives one complete round of self-play from a fresh deal to a
// Win or Draw, synthesizing every Event itself. It is the counterpart of
// the live-adapter HandleEvent path in controller.go, for drivers that want the
// engine to run the whole round.
func (c *Controller) PlayRound(rng *rand.Rand, bakaze int, kyoku stage.Seat, honba, kyoutaku int, scores [4]int) {
	hands, dora := c.buildWallAndDeal(rng)
	c.emit(stage.EventNew{
		Bakaze: bakaze, Kyoku: kyoku, Honba: honba, Kyoutaku: kyoutaku,
		Doras: []tile.Tile{dora}, Scores: scores, Hands: hands,
	})
	c.anyCallsYet = false
	c.justDrewRinshan = false
	c.firstTurnTaken = [stage.NumSeats]bool{}
	c.State = StateWaitMain

	turn := kyoku
	needDraw := true
	var drawnTile tile.Tile
	for {
		if needDraw {
			if len(c.wall) == 0 {
				c.resolveExhaustiveDraw()
				return
			}
			c.tenhouEligible = turn == c.Stage.Kyoku && !c.firstTurnTaken[turn] && !c.anyCallsYet
			c.chiihouEligible = turn != c.Stage.Kyoku && !c.firstTurnTaken[turn] && !c.anyCallsYet
			c.firstTurnTaken[turn] = true
			c.justDrewRinshan = false
			drawnTile = c.draw(turn)
			c.emit(stage.EventDeal{Seat: turn, Tile: drawnTile})
		}
		needDraw = true

		turnActs := c.Engine.TurnActions(c.Stage, turn, c.anyCallsYet)
		chosen := c.SelectAction(turn, turnActs)

		switch chosen.Type {
		case action.Tsumo:
			c.resolveTsumo(turn, chosen.Tiles[0])
			return
		case action.Kyushukyuhai:
			c.emit(stage.EventDraw{Type: stage.DrawKyushukyuhai})
			return
		case action.Ankan:
			if !c.declareKan(turn, stage.Ankan, chosen.Tiles) {
				c.resolveExhaustiveDraw()
				return
			}
			needDraw = false // the replacement tile was already dealt above
			continue
		case action.Kakan:
			ended, dealt := c.declareKakanAndCheckChankan(turn, chosen.Tiles[0])
			if ended {
				return
			}
			if !dealt {
				c.resolveExhaustiveDraw()
				return
			}
			needDraw = false
			continue
		case action.Riichi:
			c.discard(turn, chosen.Tiles[0], true)
		default: // Discard, or Nop falling back to tsumogiri
			t := drawnTile
			if chosen.Type == action.Discard && len(chosen.Tiles) > 0 {
				t = chosen.Tiles[0]
			}
			c.discard(turn, t, false)
		}

		next, calledMeld, ended := c.collectReactions(turn)
		if ended {
			return
		}
		if calledMeld {
			turn = next
			needDraw = false
			continue
		}
		if dt, abort := c.abortiveDraw(); abort {
			c.emit(stage.EventDraw{Type: dt})
			return
		}
		turn = turn.Next()
		c.State = StateWaitMain
	}
}

// abortiveDraw checks, after a discard has safely passed with no call and
// no ron, the three remaining abortive-draw conditions: four riichi
// declarations, four identical wind discards on the call-free first
// go-around, and four kans split across more than one seat.
func (c *Controller) abortiveDraw() (stage.DrawType, bool) {
	riichiCount := 0
	for seat := stage.Seat(0); seat < stage.NumSeats; seat++ {
		if c.Stage.Players[seat].RiichiStep != nil {
			riichiCount++
		}
	}
	if riichiCount == stage.NumSeats {
		return stage.DrawSuuchaRiichi, true
	}

	if !c.anyCallsYet {
		sameWind := true
		var first tile.Tile
		for seat := stage.Seat(0); seat < stage.NumSeats; seat++ {
			d := c.Stage.Players[seat].Discards
			if len(d) != 1 || !d[0].Tile.IsWind() {
				sameWind = false
				break
			}
			if seat == 0 {
				first = d[0].Tile
			} else if d[0].Tile != first {
				sameWind = false
				break
			}
		}
		if sameWind {
			return stage.DrawSuufonRenda, true
		}
	}

	kans := 0
	kanOwners := map[stage.Seat]bool{}
	for seat := stage.Seat(0); seat < stage.NumSeats; seat++ {
		for _, m := range c.Stage.Players[seat].Melds {
			if m.Type == stage.Ankan || m.Type == stage.Minkan || m.Type == stage.Kakan {
				kans++
				kanOwners[seat] = true
			}
		}
	}
	if kans >= 4 && len(kanOwners) > 1 {
		return stage.DrawSuukaikan, true
	}

	return 0, false
}

func (c *Controller) draw(seat stage.Seat) tile.Tile {
	if len(c.wall) == 0 {
		panic("controller: draw from empty wall")
	}
	t := c.wall[0]
	c.wall = c.wall[1:]
	return t
}

// discard applies the discard with tsumogiri correctly derived from
// whether t is the tile the seat just drew.
func (c *Controller) discard(seat stage.Seat, t tile.Tile, isRiichi bool) {
	drawn := c.Stage.Players[seat].Drawn
	isDrawn := drawn != nil && *drawn == t
	c.emit(stage.EventDiscard{Seat: seat, Tile: t, IsDrawn: isDrawn, IsRiichi: isRiichi})
}

// collectReactions queries the three non-turn seats for call reactions to
// the discard that was just applied, resolves priority, and applies the
// winning reaction (if any). It returns:
//   - (_, _, true) when the round ended right here (a ron fired, triple
//     ron resolved as an abortive sanchaho draw per Rules.SanchahoIsDraw,
//     or a minkan found the live wall empty for its replacement draw) —
//     the caller must stop immediately, never loop back to draw again;
//   - (seat, true, false) when a pon/minkan/chi was called, naming the
//     caller's seat as where play continues (a minkan has already dealt
//     its replacement tile);
//   - (_, false, false) when nobody called, so the caller simply advances
//     to discarder.Next().
func (c *Controller) collectReactions(discarder stage.Seat) (next stage.Seat, called bool, ended bool) {
	c.State = StateSelecting
	reactions := map[stage.Seat]action.Action{}
	for seat := stage.Seat(0); seat < stage.NumSeats; seat++ {
		if seat == discarder {
			continue
		}
		acts := c.Engine.CallActions(c.Stage, seat)
		if len(acts) == 0 {
			continue
		}
		c.State = StateWaitReactions
		chosen := c.SelectAction(seat, acts)
		if chosen.Type != action.Nop {
			reactions[seat] = chosen
		} else {
			c.markDeclinedWaits(seat)
		}
	}
	c.State = StateApplyOperation
	res := action.Resolve(discarder, reactions)
	if res == nil {
		return 0, false, false
	}
	switch res.Type {
	case action.Ron:
		if len(res.Seats) == 3 && c.Rules.SanchahoIsDraw {
			c.emit(stage.EventDraw{Type: stage.DrawSanchaho})
			return 0, false, true
		}
		c.resolveRon(discarder, res)
		return 0, false, true
	case action.Pon, action.Minkan:
		seat := res.Seats[0]
		c.emit(stage.EventMeld{Seat: seat, Type: meldTypeOf(res.Type), Consumed: res.Actions[0].Tiles})
		c.anyCallsYet = true
		if res.Type == action.Minkan && !c.revealKanDoraAndReplacement(seat) {
			c.resolveExhaustiveDraw()
			return 0, false, true
		}
		return seat, true, false
	case action.Chi:
		seat := res.Seats[0]
		c.emit(stage.EventMeld{Seat: seat, Type: stage.Chi, Consumed: res.Actions[0].Tiles})
		c.anyCallsYet = true
		return seat, true, false
	}
	return 0, false, false
}

func meldTypeOf(t action.Type) stage.MeldType {
	if t == action.Minkan {
		return stage.Minkan
	}
	return stage.Pon
}

// markDeclinedWaits folds the passed-on discard into a seat's sticky
// furiten memory when it was tenpai and chose not to ron.
func (c *Controller) markDeclinedWaits(seat stage.Seat) {
	if c.Stage.LastTile == nil {
		return
	}
	waits := c.Engine.WinningTiles(c.Stage, seat)
	for _, w := range waits {
		if w.ToNormal() == c.Stage.LastTile.Tile.ToNormal() {
			c.Stage.MarkPassedWhileTenpai(seat, c.Stage.LastTile.Tile)
			break
		}
	}
}

// declareKan applies an Ankan (a concealed kan exposes no chankan window)
// then reveals the new dora indicator and deals the replacement tile.
// Returns false (no replacement dealt, caller must resolve an exhaustive
// draw) if the live wall was already empty.
func (c *Controller) declareKan(seat stage.Seat, kind stage.MeldType, consumed []tile.Tile) bool {
	c.emit(stage.EventMeld{Seat: seat, Type: kind, Consumed: consumed})
	return c.revealKanDoraAndReplacement(seat)
}

// declareKakanAndCheckChankan applies the kakan meld (which arms
// LastTile/LastKakan so CallActions exposes chankan Ron to anyone waiting
// on `added`), gives every other seat a chance to rob it, and only then,
// if nobody did, reveals the new dora and deals the replacement tile.
// Returns ended=true iff the round ended in a chankan ron; otherwise dealt
// reports whether a replacement tile was available.
func (c *Controller) declareKakanAndCheckChankan(seat stage.Seat, added tile.Tile) (ended, dealt bool) {
	c.emit(stage.EventMeld{Seat: seat, Type: stage.Kakan, Consumed: []tile.Tile{added}})

	reactions := map[stage.Seat]action.Action{}
	for s := stage.Seat(0); s < stage.NumSeats; s++ {
		if s == seat {
			continue
		}
		acts := c.Engine.CallActions(c.Stage, s)
		if len(acts) == 0 {
			continue
		}
		if chosen := c.SelectAction(s, acts); chosen.Type == action.Ron {
			reactions[s] = chosen
		}
	}
	if len(reactions) > 0 {
		c.resolveRon(seat, action.Resolve(seat, reactions))
		return true, false
	}

	return false, c.revealKanDoraAndReplacement(seat)
}

// revealKanDoraAndReplacement flips the next kan-dora indicator and deals
// the rinshan replacement tile from the head of the live wall (this
// implementation keeps one shared "wall" rather than splitting dead-wall
// rinshan slots out in advance, so rinshan draws and ordinary draws share
// a spot; see wall.go). Returns false if the live wall was
// already exhausted, in which case no replacement could be dealt and the
// round must end in a draw. Sets justDrewRinshan so a tsumo immediately
// following this call is scored with the rinshan kaihou flag.
func (c *Controller) revealKanDoraAndReplacement(seat stage.Seat) bool {
	c.anyCallsYet = true
	if len(c.deadWall) > 0 {
		indicator := c.deadWall[0]
		c.deadWall = c.deadWall[1:]
		c.emit(stage.EventDora{Tile: indicator})
	}
	if len(c.wall) == 0 {
		return false
	}
	t := c.wall[0]
	c.wall = c.wall[1:]
	c.justDrewRinshan = true
	c.emit(stage.EventDeal{Seat: seat, Tile: t})
	return true
}

// revealUraDoras flips one ura indicator per revealed dora indicator from
// the back of the dead wall, but only when at least one winner is riichi —
// a non-riichi win never sees the ura tiles.
func (c *Controller) revealUraDoras(winners []stage.Seat) []tile.Tile {
	anyRiichi := false
	for _, s := range winners {
		if c.Stage.Players[s].RiichiStep != nil {
			anyRiichi = true
			break
		}
	}
	if !anyRiichi {
		return nil
	}
	n := len(c.Stage.Doras)
	if n > len(c.deadWall) {
		n = len(c.deadWall)
	}
	return append([]tile.Tile(nil), c.deadWall[len(c.deadWall)-n:]...)
}

func (c *Controller) resolveTsumo(seat stage.Seat, winTile tile.Tile) {
	ura := c.revealUraDoras([]stage.Seat{seat})
	wc := c.evaluateWin(seat, winTile, true, ura)
	deltas := tsumoDeltas(seat, c.Stage.Kyoku, wc, c.Stage.Kyoutaku, c.Rules.KyotakuValue, c.Stage.Honba)
	results := []stage.WinResult{{Seat: seat, DeltaScore: deltas[seat], Fu: wc.Fu, Fan: wc.Fan, YakumanTimes: wc.YakumanTimes, Yaku: yakuNames(wc)}}
	for s := stage.Seat(0); s < stage.NumSeats; s++ {
		if s != seat {
			results = append(results, stage.WinResult{Seat: s, DeltaScore: deltas[s]})
		}
	}
	c.emit(stage.EventWin{UraDoras: ura, Results: results})
}

func (c *Controller) resolveRon(discarder stage.Seat, res *action.Resolution) {
	winTile := c.Stage.LastTile.Tile
	ura := c.revealUraDoras(res.Seats)
	deltas := make(map[stage.Seat]int)
	var results []stage.WinResult
	for i, seat := range res.Seats {
		wc := c.evaluateWin(seat, winTile, false, ura)
		pay := wc.Points.Ron + 300*c.Stage.Honba
		if i == 0 {
			// The head-bump winner also collects the riichi stick pot.
			deltas[seat] += c.Stage.Kyoutaku * c.Rules.KyotakuValue
		}
		deltas[seat] += pay
		deltas[discarder] -= pay
		results = append(results, stage.WinResult{Seat: seat, DeltaScore: 0, Fu: wc.Fu, Fan: wc.Fan, YakumanTimes: wc.YakumanTimes, Yaku: yakuNames(wc)})
	}
	for i := range results {
		results[i].DeltaScore = deltas[results[i].Seat]
	}
	results = append(results, stage.WinResult{Seat: discarder, DeltaScore: deltas[discarder]})
	c.emit(stage.EventWin{UraDoras: ura, Results: results})
}

func (c *Controller) evaluateWin(seat stage.Seat, winTile tile.Tile, isTsumo bool, ura []tile.Tile) *yaku.WinContext {
	p := &c.Stage.Players[seat]
	melds := make([]yaku.Meld, 0, len(p.Melds))
	for _, m := range p.Melds {
		melds = append(melds, yaku.Meld{Kind: yaku.MeldKind(m.Type), Tiles: m.Tiles})
	}
	flags := yaku.Flags{
		Riichi:       p.RiichiStep != nil,
		DoubleRiichi: p.IsDoubleRiichi,
		Ippatsu:      p.IppatsuEligible,
		Haitei:       isTsumo && c.Stage.WallRemaining == 0 && !c.justDrewRinshan,
		Houtei:       !isTsumo && c.Stage.WallRemaining == 0,
		Rinshan:      isTsumo && c.justDrewRinshan,
		Chankan:      !isTsumo && c.Stage.LastTile != nil && c.Stage.LastTile.Op == stage.LastKakan,
		Tenhou:       isTsumo && c.tenhouEligible,
		Chiihou:      isTsumo && c.chiihouEligible,
	}
	sw := int(seat-c.Stage.Kyoku+stage.NumSeats)%stage.NumSeats + tile.East
	wc, err := yaku.Evaluate(p.Hand, melds, c.Stage.Doras, ura, winTile, isTsumo, seat == c.Stage.Kyoku, tile.East+c.Stage.Bakaze, sw, flags)
	if err != nil {
		panic("controller: actor declared a win the engine does not accept: " + err.Error())
	}
	return wc
}

func yakuNames(wc *yaku.WinContext) []string {
	out := make([]string, len(wc.Yakus))
	for i, y := range wc.Yakus {
		out[i] = y.Name
	}
	return out
}

// tsumoDeltas splits a tsumo win three ways: if the winner is the dealer,
// all three non-dealer seats pay wc.Points.TsumoChild each; otherwise the
// dealer pays wc.Points.TsumoDealer and the remaining two non-dealer seats
// each pay wc.Points.TsumoChild.
func tsumoDeltas(winner, dealer stage.Seat, wc *yaku.WinContext, kyoutaku, kyotakuValue, honba int) [stage.NumSeats]int {
	var out [stage.NumSeats]int
	winnerIsDealer := winner == dealer
	for s := stage.Seat(0); s < stage.NumSeats; s++ {
		if s == winner {
			continue
		}
		pay := wc.Points.TsumoChild
		if !winnerIsDealer && s == dealer {
			pay = wc.Points.TsumoDealer
		}
		pay += 100 * honba
		out[s] -= pay
		out[winner] += pay
	}
	out[winner] += kyoutaku * kyotakuValue
	return out
}

func (c *Controller) resolveExhaustiveDraw() {
	var hands [stage.NumSeats][]tile.Tile
	var tenpai [stage.NumSeats]bool
	for s := stage.Seat(0); s < stage.NumSeats; s++ {
		hands[s] = c.Stage.Players[s].Hand.Tiles()
		tenpai[s] = len(c.Engine.WinningTiles(c.Stage, s)) > 0
	}
	deltas := noTenPayments(tenpai)
	c.emit(stage.EventDraw{Type: stage.DrawExhaustive, Hands: hands, TenpaiFlags: tenpai, DeltaScores: deltas})
}

// noTenPayments splits 3000 points among tenpai/noten seats per the
// standard 1/2/3-tenpai payment table; 0 or 4 tenpai seats pay nothing.
func noTenPayments(tenpai [stage.NumSeats]bool) [stage.NumSeats]int {
	n := 0
	for _, t := range tenpai {
		if t {
			n++
		}
	}
	var out [stage.NumSeats]int
	if n == 0 || n == 4 {
		return out
	}
	total := 3000
	per := total / n
	share := total / (stage.NumSeats - n)
	for s := stage.Seat(0); s < stage.NumSeats; s++ {
		if tenpai[s] {
			out[s] = per
		} else {
			out[s] = -share
		}
	}
	return out
}
