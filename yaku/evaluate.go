package yaku

import (
	"errors"

	"riichi/tile"
)

// WinContext is the full scoring record for one winning hand.
type WinContext struct {
	Yakus        []Result
	Fu           int
	Fan          int
	YakumanTimes int
	Points       Points
}

// ErrNoYaku is returned when the tiles form a complete shape but no yaku
// applies: an empty yaku list is not a valid win unless a yakuman is
// present.
var ErrNoYaku = errors.New("yaku: winning shape has no yaku")

type candidate struct {
	yakumanTimes int
	fan          int
	fu           int
	yakus        []Result
}

func (c candidate) less(o candidate) bool {
	if c.yakumanTimes != o.yakumanTimes {
		return c.yakumanTimes < o.yakumanTimes
	}
	if c.fan != o.fan {
		return c.fan < o.fan
	}
	return c.fu < o.fu
}

// Evaluate scores a winning 14-tile hand: hand is the concealed tile table
// (NOT including winTile), melds are the caller's fixed sets, doraIndicators
// /uraDoraIndicators are the revealed indicator tiles (ura only scored when
// flags.Riichi or DoubleRiichi), winTile is the tile that completed the
// hand, and flags carries the context-only yaku the tile shape can't infer.
func Evaluate(
	hand tile.Table,
	melds []Meld,
	doraIndicators []tile.Tile,
	uraDoraIndicators []tile.Tile,
	winTile tile.Tile,
	isTsumo bool,
	isDealer bool,
	prevalentWindRank int,
	seatWindRank int,
	flags Flags,
) (*WinContext, error) {
	full := hand
	full.Add(winTile)
	counts := full.Counts34()
	winIndex := tile.Index34(winTile.ToNormal().Suit, int(winTile.ToNormal().Rank))
	isOpen := false
	for _, m := range melds {
		if m.IsOpen() {
			isOpen = true
		}
	}

	dora := countMatches(counts, doraIndicators)
	aka := countRedFives(full)
	ura := 0
	if flags.Riichi || flags.DoubleRiichi {
		ura = countMatches(counts, uraDoraIndicators)
	}
	bonusFan := dora + aka + ura

	var best *candidate

	consider := func(c candidate) {
		c.fan += bonusFan
		if best == nil || best.less(c) {
			cc := c
			best = &cc
		}
	}

	if len(melds) == 0 {
		if pairIdx, ok := kokushiPairIndex(counts); ok {
			times := 1
			if pairIdx == winIndex {
				times = 2
			}
			consider(candidate{yakumanTimes: times, fan: 0, fu: 0, yakus: []Result{{"kokushi-musou", 13 * times}}})
		}
		if pairs, ok := chiitoitsuPairs(counts); ok {
			ctx := evalContext{
				isTsumo:           isTsumo,
				prevalentWindRank: prevalentWindRank,
				seatWindRank:      seatWindRank,
				flags:             flags,
				winIndex:          winIndex,
			}
			if allHonorPairs(pairs) {
				consider(candidate{yakumanTimes: 1, yakus: []Result{{"tsuuiisou", 13}}})
			} else {
				yakus := []Result{{"chiitoitsu", 2}}
				yakus = append(yakus, chiitoiShapeYaku(pairs)...)
				yakus = append(yakus, contextOnlyYaku(ctx)...)
				fan := sumFan(yakus)
				consider(candidate{fan: fan, fu: 25, yakus: yakus})
			}
		}
		if times, ok := chuurenpoutou(counts, winIndex); ok {
			consider(candidate{yakumanTimes: times, fan: 0, fu: 0, yakus: []Result{{"chuurenpoutou", 13 * times}}})
		}
	}

	setsNeeded := 4 - len(melds)
	for _, shape := range decomposeRegular(counts, setsNeeded) {
		sets := buildSetViews(shape, melds, winIndex)
		ctx := evalContext{
			sets:              sets,
			pair:              shape.Pair,
			winIndex:          winIndex,
			isOpen:            isOpen,
			isTsumo:           isTsumo,
			prevalentWindRank: prevalentWindRank,
			seatWindRank:      seatWindRank,
			flags:             flags,
		}
		winOnPair := shape.Pair.Index == winIndex && !setsContainIndex(sets, winIndex)

		ykm := checkYakumanList(ctx, winOnPair)
		times := 0
		var names []Result
		for _, y := range ykm {
			times += y.Times
			names = append(names, Result{y.Name, 13 * y.Times})
		}
		if times > 0 {
			consider(candidate{yakumanTimes: times, fan: 0, fu: 0, yakus: names})
			continue
		}

		yakus := checkYakuList(ctx, !isTsumo)
		if len(yakus) == 0 {
			continue
		}
		fu := computeFu(ctx, isTsumo, !isTsumo)
		fan := sumFan(yakus)
		consider(candidate{fan: fan, fu: fu, yakus: yakus})
	}

	if best == nil {
		return nil, ErrNoYaku
	}

	wc := &WinContext{Yakus: best.yakus, Fan: best.fan, Fu: best.fu, YakumanTimes: best.yakumanTimes}
	if wc.YakumanTimes == 0 && wc.Fan >= 13 {
		wc.YakumanTimes = 1
	}
	wc.Points = GetPoints(isDealer, wc.Fu, wc.Fan, wc.YakumanTimes)
	return wc, nil
}

func setsContainIndex(sets []setView, idx int) bool {
	for _, s := range sets {
		if s.Kind == GroupTriplet && s.Index == idx {
			return true
		}
		if s.Kind == GroupRun && idx >= s.Index && idx <= s.Index+2 {
			return true
		}
	}
	return false
}

func sumFan(rs []Result) int {
	n := 0
	for _, r := range rs {
		n += r.Fan
	}
	return n
}

func allHonorPairs(pairs [7]int) bool {
	for _, i := range pairs {
		if !isHonorIndex(i) {
			return false
		}
	}
	return true
}

// chiitoiShapeYaku adds the tile-shape yaku a seven-pairs hand can still
// carry: tanyao, honroutou, honitsu/chinitsu. Chiitoitsu is always closed,
// so the closed fan values apply.
func chiitoiShapeYaku(pairs [7]int) []Result {
	var out []Result

	simple, yaochu, honors := true, true, false
	suits := map[int]bool{}
	for _, i := range pairs {
		if isYaochuIndex(i) {
			simple = false
		} else {
			yaochu = false
		}
		if isHonorIndex(i) {
			honors = true
		} else {
			suits[suitOfIndex(i)] = true
		}
	}

	if simple {
		out = append(out, Result{"tanyao", 1})
	}
	if yaochu {
		out = append(out, Result{"honroutou", 2})
	}
	if len(suits) == 1 {
		if honors {
			out = append(out, Result{"honitsu", 3})
		} else {
			out = append(out, Result{"chinitsu", 6})
		}
	}
	return out
}

func contextOnlyYaku(ctx evalContext) []Result {
	var out []Result
	if ctx.flags.DoubleRiichi {
		out = append(out, Result{"double-riichi", 2})
	} else if ctx.flags.Riichi {
		out = append(out, Result{"riichi", 1})
	}
	if ctx.flags.Ippatsu {
		out = append(out, Result{"ippatsu", 1})
	}
	if ctx.isTsumo {
		out = append(out, Result{"menzentsumo", 1})
	}
	if ctx.flags.Haitei && ctx.isTsumo {
		out = append(out, Result{"haitei", 1})
	}
	if ctx.flags.Houtei && !ctx.isTsumo {
		out = append(out, Result{"houtei", 1})
	}
	if ctx.flags.Rinshan {
		out = append(out, Result{"rinshan", 1})
	}
	if ctx.flags.Chankan {
		out = append(out, Result{"chankan", 1})
	}
	return out
}

func computeFu(ctx evalContext, isTsumo, isRon bool) int {
	fu := 20
	isPinfu := false
	for _, y := range checkYakuList(ctx, isRon) {
		if y.Name == "pinfu" {
			isPinfu = true
		}
	}

	if isRon && !ctx.isOpen {
		fu += 10 // menzen ron bonus
	}
	if isTsumo && !isPinfu {
		fu += 2
	}

	for _, s := range ctx.sets {
		if s.Kind == GroupTriplet {
			fu += tripletFu(s.Index, s.IsKan, s.IsOpen, s.IsWinner, isRon)
		}
	}
	fu += pairFu(ctx.pair.Index, ctx.prevalentWindRank, ctx.seatWindRank)

	if !isPinfu {
		wk := classifyWait(Shape{Pair: ctx.pair, Sets: groupsFromSets(ctx.sets)}, ctx.winIndex)
		fu += wk.fu()
	}

	if fu == 20 && isRon && ctx.isOpen {
		return 30 // open pinfu-shape ron is fixed at 30
	}
	return roundUpToTen(fu)
}

func countMatches(counts [34]int, indicators []tile.Tile) int {
	n := 0
	for _, ind := range indicators {
		dora := tile.NextTile(ind)
		idx := tile.Index34(dora.Suit, int(dora.Rank))
		n += counts[idx]
	}
	return n
}

func countRedFives(t tile.Table) int {
	n := 0
	for suit := tile.Man; suit <= tile.Sou; suit++ {
		if t.HasRedFive(suit) {
			n++
		}
	}
	return n
}
