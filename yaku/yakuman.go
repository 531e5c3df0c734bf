package yaku

import "riichi/tile"

// yakumanResult names a yakuman and its multiple (2 for "double" yakuman
// variants like kokushi 13-wait or suuankou tanki).
type yakumanResult struct {
	Name  string
	Times int
}

// checkYakumanList evaluates every yakuman independently of ordinary yaku;
// the caller sums Times across all that match (yakuman compose additively).
func checkYakumanList(ctx evalContext, winOnPair bool) []yakumanResult {
	var out []yakumanResult
	add := func(name string, times int) { out = append(out, yakumanResult{name, times}) }

	// A triplet completed by ron counts as open here too, so a shanpon ron
	// on the fourth triplet is sanankou+toitoi, not suuankou; a tanki ron
	// (winOnPair) leaves all four triplets concealed and still qualifies.
	closedTriplets := countClosedTriplets(ctx.sets, !ctx.isTsumo)
	if countTriplets(ctx.sets) == 4 {
		if closedTriplets == 4 {
			times := 1
			if winOnPair {
				times = 2 // suuankou tanki
			}
			add("suuankou", times)
		}
	}

	dragonTriplets := 0
	for _, s := range ctx.sets {
		if s.Kind == GroupTriplet && tile.TileAt34(s.Index).IsDragon() {
			dragonTriplets++
		}
	}
	if dragonTriplets == 3 {
		add("daisangen", 1)
	}

	windTriplets := 0
	for _, s := range ctx.sets {
		if s.Kind == GroupTriplet && tile.TileAt34(s.Index).IsWind() {
			windTriplets++
		}
	}
	if windTriplets == 4 {
		add("daisuushii", 2)
	} else if windTriplets == 3 && tile.TileAt34(ctx.pair.Index).IsWind() {
		add("shousuushii", 1)
	}

	allHonor := isHonorIndex(ctx.pair.Index)
	for _, s := range ctx.sets {
		if !isHonorIndex(s.Index) {
			allHonor = false
		}
	}
	if allHonor {
		add("tsuuiisou", 1)
	}

	allTerminal := isTerminalIndex(ctx.pair.Index)
	for _, s := range ctx.sets {
		if s.Kind != GroupTriplet || !isTerminalIndex(s.Index) {
			allTerminal = false
		}
	}
	if allTerminal && !hasRun(ctx.sets) {
		add("chinroutou", 1)
	}

	allGreen := isGreenIndex(ctx.pair.Index)
	for _, s := range ctx.sets {
		switch s.Kind {
		case GroupRun:
			if !isGreenIndex(s.Index) || !isGreenIndex(s.Index+2) {
				allGreen = false
			}
		case GroupTriplet:
			if !isGreenIndex(s.Index) {
				allGreen = false
			}
		}
	}
	if allGreen {
		add("ryuuiisou", 1)
	}

	if countKans(ctx.sets) == 4 {
		add("suukantsu", 1)
	}

	if ctx.flags.Tenhou {
		add("tenhou", 1)
	}
	if ctx.flags.Chiihou {
		add("chiihou", 1)
	}

	return out
}

// chuurenpoutou checks the pure nine-gates shape directly against the full
// 34-slot concealed count (it does not fit the set/pair decomposition: it is
// one suit's 1112345678999 plus one extra copy of any tile in that suit).
func chuurenpoutou(counts [34]int, winIndex int) (times int, ok bool) {
	for suit := 0; suit < 3; suit++ {
		base := suit * 9
		want := [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}
		match := true
		extra := -1
		for r := 0; r < 9; r++ {
			c := counts[base+r]
			switch {
			case c == want[r]:
			case c == want[r]+1:
				if extra != -1 {
					match = false
				}
				extra = base + r
			default:
				match = false
			}
			if !match {
				break
			}
		}
		for i := 0; i < 34 && match; i++ {
			if i < base || i >= base+9 {
				if counts[i] != 0 {
					match = false
				}
			}
		}
		if match && extra != -1 {
			if extra == winIndex {
				return 2, true // pure nine-wait on the winning tile itself
			}
			return 1, true
		}
	}
	return 0, false
}
