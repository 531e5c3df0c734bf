package yaku

import "riichi/tile"

// Flags enumerates the context-dependent yaku the evaluator cannot infer
// from tiles alone.
type Flags struct {
	Riichi       bool
	DoubleRiichi bool
	Ippatsu      bool
	Haitei       bool // tsumo on the last wall tile
	Houtei       bool // ron on the last discard
	Rinshan      bool // tsumo after a kan draw
	Chankan      bool // ron robbing a kakan
	Tenhou       bool // dealer tsumo on the very first draw
	Chiihou      bool // non-dealer tsumo on their first draw, no calls yet
}

// setView is a uniform description of one completed group (concealed or
// called), enough to drive every yaku check.
type setView struct {
	Kind     GroupKind // Run or Triplet; kans are Triplet with isKan=true
	Index    int
	IsKan    bool
	IsOpen   bool
	IsWinner bool // this group was completed by the winning tile
}

func setSuit(i int) int { return suitOfIndex(i) }
func setRank1(i int) int { // 1-based rank within its suit/honor family
	switch {
	case i < 9:
		return i + 1
	case i < 18:
		return i - 9 + 1
	case i < 27:
		return i - 18 + 1
	default:
		return i - 27 + 1
	}
}

func buildSetViews(shape Shape, melds []Meld, winIndex int) []setView {
	out := make([]setView, 0, 4)
	for _, g := range shape.Sets {
		out = append(out, setView{Kind: g.Kind, Index: g.Index, IsWinner: g.Index == winIndex || (g.Kind == GroupRun && winIndex >= g.Index && winIndex <= g.Index+2)})
	}
	for _, m := range melds {
		idx := tile.Index34(m.baseTile().Suit, int(m.baseTile().Rank))
		kind := GroupTriplet
		if m.Kind == Chi {
			// chi's canonical index is its lowest tile, not necessarily Tiles[0]
			lo := m.Tiles[0]
			for _, t := range m.Tiles[1:] {
				if t.ToNormal().Rank < lo.ToNormal().Rank {
					lo = t
				}
			}
			idx = tile.Index34(lo.ToNormal().Suit, int(lo.ToNormal().Rank))
			kind = GroupRun
		}
		out = append(out, setView{Kind: kind, Index: idx, IsKan: m.IsKan(), IsOpen: m.IsOpen()})
	}
	return out
}

func isYaochuIndex(i int) bool { return isTerminalOrHonorIndex(i) }

func isTerminalIndex(i int) bool { return isNumberIndex(i) && (i%9 == 0 || i%9 == 8) }

func isHonorIndex(i int) bool { return !isNumberIndex(i) }

func isGreenIndex(i int) bool {
	// Sou 2,3,4,6,8 and the green dragon.
	if i >= 18 && i < 27 {
		r := i - 18 + 1
		switch r {
		case 2, 3, 4, 6, 8:
			return true
		}
	}
	return i == tile.Index34(tile.Honor, tile.Green)
}

// Result is one named yaku and its fan value.
type Result struct {
	Name string
	Fan  int
}

// evalContext carries everything the per-yaku checkers need.
type evalContext struct {
	sets              []setView
	pair              Group
	winIndex          int
	isOpen            bool
	isTsumo           bool
	prevalentWindRank int
	seatWindRank      int
	flags             Flags
}

func suitsUsed(sets []setView, pairIdx int) map[int]bool {
	m := make(map[int]bool, 4)
	for _, s := range sets {
		m[setSuit(s.Index)] = true
	}
	m[setSuit(pairIdx)] = true
	return m
}

func allTerminalOrHonor(sets []setView, pairIdx int) bool {
	for _, s := range sets {
		switch s.Kind {
		case GroupRun:
			if !isTerminalIndex(s.Index) && !isTerminalIndex(s.Index+2) {
				return false
			}
		case GroupTriplet:
			if !isYaochuIndex(s.Index) {
				return false
			}
		}
	}
	return isYaochuIndex(pairIdx)
}

func allNoHonor(sets []setView, pairIdx int) bool {
	if isHonorIndex(pairIdx) {
		return false
	}
	for _, s := range sets {
		if isHonorIndex(s.Index) {
			return false
		}
	}
	return true
}

func hasRun(sets []setView) bool {
	for _, s := range sets {
		if s.Kind == GroupRun {
			return true
		}
	}
	return false
}

func countTriplets(sets []setView) int {
	n := 0
	for _, s := range sets {
		if s.Kind == GroupTriplet {
			n++
		}
	}
	return n
}

func countClosedTriplets(sets []setView, isRon bool) int {
	n := 0
	for _, s := range sets {
		if s.Kind != GroupTriplet {
			continue
		}
		closed := !s.IsOpen
		if s.IsWinner && isRon {
			closed = false // ron-completed shanpon triplet scores as open
		}
		if closed {
			n++
		}
	}
	return n
}

func countKans(sets []setView) int {
	n := 0
	for _, s := range sets {
		if s.IsKan {
			n++
		}
	}
	return n
}

// checkYakuList runs every ordinary (non-yakuman) yaku check and returns the
// matches. isRon disambiguates shanpon-triplet open/closed scoring.
func checkYakuList(ctx evalContext, isRon bool) []Result {
	var out []Result
	add := func(name string, fan int) { out = append(out, Result{name, fan}) }

	closed := !ctx.isOpen

	if closed && ctx.winIndex >= 0 {
		if wk := classifyWait(Shape{Pair: ctx.pair, Sets: groupsFromSets(ctx.sets)}, ctx.winIndex); wk == waitRyanmen && allRuns(ctx.sets) && !isYakuhaiPair(ctx.pair.Index, ctx.prevalentWindRank, ctx.seatWindRank) {
			add("pinfu", 1)
		}
	}

	if allSimple(ctx.sets, ctx.pair.Index) {
		add("tanyao", 1)
	}

	for _, s := range ctx.sets {
		if s.Kind != GroupTriplet {
			continue
		}
		t := tile.TileAt34(s.Index)
		if t.IsDragon() {
			add("yakuhai-"+t.String(), 1)
		}
		if int(t.Rank) == ctx.seatWindRank && t.IsWind() {
			add("yakuhai-seat-wind", 1)
		}
		if int(t.Rank) == ctx.prevalentWindRank && t.IsWind() {
			add("yakuhai-round-wind", 1)
		}
	}

	if closed {
		pairs := iipeikouPairs(ctx.sets)
		if pairs >= 2 {
			add("ryanpeikou", 3)
		} else if pairs == 1 {
			add("iipeikou", 1)
		}
	}

	if n, ok := sanshokuDoujun(ctx.sets); ok {
		_ = n
		if closed {
			add("sanshoku-doujun", 2)
		} else {
			add("sanshoku-doujun", 1)
		}
	}

	if sanshokuDoukou(ctx.sets) {
		add("sanshoku-doukou", 2)
	}

	if ittsu(ctx.sets) {
		if closed {
			add("ittsu", 2)
		} else {
			add("ittsu", 1)
		}
	}

	chanta := allTerminalOrHonor(ctx.sets, ctx.pair.Index)
	junchan := chanta && allNoHonorInChanta(ctx.sets, ctx.pair.Index)
	switch {
	case junchan:
		if closed {
			add("junchan", 3)
		} else {
			add("junchan", 2)
		}
	case chanta:
		if closed {
			add("chanta", 2)
		} else {
			add("chanta", 1)
		}
	}

	suits := suitsUsed(ctx.sets, ctx.pair.Index)
	honorsPresent := isHonorIndex(ctx.pair.Index)
	for _, s := range ctx.sets {
		if isHonorIndex(s.Index) {
			honorsPresent = true
		}
	}
	numericSuits := 0
	for suit := range suits {
		if suit != 3 {
			numericSuits++
		}
	}
	if numericSuits == 1 {
		if honorsPresent {
			if closed {
				add("honitsu", 3)
			} else {
				add("honitsu", 2)
			}
		} else {
			if closed {
				add("chinitsu", 6)
			} else {
				add("chinitsu", 5)
			}
		}
	}

	if !hasRun(ctx.sets) {
		add("toitoi", 2)
	}

	if countClosedTriplets(ctx.sets, isRon) == 3 {
		add("sanankou", 2)
	}

	if countKans(ctx.sets) == 3 {
		add("sankantsu", 2)
	}

	dragonTriplets := 0
	for _, s := range ctx.sets {
		if s.Kind == GroupTriplet && tile.TileAt34(s.Index).IsDragon() {
			dragonTriplets++
		}
	}
	if dragonTriplets == 2 && tile.TileAt34(ctx.pair.Index).IsDragon() {
		add("shousangen", 2)
	}

	if allTerminalOrHonor(ctx.sets, ctx.pair.Index) && !hasRun(ctx.sets) {
		add("honroutou", 2)
	}

	if ctx.flags.DoubleRiichi {
		add("double-riichi", 2)
	} else if ctx.flags.Riichi {
		add("riichi", 1)
	}
	if ctx.flags.Ippatsu {
		add("ippatsu", 1)
	}
	if ctx.isTsumo && closed {
		add("menzentsumo", 1)
	}
	if ctx.flags.Haitei && ctx.isTsumo {
		add("haitei", 1)
	}
	if ctx.flags.Houtei && !ctx.isTsumo {
		add("houtei", 1)
	}
	if ctx.flags.Rinshan {
		add("rinshan", 1)
	}
	if ctx.flags.Chankan {
		add("chankan", 1)
	}

	return out
}

func groupsFromSets(sets []setView) []Group {
	out := make([]Group, 0, len(sets))
	for _, s := range sets {
		out = append(out, Group{Kind: s.Kind, Index: s.Index})
	}
	return out
}

func allRuns(sets []setView) bool {
	for _, s := range sets {
		if s.Kind != GroupRun {
			return false
		}
	}
	return len(sets) == 4
}

func isYakuhaiPair(idx, prevalentWindRank, seatWindRank int) bool {
	t := tile.TileAt34(idx)
	if t.IsDragon() {
		return true
	}
	return t.IsWind() && (int(t.Rank) == prevalentWindRank || int(t.Rank) == seatWindRank)
}

func allSimple(sets []setView, pairIdx int) bool {
	if isYaochuIndex(pairIdx) {
		return false
	}
	for _, s := range sets {
		switch s.Kind {
		case GroupRun:
			if isTerminalIndex(s.Index) || isTerminalIndex(s.Index+2) {
				return false
			}
		case GroupTriplet:
			if isYaochuIndex(s.Index) {
				return false
			}
		}
	}
	return true
}

func iipeikouPairs(sets []setView) int {
	counts := map[int]int{}
	for _, s := range sets {
		if s.Kind == GroupRun {
			counts[s.Index]++
		}
	}
	pairs := 0
	for _, c := range counts {
		pairs += c / 2
	}
	return pairs
}

func sanshokuDoujun(sets []setView) (int, bool) {
	byRank := map[int]map[int]bool{}
	for _, s := range sets {
		if s.Kind != GroupRun {
			continue
		}
		rank := setRank1(s.Index)
		suit := setSuit(s.Index)
		if byRank[rank] == nil {
			byRank[rank] = map[int]bool{}
		}
		byRank[rank][suit] = true
	}
	for rank, suits := range byRank {
		if len(suits) == 3 {
			return rank, true
		}
	}
	return 0, false
}

func sanshokuDoukou(sets []setView) bool {
	byRank := map[int]map[int]bool{}
	for _, s := range sets {
		if s.Kind != GroupTriplet || isHonorIndex(s.Index) {
			continue
		}
		rank := setRank1(s.Index)
		suit := setSuit(s.Index)
		if byRank[rank] == nil {
			byRank[rank] = map[int]bool{}
		}
		byRank[rank][suit] = true
	}
	for _, suits := range byRank {
		if len(suits) == 3 {
			return true
		}
	}
	return false
}

func ittsu(sets []setView) bool {
	have := map[int]map[int]bool{} // suit -> starting rank set
	for _, s := range sets {
		if s.Kind != GroupRun {
			continue
		}
		suit := setSuit(s.Index)
		rank := setRank1(s.Index)
		if have[suit] == nil {
			have[suit] = map[int]bool{}
		}
		have[suit][rank] = true
	}
	for _, ranks := range have {
		if ranks[1] && ranks[4] && ranks[7] {
			return true
		}
	}
	return false
}

func allNoHonorInChanta(sets []setView, pairIdx int) bool {
	return allNoHonor(sets, pairIdx)
}
