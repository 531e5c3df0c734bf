package yaku

import "riichi/tile"

// GroupKind distinguishes the three concealed-set shapes a decomposition can
// produce (kans only ever arrive as fixed Melds, never from the concealed
// split).
type GroupKind int

const (
	GroupRun GroupKind = iota
	GroupTriplet
	GroupPair
)

// Group is one completed set within a winning partition, identified by its
// canonical 0..33 index (run: its lowest tile's index).
type Group struct {
	Kind  GroupKind
	Index int
}

func (g Group) Tile() tile.Tile { return tile.TileAt34(g.Index) }

func isNumberIndex(i int) bool { return i < 27 }

func suitOfIndex(i int) int {
	switch {
	case i < 9:
		return 0
	case i < 18:
		return 1
	case i < 27:
		return 2
	default:
		return -1
	}
}

// Shape is one way to decompose the concealed tiles into 4-meldCount sets
// plus the pair.
type Shape struct {
	Pair Group
	Sets []Group
}

// decomposeRegular enumerates every (pair, sets) split of counts into
// exactly setsNeeded sets plus one pair. Mirrors shanten's canFormMelds but
// collects every valid split instead of stopping at the first.
func decomposeRegular(counts [34]int, setsNeeded int) []Shape {
	var out []Shape
	for j := 0; j < 34; j++ {
		if counts[j] < 2 {
			continue
		}
		work := counts
		work[j] -= 2
		for _, sets := range enumerateSets(work, setsNeeded) {
			out = append(out, Shape{Pair: Group{Kind: GroupPair, Index: j}, Sets: sets})
		}
	}
	return out
}

func enumerateSets(counts [34]int, need int) [][]Group {
	if need == 0 {
		for _, c := range counts {
			if c != 0 {
				return nil
			}
		}
		return [][]Group{{}}
	}

	i := -1
	for k := 0; k < 34; k++ {
		if counts[k] > 0 {
			i = k
			break
		}
	}
	if i == -1 {
		return nil
	}

	var out [][]Group

	if counts[i] >= 3 {
		work := counts
		work[i] -= 3
		for _, rest := range enumerateSets(work, need-1) {
			out = append(out, append([]Group{{Kind: GroupTriplet, Index: i}}, rest...))
		}
	}

	if isNumberIndex(i) && i+2 < 34 && suitOfIndex(i) == suitOfIndex(i+1) && suitOfIndex(i) == suitOfIndex(i+2) {
		if counts[i] > 0 && counts[i+1] > 0 && counts[i+2] > 0 {
			work := counts
			work[i]--
			work[i+1]--
			work[i+2]--
			for _, rest := range enumerateSets(work, need-1) {
				out = append(out, append([]Group{{Kind: GroupRun, Index: i}}, rest...))
			}
		}
	}

	return out
}

// chiitoitsuPairs returns the 7 pair indexes if counts forms a valid seven
// pairs shape (7 distinct pairs, no four-of-a-kind collapsed into it).
func chiitoitsuPairs(counts [34]int) ([7]int, bool) {
	var pairs [7]int
	n := 0
	for i := 0; i < 34; i++ {
		if counts[i] == 2 {
			if n == 7 {
				return pairs, false
			}
			pairs[n] = i
			n++
		} else if counts[i] != 0 {
			return pairs, false
		}
	}
	return pairs, n == 7
}

var kokushiIndexes = [13]int{0, 8, 9, 17, 18, 26, 27, 28, 29, 30, 31, 32, 33}

// kokushiPairIndex returns the duplicated orphan index if counts forms a
// valid kokushi musou shape, and whether the shape is valid. Comparing the
// pair index with the win tile decides the 13-wait double-yakuman rule.
func kokushiPairIndex(counts [34]int) (pairIdx int, ok bool) {
	pairIdx = -1
	for _, idx := range kokushiIndexes {
		switch counts[idx] {
		case 0:
			return -1, false
		case 2:
			if pairIdx != -1 {
				return -1, false
			}
			pairIdx = idx
		case 1:
		default:
			return -1, false
		}
	}
	for i := 0; i < 34; i++ {
		isOrphan := false
		for _, idx := range kokushiIndexes {
			if idx == i {
				isOrphan = true
				break
			}
		}
		if !isOrphan && counts[i] != 0 {
			return -1, false
		}
	}
	return pairIdx, pairIdx != -1
}
