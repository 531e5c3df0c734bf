package yaku

import "riichi/tile"

// waitKind classifies how the winning tile completed its group; the
// single-wait shapes (kanchan, penchan, tanki) each add 2 fu.
type waitKind int

const (
	waitRyanmen waitKind = iota // two-sided run wait: no fu bonus, pinfu-eligible
	waitKanchan                 // closed (middle-of-run) wait: +2 fu
	waitPenchan                 // edge (12-wait-3 / 89-wait-7) wait: +2 fu
	waitTanki                   // pair wait: +2 fu
	waitShanpon                 // dual-pair wait completing a triplet: +0 fu (the triplet fu itself differs)
)

func (w waitKind) fu() int {
	switch w {
	case waitKanchan, waitPenchan, waitTanki:
		return 2
	default:
		return 0
	}
}

// classifyWait finds the group the win tile completed and reports its wait
// shape.
func classifyWait(shape Shape, winIndex int) waitKind {
	if shape.Pair.Index == winIndex {
		// The pair could also simultaneously be a shanpon candidate if a
		// triplet group shares the same index; callers resolve that by
		// checking sets first, falling back to tanki only if no set matched.
	}
	for _, g := range shape.Sets {
		switch g.Kind {
		case GroupTriplet:
			if g.Index == winIndex {
				return waitShanpon
			}
		case GroupRun:
			i := g.Index
			switch winIndex {
			case i:
				if isNumberIndex(i) && i%9 == 6 { // rank 7 of a 789 run
					return waitPenchan
				}
				return waitRyanmen
			case i + 1:
				return waitKanchan
			case i + 2:
				if isNumberIndex(i) && i%9 == 0 { // rank 1 of a 123 run
					return waitPenchan
				}
				return waitRyanmen
			}
		}
	}
	if shape.Pair.Index == winIndex {
		return waitTanki
	}
	return waitRyanmen
}

func isTerminalOrHonorIndex(i int) bool {
	if !isNumberIndex(i) {
		return true
	}
	r := i % 9
	return r == 0 || r == 8
}

// tripletFu returns the fu for one triplet/kan group. isOpen reflects the
// group's own call status (a pon/minkan/kakan meld, or false for a group
// built from the concealed hand); isWinningGroup+isRon downgrades a
// shanpon-completed concealed triplet to open fu, same as any other ron.
func tripletFu(index int, isKan, isOpen, isWinningGroup, isRon bool) int {
	yaochu := isTerminalOrHonorIndex(index)
	closed := !isOpen
	if isWinningGroup && isRon {
		closed = false
	}
	base := 2
	switch {
	case isKan && yaochu && closed:
		base = 32
	case isKan && yaochu && !closed:
		base = 16
	case isKan && !yaochu && closed:
		base = 16
	case isKan && !yaochu && !closed:
		base = 8
	case !isKan && yaochu && closed:
		base = 8
	case !isKan && yaochu && !closed:
		base = 4
	case !isKan && !yaochu && closed:
		base = 4
	case !isKan && !yaochu && !closed:
		base = 2
	}
	return base
}

// pairFu returns the yakuhai fu bonus for the pair: +2 per matching
// seat/round wind or dragon (so a double-east pair is +4), else 0.
func pairFu(pairIndex, prevalentWindRank, seatWindRank int) int {
	t := tile.TileAt34(pairIndex)
	if !t.IsHonor() {
		return 0
	}
	fu := 0
	if t.IsDragon() {
		fu += 2
	}
	if int(t.Rank) == prevalentWindRank {
		fu += 2
	}
	if int(t.Rank) == seatWindRank {
		fu += 2
	}
	return fu
}

func roundUpToTen(fu int) int {
	if fu%10 == 0 {
		return fu
	}
	return (fu/10 + 1) * 10
}
