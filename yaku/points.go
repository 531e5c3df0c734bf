package yaku

// Points is (ron payment, per-child tsumo payment, dealer tsumo payment).
// For a tsumo win the Ron field is unused (the caller reports 0 there); for
// a ron win the tsumo fields are unused.
type Points struct {
	Ron         int
	TsumoChild  int
	TsumoDealer int
}

// pointLeader/pointNonLeader are the standard payoff tables with the
// mangan/haneman/baiman/sanbaiman caps embedded as value ceilings.
// Row = fan (0..12), column = fu index.
var pointLeader = [13][11]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 1500, 2000, 2400, 2900, 3400, 3900, 4400, 4800, 5300},
	{2000, 2400, 2900, 3900, 4800, 5800, 6800, 7700, 8700, 9600, 10600},
	{3900, 4800, 5800, 7700, 9600, 11600, 12000, 12000, 12000, 12000, 12000},
	{7700, 9600, 11600, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000},
	{12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000},
	{18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000},
	{18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000, 18000},
	{24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000},
	{24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000},
	{24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000},
	{36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000},
	{36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000, 36000},
}

var pointNonLeader = [13][11]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 1000, 1300, 1600, 2000, 2300, 2600, 2900, 3200, 3600},
	{1300, 1600, 2000, 2600, 3200, 3900, 4500, 5200, 5800, 6400, 7100},
	{2600, 3200, 3900, 5200, 6400, 7700, 8000, 8000, 8000, 8000, 8000},
	{5200, 6400, 7700, 8000, 8000, 8000, 8000, 8000, 8000, 8000, 8000},
	{8000, 8000, 8000, 8000, 8000, 8000, 8000, 8000, 8000, 8000, 8000},
	{12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000},
	{12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000, 12000},
	{16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000},
	{16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000},
	{16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000, 16000},
	{24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000},
	{24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000, 24000},
}

const (
	pointYakumanLeader    = 48000
	pointYakumanNonLeader = 32000
)

func calcFuIndex(fu int) int {
	switch fu {
	case 20:
		return 0
	case 25:
		return 1
	case 30:
		return 2
	case 40:
		return 3
	case 50:
		return 4
	case 60:
		return 5
	case 70:
		return 6
	case 80:
		return 7
	case 90:
		return 8
	case 100:
		return 9
	case 110:
		return 10
	default:
		panic("yaku: invalid fu value")
	}
}

func ceil100(n int) int { return (n + 99) / 100 * 100 }

func pointsLeader(fu, fan int) Points {
	var p int
	if fan < 13 {
		p = pointLeader[fan][calcFuIndex(fu)]
	} else {
		p = pointYakumanLeader
	}
	return Points{Ron: p, TsumoChild: ceil100(p / 3)}
}

func pointsNonLeader(fu, fan int) Points {
	var p int
	if fan < 13 {
		p = pointNonLeader[fan][calcFuIndex(fu)]
	} else {
		p = pointYakumanNonLeader
	}
	return Points{Ron: p, TsumoChild: ceil100(p / 4), TsumoDealer: ceil100(p / 2)}
}

func pointsLeaderYakuman(times int) Points {
	s := pointYakumanLeader * times
	return Points{Ron: s, TsumoChild: s / 3}
}

func pointsNonLeaderYakuman(times int) Points {
	s := pointYakumanNonLeader * times
	return Points{Ron: s, TsumoChild: s / 4, TsumoDealer: s / 2}
}

// GetPoints looks up the payoff for a win: the non-yakuman tables cover
// fan 0..12 and fan 13 or more pays the single yakuman amount, fu is one
// of the eleven legal values, and
// yakumanTimes>0 overrides fu/fan entirely.
func GetPoints(isDealer bool, fu, fan, yakumanTimes int) Points {
	if isDealer {
		if yakumanTimes > 0 {
			return pointsLeaderYakuman(yakumanTimes)
		}
		return pointsLeader(fu, fan)
	}
	if yakumanTimes > 0 {
		return pointsNonLeaderYakuman(yakumanTimes)
	}
	return pointsNonLeader(fu, fan)
}
