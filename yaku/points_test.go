package yaku

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPointsTableLookups(t *testing.T) {
	cases := []struct {
		name     string
		isDealer bool
		fu, fan  int
		times    int
		want     Points
	}{
		{"non-dealer pinfu tsumo 20fu 2han", false, 20, 2, 0, Points{Ron: 1300, TsumoChild: 400, TsumoDealer: 700}},
		{"non-dealer 30fu 1han", false, 30, 1, 0, Points{Ron: 1000, TsumoChild: 300, TsumoDealer: 500}},
		{"non-dealer chiitoi 25fu 2han", false, 25, 2, 0, Points{Ron: 1600, TsumoChild: 400, TsumoDealer: 800}},
		{"non-dealer mangan cap at 5han", false, 30, 5, 0, Points{Ron: 8000, TsumoChild: 2000, TsumoDealer: 4000}},
		{"non-dealer haneman", false, 30, 6, 0, Points{Ron: 12000, TsumoChild: 3000, TsumoDealer: 6000}},
		{"non-dealer baiman", false, 30, 8, 0, Points{Ron: 16000, TsumoChild: 4000, TsumoDealer: 8000}},
		{"non-dealer sanbaiman", false, 30, 11, 0, Points{Ron: 24000, TsumoChild: 6000, TsumoDealer: 12000}},
		{"dealer 30fu 2han", true, 30, 2, 0, Points{Ron: 2900, TsumoChild: 1000}},
		{"dealer mangan", true, 40, 4, 0, Points{Ron: 12000, TsumoChild: 4000}},
		{"non-dealer yakuman", false, 0, 0, 1, Points{Ron: 32000, TsumoChild: 8000, TsumoDealer: 16000}},
		{"dealer double yakuman", true, 0, 0, 2, Points{Ron: 96000, TsumoChild: 32000}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, GetPoints(tc.isDealer, tc.fu, tc.fan, tc.times))
		})
	}
}

func TestCeil100RoundsUp(t *testing.T) {
	r := require.New(t)
	r.Equal(400, ceil100(325))
	r.Equal(700, ceil100(650))
	r.Equal(2000, ceil100(2000))
}

// Dealer tsumo payment per child times three stays within one rounding step
// of the dealer's ron payment for the same hand.
func TestDealerTsumoRonConsistency(t *testing.T) {
	r := require.New(t)
	for fan := 1; fan <= 12; fan++ {
		for _, fu := range []int{30, 40, 50} {
			p := GetPoints(true, fu, fan, 0)
			if p.Ron == 0 {
				continue
			}
			r.GreaterOrEqual(3*p.TsumoChild, p.Ron)
			r.Less(3*p.TsumoChild-p.Ron, 300)
		}
	}
}
