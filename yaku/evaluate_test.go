package yaku

import (
	"testing"

	"github.com/stretchr/testify/require"

	"riichi/tile"
)

func addAll(t *tile.Table, tiles []tile.Tile) {
	for _, tt := range tiles {
		t.Add(tt)
	}
}

// S1 — pinfu tsumo, non-dealer: m234 p345 s678 s789 ww, win s8 tsumo.
func TestEvaluatePinfuTsumo(t *testing.T) {
	r := require.New(t)
	var hand tile.Table
	// m234 p345 s67(wait) s789, ww pair, win s8 (ryanmen on s67/s89 overlap)
	addAll(&hand, []tile.Tile{
		tile.New(tile.Man, 2), tile.New(tile.Man, 3), tile.New(tile.Man, 4),
		tile.New(tile.Pin, 3), tile.New(tile.Pin, 4), tile.New(tile.Pin, 5),
		tile.New(tile.Sou, 6), tile.New(tile.Sou, 7),
		tile.New(tile.Sou, 7), tile.New(tile.Sou, 8), tile.New(tile.Sou, 9),
		tile.New(tile.Honor, tile.West), tile.New(tile.Honor, tile.West),
	})
	winTile := tile.New(tile.Sou, 8)

	wc, err := Evaluate(hand, nil, nil, nil, winTile, true, false, 1, 1, Flags{})
	r.NoError(err)
	r.Equal(20, wc.Fu)
	r.Equal(2, wc.Fan)

	names := map[string]bool{}
	for _, y := range wc.Yakus {
		names[y.Name] = true
	}
	r.True(names["pinfu"])
	r.True(names["menzentsumo"])
}

// S2 — riichi + ippatsu + tsumo + tanyao + dora1.
func TestEvaluateRiichiIppatsuTsumoTanyaoDora(t *testing.T) {
	r := require.New(t)
	var hand tile.Table
	addAll(&hand, []tile.Tile{
		tile.New(tile.Man, 2), tile.New(tile.Man, 3), tile.New(tile.Man, 4),
		tile.New(tile.Pin, 3), tile.New(tile.Pin, 4), tile.New(tile.Pin, 5),
		tile.New(tile.Pin, 5), tile.New(tile.Pin, 7),
		tile.New(tile.Sou, 2), tile.New(tile.Sou, 3), tile.New(tile.Sou, 4),
		tile.New(tile.Man, 5), tile.New(tile.Man, 5),
	})
	winTile := tile.New(tile.Pin, 6)

	flags := Flags{Riichi: true, Ippatsu: true}
	dora := []tile.Tile{tile.New(tile.Man, 1)} // indicator m1 -> dora m2

	wc, err := Evaluate(hand, nil, dora, nil, winTile, true, false, 1, 1, flags)
	r.NoError(err)
	r.Equal(30, wc.Fu)
	r.Equal(5, wc.Fan)
}

// S3 — kokushi musou 13-wait: winning tile completes the pair, double
// yakuman under the 13-wait rule.
func TestEvaluateKokushi13Wait(t *testing.T) {
	r := require.New(t)
	var hand tile.Table
	// all 13 orphan types held as singles (13-wait); the win tile duplicates
	// the Red dragon already in hand, forming the pair on it.
	orphans := []tile.Tile{
		tile.New(tile.Man, 1), tile.New(tile.Man, 9),
		tile.New(tile.Pin, 1), tile.New(tile.Pin, 9),
		tile.New(tile.Sou, 1), tile.New(tile.Sou, 9),
		tile.New(tile.Honor, tile.East), tile.New(tile.Honor, tile.South),
		tile.New(tile.Honor, tile.West), tile.New(tile.Honor, tile.North),
		tile.New(tile.Honor, tile.White), tile.New(tile.Honor, tile.Green),
		tile.New(tile.Honor, tile.Red),
	}
	addAll(&hand, orphans)
	winTile := tile.New(tile.Honor, tile.Red)

	wc, err := Evaluate(hand, nil, nil, nil, winTile, false, false, 1, 1, Flags{})
	r.NoError(err)
	r.Equal(2, wc.YakumanTimes)
}

// An open (minkan) simple-tile kan must fu as an open kan (8), not a
// closed one (16): ron on 5s completing 3s4s5s, tanyao off a called 2s kan.
func TestEvaluateOpenKanFusAsOpenNotClosed(t *testing.T) {
	r := require.New(t)
	var hand tile.Table
	addAll(&hand, []tile.Tile{
		tile.New(tile.Man, 2), tile.New(tile.Man, 3), tile.New(tile.Man, 4),
		tile.New(tile.Pin, 5), tile.New(tile.Pin, 6), tile.New(tile.Pin, 7),
		tile.New(tile.Sou, 3), tile.New(tile.Sou, 4),
		tile.New(tile.Pin, 6), tile.New(tile.Pin, 6),
	})
	winTile := tile.New(tile.Sou, 5)
	melds := []Meld{{Kind: Minkan, Tiles: []tile.Tile{
		tile.New(tile.Sou, 2), tile.New(tile.Sou, 2), tile.New(tile.Sou, 2), tile.New(tile.Sou, 2),
	}}}

	wc, err := Evaluate(hand, melds, nil, nil, winTile, false, false, 1, 1, Flags{})
	r.NoError(err)
	r.Equal(30, wc.Fu)
}

// Chiitoitsu composes with its compatible shape yaku: all-simple seven
// pairs scores chiitoitsu + tanyao.
func TestEvaluateChiitoitsuWithTanyao(t *testing.T) {
	r := require.New(t)
	var hand tile.Table
	addAll(&hand, []tile.Tile{
		tile.New(tile.Man, 2), tile.New(tile.Man, 2),
		tile.New(tile.Man, 4), tile.New(tile.Man, 4),
		tile.New(tile.Pin, 3), tile.New(tile.Pin, 3),
		tile.New(tile.Pin, 6), tile.New(tile.Pin, 6),
		tile.New(tile.Sou, 5), tile.New(tile.Sou, 5),
		tile.New(tile.Sou, 7), tile.New(tile.Sou, 7),
		tile.New(tile.Sou, 8),
	})
	winTile := tile.New(tile.Sou, 8)

	wc, err := Evaluate(hand, nil, nil, nil, winTile, false, false, 1, 1, Flags{})
	r.NoError(err)
	r.Equal(25, wc.Fu)
	r.Equal(3, wc.Fan)

	names := map[string]bool{}
	for _, y := range wc.Yakus {
		names[y.Name] = true
	}
	r.True(names["chiitoitsu"])
	r.True(names["tanyao"])
}

// Seven pairs of honors is tsuuiisou, a yakuman, not a 2-han chiitoitsu.
func TestEvaluateAllHonorSevenPairsIsTsuuiisou(t *testing.T) {
	r := require.New(t)
	var hand tile.Table
	addAll(&hand, []tile.Tile{
		tile.New(tile.Honor, tile.East), tile.New(tile.Honor, tile.East),
		tile.New(tile.Honor, tile.South), tile.New(tile.Honor, tile.South),
		tile.New(tile.Honor, tile.West), tile.New(tile.Honor, tile.West),
		tile.New(tile.Honor, tile.North), tile.New(tile.Honor, tile.North),
		tile.New(tile.Honor, tile.White), tile.New(tile.Honor, tile.White),
		tile.New(tile.Honor, tile.Green), tile.New(tile.Honor, tile.Green),
		tile.New(tile.Honor, tile.Red),
	})
	winTile := tile.New(tile.Honor, tile.Red)

	wc, err := Evaluate(hand, nil, nil, nil, winTile, true, false, 1, 1, Flags{})
	r.NoError(err)
	r.Equal(1, wc.YakumanTimes)
	r.Equal("tsuuiisou", wc.Yakus[0].Name)
}

// Ura dora only count when the hand is riichi.
func TestEvaluateUraDoraRequiresRiichi(t *testing.T) {
	r := require.New(t)
	var hand tile.Table
	addAll(&hand, []tile.Tile{
		tile.New(tile.Man, 2), tile.New(tile.Man, 3), tile.New(tile.Man, 4),
		tile.New(tile.Pin, 3), tile.New(tile.Pin, 4), tile.New(tile.Pin, 5),
		tile.New(tile.Sou, 2), tile.New(tile.Sou, 3), tile.New(tile.Sou, 4),
		tile.New(tile.Sou, 6), tile.New(tile.Sou, 7),
		tile.New(tile.Man, 5), tile.New(tile.Man, 5),
	})
	winTile := tile.New(tile.Sou, 8)
	ura := []tile.Tile{tile.New(tile.Man, 4)} // indicator m4 -> ura dora m5, two held

	plain, err := Evaluate(hand, nil, nil, ura, winTile, true, false, 1, 1, Flags{})
	r.NoError(err)
	riichi, err := Evaluate(hand, nil, nil, ura, winTile, true, false, 1, 1, Flags{Riichi: true})
	r.NoError(err)
	r.Equal(plain.Fan+1+2, riichi.Fan, "riichi adds its own han plus the two ura dora")
}

// A shanpon ron completing the fourth triplet leaves only three concealed
// triplets: sanankou+toitoi, not suuankou.
func TestEvaluateShanponRonIsNotSuuankou(t *testing.T) {
	r := require.New(t)
	var hand tile.Table
	addAll(&hand, []tile.Tile{
		tile.New(tile.Man, 1), tile.New(tile.Man, 1), tile.New(tile.Man, 1),
		tile.New(tile.Pin, 2), tile.New(tile.Pin, 2), tile.New(tile.Pin, 2),
		tile.New(tile.Sou, 3), tile.New(tile.Sou, 3), tile.New(tile.Sou, 3),
		tile.New(tile.Man, 5), tile.New(tile.Man, 5),
		tile.New(tile.Honor, tile.East), tile.New(tile.Honor, tile.East),
	})
	winTile := tile.New(tile.Man, 5)

	wc, err := Evaluate(hand, nil, nil, nil, winTile, false, false, 1, 1, Flags{})
	r.NoError(err)
	r.Equal(0, wc.YakumanTimes)

	names := map[string]bool{}
	for _, y := range wc.Yakus {
		names[y.Name] = true
	}
	r.True(names["toitoi"])
	r.True(names["sanankou"])
}

// The same four triplets won by tsumo are all concealed: suuankou.
func TestEvaluateShanponTsumoIsSuuankou(t *testing.T) {
	r := require.New(t)
	var hand tile.Table
	addAll(&hand, []tile.Tile{
		tile.New(tile.Man, 1), tile.New(tile.Man, 1), tile.New(tile.Man, 1),
		tile.New(tile.Pin, 2), tile.New(tile.Pin, 2), tile.New(tile.Pin, 2),
		tile.New(tile.Sou, 3), tile.New(tile.Sou, 3), tile.New(tile.Sou, 3),
		tile.New(tile.Man, 5), tile.New(tile.Man, 5),
		tile.New(tile.Honor, tile.East), tile.New(tile.Honor, tile.East),
	})
	winTile := tile.New(tile.Man, 5)

	wc, err := Evaluate(hand, nil, nil, nil, winTile, true, false, 1, 1, Flags{})
	r.NoError(err)
	r.Equal(1, wc.YakumanTimes)
	r.Equal("suuankou", wc.Yakus[0].Name)
}

// A tanki ron touches only the pair, so all four triplets stay concealed:
// suuankou tanki, double yakuman.
func TestEvaluateSuuankouTankiRonIsDoubleYakuman(t *testing.T) {
	r := require.New(t)
	var hand tile.Table
	addAll(&hand, []tile.Tile{
		tile.New(tile.Man, 1), tile.New(tile.Man, 1), tile.New(tile.Man, 1),
		tile.New(tile.Pin, 2), tile.New(tile.Pin, 2), tile.New(tile.Pin, 2),
		tile.New(tile.Sou, 3), tile.New(tile.Sou, 3), tile.New(tile.Sou, 3),
		tile.New(tile.Man, 5), tile.New(tile.Man, 5), tile.New(tile.Man, 5),
		tile.New(tile.Honor, tile.East),
	})
	winTile := tile.New(tile.Honor, tile.East)

	wc, err := Evaluate(hand, nil, nil, nil, winTile, false, false, 1, 1, Flags{})
	r.NoError(err)
	r.Equal(2, wc.YakumanTimes)
	r.Equal("suuankou", wc.Yakus[0].Name)
}
