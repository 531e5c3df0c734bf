package controller

import (
	"math/rand/v2"

	"riichi/stage"
	"riichi/tile"
)

// buildWallAndDeal shuffles a fresh 136-tile wall (honoring
// Rules.UseRedFives), deals 13 concealed tiles to each seat, and splits the
// remainder into the live wall (drawn from during play, kan replacement
// draws included) and the 14-tile dead wall (dora and ura indicators).
func (c *Controller) buildWallAndDeal(rng *rand.Rand) ([stage.NumSeats][]tile.Tile, tile.Tile) {
	deck := shuffledDeck(rng, c.Rules.UseRedFives)

	var hands [stage.NumSeats][]tile.Tile
	i := 0
	for seat := 0; seat < stage.NumSeats; seat++ {
		hands[seat] = append([]tile.Tile(nil), deck[i:i+13]...)
		i += 13
	}

	const deadWallSize = 14
	rest := deck[i:]
	live := rest[:len(rest)-deadWallSize]
	dead := rest[len(rest)-deadWallSize:]

	c.wall = live
	c.deadWall = dead[1:] // dead[0] is the opening dora indicator, consumed below
	return hands, dead[0]
}

// shuffledDeck returns all 136 physical tiles (respecting red fives) in
// random order.
func shuffledDeck(rng *rand.Rand, useRedFives bool) []tile.Tile {
	deck := make([]tile.Tile, 0, 136)
	for _, suit := range []tile.Suit{tile.Man, tile.Pin, tile.Sou} {
		for rank := 1; rank <= 9; rank++ {
			for copy := 0; copy < 4; copy++ {
				if rank == 5 && copy == 0 && useRedFives {
					deck = append(deck, tile.RedFive(suit))
				} else {
					deck = append(deck, tile.New(suit, rank))
				}
			}
		}
	}
	for rank := tile.East; rank <= tile.Red; rank++ {
		for copy := 0; copy < 4; copy++ {
			deck = append(deck, tile.New(tile.Honor, rank))
		}
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}
