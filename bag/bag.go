// Package bag implements the shuffled multiset of 108 tiles players draw
// from, with a seeded generator so games and simulations are reproducible.
package bag

import (
	"math/rand"
	"time"

	"github.com/todd-working/qwirkle/tile"
)

// Bag holds the pool of tiles not yet drawn. Draws come off the front of
// the slice; returns append and reshuffle, so a traced tile can't be
// followed back into the bag.
type Bag struct {
	tiles []tile.Tile
	rng   *rand.Rand
}

// New builds a freshly shuffled 108-tile bag. seed == 0 derives a seed from
// the current time; any other value reproduces the same shuffle.
func New(seed int64) *Bag {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	tiles := tile.AllTiles()
	shuffle(tiles, rng)
	return &Bag{tiles: tiles, rng: rng}
}

func shuffle(tiles []tile.Tile, rng *rand.Rand) {
	for i := len(tiles) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
}

// Remaining returns how many tiles are left in the bag.
func (b *Bag) Remaining() int {
	return len(b.tiles)
}

// IsEmpty reports whether the bag has no tiles left.
func (b *Bag) IsEmpty() bool {
	return len(b.tiles) == 0
}

// Draw removes and returns up to n tiles from the front of the bag. If
// fewer than n remain, it returns whatever is left; this is intentional,
// matching end-of-game behavior where hands drain below capacity.
func (b *Bag) Draw(n int) []tile.Tile {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn := make([]tile.Tile, n)
	copy(drawn, b.tiles[:n])
	b.tiles = b.tiles[n:]
	return drawn
}

// Return appends tiles back into the bag and reshuffles the whole thing,
// so returned tiles can't be tracked back to where they went in.
func (b *Bag) Return(tiles []tile.Tile) {
	b.tiles = append(b.tiles, tiles...)
	shuffle(b.tiles, b.rng)
}

// Peek returns up to n upcoming tiles without removing them. Useful for
// debugging and for tests asserting a specific draw sequence.
func (b *Bag) Peek(n int) []tile.Tile {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	result := make([]tile.Tile, n)
	copy(result, b.tiles[:n])
	return result
}

// Clone duplicates the bag's remaining contents but reseeds the generator
// with newSeed rather than copying RNG state. The Monte Carlo estimator
// uses this to give every playout an independent, reproducible bag derived
// from the live bag's current contents.
func (b *Bag) Clone(newSeed int64) *Bag {
	clone := &Bag{
		tiles: make([]tile.Tile, len(b.tiles)),
		rng:   rand.New(rand.NewSource(newSeed)),
	}
	copy(clone.tiles, b.tiles)
	return clone
}
