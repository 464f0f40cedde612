// Package hand implements a player's tile holder: an ordered slice of at
// most six tiles, refillable from a bag.
package hand

import (
	"sort"
	"strings"

	"github.com/todd-working/qwirkle/bag"
	"github.com/todd-working/qwirkle/tile"
)

// MaxSize is the maximum number of tiles a hand may hold at once.
const MaxSize = 6

// Hand is a player's current tiles, addressed by 0-based index internally.
// The session façade converts to/from the 1-based slot numbers players see.
type Hand struct {
	tiles []tile.Tile
}

// New returns an empty hand with room for MaxSize tiles.
func New() *Hand {
	return &Hand{tiles: make([]tile.Tile, 0, MaxSize)}
}

// Size returns the number of tiles currently held.
func (h *Hand) Size() int {
	return len(h.tiles)
}

// Get returns the tile at index and whether that index is valid.
func (h *Hand) Get(index int) (tile.Tile, bool) {
	if index < 0 || index >= len(h.tiles) {
		return tile.Tile{}, false
	}
	return h.tiles[index], true
}

// TilesUnsafe returns the hand's backing slice directly, without copying.
// Callers must treat it as read-only; it exists for hot paths (move
// generation) that would otherwise pay a copy on every call.
func (h *Hand) TilesUnsafe() []tile.Tile {
	return h.tiles
}

// Tiles returns a defensive copy of the hand's tiles.
func (h *Hand) Tiles() []tile.Tile {
	result := make([]tile.Tile, len(h.tiles))
	copy(result, h.tiles)
	return result
}

// Add appends tiles up to MaxSize, silently dropping any that would
// overflow the hand.
func (h *Hand) Add(tiles []tile.Tile) {
	for _, t := range tiles {
		if len(h.tiles) >= MaxSize {
			break
		}
		h.tiles = append(h.tiles, t)
	}
}

// Remove deletes the tile at index and returns it, preserving the order of
// the remaining tiles. The second return is false for an out-of-range
// index, in which case the hand is unchanged.
func (h *Hand) Remove(index int) (tile.Tile, bool) {
	if index < 0 || index >= len(h.tiles) {
		return tile.Tile{}, false
	}
	removed := h.tiles[index]
	h.tiles = append(h.tiles[:index], h.tiles[index+1:]...)
	return removed, true
}

// RemoveMultiple removes the tiles at the given indices and returns them.
// Indices are sorted descending before removal so that removing one index
// never shifts the position of another still to be removed. Invalid
// indices are skipped, so the result may be shorter than indices.
func (h *Hand) RemoveMultiple(indices []int) []tile.Tile {
	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	removed := make([]tile.Tile, 0, len(indices))
	for _, idx := range sorted {
		if t, ok := h.Remove(idx); ok {
			removed = append(removed, t)
		}
	}
	return removed
}

// Refill draws from bag until the hand holds MaxSize tiles (fewer if the
// bag runs dry first).
func (h *Hand) Refill(b *bag.Bag) {
	need := MaxSize - len(h.tiles)
	if need > 0 {
		h.Add(b.Draw(need))
	}
}

// Contains reports whether the hand holds a tile equal to t.
func (h *Hand) Contains(t tile.Tile) bool {
	return h.IndexOf(t) >= 0
}

// IndexOf returns the index of a tile equal to t, or -1 if absent.
func (h *Hand) IndexOf(t tile.Tile) int {
	for i, held := range h.tiles {
		if held.Equal(t) {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the hand.
func (h *Hand) Clone() *Hand {
	clone := New()
	clone.tiles = make([]tile.Tile, len(h.tiles))
	copy(clone.tiles, h.tiles)
	return clone
}

// String renders the hand as "[Red Circle, Blue Square]" for debugging.
func (h *Hand) String() string {
	if len(h.tiles) == 0 {
		return "(empty hand)"
	}
	parts := make([]string, len(h.tiles))
	for i, t := range h.tiles {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
