package rules

import (
	"github.com/todd-working/qwirkle/board"
	"github.com/todd-working/qwirkle/tile"
)

// LineBufferCap is the fixed capacity of a LineBuffer. A valid line is at
// most 6 tiles; 7 slots let the zero-alloc walk detect "one too many"
// without growing.
const LineBufferCap = 7

// LineBuffer is a stack-allocated, fixed-capacity line of tiles. Callers
// reuse one LineBuffer across many extractions in hot loops (move
// generation, Monte Carlo playouts) to avoid heap traffic.
type LineBuffer struct {
	tiles [LineBufferCap]tile.Tile
	n     int
}

// Reset empties the buffer for reuse.
func (lb *LineBuffer) Reset() {
	lb.n = 0
}

// Len returns the number of tiles currently in the buffer.
func (lb *LineBuffer) Len() int {
	return lb.n
}

// Tile returns the tile at position i (0-based, in line order).
func (lb *LineBuffer) Tile(i int) tile.Tile {
	return lb.tiles[i]
}

// Tiles copies the buffer's contents into a fresh slice, for callers that
// need a slice rather than indexed access.
func (lb *LineBuffer) Tiles() []tile.Tile {
	out := make([]tile.Tile, lb.n)
	copy(out, lb.tiles[:lb.n])
	return out
}

// push appends a tile, reporting false (and leaving the buffer unchanged)
// if the buffer is already full.
func (lb *LineBuffer) push(t tile.Tile) bool {
	if lb.n >= LineBufferCap {
		return false
	}
	lb.tiles[lb.n] = t
	lb.n++
	return true
}

// extractLine fills lb with the maximal contiguous occupied run through pos
// along the axis given by (dr, dc) — (0,1) for horizontal, (1,0) for
// vertical. It finds the run's start by walking against the direction
// until it falls off the occupied run, then walks forward from there,
// which avoids collecting into a reversed slice and reversing it back.
func extractLine(b *board.Board, pos board.Position, dr, dc int, lb *LineBuffer) {
	lb.Reset()
	r, c := pos.Row, pos.Col
	for {
		prev := board.Position{Row: r - dr, Col: c - dc}
		if !b.Has(prev) {
			break
		}
		r, c = prev.Row, prev.Col
	}
	for {
		p := board.Position{Row: r, Col: c}
		t, ok := b.Get(p)
		if !ok {
			break
		}
		if !lb.push(t) {
			break
		}
		r += dr
		c += dc
	}
}

// ExtractHorizontalLine fills lb with the horizontal line through pos.
func ExtractHorizontalLine(b *board.Board, pos board.Position, lb *LineBuffer) {
	extractLine(b, pos, 0, 1, lb)
}

// ExtractVerticalLine fills lb with the vertical line through pos.
func ExtractVerticalLine(b *board.Board, pos board.Position, lb *LineBuffer) {
	extractLine(b, pos, 1, 0, lb)
}

// GetLine returns the tiles starting one step beyond pos in direction
// (dr, dc), continuing outward until an empty cell. pos itself is not
// included. Used by the allocating line helpers below.
func GetLine(b *board.Board, pos board.Position, dr, dc int) []tile.Tile {
	tiles := make([]tile.Tile, 0)
	r, c := pos.Row+dr, pos.Col+dc
	for {
		t, ok := b.Get(board.Position{Row: r, Col: c})
		if !ok {
			break
		}
		tiles = append(tiles, t)
		r += dr
		c += dc
	}
	return tiles
}

// GetHorizontalLine returns the full horizontal line through pos
// (including pos, if occupied), left to right. This is the allocating
// counterpart to ExtractHorizontalLine, for general callers that don't
// need to avoid heap traffic.
func GetHorizontalLine(b *board.Board, pos board.Position) []tile.Tile {
	var lb LineBuffer
	ExtractHorizontalLine(b, pos, &lb)
	return lb.Tiles()
}

// GetVerticalLine returns the full vertical line through pos (including
// pos, if occupied), top to bottom.
func GetVerticalLine(b *board.Board, pos board.Position) []tile.Tile {
	var lb LineBuffer
	ExtractVerticalLine(b, pos, &lb)
	return lb.Tiles()
}
