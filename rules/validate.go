package rules

import (
	"github.com/todd-working/qwirkle/board"
	"github.com/todd-working/qwirkle/tile"
)

// IsValidLine reports whether tiles could legally sit in one line: at most
// six tiles, no repeated tile, and either all the same color or all the
// same shape. A line of length 0 or 1 is trivially valid.
//
// This is also the predicate move generation uses to pre-filter hand
// subsets before trying to place them (spec's canFormValidLine) — a set of
// tiles that can't form a valid line in isolation can't form one on the
// board either.
func IsValidLine(tiles []tile.Tile) bool {
	if len(tiles) <= 1 {
		return true
	}
	if len(tiles) > tile.NumUnique/tile.NumColors {
		return false
	}
	var seen [tile.NumUnique]bool
	for _, t := range tiles {
		idx := t.Index()
		if seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return sameColorOrShape(tiles)
}

func sameColorOrShape(tiles []tile.Tile) bool {
	sameColor, sameShape := true, true
	for i := 1; i < len(tiles); i++ {
		if tiles[i].Color != tiles[0].Color {
			sameColor = false
		}
		if tiles[i].Shape != tiles[0].Shape {
			sameShape = false
		}
	}
	return sameColor || sameShape
}

// CanFormValidLine is IsValidLine under the name the move generator's
// subset pre-filter calls it by (spec §4.4 step 2) — the two are the same
// check, applied to a candidate hand subset rather than a line already on
// the board.
func CanFormValidLine(tiles []tile.Tile) bool {
	return IsValidLine(tiles)
}

// Valid runs the zero-allocation line-validity check directly against the
// buffer's contents, using a fixed 36-slot table instead of a map.
func (lb *LineBuffer) Valid() bool {
	if lb.n <= 1 {
		return true
	}
	if lb.n > tile.NumUnique/tile.NumColors {
		return false
	}
	var seen [tile.NumUnique]bool
	for i := 0; i < lb.n; i++ {
		idx := lb.tiles[i].Index()
		if seen[idx] {
			return false
		}
		seen[idx] = true
	}
	sameColor, sameShape := true, true
	first := lb.tiles[0]
	for i := 1; i < lb.n; i++ {
		if lb.tiles[i].Color != first.Color {
			sameColor = false
		}
		if lb.tiles[i].Shape != first.Shape {
			sameShape = false
		}
	}
	return sameColor || sameShape
}

// ValidatePlacement checks whether placing t at pos is legal: pos must be
// empty, pos must be (0,0) if the board is empty, otherwise pos must touch
// an existing tile, and both lines through pos (with t inserted) must be
// valid. It places t on b temporarily to run the zero-allocation line
// checks, then removes it — the place/check/remove pattern used throughout
// this package.
func ValidatePlacement(b *board.Board, pos board.Position, t tile.Tile) bool {
	if b.Has(pos) {
		return false
	}
	if b.IsEmpty() {
		return pos.Row == 0 && pos.Col == 0
	}
	if !b.HasNeighbor(pos) {
		return false
	}

	b.Set(pos, t)
	defer b.Remove(pos)

	var lb LineBuffer
	ExtractHorizontalLine(b, pos, &lb)
	if !lb.Valid() {
		return false
	}
	ExtractVerticalLine(b, pos, &lb)
	return lb.Valid()
}

// ValidateMove checks whether a complete move (one or more placements) is
// legal against the board as it stands before the move. All placements
// must be distinct, collinear, land on empty cells, connect to the
// existing board (or include (0,0) on the first move), leave no gap along
// their shared axis, and every line touched by a placement must be valid.
func ValidateMove(b *board.Board, placements []Placement) bool {
	if len(placements) == 0 {
		return false
	}
	if len(placements) == 1 {
		return ValidatePlacement(b, placements[0].Pos, placements[0].Tile)
	}

	allSameRow, allSameCol := true, true
	for i := 1; i < len(placements); i++ {
		if placements[i].Pos.Row != placements[0].Pos.Row {
			allSameRow = false
		}
		if placements[i].Pos.Col != placements[0].Pos.Col {
			allSameCol = false
		}
	}
	if !allSameRow && !allSameCol {
		return false
	}

	seen := make(map[board.Position]bool, len(placements))
	for _, p := range placements {
		if seen[p.Pos] {
			return false
		}
		seen[p.Pos] = true
		if b.Has(p.Pos) {
			return false
		}
	}

	isFirstMove := b.IsEmpty()
	if isFirstMove {
		hasOrigin := false
		for _, p := range placements {
			if p.Pos.Row == 0 && p.Pos.Col == 0 {
				hasOrigin = true
				break
			}
		}
		if !hasOrigin {
			return false
		}
	} else {
		connected := false
		for _, p := range placements {
			if b.HasNeighbor(p.Pos) {
				connected = true
				break
			}
		}
		if !connected {
			return false
		}
	}

	testBoard := b.Clone()
	for _, p := range placements {
		testBoard.Set(p.Pos, p.Tile)
	}

	if len(placements) > 1 {
		if allSameRow {
			row := placements[0].Pos.Row
			minCol, maxCol := placements[0].Pos.Col, placements[0].Pos.Col
			for _, p := range placements[1:] {
				if p.Pos.Col < minCol {
					minCol = p.Pos.Col
				}
				if p.Pos.Col > maxCol {
					maxCol = p.Pos.Col
				}
			}
			for c := minCol; c <= maxCol; c++ {
				if !testBoard.Has(board.Position{Row: row, Col: c}) {
					return false
				}
			}
		} else {
			col := placements[0].Pos.Col
			minRow, maxRow := placements[0].Pos.Row, placements[0].Pos.Row
			for _, p := range placements[1:] {
				if p.Pos.Row < minRow {
					minRow = p.Pos.Row
				}
				if p.Pos.Row > maxRow {
					maxRow = p.Pos.Row
				}
			}
			for r := minRow; r <= maxRow; r++ {
				if !testBoard.Has(board.Position{Row: r, Col: col}) {
					return false
				}
			}
		}
	}

	var lb LineBuffer
	checkedH := make(map[int]bool, len(placements))
	checkedV := make(map[int]bool, len(placements))
	for _, p := range placements {
		if !checkedH[p.Pos.Row] {
			checkedH[p.Pos.Row] = true
			ExtractHorizontalLine(testBoard, p.Pos, &lb)
			if !lb.Valid() {
				return false
			}
		}
		if !checkedV[p.Pos.Col] {
			checkedV[p.Pos.Col] = true
			ExtractVerticalLine(testBoard, p.Pos, &lb)
			if !lb.Valid() {
				return false
			}
		}
	}

	return true
}
