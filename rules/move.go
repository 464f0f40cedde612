// Package rules implements the Qwirkle rules kernel: line extraction, line
// and move validation, and scoring. It leaves the caller's board as it
// found it — single placements are checked with a temporary set/remove on
// the board the caller provides, and multi-tile moves are checked on a
// clone of it.
package rules

import (
	"github.com/todd-working/qwirkle/board"
	"github.com/todd-working/qwirkle/tile"
)

// Placement is one (position, tile) pair proposed as part of a move.
type Placement struct {
	Pos  board.Position
	Tile tile.Tile
}

// Move is an ordered set of 1..6 placements forming one turn, plus the
// score that move would earn. Positions in a Move are distinct, collinear,
// and contiguous along their shared axis once combined with the existing
// board.
type Move struct {
	Placements []Placement
	Score      int
}
