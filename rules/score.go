package rules

import (
	"github.com/todd-working/qwirkle/board"
)

// qwirkleBonus is added on top of length for any completed 6-tile line.
// The code's behavior — a flat +6 regardless of what a variant's maximum
// line length might be — is canonical; a stray comment elsewhere calling
// this "doubling" the line's score is misleading and only coincides with
// the +6 bonus for lines of exactly six tiles.
const qwirkleBonus = 6

// qwirkleLength is the tile count that completes a line and earns the bonus.
const qwirkleLength = 6

type lineKey struct {
	vertical bool
	origin   board.Position
}

// ScoreMove computes the points a move earns, given a board that already
// has the move's placements applied. Every distinct line of length >= 2
// touched by any placement scores its length, plus +6 if it's a complete
// 6-tile line. A single placement touching no line of length >= 2 scores 1.
// Lines are deduplicated by direction plus their first tile's position, so
// a placement at the intersection of two lines doesn't double-count either
// one.
func ScoreMove(b *board.Board, placements []Placement) int {
	if len(placements) == 0 {
		return 0
	}

	score := 0
	scored := make(map[lineKey]bool, len(placements)*2)

	var lb LineBuffer
	for _, p := range placements {
		ExtractHorizontalLine(b, p.Pos, &lb)
		if lb.Len() > 1 {
			key := lineKey{vertical: false, origin: leftmost(b, p.Pos)}
			if !scored[key] {
				scored[key] = true
				score += scoreLine(lb.Len())
			}
		}

		ExtractVerticalLine(b, p.Pos, &lb)
		if lb.Len() > 1 {
			key := lineKey{vertical: true, origin: topmost(b, p.Pos)}
			if !scored[key] {
				scored[key] = true
				score += scoreLine(lb.Len())
			}
		}
	}

	if score == 0 && len(placements) == 1 {
		return 1
	}
	return score
}

func scoreLine(length int) int {
	points := length
	if length == qwirkleLength {
		points += qwirkleBonus
	}
	return points
}

// leftmost walks left from pos to the start of its horizontal line, for use
// as a deduplication key.
func leftmost(b *board.Board, pos board.Position) board.Position {
	for {
		prev := board.Position{Row: pos.Row, Col: pos.Col - 1}
		if !b.Has(prev) {
			return pos
		}
		pos = prev
	}
}

// topmost walks up from pos to the start of its vertical line.
func topmost(b *board.Board, pos board.Position) board.Position {
	for {
		prev := board.Position{Row: pos.Row - 1, Col: pos.Col}
		if !b.Has(prev) {
			return pos
		}
		pos = prev
	}
}
