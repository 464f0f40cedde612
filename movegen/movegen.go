// Package movegen exhaustively enumerates legal moves for the player on
// turn. It is the most combinatorially expensive piece of the engine:
// every non-empty subset of up to six hand tiles, in every distinct
// permutation, at every open candidate position, in both orientations.
// Four prunes keep that tractable in practice: a cheap pre-filter on
// subsets before any board work, permutation dedup via a positional hash,
// early rejection of occupied target cells, and early termination once a
// Qwirkle has been found.
package movegen

import (
	"sort"

	"github.com/todd-working/qwirkle/board"
	"github.com/todd-working/qwirkle/game"
	"github.com/todd-working/qwirkle/rules"
	"github.com/todd-working/qwirkle/tile"
)

// qwirkleScore is the score a completed 6-tile line earns (6 for the line
// plus the 6-point bonus). Once a move reaches it, GenerateAllMoves stops
// before trying smaller subsets; a smaller subset that would score more
// (for example by also scoring a crossing line) is then not found.
const qwirkleScore = 12

// GenerateAllMoves returns the valid moves for the current player, sorted
// by score descending. Every subset size is enumerated until one yields a
// move scoring qwirkleScore or more; smaller subsets are then skipped.
func GenerateAllMoves(g *game.GameState) []rules.Move {
	b := g.Board
	isFirst := b.IsEmpty()
	candidates := candidatePositions(b, isFirst)
	tiles := g.CurrentHand().TilesUnsafe()
	n := len(tiles)

	moves := make([]rules.Move, 0)
	bestScore := 0

	// Larger subsets first: they tend to score higher, so finding them
	// early raises bestScore sooner and improves the Qwirkle early-exit's
	// odds of firing before smaller, lower-value subsets are even tried.
	for size := n; size >= 1; size-- {
		for mask := 1; mask < (1 << n); mask++ {
			if popcount(mask) != size {
				continue
			}
			subset := make([]tile.Tile, 0, size)
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					subset = append(subset, tiles[i])
				}
			}
			if !rules.CanFormValidLine(subset) {
				continue
			}

			found := generateMovesForSubset(b, subset, candidates, isFirst)
			for _, m := range found {
				if m.Score > bestScore {
					bestScore = m.Score
				}
			}
			moves = append(moves, found...)
		}
		if bestScore >= qwirkleScore {
			break
		}
	}

	sort.Slice(moves, func(i, j int) bool {
		return moves[i].Score > moves[j].Score
	})
	return moves
}

// distinctPermutations returns every permutation of tiles, collapsing
// permutations that are equal tile-for-tile into one representative. Hands
// frequently hold duplicate tiles (the bag has three of each), and a naive
// permutation generator produces thousands of redundant orderings for
// them; a base-36 positional hash (each slot's dense tile index, one
// "digit" per position) catches equal permutations cheaply, without
// comparing tile slices pairwise.
func distinctPermutations(tiles []tile.Tile) [][]tile.Tile {
	result := make([][]tile.Tile, 0)
	seen := make(map[uint64]bool)

	var recurse func(remaining, current []tile.Tile)
	recurse = func(remaining, current []tile.Tile) {
		if len(remaining) == 0 {
			h := positionalHash(current)
			if seen[h] {
				return
			}
			seen[h] = true
			perm := make([]tile.Tile, len(current))
			copy(perm, current)
			result = append(result, perm)
			return
		}
		for i := range remaining {
			rest := make([]tile.Tile, 0, len(remaining)-1)
			rest = append(rest, remaining[:i]...)
			rest = append(rest, remaining[i+1:]...)

			next := make([]tile.Tile, len(current)+1)
			copy(next, current)
			next[len(current)] = remaining[i]

			recurse(rest, next)
		}
	}
	recurse(tiles, make([]tile.Tile, 0, len(tiles)))
	return result
}

func positionalHash(tiles []tile.Tile) uint64 {
	var h uint64
	for _, t := range tiles {
		h = h*uint64(tile.NumUnique) + uint64(t.Index())
	}
	return h
}

func popcount(mask int) int {
	n := 0
	for mask != 0 {
		mask &= mask - 1
		n++
	}
	return n
}

// candidatePositions returns the empty cells a tile could legally start
// at: just the origin on an empty board, otherwise every empty cell
// orthogonally adjacent to an occupied one.
func candidatePositions(b *board.Board, isFirst bool) []board.Position {
	if isFirst {
		return []board.Position{{Row: 0, Col: 0}}
	}
	seen := make(map[board.Position]bool)
	for _, pos := range b.Positions() {
		for _, n := range pos.Neighbors() {
			if !b.Has(n) {
				seen[n] = true
			}
		}
	}
	result := make([]board.Position, 0, len(seen))
	for pos := range seen {
		result = append(result, pos)
	}
	return result
}

func generateMovesForSubset(b *board.Board, subset []tile.Tile, candidates []board.Position, isFirst bool) []rules.Move {
	if len(subset) == 1 {
		return generateSingleTileMoves(b, subset[0], candidates)
	}
	moves := tryLinePlacements(b, subset, candidates, true)
	moves = append(moves, tryLinePlacements(b, subset, candidates, false)...)
	return moves
}

func generateSingleTileMoves(b *board.Board, t tile.Tile, candidates []board.Position) []rules.Move {
	moves := make([]rules.Move, 0)
	for _, pos := range candidates {
		if !rules.ValidatePlacement(b, pos, t) {
			continue
		}
		score := scorePlacement(b, []rules.Placement{{Pos: pos, Tile: t}})
		moves = append(moves, rules.Move{
			Placements: []rules.Placement{{Pos: pos, Tile: t}},
			Score:      score,
		})
	}
	return moves
}

// tryLinePlacements tries every deduplicated permutation of subset,
// extending from every candidate position in the given orientation.
func tryLinePlacements(b *board.Board, subset []tile.Tile, candidates []board.Position, horizontal bool) []rules.Move {
	moves := make([]rules.Move, 0)
	n := len(subset)

	for _, perm := range distinctPermutations(subset) {
		for _, start := range candidates {
			placements := make([]rules.Placement, n)
			skip := false
			for i, t := range perm {
				var pos board.Position
				if horizontal {
					pos = board.Position{Row: start.Row, Col: start.Col + i}
				} else {
					pos = board.Position{Row: start.Row + i, Col: start.Col}
				}
				if b.Has(pos) {
					skip = true
					break
				}
				placements[i] = rules.Placement{Pos: pos, Tile: t}
			}
			if skip {
				continue
			}
			if !rules.ValidateMove(b, placements) {
				continue
			}
			score := scorePlacement(b, placements)
			result := make([]rules.Placement, n)
			copy(result, placements)
			moves = append(moves, rules.Move{Placements: result, Score: score})
		}
	}
	return moves
}

// scorePlacement applies placements to a scratch clone of b, scores the
// result, then discards the clone — the same apply/score/undo pattern the
// rules kernel uses, but at move granularity instead of per-tile.
func scorePlacement(b *board.Board, placements []rules.Placement) int {
	scratch := b.Clone()
	for _, p := range placements {
		scratch.Set(p.Pos, p.Tile)
	}
	return rules.ScoreMove(scratch, placements)
}

// GenerateFastMove finds the single best single-tile move without any
// subset or permutation enumeration: every (tile, candidate position) pair
// is tried directly. This is what the Monte Carlo estimator's playout loop
// uses in place of GenerateAllMoves when it only needs a move and not an
// exhaustive comparison, at O(hand * candidates) instead of
// O(2^n * n! * candidates).
func GenerateFastMove(g *game.GameState) (rules.Move, bool) {
	b := g.Board
	isFirst := b.IsEmpty()
	candidates := candidatePositions(b, isFirst)
	tiles := g.CurrentHand().TilesUnsafe()

	best := rules.Move{}
	found := false
	for _, t := range tiles {
		for _, pos := range candidates {
			if !rules.ValidatePlacement(b, pos, t) {
				continue
			}
			score := scorePlacement(b, []rules.Placement{{Pos: pos, Tile: t}})
			if !found || score > best.Score {
				best = rules.Move{
					Placements: []rules.Placement{{Pos: pos, Tile: t}},
					Score:      score,
				}
				found = true
			}
		}
	}
	return best, found
}

// FilterMovesByScore returns the moves scoring at least minScore.
func FilterMovesByScore(moves []rules.Move, minScore int) []rules.Move {
	filtered := make([]rules.Move, 0)
	for _, m := range moves {
		if m.Score >= minScore {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// TopNMoves returns the first n moves, assuming moves is already sorted by
// score descending. Returns moves unmodified if n >= len(moves).
func TopNMoves(moves []rules.Move, n int) []rules.Move {
	if n >= len(moves) {
		return moves
	}
	return moves[:n]
}
