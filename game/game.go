// Package game orchestrates turns over the rules kernel: it owns the board,
// bag, and both hands, and is the only thing that mutates them.
package game

import (
	"time"

	"github.com/todd-working/qwirkle/bag"
	"github.com/todd-working/qwirkle/board"
	"github.com/todd-working/qwirkle/hand"
	"github.com/todd-working/qwirkle/rules"
)

// InvalidMoveScore is returned by PlayTiles when the proposed move is
// illegal. Negative and out of the range any real score can take, so
// callers can't mistake it for a legitimate (if unlikely) zero-point play.
const InvalidMoveScore = -1

// NoWinner is the Winner value while a game is in progress, and the
// permanent value for a tied finish.
const NoWinner = -1

// OutBonus is awarded to the player who empties their hand while the bag
// is also empty, ending the game.
const OutBonus = 6

// MoveRecord is one append-only history entry: what a player did on their
// turn, and what it was worth.
type MoveRecord struct {
	Player     int
	Placements []rules.Placement
	Score      int
	WasSwap    bool
	SwapCount  int
}

// GameState is the complete state of a two-player game: the board, the
// bag, both hands, both scores, whose turn it is, and the move history.
// Board, Bag, and Hands are exclusively owned by the GameState they belong
// to — nothing outside this package keeps a reference that outlives a
// Clone.
type GameState struct {
	Board         *board.Board
	Bag           *bag.Bag
	Hands         [2]*hand.Hand
	Scores        [2]int
	CurrentPlayer int
	GameOver      bool
	Winner        int
	MoveHistory   []MoveRecord
	Seed          int64
}

// NewGame starts a fresh game. seed == 0 derives a seed from the current
// time; any other seed reproduces the same bag shuffle and initial deal.
func NewGame(seed int64) *GameState {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	b := bag.New(seed)

	hands := [2]*hand.Hand{hand.New(), hand.New()}
	hands[0].Refill(b)
	hands[1].Refill(b)

	return &GameState{
		Board:         board.New(),
		Bag:           b,
		Hands:         hands,
		CurrentPlayer: 0,
		Winner:        NoWinner,
		MoveHistory:   make([]MoveRecord, 0),
		Seed:          seed,
	}
}

// CurrentHand returns the hand belonging to the player on turn.
func (g *GameState) CurrentHand() *hand.Hand {
	return g.Hands[g.CurrentPlayer]
}

// OtherPlayer returns the index of the player not on turn.
func (g *GameState) OtherPlayer() int {
	return 1 - g.CurrentPlayer
}

// PlayTiles validates and applies a move for the current player: it places
// the tiles, scores the move, removes the played tiles from the hand,
// refills from the bag, records the move, checks for game end, and
// advances the turn. It returns the score earned, or InvalidMoveScore if
// the move is illegal or the game is already over, in which case nothing
// changes.
func (g *GameState) PlayTiles(placements []rules.Placement) int {
	if g.GameOver {
		return InvalidMoveScore
	}
	if !rules.ValidateMove(g.Board, placements) {
		return InvalidMoveScore
	}

	score := g.applyPlacements(placements)
	g.finishTurn(placements, score, false, 0)
	return score
}

// PlayTilesPrevalidated applies a move without re-validating it, at a
// caller-supplied score. It exists for the Monte Carlo estimator, whose
// moves the move generator has already validated and scored as part of
// generating them; skipping validation there is a meaningful saving
// across hundreds of playouts per estimate.
func (g *GameState) PlayTilesPrevalidated(placements []rules.Placement, score int) {
	for _, p := range placements {
		g.Board.Set(p.Pos, p.Tile)
	}
	g.Scores[g.CurrentPlayer] += score
	g.removePlayedTiles(placements)
	g.CurrentHand().Refill(g.Bag)
	g.finishTurn(placements, score, false, 0)
}

// applyPlacements places tiles, scores the move, removes played tiles from
// hand, and refills — everything PlayTiles does except bookkeeping that
// finishTurn handles. Returns the score earned.
func (g *GameState) applyPlacements(placements []rules.Placement) int {
	for _, p := range placements {
		g.Board.Set(p.Pos, p.Tile)
	}
	score := rules.ScoreMove(g.Board, placements)
	g.Scores[g.CurrentPlayer] += score
	g.removePlayedTiles(placements)
	g.CurrentHand().Refill(g.Bag)
	return score
}

// removePlayedTiles removes one hand tile per placement, matching by
// value. Each placement consumes exactly one matching tile even if the
// hand holds duplicates.
func (g *GameState) removePlayedTiles(placements []rules.Placement) {
	h := g.CurrentHand()
	for _, p := range placements {
		if idx := h.IndexOf(p.Tile); idx >= 0 {
			h.Remove(idx)
		}
	}
}

// finishTurn appends the history entry, checks for game end, and advances
// CurrentPlayer unless the game just ended. Shared by PlayTiles,
// PlayTilesPrevalidated, and SwapTiles.
func (g *GameState) finishTurn(placements []rules.Placement, score int, wasSwap bool, swapCount int) {
	g.MoveHistory = append(g.MoveHistory, MoveRecord{
		Player:     g.CurrentPlayer,
		Placements: placements,
		Score:      score,
		WasSwap:    wasSwap,
		SwapCount:  swapCount,
	})
	g.checkGameOver()
	if !g.GameOver {
		g.CurrentPlayer = g.OtherPlayer()
	}
}

// SwapTiles exchanges the hand tiles at indices for fresh ones from the
// bag. It requires a non-empty index list, a bag with at least as many
// tiles remaining as indices given, and indices that all name real hand
// slots; on any violation, or if the game is over, it returns false and
// leaves the state unchanged. On success the turn passes to the other
// player.
func (g *GameState) SwapTiles(indices []int) bool {
	if g.GameOver {
		return false
	}
	if len(indices) == 0 {
		return false
	}
	if g.Bag.Remaining() < len(indices) {
		return false
	}

	h := g.CurrentHand()
	for _, idx := range indices {
		if idx < 0 || idx >= h.Size() {
			return false
		}
	}
	removed := h.RemoveMultiple(indices)
	if len(removed) != len(indices) {
		return false
	}

	h.Refill(g.Bag)
	g.Bag.Return(removed)
	g.finishTurn(nil, 0, true, len(indices))
	return true
}

// checkGameOver ends the game the moment any hand is empty with an empty
// bag, crediting that player the out bonus and settling the winner.
func (g *GameState) checkGameOver() {
	for i, h := range g.Hands {
		if h.Size() == 0 && g.Bag.IsEmpty() {
			g.GameOver = true
			g.Scores[i] += OutBonus
			break
		}
	}
	if !g.GameOver {
		return
	}
	switch {
	case g.Scores[0] > g.Scores[1]:
		g.Winner = 0
	case g.Scores[1] > g.Scores[0]:
		g.Winner = 1
	default:
		g.Winner = NoWinner
	}
}

// Clone returns a deep copy of the game state, including move history.
// Board, bag, and hands are independently owned by the clone.
func (g *GameState) Clone() *GameState {
	clone := g.cloneShallowState()
	clone.MoveHistory = make([]MoveRecord, len(g.MoveHistory))
	copy(clone.MoveHistory, g.MoveHistory)
	return clone
}

// CloneForSimulation returns a deep copy omitting move history, the
// lighter clone the Monte Carlo estimator uses for each playout — history
// is never read during a playout, so copying it would be pure waste across
// hundreds of simulations.
func (g *GameState) CloneForSimulation() *GameState {
	clone := g.cloneShallowState()
	clone.MoveHistory = make([]MoveRecord, 0)
	return clone
}

func (g *GameState) cloneShallowState() *GameState {
	return &GameState{
		Board:         g.Board.Clone(),
		Bag:           g.Bag.Clone(g.Seed),
		Hands:         [2]*hand.Hand{g.Hands[0].Clone(), g.Hands[1].Clone()},
		Scores:        g.Scores,
		CurrentPlayer: g.CurrentPlayer,
		GameOver:      g.GameOver,
		Winner:        g.Winner,
		Seed:          g.Seed,
	}
}

// String renders a debug summary of the game state, for the simulate CLI's
// verbose mode and for test failure messages.
func (g *GameState) String() string {
	status := "In Progress"
	if g.GameOver {
		if g.Winner == NoWinner {
			status = "Tie"
		} else {
			status = "Player " + itoa(g.Winner+1) + " Wins"
		}
	}

	upcoming := ""
	for i, t := range g.Bag.Peek(3) {
		if i > 0 {
			upcoming += ", "
		}
		upcoming += t.String()
	}
	if upcoming == "" {
		upcoming = "(empty)"
	}

	return "Game State:\n" +
		"  Status: " + status + "\n" +
		"  Scores: P1=" + itoa(g.Scores[0]) + " P2=" + itoa(g.Scores[1]) + "\n" +
		"  Current: Player " + itoa(g.CurrentPlayer+1) + "\n" +
		"  Bag: " + itoa(g.Bag.Remaining()) + " tiles, next: " + upcoming + "\n" +
		"  Board:\n" + g.Board.Debug()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	s := ""
	for n > 0 {
		s = string('0'+byte(n%10)) + s
		n /= 10
	}
	if neg {
		s = "-" + s
	}
	return s
}
