package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/todd-working/qwirkle/board"
	"github.com/todd-working/qwirkle/hand"
	"github.com/todd-working/qwirkle/rules"
)

func TestNewGameDealsBothHands(t *testing.T) {
	g := NewGame(1)
	assert.Equal(t, hand.MaxSize, g.Hands[0].Size())
	assert.Equal(t, hand.MaxSize, g.Hands[1].Size())
	assert.Equal(t, 0, g.CurrentPlayer)
	assert.Equal(t, NoWinner, g.Winner)
	assert.False(t, g.GameOver)
}

func TestNewGameSameSeedIsReproducible(t *testing.T) {
	a := NewGame(55)
	b := NewGame(55)
	assert.Equal(t, a.Hands[0].Tiles(), b.Hands[0].Tiles())
	assert.Equal(t, a.Hands[1].Tiles(), b.Hands[1].Tiles())
}

func TestPlayTilesRejectsInvalidMove(t *testing.T) {
	g := NewGame(1)
	badPlacements := []rules.Placement{
		{Pos: board.Position{Row: 5, Col: 5}, Tile: g.CurrentHand().TilesUnsafe()[0]},
	}
	score := g.PlayTiles(badPlacements)
	assert.Equal(t, InvalidMoveScore, score)
	assert.Equal(t, 0, g.CurrentPlayer)
}

func TestPlayTilesAppliesLegalFirstMove(t *testing.T) {
	g := NewGame(1)
	hand0 := g.CurrentHand()
	tl, _ := hand0.Get(0)

	score := g.PlayTiles([]rules.Placement{{Pos: board.Position{Row: 0, Col: 0}, Tile: tl}})
	assert.GreaterOrEqual(t, score, 1)
	assert.True(t, g.Board.Has(board.Position{Row: 0, Col: 0}))
	assert.Equal(t, 1, g.CurrentPlayer)
	assert.Equal(t, hand.MaxSize, g.CurrentHand().Size())
	assert.Len(t, g.MoveHistory, 1)
}

func TestPlayTilesRefillsHandFromBag(t *testing.T) {
	g := NewGame(2)
	tl, _ := g.CurrentHand().Get(0)
	g.PlayTiles([]rules.Placement{{Pos: board.Position{Row: 0, Col: 0}, Tile: tl}})
	// bag has fewer tiles since one was drawn to refill
	assert.Less(t, g.Bag.Remaining(), 108-2*hand.MaxSize)
}

func TestSwapTilesRequiresEnoughBagTiles(t *testing.T) {
	g := NewGame(3)
	for g.Bag.Remaining() > 2 {
		g.Bag.Draw(1)
	}
	ok := g.SwapTiles([]int{0, 1, 2, 3})
	assert.False(t, ok)
}

func TestSwapTilesSucceedsAndAdvancesTurn(t *testing.T) {
	g := NewGame(4)
	ok := g.SwapTiles([]int{0, 1})
	assert.True(t, ok)
	assert.Equal(t, 1, g.CurrentPlayer)
	assert.Equal(t, hand.MaxSize, g.Hands[0].Size())
	assert.Len(t, g.MoveHistory, 1)
	assert.True(t, g.MoveHistory[0].WasSwap)
	assert.Equal(t, 2, g.MoveHistory[0].SwapCount)
}

func TestCheckGameOverEndsOnEmptyHandAndBag(t *testing.T) {
	g := NewGame(5)
	// Drain the bag entirely.
	g.Bag.Draw(g.Bag.Remaining())
	// Empty player 0's hand directly to simulate the final play.
	for g.Hands[0].Size() > 0 {
		g.Hands[0].Remove(0)
	}
	g.checkGameOver()
	assert.True(t, g.GameOver)
	assert.Equal(t, OutBonus, g.Scores[0])
}

func TestCheckGameOverHigherScoreWins(t *testing.T) {
	g := NewGame(6)
	g.Bag.Draw(g.Bag.Remaining())
	for g.Hands[0].Size() > 0 {
		g.Hands[0].Remove(0)
	}
	g.Scores[0] = 10
	g.Scores[1] = 4
	g.checkGameOver()
	assert.Equal(t, 0, g.Winner)
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGame(7)
	clone := g.Clone()
	clone.Scores[0] = 999
	assert.NotEqual(t, g.Scores[0], clone.Scores[0])

	clone.Board.Set(board.Position{Row: 0, Col: 0}, clone.Hands[0].TilesUnsafe()[0])
	assert.False(t, g.Board.Has(board.Position{Row: 0, Col: 0}))
}

func TestCloneForSimulationOmitsHistory(t *testing.T) {
	g := NewGame(8)
	tl, _ := g.CurrentHand().Get(0)
	g.PlayTiles([]rules.Placement{{Pos: board.Position{Row: 0, Col: 0}, Tile: tl}})

	clone := g.CloneForSimulation()
	assert.Empty(t, clone.MoveHistory)
	assert.Len(t, g.MoveHistory, 1)
}

func TestPlayTilesPrevalidatedSkipsValidation(t *testing.T) {
	g := NewGame(9)
	tl, _ := g.CurrentHand().Get(0)
	placements := []rules.Placement{{Pos: board.Position{Row: 0, Col: 0}, Tile: tl}}

	g.PlayTilesPrevalidated(placements, 7)
	assert.Equal(t, 7, g.Scores[0])
	assert.True(t, g.Board.Has(board.Position{Row: 0, Col: 0}))
}
