package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/todd-working/qwirkle/game"
	"github.com/todd-working/qwirkle/rules"
)

func TestGreedySolverPicksHighestScore(t *testing.T) {
	moves := []rules.Move{{Score: 9}, {Score: 3}, {Score: 1}}
	s := GreedySolver{}
	chosen, ok := s.SelectMove(nil, moves)
	assert.True(t, ok)
	assert.Equal(t, moves[0], chosen) // relies on caller pre-sorting, same as movegen output
}

func TestGreedySolverNoMoves(t *testing.T) {
	s := GreedySolver{}
	_, ok := s.SelectMove(nil, nil)
	assert.False(t, ok)
}

func TestRandomSolverIsReproducible(t *testing.T) {
	moves := []rules.Move{{Score: 1}, {Score: 2}, {Score: 3}, {Score: 4}, {Score: 5}}
	a := NewRandomSolver(42)
	b := NewRandomSolver(42)

	for i := 0; i < 10; i++ {
		ca, _ := a.SelectMove(nil, moves)
		cb, _ := b.SelectMove(nil, moves)
		assert.Equal(t, ca, cb)
	}
}

func TestWeightedRandomSolverSingleMove(t *testing.T) {
	s := NewWeightedRandomSolver(1, 1.0)
	moves := []rules.Move{{Score: 5}}
	chosen, ok := s.SelectMove(nil, moves)
	assert.True(t, ok)
	assert.Equal(t, moves[0], chosen)
}

func TestWeightedRandomSolverLowTemperatureFavorsHighScore(t *testing.T) {
	s := NewWeightedRandomSolver(1, 0.05)
	moves := []rules.Move{{Score: 0}, {Score: 100}}

	highWins := 0
	for i := 0; i < 200; i++ {
		chosen, _ := s.SelectMove(nil, moves)
		if chosen.Score == 100 {
			highWins++
		}
	}
	assert.Greater(t, highWins, 150)
}

func TestSolverByNameDefaultsToGreedy(t *testing.T) {
	s := SolverByName("unknown-strategy", 0)
	assert.Equal(t, "greedy", s.Name())
}

func TestSolverByNameResolvesEachKnownStrategy(t *testing.T) {
	assert.Equal(t, "greedy", SolverByName("greedy", 0).Name())
	assert.Equal(t, "random", SolverByName("random", 0).Name())
	assert.Equal(t, "weighted", SolverByName("weighted", 0).Name())
}

func TestCompareSolversCountsEveryGame(t *testing.T) {
	wins1, wins2, ties := CompareSolvers(GreedySolver{}, NewRandomSolver(1), 4, 100)
	assert.Equal(t, 4, wins1+wins2+ties)
}

func TestPlayTurnAppliesOneAction(t *testing.T) {
	g := game.NewGame(1)
	moved := PlayTurn(GreedySolver{}, g)
	assert.True(t, moved)
	assert.Len(t, g.MoveHistory, 1)
}
