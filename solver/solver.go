// Package solver chooses a move from a candidate list that movegen has
// already produced and scored. It deliberately knows nothing about how
// moves are generated — only how to pick among them — so new selection
// strategies can be added without touching move generation.
package solver

import (
	"math"
	"math/rand"
	"time"

	"github.com/todd-working/qwirkle/game"
	"github.com/todd-working/qwirkle/movegen"
	"github.com/todd-working/qwirkle/rules"
)

// Solver picks one move out of the moves available to the player on turn.
type Solver interface {
	// SelectMove chooses a move from moves, which may be empty. It returns
	// false if no move could be selected, in which case the caller should
	// fall back to swapping tiles.
	SelectMove(g *game.GameState, moves []rules.Move) (rules.Move, bool)

	// Name identifies the strategy, for logging and simulation output.
	Name() string
}

// GetMove generates every legal move for the player on turn and asks s to
// pick one. PlayTurn uses it to choose its move.
func GetMove(s Solver, g *game.GameState) (rules.Move, bool) {
	moves := movegen.GenerateAllMoves(g)
	return s.SelectMove(g, moves)
}

// GreedySolver always takes the highest-scoring move. moves is sorted by
// score descending by movegen, so selection is O(1).
type GreedySolver struct{}

func (GreedySolver) Name() string { return "greedy" }

func (GreedySolver) SelectMove(_ *game.GameState, moves []rules.Move) (rules.Move, bool) {
	if len(moves) == 0 {
		return rules.Move{}, false
	}
	return moves[0], true
}

// RandomSolver picks uniformly among the available moves, ignoring score.
// Useful as a weak baseline to measure other strategies against.
type RandomSolver struct {
	rng *rand.Rand
}

// NewRandomSolver builds a RandomSolver seeded for reproducibility. seed==0
// is accepted but makes play non-reproducible.
func NewRandomSolver(seed int64) *RandomSolver {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSolver{rng: rand.New(rand.NewSource(seed))}
}

func (*RandomSolver) Name() string { return "random" }

func (s *RandomSolver) SelectMove(_ *game.GameState, moves []rules.Move) (rules.Move, bool) {
	if len(moves) == 0 {
		return rules.Move{}, false
	}
	return moves[s.rng.Intn(len(moves))], true
}

// WeightedRandomSolver samples moves with probability proportional to
// (score+1)^(1/temperature): low temperature behaves like GreedySolver,
// high temperature approaches RandomSolver. The +1 keeps zero-score moves
// reachable instead of giving them zero weight outright.
type WeightedRandomSolver struct {
	rng         *rand.Rand
	temperature float64
}

// NewWeightedRandomSolver builds a WeightedRandomSolver. temperature must
// be positive; 1.0 is a balanced default.
func NewWeightedRandomSolver(seed int64, temperature float64) *WeightedRandomSolver {
	return &WeightedRandomSolver{
		rng:         rand.New(rand.NewSource(seed)),
		temperature: temperature,
	}
}

func (*WeightedRandomSolver) Name() string { return "weighted" }

func (s *WeightedRandomSolver) SelectMove(_ *game.GameState, moves []rules.Move) (rules.Move, bool) {
	if len(moves) == 0 {
		return rules.Move{}, false
	}
	if len(moves) == 1 {
		return moves[0], true
	}

	weights := make([]float64, len(moves))
	total := 0.0
	for i, m := range moves {
		w := math.Pow(float64(m.Score+1), 1/s.temperature)
		weights[i] = w
		total += w
	}

	r := s.rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return moves[i], true
		}
	}
	return moves[len(moves)-1], true
}

// SolverByName returns a solver by configuration name, defaulting to
// GreedySolver for an unrecognized name. seed is only used by strategies
// that need one.
func SolverByName(name string, seed int64) Solver {
	switch name {
	case "random":
		return NewRandomSolver(seed)
	case "weighted":
		return NewWeightedRandomSolver(seed, 1.0)
	case "greedy":
		fallthrough
	default:
		return GreedySolver{}
	}
}

// PlayTurn asks s for a move and applies it to g, falling back to swapping
// the first tile in hand when no move is available and the bag still has
// tiles to swap for. It reports whether any action (play or swap) was
// taken; false means the player was completely stuck, which the caller
// should treat as a forfeited turn.
func PlayTurn(s Solver, g *game.GameState) bool {
	move, ok := GetMove(s, g)
	if ok {
		g.PlayTiles(move.Placements)
		return true
	}
	if g.Bag.Remaining() > 0 && g.CurrentHand().Size() > 0 {
		return g.SwapTiles([]int{0})
	}
	return false
}

// CompareSolvers plays numGames games between two solvers, alternating who
// moves first, and returns how many each won plus the tie count.
func CompareSolvers(s1, s2 Solver, numGames int, baseSeed int64) (wins1, wins2, ties int) {
	for i := 0; i < numGames; i++ {
		g := game.NewGame(baseSeed + int64(i))

		order := [2]Solver{s1, s2}
		if i%2 == 1 {
			order[0], order[1] = s2, s1
		}

		for !g.GameOver {
			if !PlayTurn(order[g.CurrentPlayer], g) {
				break
			}
		}

		winner := g.Winner
		if i%2 == 1 && winner >= 0 {
			winner = 1 - winner
		}
		switch winner {
		case 0:
			wins1++
		case 1:
			wins2++
		default:
			ties++
		}
	}
	return wins1, wins2, ties
}
