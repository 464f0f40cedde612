// Package montecarlo estimates win probability for a game in progress by
// playing it out to completion many times with a greedy policy and
// tallying outcomes. It trades exactness for speed: each playout uses
// movegen's single-tile fast path rather than full exhaustive generation,
// and playouts run across a fixed pool of workers, sized to the host's CPU
// count, pulling simulation indices off a shared jobs channel.
package montecarlo

import (
	"context"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/todd-working/qwirkle/game"
	"github.com/todd-working/qwirkle/movegen"
)

// MaxPlayoutTurns bounds how long a single simulated game can run before
// it's scored as-is. A real game always terminates when the bag and a
// hand both empty, but a pathological greedy playout could in principle
// stall; capping turns keeps worst-case latency predictable.
const MaxPlayoutTurns = 100

// DefaultSimulations is the sample size used when a caller doesn't
// override it. 400 playouts gives roughly a +/-5% margin of error at 95%
// confidence for a binomial win/loss estimate.
const DefaultSimulations = 400

// Result is a win-probability estimate over the two players.
type Result struct {
	P0Win       float64
	P1Win       float64
	Tie         float64
	Simulations int
	Confidence  float64
}

// Estimate runs n independent playouts of g in parallel and returns the
// fraction that ended in each outcome. g itself is never mutated; every
// playout works from its own clone. If g is already over, Estimate
// returns the actual result with full confidence instead of sampling.
func Estimate(ctx context.Context, g *game.GameState, n int) Result {
	if g.GameOver {
		return definitiveResult(g)
	}
	if n <= 0 {
		n = DefaultSimulations
	}

	outcomes := make([]int, n)
	for i := range outcomes {
		outcomes[i] = -1
	}
	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	threads := runtime.NumCPU()
	if threads > n {
		threads = n
	}

	grp, grpCtx := errgroup.WithContext(ctx)
	for w := 0; w < threads; w++ {
		grp.Go(func() error {
			for simIdx := range jobs {
				select {
				case <-grpCtx.Done():
					return grpCtx.Err()
				default:
				}
				outcomes[simIdx] = playOut(g, simIdx)
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		log.Warn().Err(err).Msg("monte carlo estimate interrupted, returning partial tally")
	}

	var p0, p1, tie int
	for _, o := range outcomes {
		switch o {
		case -1:
			// not played before cancellation
		case 0:
			p0++
		case 1:
			p1++
		default:
			tie++
		}
	}

	played := p0 + p1 + tie
	if played == 0 {
		return Result{}
	}
	total := float64(played)
	confidence := 1.0 - (0.5 / total)
	if confidence > 0.99 {
		confidence = 0.99
	}

	return Result{
		P0Win:       float64(p0) / total,
		P1Win:       float64(p1) / total,
		Tie:         float64(tie) / total,
		Simulations: played,
		Confidence:  confidence,
	}
}

func definitiveResult(g *game.GameState) Result {
	r := Result{Simulations: 1, Confidence: 1.0}
	switch g.Winner {
	case 0:
		r.P0Win = 1.0
	case 1:
		r.P1Win = 1.0
	default:
		r.Tie = 1.0
	}
	return r
}

// playOut clones g (omitting move history) and plays it to completion with
// the fast single-tile move generator, returning 0 if player 0 wins, 1 if
// player 1 wins, or 2 for a tie. Each playout reseeds its bag from the
// original seed, the simulation index, and an offset of 1, so no two
// playouts (and no playout and the original game) draw identical bags.
func playOut(g *game.GameState, simIdx int) int {
	sim := g.CloneForSimulation()
	sim.Bag = g.Bag.Clone(g.Seed + int64(simIdx) + 1)
	// Clone keeps the tile order; returning nothing reshuffles the copy
	// with its new seed so each playout draws its own sequence.
	sim.Bag.Return(nil)

	turns := 0
	for !sim.GameOver && turns < MaxPlayoutTurns {
		turns++
		move, ok := movegen.GenerateFastMove(sim)
		if ok {
			sim.PlayTilesPrevalidated(move.Placements, move.Score)
			continue
		}
		if sim.Bag.Remaining() > 0 && sim.CurrentHand().Size() > 0 {
			sim.SwapTiles([]int{0})
			continue
		}
		break
	}

	switch {
	case sim.Scores[0] > sim.Scores[1]:
		return 0
	case sim.Scores[1] > sim.Scores[0]:
		return 1
	default:
		return 2
	}
}
