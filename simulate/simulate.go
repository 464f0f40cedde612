// Package simulate runs batches of AI-vs-AI games across a worker pool and
// emits one JSON line per finished game, for generating training data or
// benchmarking solver strength.
package simulate

import (
	"encoding/json"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/todd-working/qwirkle/game"
	"github.com/todd-working/qwirkle/movegen"
	"github.com/todd-working/qwirkle/solver"
)

// TileJSON is a tile's wire representation within a recorded move.
type TileJSON struct {
	Shape int `json:"shape"`
	Color int `json:"color"`
}

// PlacementJSON is one tile placement within a recorded move.
type PlacementJSON struct {
	Row  int      `json:"row"`
	Col  int      `json:"col"`
	Tile TileJSON `json:"tile"`
}

// MoveJSON records one turn of a simulated game: either a set of
// placements, or a swap.
type MoveJSON struct {
	Player     int             `json:"player"`
	Placements []PlacementJSON `json:"placements,omitempty"`
	Score      int             `json:"score"`
	WasSwap    bool            `json:"was_swap,omitempty"`
	SwapCount  int             `json:"swap_count,omitempty"`
}

// GameResult is the complete record of one simulated game.
type GameResult struct {
	ID          string     `json:"id"`
	Seed        int64      `json:"seed"`
	Players     [2]string  `json:"players"`
	Moves       []MoveJSON `json:"moves"`
	Winner      int        `json:"winner"`
	FinalScores [2]int     `json:"final_scores"`
	TotalMoves  int        `json:"total_moves"`
	DurationMs  float64    `json:"duration_ms"`
}

// Config configures a simulation batch.
type Config struct {
	NumGames int
	Player1  string
	Player2  string
	Workers  int
	Seed     int64
	Verbose  bool
}

// Stats tallies outcomes across a batch, updated atomically as games
// finish so it can be read safely while workers are still running.
type Stats struct {
	GamesPlayed   int64
	Player1Wins   int64
	Player2Wins   int64
	Ties          int64
	TotalMoves    int64
	TotalDuration int64 // nanoseconds
}

// Runner executes a batch of simulated games.
type Runner struct {
	config Config
	stats  Stats
}

// NewRunner builds a Runner, defaulting Workers to the number of CPUs when
// unset.
func NewRunner(cfg Config) *Runner {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Runner{config: cfg}
}

// Run plays the configured number of games across Workers goroutines,
// writing one JSON-encoded GameResult per line to output as each game
// finishes, then logs aggregate stats.
func (r *Runner) Run(output io.Writer) error {
	start := time.Now()

	jobs := make(chan int64, r.config.NumGames)
	results := make(chan GameResult, r.config.Workers*2)

	var workers sync.WaitGroup
	for i := 0; i < r.config.Workers; i++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			r.worker(jobs, results)
		}()
	}

	var writer sync.WaitGroup
	writer.Add(1)
	go func() {
		defer writer.Done()
		enc := json.NewEncoder(output)
		for result := range results {
			if err := enc.Encode(result); err != nil {
				log.Error().Err(err).Msg("failed to encode game result")
			}
		}
	}()

	baseSeed := r.config.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}
	for i := 0; i < r.config.NumGames; i++ {
		jobs <- baseSeed + int64(i)
	}
	close(jobs)

	workers.Wait()
	close(results)
	writer.Wait()

	r.logStats(time.Since(start))
	return nil
}

func (r *Runner) worker(jobs <-chan int64, results chan<- GameResult) {
	for seed := range jobs {
		result := r.runGame(seed)
		results <- result

		atomic.AddInt64(&r.stats.GamesPlayed, 1)
		atomic.AddInt64(&r.stats.TotalMoves, int64(result.TotalMoves))
		atomic.AddInt64(&r.stats.TotalDuration, int64(result.DurationMs*1e6))

		switch result.Winner {
		case 0:
			atomic.AddInt64(&r.stats.Player1Wins, 1)
		case 1:
			atomic.AddInt64(&r.stats.Player2Wins, 1)
		default:
			atomic.AddInt64(&r.stats.Ties, 1)
		}
	}
}

func (r *Runner) runGame(seed int64) GameResult {
	start := time.Now()
	g := game.NewGame(seed)

	solvers := [2]solver.Solver{
		solver.SolverByName(r.config.Player1, seed),
		solver.SolverByName(r.config.Player2, seed+1),
	}

	moves, winner := playGame(g, solvers)

	if r.config.Verbose {
		log.Debug().Str("game_id", gameID(seed)).Msg(g.String())
	}

	elapsed := time.Since(start)
	return GameResult{
		ID:          gameID(seed),
		Seed:        seed,
		Players:     [2]string{r.config.Player1, r.config.Player2},
		Moves:       moves,
		Winner:      winner,
		FinalScores: g.Scores,
		TotalMoves:  len(moves),
		DurationMs:  float64(elapsed.Nanoseconds()) / 1e6,
	}
}

// playGame drives g to completion, alternating moves between solvers by
// g.CurrentPlayer, and returns the recorded moves plus the settled winner.
// A player who can neither place nor swap ends the game immediately rather
// than spin forever retrying a swap the bag can't satisfy; in that case the
// winner is decided on points alone, since nobody reaches the out bonus.
func playGame(g *game.GameState, solvers [2]solver.Solver) ([]MoveJSON, int) {
	moves := make([]MoveJSON, 0)
	for !g.GameOver {
		player := g.CurrentPlayer
		allMoves := movegen.GenerateAllMoves(g)
		move, ok := solvers[player].SelectMove(g, allMoves)

		if ok {
			placements := make([]PlacementJSON, len(move.Placements))
			for i, p := range move.Placements {
				placements[i] = PlacementJSON{
					Row:  p.Pos.Row,
					Col:  p.Pos.Col,
					Tile: TileJSON{Shape: int(p.Tile.Shape), Color: int(p.Tile.Color)},
				}
			}
			score := g.PlayTiles(move.Placements)
			moves = append(moves, MoveJSON{Player: player, Placements: placements, Score: score})
			continue
		}

		if !g.SwapTiles([]int{0}) {
			break
		}
		moves = append(moves, MoveJSON{Player: player, WasSwap: true, SwapCount: 1})
	}

	winner := g.Winner
	if !g.GameOver {
		switch {
		case g.Scores[0] > g.Scores[1]:
			winner = 0
		case g.Scores[1] > g.Scores[0]:
			winner = 1
		default:
			winner = game.NoWinner
		}
	}
	return moves, winner
}

func gameID(seed int64) string {
	return "game_" + itoa64(seed)
}

func itoa64(n int64) string {
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

func (r *Runner) logStats(elapsed time.Duration) {
	games := atomic.LoadInt64(&r.stats.GamesPlayed)
	if games == 0 {
		log.Warn().Msg("simulation batch played zero games")
		return
	}
	p1Wins := atomic.LoadInt64(&r.stats.Player1Wins)
	p2Wins := atomic.LoadInt64(&r.stats.Player2Wins)
	ties := atomic.LoadInt64(&r.stats.Ties)
	totalMoves := atomic.LoadInt64(&r.stats.TotalMoves)

	log.Info().
		Int64("games", games).
		Dur("duration", elapsed.Round(time.Millisecond)).
		Float64("games_per_sec", float64(games)/elapsed.Seconds()).
		Float64("avg_moves", float64(totalMoves)/float64(games)).
		Str(r.config.Player1+"_wins", itoa64(p1Wins)).
		Str(r.config.Player2+"_wins", itoa64(p2Wins)).
		Int64("ties", ties).
		Msg("simulation complete")
}
