// Package session is the HTTP/JSON façade over the game engine: it holds
// live games in memory, keyed by a generated ID, and exposes them as a
// small REST API a browser or CLI client can drive.
package session

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/todd-working/qwirkle/board"
	"github.com/todd-working/qwirkle/game"
	"github.com/todd-working/qwirkle/montecarlo"
	"github.com/todd-working/qwirkle/movegen"
	"github.com/todd-working/qwirkle/rules"
	"github.com/todd-working/qwirkle/solver"
)

// Session is one in-progress or finished game, plus how its AI opponent
// (if any) should play.
type Session struct {
	Game       *game.GameState
	VsAI       bool
	AIStrategy string
}

// Server holds every live session. All access goes through mu, since the
// HTTP server may serve multiple requests for the same game concurrently.
type Server struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewServer creates an empty session store.
func NewServer() *Server {
	return &Server{sessions: make(map[string]*Session)}
}

// Router builds the chi router for the session API. Mounting it is the
// caller's job (cmd/qwirkle wires it under /api).
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", s.handleHealth)
	r.Post("/game/new", s.handleNewGame)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Get("/", s.handleGetState)
		r.Post("/play", s.handlePlay)
		r.Post("/swap", s.handleSwap)
		r.Get("/hint", s.handleHint)
		r.Post("/ai-step", s.handleAIStep)
		r.Get("/win-probability", s.handleWinProbability)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g := game.NewGame(0)
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = &Session{Game: g, VsAI: req.VsAI, AIStrategy: req.AIStrategy}
	s.mu.Unlock()

	log.Info().Str("game_id", id).Bool("vs_ai", req.VsAI).Msg("game created")
	writeJSON(w, s.buildStateResponse(id, g, "Game started!"))
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, ok := s.lookup(id)
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	writeJSON(w, s.buildStateResponse(id, sess.Game, ""))
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g := sess.Game
	hand := g.CurrentHand()
	placements := make([]rules.Placement, len(req.Placements))
	for i, p := range req.Placements {
		t, ok := hand.Get(p.TileIndex - 1)
		if !ok {
			writeJSON(w, PlayResponse{Success: false, Error: "invalid tile index"})
			return
		}
		placements[i] = rules.Placement{Pos: board.Position{Row: p.Row, Col: p.Col}, Tile: t}
	}

	score := g.PlayTiles(placements)
	if score < 0 {
		writeJSON(w, PlayResponse{Success: false, Error: "invalid move"})
		return
	}

	message := ""
	if score > 0 {
		message = "Scored points"
	}
	if sess.VsAI && !g.GameOver && g.CurrentPlayer == 1 {
		s.makeAIMove(sess)
	}

	resp := s.buildStateResponse(id, g, message)
	writeJSON(w, PlayResponse{Success: true, State: &resp})
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	var req SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	indices := make([]int, len(req.Indices))
	for i, idx := range req.Indices {
		indices[i] = idx - 1
	}

	if !sess.Game.SwapTiles(indices) {
		writeJSON(w, PlayResponse{Success: false, Error: "cannot swap tiles"})
		return
	}
	if sess.VsAI && !sess.Game.GameOver && sess.Game.CurrentPlayer == 1 {
		s.makeAIMove(sess)
	}

	resp := s.buildStateResponse(id, sess.Game, "Tiles swapped")
	writeJSON(w, PlayResponse{Success: true, State: &resp})
}

// handleHint suggests the best move for the player on turn, along with the
// scores of the next two best alternatives and what the suggested move
// would connect to on the board.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, ok := s.lookup(id)
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	g := sess.Game
	all := movegen.GenerateAllMoves(g)
	scored := movegen.FilterMovesByScore(all, 1)
	top := movegen.TopNMoves(scored, 3)
	if len(top) == 0 {
		writeJSON(w, HintResponse{HasMove: false, Message: "No valid moves - consider swapping tiles"})
		return
	}
	best := top[0]

	hand := g.CurrentHand()
	placements := make([]PlacementJSON, len(best.Placements))
	for i, p := range best.Placements {
		tileIndex := 1
		for j := 0; j < hand.Size(); j++ {
			if t, ok := hand.Get(j); ok && t.Equal(p.Tile) {
				tileIndex = j + 1
				break
			}
		}
		placements[i] = PlacementJSON{Row: p.Pos.Row, Col: p.Pos.Col, TileIndex: tileIndex}
	}

	connects := make([]string, 0)
	for _, p := range best.Placements {
		for _, n := range g.Board.GetNeighbors(p.Pos) {
			connects = append(connects, n.Tile.String())
		}
	}

	alternatives := make([]int, 0, len(top)-1)
	for _, m := range top[1:] {
		alternatives = append(alternatives, m.Score)
	}

	writeJSON(w, HintResponse{
		HasMove:           true,
		Message:           "Best move found",
		Placements:        placements,
		Connects:          connects,
		AlternativeScores: alternatives,
	})
}

func (s *Server) handleAIStep(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	if !sess.Game.GameOver {
		s.makeAIMove(sess)
	}
	resp := s.buildStateResponse(id, sess.Game, "AI moved")
	writeJSON(w, PlayResponse{Success: true, State: &resp})
}

func (s *Server) handleWinProbability(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, ok := s.lookup(id)
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	result := montecarlo.Estimate(r.Context(), sess.Game, montecarlo.DefaultSimulations)
	writeJSON(w, WinProbabilityResponse{
		P0Prob:       result.P0Win,
		P1Prob:       result.P1Win,
		TieProb:      result.Tie,
		NSimulations: result.Simulations,
		Confidence:   result.Confidence,
	})
}

func (s *Server) lookup(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// makeAIMove plays one move for the current player using the session's
// configured strategy, falling back to a tile swap when no move is
// available. Caller must hold s.mu.
func (s *Server) makeAIMove(sess *Session) {
	ai := solver.SolverByName(sess.AIStrategy, 0)
	if !solver.PlayTurn(ai, sess.Game) {
		log.Warn().Msg("AI had no move and could not swap")
	}
}

func (s *Server) buildStateResponse(id string, g *game.GameState, message string) GameStateResponse {
	boardMap := make(map[string]TileJSON)
	for _, pos := range g.Board.Positions() {
		t, ok := g.Board.Get(pos)
		if !ok {
			continue
		}
		boardMap[pos.String()] = TileJSON{Shape: int(t.Shape), Color: int(t.Color)}
	}

	handTiles := make([]TileJSON, 0, g.CurrentHand().Size())
	currentHand := g.CurrentHand()
	for i := 0; i < currentHand.Size(); i++ {
		if t, ok := currentHand.Get(i); ok {
			handTiles = append(handTiles, TileJSON{Shape: int(t.Shape), Color: int(t.Color)})
		}
	}

	lastMove := make([][2]int, 0)
	if len(g.MoveHistory) > 0 {
		last := g.MoveHistory[len(g.MoveHistory)-1]
		for _, p := range last.Placements {
			lastMove = append(lastMove, [2]int{p.Pos.Row, p.Pos.Col})
		}
	}

	var winner *int
	if g.GameOver {
		w := g.Winner
		winner = &w
	}

	return GameStateResponse{
		GameID:            id,
		Board:             boardMap,
		Hand:              handTiles,
		CurrentPlayer:     g.CurrentPlayer,
		Scores:            g.Scores,
		BagRemaining:      g.Bag.Remaining(),
		GameOver:          g.GameOver,
		Winner:            winner,
		LastMovePositions: lastMove,
		Message:           message,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
