package session

// TileJSON is the wire representation of a tile: dense enum values rather
// than names, matching what the board and hand endpoints exchange with a
// client.
type TileJSON struct {
	Shape int `json:"shape"`
	Color int `json:"color"`
}

// PlacementJSON is one tile placement as exchanged over the wire: a board
// position plus a 1-based index into the current player's hand.
type PlacementJSON struct {
	Row       int `json:"row"`
	Col       int `json:"col"`
	TileIndex int `json:"tile_index"`
}

// NewGameRequest configures a freshly created session.
type NewGameRequest struct {
	VsAI       bool   `json:"vs_ai"`
	AIStrategy string `json:"ai_strategy"`
	AIVsAI     bool   `json:"ai_vs_ai"`
}

// GameStateResponse is the full state of a session, as returned after
// every mutating action and by the plain state fetch.
type GameStateResponse struct {
	GameID            string              `json:"game_id"`
	Board             map[string]TileJSON `json:"board"`
	Hand              []TileJSON          `json:"hand"`
	CurrentPlayer     int                 `json:"current_player"`
	Scores            [2]int              `json:"scores"`
	BagRemaining      int                 `json:"bag_remaining"`
	GameOver          bool                `json:"game_over"`
	Winner            *int                `json:"winner"`
	LastMovePositions [][2]int            `json:"last_move_positions"`
	Message           string              `json:"message,omitempty"`
}

// PlayRequest is a move submission: the tiles to place, identified by
// their current hand index.
type PlayRequest struct {
	Placements []PlacementJSON `json:"placements"`
}

// PlayResponse wraps the outcome of a play or swap request.
type PlayResponse struct {
	Success bool               `json:"success"`
	State   *GameStateResponse `json:"state,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// SwapRequest names hand slots (1-based) to exchange for fresh tiles.
type SwapRequest struct {
	Indices []int `json:"indices"`
}

// HintResponse suggests the best available move without playing it, plus
// the scores of the next-best alternatives and what the suggested move
// connects to on the board.
type HintResponse struct {
	HasMove           bool            `json:"has_move"`
	Message           string          `json:"message"`
	Placements        []PlacementJSON `json:"placements,omitempty"`
	Connects          []string        `json:"connects,omitempty"`
	AlternativeScores []int           `json:"alternative_scores,omitempty"`
}

// WinProbabilityResponse is a Monte Carlo win-probability estimate.
type WinProbabilityResponse struct {
	P0Prob       float64 `json:"p0_prob"`
	P1Prob       float64 `json:"p1_prob"`
	TieProb      float64 `json:"tie_prob"`
	NSimulations int     `json:"n_simulations"`
	Confidence   float64 `json:"confidence"`
}
