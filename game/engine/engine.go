package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Redo and hint refusals. Each condition gets its own sentinel so callers can
// message the user precisely.
var (
	ErrRedoDisabled        = errors.New("redo is disabled for this game")
	ErrRedoBudgetExhausted = errors.New("no redos left")
	ErrRedoEmptyStack      = errors.New("no moves to redo")
	ErrRedoBlockedByHint   = errors.New("redo refused after a hint")
	ErrHintLimitExhausted  = errors.New("no hints left")
	ErrNoLegalMoves        = errors.New("no legal moves available")
)

// MoveResult is the outcome of ApplyMove. An illegal move is a normal,
// reportable result, not an error: Legal is false and the state is unchanged.
type MoveResult struct {
	Legal        bool       `json:"legal"`
	PointsEarned int        `json:"points_earned"`
	StreakBonus  int        `json:"streak_bonus"`
	TilesMerged  int        `json:"tiles_merged"`
	State        *GameState `json:"game_state"`
}

// Engine is the contract for one game session's rule evaluation. All methods
// operate on in-memory state; the engine performs no I/O and provides no
// internal locking. A concurrent host must serialize mutating calls
// (ApplyMove, Redo, Hint, Restart) per engine.
type Engine interface {
	// State and queries
	GetState() *GameState
	GetConfig() *GameConfig
	IsGameOver() bool
	IsWon() bool
	GetScore() int
	LegalMoves() []Direction
	HintsRemaining() int
	RedosRemaining() int
	GetMoveHistory() []MoveEntry
	GetHintHistory() []HintRecord

	// Transitions
	ApplyMove(dir Direction) *MoveResult
	Redo() (*GameState, error)
	Hint() (*Hint, error)
	Restart() *GameState
}

// GameEngine implements Engine.
type GameEngine struct {
	config  *GameConfig
	state   *GameState
	history *History
	rng     *rand.Rand
	weights HintWeights

	hintLog []HintRecord

	// lastActionHint gates redo when AllowRedoAfterHint is false.
	lastActionHint bool
}

// NewEngine validates the configuration, builds the initial board, and seeds
// it with the configured number of starting tiles. An invalid configuration
// returns ValidationErrors and no engine.
func NewEngine(cfg *GameConfig) (*GameEngine, error) {
	return NewEngineWithSeed(cfg, time.Now().UnixNano())
}

// NewEngineWithSeed is NewEngine with a deterministic random source, for
// reproducible games and tests.
func NewEngineWithSeed(cfg *GameConfig, seed int64) (*GameEngine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &GameEngine{
		config:  cfg,
		rng:     rand.New(rand.NewSource(seed)),
		weights: DefaultHintWeights(),
	}
	e.initGame()
	return e, nil
}

// initGame resets all state and places the initial tiles.
func (e *GameEngine) initGame() {
	e.state = &GameState{
		Board:       NewBoard(e.config.Rows, e.config.Cols),
		Status:      StatusInProgress,
		Message:     "Game started",
		MoveHistory: []MoveEntry{},
	}
	e.history = NewHistory(e.config.RedoLimit)
	e.hintLog = nil
	e.lastActionHint = false

	for i := 0; i < e.config.InitialTileCount; i++ {
		e.spawnTile()
	}
	e.evaluateStatus()
}

// GetState returns the current game state.
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// GetConfig returns the session configuration.
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// IsGameOver reports whether the game reached a dead board.
func (e *GameEngine) IsGameOver() bool {
	return e.state.Status == StatusGameOver
}

// IsWon reports whether the win target has been reached.
func (e *GameEngine) IsWon() bool {
	return e.state.Status == StatusWon
}

// GetScore returns the current score.
func (e *GameEngine) GetScore() int {
	return e.state.Score
}

// LegalMoves returns the directions that would change the board.
func (e *GameEngine) LegalMoves() []Direction {
	return LegalMoves(e.state.Board, e.config.MergeStrategy, e.config.AllowSecondaryMerge)
}

// HintsRemaining returns the number of hints still available.
func (e *GameEngine) HintsRemaining() int {
	remaining := e.config.HintLimit - e.state.HintsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RedosRemaining returns the remaining redo budget, or RedoUnlimited (-1)
// when the configuration allows unlimited redos.
func (e *GameEngine) RedosRemaining() int {
	if e.config.RedoLimit == RedoUnlimited {
		return RedoUnlimited
	}
	remaining := e.config.RedoLimit - e.state.RedosUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// GetMoveHistory returns the cumulative move log, oldest first.
func (e *GameEngine) GetMoveHistory() []MoveEntry {
	return e.state.MoveHistory
}

// GetHintHistory returns the hints issued so far, oldest first.
func (e *GameEngine) GetHintHistory() []HintRecord {
	return e.hintLog
}

// SetHintWeights replaces the heuristic weights used by Hint.
func (e *GameEngine) SetHintWeights(w HintWeights) {
	e.weights = w
}

// ApplyMove slides the board in the given direction and, when the move is
// legal, commits the transition: snapshot, score and streak update, tile
// spawn, and status evaluation. Illegal moves leave the state untouched.
func (e *GameEngine) ApplyMove(dir Direction) *MoveResult {
	if e.state.Status != StatusInProgress {
		e.state.Message = "Game is finished; start a new game to keep playing"
		return &MoveResult{Legal: false, State: e.state}
	}

	if _, ok := ParseDirection(string(dir)); !ok {
		e.state.Message = fmt.Sprintf("Invalid direction %q", dir)
		return &MoveResult{Legal: false, State: e.state}
	}

	outcome := Slide(e.state.Board, dir, e.config.MergeStrategy, e.config.AllowSecondaryMerge)
	if !outcome.Changed {
		e.state.Message = fmt.Sprintf("No tiles can move %s", dir)
		return &MoveResult{Legal: false, State: e.state}
	}

	rec := MoveRecord{
		Direction:       dir,
		BoardBefore:     e.state.Board.Clone(),
		ScoreBefore:     e.state.Score,
		StreakBefore:    e.state.StreakCount,
		MoveCountBefore: e.state.MoveCount,
		PointsEarned:    outcome.Points,
		TilesMerged:     outcome.Merges,
		Timestamp:       time.Now(),
	}

	e.state.Board = outcome.Board
	e.state.MoveCount++
	e.state.Score += outcome.Points

	bonus := 0
	if e.config.StreakEnabled {
		if outcome.MergeOccurred() {
			e.state.StreakCount++
			bonus = int(float64(outcome.Points) * e.config.StreakMultiplier * float64(e.state.StreakCount))
			e.state.Score += bonus
			e.state.Message = fmt.Sprintf("Moved %s: +%d points, streak %d (+%d bonus)",
				dir, outcome.Points, e.state.StreakCount, bonus)
		} else {
			e.state.StreakCount = 0
			e.state.Message = fmt.Sprintf("Moved %s: no merges, streak reset", dir)
		}
	} else {
		e.state.Message = fmt.Sprintf("Moved %s: +%d points", dir, outcome.Points)
	}

	rec.Spawned = e.spawnTiles()

	e.state.MoveHistory = append(e.state.MoveHistory, MoveEntry{
		MoveNumber:   e.state.MoveCount,
		Direction:    dir,
		PointsEarned: outcome.Points,
		StreakBonus:  bonus,
		TilesMerged:  outcome.Merges,
		StreakAfter:  e.state.StreakCount,
		SpawnedCount: len(rec.Spawned),
		Timestamp:    rec.Timestamp,
	})

	e.history.Push(rec)
	e.lastActionHint = false

	e.evaluateStatus()

	return &MoveResult{
		Legal:        true,
		PointsEarned: outcome.Points,
		StreakBonus:  bonus,
		TilesMerged:  outcome.Merges,
		State:        e.state,
	}
}

// Redo pops the most recent snapshot and restores board, score, streak, and
// move count to their pre-move values. Refusals are distinct errors:
// ErrRedoDisabled, ErrRedoBudgetExhausted, ErrRedoBlockedByHint,
// ErrRedoEmptyStack. Redo stays available in terminal states; restoring the
// pre-move snapshot reopens the game.
func (e *GameEngine) Redo() (*GameState, error) {
	if e.config.RedoLimit == RedoDisabled {
		return nil, ErrRedoDisabled
	}
	if e.config.RedoLimit != RedoUnlimited && e.state.RedosUsed >= e.config.RedoLimit {
		return nil, ErrRedoBudgetExhausted
	}
	if e.lastActionHint && !e.config.AllowRedoAfterHint {
		return nil, ErrRedoBlockedByHint
	}

	rec, ok := e.history.Pop()
	if !ok {
		return nil, ErrRedoEmptyStack
	}

	e.state.Board = rec.BoardBefore.Clone()
	e.state.Score = rec.ScoreBefore
	e.state.StreakCount = rec.StreakBefore
	e.state.MoveCount = rec.MoveCountBefore
	e.state.Status = StatusInProgress
	e.state.RedosUsed++
	if n := len(e.state.MoveHistory); n > 0 {
		e.state.MoveHistory = e.state.MoveHistory[:n-1]
	}
	e.state.Message = fmt.Sprintf("Move undone (%s)", rec.Direction)

	return e.state, nil
}

// Hint runs the local heuristic against the current board and records the
// suggestion. A successful hint consumes one unit of the hint budget and,
// unless AllowRedoAfterHint is set, blocks the next redo. A board with no
// legal move returns ErrNoLegalMoves without consuming the budget.
func (e *GameEngine) Hint() (*Hint, error) {
	if e.state.HintsUsed >= e.config.HintLimit {
		return nil, ErrHintLimitExhausted
	}
	// Finished games refuse moves, so there is nothing to suggest.
	if e.state.Status != StatusInProgress {
		return nil, ErrNoLegalMoves
	}

	hint, err := SuggestMove(e.state.Board, e.config, e.weights)
	if err != nil {
		return nil, err
	}

	e.state.HintsUsed++
	e.lastActionHint = true
	e.hintLog = append(e.hintLog, HintRecord{
		HintNumber:  e.state.HintsUsed,
		Direction:   hint.Direction,
		Composite:   hint.Components.Composite,
		RequestedAt: time.Now(),
	})
	e.state.Message = fmt.Sprintf("Hint: move %s (%d left)", hint.Direction, e.HintsRemaining())

	return hint, nil
}

// Restart discards the game state, history, and resource counters entirely
// and starts a fresh game with the same configuration.
func (e *GameEngine) Restart() *GameState {
	e.initGame()
	return e.state
}

// spawnTiles places a batch of new tiles after a committed move. The count
// is uniform over the configured spawn range, clamped to the number of empty
// cells; a full board spawns nothing.
func (e *GameEngine) spawnTiles() []TileSpawn {
	count := e.config.SpawnCountMin
	if spread := e.config.SpawnCountMax - e.config.SpawnCountMin; spread > 0 {
		count += e.rng.Intn(spread + 1)
	}

	var spawned []TileSpawn
	for i := 0; i < count; i++ {
		spawn, ok := e.spawnTile()
		if !ok {
			break
		}
		spawned = append(spawned, spawn)
	}
	return spawned
}

// spawnTile places one tile on a uniformly random empty cell with a value
// drawn uniformly from NewTileValues.
func (e *GameEngine) spawnTile() (TileSpawn, bool) {
	empty := e.state.Board.EmptyCells()
	if len(empty) == 0 {
		return TileSpawn{}, false
	}

	pos := empty[e.rng.Intn(len(empty))]
	value := e.config.NewTileValues[e.rng.Intn(len(e.config.NewTileValues))]
	e.state.Board[pos.Row][pos.Col] = value

	return TileSpawn{Position: pos, Value: value}, true
}

// evaluateStatus applies the Won / GameOver transitions. Won uses >= rather
// than == because custom win targets may be unreachable exactly by sum
// doublings; a win is checked before the dead-board test.
func (e *GameEngine) evaluateStatus() {
	if e.state.Board.MaxTile() >= e.config.WinTarget {
		e.state.Status = StatusWon
		e.state.Message = "You reached the target tile!"
		return
	}
	if !e.state.Board.CanMove() {
		e.state.Status = StatusGameOver
		e.state.Message = "No more valid moves"
	}
}
