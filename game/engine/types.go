package engine

import "time"

// Direction identifies one of the four slide directions.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Directions returns the four directions in their canonical evaluation order.
func Directions() []Direction {
	return []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}
}

// ParseDirection converts a user-supplied direction string.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return Direction(s), true
	}
	return "", false
}

// MergeStrategy selects which end of a tile run merges first.
type MergeStrategy string

const (
	// MergeStandard scans a compacted line from the leading edge, so an
	// odd-length run keeps its leftover tile at the trailing end:
	// [2,2,2] sliding left becomes [4,2].
	MergeStandard MergeStrategy = "standard"

	// MergeReverse scans from the trailing edge, so an odd-length run keeps
	// its leftover tile at the leading end: [2,2,2] sliding left becomes
	// [2,4]. Even-length runs merge identically under both strategies.
	MergeReverse MergeStrategy = "reverse"
)

// Status is the lifecycle state of a game.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusGameOver   Status = "game_over"
)

// Validation constants
const (
	MinBoardDim   = 3
	MaxBoardDim   = 12
	MinWinTarget  = 4
	MaxWinTarget  = 10000
	MinTileValue  = 1
	MaxTileValue  = 10
	MaxHintLimit  = 5
	RedoUnlimited = -1
	RedoDisabled  = 0
)

// GameConfig defines the rules of a game. It is immutable for the lifetime
// of a session; Validate must pass before an engine is created from it.
type GameConfig struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	Rows int `json:"rows" validate:"min=3,max=12"`
	Cols int `json:"cols" validate:"min=3,max=12"`

	WinTarget int `json:"win_target" validate:"min=4,max=10000"`

	// NewTileValues are the candidate values for spawned tiles, each drawn
	// uniformly. Every value must be below WinTarget.
	NewTileValues []int `json:"new_tile_values" validate:"min=1,dive,min=1,max=10"`

	InitialTileCount int `json:"initial_tiles" validate:"min=1"`
	SpawnCountMin    int `json:"spawn_min" validate:"min=1"`
	SpawnCountMax    int `json:"spawn_max" validate:"min=1"`

	MergeStrategy       MergeStrategy `json:"merge_strategy" validate:"oneof=standard reverse"`
	AllowSecondaryMerge bool          `json:"allow_secondary_merge"`

	StreakEnabled    bool    `json:"streak_enabled"`
	StreakMultiplier float64 `json:"streak_multiplier" validate:"min=0"`

	// RedoLimit bounds both the snapshot stack and the redo budget.
	// -1 means unlimited, 0 disables redo entirely.
	RedoLimit int `json:"redo_limit" validate:"min=-1"`

	HintLimit          int  `json:"hint_limit" validate:"min=0,max=5"`
	AllowRedoAfterHint bool `json:"allow_redo_after_hint"`
}

// Position is a board coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// TileSpawn records a tile placed by the spawner.
type TileSpawn struct {
	Position Position `json:"position"`
	Value    int      `json:"value"`
}

// GameState is the complete observable state of a game.
type GameState struct {
	Board       Board       `json:"board"`
	Score       int         `json:"score"`
	MoveCount   int         `json:"move_count"`
	StreakCount int         `json:"streak_count"`
	Status      Status      `json:"status"`
	HintsUsed   int         `json:"hints_used"`
	RedosUsed   int         `json:"redos_used"`
	Message     string      `json:"message,omitempty"`
	MoveHistory []MoveEntry `json:"move_history"`
}

// MoveEntry is one committed move in the cumulative move log.
type MoveEntry struct {
	MoveNumber   int       `json:"move_number"`
	Direction    Direction `json:"direction"`
	PointsEarned int       `json:"points_earned"`
	StreakBonus  int       `json:"streak_bonus"`
	TilesMerged  int       `json:"tiles_merged"`
	StreakAfter  int       `json:"streak_after"`
	SpawnedCount int       `json:"spawned_count"`
	Timestamp    time.Time `json:"timestamp"`
}

// MoveRecord is the immutable pre-move snapshot kept for redo. It is created
// once per committed move and never mutated afterwards.
type MoveRecord struct {
	Direction       Direction   `json:"direction"`
	BoardBefore     Board       `json:"board_before"`
	ScoreBefore     int         `json:"score_before"`
	StreakBefore    int         `json:"streak_before"`
	MoveCountBefore int         `json:"move_count_before"`
	PointsEarned    int         `json:"points_earned"`
	TilesMerged     int         `json:"tiles_merged"`
	Spawned         []TileSpawn `json:"spawned"`
	Timestamp       time.Time   `json:"timestamp"`
}

// HintRecord is one entry in the hint log.
type HintRecord struct {
	HintNumber  int       `json:"hint_number"`
	Direction   Direction `json:"direction"`
	Composite   float64   `json:"composite"`
	RequestedAt time.Time `json:"requested_at"`
}
