package service

import (
	"time"

	"gridmerge/game/engine"
)

// Reason codes for refused redo and hint operations.
const (
	ReasonRedoDisabled    = "disabled"
	ReasonEmptyStack      = "empty_stack"
	ReasonBudgetExhausted = "budget_exhausted"
	ReasonBlockedByHint   = "blocked_by_hint"
	ReasonNoLegalMoves    = "no_legal_moves"
)

// ResourceUsage describes consumption of a bounded per-session resource.
// Remaining and Total are -1 for unlimited resources.
type ResourceUsage struct {
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
	Total     int `json:"total"`
}

// Resources summarizes the session's redo and hint budgets.
type Resources struct {
	Hints ResourceUsage `json:"hints"`
	Redos ResourceUsage `json:"redos"`
}

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
	Resources      Resources          `json:"resources"`
}

// MoveResult contains the result of a move operation. An illegal move is a
// successful call with Legal false; the state is returned unchanged.
type MoveResult struct {
	Legal        bool              `json:"legal"`
	PointsEarned int               `json:"points_earned"`
	StreakBonus  int               `json:"streak_bonus"`
	TilesMerged  int               `json:"tiles_merged"`
	GameState    *engine.GameState `json:"game_state"`
	Message      string            `json:"message"`
	LegalMoves   []string          `json:"legal_moves"`
}

// RedoResult contains the result of a redo attempt. A refused redo is a
// successful call with Success false and a machine-friendly ReasonCode:
// disabled|empty_stack|budget_exhausted|blocked_by_hint.
type RedoResult struct {
	Success        bool              `json:"success"`
	ReasonCode     string            `json:"reason_code,omitempty"`
	Message        string            `json:"message"`
	GameState      *engine.GameState `json:"game_state"`
	RedosRemaining int               `json:"redos_remaining"`
}

// HintResult contains the result of a hint request. A refused hint carries
// ReasonCode budget_exhausted or no_legal_moves.
type HintResult struct {
	Success        bool                     `json:"success"`
	ReasonCode     string                   `json:"reason_code,omitempty"`
	Direction      string                   `json:"direction,omitempty"`
	Components     *engine.HintComponents   `json:"components,omitempty"`
	Alternatives   []engine.RankedDirection `json:"alternatives,omitempty"`
	Message        string                   `json:"message"`
	HintsRemaining int                      `json:"hints_remaining"`
	GameState      *engine.GameState        `json:"game_state"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveEntry `json:"moves"`
	TotalMoves  int                `json:"total_moves"`
	Page        int                `json:"page"`
	PageSize    int                `json:"page_size"`
	TotalPages  int                `json:"total_pages"`
	HasNext     bool               `json:"has_next"`
	HasPrevious bool               `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename      string `json:"filename"`
	ConfigID      string `json:"config_id"` // The identifier to use for session creation
	Name          string `json:"name"`      // Display name
	Description   string `json:"description"`
	Rows          int    `json:"rows"`
	Cols          int    `json:"cols"`
	WinTarget     int    `json:"win_target"`
	MergeStrategy string `json:"merge_strategy"`
	StreakEnabled bool   `json:"streak_enabled"`
	RedoLimit     int    `json:"redo_limit"`
	HintLimit     int    `json:"hint_limit"`
}
