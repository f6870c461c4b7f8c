package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"gridmerge/game/engine"
)

// gameServiceImpl implements the GameService interface. The service mutex
// serializes all game operations, which also satisfies the engine's
// single-writer requirement per session.
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// CreateSession creates a new game session from a named configuration. An
// empty name uses the default configuration.
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	if configName != "" {
		loaded, err := s.configs.LoadConfig(configName)
		if err != nil {
			availableConfigs, listErr := s.configs.ListConfigs()
			if listErr == nil && len(availableConfigs) > 0 {
				var configIDs []string
				for _, cfg := range availableConfigs {
					configIDs = append(configIDs, cfg.ConfigID)
				}
				return nil, fmt.Errorf("config %q not found, available configs: %v", configName, configIDs)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
		config = loaded
	} else {
		config = s.configs.GetDefault()
	}

	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info().
		Str("session_id", session.ID).
		Str("config", config.Name).
		Int("rows", config.Rows).
		Int("cols", config.Cols).
		Msg("session created")

	return s.sessionInfo(session), nil
}

// CreateSessionCustom creates a session from caller-supplied parameters.
// Omitted parameters take the classic defaults; an invalid combination
// returns the full list of violations.
func (s *gameServiceImpl) CreateSessionCustom(ctx context.Context, req *engine.ConfigRequest) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := engine.NewConfigFromRequest(req)
	if err != nil {
		return nil, err
	}
	if req == nil || req.Name == nil {
		config.Name = "custom"
	}

	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info().
		Str("session_id", session.ID).
		Str("config", config.Name).
		Msg("custom session created")

	return s.sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return err
	}

	log.Info().Str("session_id", sessionID).Msg("session deleted")
	return nil
}

// Move executes a single move for a session
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, direction string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	result := sess.Engine.ApplyMove(engine.Direction(direction))
	state := sess.Engine.GetState()

	if result.Legal {
		log.Debug().
			Str("session_id", sessionID).
			Str("direction", direction).
			Int("points", result.PointsEarned).
			Int("score", state.Score).
			Str("status", string(state.Status)).
			Msg("move applied")
	}

	return &MoveResult{
		Legal:        result.Legal,
		PointsEarned: result.PointsEarned,
		StreakBonus:  result.StreakBonus,
		TilesMerged:  result.TilesMerged,
		GameState:    state,
		Message:      state.Message,
		LegalMoves:   directionStrings(sess.Engine.LegalMoves()),
	}, nil
}

// Redo takes back the most recent move. A refused redo is reported in the
// result, not as an error.
func (s *gameServiceImpl) Redo(ctx context.Context, sessionID string) (*RedoResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	state, redoErr := sess.Engine.Redo()
	if redoErr != nil {
		return &RedoResult{
			Success:        false,
			ReasonCode:     redoReasonCode(redoErr),
			Message:        redoErr.Error(),
			GameState:      sess.Engine.GetState(),
			RedosRemaining: sess.Engine.RedosRemaining(),
		}, nil
	}

	log.Debug().
		Str("session_id", sessionID).
		Int("redos_used", state.RedosUsed).
		Msg("move undone")

	return &RedoResult{
		Success:        true,
		Message:        state.Message,
		GameState:      state,
		RedosRemaining: sess.Engine.RedosRemaining(),
	}, nil
}

// Hint suggests the best direction for the current board. A refused hint is
// reported in the result, not as an error.
func (s *gameServiceImpl) Hint(ctx context.Context, sessionID string) (*HintResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	hint, hintErr := sess.Engine.Hint()
	if hintErr != nil {
		return &HintResult{
			Success:        false,
			ReasonCode:     hintReasonCode(hintErr),
			Message:        hintErr.Error(),
			HintsRemaining: sess.Engine.HintsRemaining(),
			GameState:      sess.Engine.GetState(),
		}, nil
	}

	return &HintResult{
		Success:        true,
		Direction:      string(hint.Direction),
		Components:     &hint.Components,
		Alternatives:   hint.Alternatives,
		Message:        sess.Engine.GetState().Message,
		HintsRemaining: sess.Engine.HintsRemaining(),
		GameState:      sess.Engine.GetState(),
	}, nil
}

// Restart discards the session's game and starts a fresh one with the same
// configuration.
func (s *gameServiceImpl) Restart(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.Restart()

	log.Info().Str("session_id", sessionID).Msg("game restarted")
	return state, nil
}

// GetGameState returns the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	return sess.Engine.GetState(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetMoveHistory()
	total := len(history)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var moves []engine.MoveEntry
	if opts.Order == "desc" {
		// Most recent first.
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else {
		if start < total {
			moves = history[start:end]
		}
	}
	if moves == nil {
		moves = []engine.MoveEntry{}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a configuration by name
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig persists a configuration under the given name
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// sessionInfo assembles the API view of a session.
func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	state := sess.Engine.GetState()

	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     sess.Config.Name,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      state,
		GameConfig:     sess.Config,
		Resources: Resources{
			Hints: ResourceUsage{
				Used:      state.HintsUsed,
				Remaining: sess.Engine.HintsRemaining(),
				Total:     sess.Config.HintLimit,
			},
			Redos: ResourceUsage{
				Used:      state.RedosUsed,
				Remaining: sess.Engine.RedosRemaining(),
				Total:     sess.Config.RedoLimit,
			},
		},
	}
}

// redoReasonCode maps an engine redo refusal to its machine-friendly code.
func redoReasonCode(err error) string {
	switch {
	case errors.Is(err, engine.ErrRedoDisabled):
		return ReasonRedoDisabled
	case errors.Is(err, engine.ErrRedoBudgetExhausted):
		return ReasonBudgetExhausted
	case errors.Is(err, engine.ErrRedoBlockedByHint):
		return ReasonBlockedByHint
	case errors.Is(err, engine.ErrRedoEmptyStack):
		return ReasonEmptyStack
	default:
		return ""
	}
}

// hintReasonCode maps an engine hint refusal to its machine-friendly code.
func hintReasonCode(err error) string {
	switch {
	case errors.Is(err, engine.ErrHintLimitExhausted):
		return ReasonBudgetExhausted
	case errors.Is(err, engine.ErrNoLegalMoves):
		return ReasonNoLegalMoves
	default:
		return ""
	}
}

func directionStrings(dirs []engine.Direction) []string {
	result := make([]string, len(dirs))
	for i, d := range dirs {
		result[i] = string(d)
	}
	return result
}
