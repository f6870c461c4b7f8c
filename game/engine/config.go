package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldViolation describes a single configuration constraint failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every violated constraint of a configuration.
// Validation never stops at the first failure; callers can report the full
// list to the user.
type ValidationErrors []FieldViolation

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fv := range v {
		msgs[i] = fv.Message
	}
	return "config validation: " + strings.Join(msgs, "; ")
}

// DefaultConfig returns the classic 4x4 game: reach 2048, one spawn per move,
// three redos and three hints.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:             "classic",
		Description:      "Classic 4x4 board, reach 2048",
		Rows:             4,
		Cols:             4,
		WinTarget:        2048,
		NewTileValues:    []int{2, 4},
		InitialTileCount: 2,
		SpawnCountMin:    1,
		SpawnCountMax:    1,
		MergeStrategy:    MergeStandard,
		StreakEnabled:    false,
		StreakMultiplier: 0,
		RedoLimit:        3,
		HintLimit:        3,
	}
}

// ConfigRequest carries caller-supplied parameters where any subset may be
// omitted. Nil fields take the value from DefaultConfig.
type ConfigRequest struct {
	Name                *string        `json:"name,omitempty"`
	Description         *string        `json:"description,omitempty"`
	Rows                *int           `json:"rows,omitempty"`
	Cols                *int           `json:"cols,omitempty"`
	WinTarget           *int           `json:"win_target,omitempty"`
	NewTileValues       []int          `json:"new_tile_values,omitempty"`
	InitialTileCount    *int           `json:"initial_tiles,omitempty"`
	SpawnCountMin       *int           `json:"spawn_min,omitempty"`
	SpawnCountMax       *int           `json:"spawn_max,omitempty"`
	MergeStrategy       *MergeStrategy `json:"merge_strategy,omitempty"`
	AllowSecondaryMerge *bool          `json:"allow_secondary_merge,omitempty"`
	StreakEnabled       *bool          `json:"streak_enabled,omitempty"`
	StreakMultiplier    *float64       `json:"streak_multiplier,omitempty"`
	RedoLimit           *int           `json:"redo_limit,omitempty"`
	HintLimit           *int           `json:"hint_limit,omitempty"`
	AllowRedoAfterHint  *bool          `json:"allow_redo_after_hint,omitempty"`
}

// NewConfigFromRequest applies defaults for omitted parameters and validates
// the result. On failure it returns the full ValidationErrors list and no
// configuration.
func NewConfigFromRequest(req *ConfigRequest) (*GameConfig, error) {
	cfg := DefaultConfig()
	if req == nil {
		return cfg, nil
	}

	if req.Name != nil {
		cfg.Name = *req.Name
	}
	if req.Description != nil {
		cfg.Description = *req.Description
	}
	if req.Rows != nil {
		cfg.Rows = *req.Rows
	}
	if req.Cols != nil {
		cfg.Cols = *req.Cols
	}
	if req.WinTarget != nil {
		cfg.WinTarget = *req.WinTarget
	}
	if req.NewTileValues != nil {
		cfg.NewTileValues = req.NewTileValues
	}
	if req.InitialTileCount != nil {
		cfg.InitialTileCount = *req.InitialTileCount
	}
	if req.SpawnCountMin != nil {
		cfg.SpawnCountMin = *req.SpawnCountMin
	}
	if req.SpawnCountMax != nil {
		cfg.SpawnCountMax = *req.SpawnCountMax
	}
	if req.MergeStrategy != nil {
		cfg.MergeStrategy = *req.MergeStrategy
	}
	if req.AllowSecondaryMerge != nil {
		cfg.AllowSecondaryMerge = *req.AllowSecondaryMerge
	}
	if req.StreakEnabled != nil {
		cfg.StreakEnabled = *req.StreakEnabled
	}
	if req.StreakMultiplier != nil {
		cfg.StreakMultiplier = *req.StreakMultiplier
	}
	if req.RedoLimit != nil {
		cfg.RedoLimit = *req.RedoLimit
	}
	if req.HintLimit != nil {
		cfg.HintLimit = *req.HintLimit
	}
	if req.AllowRedoAfterHint != nil {
		cfg.AllowRedoAfterHint = *req.AllowRedoAfterHint
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every constraint and returns the complete list of
// violations, or nil when the configuration is valid.
func (c *GameConfig) Validate() error {
	var violations ValidationErrors

	if err := validate.Struct(c); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			violations = append(violations, translateFieldError(fe))
		}
	}

	// Cross-field and arithmetic rules the struct tags cannot express.
	halfCells := c.Rows * c.Cols / 2

	for i, v := range c.NewTileValues {
		if v >= c.WinTarget {
			violations = append(violations, FieldViolation{
				Field:   "new_tile_values",
				Message: fmt.Sprintf("new_tile_values[%d] (%d) must be less than win_target (%d)", i, v, c.WinTarget),
			})
		}
	}

	if c.Rows >= MinBoardDim && c.Cols >= MinBoardDim {
		if c.InitialTileCount > halfCells {
			violations = append(violations, FieldViolation{
				Field:   "initial_tiles",
				Message: fmt.Sprintf("initial_tiles (%d) must not exceed half the board (%d)", c.InitialTileCount, halfCells),
			})
		}
		if c.SpawnCountMax > halfCells {
			violations = append(violations, FieldViolation{
				Field:   "spawn_max",
				Message: fmt.Sprintf("spawn_max (%d) must not exceed half the board (%d)", c.SpawnCountMax, halfCells),
			})
		}
	}

	if c.SpawnCountMin > c.SpawnCountMax {
		violations = append(violations, FieldViolation{
			Field:   "spawn_min",
			Message: fmt.Sprintf("spawn_min (%d) must not exceed spawn_max (%d)", c.SpawnCountMin, c.SpawnCountMax),
		})
	}

	if len(violations) == 0 {
		return nil
	}
	return violations
}

// translateFieldError renders a validator error as a user-facing violation.
func translateFieldError(fe validator.FieldError) FieldViolation {
	field := jsonFieldName(fe.Field())

	var msg string
	switch fe.Tag() {
	case "min":
		msg = fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		msg = fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		msg = fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		msg = fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}

	return FieldViolation{Field: field, Message: msg}
}

// jsonFieldName maps a Go struct field name to its JSON name for messages.
func jsonFieldName(goName string) string {
	names := map[string]string{
		"Rows":             "rows",
		"Cols":             "cols",
		"WinTarget":        "win_target",
		"NewTileValues":    "new_tile_values",
		"InitialTileCount": "initial_tiles",
		"SpawnCountMin":    "spawn_min",
		"SpawnCountMax":    "spawn_max",
		"MergeStrategy":    "merge_strategy",
		"StreakMultiplier": "streak_multiplier",
		"RedoLimit":        "redo_limit",
		"HintLimit":        "hint_limit",
	}
	if name, ok := names[goName]; ok {
		return name
	}
	return goName
}

// LoadConfigFile loads and validates a game configuration from a JSON file.
func LoadConfigFile(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(data)
}

// ParseConfig decodes a configuration from JSON, applying defaults for
// omitted fields, and validates it.
func ParseConfig(data []byte) (*GameConfig, error) {
	var req ConfigRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return NewConfigFromRequest(&req)
}
