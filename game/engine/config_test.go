package engine

import (
	"errors"
	"strings"
	"testing"
)

func violationFields(t *testing.T, err error) map[string]bool {
	t.Helper()

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
	}

	fields := make(map[string]bool)
	for _, v := range verrs {
		fields[v.Field] = true
	}
	return fields
}

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*GameConfig)
		wantField string
	}{
		{
			name:      "rows below minimum",
			mutate:    func(c *GameConfig) { c.Rows = 2 },
			wantField: "rows",
		},
		{
			name:      "cols above maximum",
			mutate:    func(c *GameConfig) { c.Cols = 13 },
			wantField: "cols",
		},
		{
			name:      "win target below minimum",
			mutate:    func(c *GameConfig) { c.WinTarget = 3 },
			wantField: "win_target",
		},
		{
			name:      "win target above maximum",
			mutate:    func(c *GameConfig) { c.WinTarget = 10001 },
			wantField: "win_target",
		},
		{
			name:      "empty spawn values",
			mutate:    func(c *GameConfig) { c.NewTileValues = []int{} },
			wantField: "new_tile_values",
		},
		{
			name:      "spawn value zero",
			mutate:    func(c *GameConfig) { c.NewTileValues = []int{0, 2} },
			wantField: "new_tile_values",
		},
		{
			name: "spawn value reaches win target",
			mutate: func(c *GameConfig) {
				c.WinTarget = 8
				c.NewTileValues = []int{2, 8}
			},
			wantField: "new_tile_values",
		},
		{
			name:      "initial tiles exceed half the board",
			mutate:    func(c *GameConfig) { c.InitialTileCount = 9 },
			wantField: "initial_tiles",
		},
		{
			name:      "spawn max exceeds half the board",
			mutate:    func(c *GameConfig) { c.SpawnCountMax = 9 },
			wantField: "spawn_max",
		},
		{
			name: "spawn min above spawn max",
			mutate: func(c *GameConfig) {
				c.SpawnCountMin = 3
				c.SpawnCountMax = 2
			},
			wantField: "spawn_min",
		},
		{
			name:      "unknown merge strategy",
			mutate:    func(c *GameConfig) { c.MergeStrategy = "sideways" },
			wantField: "merge_strategy",
		},
		{
			name:      "negative streak multiplier",
			mutate:    func(c *GameConfig) { c.StreakMultiplier = -0.5 },
			wantField: "streak_multiplier",
		},
		{
			name:      "redo limit below unlimited marker",
			mutate:    func(c *GameConfig) { c.RedoLimit = -2 },
			wantField: "redo_limit",
		},
		{
			name:      "hint limit above maximum",
			mutate:    func(c *GameConfig) { c.HintLimit = 6 },
			wantField: "hint_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if fields := violationFields(t, err); !fields[tt.wantField] {
				t.Errorf("expected violation on %q, got %v", tt.wantField, err)
			}
		})
	}
}

func TestConfigValidate_AcceptedEdges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"minimum board", func(c *GameConfig) { c.Rows, c.Cols = 3, 3 }},
		{"maximum board", func(c *GameConfig) { c.Rows, c.Cols = 12, 12 }},
		{"rectangular board", func(c *GameConfig) { c.Rows, c.Cols = 3, 12 }},
		{"unlimited redo", func(c *GameConfig) { c.RedoLimit = RedoUnlimited }},
		{"redo disabled", func(c *GameConfig) { c.RedoLimit = RedoDisabled }},
		{"hints disabled", func(c *GameConfig) { c.HintLimit = 0 }},
		{"minimum win target", func(c *GameConfig) {
			c.WinTarget = 4
			c.NewTileValues = []int{2}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err != nil {
				t.Errorf("expected valid config, got %v", err)
			}
		})
	}
}

func TestConfigValidate_ReportsAllViolations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 2
	cfg.WinTarget = 3
	cfg.MergeStrategy = "diagonal"
	cfg.HintLimit = 9

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := violationFields(t, err)
	for _, want := range []string{"rows", "win_target", "merge_strategy", "hint_limit"} {
		if !fields[want] {
			t.Errorf("missing violation for %q in %v", want, err)
		}
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("expected combined message, got %q", err.Error())
	}
}

func TestNewConfigFromRequest(t *testing.T) {
	t.Run("nil request yields defaults", func(t *testing.T) {
		cfg, err := NewConfigFromRequest(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Rows != 4 || cfg.Cols != 4 || cfg.WinTarget != 2048 {
			t.Errorf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("partial override keeps remaining defaults", func(t *testing.T) {
		rows, target := 5, 1024
		cfg, err := NewConfigFromRequest(&ConfigRequest{Rows: &rows, WinTarget: &target})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Rows != 5 || cfg.Cols != 4 || cfg.WinTarget != 1024 {
			t.Errorf("override not applied: %+v", cfg)
		}
		if cfg.RedoLimit != 3 || cfg.HintLimit != 3 {
			t.Errorf("defaults lost: %+v", cfg)
		}
	})

	t.Run("invalid override rejected", func(t *testing.T) {
		rows := 99
		if _, err := NewConfigFromRequest(&ConfigRequest{Rows: &rows}); err == nil {
			t.Fatal("expected validation error")
		}
	})
}

func TestParseConfig(t *testing.T) {
	t.Run("valid json", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`{
			"name": "blitz",
			"rows": 3,
			"cols": 3,
			"win_target": 64,
			"merge_strategy": "reverse",
			"streak_enabled": true,
			"streak_multiplier": 0.5
		}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Name != "blitz" || cfg.Rows != 3 || cfg.MergeStrategy != MergeReverse {
			t.Errorf("unexpected config: %+v", cfg)
		}
		if !cfg.StreakEnabled || cfg.StreakMultiplier != 0.5 {
			t.Errorf("streak fields lost: %+v", cfg)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := ParseConfig([]byte(`{"rows": `)); err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := ParseConfig([]byte(`{"rows": 2, "cols": 20}`))
		if err == nil {
			t.Fatal("expected validation error")
		}
		fields := violationFields(t, err)
		if !fields["rows"] || !fields["cols"] {
			t.Errorf("expected rows and cols violations, got %v", err)
		}
	})
}
