package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gridmerge/game/engine"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func testConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeConfig(t, dir, "classic.json", `{
		"name": "classic",
		"description": "Classic 4x4 board, reach 2048"
	}`)
	writeConfig(t, dir, "blitz.json", `{
		"name": "blitz",
		"rows": 3,
		"cols": 3,
		"win_target": 64,
		"streak_enabled": true,
		"streak_multiplier": 0.5
	}`)
	writeConfig(t, dir, "broken.json", `{"rows": 99}`)
	writeConfig(t, dir, "notes.txt", "not a config")

	return dir
}

func TestNewManager(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		if _, err := NewManager(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Fatal("expected error for missing directory")
		}
	})

	t.Run("default prefers classic", func(t *testing.T) {
		m, err := NewManager(testConfigDir(t))
		if err != nil {
			t.Fatalf("NewManager: %v", err)
		}
		if got := m.GetDefault().Name; got != "classic" {
			t.Errorf("default config = %q, want classic", got)
		}
	})

	t.Run("empty directory falls back to built-in defaults", func(t *testing.T) {
		m, err := NewManager(t.TempDir())
		if err != nil {
			t.Fatalf("NewManager: %v", err)
		}
		def := m.GetDefault()
		if def.Rows != 4 || def.WinTarget != 2048 {
			t.Errorf("built-in default = %+v", def)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	m, err := NewManager(testConfigDir(t))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	t.Run("loads and fills defaults", func(t *testing.T) {
		cfg, err := m.LoadConfig("blitz")
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Rows != 3 || cfg.WinTarget != 64 {
			t.Errorf("explicit fields lost: %+v", cfg)
		}
		// Omitted fields come from the classic defaults.
		if cfg.RedoLimit != 3 || cfg.MergeStrategy != engine.MergeStandard {
			t.Errorf("defaults not applied: %+v", cfg)
		}
	})

	t.Run("caches loaded configs", func(t *testing.T) {
		first, err := m.LoadConfig("blitz")
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		second, err := m.LoadConfig("blitz")
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if first != second {
			t.Error("second load bypassed the cache")
		}
	})

	t.Run("missing config", func(t *testing.T) {
		if _, err := m.LoadConfig("ghost"); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("missing config = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		if _, err := m.LoadConfig("broken"); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("invalid config = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestListConfigs(t *testing.T) {
	m, err := NewManager(testConfigDir(t))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	configs, err := m.ListConfigs()
	if err != nil {
		t.Fatalf("ListConfigs: %v", err)
	}

	// broken.json and notes.txt are skipped.
	if len(configs) != 2 {
		t.Fatalf("listed %d configs, want 2", len(configs))
	}

	byID := map[string]bool{}
	for _, info := range configs {
		byID[info.ConfigID] = true
		if info.Rows < engine.MinBoardDim {
			t.Errorf("config %s has rows %d", info.ConfigID, info.Rows)
		}
	}
	if !byID["classic"] || !byID["blitz"] {
		t.Errorf("unexpected config IDs: %v", byID)
	}
}

func TestSaveConfig(t *testing.T) {
	dir := testConfigDir(t)
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	t.Run("round trip", func(t *testing.T) {
		cfg := engine.DefaultConfig()
		cfg.Name = "custom"
		cfg.Rows = 5

		if err := m.SaveConfig("custom", cfg); err != nil {
			t.Fatalf("SaveConfig: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "custom.json")); err != nil {
			t.Errorf("config file not written: %v", err)
		}

		loaded, err := m.LoadConfig("custom")
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if loaded.Name != "custom" || loaded.Rows != 5 {
			t.Errorf("round trip lost fields: %+v", loaded)
		}
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		cfg := engine.DefaultConfig()
		cfg.WinTarget = 1

		if err := m.SaveConfig("bad", cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("SaveConfig = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestSetDefault(t *testing.T) {
	m, err := NewManager(testConfigDir(t))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if err := m.SetDefault("blitz"); err != nil {
		t.Fatalf("SetDefault: %v", err)
	}
	if got := m.GetDefault().Name; got != "blitz" {
		t.Errorf("default = %q, want blitz", got)
	}

	if err := m.SetDefault("ghost"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("SetDefault missing = %v, want ErrConfigNotFound", err)
	}
}
