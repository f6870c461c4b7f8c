// Command validate provides a small CLI that validates game configuration JSON
// files in the ../configs directory. It checks:
//   - JSON structure and field constraints (board dimensions, win target,
//     spawn values, merge strategy, streak and budget parameters)
//   - Cross-field rules (spawn values below the win target, spawn counts
//     within board capacity, spawn_min <= spawn_max)
//
// All violations for a file are reported together. Valid files get an
// informational summary, including a note when the win target cannot be hit
// exactly by doubling any spawn value.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gridmerge/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Notes contains informational messages; otherwise Errors
// accumulates every violation that was found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
	Notes  []string
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:  filepath.Base(filePath),
		Valid: true,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	config, err := engine.ParseConfig(data)
	if err != nil {
		result.Valid = false

		var verrs engine.ValidationErrors
		if errors.As(err, &verrs) {
			for _, v := range verrs {
				result.Errors = append(result.Errors, v.Message)
			}
		} else {
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		}
		return result
	}

	result.Notes = append(result.Notes,
		fmt.Sprintf("Board: %dx%d, win target %d", config.Rows, config.Cols, config.WinTarget),
		fmt.Sprintf("Spawns: values %v, %d initial, %d-%d per move",
			config.NewTileValues, config.InitialTileCount, config.SpawnCountMin, config.SpawnCountMax),
		fmt.Sprintf("Merge: %s strategy, secondary=%v", config.MergeStrategy, config.AllowSecondaryMerge),
		fmt.Sprintf("Budgets: %s redos, %d hints", redoBudget(config.RedoLimit), config.HintLimit),
	)
	if config.StreakEnabled {
		result.Notes = append(result.Notes, fmt.Sprintf("Streak scoring enabled (x%.2f per streak step)", config.StreakMultiplier))
	}
	if !targetReachable(config) {
		result.Notes = append(result.Notes,
			fmt.Sprintf("Note: win target %d is not an exact doubling of any spawn value; the game is won on the first tile at or above it",
				config.WinTarget))
	}

	return result
}

func redoBudget(limit int) string {
	switch limit {
	case engine.RedoUnlimited:
		return "unlimited"
	case engine.RedoDisabled:
		return "no"
	default:
		return fmt.Sprintf("%d", limit)
	}
}

// targetReachable reports whether repeated doubling of some spawn value lands
// exactly on the win target.
func targetReachable(config *engine.GameConfig) bool {
	for _, v := range config.NewTileValues {
		for tile := v; tile <= config.WinTarget; tile *= 2 {
			if tile == config.WinTarget {
				return true
			}
		}
	}
	return false
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No config files found in %s\n", configDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, note := range result.Notes {
				fmt.Println("  " + note)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, msg := range result.Errors {
				fmt.Println("  ❌ " + msg)
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
