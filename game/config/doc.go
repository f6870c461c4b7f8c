// Package config provides configuration management for the merge game.
//
// The config package handles:
//   - Loading game configurations from JSON files
//   - Configuration validation and caching
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Board dimensions (rows and cols, 3 to 12 each)
//   - The win target tile and spawnable tile values
//   - Merge strategy (standard or reverse) and secondary merging
//   - Streak scoring parameters
//   - Redo and hint budgets
//
// Omitted fields take the classic defaults, so a config file only needs the
// parameters it changes.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("blitz")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
package config
