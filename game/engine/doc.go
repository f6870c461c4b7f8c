// Package engine provides the core rules for the sliding-tile merge game.
//
// The engine package implements the game mechanics including:
//   - Board slides and tile merging under two merge strategies
//   - Scoring with an optional merge-streak bonus
//   - Tile spawning after committed moves
//   - Bounded redo of recent moves and a heuristic hint
//   - Win and game-over evaluation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState represents the current game state,
// while GameConfig defines the rule parameters loaded from JSON files.
//
// Usage:
//
//	config := engine.DefaultConfig()
//
//	gameEngine, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide the board
//	result := gameEngine.ApplyMove(engine.DirectionLeft)
//	state := gameEngine.GetState()
//
// Game Rules:
//
// Tiles slide as far as they can in the chosen direction. Equal adjacent
// tiles merge into their sum, scoring that many points; each tile merges at
// most once per move unless secondary merging is enabled. Every legal move
// spawns new tiles. The game is won when any tile reaches the win target and
// lost when no direction can change the board. A bounded redo budget lets
// the player take back recent moves, and a bounded hint budget suggests the
// best direction by a weighted board evaluation.
package engine
