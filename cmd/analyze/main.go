// Command analyze prints quick, human-readable statistics about configuration
// files in the project's configs directory. For each config it runs a batch
// of heuristic self-play games and summarizes win rate, scores, largest tiles
// reached, and game lengths.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gridmerge/game/engine"
)

// playResult summarizes a single self-play game.
type playResult struct {
	Score   int
	MaxTile int
	Moves   int
	Won     bool
}

func main() {
	configDir := flag.String("configs", "configs", "directory with configuration JSON files")
	games := flag.Int("games", 50, "self-play games per configuration")
	maxMoves := flag.Int("max-moves", 5000, "move cap per game")
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*configDir, "*.json"))
	if err != nil || len(files) == 0 {
		fmt.Printf("No config files found in %s\n", *configDir)
		os.Exit(1)
	}
	sort.Strings(files)

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeConfig(file, *games, *maxMoves)
	}
}

func analyzeConfig(path string, games, maxMoves int) {
	config, err := engine.LoadConfigFile(path)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Printf("Board: %dx%d, target %d, %s merges\n",
		config.Rows, config.Cols, config.WinTarget, config.MergeStrategy)

	results := make([]playResult, 0, games)
	for seed := 0; seed < games; seed++ {
		result, err := selfPlay(config, int64(seed), maxMoves)
		if err != nil {
			fmt.Printf("Error running game %d: %v\n", seed, err)
			return
		}
		results = append(results, result)
	}

	printSummary(results)
}

// selfPlay runs one game, always following the hint heuristic.
func selfPlay(config *engine.GameConfig, seed int64, maxMoves int) (playResult, error) {
	eng, err := engine.NewEngineWithSeed(config, seed)
	if err != nil {
		return playResult{}, err
	}
	weights := engine.DefaultHintWeights()

	for moves := 0; moves < maxMoves; moves++ {
		state := eng.GetState()
		if state.Status != engine.StatusInProgress {
			break
		}

		hint, err := engine.SuggestMove(state.Board, config, weights)
		if err != nil {
			break
		}
		if result := eng.ApplyMove(hint.Direction); !result.Legal {
			break
		}
	}

	state := eng.GetState()
	return playResult{
		Score:   state.Score,
		MaxTile: state.Board.MaxTile(),
		Moves:   state.MoveCount,
		Won:     state.Status == engine.StatusWon,
	}, nil
}

func printSummary(results []playResult) {
	if len(results) == 0 {
		return
	}

	wins := 0
	totalScore, totalMoves := 0, 0
	bestScore, bestTile := 0, 0
	tileCounts := map[int]int{}

	for _, r := range results {
		if r.Won {
			wins++
		}
		totalScore += r.Score
		totalMoves += r.Moves
		if r.Score > bestScore {
			bestScore = r.Score
		}
		if r.MaxTile > bestTile {
			bestTile = r.MaxTile
		}
		tileCounts[r.MaxTile]++
	}

	n := len(results)
	fmt.Printf("Games: %d, wins: %d (%.0f%%)\n", n, wins, 100*float64(wins)/float64(n))
	fmt.Printf("Score: avg %d, best %d\n", totalScore/n, bestScore)
	fmt.Printf("Moves: avg %d\n", totalMoves/n)
	fmt.Printf("Best tile reached: %d\n", bestTile)

	tiles := make([]int, 0, len(tileCounts))
	for tile := range tileCounts {
		tiles = append(tiles, tile)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(tiles)))

	var parts []string
	for _, tile := range tiles {
		parts = append(parts, fmt.Sprintf("%d x%d", tile, tileCounts[tile]))
	}
	fmt.Printf("Final tile distribution: %s\n", strings.Join(parts, ", "))
}
