// Command gridmerge plays rule-driven sliding-merge games in the terminal.
//
// It supports three subcommands:
//  1. "play" (default) – interactive play of one session, with redo and hint
//  2. "autoplay" – one heuristic self-play game with a move-by-move trace
//  3. "configs" – list the available game configurations
//
// Flags control the config directory, the chosen configuration, debug
// logging, and self-play limits.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"gridmerge/game/config"
	"gridmerge/game/engine"
	"gridmerge/game/service"
	"gridmerge/game/session"
)

const (
	Version = "1.0.0"
	AppName = "gridmerge"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
	}

	cmd := &cli.Command{
		Name:    AppName,
		Usage:   "rule-driven sliding-merge puzzle games",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-dir",
				Value: configDirDefault(),
				Usage: "directory containing game configurations",
			},
			&cli.StringFlag{
				Name:  "config",
				Value: "",
				Usage: "configuration name (empty for the default)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play a game interactively",
				Action: runPlay,
			},
			{
				Name:  "autoplay",
				Usage: "run one heuristic self-play game",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "seed",
						Value: 0,
						Usage: "random seed",
					},
					&cli.IntFlag{
						Name:  "max-moves",
						Value: 5000,
						Usage: "move cap",
					},
				},
				Action: runAutoplay,
			},
			{
				Name:   "configs",
				Usage:  "list available configurations",
				Action: runConfigs,
			},
		},
		DefaultCommand: "play",
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

// configDirDefault honors the CONFIG_DIR environment variable, then falls
// back to "configs".
func configDirDefault() string {
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		return dir
	}
	return "configs"
}

// setupLogging points zerolog at stderr with a console writer so log lines
// don't interleave with the board rendering on stdout.
func setupLogging(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}

// buildService wires the config manager, session manager, and game service.
func buildService(configDir string) (service.GameService, error) {
	configs, err := config.NewManager(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config manager: %w", err)
	}
	return service.NewGameService(session.NewManager(), configs), nil
}

// runPlay starts an interactive session on stdin/stdout.
func runPlay(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd.Bool("debug"))

	svc, err := buildService(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	info, err := svc.CreateSession(ctx, cmd.String("config"))
	if err != nil {
		return err
	}

	fmt.Printf("%s v%s — %s (%dx%d, reach %d)\n",
		AppName, Version, info.GameConfig.Name,
		info.GameConfig.Rows, info.GameConfig.Cols, info.GameConfig.WinTarget)
	fmt.Println("Commands: up/down/left/right (or u/d/l/r), redo, hint, restart, quit")
	printState(info.GameState)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch input {
		case "":
			continue
		case "quit", "exit", "q":
			fmt.Println("Bye!")
			return nil
		case "restart":
			state, err := svc.Restart(ctx, info.ID)
			if err != nil {
				return err
			}
			fmt.Println("Game restarted.")
			printState(state)
		case "redo":
			result, err := svc.Redo(ctx, info.ID)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
			if result.Success {
				printState(result.GameState)
			}
		case "hint":
			result, err := svc.Hint(ctx, info.ID)
			if err != nil {
				return err
			}
			if result.Success {
				fmt.Printf("Hint: move %s (%d hints left)\n", result.Direction, result.HintsRemaining)
			} else {
				fmt.Println(result.Message)
			}
		default:
			dir, ok := parseDirectionInput(input)
			if !ok {
				fmt.Printf("Unknown command %q\n", input)
				continue
			}

			result, err := svc.Move(ctx, info.ID, dir)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
			if result.Legal {
				printState(result.GameState)
			}
			if result.GameState.Status != engine.StatusInProgress {
				fmt.Println("Type 'redo' to take the move back or 'restart' for a new game.")
			}
		}
	}
}

// runAutoplay plays one game with the hint heuristic, tracing each move.
func runAutoplay(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd.Bool("debug"))

	configDir := cmd.String("config-dir")
	configs, err := config.NewManager(configDir)
	if err != nil {
		return err
	}

	gameConfig := configs.GetDefault()
	if name := cmd.String("config"); name != "" {
		gameConfig, err = configs.LoadConfig(name)
		if err != nil {
			return err
		}
	}

	eng, err := engine.NewEngineWithSeed(gameConfig, int64(cmd.Int("seed")))
	if err != nil {
		return err
	}

	weights := engine.DefaultHintWeights()
	maxMoves := int(cmd.Int("max-moves"))

	for i := 0; i < maxMoves; i++ {
		state := eng.GetState()
		if state.Status != engine.StatusInProgress {
			break
		}

		hint, err := engine.SuggestMove(state.Board, gameConfig, weights)
		if err != nil {
			break
		}

		result := eng.ApplyMove(hint.Direction)
		if !result.Legal {
			break
		}
		log.Debug().
			Int("move", eng.GetState().MoveCount).
			Str("direction", string(hint.Direction)).
			Int("points", result.PointsEarned).
			Msg("autoplay move")
	}

	state := eng.GetState()
	fmt.Printf("Finished after %d moves: %s\n", state.MoveCount, state.Status)
	fmt.Printf("Score %d, best tile %d\n", state.Score, state.Board.MaxTile())
	printState(state)
	return nil
}

// runConfigs lists the available configurations.
func runConfigs(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd.Bool("debug"))

	svc, err := buildService(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	infos, err := svc.ListConfigs(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%-12s %-7s %-8s %-9s %s\n", "CONFIG", "BOARD", "TARGET", "STRATEGY", "DESCRIPTION")
	for _, info := range infos {
		fmt.Printf("%-12s %dx%-5d %-8d %-9s %s\n",
			info.ConfigID, info.Rows, info.Cols, info.WinTarget, info.MergeStrategy, info.Description)
	}
	return nil
}

// parseDirectionInput accepts full direction names and single-letter aliases.
func parseDirectionInput(input string) (string, bool) {
	switch input {
	case "u", "up":
		return string(engine.DirectionUp), true
	case "d", "down":
		return string(engine.DirectionDown), true
	case "l", "left":
		return string(engine.DirectionLeft), true
	case "r", "right":
		return string(engine.DirectionRight), true
	}
	return "", false
}

// printState renders the board and the headline counters.
func printState(state *engine.GameState) {
	width := 1
	for _, row := range state.Board {
		for _, v := range row {
			if n := len(fmt.Sprint(v)); n > width {
				width = n
			}
		}
	}

	for _, row := range state.Board {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == 0 {
				cells[i] = fmt.Sprintf("%*s", width, ".")
			} else {
				cells[i] = fmt.Sprintf("%*d", width, v)
			}
		}
		fmt.Println("  " + strings.Join(cells, " "))
	}

	fmt.Printf("Score %d", state.Score)
	if state.StreakCount > 0 {
		fmt.Printf(" (streak %d)", state.StreakCount)
	}
	fmt.Printf(" | moves %d | status %s\n", state.MoveCount, state.Status)
}
