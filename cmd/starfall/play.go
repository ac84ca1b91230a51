package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pixelvoid/starfall/internal/config"
	"github.com/pixelvoid/starfall/internal/core"
	"github.com/pixelvoid/starfall/internal/platform/tui"
	"github.com/pixelvoid/starfall/internal/shooter"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a play session in the current terminal.

Controls:
  Arrows/WASD  - Move the ship (it fires on its own)
  Mouse drag   - Steer toward the cursor
  +/-          - Grow/shrink the ship
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit
  Any key      - Restart after game over

Difficulty options:
  easy   - 0.7x speed
  normal - 1.0x speed
  hard   - 1.5x speed
  fixed  - Keep the speed multiplier from the config file

Examples:
  starfall play
  starfall play --difficulty hard
  starfall play --config ./my-starfall.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
			config.ApplyPreset(&gameCfg, preset)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal, hard or fixed)\n", flagDifficulty)
			os.Exit(1)
		}
	}

	// Terminal size for the initial screen buffer; resizes are handled live.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if runErr := tui.Run(shooter.New(gameCfg), rt, nil); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
