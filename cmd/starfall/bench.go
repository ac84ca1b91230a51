package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pixelvoid/starfall/internal/config"
	"github.com/pixelvoid/starfall/internal/core"
	"github.com/pixelvoid/starfall/internal/loop"
	"github.com/pixelvoid/starfall/internal/shooter"
)

var flagBenchTicks int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the simulation headless and report timings",
	Long: `Run the full simulation loop (input, step, render) without a terminal
attached, as fast as possible, and report throughput. A simple autopilot
sweeps the ship left and right; finished runs restart with a fresh seed.

Examples:
  starfall bench
  starfall bench --ticks 1000000 --seed 42`,
	Run: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchTicks, "ticks", 100000, "Number of ticks to simulate")
}

func runBench(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "starfall-bench",
	})

	gameCfg := config.Default()
	game := shooter.New(gameCfg)
	driver := loop.New(game, shooter.NewAggregator(), core.NewScreen(80, 24), logger)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: fps, Seed: seed}
	driver.Reset(rt)

	logger.Info("bench started", "ticks", flagBenchTicks, "seed", seed)

	games := 1
	bestScore := 0
	start := time.Now()

	for i := 0; i < flagBenchTicks; i++ {
		// Autopilot: sweep left for a second, then right for a second.
		if (i/fps)%2 == 0 {
			driver.Input().Tap(shooter.DirLeft, 1)
		} else {
			driver.Input().Tap(shooter.DirRight, 1)
		}

		result := driver.Tick()
		if result.State.GameOver {
			if result.State.Score > bestScore {
				bestScore = result.State.Score
			}
			seed++
			rt.Seed = seed
			driver.Reset(rt)
			games++
		}
	}

	elapsed := time.Since(start)
	perSec := float64(flagBenchTicks) / elapsed.Seconds()
	snap := game.Snapshot()

	logger.Info("bench finished",
		"ticks", flagBenchTicks,
		"games", games,
		"best_score", bestScore,
		"enemies", snap.EnemyCount,
		"bullets", snap.BulletCount+snap.EnemyBulletCount,
		"elapsed", elapsed.Round(time.Millisecond),
		"ticks_per_sec", int(perSec),
	)
}
