// starfall is a pixel-art space shooter for the terminal.
//
// Usage:
//
//	starfall play            - Play in the current terminal
//	starfall serve           - Start an SSH server for remote play
//	starfall bench           - Run the simulation headless and report timings
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - a pixel-art space shooter in your terminal",
	Long: `Starfall is a terminal space shooter: dodge the falling invaders,
your ship fires on its own, survive as long as you can.

Available commands:
  play     - Play in the current terminal
  serve    - Start an SSH server for remote play
  bench    - Run the simulation headless and report timings

Examples:
  starfall play
  starfall play --difficulty hard
  starfall play --config ./my-starfall.yaml
  starfall serve --ssh :2222
  starfall bench --ticks 100000`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(benchCmd)
}
