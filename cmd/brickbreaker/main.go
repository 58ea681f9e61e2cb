// brickbreaker is a brick breaker game for the terminal and the desktop.
//
// Usage:
//
//	brickbreaker list                - List available variants
//	brickbreaker play [variant]      - Play in the terminal (picker when omitted)
//	brickbreaker window [variant]    - Play in a desktop window
//	brickbreaker simulate [variant]  - Run a headless autopilot game
//	brickbreaker config [variant]    - Print a variant's default YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the engine to register its variants
	_ "github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - bounce a ball, clear the wall",
	Long: `Brick Breaker is a paddle-and-ball game with several variants,
playable in the terminal or in a desktop window.

Available commands:
  list      - Show all variants
  play      - Play in the terminal
  window    - Play in a desktop window
  simulate  - Run a headless game with a computer player
  config    - Print a variant's default configuration

Examples:
  brickbreaker list
  brickbreaker play classic
  brickbreaker window arcade --scale 1.5
  brickbreaker simulate shooter --steps 20000 --seed 7
  brickbreaker config classic > my-classic.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
