package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/platform/window"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play the specified variant (classic by default).
The paddle follows the mouse or a touch; clicking launches the ball.

Examples:
  brickbreaker window
  brickbreaker window arcade --scale 1.5 --sound
  brickbreaker window shooter --difficulty easy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd, true)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	id, err := variantArg(args)
	if err != nil {
		return err
	}

	rt := runtimeConfig(0, 0)
	game, err := registry.Create(id, registry.Options{Runtime: rt, Logger: logger})
	if err != nil {
		return err
	}

	sink, stopSound := newSink(logger)
	defer stopSound()

	final, err := window.Run(game, window.Options{
		Scale:  flagScale,
		TPS:    flagFPS,
		Logger: logger,
		Sink:   sink,
	})
	if err != nil {
		return fmt.Errorf("running window: %w", err)
	}

	logger.Info("window closed", "score", final.Score, "level", final.Level)
	return nil
}
