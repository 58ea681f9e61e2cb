package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

var flagSteps int

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Run a headless game with a computer player",
	Long: `Play the specified variant without a display, driven by a simple
computer player, and print the result. With a fixed --seed the run is
reproducible: the printed hash is the same on every run.

Examples:
  brickbreaker simulate
  brickbreaker simulate arcade --steps 50000 --seed 42
  brickbreaker simulate shooter --difficulty hard --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	addGameFlags(simulateCmd, false)
	simulateCmd.Flags().IntVar(&flagSteps, "steps", 10000, "Maximum number of steps")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	id, err := variantArg(args)
	if err != nil {
		return err
	}
	if flagSteps <= 0 {
		return fmt.Errorf("--steps must be positive, got %d", flagSteps)
	}

	rt := runtimeConfig(0, 0)
	e, err := breakout.NewVariant(id, rt, breakout.WithLogger(logger.WithPrefix(id)))
	if err != nil {
		return err
	}

	res := simulate(e, flagSteps)
	snap := e.Snapshot()

	fmt.Fprintf(cmd.OutOrStdout(), "variant %s  seed %d  steps %d\n", id, rt.Seed, res.steps)
	fmt.Fprintf(cmd.OutOrStdout(), "phase %s  score %d  lives %d  level %d\n",
		res.state.Phase, res.state.Score, res.state.Lives, res.state.Level)
	fmt.Fprintf(cmd.OutOrStdout(), "bricks hit %d  levels cleared %d  lives lost %d\n",
		res.bricks, res.levels, res.livesLost)
	fmt.Fprintf(cmd.OutOrStdout(), "hash %016x\n", snap.Hash())
	return nil
}

type simResult struct {
	steps     int
	bricks    int
	levels    int
	livesLost int
	state     core.GameState
}

// simulate runs the autopilot until the game is over or maxSteps have
// been taken.
func simulate(e *breakout.Engine, maxSteps int) simResult {
	var res simResult
	for res.steps < maxSteps {
		e.Apply(breakout.Autopilot(e))
		step := e.Step()
		res.steps++

		for _, ev := range step.Events {
			switch ev.Kind {
			case core.EventBrick:
				res.bricks++
			case core.EventLevelComplete:
				res.levels++
			case core.EventLifeLost:
				res.livesLost++
			}
		}
		res.state = step.State
		if step.State.Phase == core.PhaseGameOver {
			break
		}
	}
	return res
}
