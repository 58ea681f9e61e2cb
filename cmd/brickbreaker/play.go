package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing the specified variant in the terminal.
Without a variant, a picker lists the available ones.

Controls:
  Left/Right, A/D  - Move paddle (the mouse works too)
  Space/Up/Click   - Launch ball, start, continue
  P/Esc            - Pause
  N/Enter          - Next level
  R                - Restart
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Five lives, wider paddle, base speed
  normal - Ball 15% faster
  hard   - Two lives, narrower paddle, ball 35% faster
  fixed  - Speed scaling disabled

Examples:
  brickbreaker play
  brickbreaker play arcade --difficulty hard
  brickbreaker play classic --config ./my-classic.yaml --sound
  brickbreaker play shooter --log-file /tmp/bb.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd, true)
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alt screen owns stdout, so logs go nowhere unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	var id string
	if len(args) == 0 {
		id, err = tui.RunMenu(width, height)
		if err != nil {
			return err
		}
		if id == "" {
			return nil
		}
	} else if id, err = variantArg(args); err != nil {
		return err
	}

	rt := runtimeConfig(width, height)
	game, err := registry.Create(id, registry.Options{Runtime: rt, Logger: logger})
	if err != nil {
		return err
	}

	sink, stopSound := newSink(logger)
	defer stopSound()

	logger.Info("starting", "variant", id, "seed", rt.Seed, "difficulty", rt.Difficulty)
	final, err := tui.Run(game, tui.Options{Runtime: rt, Logger: logger, Sink: sink})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Printf("%s: score %d, level %d\n", game.Title(), final.Score, final.Level)
	return nil
}
