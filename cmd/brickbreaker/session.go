package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/audio"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

// Flags shared by the commands that start a game
var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
)

func addGameFlags(cmd *cobra.Command, withSound bool) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	if withSound {
		cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
		cmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
	}
}

// newLogger builds the command logger. Logs go to --log-file when set and
// to fallback otherwise. The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickbreaker",
		Level:           level,
	})
	return logger, closeFn, nil
}

// runtimeConfig collects the global flags. A zero seed is replaced by the
// current time.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       seed,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}
}

// variantArg returns the variant named on the command line, or the default.
func variantArg(args []string) (string, error) {
	id := config.VariantClassic
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown variant %q, run 'brickbreaker list' to see available variants", id)
	}
	return id, nil
}

// newSink returns the sound effects sink when --sound is set. Audio
// failures are logged and the game runs silent.
func newSink(logger *log.Logger) (core.EventSink, func()) {
	if !flagSound {
		return nil, func() {}
	}
	sm := audio.NewSoundManager(flagVolume, logger.WithPrefix("audio"))
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing without sound", "err", err)
		return nil, func() {}
	}
	return sm, sm.Cleanup
}
