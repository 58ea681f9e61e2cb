package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print a variant's default configuration",
	Long: `Print the built-in YAML configuration of a variant (classic by default).
Save it, edit it and pass it back with --config.

Examples:
  brickbreaker config arcade > arcade.yaml
  brickbreaker play arcade --config arcade.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	id := config.VariantClassic
	if len(args) > 0 {
		id = args[0]
	}
	if !config.IsVariant(id) {
		return fmt.Errorf("unknown variant %q, available: %v", id, config.Variants())
	}
	_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML(id))
	return err
}
