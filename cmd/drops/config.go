package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-drops/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.drops/config.yaml or ./configs/drops.yaml and edit it to customize
timings, difficulties, milestones and messages.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
