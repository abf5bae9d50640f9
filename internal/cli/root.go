// Package cli implements the hongyeon command line
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hongyeon",
		Short:        "Hongyeon: birth-year compatibility scoring",
		SilenceUsage: true,
	}

	cmd.AddCommand(scoreCmd())
	cmd.AddCommand(serveCmd())
	return cmd
}
