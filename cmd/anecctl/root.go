package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootOptions holds the global flags shared by all subcommands.
type rootOptions struct {
	Verbose bool
	Format  string // "text" | "json"
}

// validFormats lists the allowed output formats.
var validFormats = []string{"text", "json"}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "anecctl",
		Short: "ANEC probe for warp-bubble spacetimes",
		Long: "anecctl integrates null geodesics through analytically specified metrics\n" +
			"(static and pulsed warp bubbles, modified-gravity perturbations) and\n" +
			"evaluates the Averaged Null Energy Condition integral along them.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newSweepCommand(opts))
	cmd.AddCommand(newCompareCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}
