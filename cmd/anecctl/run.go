package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nullcone/anecprobe/sweep"
)

// newRunCommand evaluates a single scenario case and prints the result.
func newRunCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Integrate one geodesic and evaluate its ANEC integral",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			cases, err := sc.buildCases()
			if err != nil {
				return err
			}
			if len(cases) > 1 {
				return fmt.Errorf("run: scenario %q expands to %d cases; use the sweep command", sc.Name, len(cases))
			}

			if root.Verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "integrating %q: λ ∈ [0, %g], %d steps\n",
					sc.Name, sc.LambdaMax, sc.Steps)
			}

			opts := sc.sweepOptions(1)
			recs, err := sweep.Run(cmd.Context(), cases, &opts)
			if err != nil {
				return err
			}
			if recs[0].Failed() {
				return fmt.Errorf("run: %s", recs[0].Error)
			}
			return printRecords(cmd.OutOrStdout(), root.Format, recs)
		},
	}
}
