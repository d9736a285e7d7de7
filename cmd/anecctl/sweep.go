package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nullcone/anecprobe/plot"
	"github.com/nullcone/anecprobe/results"
	"github.com/nullcone/anecprobe/sweep"
)

// sweepFlags holds output destinations for the sweep command.
type sweepFlags struct {
	Workers int
	DB      string
	Out     string
	Plot    string
}

// newSweepCommand expands a scenario into its case grid, evaluates it in
// parallel, and writes the records to the selected sinks.
func newSweepCommand(root *rootOptions) *cobra.Command {
	flags := &sweepFlags{}

	cmd := &cobra.Command{
		Use:   "sweep <scenario.yaml>",
		Short: "Evaluate a parameter sweep of ANEC integrals in parallel",
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
			if root.Verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "sweeping %q: %d cases\n", sc.Name, len(cases))
			}

			opts := sc.sweepOptions(flags.Workers)
			recs, err := sweep.Run(cmd.Context(), cases, &opts)
			if err != nil {
				return err
			}

			if flags.DB != "" {
				st, err := results.Open(cmd.Context(), flags.DB)
				if err != nil {
					return err
				}
				defer st.Close()
				if err := st.SaveRuns(cmd.Context(), sc.Name, recs); err != nil {
					return err
				}
			}
			if flags.Out != "" {
				if err := results.WriteJSON(flags.Out, sc.Name, recs); err != nil {
					return err
				}
			}
			if flags.Plot != "" {
				if err := writeSummaryPlot(flags.Plot, sc, recs); err != nil {
					return err
				}
			}
			return printRecords(cmd.OutOrStdout(), root.Format, recs)
		},
	}

	cmd.Flags().IntVar(&flags.Workers, "workers", 0, "worker pool size (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&flags.DB, "db", "", "SQLite database to append runs to")
	cmd.Flags().StringVar(&flags.Out, "out", "", "JSON file to export runs to")
	cmd.Flags().StringVar(&flags.Plot, "plot", "", "PNG file for the sweep summary figure")

	return cmd
}

// writeSummaryPlot renders integral-versus-parameter for grid scenarios.
func writeSummaryPlot(path string, sc *Scenario, recs []sweep.RunRecord) error {
	var (
		params []float64
		xLabel string
	)
	switch {
	case len(sc.Impacts) > 0:
		params, xLabel = sc.Impacts, "impact parameter"
	case len(sc.Alphas) > 0:
		params, xLabel = sc.Alphas, "coupling α"
	default:
		return fmt.Errorf("sweep: scenario %q has no parameter grid to plot", sc.Name)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sweep: create %s: %w", path, err)
	}
	defer f.Close()
	return plot.SweepSummary(f, sc.Name, xLabel, params, recs)
}
