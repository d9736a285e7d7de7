package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nullcone/anecprobe/anec"
	"github.com/nullcone/anecprobe/metric"
	"github.com/nullcone/anecprobe/sweep"
	"github.com/nullcone/anecprobe/tensor"
)

// compareReport is the JSON shape of a static-versus-pulsed comparison.
type compareReport struct {
	Scenario          string  `json:"scenario"`
	StaticANEC        float64 `json:"static_anec"`
	PulsedANEC        float64 `json:"pulsed_anec"`
	RelativeDeviation float64 `json:"relative_deviation"`
}

// newCompareCommand runs the same ray through the static bubble and its
// pulsed variant and reports the relative ANEC deviation.
func newCompareCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <scenario.yaml>",
		Short: "Compare ANEC integrals of the static and pulsed bubble",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			if sc.Metric.Window == nil {
				return errNeedsWindow
			}
			w := sc.Metric.Window

			static, err := metric.NewAlcubierre(sc.Metric.Velocity, sc.Metric.Radius, sc.Metric.Wall)
			if err != nil {
				return err
			}
			pulsed, err := metric.NewPulsed(sc.Metric.Velocity, sc.Metric.Radius, sc.Metric.Wall, w.T0, w.T1, w.Ramp)
			if err != nil {
				return err
			}

			start := tensor.Coordinate(sc.Start)
			cases := []sweep.Case{
				{Name: sc.Name + "/static", Metric: static, Start: start, Direction: sc.Direction},
				{Name: sc.Name + "/pulsed", Metric: pulsed, Start: start, Direction: sc.Direction},
			}
			opts := sc.sweepOptions(2)
			recs, err := sweep.Run(cmd.Context(), cases, &opts)
			if err != nil {
				return err
			}
			for _, r := range recs {
				if r.Failed() {
					return fmt.Errorf("compare: %s: %s", r.Name, r.Error)
				}
			}

			rep := compareReport{
				Scenario:          sc.Name,
				StaticANEC:        recs[0].Result.Integral,
				PulsedANEC:        recs[1].Result.Integral,
				RelativeDeviation: anec.RelativeDeviation(recs[1].Result, recs[0].Result),
			}
			out := cmd.OutOrStdout()
			if root.Format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			fmt.Fprintf(out, "static:  ANEC=%+.6e\n", rep.StaticANEC)
			fmt.Fprintf(out, "pulsed:  ANEC=%+.6e\n", rep.PulsedANEC)
			fmt.Fprintf(out, "relative deviation: %.4f\n", rep.RelativeDeviation)
			return nil
		},
	}
}
