package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nullcone/anecprobe/sweep"
)

// printRecords writes run records in the selected format.
func printRecords(w io.Writer, format string, recs []sweep.RunRecord) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}
	for _, r := range recs {
		printRecord(w, &r)
	}
	return nil
}

// printRecord writes one record as text.
func printRecord(w io.Writer, r *sweep.RunRecord) {
	if r.Failed() {
		fmt.Fprintf(w, "%-24s FAILED  %s\n", r.Name, r.Error)
		return
	}
	s := r.Result.Stats
	fmt.Fprintf(w, "%-24s ANEC=%+.6e  residual[%+.2e, %+.2e]  drift=%d/%d\n",
		r.Name, r.Result.Integral, s.ResidualMin, s.ResidualMax, s.DriftCount, len(s.Contractions))
}
