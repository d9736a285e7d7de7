// Command anecctl probes energy-condition violations: it integrates null
// geodesics through warp-bubble metrics, evaluates ANEC integrals, sweeps
// parameters in parallel, and persists or plots the results.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "anecctl:", err)
		os.Exit(1)
	}
}
