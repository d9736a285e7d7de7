package anec_test

import (
	"fmt"

	"github.com/nullcone/anecprobe/anec"
	"github.com/nullcone/anecprobe/geodesic"
	"github.com/nullcone/anecprobe/metric"
	"github.com/nullcone/anecprobe/tensor"
)

// ExampleEvaluate contracts a constant analytic stress model along a flat
// null ray; the integrand is 1 everywhere, so the ANEC value equals the
// affine range.
func ExampleEvaluate() {
	stress := metric.StressFunc(func(tensor.Coordinate) (tensor.Matrix4, error) {
		var g tensor.Matrix4
		g[tensor.T][tensor.T] = 1
		return g, nil
	})

	opts := geodesic.DefaultOptions()
	opts.Steps = 8
	opts.LambdaMax = 16

	tr, err := geodesic.Integrate(metric.Minkowski{}, tensor.Coordinate{}, tensor.Vec4{1, 1, 0, 0}, &opts)
	if err != nil {
		fmt.Println("integrate:", err)
		return
	}

	res, err := anec.Evaluate(stress, tr, nil)
	if err != nil {
		fmt.Println("evaluate:", err)
		return
	}
	fmt.Printf("ANEC = %.1f over λmax = %.1f (drifted samples: %d)\n",
		res.Integral, tr.LambdaMax, res.Stats.DriftCount)
	// Output:
	// ANEC = 16.0 over λmax = 16.0 (drifted samples: 0)
}
