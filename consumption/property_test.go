package consumption_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/arnvidarsen/evlink/consumption"
	"github.com/arnvidarsen/evlink/piecewise"
)

// TestLinkConsumptionOptimality checks spec §8's optimality invariant for
// a linear f that declines to 0 at x=5 and then stays flat, linked with a
// flat g: the analytic h(x) must be <= a dense numeric sample of
// f(d)+g(x-d) over d in [0,x] (optimality) plus 1e-2, and no more than
// 1e-2 below the sample's own minimum (attainment).
func TestLinkConsumptionOptimality(t *testing.T) {
	f, err := piecewise.NewPiecewiseFunction([]float64{0, 5}, []piecewise.SubFunction{
		piecewise.MustLinearPiece(-1, 5), piecewise.MustLinearPiece(0, 0),
	})
	require.NoError(t, err)
	g, err := piecewise.NewPiecewiseFunction([]float64{0}, []piecewise.SubFunction{
		piecewise.MustLinearPiece(0, 5),
	})
	require.NoError(t, err)

	_, h, err := consumption.LinkConsumption(f, g)
	require.NoError(t, err)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("h(x) matches the numeric minimum over d in [0,x]", prop.ForAll(
		func(x float64) bool {
			numericMin := math.Inf(1)
			const steps = 200
			for i := 0; i <= steps; i++ {
				d := x * float64(i) / float64(steps)
				v := f.Eval(d) + g.Eval(x-d)
				if v < numericMin {
					numericMin = v
				}
			}
			return h.Eval(x) <= numericMin+1e-2 && h.Eval(x) >= numericMin-1e-2
		},
		gen.Float64Range(0.1, 15),
	))

	properties.TestingRun(t)
}
