package piecewise_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/arnvidarsen/evlink/piecewise"
)

// TestShiftMultiplyOffsetProperties checks spec §8's algebraic-identity
// invariants over randomized single-piece linear functions: shifting and
// then un-shifting, scaling and then un-scaling, and offsetting and then
// un-offsetting must all reproduce the original function (to within 1e-6
// for shift and offset, 1e-3 for multiply).
func TestShiftMultiplyOffsetProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("shift(shift(p, a), -a) == p", prop.ForAll(
		func(a, b, delta, x float64) bool {
			f, err := piecewise.NewPiecewiseFunction([]float64{0}, []piecewise.SubFunction{piecewise.MustLinearPiece(a, b)})
			if err != nil {
				return true
			}
			shifted, err := piecewise.Shift(f, delta)
			if err != nil {
				return false
			}
			unshifted, err := piecewise.Shift(shifted, -delta)
			if err != nil {
				return false
			}
			return math.Abs(f.Eval(x)-unshifted.Eval(x)) < 1e-6
		},
		gen.Float64Range(-50, 50),
		gen.Float64Range(-50, 50),
		gen.Float64Range(-50, 50),
		gen.Float64Range(-1000, 1000),
	))

	properties.Property("multiply(multiply(p, k), 1/k) == p", prop.ForAll(
		func(a, b, k, x float64) bool {
			if math.Abs(k) < 1e-3 {
				return true
			}
			f, err := piecewise.NewPiecewiseFunction([]float64{0}, []piecewise.SubFunction{piecewise.MustLinearPiece(a, b)})
			if err != nil {
				return true
			}
			scaled, err := piecewise.Multiply(f, k)
			if err != nil {
				return false
			}
			restored, err := piecewise.Multiply(scaled, 1/k)
			if err != nil {
				return false
			}
			return math.Abs(f.Eval(x)-restored.Eval(x)) < 1e-3
		},
		gen.Float64Range(-50, 50),
		gen.Float64Range(-50, 50),
		gen.Float64Range(-50, 50),
		gen.Float64Range(-1000, 1000),
	))

	properties.Property("offset(offset(p, k), -k) == p", prop.ForAll(
		func(a, b, k, x float64) bool {
			f, err := piecewise.NewPiecewiseFunction([]float64{0}, []piecewise.SubFunction{piecewise.MustLinearPiece(a, b)})
			if err != nil {
				return true
			}
			offs, err := piecewise.Offset(f, k)
			if err != nil {
				return false
			}
			restored, err := piecewise.Offset(offs, -k)
			if err != nil {
				return false
			}
			return math.Abs(f.Eval(x)-restored.Eval(x)) < 1e-6
		},
		gen.Float64Range(-50, 50),
		gen.Float64Range(-50, 50),
		gen.Float64Range(-50, 50),
		gen.Float64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}
