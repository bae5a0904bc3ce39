package consumption

import (
	"fmt"
	"math"

	"github.com/arnvidarsen/evlink/piecewise"
	"github.com/arnvidarsen/evlink/scalar"
)

// NewTradeoff builds the canonical time/energy tradeoff function (spec
// §3): infeasible below t_min, a strictly convex hyperbolic curve on
// [t_min, t_max], flat thereafter — mirroring
// original_source/src/python/functions.py's TradeoffFunction.
func NewTradeoff(tMin, tMax, a, b, c float64, opts ...scalar.Option) (*piecewise.PiecewiseFunction, error) {
	if math.Abs(a) <= 0 {
		return nil, fmt.Errorf("%w: a must be nonzero", piecewise.ErrNonFiniteInput)
	}
	hyp, err := piecewise.NewHypLinPiece(a, b, c, 0)
	if err != nil {
		return nil, err
	}
	plateau := piecewise.MustLinearPiece(0, hyp.Eval(tMax))
	sentinel := piecewise.MustLinearPiece(0, math.Inf(1))
	return piecewise.NewPiecewiseFunction(
		[]float64{0, tMin, tMax},
		[]piecewise.SubFunction{sentinel, hyp, plateau},
		opts...,
	)
}
