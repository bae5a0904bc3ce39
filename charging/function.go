package charging

import (
	"fmt"

	"github.com/arnvidarsen/evlink/piecewise"
	"github.com/arnvidarsen/evlink/scalar"
)

// Function is a charging curve: state-of-charge as a piecewise-linear
// function of dwell time, capped at capacity M — mirroring
// original_source/src/python/functions.py's ChargingFunction.
type Function struct {
	*piecewise.PiecewiseFunction
	M float64
}

// NewFunction builds a charging Function from breakpoint times ts and
// state-of-charge levels ys, validating ys[0] == 0 and ys[last] == M.
func NewFunction(ts, ys []float64, m float64, opts ...scalar.Option) (*Function, error) {
	if len(ys) == 0 || ys[0] != 0 || ys[len(ys)-1] != m {
		return nil, fmt.Errorf("%w: ys[0]=%v ys[last]=%v M=%v", ErrInvalidChargingFunction, ys[0], ys[len(ys)-1], m)
	}
	pieces, err := piecewise.FromBreakpoints(ts, ys)
	if err != nil {
		return nil, err
	}
	subs := make([]piecewise.SubFunction, len(pieces))
	for i, p := range pieces {
		subs[i] = p
	}
	pf, err := piecewise.NewPiecewiseFunction(ts, subs, opts...)
	if err != nil {
		return nil, err
	}
	return &Function{PiecewiseFunction: pf, M: m}, nil
}
