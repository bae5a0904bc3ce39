package charging

import (
	"fmt"
	"math"

	"github.com/arnvidarsen/evlink/envelope"
	"github.com/arnvidarsen/evlink/piecewise"
	"github.com/arnvidarsen/evlink/scalar"
)

// rawInterval is one (xmin, xmax, witness, value) candidate emitted while
// enumerating charging-stop dwell durations, mirroring the bare tuples
// original_source/src/python/analytic.py's __link_charging accumulates.
type rawInterval struct {
	XMin, XMax float64
	Witness    piecewise.LinearPiece
	Value      piecewise.SubFunction
}

// LinkCharging computes the charging linker ⊗_M (spec §4.5): given a
// consumption function f for the next leg and a charging curve cf capped
// at capacity M, it returns the witness d*(x), the part of the total time
// x spent on f (driving) with the rest x − d*(x) spent charging, and the
// combined cost h(x) of arriving with x time spent driving plus charging.
//
// For every non-linear (convex) piece of f, one interior candidate dwell
// time per charger-rate segment is derived from the KKT condition
// x_i = b + ∛(2a/a_i); every piece's own left endpoint is also a
// candidate (the boundary case where charging happens only at the
// cheapest rate available). Grounded on
// original_source/src/python/analytic.py's __link_charging/link_charging.
func LinkCharging(f *piecewise.PiecewiseFunction, cf *Function, opts ...scalar.Option) (d, h *piecewise.PiecewiseFunction, err error) {
	o := scalar.Resolve(opts...)
	m := cf.M

	cfInv, err := piecewise.InvertPiecewiseLinear(cf.PiecewiseFunction, opts...)
	if err != nil {
		return nil, nil, err
	}

	var candidates []float64
	for _, fi := range f.Intervals() {
		if hp, ok := fi.Sub.(piecewise.HypLinPiece); ok {
			a, b := hp.A, hp.B
			for _, ci := range cf.Intervals() {
				lp, ok := ci.Sub.(piecewise.LinearPiece)
				if !ok {
					return nil, nil, fmt.Errorf("%w: charging function must be piecewise linear", ErrUnhandledCase)
				}
				ai := lp.A
				if ai > o.Epsilon {
					xi := b + math.Cbrt(2*a/ai)
					if xi > fi.XMin && xi < fi.XMax {
						z := cfInv.Eval(m - hp.Eval(xi))
						if z >= ci.XMin && z <= ci.XMax {
							candidates = append(candidates, xi)
						}
					}
				}
			}
		}
		candidates = append(candidates, fi.XMin)
	}

	var all []rawInterval
	for _, fi := range f.Intervals() {
		all = append(all, rawInterval{
			XMin: fi.XMin, XMax: fi.XMax,
			Witness: piecewise.MustLinearPiece(1, 0),
			Value:   fi.Sub,
		})
	}

	for _, dCandidate := range candidates {
		fd := f.Eval(dCandidate)
		if m-fd <= o.Epsilon {
			continue
		}
		z0 := cfInv.Eval(m - fd)
		clipped, ok := piecewise.Clip(cf.PiecewiseFunction, z0, opts...)
		if !ok {
			continue
		}
		shifted1, err := piecewise.Shift(clipped, z0, opts...)
		if err != nil {
			return nil, nil, err
		}
		shifted2, err := piecewise.Shift(shifted1, -dCandidate, opts...)
		if err != nil {
			return nil, nil, err
		}
		negated, err := piecewise.Multiply(shifted2, -1, opts...)
		if err != nil {
			return nil, nil, err
		}
		hFn, err := piecewise.Offset(negated, m, opts...)
		if err != nil {
			return nil, nil, err
		}

		witness := piecewise.MustLinearPiece(0, dCandidate)
		for _, hi := range hFn.Intervals() {
			zmin := math.Max(dCandidate, hi.XMin)
			if zmin < hi.XMax {
				all = append(all, rawInterval{XMin: zmin, XMax: hi.XMax, Witness: witness, Value: hi.Sub})
			}
		}
	}

	return intervalsToPiecewise(all, opts...)
}

// intervalsToPiecewise filters out infeasible candidates, runs the
// lower-envelope sweep, and reassembles the winning (witness, value)
// pairs into a PiecewiseFunction pair — prepending an infeasible
// sentinel prefix if the envelope doesn't already reach x=0. Matches
// original_source/src/python/analytic.py's __intervals_to_piecewise.
func intervalsToPiecewise(intervals []rawInterval, opts ...scalar.Option) (d, h *piecewise.PiecewiseFunction, err error) {
	o := scalar.Resolve(opts...)

	var feasible []rawInterval
	for _, iv := range intervals {
		if math.IsInf(iv.Value.Eval(iv.XMin), 1) {
			continue
		}
		feasible = append(feasible, iv)
	}

	candidates := make([]envelope.Candidate, len(feasible))
	for i, iv := range feasible {
		candidates[i] = envelope.Candidate{XMin: iv.XMin, XMax: iv.XMax, Sub: iv.Value}
	}

	pieces, err := envelope.Sweep(candidates, envelope.WithEpsilon(o.Epsilon))
	if err != nil {
		return nil, nil, err
	}

	var xs []float64
	var hs, ds []piecewise.SubFunction
	for _, p := range pieces {
		xs = append(xs, p.XMin)
		hs = append(hs, feasible[p.Index].Value)
		ds = append(ds, feasible[p.Index].Witness)
	}

	if len(xs) == 0 || xs[0] > 0 {
		xs = append([]float64{0}, xs...)
		hs = append([]piecewise.SubFunction{piecewise.MustLinearPiece(0, math.Inf(1))}, hs...)
		ds = append([]piecewise.SubFunction{piecewise.LinearPiece{A: 0, B: math.NaN()}}, ds...)
	}

	dPF, err := piecewise.NewPiecewiseFunction(xs, ds, opts...)
	if err != nil {
		return nil, nil, err
	}
	hPF, err := piecewise.NewPiecewiseFunction(xs, hs, opts...)
	if err != nil {
		return nil, nil, err
	}
	return dPF, hPF, nil
}
