package consumption

import (
	"math"

	"github.com/arnvidarsen/evlink/envelope"
	"github.com/arnvidarsen/evlink/piecewise"
	"github.com/arnvidarsen/evlink/scalar"
)

// rawInterval is one (xmin, xmax, witness, value) candidate emitted by the
// case-split linkers below, before the lower-envelope sweep collapses the
// whole bag down to the pointwise optimum — mirroring the bare tuples
// original_source/src/python/analytic.py accumulates before calling
// __intervals_to_piecewise.
type rawInterval struct {
	XMin, XMax float64
	Witness    piecewise.LinearPiece
	Value      piecewise.SubFunction
}

// linkPair emits every candidate interval for one piece of f against one
// piece of g, case-split by piece-type combination (spec §4.4), matching
// original_source/src/python/analytic.py's __link_consumption dispatcher.
func linkPair(xfmin, xfmax, xgmin, xgmax float64, subf, subg piecewise.SubFunction, opts ...scalar.Option) ([]rawInterval, error) {
	o := scalar.Resolve(opts...)
	xmax := xfmax + xgmax
	xmin := xfmin + xgmin

	var out []rawInterval
	if !math.IsInf(xmax, 1) {
		ymin := subf.Eval(xfmax) + subg.Eval(xgmax)
		out = append(out, rawInterval{
			XMin: xmax, XMax: math.Inf(1),
			Witness: piecewise.MustLinearPiece(0, xfmax),
			Value:   piecewise.MustLinearPiece(0, ymin),
		})
	}

	if xmin >= xmax {
		return out, nil
	}

	switch f := subf.(type) {
	case piecewise.LinearPiece:
		switch g := subg.(type) {
		case piecewise.LinearPiece:
			out = append(out, linkLinLin(xfmin, xfmax, xgmin, xgmax, f, g, o)...)
		case piecewise.HypLinPiece:
			out = append(out, linkLinHyp(xfmin, xfmax, xgmin, xgmax, f, g, o)...)
		default:
			return nil, ErrUnhandledCase
		}
	case piecewise.HypLinPiece:
		switch g := subg.(type) {
		case piecewise.LinearPiece:
			out = append(out, linkHypLin(xfmin, xfmax, xgmin, xgmax, f, g, o)...)
		case piecewise.HypLinPiece:
			res, err := linkHypHyp(xfmin, xfmax, xgmin, xgmax, f, g, o)
			if err != nil {
				return nil, err
			}
			out = append(out, res...)
		default:
			return nil, ErrUnhandledCase
		}
	default:
		return nil, ErrUnhandledCase
	}
	return out, nil
}

// intervalsToPiecewise filters out infeasible candidates, runs the lower-
// envelope sweep, and reassembles the winning (witness, value) pairs into
// a PiecewiseFunction pair — prepending an infeasible sentinel prefix if
// the envelope doesn't already reach x=0. Matches
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

// LinkConsumption computes the consumption linker ⊕ (spec §4.4): given
// two consumption functions f and g, it returns the optimal split d*(x)
// and the resulting combined cost h(x) = min_{d∈[0,x]} f(d)+g(x−d).
// Grounded on original_source/src/python/analytic.py's link_consumption.
func LinkConsumption(f, g *piecewise.PiecewiseFunction, opts ...scalar.Option) (d, h *piecewise.PiecewiseFunction, err error) {
	var all []rawInterval
	for _, fi := range f.Intervals() {
		if math.IsInf(fi.Sub.Eval(fi.XMin), 1) || math.IsInf(fi.Sub.Eval(fi.XMax), 1) {
			continue
		}
		for _, gi := range g.Intervals() {
			if math.IsInf(gi.Sub.Eval(gi.XMin), 1) || math.IsInf(gi.Sub.Eval(gi.XMax), 1) {
				continue
			}
			pair, err := linkPair(fi.XMin, fi.XMax, gi.XMin, gi.XMax, fi.Sub, gi.Sub, opts...)
			if err != nil {
				return nil, nil, err
			}
			all = append(all, pair...)
		}
	}
	return intervalsToPiecewise(all, opts...)
}
