package envelope

import (
	"math"

	"github.com/arnvidarsen/evlink/piecewise"
	"github.com/arnvidarsen/evlink/scalar"
)

// subParams reports (a,b,c,d) for any SubFunction: a HypLinPiece reports
// its four coefficients directly; a LinearPiece reports a=0, b=0, and
// (c,d) = (intercept, slope), matching
// original_source/src/python/functions.py:intersect_functions's own
// arity-based unpacking.
func subParams(s piecewise.SubFunction) (a, b, c, d float64) {
	p := s.Params()
	if len(p) == 4 {
		return p[0], p[1], p[2], p[3]
	}
	return 0, 0, p[1], p[0]
}

// IntersectFunctions returns the real intersections of f1 and f2 within
// (domain.Lo, domain.Hi), exclusive, dispatching on each function's
// parameter arity (spec §4.3):
//
//   - Linear/Linear: a single intersection from the line equation.
//   - Linear/Hyperbolic: reduces to a cubic root problem.
//   - Hyperbolic/Hyperbolic: unimplemented — spec §9's acknowledged open
//     question. Rather than silently returning empty, it reports the
//     skipped region at Debug level through the optional logging sink.
func IntersectFunctions(f1, f2 piecewise.SubFunction, domain scalar.Interval, opts ...Option) ([]float64, error) {
	o := resolve(opts...)
	a1, b1, c1, d1 := subParams(f1)
	a2, b2, c2, d2 := subParams(f2)

	within := func(x float64) bool { return x > domain.Lo && x < domain.Hi }

	switch {
	case a1 == 0 && a2 == 0:
		if math.Abs(d1-d2) > o.Epsilon {
			x := (c2 - c1) / (d1 - d2)
			if within(x) {
				return []float64{x}, nil
			}
		}
		return nil, nil

	case a1 == 0 && a2 != 0:
		return intersectLinearHyp(d1, c1, a2, b2, c2, domain, o)

	case a1 != 0 && a2 == 0:
		return intersectLinearHyp(d2, c2, a1, b1, c1, domain, o)

	default:
		o.Logger.Debug().
			Float64("domain_lo", domain.Lo).
			Float64("domain_hi", domain.Hi).
			Msg("envelope: hyperbolic/hyperbolic intersection not implemented, region left unrefined")
		return nil, nil
	}
}

// intersectLinearHyp handles one linear operand (slope dLin, intercept
// cLin) against one hyperbolic operand a/(x-b)^2+c, reusing
// scalar.CubicRealRoots the way
// original_source/src/python/functions.py:300-309 does.
func intersectLinearHyp(dLin, cLin, aHyp, bHyp, cHyp float64, domain scalar.Interval, o Options) ([]float64, error) {
	within := func(x float64) bool { return x > domain.Lo && x < domain.Hi }

	if math.Abs(dLin) > o.Epsilon {
		roots, err := scalar.CubicRealRoots(-dLin, cHyp-cLin-dLin*bHyp, 0, aHyp)
		if err != nil {
			return nil, err
		}
		var out []float64
		for _, z := range roots {
			x := z + bHyp
			if within(x) {
				out = append(out, x)
			}
		}
		return out, nil
	}
	if math.Abs(cLin-cHyp) < o.Epsilon {
		return nil, nil
	}
	x := bHyp + math.Sqrt(aHyp/(cHyp-cLin))
	if within(x) {
		return []float64{x}, nil
	}
	return nil, nil
}
