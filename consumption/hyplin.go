package consumption

import (
	"math"

	"github.com/arnvidarsen/evlink/piecewise"
	"github.com/arnvidarsen/evlink/scalar"
)

// linkHypLin links a hyperbolic consumption piece f against a linear one
// g (spec §4.4). d* = b + ∛(−2a/a₂) is the KKT-derived interior optimum;
// depending on where it falls relative to [xfmin, xfmax] the optimal
// split is boundary-boundary or boundary-interior-boundary. Grounded on
// original_source/src/python/analytic.py's __link_consumption_hyp_lin.
func linkHypLin(xfmin, xfmax, xgmin, xgmax float64, f piecewise.HypLinPiece, g piecewise.LinearPiece, o scalar.Options) []rawInterval {
	a1, b1, c1 := f.A, f.B, f.C
	a2, b2 := g.A, g.B

	xmax := xfmax + xgmax
	xmin := xfmin + xgmin

	dStar := math.Inf(1)
	if math.Abs(a2) > o.Epsilon {
		dStar = b1 + math.Cbrt(-2*a1/a2)
	}

	var out []rawInterval
	switch {
	case dStar < xfmin:
		// f'(x) > g'(x) throughout: drive g first, then f.
		if o.Epsilon+xmin < xgmax+xfmin {
			out = append(out, rawInterval{
				XMin: xmin, XMax: xgmax + xfmin,
				Witness: piecewise.MustLinearPiece(0, xfmin),
				Value:   piecewise.MustLinearPiece(a2, b2-a2*xfmin+f.Eval(xfmin)),
			})
		}
		if o.Epsilon+xgmax+xfmin < xmax {
			out = append(out, rawInterval{
				XMin: xgmax + xfmin, XMax: xmax,
				Witness: piecewise.MustLinearPiece(1, -xgmax),
				Value:   piecewise.MustHypLinPiece(a1, b1+xgmax, c1+g.Eval(xgmax), 0),
			})
		}
	case dStar > xfmax:
		// f'(x) < g'(x) throughout: drive f first, then g.
		if o.Epsilon+xmin < xfmax+xgmin {
			out = append(out, rawInterval{
				XMin: xmin, XMax: xfmax + xgmin,
				Witness: piecewise.MustLinearPiece(1, -xgmin),
				Value:   piecewise.MustHypLinPiece(a1, b1+xgmin, c1+g.Eval(xgmin), 0),
			})
		}
		if o.Epsilon+xfmax+xgmin < xmax {
			out = append(out, rawInterval{
				XMin: xfmax + xgmin, XMax: xmax,
				Witness: piecewise.MustLinearPiece(0, xfmax),
				Value:   piecewise.MustLinearPiece(a2, b2-a2*xfmax+f.Eval(xfmax)),
			})
		}
	default:
		// d* interior: f, then the interior optimum, then f again.
		if o.Epsilon+xmin < dStar+xgmin {
			out = append(out, rawInterval{
				XMin: xmin, XMax: dStar + xgmin,
				Witness: piecewise.MustLinearPiece(1, -xgmin),
				Value:   piecewise.MustHypLinPiece(a1, b1+xgmin, c1+g.Eval(xgmin), 0),
			})
		}
		if o.Epsilon+dStar+xgmin < dStar+xgmax {
			out = append(out, rawInterval{
				XMin: dStar + xgmin, XMax: dStar + xgmax,
				Witness: piecewise.MustLinearPiece(0, dStar),
				Value:   piecewise.MustLinearPiece(a2, b2-a2*dStar+f.Eval(dStar)),
			})
		}
		if o.Epsilon+dStar+xgmax < xmax {
			out = append(out, rawInterval{
				XMin: dStar + xgmax, XMax: xmax,
				Witness: piecewise.MustLinearPiece(1, -xgmax),
				Value:   piecewise.MustHypLinPiece(a1, b1+xgmax, c1+g.Eval(xgmax), 0),
			})
		}
	}
	return out
}

// linkLinHyp links a linear consumption piece f against a hyperbolic one
// g by delegating to linkHypLin with the roles swapped and un-swapping
// the witness afterward (spec §4.4), matching
// original_source/src/python/analytic.py's __link_consumption_lin_hyp.
func linkLinHyp(xfmin, xfmax, xgmin, xgmax float64, f piecewise.LinearPiece, g piecewise.HypLinPiece, o scalar.Options) []rawInterval {
	return flipD(linkHypLin(xgmin, xgmax, xfmin, xfmax, g, f, o))
}

// flipD un-swaps a witness d computed against swapped arguments: a witness
// d' for g(d')+f(x−d') becomes d = x − d' = (1−a')x − b' for the original
// f(d)+g(x−d) framing (spec §4.4), matching
// original_source/src/python/analytic.py's __flip_d.
func flipD(intervals []rawInterval) []rawInterval {
	out := make([]rawInterval, len(intervals))
	for i, iv := range intervals {
		aRev, bRev := iv.Witness.A, iv.Witness.B
		out[i] = rawInterval{
			XMin:    iv.XMin,
			XMax:    iv.XMax,
			Witness: piecewise.LinearPiece{A: 1 - aRev, B: -bRev},
			Value:   iv.Value,
		}
	}
	return out
}
