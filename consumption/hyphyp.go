package consumption

import (
	"math"

	"github.com/arnvidarsen/evlink/piecewise"
	"github.com/arnvidarsen/evlink/scalar"
)

func cube(x float64) float64 { return x * x * x }

// linkHypHyp links two hyperbolic consumption pieces (spec §4.4).
// It first normalizes so f is the one with the steeper (more negative)
// derivative at its own lower bound, then case-splits on how the two pieces' derivative
// ranges interleave — entirely or partially driving one before the
// other, with an interior segment where both are driven simultaneously
// along the KKT-optimal ratio d*. Grounded on
// original_source/src/python/analytic.py's __link_consumption_hyp_hyp.
func linkHypHyp(xfmin, xfmax, xgmin, xgmax float64, f, g piecewise.HypLinPiece, o scalar.Options) ([]rawInterval, error) {
	a1, b1 := f.A, f.B
	a2, b2 := g.A, g.B

	fMinDeriv := -2 * a1 / cube(xfmin-b1)
	gMinDeriv := -2 * a2 / cube(xgmin-b2)

	if fMinDeriv > gMinDeriv {
		intervals, err := linkHypHyp(xgmin, xgmax, xfmin, xfmax, g, f, o)
		if err != nil {
			return nil, err
		}
		return flipD(intervals), nil
	}

	fMaxDeriv := -2 * a1 / cube(xfmax-b1)
	gMaxDeriv := -2 * a2 / cube(xgmax-b2)

	xmax := xfmax + xgmax
	xmin := xfmin + xgmin

	dStarA := 1 / (1 + math.Cbrt(a2/a1))
	dStarB := (-b2 + b1*math.Cbrt(a2/a1)) * dStarA
	dStar := piecewise.LinearPiece{A: dStarA, B: dStarB}

	xfMaxStar := xfmax + b2 + math.Cbrt(a2/a1)*(xfmax-b1)
	xgMinStar := xgmin + b1 + math.Cbrt(a1/a2)*(xgmin-b2)
	xgMaxStar := xgmax + b1 + math.Cbrt(a1/a2)*(xgmax-b2)

	var out []rawInterval
	switch {
	case gMinDeriv <= fMaxDeriv && fMaxDeriv < gMaxDeriv:
		if o.Epsilon+xmin < xgMinStar {
			dFirst := piecewise.LinearPiece{A: 1, B: -xgmin}
			out = append(out, rawInterval{XMin: xmin, XMax: xgMinStar, Witness: dFirst, Value: combineConsumption(f, g, dFirst, o)})
		}
		if o.Epsilon+xgMinStar < xfMaxStar {
			out = append(out, rawInterval{XMin: xgMinStar, XMax: xfMaxStar, Witness: dStar, Value: combineConsumption(f, g, dStar, o)})
		}
		if o.Epsilon+xfMaxStar < xmax {
			dLast := piecewise.LinearPiece{A: 0, B: xfmax}
			out = append(out, rawInterval{XMin: xfMaxStar, XMax: xmax, Witness: dLast, Value: combineConsumption(f, g, dLast, o)})
		}

	case fMaxDeriv <= gMinDeriv:
		if o.Epsilon+xmin < xfmax+xgmin {
			dFirst := piecewise.LinearPiece{A: 1, B: -xgmin}
			out = append(out, rawInterval{XMin: xmin, XMax: xfmax + xgmin, Witness: dFirst, Value: combineConsumption(f, g, dFirst, o)})
		}
		if o.Epsilon+xfmax+xgmin < xmax {
			dLast := piecewise.LinearPiece{A: 0, B: xfmax}
			out = append(out, rawInterval{XMin: xfmax + xgmin, XMax: xmax, Witness: dLast, Value: combineConsumption(f, g, dLast, o)})
		}

	case gMaxDeriv <= fMaxDeriv:
		if o.Epsilon+xmin < xgMinStar {
			dFirst := piecewise.LinearPiece{A: 1, B: -xgmin}
			out = append(out, rawInterval{XMin: xmin, XMax: xgMinStar, Witness: dFirst, Value: combineConsumption(f, g, dFirst, o)})
		}
		if o.Epsilon+xgMinStar < xgMaxStar {
			out = append(out, rawInterval{XMin: xgMinStar, XMax: xgMaxStar, Witness: dStar, Value: combineConsumption(f, g, dStar, o)})
		}
		if o.Epsilon+xgMaxStar < xmax {
			dLast := piecewise.LinearPiece{A: 1, B: -xgmax}
			out = append(out, rawInterval{XMin: xgMaxStar, XMax: xmax, Witness: dLast, Value: combineConsumption(f, g, dLast, o)})
		}

	default:
		return nil, ErrUnhandledCase
	}
	return out, nil
}

// combineConsumption folds f(d)+g(x−d) along the witness line d into a
// single sub-function of x: d's slope selects whether the fold reduces to
// g alone, recurses with the roles swapped, or produces a genuine new
// hyperbolic combination — collapsing to a flat LinearPiece if the
// combined curvature term cancels within ε. Grounded on
// original_source/src/python/analytic.py's __combine_consumption.
func combineConsumption(f, g piecewise.HypLinPiece, d piecewise.LinearPiece, o scalar.Options) piecewise.SubFunction {
	a1, b1, c1 := f.A, f.B, f.C
	a2, b2, c2 := g.A, g.B, g.C
	da, db := d.A, d.B

	var a3, b3, c3 float64
	switch {
	case math.Abs(da) < o.Epsilon:
		a3 = a2
		b3 = b2 + db
		c3 = c2 + f.Eval(db)
	case math.Abs(da-1) < o.Epsilon:
		return combineConsumption(g, f, piecewise.LinearPiece{A: 0, B: -db}, o)
	default:
		a3 = a1 + a2 + 3*(math.Cbrt(a1*a1*a2)+math.Cbrt(a1*a2*a2))
		b3 = b1 + b2
		c3 = c1 + c2
	}
	if math.Abs(a3) > o.Epsilon {
		return piecewise.MustHypLinPiece(a3, b3, c3, 0)
	}
	return piecewise.MustLinearPiece(0, c3)
}
