package consumption

import (
	"github.com/arnvidarsen/evlink/piecewise"
	"github.com/arnvidarsen/evlink/scalar"
)

// linkLinLin links two linear consumption pieces (spec §4.4), grounded on
// original_source/src/python/analytic.py's __link_consumption_lin_lin:
// whichever piece declines faster receives extra time first, up to its own
// limit, and the other is extended after it.
func linkLinLin(xfmin, xfmax, xgmin, xgmax float64, f, g piecewise.LinearPiece, o scalar.Options) []rawInterval {
	a1, b1 := f.A, f.B
	a2, b2 := g.A, g.B

	xmax := xfmax + xgmax
	xmin := xfmin + xgmin

	var out []rawInterval
	if a1 >= a2 {
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
				Value:   piecewise.MustLinearPiece(a1, b1-a1*xgmax+g.Eval(xgmax)),
			})
		}
	} else {
		if o.Epsilon+xmin < xfmax+xgmin {
			out = append(out, rawInterval{
				XMin: xmin, XMax: xfmax + xgmin,
				Witness: piecewise.MustLinearPiece(1, -xgmin),
				Value:   piecewise.MustLinearPiece(a1, b1-a1*xgmin+g.Eval(xgmin)),
			})
		}
		if o.Epsilon+xfmax+xgmin < xmax {
			out = append(out, rawInterval{
				XMin: xfmax + xgmin, XMax: xmax,
				Witness: piecewise.MustLinearPiece(0, xfmax),
				Value:   piecewise.MustLinearPiece(a2, b2-a2*xfmax+f.Eval(xfmax)),
			})
		}
	}
	return out
}
