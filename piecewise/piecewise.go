package piecewise

import (
	"fmt"
	"math"
	"sort"

	"github.com/arnvidarsen/evlink/scalar"
)

// PiecewiseFunction is an ordered sequence of breakpoints and
// sub-functions tiling [breaks[0], +∞) (spec §3). The last sub-function
// always applies from breaks[len-1] to +∞.
type PiecewiseFunction struct {
	breaks []float64
	subs   []SubFunction
}

// NewPiecewiseFunction builds a PiecewiseFunction from parallel
// breakpoint/sub-function slices. If len(xs) == len(subs)+1, a trailing
// constant plateau is appended automatically, evaluated at the last
// breakpoint — mirroring
// original_source/src/python/functions.py:9-18's auto-padding.
//
// Breakpoints must be strictly ascending by more than ε; this is a
// structural invariant of the caller's own construction, so a violation
// panics rather than returning an error (matching this module's
// convention for programmer-controlled shape versus caller-supplied
// numeric data).
func NewPiecewiseFunction(xs []float64, subs []SubFunction, opts ...scalar.Option) (*PiecewiseFunction, error) {
	o := scalar.Resolve(opts...)
	if len(xs) == 0 || len(subs) == 0 {
		panic("piecewise: breakpoints and sub-functions must be non-empty")
	}
	if len(xs) == len(subs)+1 {
		last := subs[len(subs)-1]
		plateau := MustLinearPiece(0, last.Eval(xs[len(xs)-1]))
		subs = append(append([]SubFunction{}, subs...), plateau)
	}
	if len(xs) != len(subs) {
		panic(fmt.Sprintf("piecewise: %d breakpoints but %d sub-functions", len(xs), len(subs)))
	}
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: breakpoint %v", ErrNonFiniteInput, x)
		}
	}
	for i := 0; i+1 < len(xs); i++ {
		if xs[i+1]-xs[i] <= o.Epsilon {
			panic(fmt.Sprintf("piecewise: breakpoints must be strictly ascending by more than ε, got %v then %v", xs[i], xs[i+1]))
		}
	}
	return &PiecewiseFunction{breaks: append([]float64{}, xs...), subs: subs}, nil
}

// Eval returns the value of whichever piece's domain contains x: the
// piece whose breakpoint is the greatest one <= x.
func (p *PiecewiseFunction) Eval(x float64) float64 {
	idx := p.pieceIndex(x)
	return p.subs[idx].Eval(x)
}

func (p *PiecewiseFunction) pieceIndex(x float64) int {
	// sort.Search finds the first index whose breakpoint is > x; the
	// piece containing x is one before that (clamped to 0).
	idx := sort.Search(len(p.breaks), func(i int) bool { return p.breaks[i] > x })
	if idx == 0 {
		return 0
	}
	return idx - 1
}

// NumPieces returns the number of sub-functions.
func (p *PiecewiseFunction) NumPieces() int { return len(p.subs) }

// Breakpoints returns a copy of the breakpoint slice.
func (p *PiecewiseFunction) Breakpoints() []float64 {
	return append([]float64{}, p.breaks...)
}

// Sub returns the i'th sub-function.
func (p *PiecewiseFunction) Sub(i int) SubFunction { return p.subs[i] }

// Domains returns each piece's left breakpoint paired with its
// sub-function — mirroring functions.py's PiecewiseFunction.domains().
func (p *PiecewiseFunction) Domains() []LimitedSub {
	out := make([]LimitedSub, len(p.subs))
	for i := range p.subs {
		xmax := math.Inf(1)
		if i+1 < len(p.breaks) {
			xmax = p.breaks[i+1]
		}
		out[i] = LimitedSub{XMin: p.breaks[i], XMax: xmax, Sub: p.subs[i]}
	}
	return out
}

// Intervals is an alias for Domains: an ordered slice of
// (xmin, xmax, sub) triples, the last reporting xmax = +∞ (spec §4.2).
func (p *PiecewiseFunction) Intervals() []LimitedSub { return p.Domains() }

// LimitedSub is (xmin, xmax, SubFunction) with 0 <= xmin <= xmax <= +∞
// and the sub-function's natural domain containing [xmin, xmax] (spec §3).
type LimitedSub struct {
	XMin, XMax float64
	Sub        SubFunction
}
