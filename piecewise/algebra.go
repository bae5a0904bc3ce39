package piecewise

import (
	"fmt"
	"math"

	"github.com/arnvidarsen/evlink/scalar"
)

// InvertPiecewiseLinear requires strict monotonicity (ascending or
// descending) of piece values at their left endpoints; the descending
// case reverses the piece order (spec §4.2). In this engine it is only
// ever applied to piecewise-linear functions (charging functions), so a
// piece of any other shape is rejected with ErrNonInvertible rather than
// attempting the general HypLinPiece inverse.
func InvertPiecewiseLinear(p *PiecewiseFunction, opts ...scalar.Option) (*PiecewiseFunction, error) {
	domains := p.Domains()
	ys := make([]float64, len(domains))
	for i, d := range domains {
		ys[i] = d.Sub.Eval(d.XMin)
	}
	asc, dsc := scalar.Monotonicity(ys)
	if !asc && !dsc {
		return nil, ErrNotMonotone
	}

	xs := make([]float64, len(domains))
	subs := make([]SubFunction, len(domains))
	if asc {
		for i, d := range domains {
			lp, ok := d.Sub.(LinearPiece)
			if !ok {
				return nil, fmt.Errorf("%w: inversion requires linear pieces", ErrNonInvertible)
			}
			xs[i] = ys[i]
			subs[i] = lp.Inverse(scalar.Interval{Lo: d.XMin, Hi: d.XMax})
		}
	} else {
		for i, d := range domains {
			lp, ok := d.Sub.(LinearPiece)
			if !ok {
				return nil, fmt.Errorf("%w: inversion requires linear pieces", ErrNonInvertible)
			}
			xs[i] = lp.Eval(d.XMax)
			subs[i] = lp.Inverse(scalar.Interval{Lo: d.XMin, Hi: d.XMax})
		}
		for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
			xs[i], xs[j] = xs[j], xs[i]
			subs[i], subs[j] = subs[j], subs[i]
		}
	}
	return NewPiecewiseFunction(xs, subs, opts...)
}

// Shift translates p by delta: a positive delta shifts the function to
// the left (breakpoints decrease by delta, intercepts compensate so
// values at corresponding points are preserved). Only defined over linear
// pieces (spec §4.2).
func Shift(p *PiecewiseFunction, delta float64, opts ...scalar.Option) (*PiecewiseFunction, error) {
	domains := p.Domains()
	xs := make([]float64, len(domains))
	subs := make([]SubFunction, len(domains))
	for i, d := range domains {
		lp, ok := d.Sub.(LinearPiece)
		if !ok {
			return nil, fmt.Errorf("%w: shift requires linear pieces", ErrNonInvertible)
		}
		xs[i] = d.XMin - delta
		subs[i] = MustLinearPiece(lp.A, lp.B+lp.A*delta)
	}
	return NewPiecewiseFunction(xs, subs, opts...)
}

// Clip drops or truncates pieces left of x0; it returns ok=false if
// nothing remains (spec §4.2), mirroring original_source's
// clip returning None. Works over any SubFunction shape.
func Clip(p *PiecewiseFunction, x0 float64, opts ...scalar.Option) (out *PiecewiseFunction, ok bool) {
	domains := p.Domains()
	var xs []float64
	var subs []SubFunction
	for _, d := range domains {
		newMin := math.Max(d.XMin, x0)
		if newMin < d.XMax {
			xs = append(xs, newMin)
			subs = append(subs, d.Sub)
		}
	}
	if len(subs) == 0 {
		return nil, false
	}
	pf, err := NewPiecewiseFunction(xs, subs, opts...)
	if err != nil {
		// xs/subs are a sub-selection of an already-valid function; only
		// a caller-supplied non-finite breakpoint could trigger this, and
		// breakpoints here are all drawn from p's own (already-validated)
		// breakpoints or x0 itself.
		panic(err)
	}
	return pf, true
}

// Multiply scales every linear piece's slope and intercept by k.
func Multiply(p *PiecewiseFunction, k float64, opts ...scalar.Option) (*PiecewiseFunction, error) {
	domains := p.Domains()
	xs := make([]float64, len(domains))
	subs := make([]SubFunction, len(domains))
	for i, d := range domains {
		lp, ok := d.Sub.(LinearPiece)
		if !ok {
			return nil, fmt.Errorf("%w: multiply requires linear pieces", ErrNonInvertible)
		}
		xs[i] = d.XMin
		subs[i] = MustLinearPiece(k*lp.A, k*lp.B)
	}
	return NewPiecewiseFunction(xs, subs, opts...)
}

// Offset adds k to every linear piece's intercept.
func Offset(p *PiecewiseFunction, k float64, opts ...scalar.Option) (*PiecewiseFunction, error) {
	domains := p.Domains()
	xs := make([]float64, len(domains))
	subs := make([]SubFunction, len(domains))
	for i, d := range domains {
		lp, ok := d.Sub.(LinearPiece)
		if !ok {
			return nil, fmt.Errorf("%w: offset requires linear pieces", ErrNonInvertible)
		}
		xs[i] = d.XMin
		subs[i] = MustLinearPiece(lp.A, lp.B+k)
	}
	return NewPiecewiseFunction(xs, subs, opts...)
}

// Derivative composes the piecewise derivative of p, requiring every
// piece be linear (witness functions d* are always linear per spec §3;
// a HypLinPiece's derivative is only pointwise-evaluable via
// HypLinPiece.DerivativeAt and has no closed SubFunction shape — see
// original_source/src/python/functions.py:42-44, ported here corrected
// rather than verbatim since the Python diff() references an undefined
// name and is never called).
func Derivative(p *PiecewiseFunction, opts ...scalar.Option) (*PiecewiseFunction, error) {
	domains := p.Domains()
	xs := make([]float64, len(domains))
	subs := make([]SubFunction, len(domains))
	for i, d := range domains {
		lp, ok := d.Sub.(LinearPiece)
		if !ok {
			return nil, fmt.Errorf("%w: piecewise derivative requires linear pieces", ErrNonInvertible)
		}
		xs[i] = d.XMin
		subs[i] = lp.Derivative()
	}
	return NewPiecewiseFunction(xs, subs, opts...)
}

// FromBreakpoints builds the slice of LinearPiece segments interpolating
// between consecutive (xs[i], ys[i]) pairs, clamping an infinite slope
// (a zero-width segment) to a flat segment at the left value — mirroring
// original_source/src/python/functions.py:178-196's make_piecewise_linear.
func FromBreakpoints(xs, ys []float64) ([]LinearPiece, error) {
	if len(xs) != len(ys) || len(xs) < 2 {
		panic("piecewise: FromBreakpoints requires matching xs/ys of length >= 2")
	}
	pieces := make([]LinearPiece, len(xs)-1)
	for i := 0; i+1 < len(xs); i++ {
		dx := xs[i+1] - xs[i]
		dy := ys[i+1] - ys[i]
		if ys[i+1] == ys[i] {
			dy = 0
		}
		a := dy / dx
		b := ys[i] - a*xs[i]
		if math.IsInf(a, 0) {
			a = 0
			b = ys[i]
		}
		lp, err := NewLinearPiece(a, b)
		if err != nil {
			return nil, err
		}
		pieces[i] = lp
	}
	return pieces, nil
}
