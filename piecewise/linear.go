package piecewise

import (
	"fmt"
	"math"

	"github.com/arnvidarsen/evlink/scalar"
)

// LinearPiece is f(x) = A*x + B, with A, B finite — except the
// infeasibility sentinel, A == 0 and B == +Inf, which constructors accept
// explicitly (spec §3: "a constant-infinity piece ... used as a sentinel
// for 'outside the feasible domain'").
type LinearPiece struct {
	A, B float64
}

// NewLinearPiece validates and builds a LinearPiece.
func NewLinearPiece(a, b float64) (LinearPiece, error) {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return LinearPiece{}, fmt.Errorf("%w: slope %v", ErrNonFiniteInput, a)
	}
	if math.IsNaN(b) {
		return LinearPiece{}, fmt.Errorf("%w: intercept %v", ErrNonFiniteInput, b)
	}
	if math.IsInf(b, 0) && (a != 0 || b < 0) {
		return LinearPiece{}, fmt.Errorf("%w: intercept %v only permitted as the +Inf sentinel with zero slope", ErrNonFiniteInput, b)
	}
	return LinearPiece{A: a, B: b}, nil
}

// MustLinearPiece panics instead of returning an error; used for literal
// pieces built from already-validated algebra (shift/clip/multiply/offset
// internals never violate the invariant above).
func MustLinearPiece(a, b float64) LinearPiece {
	lp, err := NewLinearPiece(a, b)
	if err != nil {
		panic(err)
	}
	return lp
}

func (l LinearPiece) Eval(x float64) float64 {
	if l.A == 0 {
		return l.B
	}
	return l.A*x + l.B
}

func (l LinearPiece) Params() []float64 { return []float64{l.A, l.B} }

func (LinearPiece) isSubFunction() {}

// Inverse returns the functional inverse. For a nonzero slope this is the
// algebraic inverse line; for a zero slope (a constant) the inverse is
// undefined pointwise, so the convention — matching
// original_source/src/python/functions.py's LinearFunction.inverse — is to
// return the constant domain.Lo.
func (l LinearPiece) Inverse(domain scalar.Interval) LinearPiece {
	if l.A != 0 {
		return LinearPiece{A: 1 / l.A, B: -l.B / l.A}
	}
	return LinearPiece{A: 0, B: domain.Lo}
}

// Derivative returns the constant-slope derivative line.
func (l LinearPiece) Derivative() LinearPiece {
	return LinearPiece{A: 0, B: l.A}
}
