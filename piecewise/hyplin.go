package piecewise

import (
	"fmt"
	"math"

	"github.com/arnvidarsen/evlink/scalar"
)

// HypLinPiece is f(x) = A/(x−B)² + C + D·(x−B), with A > 0 and A, B, C, D
// all finite (spec §3). Strictly convex on x > B. A zero-A case is never
// stored; callers collapse to LinearPiece instead.
type HypLinPiece struct {
	A, B, C, D float64
}

// NewHypLinPiece validates and builds a HypLinPiece.
func NewHypLinPiece(a, b, c, d float64) (HypLinPiece, error) {
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		return HypLinPiece{}, fmt.Errorf("%w: a=%v must be finite and positive", ErrNonFiniteInput, a)
	}
	for name, v := range map[string]float64{"b": b, "c": c, "d": d} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return HypLinPiece{}, fmt.Errorf("%w: %s=%v must be finite", ErrNonFiniteInput, name, v)
		}
	}
	return HypLinPiece{A: a, B: b, C: c, D: d}, nil
}

// MustHypLinPiece panics instead of returning an error; used internally
// by the linkers once their own case-split has already established a > 0.
func MustHypLinPiece(a, b, c, d float64) HypLinPiece {
	hp, err := NewHypLinPiece(a, b, c, d)
	if err != nil {
		panic(err)
	}
	return hp
}

func (h HypLinPiece) Eval(x float64) float64 {
	return h.A/((x-h.B)*(x-h.B)) + h.C + h.D*(x-h.B)
}

func (h HypLinPiece) Params() []float64 { return []float64{h.A, h.B, h.C, h.D} }

func (HypLinPiece) isSubFunction() {}

// InverseHyperbolic is the inverse of a HypLinPiece with D == 0: given y,
// it returns x = B + √(A/(y−C)) for y > C. It is returned by Inverse and
// used only as a scalar evaluator — it is never itself stored as a piece
// of a PiecewiseFunction, since the closed SubFunction union has no third
// variant for it (InvertPiecewiseLinear accepts linear pieces only).
type InverseHyperbolic struct {
	A, B, C float64
	Domain  scalar.Interval
}

func (inv InverseHyperbolic) Eval(y float64) float64 {
	if y <= inv.C {
		return inv.Domain.Hi
	}
	return inv.B + math.Sqrt(inv.A/(y-inv.C))
}

// Inverse returns the functional inverse of h. Only D == 0 is supported;
// a HypLinPiece with a nonzero linear slope does not admit a closed-form
// inverse and is rejected with ErrNonInvertible (spec §4.2).
func (h HypLinPiece) Inverse(domain scalar.Interval) (InverseHyperbolic, error) {
	if h.D != 0 {
		return InverseHyperbolic{}, fmt.Errorf("%w: HypLinPiece has nonzero slope d=%v", ErrNonInvertible, h.D)
	}
	return InverseHyperbolic{A: h.A, B: h.B, C: h.C, Domain: domain}, nil
}

// DerivativeAt is the pointwise derivative -2A/(x−B)³ + D (spec §4.2:
// "derivative as a pointwise real ... for linear a constant LinearPiece" —
// HypLinPiece's derivative has no closed SubFunction shape of its own).
func (h HypLinPiece) DerivativeAt(x float64) float64 {
	dx := x - h.B
	return -2*h.A/(dx*dx*dx) + h.D
}
