package scalar

import (
	"fmt"
	"math"
)

// CubicRealRoots returns the real roots of a·z³+b·z²+c·z+d = 0.
//
// It reduces the polynomial to the depressed cubic t³+pt+q=0 via the
// standard substitution z = t − b/(3a), then case-splits on the
// discriminant Δ = 4p³+27q²:
//
//   - Δ > 0, p > 0: a single real root, via sinh⁻¹.
//   - Δ > 0, p < 0: a single real root, via cosh⁻¹ (sign-corrected by sign(q)).
//   - Δ ≤ 0, p < 0: three real roots, via cos with k ∈ {0,1,2}.
//   - every other branch (p == 0, including the triple-root case p == q == 0)
//     returns an empty, error-free slice; its real roots are not reported.
//
// Returns ErrInvalidCoefficient if any coefficient is non-finite or a == 0.
func CubicRealRoots(a, b, c, d float64) ([]float64, error) {
	if !isFinite4(a, b, c, d) || a == 0 {
		return nil, fmt.Errorf("%w: a=%v b=%v c=%v d=%v", ErrInvalidCoefficient, a, b, c, d)
	}

	p := (3*a*c - b*b) / (3 * a * a)
	q := (2*b*b*b - 9*a*b*c + 27*a*a*d) / (27 * a * a * a)
	shift := func(t float64) float64 { return t - b/(3*a) }

	disc := 4*p*p*p + 27*q*q

	switch {
	case disc > 0 && p > 0:
		t0 := -2 * math.Sqrt(p/3) * math.Sinh((1.0/3.0)*math.Asinh(3*q/(2*p)*math.Sqrt(3/p)))
		return []float64{shift(t0)}, nil

	case disc > 0 && p < 0:
		sign := 1.0
		if q < 0 {
			sign = -1.0
		} else if q == 0 {
			sign = 0.0
		}
		t0 := -2 * sign * math.Sqrt(-p/3) * math.Cosh((1.0/3.0)*math.Acosh(-3*math.Abs(q)/(2*p)*math.Sqrt(-3/p)))
		return []float64{shift(t0)}, nil

	case disc <= 0 && p < 0:
		root := func(k int) float64 {
			t := 2 * math.Sqrt(-p/3) * math.Cos((1.0/3.0)*math.Acos(3*q/(2*p)*math.Sqrt(-3/p))-2*float64(k)*math.Pi/3)
			return shift(t)
		}
		return []float64{root(0), root(1), root(2)}, nil

	default:
		return nil, nil
	}
}

func isFinite4(a, b, c, d float64) bool {
	return !math.IsInf(a, 0) && !math.IsNaN(a) &&
		!math.IsInf(b, 0) && !math.IsNaN(b) &&
		!math.IsInf(c, 0) && !math.IsNaN(c) &&
		!math.IsInf(d, 0) && !math.IsNaN(d)
}
