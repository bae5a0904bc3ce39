package piecewise

import "errors"

// Sentinel errors returned by the piecewise package.
var (
	// ErrNonFiniteInput is returned when a constructor receives a NaN or
	// infinite parameter it does not explicitly accept as a sentinel
	// (the one exception: a zero-slope LinearPiece's intercept may be
	// +Inf, used as the infeasibility sentinel).
	ErrNonFiniteInput = errors.New("piecewise: non-finite input")

	// ErrNotMonotone is returned when InvertPiecewiseLinear is applied to
	// a piecewise-linear function whose piece values are neither
	// non-decreasing nor non-increasing at their left endpoints.
	ErrNotMonotone = errors.New("piecewise: function is not monotone")

	// ErrNonInvertible is returned when a HypLinPiece with a nonzero
	// linear slope (d != 0) is asked to invert, or when a piecewise
	// derivative is requested over a piecewise function containing a
	// non-linear piece (its derivative is only pointwise-evaluable, not
	// expressible in the closed SubFunction union).
	ErrNonInvertible = errors.New("piecewise: not invertible")
)
