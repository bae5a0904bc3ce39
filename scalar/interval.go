package scalar

import "math"

// Interval is a closed real interval [Lo, Hi]; Hi may be +Inf.
type Interval struct {
	Lo, Hi float64
}

// Empty reports whether the interval has collapsed: Hi <= Lo.
func (iv Interval) Empty() bool {
	return iv.Hi <= iv.Lo
}

// Intersect returns the overlap of a and b: (max(a.Lo,b.Lo), min(a.Hi,b.Hi)).
// The result's Empty() is true when the intervals do not overlap.
func Intersect(a, b Interval) Interval {
	return Interval{Lo: math.Max(a.Lo, b.Lo), Hi: math.Min(a.Hi, b.Hi)}
}

// EpsRound rounds v to ⌊−log10 ε⌋ decimal digits. It is used only as a
// secondary, stable sort key in the envelope sweep's tie-break — never for
// equality tests, which compare against ε directly.
func EpsRound(v float64, opts ...Option) float64 {
	o := Resolve(opts...)
	digits := math.Floor(-math.Log10(o.Epsilon))
	scale := math.Pow(10, digits)
	return math.Round(v*scale) / scale
}
