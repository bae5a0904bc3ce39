package piecewise

// SubFunction is the tagged choice of LinearPiece | HypLinPiece (spec
// §3). Its parameter arity — 2 for LinearPiece, 4 for HypLinPiece — matches
// its variant one to one. The envelope's intersection routine dispatches on
// that arity through Params; the linkers in consumption/charging switch on
// the concrete type instead.
type SubFunction interface {
	// Eval returns the sub-function's value at x.
	Eval(x float64) float64

	// Params returns the sub-function's defining coefficients: (a, b)
	// for LinearPiece, (a, b, c, d) for HypLinPiece.
	Params() []float64

	// isSubFunction keeps the union closed to this package's two variants.
	isSubFunction()
}
