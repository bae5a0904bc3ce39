// Package consumption implements the consumption linker ⊕ (spec §4.4):
// given two consumption functions f, g, it produces the pointwise-optimal
// sum h(x) = min_{d∈[0,x]} f(d)+g(x−d) together with the witness d*(x)
// that attains it.
//
// The algorithm enumerates candidate (xmin, xmax, witness, value)
// intervals for every pair of pieces drawn from f and g — case-split over
// the four piece-type combinations (lin/lin, lin/hyp, hyp/lin, hyp/hyp) —
// then hands the union to package envelope for the lower-envelope sweep.
// Grounded directly on original_source/src/python/analytic.py's
// __link_consumption family.
package consumption
