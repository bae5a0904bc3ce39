// Package charging implements the charging linker ⊗_M (spec §4.5): given
// a consumption function f and a charging-rate function cf bounded by
// battery capacity M, it produces the pointwise-optimal decision of how
// long to dwell at a charging stop before continuing, together with the
// resulting combined cost.
//
// Unlike the consumption linker, the search space here is a finite set of
// candidate driving times: the left endpoint of every consumption piece,
// plus, for each non-linear consumption piece, one interior candidate per
// positive-slope charger segment, found via the cube-root KKT condition
// (the charging function is always piecewise linear). Grounded directly on
// original_source/src/python/analytic.py's __link_charging.
package charging
