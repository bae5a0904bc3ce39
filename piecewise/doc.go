// Package piecewise implements the function algebra (spec §4.2): the two
// sub-function shapes (LinearPiece, HypLinPiece) that tile a
// PiecewiseFunction, plus evaluation, inversion, shift, clip, multiply,
// offset, and derivative.
//
// SubFunction is intentionally a closed, tagged union rather than an open
// interface a third party could implement: every downstream case-split in
// consumption/charging/envelope dispatches on a SubFunction's arity (2
// parameters for LinearPiece, 4 for HypLinPiece), and an open interface
// would let that dispatch silently fall through.
package piecewise
