// Package evlink computes energy-optimal travel policies for electric
// vehicles crossing a road network of driving and charging legs.
//
// Every driving leg is described by a piecewise consumption/time
// tradeoff function and every charging leg by a piecewise charging-rate
// function (package piecewise). Package consumption and package charging
// each implement a "linking" operator that composes one leg's function
// with a running total-energy-as-a-function-of-time curve, finding for
// every possible arrival time the dwell time on that leg that minimises
// total energy use (package envelope's lower-envelope sweep underlies
// both). Package network holds the road graph itself, and package path
// folds the linkers over a route to produce the full policy, plus the
// back-substitution needed to decompose a target trip time into a
// per-leg schedule.
//
// Subpackages:
//
//	scalar/      — shared numeric primitives: ε, cubic roots, intervals
//	piecewise/   — the Linear/HypLin sub-function algebra
//	envelope/    — the lower-envelope sweep
//	consumption/ — linking driving-leg consumption functions
//	charging/    — linking charging-leg functions
//	network/     — the road graph and its YAML fixture loader
//	path/        — route-level policy computation
package evlink
