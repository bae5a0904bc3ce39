// Package path folds the consumption and charging linkers over a route
// (spec §4.6): given a sequence of visited locations, it accumulates the
// total-energy-as-a-function-of-time curve leg by leg, then decomposes a
// target total travel time back into a per-leg time budget.
//
// Grounded directly on original_source/src/python/path.py's link_path and
// get_times.
package path
