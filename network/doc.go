// Package network models the road network a path is computed over (spec
// §6): vertices are locations, edges are either a driving leg (carrying a
// consumption tradeoff function) or a charging stop (carrying a charging
// Function capped at the vehicle's battery capacity).
//
// The storage layout — string vertex IDs, mutex-protected adjacency,
// functional-options construction — is adapted from the lvlath library's
// core.Graph (not part of this module), generalized from core's generic integer-weighted edges to
// this package's two-variant typed payload (spec §6's "data of form
// (is_charging, weight_function)", grounded on
// original_source/src/python/graph.py's CSR-style static Graph).
package network
