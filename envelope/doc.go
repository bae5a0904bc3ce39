// Package envelope implements the lower-envelope sweep (spec §4.3): given
// a bag of (xmin, xmax, sub) candidate intervals, it returns a partition
// of the swept range into pieces naming which candidate wins. There is one
// piece per sweep stop; consecutive pieces with the same winner are not
// merged.
//
// The sweep is grounded directly on
// original_source/src/python/functions.py's lower_envelop: an event queue
// of interval-open/interval-close events, an active set re-sorted on
// every event-drain, and synthetic intersection events inserted between
// adjacent active candidates to refine the partition where the winner
// changes mid-interval.
package envelope
