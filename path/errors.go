package path

import "errors"

var (
	// ErrPathTooShort is returned when a route has fewer than two vertices.
	ErrPathTooShort = errors.New("path: route must visit at least two vertices")

	// ErrEdgeNotFound is returned when a consecutive pair in the route has
	// no corresponding network edge.
	ErrEdgeNotFound = errors.New("path: no edge between consecutive route vertices")

	// ErrUnknownEdgeKind is returned if a network.Edge reports a Kind this
	// package does not know how to link over.
	ErrUnknownEdgeKind = errors.New("path: unknown edge kind")
)
