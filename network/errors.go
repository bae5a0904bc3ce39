package network

import "errors"

// Sentinel errors for network operations, matching the style of
// core.ErrVertexNotFound / core.ErrEdgeNotFound.
var (
	// ErrEmptyVertexID indicates a vertex with an empty ID was added.
	ErrEmptyVertexID = errors.New("network: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("network: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("network: edge not found")

	// ErrDuplicateEdge indicates an edge between the same ordered pair of
	// vertices already exists; this network has no multi-edge support,
	// unlike core.Graph's optional WithMultiEdges.
	ErrDuplicateEdge = errors.New("network: edge already exists between these vertices")

	// ErrMissingPayload indicates an edge was added without its required
	// driving or charging payload.
	ErrMissingPayload = errors.New("network: edge is missing its consumption or charging payload")
)
