package network

import (
	"fmt"
	"sync"

	"github.com/arnvidarsen/evlink/charging"
	"github.com/arnvidarsen/evlink/piecewise"
)

// Kind tags which payload an Edge carries.
type Kind int

const (
	// Driving edges carry a consumption tradeoff function (spec §4.4).
	Driving Kind = iota
	// Charging edges carry a charging Function capped at battery capacity (spec §4.5).
	Charging
)

// Vertex is a location in the network.
type Vertex struct {
	ID       string
	Metadata map[string]interface{}
}

// Edge is a directed leg of the route: either a driving leg (Consumption
// set, Charge nil) or a charging stop (Charge set, Consumption nil).
type Edge struct {
	From, To   string
	Kind       Kind
	Consumption *piecewise.PiecewiseFunction
	Charge      *charging.Function
}

// Graph is a thread-safe, mutex-protected directed network of locations
// connected by driving legs and charging stops — generalized from
// core.Graph's adjacency storage (muVert/muEdgeAdj separation) to this
// package's two-variant edge payload.
type Graph struct {
	muVert sync.RWMutex
	muEdge sync.RWMutex

	vertices map[string]*Vertex
	edges    map[string]*Edge   // key: from+"\x00"+to
	adj      map[string][]string // from -> []to, insertion order preserved

	capacity float64
}

// Option configures a Graph before use.
type Option func(*Graph)

// WithCapacity sets the vehicle battery capacity M referenced by path
// computations over this network (spec §4.5).
func WithCapacity(m float64) Option {
	return func(g *Graph) { g.capacity = m }
}

// NewGraph builds an empty Graph.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		adj:      make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Capacity returns the battery capacity configured via WithCapacity.
func (g *Graph) Capacity() float64 { return g.capacity }

// AddVertex registers a location by ID.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = &Vertex{ID: id}
	}
	return nil
}

// HasVertex reports whether id has been registered.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]
	return ok
}

func edgeKey(from, to string) string { return from + "\x00" + to }

// AddDrivingEdge adds a directed driving leg from -> to, carrying the
// consumption tradeoff function for that leg.
func (g *Graph) AddDrivingEdge(from, to string, consumption *piecewise.PiecewiseFunction) error {
	if consumption == nil {
		return ErrMissingPayload
	}
	return g.addEdge(&Edge{From: from, To: to, Kind: Driving, Consumption: consumption})
}

// AddChargingEdge adds a directed charging stop from -> to, carrying the
// charger's capped charging Function.
func (g *Graph) AddChargingEdge(from, to string, cf *charging.Function) error {
	if cf == nil {
		return ErrMissingPayload
	}
	return g.addEdge(&Edge{From: from, To: to, Kind: Charging, Charge: cf})
}

func (g *Graph) addEdge(e *Edge) error {
	if !g.HasVertex(e.From) || !g.HasVertex(e.To) {
		return ErrVertexNotFound
	}
	key := edgeKey(e.From, e.To)
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	if _, exists := g.edges[key]; exists {
		return fmt.Errorf("%w: %s -> %s", ErrDuplicateEdge, e.From, e.To)
	}
	g.edges[key] = e
	g.adj[e.From] = append(g.adj[e.From], e.To)
	return nil
}

// Edge returns the directed edge from -> to, if any.
func (g *Graph) Edge(from, to string) (*Edge, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.edges[edgeKey(from, to)]
	return e, ok
}

// Neighbors returns the destinations directly reachable from id, in
// insertion order.
func (g *Graph) Neighbors(id string) []string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return append([]string{}, g.adj[id]...)
}
