// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, Phase, options, sentinel errors and the NewGraph constructor.

package core

import (
	"sync"

	"github.com/pkg/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates that a nil *Vertex was passed to AddVertex.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNegativeDistance indicates an edge distance below zero.
	ErrNegativeDistance = errors.New("core: negative edge distance")
)

// VertexKind classifies a vertex of the network graph.
type VertexKind uint8

const (
	// Station is a scoring location: a station slot of a city, town or off-map area.
	Station VertexKind = iota
	// Side is a hex edge carrying track. It only provides connectivity and is never scored.
	Side
	// HQ is the virtual per-company root connected to every station holding a company token.
	HQ
)

// String implements fmt.Stringer.
func (k VertexKind) String() string {
	switch k {
	case Station:
		return "station"
	case Side:
		return "side"
	case HQ:
		return "hq"
	default:
		return "unknown"
	}
}

// StationType refines Station vertices into major and minor stops.
type StationType string

const (
	City   StationType = "city"
	OffMap StationType = "offmap"
	Town   StationType = "town"
	Halt   StationType = "halt"
	Port   StationType = "port"
)

// IsMajor reports whether the station type counts as a major stop (city or off-map).
func (t StationType) IsMajor() bool { return t == City || t == OffMap }

// IsMinor reports whether the station type counts as a minor stop (town, halt or port).
func (t StationType) IsMinor() bool { return t == Town || t == Halt || t == Port }

// Phase is the current game phase. Phase names select phase-dependent station
// values and gate phase-restricted bonuses.
type Phase struct {
	Name string
}

// String implements fmt.Stringer.
func (p Phase) String() string { return p.Name }

// Vertex represents a node of the network graph.
//
// ID uniquely identifies this Vertex within its Graph and is the stable identity
// used for equality and ordering. All other attributes are data carried for the
// revenue calculation; the graph itself never interprets them.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Kind is Station, Side or HQ.
	Kind VertexKind

	// Type classifies Station vertices; empty for Side and HQ.
	Type StationType

	// Location is the hex this vertex belongs to (empty for HQ).
	Location string

	// Label is a human readable name used in formatted runs.
	Label string

	// Value is the revenue of the station when no phase value overrides it.
	Value int

	// PhaseValues maps a phase name to the station value during that phase.
	PhaseValues map[string]int

	// Sink marks a vertex a train may reach but never leave.
	Sink bool

	// Slots is the number of base-token slots of the station.
	Slots int

	// Tokens lists the companies holding a base token on the station.
	Tokens []string
}

// Edge represents an undirected connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From and To are the endpoint vertex IDs. The edge is undirected;
	// the order only records how it was added.
	From string
	To   string

	// Greedy marks edges that do not offer a branch choice at their Side endpoints.
	Greedy bool

	// Distance is the number of hex boundaries crossed by the edge.
	Distance int

	// Route lists the base-graph edge IDs a route-graph edge stands for.
	// It is empty for edges of a base or company graph.
	Route []string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithGreedy sets the greedy flag of the new edge.
func WithGreedy(greedy bool) EdgeOption {
	return func(e *Edge) { e.Greedy = greedy }
}

// WithDistance sets the distance of the new edge.
func WithDistance(distance int) EdgeOption {
	return func(e *Edge) { e.Distance = distance }
}

// WithRoute records the base-graph edges a route-graph edge stands for.
// The slice is copied.
func WithRoute(edgeIDs []string) EdgeOption {
	return func(e *Edge) { e.Route = append([]string(nil), edgeIDs...) }
}

// Graph is the network graph container.
//
// muVert protects the vertex catalog; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[v][neighbor][edgeID] = struct{}{}, mirrored for both endpoints.
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty undirected Graph.
// By default the graph allows neither loops nor multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsMulti bool
	AllowsLoops bool

	VertexCount  int
	StationCount int
	SideCount    int
	EdgeCount    int
	GreedyCount  int
}
