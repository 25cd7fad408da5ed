// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() is sorted by edge ID in generation order ("e2" before "e10").
//
// Concurrency:
//   - Edge catalog and adjacency protected by muEdgeAdj; endpoint validation under muVert.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/pkg/errors"
)

const edgeIDPrefix = "e"

// Opposite returns the endpoint of e that is not id.
// For a self-loop both endpoints are id.
func (e *Edge) Opposite(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Touches reports whether id is one of the endpoints of e.
func (e *Edge) Touches(id string) bool { return e.From == id || e.To == id }

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (e *Edge) IsNil() bool { return e == nil }

// AddEdge creates a new undirected edge between two existing vertices and returns its ID.
// Both endpoints must be present: unlike a generic graph the network never invents
// vertices, because every vertex carries station data.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed,
//     ErrMultiEdgeNotAllowed, ErrNegativeDistance.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", errors.Wrapf(ErrLoopNotAllowed, "edge %s-%s", from, to)
	}

	e := &Edge{From: from, To: to}
	for _, opt := range opts {
		opt(e)
	}
	if e.Distance < 0 {
		return "", errors.Wrapf(ErrNegativeDistance, "edge %s-%s distance %d", from, to, e.Distance)
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[from]; !ok {
		return "", errors.Wrapf(ErrVertexNotFound, "edge endpoint %q", from)
	}
	if _, ok := g.vertices[to]; !ok {
		return "", errors.Wrapf(ErrVertexNotFound, "edge endpoint %q", to)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
			return "", errors.Wrapf(ErrMultiEdgeNotAllowed, "edge %s-%s", from, to)
		}
	}

	e.ID = fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
	g.edges[e.ID] = e
	ensureAdjacency(g, e)

	return e.ID, nil
}

// Edge returns the live edge stored under id.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph) Edge(id string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return nil, errors.Wrapf(ErrEdgeNotFound, "edge %q", id)
	}

	return e, nil
}

// RemoveEdge deletes the edge with the given ID from the graph.
//
// Errors:
//   - ErrEdgeNotFound.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(id string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[id]
	if !ok {
		return errors.Wrapf(ErrEdgeNotFound, "edge %q", id)
	}
	delete(g.edges, id)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge connects a and b.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[a][b]) > 0
}

// Edges returns all edges sorted by ID.
// The returned pointers are the live catalog entries; treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	SortEdges(out)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// SortEdges orders edges by ID in generation order.
func SortEdges(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return LessEdgeID(edges[i].ID, edges[j].ID) })
}

// LessEdgeID orders generated edge IDs numerically ("e2" < "e10") and any
// other IDs lexicographically within the same length.
func LessEdgeID(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
