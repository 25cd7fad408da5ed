// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
//
// Determinism:
//   - Neighbors() sorts by edge ID (generation order).
//   - NeighborIDs() returns unique IDs sorted lex asc.
//
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks (in that order).
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import (
	"sort"

	"github.com/pkg/errors"
)

// Neighbors returns all edges incident to the vertex id, sorted by edge ID.
// A self-loop appears once.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d), d = degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "vertex %q", id)
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			// adjacency never references missing edges; keep the guard cheap anyway
			if e.IsNil() {
				continue
			}
			out = append(out, e)
		}
	}
	SortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, sorted lexicographically.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		nb := e.Opposite(id)
		if _, ok := seen[nb]; ok {
			continue
		}
		seen[nb] = struct{}{}
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// ensureAdjID bootstraps the adjacency bucket of a vertex.
// Caller holds muEdgeAdj for writing.
func ensureAdjID(g *Graph, id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjacency registers e under both endpoints (once for a self-loop).
// Caller holds muEdgeAdj for writing.
func ensureAdjacency(g *Graph, e *Edge) {
	ensureAdjID(g, e.From)
	ensureAdjID(g, e.To)
	if _, ok := g.adjacencyList[e.From][e.To]; !ok {
		g.adjacencyList[e.From][e.To] = make(map[string]struct{})
	}
	g.adjacencyList[e.From][e.To][e.ID] = struct{}{}
	if e.From == e.To {
		return
	}
	if _, ok := g.adjacencyList[e.To][e.From]; !ok {
		g.adjacencyList[e.To][e.From] = make(map[string]struct{})
	}
	g.adjacencyList[e.To][e.From][e.ID] = struct{}{}
}

// removeAdjacency drops e from both endpoint buckets and prunes empty inner maps.
// Caller holds muEdgeAdj for writing.
func removeAdjacency(g *Graph, e *Edge) {
	drop := func(a, b string) {
		inner, ok := g.adjacencyList[a][b]
		if !ok {
			return
		}
		delete(inner, e.ID)
		if len(inner) == 0 {
			delete(g.adjacencyList[a], b)
		}
	}
	drop(e.From, e.To)
	drop(e.To, e.From)
}
