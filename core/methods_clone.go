// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning, induced subgraphs and statistics.
//
// Determinism:
//   - Clone/Subgraph carry over nextEdgeID to keep edge IDs monotonic on the copy.
//
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and deep-copied
// vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.cloneVertices(nil)
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and adjacency.
// Vertices and edges are copied, so the clone can be mutated freely (sink flags,
// removed vertices) without touching g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.Subgraph(nil)
}

// Subgraph returns the induced subgraph on the vertices in keep: deep copies of
// the kept vertices and of every edge whose endpoints are both kept.
// A nil keep map keeps every vertex.
// Complexity: O(V + E).
func (g *Graph) Subgraph(keep map[string]bool) *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := g.cloneVertices(keep)
	for eid, e := range g.edges {
		if keep != nil && (!keep[e.From] || !keep[e.To]) {
			continue
		}
		ne := &Edge{
			ID:       eid,
			From:     e.From,
			To:       e.To,
			Greedy:   e.Greedy,
			Distance: e.Distance,
			Route:    append([]string(nil), e.Route...),
		}
		out.edges[eid] = ne
		ensureAdjacency(out, ne)
	}

	return out
}

// cloneVertices builds an edgeless graph with g's flags and copies of the kept vertices.
// Caller holds both read locks.
func (g *Graph) cloneVertices(keep map[string]bool) *Graph {
	opts := make([]GraphOption, 0, 2)
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		if keep != nil && !keep[id] {
			continue
		}
		out.vertices[id] = v.Clone()
		ensureAdjID(out, id)
	}

	return out
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	for _, v := range g.vertices {
		switch v.Kind {
		case Station:
			stats.StationCount++
		case Side:
			stats.SideCount++
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.Greedy {
			stats.GreedyCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
