// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex attributes, lifecycle & queries.
//
// Determinism:
//   - Vertices() and VertexIDs() are sorted lexicographically by vertex ID.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).

package core

import (
	"sort"

	"github.com/pkg/errors"
)

// hqPrefix prefixes the ID of every company HQ vertex.
const hqPrefix = "HQ:"

// HQVertexID returns the ID of the virtual HQ vertex of company.
func HQVertexID(company string) string { return hqPrefix + company }

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (v *Vertex) IsNil() bool { return v == nil }

// IsStation reports whether v is a Station vertex.
func (v *Vertex) IsStation() bool { return v.Kind == Station }

// IsSide reports whether v is a Side vertex.
func (v *Vertex) IsSide() bool { return v.Kind == Side }

// IsHQ reports whether v is a company HQ vertex.
func (v *Vertex) IsHQ() bool { return v.Kind == HQ }

// IsMajor reports whether v is a major station (city or off-map).
func (v *Vertex) IsMajor() bool { return v.Kind == Station && v.Type.IsMajor() }

// IsMinor reports whether v is a minor station (town, halt or port).
func (v *Vertex) IsMinor() bool { return v.Kind == Station && v.Type.IsMinor() }

// ValueAt resolves the station value during phase p.
// Side and HQ vertices are never scored and always return 0.
func (v *Vertex) ValueAt(p Phase) int {
	if v.Kind != Station {
		return 0
	}
	if val, ok := v.PhaseValues[p.Name]; ok {
		return val
	}

	return v.Value
}

// HasToken reports whether company holds a base token on v.
func (v *Vertex) HasToken(company string) bool {
	for _, c := range v.Tokens {
		if c == company {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of v; PhaseValues and Tokens are not shared.
func (v *Vertex) Clone() *Vertex {
	cp := *v
	if v.PhaseValues != nil {
		cp.PhaseValues = make(map[string]int, len(v.PhaseValues))
		for k, val := range v.PhaseValues {
			cp.PhaseValues[k] = val
		}
	}
	cp.Tokens = append([]string(nil), v.Tokens...)

	return &cp
}

// String returns the label of v, or its ID when no label is set.
func (v *Vertex) String() string {
	if v.Label != "" {
		return v.Label
	}

	return v.ID
}

// AddVertex inserts v if no vertex with the same ID exists (idempotent).
// The graph stores the pointer; callers must not mutate v concurrently with readers.
//
// Errors:
//   - ErrNilVertex: if v == nil.
//   - ErrEmptyVertexID: if v.ID == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v *Vertex) error {
	if v.IsNil() {
		return ErrNilVertex
	}
	if v.ID == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[v.ID]; exists {
		return nil
	}
	g.vertices[v.ID] = v

	// Lock order muVert -> muEdgeAdj.
	g.muEdgeAdj.Lock()
	ensureAdjID(g, v.ID)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns the live vertex stored under id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "vertex %q", id)
	}

	return v, nil
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return errors.Wrapf(ErrVertexNotFound, "vertex %q", id)
	}
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			if e, ok := g.edges[eid]; ok {
				removeAdjacency(g, e)
				delete(g.edges, eid)
			}
		}
	}
	delete(g.adjacencyList, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertices sorted by ID.
// The returned pointers are the live catalog entries.
// Complexity: O(V log V).
func (g *Graph) Vertices() []*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexIDs returns all vertex IDs sorted lexicographically.
func (g *Graph) VertexIDs() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to id. A self-loop counts twice.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, errors.Wrapf(ErrVertexNotFound, "vertex %q", id)
	}
	deg := 0
	for to, edgeSet := range g.adjacencyList[id] {
		if to == id {
			deg += 2 * len(edgeSet)
			continue
		}
		deg += len(edgeSet)
	}

	return deg, nil
}
