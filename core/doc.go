// SPDX-License-Identifier: MIT

// Package core defines the railway network model: typed vertices (stations,
// hex sides, company headquarters), undirected edges carrying a greedy flag and
// a distance, and a thread-safe Graph container holding both.
//
// The Graph G = (V,E) is always undirected. It supports:
//
//   - Station vertices tied to a map location and a station slot, classified as
//     major (city, off-map) or minor (town, halt, port)
//   - Side vertices (a hex edge carrying track) used only for connectivity
//   - HQ vertices, one virtual root per company anchoring the start points
//   - Parallel edges (WithMultiEdges) for route graphs where several physical
//     routes connect the same pair of stations
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//   - Vertices() is sorted by vertex ID, Edges() and Neighbors() by edge ID
//     (numeric order of the generated suffix), so every consumer iterating the
//     graph sees the same order on every run.
//
// Phase-dependent values:
//
//	v.ValueAt(core.Phase{Name: "5"}) returns PhaseValues["5"] when present and
//	falls back to Value otherwise.
//
// Errors:
//
//	ErrNilVertex           - vertex pointer is nil.
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrNegativeDistance    - an edge distance below zero.
package core
