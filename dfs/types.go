// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: options, results and sentinel errors of the greedy-aware traversal.

package dfs

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/railrev/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Reachable or Routes.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of a traversal.
type Option func(*Options)

// Options holds configurable parameters for Reachable and Routes.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is first discovered.
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// Stop decides which vertices terminate a route. Routes never pass
	// through a stop vertex. Nil means every Station other than the start.
	Stop func(v *core.Vertex) bool

	// MaxDepth, if non-negative, limits the number of edges walked from the start.
	// Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with a background context, no hook,
// the default stop predicate and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a discovery hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithStop installs the predicate selecting route end vertices.
func WithStop(fn func(v *core.Vertex) bool) Option {
	return func(o *Options) { o.Stop = fn }
}

// WithMaxDepth limits traversal depth to limit edges.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// Result captures the outcome of Reachable.
type Result struct {
	// Order records vertices in the sequence they were first discovered.
	Order []string

	// Depth maps each vertex ID to the edge count of the path it was first discovered on.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was first discovered from.
	// The start vertex does not appear in this map.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool
}

// Route is a simple path from the start vertex to a stop vertex.
type Route struct {
	// Vertices lists the path from start to stop, both included.
	Vertices []string

	// Edges lists the edge IDs walked, len(Vertices)-1 entries.
	Edges []string

	// Distance is the sum of the walked edge distances.
	Distance int

	// Greedy is true when any walked edge is greedy.
	Greedy bool
}

// From returns the first vertex of the route.
func (r Route) From() string { return r.Vertices[0] }

// To returns the last vertex of the route.
func (r Route) To() string { return r.Vertices[len(r.Vertices)-1] }
