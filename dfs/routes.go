// SPDX-License-Identifier: MIT
//
// File: routes.go
// Role: simple-route enumeration between stop vertices.

package dfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/railrev/core"
)

// routeWalker keeps the current path as paired push/pop state.
type routeWalker struct {
	graph *core.Graph
	opts  Options
	start string

	vertices []string
	edges    []string
	onPath   map[string]bool
	seen     map[string]bool
	distance int
	greedy   int // number of greedy edges on the path

	out []Route
}

// Routes enumerates every simple path from start to a stop vertex that
// respects the continuation rule. Paths never pass through a stop vertex or a
// sink; the start is expanded even when it is a sink.
// Routes are returned in discovery order (edges tried in ID order).
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ctx errors, OnVisit errors.
func Routes(g *core.Graph, start string, opts ...Option) ([]Route, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !g.HasVertex(start) {
		return nil, errors.Wrapf(ErrStartVertexNotFound, "start %q", start)
	}
	if o.Stop == nil {
		o.Stop = func(v *core.Vertex) bool { return v.IsStation() && v.ID != start }
	}

	w := &routeWalker{
		graph:    g,
		opts:     o,
		start:    start,
		vertices: []string{start},
		onPath:   map[string]bool{start: true},
		seen:     map[string]bool{},
	}
	if err := w.visit(start); err != nil {
		return nil, err
	}
	if err := w.walk(start, false); err != nil {
		return nil, err
	}

	return w.out, nil
}

func (w *routeWalker) visit(id string) error {
	if w.seen[id] || w.opts.OnVisit == nil {
		w.seen[id] = true
		return nil
	}
	w.seen[id] = true
	if err := w.opts.OnVisit(id); err != nil {
		return errors.Wrapf(err, "dfs: OnVisit hook for %q", id)
	}

	return nil
}

// walk extends the current path from id; restricted follows the continuation rule.
func (w *routeWalker) walk(id string, restricted bool) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxDepth >= 0 && len(w.edges) >= w.opts.MaxDepth {
		return nil
	}

	v, err := w.graph.Vertex(id)
	if err != nil {
		return err
	}
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return errors.Wrapf(err, "dfs: Neighbors(%q)", id)
	}
	for _, e := range nbs {
		if !canLeave(v, restricted, e) {
			continue
		}
		nid := e.Opposite(id)
		if w.onPath[nid] {
			continue
		}
		nv, err := w.graph.Vertex(nid)
		if err != nil {
			return err
		}
		if err = w.visit(nid); err != nil {
			return err
		}

		w.push(nid, e)
		switch {
		case w.opts.Stop(nv):
			w.record()
		case nv.Sink:
		default:
			err = w.walk(nid, entersRestricted(nv, e))
		}
		w.pop(e)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *routeWalker) push(id string, e *core.Edge) {
	w.vertices = append(w.vertices, id)
	w.edges = append(w.edges, e.ID)
	w.onPath[id] = true
	w.distance += e.Distance
	if e.Greedy {
		w.greedy++
	}
}

func (w *routeWalker) pop(e *core.Edge) {
	last := w.vertices[len(w.vertices)-1]
	delete(w.onPath, last)
	w.vertices = w.vertices[:len(w.vertices)-1]
	w.edges = w.edges[:len(w.edges)-1]
	w.distance -= e.Distance
	if e.Greedy {
		w.greedy--
	}
}

func (w *routeWalker) record() {
	w.out = append(w.out, Route{
		Vertices: append([]string(nil), w.vertices...),
		Edges:    append([]string(nil), w.edges...),
		Distance: w.distance,
		Greedy:   w.greedy > 0,
	})
}
