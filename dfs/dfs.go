// SPDX-License-Identifier: MIT
//
// File: dfs.go
// Role: greedy-aware reachability over an explicit stack.

package dfs

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"

	"github.com/katalvlaran/railrev/core"
)

// frame is one pending expansion on the explicit stack.
type frame struct {
	id         string
	parent     string
	via        string // entry edge ID, empty for the start
	depth      int
	restricted bool // Side entered through a non-greedy edge
}

// state identifies an explored expansion: a restricted Side is keyed by "r",
// a free one by the greedy edge it was entered through.
type state struct {
	id   string
	mode string
}

// reachWalker encapsulates state during Reachable.
type reachWalker struct {
	graph *core.Graph
	opts  Options
	start string
	res   *Result

	seen map[state]bool
}

// Reachable collects every vertex reachable from start under the continuation
// and re-entry rules. The start vertex is expanded even when it is a sink.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ctx errors, OnVisit errors.
func Reachable(g *core.Graph, start string, opts ...Option) (*Result, error) {
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

	n := g.VertexCount()
	w := &reachWalker{
		graph: g,
		opts:  o,
		start: start,
		res: &Result{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
		seen: make(map[state]bool, n),
	}
	if err := w.run(); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// stateOf maps a pending expansion to its explored-state key. Stations and HQ
// vertices never restrict, so they have a single state.
func stateOf(v *core.Vertex, via string, restricted bool) state {
	switch {
	case !v.IsSide():
		return state{id: v.ID}
	case restricted:
		return state{id: v.ID, mode: "r"}
	default:
		return state{id: v.ID, mode: "f" + via}
	}
}

func (w *reachWalker) run() error {
	stack := arraystack.New()
	stack.Push(frame{id: w.start})

	for !stack.Empty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top, _ := stack.Pop()
		f := top.(frame)
		v, err := w.graph.Vertex(f.id)
		if err != nil {
			return err
		}
		st := stateOf(v, f.via, f.restricted)
		if w.seen[st] {
			continue
		}
		w.seen[st] = true

		if !w.res.Visited[f.id] {
			w.res.Visited[f.id] = true
			w.res.Depth[f.id] = f.depth
			w.res.Order = append(w.res.Order, f.id)
			if f.id != w.start {
				w.res.Parent[f.id] = f.parent
			}
			if w.opts.OnVisit != nil {
				if err := w.opts.OnVisit(f.id); err != nil {
					return errors.Wrapf(err, "dfs: OnVisit hook for %q", f.id)
				}
			}
		}

		if w.opts.MaxDepth >= 0 && f.depth >= w.opts.MaxDepth {
			continue
		}
		if v.Sink && f.id != w.start {
			continue
		}

		nbs, err := w.graph.Neighbors(f.id)
		if err != nil {
			return errors.Wrapf(err, "dfs: Neighbors(%q)", f.id)
		}
		// Push in reverse so the lowest edge ID is expanded first.
		for i := len(nbs) - 1; i >= 0; i-- {
			e := nbs[i]
			if e.ID == f.via || !canLeave(v, f.restricted, e) {
				continue
			}
			nid := e.Opposite(f.id)
			if nid == f.id {
				continue
			}
			nv, err := w.graph.Vertex(nid)
			if err != nil {
				return err
			}
			restricted := entersRestricted(nv, e)
			if w.seen[stateOf(nv, e.ID, restricted)] {
				continue
			}
			stack.Push(frame{id: nid, parent: f.id, via: e.ID, depth: f.depth + 1, restricted: restricted})
		}
	}

	return nil
}

// canLeave applies the continuation rule: a restricted Side may only be left through greedy edges.
func canLeave(v *core.Vertex, restricted bool, e *core.Edge) bool {
	return !(v.IsSide() && restricted) || e.Greedy
}

// entersRestricted reports whether arriving at v through e restricts its exits.
func entersRestricted(v *core.Vertex, e *core.Edge) bool {
	return v.IsSide() && !e.Greedy
}
