// SPDX-License-Identifier: MIT
// Package: railrev/builder
//
// simplify.go — exact reduction of Side vertices.
//
// A chain is a maximal path x - s1 - ... - sk - y whose inner vertices are
// Side vertices of degree 2. Because Sides are never scored and paths are
// vertex-simple, a train either runs the whole chain or none of it. The chain
// is passable when every inner side has a greedy edge on at least one side.
// Replacing it by one edge is exact when the new edge enters each Side end in
// the same state as the original end edge did, i.e. every Side end is attached
// through a greedy edge (a passable chain with inner sides is always greedy).

package builder

import (
	"fmt"

	"github.com/katalvlaran/railrev/core"
)

// SimplifyStats reports what Simplify removed.
type SimplifyStats struct {
	Rounds     int // fix-point iterations
	DeadEnds   int // Side vertices of degree <= 1
	Dissolved  int // chains merged into one edge
	Impassable int // chains no train can run through
	Loops      int // chains returning to their start, or closed side cycles
	Removed    int // Side vertices removed in total
}

// String implements fmt.Stringer.
func (s SimplifyStats) String() string {
	return fmt.Sprintf("rounds=%d dead-ends=%d dissolved=%d impassable=%d loops=%d removed=%d",
		s.Rounds, s.DeadEnds, s.Dissolved, s.Impassable, s.Loops, s.Removed)
}

// chain is a run of degree-2 Sides between two end vertices.
type chain struct {
	inner []string     // inner Side IDs in walking order
	edges []*core.Edge // len(inner)+1 edges from x to y
	x, y  string       // end vertices; empty for a closed cycle
}

// Simplify removes dead-end Sides and dissolves chains of degree-2 Sides in g,
// repeating until nothing changes. The optimal revenue of any company graph
// derived from g is unchanged. g must permit parallel edges if chains between
// the same ends are to be merged; otherwise such chains are kept.
func Simplify(g *core.Graph) (SimplifyStats, error) {
	var st SimplifyStats
	for {
		st.Rounds++
		changed, err := simplifyRound(g, &st)
		if err != nil {
			return st, err
		}
		if !changed {
			return st, nil
		}
	}
}

func simplifyRound(g *core.Graph, st *SimplifyStats) (bool, error) {
	changed := false

	// Dead ends.
	for _, v := range g.Vertices() {
		if !v.IsSide() {
			continue
		}
		deg, err := g.Degree(v.ID)
		if err != nil {
			return false, err
		}
		if deg <= 1 {
			if err = g.RemoveVertex(v.ID); err != nil {
				return false, err
			}
			st.DeadEnds++
			st.Removed++
			changed = true
		}
	}

	// Chains.
	done := make(map[string]bool)
	for _, v := range g.Vertices() {
		if done[v.ID] || !g.HasVertex(v.ID) {
			continue
		}
		ok, err := isChainSide(g, v.ID)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		c, err := collectChain(g, v.ID)
		if err != nil {
			return false, err
		}
		for _, id := range c.inner {
			done[id] = true
		}
		merged, err := reduceChain(g, c, st)
		if err != nil {
			return false, err
		}
		changed = changed || merged
	}

	return changed, nil
}

// isChainSide reports whether id is a Side with exactly two edges and no self-loop.
func isChainSide(g *core.Graph, id string) (bool, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return false, err
	}
	if !v.IsSide() {
		return false, nil
	}
	nbs, err := g.Neighbors(id)
	if err != nil {
		return false, err
	}

	return len(nbs) == 2 && nbs[0].Opposite(id) != id && nbs[1].Opposite(id) != id, nil
}

// collectChain walks from the degree-2 Side start in both directions.
func collectChain(g *core.Graph, start string) (chain, error) {
	nbs, err := g.Neighbors(start)
	if err != nil {
		return chain{}, err
	}

	// walk follows edge e away from from until a non-chain vertex or start.
	walk := func(from string, e *core.Edge) (inner []string, edges []*core.Edge, end string, closed bool, err error) {
		edges = append(edges, e)
		cur := e.Opposite(from)
		for {
			if cur == start {
				return inner, edges, "", true, nil
			}
			ok, err := isChainSide(g, cur)
			if err != nil {
				return nil, nil, "", false, err
			}
			if !ok {
				return inner, edges, cur, false, nil
			}
			inner = append(inner, cur)
			cnb, err := g.Neighbors(cur)
			if err != nil {
				return nil, nil, "", false, err
			}
			next := cnb[0]
			if next.ID == edges[len(edges)-1].ID {
				next = cnb[1]
			}
			edges = append(edges, next)
			cur = next.Opposite(cur)
		}
	}

	rightInner, rightEdges, y, closed, err := walk(start, nbs[1])
	if err != nil {
		return chain{}, err
	}
	if closed {
		return chain{inner: append([]string{start}, rightInner...), edges: rightEdges}, nil
	}
	leftInner, leftEdges, x, _, err := walk(start, nbs[0])
	if err != nil {
		return chain{}, err
	}

	// Assemble x ... start ... y.
	c := chain{x: x, y: y}
	for i := len(leftInner) - 1; i >= 0; i-- {
		c.inner = append(c.inner, leftInner[i])
	}
	c.inner = append(c.inner, start)
	c.inner = append(c.inner, rightInner...)
	for i := len(leftEdges) - 1; i >= 0; i-- {
		c.edges = append(c.edges, leftEdges[i])
	}
	c.edges = append(c.edges, rightEdges...)

	return c, nil
}

// reduceChain removes or merges c; it reports whether g changed.
func reduceChain(g *core.Graph, c chain, st *SimplifyStats) (bool, error) {
	removeInner := func() error {
		for _, id := range c.inner {
			if err := g.RemoveVertex(id); err != nil {
				return err
			}
			st.Removed++
		}
		return nil
	}

	if c.x == "" || c.x == c.y {
		st.Loops++
		return true, removeInner()
	}

	greedy, distance := false, 0
	for i, e := range c.edges {
		greedy = greedy || e.Greedy
		distance += e.Distance
		if i > 0 && !e.Greedy && !c.edges[i-1].Greedy {
			st.Impassable++
			return true, removeInner()
		}
	}

	first, last := c.edges[0], c.edges[len(c.edges)-1]
	for _, end := range []struct {
		id string
		e  *core.Edge
	}{{c.x, first}, {c.y, last}} {
		v, err := g.Vertex(end.id)
		if err != nil {
			return false, err
		}
		if v.IsSide() && end.e.Greedy != greedy {
			return false, nil
		}
	}
	if !g.Multigraph() && g.HasEdge(c.x, c.y) {
		return false, nil
	}

	if err := removeInner(); err != nil {
		return false, err
	}
	if _, err := g.AddEdge(c.x, c.y, core.WithGreedy(greedy), core.WithDistance(distance)); err != nil {
		return false, builderErrorf(methodSimplify, err, "chain %v", c.inner)
	}
	st.Dissolved++

	return true, nil
}
