// SPDX-License-Identifier: MIT
// Package: railrev/builder
//
// route.go — route graph: stations joined by complete routes.
//
// Determinism:
//   • Routes are deduplicated by their sorted base edge set and added in
//     key order, so equal company graphs yield equal route graphs.

package builder

import (
	"sort"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/plan-systems/klog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/railrev/core"
	"github.com/katalvlaran/railrev/dfs"
)

// RouteGraph collapses a company graph into a graph over its Station and HQ
// vertices with one edge per distinct simple route between two of them. Each
// edge records the base edges it stands for in Route, their summed Distance,
// and is greedy when any base edge is. Two route edges sharing a base edge
// describe the same physical track and must not both be used; the revenue
// search treats them as one travel set.
func RouteGraph(cg *core.Graph, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	ctx, span := otel.Tracer(tracerName).Start(cfg.ctx, "builder.RouteGraph")
	defer span.End()

	g, err := routeGraph(cg, dfs.WithContext(ctx))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("routes", g.EdgeCount()))

	return g, nil
}

func routeGraph(cg *core.Graph, dopts ...dfs.Option) (*core.Graph, error) {
	g := core.NewGraph(core.WithMultiEdges())
	var stops []string
	for _, v := range cg.Vertices() {
		if v.IsSide() {
			continue
		}
		if err := g.AddVertex(v.Clone()); err != nil {
			return nil, err
		}
		stops = append(stops, v.ID)
	}

	routes := redblacktree.NewWithStringComparator()
	for _, start := range stops {
		stop := func(v *core.Vertex) bool { return !v.IsSide() && v.ID != start }
		found, err := dfs.Routes(cg, start, append(dopts, dfs.WithStop(stop))...)
		if err != nil {
			return nil, builderErrorf(methodRouteGraph, err, "routes from %q", start)
		}
		for _, r := range found {
			key := routeKey(r)
			if _, dup := routes.Get(key); !dup {
				routes.Put(key, r)
			}
		}
	}

	it := routes.Iterator()
	for it.Next() {
		r := it.Value().(dfs.Route)
		if _, err := g.AddEdge(r.From(), r.To(),
			core.WithGreedy(r.Greedy),
			core.WithDistance(r.Distance),
			core.WithRoute(r.Edges),
		); err != nil {
			return nil, err
		}
	}
	klog.V(1).Infof("builder: route graph: %d stops, %d routes", len(stops), routes.Size())

	return g, nil
}

// routeKey identifies a route by its set of base edges.
func routeKey(r dfs.Route) string {
	ids := append([]string(nil), r.Edges...)
	sort.Slice(ids, func(i, j int) bool { return core.LessEdgeID(ids[i], ids[j]) })

	return strings.Join(ids, ",")
}
