// SPDX-License-Identifier: MIT
// Package: railrev/builder
//
// company.go — company-scoped graphs.

package builder

import (
	"github.com/plan-systems/klog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/railrev/core"
	"github.com/katalvlaran/railrev/dfs"
)

// IsSinkFor reports whether trains of company may reach v but not run through
// it: off-map areas, and stations whose token slots are all filled by other
// companies.
func IsSinkFor(v *core.Vertex, company string) bool {
	if !v.IsStation() {
		return false
	}
	if v.Type == core.OffMap {
		return true
	}

	return v.Slots > 0 && len(v.Tokens) >= v.Slots && !v.HasToken(company)
}

// CompanyGraph derives the graph company's trains may run on: a clone of base
// with sink flags set for company, cut down to the vertices reachable from the
// company's token stations, plus the HQ vertex joined to each token station.
// Graph modifiers' ModifyRouteGraph run on the result.
//
// Errors: ErrNoTokens, dfs errors (cancellation through WithContext).
func CompanyGraph(base *core.Graph, company string, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	ctx, span := otel.Tracer(tracerName).Start(cfg.ctx, "builder.CompanyGraph")
	defer span.End()
	span.SetAttributes(attribute.String("company", company))

	g, err := companyGraph(base, company, cfg, dfs.WithContext(ctx))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return g, nil
}

func companyGraph(base *core.Graph, company string, cfg builderConfig, dopts ...dfs.Option) (*core.Graph, error) {
	work := base.Clone()
	var homes []string
	for _, v := range work.Vertices() {
		if IsSinkFor(v, company) {
			v.Sink = true
		}
		if v.IsStation() && v.HasToken(company) {
			homes = append(homes, v.ID)
		}
	}
	if len(homes) == 0 {
		return nil, builderErrorf(methodCompanyGraph, ErrNoTokens, "company %q", company)
	}

	keep := make(map[string]bool)
	for _, h := range homes {
		res, err := dfs.Reachable(work, h, dopts...)
		if err != nil {
			return nil, err
		}
		for id := range res.Visited {
			keep[id] = true
		}
	}

	g := work.Subgraph(keep)
	hq := core.HQVertexID(company)
	if err := g.AddVertex(&core.Vertex{ID: hq, Kind: core.HQ, Label: company}); err != nil {
		return nil, err
	}
	for _, h := range homes {
		if _, err := g.AddEdge(hq, h); err != nil {
			return nil, err
		}
	}
	for _, m := range cfg.modifiers {
		m.ModifyRouteGraph(g, company)
	}
	klog.V(1).Infof("builder: company %s graph: %d of %d vertices reachable from %d stations",
		company, len(keep), base.VertexCount(), len(homes))

	return g, nil
}
