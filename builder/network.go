// SPDX-License-Identifier: MIT
// Package: railrev/builder
//
// network.go — BuildNetwork: board → network graph.
//
// Determinism:
//   • Hexes are processed in board order, stops and tracks in declaration
//     order, so edge IDs are stable for equal boards.

package builder

import (
	"github.com/plan-systems/klog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/railrev/core"
)

const tracerName = "github.com/katalvlaran/railrev/builder"

// BuildNetwork creates the network graph of board: one Station per stop, one
// Side per hex side carrying track, a non-greedy edge of distance 0 per track
// segment and a greedy edge of distance 1 per hex crossing where both facing
// sides carry track. Graph modifiers run on the result, then the graph is
// simplified unless WithoutSimplify is given.
//
// The graph permits parallel edges: simplification may leave two distinct
// physical tracks between the same vertices.
//
// Errors: ErrDuplicateHex, ErrDuplicateStop, ErrBadEndpoint, ErrUnknownHex.
func BuildNetwork(board Board, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	_, span := otel.Tracer(tracerName).Start(cfg.ctx, "builder.BuildNetwork")
	defer span.End()

	g, err := buildNetwork(board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	for _, m := range cfg.modifiers {
		m.ModifyMapGraph(g)
	}
	if cfg.simplify {
		st, err := Simplify(g)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		klog.V(1).Infof("builder: simplified network: %s", st)
	}

	stats := g.Stats()
	span.SetAttributes(
		attribute.Int("vertices", stats.VertexCount),
		attribute.Int("edges", stats.EdgeCount),
	)

	return g, nil
}

func buildNetwork(board Board) (*core.Graph, error) {
	idx, err := board.hexIndex()
	if err != nil {
		return nil, err
	}
	g := core.NewGraph(core.WithMultiEdges())

	// Stations.
	for _, h := range board.Hexes {
		for _, s := range h.Stops {
			id := StationID(h.ID, s.Slot)
			if g.HasVertex(id) {
				return nil, builderErrorf(methodBuildNetwork, ErrDuplicateStop, "hex %q slot %d", h.ID, s.Slot)
			}
			label := s.Label
			if label == "" {
				label = h.ID
			}
			v := &core.Vertex{
				ID:          id,
				Kind:        core.Station,
				Type:        s.Type,
				Location:    h.ID,
				Label:       label,
				Value:       s.Value,
				PhaseValues: s.PhaseValues,
				Slots:       s.Slots,
				Tokens:      append([]string(nil), s.Tokens...),
			}
			if err = g.AddVertex(v); err != nil {
				return nil, err
			}
		}
	}

	// Track segments inside each hex.
	for _, h := range board.Hexes {
		seen := make(map[[2]string]bool, len(h.Tracks))
		for _, t := range h.Tracks {
			a, err := endpointVertex(g, h, t.A)
			if err != nil {
				return nil, err
			}
			b, err := endpointVertex(g, h, t.B)
			if err != nil {
				return nil, err
			}
			if a == b {
				return nil, builderErrorf(methodBuildNetwork, ErrBadEndpoint, "hex %q track %s joins an endpoint to itself", h.ID, t)
			}
			key := [2]string{a, b}
			if b < a {
				key = [2]string{b, a}
			}
			if seen[key] {
				klog.Warningf("builder: hex %s: duplicate track %s ignored", h.ID, t)
				continue
			}
			seen[key] = true
			if _, err = g.AddEdge(a, b, core.WithDistance(0)); err != nil {
				return nil, err
			}
		}
	}

	// Hex crossings, each pair once.
	for _, h := range board.Hexes {
		for side, nb := range h.Neighbors {
			if nb == "" {
				continue
			}
			other, ok := idx[nb]
			if !ok {
				return nil, builderErrorf(methodBuildNetwork, ErrUnknownHex, "hex %q side %d neighbour %q", h.ID, side, nb)
			}
			a, b := SideID(h.ID, side), SideID(other.ID, OppositeSide(side))
			if !g.HasVertex(a) || !g.HasVertex(b) || g.HasEdge(a, b) {
				continue
			}
			if _, err = g.AddEdge(a, b, core.WithGreedy(true), core.WithDistance(1)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// endpointVertex resolves a track endpoint, creating Side vertices on demand.
func endpointVertex(g *core.Graph, h Hex, e Endpoint) (string, error) {
	if e.IsSide {
		if e.Side < 0 || e.Side > 5 {
			return "", builderErrorf(methodBuildNetwork, ErrBadEndpoint, "hex %q side %d", h.ID, e.Side)
		}
		id := SideID(h.ID, e.Side)
		if err := g.AddVertex(&core.Vertex{ID: id, Kind: core.Side, Location: h.ID, Label: h.ID}); err != nil {
			return "", err
		}

		return id, nil
	}
	id := StationID(h.ID, e.Stop)
	if !g.HasVertex(id) {
		return "", builderErrorf(methodBuildNetwork, ErrBadEndpoint, "hex %q stop %d", h.ID, e.Stop)
	}

	return id, nil
}
