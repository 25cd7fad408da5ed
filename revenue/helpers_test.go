// SPDX-License-Identifier: MIT

package revenue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railrev/core"
)

const company = "PR"

// network is a hand-built company graph.
type network struct {
	t *testing.T
	g *core.Graph
}

func newNetwork(t *testing.T) *network {
	t.Helper()

	return &network{t: t, g: core.NewGraph(core.WithMultiEdges())}
}

func (n *network) station(id string, typ core.StationType, value int) *network {
	n.t.Helper()
	require.NoError(n.t, n.g.AddVertex(&core.Vertex{ID: id, Kind: core.Station, Type: typ, Location: id, Value: value}))

	return n
}

func (n *network) city(id string, value int) *network { return n.station(id, core.City, value) }

func (n *network) town(id string, value int) *network { return n.station(id, core.Town, value) }

func (n *network) side(id string) *network {
	n.t.Helper()
	require.NoError(n.t, n.g.AddVertex(&core.Vertex{ID: id, Kind: core.Side}))

	return n
}

func (n *network) sink(id string) *network {
	n.t.Helper()
	v, err := n.g.Vertex(id)
	require.NoError(n.t, err)
	v.Sink = true

	return n
}

func (n *network) track(a, b string, opts ...core.EdgeOption) *network {
	n.t.Helper()
	_, err := n.g.AddEdge(a, b, opts...)
	require.NoError(n.t, err)

	return n
}

func (n *network) greedy(a, b string) *network { return n.track(a, b, core.WithGreedy(true)) }

// home joins the company HQ to the given stations.
func (n *network) home(ids ...string) *network {
	n.t.Helper()
	hq := core.HQVertexID(company)
	require.NoError(n.t, n.g.AddVertex(&core.Vertex{ID: hq, Kind: core.HQ, Label: company}))
	for _, id := range ids {
		n.track(hq, id)
	}

	return n
}

// line is HQ - A(30) - B(town 10) - C(40).
func line(t *testing.T) *core.Graph {
	return newNetwork(t).
		city("A", 30).town("B", 10).city("C", 40).
		track("A", "B").track("B", "C").
		home("A").g
}
