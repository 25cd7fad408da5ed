// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/railrev/core"
	"github.com/katalvlaran/railrev/dfs"
)

// ExampleReachable shows that a train reaching a hex edge from inside the hex
// has to cross it, so the town on the other track of the same hex is unreachable.
func ExampleReachable() {
	g := core.NewGraph()
	for _, v := range []*core.Vertex{
		{ID: "A1.0", Kind: core.Station, Type: core.City},
		{ID: "A1:1", Kind: core.Side},
		{ID: "A1.1", Kind: core.Station, Type: core.Town},
		{ID: "B1:4", Kind: core.Side},
		{ID: "B1.0", Kind: core.Station, Type: core.City},
	} {
		_ = g.AddVertex(v)
	}
	_, _ = g.AddEdge("A1.0", "A1:1")
	_, _ = g.AddEdge("A1:1", "A1.1")
	_, _ = g.AddEdge("A1:1", "B1:4", core.WithGreedy(true), core.WithDistance(1))
	_, _ = g.AddEdge("B1:4", "B1.0")

	res, _ := dfs.Reachable(g, "A1.0")
	fmt.Println(res.Order)
	// Output: [A1.0 A1:1 B1:4 B1.0]
}
