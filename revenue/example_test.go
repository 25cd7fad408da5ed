// SPDX-License-Identifier: MIT

package revenue_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/railrev/core"
	"github.com/katalvlaran/railrev/revenue"
)

func ExampleAdapter() {
	g := core.NewGraph()
	_ = g.AddVertex(&core.Vertex{ID: "A", Kind: core.Station, Type: core.City, Location: "A1", Value: 30})
	_ = g.AddVertex(&core.Vertex{ID: "B", Kind: core.Station, Type: core.Town, Location: "B1", Value: 10})
	_ = g.AddVertex(&core.Vertex{ID: "C", Kind: core.Station, Type: core.City, Location: "C1", Value: 40})
	_ = g.AddVertex(&core.Vertex{ID: core.HQVertexID("PR"), Kind: core.HQ})
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge(core.HQVertexID("PR"), "A")

	a := revenue.NewAdapter(g, "PR", core.Phase{Name: "2"})
	_ = a.AddTrainByString("2")
	_ = a.AddTrainByString("2+1")
	total, err := a.CalculateRevenue(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(total)
	fmt.Println(a.OptimalRunPrettyPrint(false))
	// Output:
	// 80
	// 2: does not run
	// 2+1: A1 (30) - B1 (10) - C1 (40) = 80
	// Total: 80
}
