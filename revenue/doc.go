// SPDX-License-Identifier: MIT

// Package revenue finds the revenue-maximising routes of a company's trains
// on a company graph.
//
// An Adapter takes a company graph (or its route graph), a train roster,
// bonuses and visit sets, translates them into dense arrays and runs an exact
// branch and bound search:
//
//	a := revenue.NewAdapter(g, "PR", core.Phase{Name: "3"})
//	_ = a.AddTrainByString("3")
//	_ = a.AddTrainByString("2+1")
//	total, err := a.CalculateRevenue(ctx)
//	fmt.Println(a.OptimalRunPrettyPrint(true))
//
// Route rules:
//   - A route starts at a neighbour of the company HQ, scores at least two
//     stops and ends at a stop.
//   - Major stations (cities, off-map) are always stops and count against the
//     major budget. Minor stations (towns, halts, ports) may be stops while the
//     minor budget lasts; otherwise, and always for express trains, they are
//     passed without scoring.
//   - Sides obey the continuation rule of package dfs; sinks end a route.
//   - No edge is used by two trains, no vertex twice by one train, and a train
//     visits at most one vertex of each visit set.
//   - H-trains stop everywhere and are limited by the number of hex boundaries
//     crossed.
//
// The edge-usage strategy is chosen by Initialize: Simple on base graphs,
// Multi when route-graph edges share track, MultiHex when an H-train runs.
//
// Modifiers registered on a Manager adjust calculations: static modifiers
// change the adapter before the search, dynamic modifiers add to every
// evaluation (and to the prediction bound) or replace the search entirely.
//
// The search is single-threaded; independent adapters may run concurrently.
// A Service coalesces concurrent identical requests on a shared base graph.
package revenue
