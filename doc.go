// Package railrev computes the maximum operating revenue of an 18xx railway
// company: the best set of non-overlapping train runs over the laid track.
//
// What is in the box?
//
//	A thread-safe network graph and a branch-and-bound search on top of it:
//		• Board to graph: stations, hex sides, greedy hex crossings
//		• Simplification: dead ends dropped, track chains dissolved
//		• Company and route graphs: tokens, sinks, HQ, one edge per route
//		• Trains: "2", "3+1", "4E", "6D", "D", "5H"
//		• Bonuses: station sets, train and phase restrictions
//		• Modifiers: static, dynamic and graph hooks around the search
//
// Subpackages:
//
//	core/      Graph, Vertex, Edge types & thread-safe primitives
//	dfs/       iterative reachability and route enumeration
//	train/     train types and the shorthand parser
//	bonus/     bonus templates and their resolution
//	builder/   board → network → company graph → route graph
//	revenue/   adapter, calculator, modifiers, manager and service
//	scenario/  YAML scenario files
//
// Quick ASCII example:
//
//	    HQ
//	    │
//	    A1(30)───B1(10)───C1(40)
//
//	a "2+1" train runs A1 - B1 - C1 for 80; a "2" train skips the town for 70.
//
//	go run github.com/katalvlaran/railrev/cmd/railrev scenario.yaml
package railrev
