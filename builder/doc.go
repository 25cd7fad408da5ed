// SPDX-License-Identifier: MIT
// Package: railrev/builder
//
// Package builder turns a board description into the network graph used by
// the revenue search, and derives the company-scoped graphs from it.
//
// Pipeline:
//
//	BuildNetwork(board)       one Station per stop, one Side per hex edge with
//	                          track; track segments are non-greedy edges of
//	                          distance 0, hex crossings greedy edges of distance 1
//	Simplify(g)               drops dead-end sides and dissolves chains of
//	                          degree-2 sides, preserving every legal route
//	CompanyGraph(g, company)  sink flags from tokens, reachability from the
//	                          company's stations, plus the HQ vertex
//	RouteGraph(cg)            stations and HQ only; one edge per distinct route
//
// Vertex IDs:
//
//	StationID("E5", 1) = "E5.1"    station slot 1 of hex E5
//	SideID("E5", 3)    = "E5:3"    side 3 of hex E5
//
// Sides are numbered 0..5 clockwise; side i of a hex faces side (i+3) mod 6 of
// its neighbour.
//
// Options:
//
//	WithContext(ctx)            cancellation and tracing parent
//	WithGraphModifiers(mods...) map and route graph hooks
//	WithoutSimplify()           keep the raw network in BuildNetwork
//
// Errors:
//
//	ErrUnknownHex, ErrBadEndpoint, ErrDuplicateStop, ErrDuplicateHex, ErrNoTokens.
package builder
