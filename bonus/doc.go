// SPDX-License-Identifier: MIT

// Package bonus models revenue bonuses: a value that a train earns when it
// scores every vertex of a fixed set, optionally restricted to some train
// types and some game phases.
//
// A bonus with a single required vertex is simple: the revenue search folds it
// into the vertex value. Bonuses over several vertices are complex and tracked
// while the search runs.
//
// Templates are the unresolved form read from scenario files. Resolve checks
// them against a live graph, roster and phase.
package bonus
