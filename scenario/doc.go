// SPDX-License-Identifier: MIT
// Package: railrev/scenario
//
// Package scenario reads YAML scenario files: a board, the companies running
// on it with their trains, bonus templates and visit sets.
//
// Example:
//
//	phase: "3"
//	hexes:
//	  - id: A1
//	    neighbors: {1: B1}
//	    stops: [{slot: 0, type: city, value: 30, slots: 1, tokens: [PR]}]
//	    tracks: ["0-s1"]
//	  - id: B1
//	    neighbors: {4: A1}
//	    stops: [{slot: 0, type: town, value: 10}]
//	    tracks: ["s4-0"]
//	companies:
//	  - id: PR
//	    trains: ["2", "3+1"]
//	bonuses:
//	  - {name: west, value: 20, vertices: [A1.0]}
//
// Track notation joins two endpoints with "-": "sN" is hex side N (0..5),
// a bare number is a stop slot.
package scenario
