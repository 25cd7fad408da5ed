// SPDX-License-Identifier: MIT

// Package train describes run-length specifications of trains and parses the
// shorthand used by rosters and ad hoc calculations.
//
// Shorthand:
//
//	"2"    two major stops, minors passed through uncounted
//	"3+3"  three majors plus three minor stops
//	"4E"   express: four majors, minors ignored entirely
//	"6D"   double express: six majors scoring twice, minors ignored
//	"D"    diesel: unlimited stops
//	"5H"   H-train: may cross five hexes, stopping anywhere
//
// Trains are values; the revenue search never mutates them.
package train
