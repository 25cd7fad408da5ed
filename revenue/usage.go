// SPDX-License-Identifier: MIT
//
// File: usage.go
// Role: edge-usage strategies plugged into the search as a type parameter.
//
// Strategies are value types holding slices, so value receivers mutate shared
// state and each instantiation of engine gets its own specialised code.

package revenue

// UsageKind names the edge-usage strategy chosen for a calculation.
type UsageKind uint8

const (
	// Simple marks each edge used or free.
	Simple UsageKind = iota
	// Multi counts usage and consumes whole travel sets of overlapping route edges.
	Multi
	// MultiHex is Multi plus a per-train distance budget for H-trains.
	MultiHex
)

// String implements fmt.Stringer.
func (k UsageKind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Multi:
		return "multi"
	case MultiHex:
		return "multi-hex"
	default:
		return "unknown"
	}
}

// edgeUsage is the contract between the search and an edge-usage strategy.
// travel and release are always paired; an unpaired call is a defect.
type edgeUsage interface {
	usable(train, edge int) bool
	travel(train, edge int)
	release(train, edge int)
	clean() bool
}

type simpleUsage struct {
	used []bool
}

func newSimpleUsage(edges int) simpleUsage {
	return simpleUsage{used: make([]bool, edges)}
}

func (u simpleUsage) usable(_, edge int) bool { return !u.used[edge] }

func (u simpleUsage) travel(_, edge int) {
	if u.used[edge] {
		invariant("travel", "edge %d already used", edge)
	}
	u.used[edge] = true
}

func (u simpleUsage) release(_, edge int) {
	if !u.used[edge] {
		invariant("release", "edge %d was not travelled", edge)
	}
	u.used[edge] = false
}

func (u simpleUsage) clean() bool {
	for _, b := range u.used {
		if b {
			return false
		}
	}

	return true
}

// multiUsage counts, per edge, how many travelled edges of its travel set are in use.
type multiUsage struct {
	counters []int
	sets     [][]int // sets[e] lists e and every edge sharing track with it
}

func newMultiUsage(sets [][]int) multiUsage {
	return multiUsage{counters: make([]int, len(sets)), sets: sets}
}

func (u multiUsage) usable(_, edge int) bool { return u.counters[edge] == 0 }

func (u multiUsage) travel(_, edge int) {
	if u.counters[edge] != 0 {
		invariant("travel", "edge %d already used %d times", edge, u.counters[edge])
	}
	for _, f := range u.sets[edge] {
		u.counters[f]++
	}
}

func (u multiUsage) release(_, edge int) {
	for _, f := range u.sets[edge] {
		if u.counters[f] == 0 {
			invariant("release", "edge %d of travel set %d was not in use", f, edge)
		}
		u.counters[f]--
	}
}

func (u multiUsage) clean() bool {
	for _, c := range u.counters {
		if c != 0 {
			return false
		}
	}

	return true
}

// hexUsage adds distance budgets; a negative budget means unlimited.
type hexUsage struct {
	multiUsage
	distance []int
	budget   []int
	initial  []int
}

func newHexUsage(sets [][]int, distance, budget []int) hexUsage {
	return hexUsage{
		multiUsage: newMultiUsage(sets),
		distance:   distance,
		budget:     append([]int(nil), budget...),
		initial:    append([]int(nil), budget...),
	}
}

func (u hexUsage) usable(train, edge int) bool {
	if !u.multiUsage.usable(train, edge) {
		return false
	}

	return u.budget[train] < 0 || u.distance[edge] <= u.budget[train]
}

func (u hexUsage) travel(train, edge int) {
	u.multiUsage.travel(train, edge)
	if u.budget[train] >= 0 {
		if u.distance[edge] > u.budget[train] {
			invariant("travel", "edge %d exceeds distance budget of train %d", edge, train)
		}
		u.budget[train] -= u.distance[edge]
	}
}

func (u hexUsage) release(train, edge int) {
	u.multiUsage.release(train, edge)
	if u.initial[train] >= 0 {
		u.budget[train] += u.distance[edge]
	}
}

func (u hexUsage) clean() bool {
	for t := range u.budget {
		if u.budget[t] != u.initial[t] {
			return false
		}
	}

	return u.multiUsage.clean()
}
