// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: depth-first branch and bound over all trains at once.
//
// Algorithm:
//   - Trains are routed one after another. For each train the engine loops
//     over the start vertices, walks a "top" part from the start, and at every
//     scored stop optionally opens a "bottom" part from the start over the
//     start's edges after the first one taken, so a route through the start is
//     found once.
//   - At every scored stop with at least two stops the train is finalised: the
//     next train is routed, or the assignment is evaluated after the last one.
//   - Each train may also not run at all.
//   - Edges are used by at most one train; vertices at most once per train.
//   - An admissible upper bound (current values plus the best the remaining
//     budgets could add) prunes branches that cannot strictly improve.
//
// Every mutation has a paired restore; the state after the search must equal
// the state before it, which is verified.
//
// Determinism:
//   - Dense ids follow sorted vertex and edge ids, neighbours follow edge ids.
//     Among equal optima the first found is kept.

package revenue

import "context"

// termination describes a train after its latest stop.
type termination uint8

const (
	notYet termination = iota
	withEvaluation
	withoutEvaluation
)

// stopKind describes how a train treats a vertex it reaches.
type stopKind uint8

const (
	pass stopKind = iota
	mustStop
	mayStop
)

// cancelCheckMask sets how often the context is polled.
const cancelCheckMask = 4095

// calcInput is the dense, immutable description of one calculation.
type calcInput struct {
	vertexMajor     []bool
	vertexMinor     []bool
	vertexSide      []bool
	vertexSink      []bool
	vertexNeighbors [][]int
	vertexEdges     [][]int
	vertexVisitSets [][]int
	vertexBonuses   [][]int
	startVertices   []int

	edgeGreedy []bool

	// per train
	trainMajors       []int
	trainMinors       []int
	trainIgnoreMinors []bool
	trainHexes        []bool
	vertexValue       [][]int // [train][vertex] value of a scored stop

	// complex bonuses
	bonusValue    []int
	bonusRequired []int
	bonusTrain    [][]bool // [bonus][train]

	// prediction
	prediction     bool
	maxMajorValues [][]int // [train][k] best sum of k major stops
	maxMinorValues [][]int
	maxBonusValue  []int // [train] sum of positive complex bonuses
	maxTrainValue  []int
	dynamicBound   int
}

// engine is the search over one calcInput with edge-usage strategy U.
type engine[U edgeUsage] struct {
	in  *calcInput
	use U

	ctx      context.Context
	steps    int
	canceled bool

	value        []int
	majors       []int
	minors       []int
	stops        []int
	visited      [][]bool
	blocked      [][]bool // major starts already fully explored, per train
	stack        [][]int
	stackStop    [][]bool
	bottomActive []bool
	startEdge    []int
	bonusLeft    [][]int // [train][bonus]
	maxFrom      []int   // maxFrom[t] = sum of maxTrainValue[k] for k >= t

	found      bool
	best       int
	bestStack  [][]int
	bestStops  [][]bool
	bestValues []int

	stats    Statistics
	progress func(value int, final bool)
	dynamic  func(stack [][]int, stops [][]bool) int
}

func newEngine[U edgeUsage](ctx context.Context, in *calcInput, use U) *engine[U] {
	nt := len(in.trainMajors)
	nv := len(in.vertexMajor)
	e := &engine[U]{
		in:           in,
		use:          use,
		ctx:          ctx,
		value:        make([]int, nt),
		majors:       append([]int(nil), in.trainMajors...),
		minors:       append([]int(nil), in.trainMinors...),
		stops:        make([]int, nt),
		visited:      make([][]bool, nt),
		blocked:      make([][]bool, nt),
		stack:        make([][]int, nt),
		stackStop:    make([][]bool, nt),
		bottomActive: make([]bool, nt),
		startEdge:    make([]int, nt),
		bonusLeft:    make([][]int, nt),
		maxFrom:      make([]int, nt+1),
		bestStack:    make([][]int, nt),
		bestStops:    make([][]bool, nt),
		bestValues:   make([]int, nt),
	}
	for t := 0; t < nt; t++ {
		e.visited[t] = make([]bool, nv)
		e.blocked[t] = make([]bool, nv)
		e.bonusLeft[t] = append([]int(nil), in.bonusRequired...)
	}
	if in.prediction {
		for t := nt - 1; t >= 0; t-- {
			e.maxFrom[t] = e.maxFrom[t+1] + in.maxTrainValue[t]
		}
	}

	return e
}

// run performs the whole search and reports whether it completed.
func (e *engine[U]) run() bool {
	if len(e.in.trainMajors) == 0 {
		return true
	}
	if e.ctx != nil && e.ctx.Err() != nil {
		e.canceled = true

		return false
	}
	e.runTrain(0)
	if !e.canceled {
		e.verifyClean()
	}

	return !e.canceled
}

func (e *engine[U]) tick() {
	e.steps++
	if e.steps&cancelCheckMask != 0 || e.ctx == nil {
		return
	}
	if e.ctx.Err() != nil {
		e.canceled = true
	}
}

func (e *engine[U]) runTrain(t int) {
	if e.prune(t, true) {
		return
	}
	in := e.in
	var blocked []int
	for _, s := range in.startVertices {
		if e.canceled {
			break
		}
		if e.visited[t][s] || e.blocked[t][s] || e.stopKind(t, s) == pass {
			continue
		}
		if !e.encounter(t, s, true) {
			continue
		}
		// the sink flag is ignored at the start
		if e.terminated(t) == notYet && !e.prune(t, false) {
			e.nextEdges(t, s, false, 0, true)
		}
		e.leave(t, s)

		// every route through a major start has been found from it
		if in.vertexMajor[s] {
			e.blocked[t][s] = true
			blocked = append(blocked, s)
		}
	}
	for _, s := range blocked {
		e.blocked[t][s] = false
	}
	if e.canceled {
		return
	}

	// the train does not run
	e.finalize(t)
}

// nextEdges explores the edges of v from index from on.
func (e *engine[U]) nextEdges(t, v int, restricted bool, from int, recordStart bool) {
	in := e.in
	edges := in.vertexEdges[v]
	for i := from; i < len(edges); i++ {
		if e.canceled {
			return
		}
		edge := edges[i]
		if restricted && !in.edgeGreedy[edge] {
			continue
		}
		nb := in.vertexNeighbors[v][i]
		if e.visited[t][nb] || e.blocked[t][nb] || !e.use.usable(t, edge) {
			continue
		}
		if recordStart {
			e.startEdge[t] = i
		}
		e.use.travel(t, edge)
		e.stats.EdgesTravelled++
		e.nextVertex(t, nb, in.vertexSide[nb] && !in.edgeGreedy[edge])
		e.use.release(t, edge)
	}
}

func (e *engine[U]) nextVertex(t, v int, restricted bool) {
	e.tick()
	switch e.stopKind(t, v) {
	case mustStop:
		e.visit(t, v, true, restricted)
	case mayStop:
		e.visit(t, v, true, restricted)
		e.visit(t, v, false, restricted)
	default:
		e.visit(t, v, false, restricted)
	}
}

func (e *engine[U]) visit(t, v int, stop, restricted bool) {
	if e.canceled || !e.encounter(t, v, stop) {
		return
	}
	in := e.in
	if !stop {
		if !in.vertexSink[v] {
			e.nextEdges(t, v, restricted, 0, false)
		}
		e.leave(t, v)

		return
	}

	term := e.terminated(t)
	if term != withoutEvaluation && !e.prune(t, false) {
		if e.stops[t] >= 2 {
			e.finalize(t)
		}
		if term == notYet {
			if !e.bottomActive[t] && !in.vertexSink[e.stack[t][0]] {
				e.runBottom(t)
			}
			if !in.vertexSink[v] {
				e.nextEdges(t, v, false, 0, false)
			}
		}
	}
	e.leave(t, v)
}

// runBottom continues the current train from its start vertex.
// The start is pushed again as an unscored marker.
func (e *engine[U]) runBottom(t int) {
	s := e.stack[t][0]
	e.bottomActive[t] = true
	e.stack[t] = append(e.stack[t], s)
	e.stackStop[t] = append(e.stackStop[t], false)

	e.nextEdges(t, s, false, e.startEdge[t]+1, false)

	n := len(e.stack[t]) - 1
	if e.stack[t][n] != s || e.stackStop[t][n] {
		invariant("runBottom", "train %d: bottom marker lost", t)
	}
	e.stack[t] = e.stack[t][:n]
	e.stackStop[t] = e.stackStop[t][:n]
	e.bottomActive[t] = false
}

func (e *engine[U]) finalize(t int) {
	if t == len(e.in.trainMajors)-1 {
		e.evaluate()

		return
	}
	e.runTrain(t + 1)
}

func (e *engine[U]) evaluate() {
	e.stats.Evaluations++
	total := 0
	for _, v := range e.value {
		total += v
	}
	if e.dynamic != nil {
		total += e.dynamic(e.stack, e.stackStop)
	}
	if e.found && total <= e.best {
		return
	}
	e.found = true
	e.best = total
	e.stats.Improvements++
	for t := range e.stack {
		e.bestStack[t] = append(e.bestStack[t][:0], e.stack[t]...)
		e.bestStops[t] = append(e.bestStops[t][:0], e.stackStop[t]...)
		e.bestValues[t] = e.value[t]
	}
	if e.progress != nil {
		e.progress(total, false)
	}
}

func (e *engine[U]) stopKind(t, v int) stopKind {
	in := e.in
	switch {
	case in.vertexMajor[v]:
		return mustStop
	case in.vertexMinor[v] && !in.trainIgnoreMinors[t] && e.minors[t] > 0:
		return mayStop
	default:
		return pass
	}
}

func (e *engine[U]) terminated(t int) termination {
	in := e.in
	switch {
	case e.majors[t] < 0:
		return withoutEvaluation
	case in.trainHexes[t]:
		// H-trains end when the distance budget leaves no usable edge
		return notYet
	case in.trainIgnoreMinors[t] && e.majors[t] == 0:
		return withEvaluation
	case e.majors[t] == 0 && e.minors[t] == 0:
		return withEvaluation
	default:
		return notYet
	}
}

// prune reports whether no completion of the current state can beat the best value.
// Nothing is pruned before the first evaluation.
// At a train start the train itself contributes its full potential.
func (e *engine[U]) prune(t int, atStart bool) bool {
	in := e.in
	if !in.prediction || !e.found {
		return false
	}
	e.stats.Predictions++
	bound := in.dynamicBound
	for k := 0; k < t; k++ {
		bound += e.value[k]
	}
	if atStart {
		bound += e.maxFrom[t]
	} else {
		bound += e.value[t] + e.potential(t) + e.maxFrom[t+1]
	}
	if bound > e.best {
		return false
	}
	e.stats.Pruned++

	return true
}

// potential bounds what train t can still add with its remaining budgets.
func (e *engine[U]) potential(t int) int {
	in := e.in
	p := in.maxBonusValue[t] + prefix(in.maxMajorValues[t], e.majors[t])
	if !in.trainIgnoreMinors[t] {
		p += prefix(in.maxMinorValues[t], e.minors[t])
	}

	return p
}

func prefix(sums []int, k int) int {
	if k <= 0 || len(sums) == 0 {
		return 0
	}
	if k >= len(sums) {
		k = len(sums) - 1
	}

	return sums[k]
}

// encounter adds v to train t, scoring it when stop is set.
// It reports false, changing nothing, when v or a member of its visit set was visited.
func (e *engine[U]) encounter(t, v int, stop bool) bool {
	in := e.in
	if v < 0 || v >= len(in.vertexMajor) {
		invariant("encounter", "vertex %d out of range", v)
	}
	visited := e.visited[t]
	if visited[v] {
		return false
	}
	for _, w := range in.vertexVisitSets[v] {
		if visited[w] {
			return false
		}
	}
	visited[v] = true
	for _, w := range in.vertexVisitSets[v] {
		visited[w] = true
	}
	e.stack[t] = append(e.stack[t], v)
	e.stackStop[t] = append(e.stackStop[t], stop)
	if !stop {
		return true
	}

	e.stops[t]++
	if in.vertexMajor[v] {
		e.majors[t]--
	} else {
		e.minors[t]--
	}
	e.value[t] += in.vertexValue[t][v]
	for _, b := range in.vertexBonuses[v] {
		if !in.bonusTrain[b][t] {
			continue
		}
		e.bonusLeft[t][b]--
		if e.bonusLeft[t][b] == 0 {
			e.value[t] += in.bonusValue[b]
		}
	}

	return true
}

// leave undoes the matching encounter of v.
func (e *engine[U]) leave(t, v int) {
	in := e.in
	n := len(e.stack[t]) - 1
	if n < 0 || e.stack[t][n] != v {
		invariant("leave", "train %d: vertex %d is not on top of the stack", t, v)
	}
	stop := e.stackStop[t][n]
	e.stack[t] = e.stack[t][:n]
	e.stackStop[t] = e.stackStop[t][:n]

	if stop {
		for _, b := range in.vertexBonuses[v] {
			if !in.bonusTrain[b][t] {
				continue
			}
			if e.bonusLeft[t][b] == 0 {
				e.value[t] -= in.bonusValue[b]
			}
			e.bonusLeft[t][b]++
		}
		e.value[t] -= in.vertexValue[t][v]
		if in.vertexMajor[v] {
			e.majors[t]++
		} else {
			e.minors[t]++
		}
		e.stops[t]--
	}

	e.visited[t][v] = false
	for _, w := range in.vertexVisitSets[v] {
		e.visited[t][w] = false
	}
}

// verifyClean panics unless every counter is back to its initial state.
func (e *engine[U]) verifyClean() {
	in := e.in
	if !e.use.clean() {
		invariant("verify", "edges still in use after the search")
	}
	for t := range e.stack {
		if len(e.stack[t]) != 0 || e.value[t] != 0 || e.stops[t] != 0 {
			invariant("verify", "train %d not restored", t)
		}
		if e.majors[t] != in.trainMajors[t] || e.minors[t] != in.trainMinors[t] {
			invariant("verify", "train %d budgets not restored", t)
		}
		for v, b := range e.visited[t] {
			if b {
				invariant("verify", "train %d: vertex %d still visited", t, v)
			}
		}
		for b, left := range e.bonusLeft[t] {
			if left != in.bonusRequired[b] {
				invariant("verify", "train %d: bonus %d not restored", t, b)
			}
		}
	}
}
