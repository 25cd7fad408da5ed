// SPDX-License-Identifier: MIT
//
// File: input.go
// Role: translation of the adapter state into the dense calcInput, and the
// prediction tables.

package revenue

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
)

func (a *Adapter) buildInput(starts []int, dynamicBound int) *calcInput {
	nv, ne, nt := len(a.vertices), len(a.edges), len(a.trains)
	in := &calcInput{
		vertexMajor:       make([]bool, nv),
		vertexMinor:       make([]bool, nv),
		vertexSide:        make([]bool, nv),
		vertexSink:        make([]bool, nv),
		vertexNeighbors:   make([][]int, nv),
		vertexEdges:       make([][]int, nv),
		vertexVisitSets:   make([][]int, nv),
		vertexBonuses:     make([][]int, nv),
		startVertices:     starts,
		edgeGreedy:        make([]bool, ne),
		trainMajors:       make([]int, nt),
		trainMinors:       make([]int, nt),
		trainIgnoreMinors: make([]bool, nt),
		trainHexes:        make([]bool, nt),
		vertexValue:       make([][]int, nt),
		prediction:        a.cfg.prediction,
		dynamicBound:      dynamicBound,
	}

	for i, v := range a.vertices {
		in.vertexMajor[i] = v.IsMajor()
		in.vertexMinor[i] = v.IsMinor()
		in.vertexSide[i] = v.IsSide()
		in.vertexSink[i] = v.Sink
	}
	for i, e := range a.edges {
		from, to := a.index[e.From], a.index[e.To]
		in.edgeGreedy[i] = e.Greedy
		in.vertexNeighbors[from] = append(in.vertexNeighbors[from], to)
		in.vertexEdges[from] = append(in.vertexEdges[from], i)
		in.vertexNeighbors[to] = append(in.vertexNeighbors[to], from)
		in.vertexEdges[to] = append(in.vertexEdges[to], i)
	}
	a.addVisitSets(in)

	for t, tr := range a.trains {
		in.trainMajors[t] = tr.Majors
		in.trainMinors[t] = tr.Minors
		in.trainIgnoreMinors[t] = tr.IgnoreMinors
		in.trainHexes[t] = tr.IsHTrain()
		values := make([]int, nv)
		for i, v := range a.vertices {
			switch {
			case v.IsMajor():
				values[i] = v.ValueAt(a.phase) * tr.MajorMultiplier
			case v.IsMinor():
				values[i] = v.ValueAt(a.phase) * tr.MinorMultiplier
			}
		}
		in.vertexValue[t] = values
	}
	a.addBonuses(in)

	if in.prediction {
		a.addPrediction(in)
	}

	return in
}

func (a *Adapter) addVisitSets(in *calcInput) {
	for _, set := range a.visitSets {
		var members []int
		for _, id := range set {
			if i, ok := a.index[id]; ok {
				members = append(members, i)
			}
		}
		for _, v := range members {
			for _, w := range members {
				if v != w {
					in.vertexVisitSets[v] = append(in.vertexVisitSets[v], w)
				}
			}
		}
	}
}

// addBonuses folds single-vertex bonuses into per-train values and records
// the others for incremental tracking. Bonuses inactive in the phase are dropped.
func (a *Adapter) addBonuses(in *calcInput) {
	for _, b := range a.bonuses {
		if !b.AppliesToPhase(a.phase) {
			continue
		}
		vertices := uniqueIDs(b.Vertices)
		if len(vertices) == 1 {
			v := a.index[vertices[0]]
			for t, tr := range a.trains {
				if b.AppliesToTrain(tr.Name) {
					in.vertexValue[t][v] += b.Value
				}
			}
			continue
		}

		id := len(in.bonusValue)
		in.bonusValue = append(in.bonusValue, b.Value)
		in.bonusRequired = append(in.bonusRequired, len(vertices))
		applies := make([]bool, len(a.trains))
		for t, tr := range a.trains {
			applies[t] = b.AppliesToTrain(tr.Name)
		}
		in.bonusTrain = append(in.bonusTrain, applies)
		for _, vid := range vertices {
			v := a.index[vid]
			in.vertexBonuses[v] = append(in.vertexBonuses[v], id)
		}
	}
}

// addPrediction computes, per train, the best sums of k major and k minor
// stop values and the positive complex bonuses it could earn.
func (a *Adapter) addPrediction(in *calcInput) {
	nt := len(a.trains)
	in.maxMajorValues = make([][]int, nt)
	in.maxMinorValues = make([][]int, nt)
	in.maxBonusValue = make([]int, nt)
	in.maxTrainValue = make([]int, nt)
	for t := 0; t < nt; t++ {
		var majors, minors []int
		for v := range a.vertices {
			switch {
			case in.vertexMajor[v]:
				majors = append(majors, in.vertexValue[t][v])
			case in.vertexMinor[v]:
				minors = append(minors, in.vertexValue[t][v])
			}
		}
		in.maxMajorValues[t] = bestSums(majors)
		in.maxMinorValues[t] = bestSums(minors)
		for b, value := range in.bonusValue {
			if value > 0 && in.bonusTrain[b][t] {
				in.maxBonusValue[t] += value
			}
		}

		in.maxTrainValue[t] = in.maxBonusValue[t] + prefix(in.maxMajorValues[t], in.trainMajors[t])
		if !in.trainIgnoreMinors[t] {
			in.maxTrainValue[t] += prefix(in.maxMinorValues[t], in.trainMinors[t])
		}
	}
}

// bestSums returns s with s[k] the largest sum of k values; negative values
// never contribute.
func bestSums(values []int) []int {
	heap := binaryheap.NewWith(func(x, y interface{}) int { return -utils.IntComparator(x, y) })
	for _, v := range values {
		if v > 0 {
			heap.Push(v)
		}
	}
	sums := make([]int, 1, heap.Size()+1)
	for {
		v, ok := heap.Pop()
		if !ok {
			break
		}
		sums = append(sums, sums[len(sums)-1]+v.(int))
	}

	return sums
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	return out
}
