// SPDX-License-Identifier: MIT
//
// File: run.go
// Role: TrainRun, the route of one train in a result.

package revenue

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/railrev/bonus"
	"github.com/katalvlaran/railrev/core"
	"github.com/katalvlaran/railrev/train"
)

// TrainRun is the route of one train as found by the search.
//
// Vertices is the visiting order: the top part from the start vertex and,
// when the route extends on both sides of the start, the start once more
// followed by the bottom part. Only vertices flagged as stops are scored.
type TrainRun struct {
	Train    train.Train
	Vertices []*core.Vertex

	stops   []bool
	phase   core.Phase
	bonuses []bonus.Bonus
}

// NewTrainRun builds a run from a visiting order and its stop flags.
// bonuses are the candidates the run may earn; they are filtered by train and phase.
func NewTrainRun(t train.Train, phase core.Phase, vertices []*core.Vertex, stops []bool, bonuses []bonus.Bonus) TrainRun {
	flags := make([]bool, len(vertices))
	copy(flags, stops)

	return TrainRun{
		Train:    t,
		Vertices: append([]*core.Vertex(nil), vertices...),
		stops:    flags,
		phase:    phase,
		bonuses:  append([]bonus.Bonus(nil), bonuses...),
	}
}

// IsEmpty reports whether the train does not run.
func (r TrainRun) IsEmpty() bool { return len(r.Vertices) == 0 }

// Stops returns the scored vertices in visiting order.
func (r TrainRun) Stops() []*core.Vertex {
	var out []*core.Vertex
	for i, v := range r.Vertices {
		if r.stops[i] {
			out = append(out, v)
		}
	}

	return out
}

// StopsAt reports whether the run scores vertex id.
func (r TrainRun) StopsAt(id string) bool {
	for i, v := range r.Vertices {
		if r.stops[i] && v.ID == id {
			return true
		}
	}

	return false
}

// HasBottomRun reports whether the start vertex reappears in the sequence.
func (r TrainRun) HasBottomRun() bool { return r.bottomIndex() > 0 }

func (r TrainRun) bottomIndex() int {
	if len(r.Vertices) == 0 {
		return -1
	}
	start := r.Vertices[0].ID
	for i := 1; i < len(r.Vertices); i++ {
		if r.Vertices[i].ID == start {
			return i
		}
	}

	return -1
}

// StopValue returns the contribution of scoring v, without bonuses.
func (r TrainRun) StopValue(v *core.Vertex) int {
	switch {
	case v.IsMajor():
		return v.ValueAt(r.phase) * r.Train.MajorMultiplier
	case v.IsMinor():
		return v.ValueAt(r.phase) * r.Train.MinorMultiplier
	default:
		return 0
	}
}

// EarnedBonuses returns the bonuses whose vertices the run all scores.
func (r TrainRun) EarnedBonuses() []bonus.Bonus {
	if r.IsEmpty() {
		return nil
	}
	scored := make(map[string]bool)
	for _, v := range r.Stops() {
		scored[v.ID] = true
	}
	var out []bonus.Bonus
	for _, b := range r.bonuses {
		if !b.AppliesTo(r.Train, r.phase) {
			continue
		}
		earned := true
		for _, id := range b.Vertices {
			if !scored[id] {
				earned = false
				break
			}
		}
		if earned {
			out = append(out, b)
		}
	}

	return out
}

// Value recomputes the revenue of the run from its stops and earned bonuses.
func (r TrainRun) Value() int {
	total := 0
	for _, v := range r.Stops() {
		total += r.StopValue(v)
	}
	for _, b := range r.EarnedBonuses() {
		total += b.Value
	}

	return total
}

// order returns the vertex indices in travelling order: the top part
// reversed, then the bottom part.
func (r TrainRun) order() []int {
	n := len(r.Vertices)
	bottom := r.bottomIndex()
	if bottom < 0 {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}

		return out
	}
	out := make([]int, 0, n-1)
	for i := bottom - 1; i >= 0; i-- {
		out = append(out, i)
	}
	for i := bottom + 1; i < n; i++ {
		out = append(out, i)
	}

	return out
}

// String lists the stops in travelling order, grouping consecutive stops in
// the same hex: "A1 (30) - B2 (10,20)".
func (r TrainRun) String() string {
	var (
		groups []string
		key    string
		values []string
	)
	flush := func() {
		if len(values) > 0 {
			groups = append(groups, fmt.Sprintf("%s (%s)", key, strings.Join(values, ",")))
		}
		values = values[:0]
	}
	for _, i := range r.order() {
		if !r.stops[i] {
			continue
		}
		v := r.Vertices[i]
		loc := v.Location
		if loc == "" {
			loc = v.String()
		}
		if loc != key {
			flush()
			key = loc
		}
		values = append(values, fmt.Sprint(r.StopValue(v)))
	}
	flush()

	return strings.Join(groups, " - ")
}
