// SPDX-License-Identifier: MIT
//
// File: calculate.go
// Role: CalculateRevenue, result conversion and formatting.

package revenue

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/railrev/core"
)

const tracerName = "github.com/katalvlaran/railrev/revenue"

// searchResult is what one engine run reports back.
type searchResult struct {
	completed bool
	best      int
	stack     [][]int
	stops     [][]bool
	values    []int
	stats     Statistics
}

func search[U edgeUsage](ctx context.Context, in *calcInput, use U,
	dynamic func([][]int, [][]bool) int, progress func(int, bool)) searchResult {
	e := newEngine(ctx, in, use)
	e.dynamic = dynamic
	e.progress = progress
	completed := e.run()
	if completed && !e.found {
		invariant("search", "completed without an evaluation")
	}

	return searchResult{
		completed: completed,
		best:      e.best,
		stack:     e.bestStack,
		stops:     e.bestStops,
		values:    e.bestValues,
		stats:     e.stats,
	}
}

// CalculateRevenue finds the optimal revenue, initialising the adapter when needed.
//
// Errors: the Initialize errors, ErrCanceled, ErrInconsistentResult.
func (a *Adapter) CalculateRevenue(ctx context.Context) (int, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "revenue.CalculateRevenue")
	defer span.End()
	span.SetAttributes(
		attribute.String("company", a.company),
		attribute.String("phase", a.phase.Name),
		attribute.Int("trains", len(a.trains)),
	)

	total, err := a.calculate(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return 0, err
	}
	span.SetAttributes(
		attribute.Int("revenue", total),
		attribute.String("usage", a.usage.String()),
		attribute.Int("evaluations", a.stats.Evaluations),
	)

	return total, nil
}

func (a *Adapter) calculate(ctx context.Context) (int, error) {
	if !a.initialized {
		if err := a.Initialize(); err != nil {
			return 0, err
		}
	}
	a.calculated = false
	m := a.cfg.manager

	if mod := m.CalculationModifier(a); mod != nil {
		a.total = mod.CalculateRevenue(a)
		a.optimal = nil
		a.stats = Statistics{}
		a.calculated = true
		a.notify(a.total, true)
		klog.V(1).Infof("revenue: company %s: %d from %T", a.company, a.total, mod)

		return a.total, nil
	}

	var dynamic func([][]int, [][]bool) int
	if len(a.activeDynamic) > 0 {
		dynamic = func(stack [][]int, stops [][]bool) int {
			return m.EvaluationValue(a, a.runsFrom(stack, stops), false)
		}
	}
	progress := func(value int, final bool) {
		klog.V(2).Infof("revenue: company %s: improved to %d", a.company, value)
		a.notify(value, final)
	}

	var res searchResult
	switch a.usage {
	case Multi:
		res = search(ctx, a.in, newMultiUsage(a.travelSets), dynamic, progress)
	case MultiHex:
		res = search(ctx, a.in, newHexUsage(a.travelSets, a.distance, a.budget), dynamic, progress)
	default:
		res = search(ctx, a.in, newSimpleUsage(len(a.edges)), dynamic, progress)
	}
	if !res.completed {
		return 0, errors.Wrapf(ErrCanceled, "company %q: %v", a.company, ctx.Err())
	}

	runs := a.runsFrom(res.stack, res.stops)
	recomputed, reported := 0, 0
	for t, r := range runs {
		recomputed += r.Value()
		reported += res.values[t]
	}
	if recomputed != reported {
		return 0, errors.Wrapf(ErrInconsistentResult, "company %q: runs %d, search %d", a.company, recomputed, reported)
	}
	m.AdjustOptimalRun(a, runs)

	a.optimal = runs
	a.total = res.best
	a.stats = res.stats
	a.calculated = true
	a.notify(a.total, true)
	klog.V(1).Infof("revenue: company %s: %d (%s, %s)", a.company, a.total, a.usage, a.stats)

	return a.total, nil
}

func (a *Adapter) notify(value int, final bool) {
	if a.cfg.progress != nil {
		a.cfg.progress(value, final)
	}
}

// runsFrom converts dense visiting stacks into train runs.
func (a *Adapter) runsFrom(stack [][]int, stops [][]bool) []TrainRun {
	runs := make([]TrainRun, len(a.trains))
	for t, tr := range a.trains {
		var vertices []*core.Vertex
		var flags []bool
		if t < len(stack) {
			vertices = make([]*core.Vertex, len(stack[t]))
			for i, v := range stack[t] {
				vertices[i] = a.vertices[v]
			}
			flags = stops[t]
		}
		runs[t] = NewTrainRun(tr, a.phase, vertices, flags, a.activeBonuses(tr))
	}

	return runs
}

// OptimalRun returns the runs of the last calculation, one per train in
// roster order, or nil before a calculation.
func (a *Adapter) OptimalRun() []TrainRun {
	if !a.calculated {
		return nil
	}

	return append([]TrainRun(nil), a.optimal...)
}

// TotalRevenue returns the value of the last calculation.
func (a *Adapter) TotalRevenue() int { return a.total }

// Statistics returns the counters of the last calculation.
func (a *Adapter) Statistics() Statistics { return a.stats }

// ModifierExplanation describes the active modifiers.
func (a *Adapter) ModifierExplanation() string { return a.cfg.manager.PrettyPrint(a) }

// OptimalRunPrettyPrint formats the optimal run, one line per train.
// With details it adds earned bonuses and the modifier explanation.
func (a *Adapter) OptimalRunPrettyPrint(includeDetails bool) string {
	if !a.calculated {
		return "no calculation"
	}
	var b strings.Builder
	for _, r := range a.optimal {
		if r.IsEmpty() {
			fmt.Fprintf(&b, "%s: does not run\n", r.Train)
			continue
		}
		fmt.Fprintf(&b, "%s: %s = %d\n", r.Train, r, r.Value())
		if includeDetails {
			for _, bn := range r.EarnedBonuses() {
				fmt.Fprintf(&b, "  bonus %s\n", bn)
			}
		}
	}
	if includeDetails {
		if s := a.ModifierExplanation(); s != "" {
			b.WriteString(s)
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "Total: %d", a.total)

	return b.String()
}

// String implements fmt.Stringer.
func (a *Adapter) String() string { return a.OptimalRunPrettyPrint(false) }
