// SPDX-License-Identifier: MIT

package revenue_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railrev/bonus"
	"github.com/katalvlaran/railrev/core"
	"github.com/katalvlaran/railrev/revenue"
	"github.com/katalvlaran/railrev/train"
)

// calculate runs the adapter over g with the given shorthands.
func calculate(t *testing.T, g *core.Graph, trains []string, opts ...revenue.Option) (*revenue.Adapter, int) {
	t.Helper()
	a := revenue.NewAdapter(g, company, core.Phase{Name: "2"}, opts...)
	for _, s := range trains {
		require.NoError(t, a.AddTrainByString(s))
	}
	total, err := a.CalculateRevenue(context.Background())
	require.NoError(t, err)

	return a, total
}

func TestCalculateRevenue_TownRules(t *testing.T) {
	tests := []struct {
		trains []string
		want   int
		runs   []string
	}{
		{[]string{"2"}, 70, []string{"A (30) - C (40)"}},
		{[]string{"2+1"}, 80, []string{"A (30) - B (10) - C (40)"}},
		{[]string{"3"}, 70, []string{"A (30) - C (40)"}},
		{[]string{"2", "2+1"}, 80, []string{"", "A (30) - B (10) - C (40)"}},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.trains, ","), func(t *testing.T) {
			a, total := calculate(t, line(t), tt.trains)
			assert.Equal(t, tt.want, total)
			runs := a.OptimalRun()
			require.Len(t, runs, len(tt.runs))
			for i, r := range runs {
				assert.Equal(t, tt.runs[i], r.String())
			}
			assert.Equal(t, revenue.Simple, a.UsageKind())
		})
	}
}

func TestCalculateRevenue_SinkEndsRun(t *testing.T) {
	g := newNetwork(t).
		city("A", 10).city("S", 50).city("C", 100).
		track("A", "S").track("S", "C").
		sink("S").home("A").g
	for _, s := range []string{"2", "3", "D"} {
		a, total := calculate(t, g, []string{s})
		assert.Equal(t, 60, total, s)
		assert.False(t, a.OptimalRun()[0].StopsAt("C"), s)
	}
}

func TestCalculateRevenue_SinkIgnoredAtStart(t *testing.T) {
	g := newNetwork(t).
		city("S", 20).city("B", 30).city("C", 40).
		track("S", "B").track("B", "C").
		sink("S").home("S").g
	_, total := calculate(t, g, []string{"2"})
	assert.Equal(t, 50, total)
	_, total = calculate(t, g, []string{"3"})
	assert.Equal(t, 90, total)
}

func TestCalculateRevenue_GreedyContinuation(t *testing.T) {
	build := func(home string) *core.Graph {
		return newNetwork(t).
			city("A", 10).city("T", 100).city("B", 20).
			side("X1").side("X2").
			track("A", "X1").track("X1", "T").greedy("X1", "X2").track("X2", "B").
			home(home).g
	}

	// from A the side X1 is entered from inside its hex and must be crossed
	_, total := calculate(t, build("A"), []string{"3"})
	assert.Equal(t, 30, total)

	// from B, X1 is entered across the hex edge and any track may follow
	a, total := calculate(t, build("B"), []string{"2"})
	assert.Equal(t, 120, total)
	assert.Equal(t, "B (20) - T (100)", a.OptimalRun()[0].String())
}

func TestCalculateRevenue_Bonuses(t *testing.T) {
	both := bonus.Bonus{Name: "A-C", Value: 25, Vertices: []string{"A", "C"}}
	tests := []struct {
		name    string
		trains  []string
		bonuses []bonus.Bonus
		want    int
	}{
		{"pair with 2", []string{"2"}, []bonus.Bonus{both}, 95},
		{"pair with 2+1", []string{"2+1"}, []bonus.Bonus{both}, 105},
		{"other train", []string{"2"}, []bonus.Bonus{{Name: "x", Value: 25, Vertices: []string{"A", "C"}, Trains: []string{"4"}}}, 70},
		{"other phase", []string{"2"}, []bonus.Bonus{{Name: "x", Value: 25, Vertices: []string{"A", "C"}, Phases: []string{"5"}}}, 70},
		{"simple on town", []string{"2+1"}, []bonus.Bonus{{Name: "mine", Value: 5, Vertices: []string{"B"}}}, 85},
		{"passed town earns nothing", []string{"2"}, []bonus.Bonus{{Name: "mine", Value: 500, Vertices: []string{"B"}}}, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := revenue.NewAdapter(line(t), company, core.Phase{Name: "2"})
			for _, s := range tt.trains {
				require.NoError(t, a.AddTrainByString(s))
			}
			for _, b := range tt.bonuses {
				a.AddBonus(b)
			}
			total, err := a.CalculateRevenue(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)

			sum := 0
			for _, r := range a.OptimalRun() {
				sum += r.Value()
			}
			assert.Equal(t, total, sum)
		})
	}
}

func TestCalculateRevenue_BonusTemplates(t *testing.T) {
	a := revenue.NewAdapter(line(t), company, core.Phase{Name: "2"})
	require.NoError(t, a.AddTrainByString("2"))
	err := a.AddBonusTemplates([]bonus.Template{{Name: "x", Value: 10, Vertices: []string{"A"}, Trains: []string{"5"}}})
	assert.ErrorIs(t, err, bonus.ErrUnknownTrain)

	require.NoError(t, a.AddBonusTemplates([]bonus.Template{{Name: "ends", Value: 10, Vertices: []string{"C", "A"}}}))
	total, err := a.CalculateRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 80, total)
	earned := a.OptimalRun()[0].EarnedBonuses()
	require.Len(t, earned, 1)
	assert.Equal(t, "ends", earned[0].Name)
}

func TestCalculateRevenue_ExpressAndDouble(t *testing.T) {
	g := newNetwork(t).
		city("A", 30).town("B", 10).city("C", 40).city("D", 20).
		track("A", "B").track("B", "C").track("C", "D").
		home("A").g
	tests := []struct {
		train string
		want  int
	}{
		{"2E", 70},
		{"3E", 90},
		{"2D", 140},
		{"2+1", 80},
		{"3+1", 100},
	}
	for _, tt := range tests {
		t.Run(tt.train, func(t *testing.T) {
			_, total := calculate(t, g, []string{tt.train})
			assert.Equal(t, tt.want, total)
		})
	}
}

func TestCalculateRevenue_HTrains(t *testing.T) {
	g := newNetwork(t).
		city("A", 10).city("B", 20).city("C", 30).city("D", 40).
		track("A", "B", core.WithDistance(1)).
		track("B", "C", core.WithDistance(1)).
		track("C", "D", core.WithDistance(1)).
		home("A").g
	tests := []struct {
		train string
		want  int
	}{
		{"2H", 30},
		{"3H", 60},
		{"4H", 100},
		{"9H", 100},
	}
	for _, tt := range tests {
		t.Run(tt.train, func(t *testing.T) {
			a, total := calculate(t, g, []string{tt.train})
			assert.Equal(t, tt.want, total)
			assert.Equal(t, revenue.MultiHex, a.UsageKind())
		})
	}
}

func TestCalculateRevenue_VisitSets(t *testing.T) {
	g := newNetwork(t).
		city("A", 30).city("B", 50).city("C", 40).
		track("A", "B").track("B", "C").
		home("A").g
	_, total := calculate(t, g, []string{"3"})
	assert.Equal(t, 120, total)
	_, total = calculate(t, g, []string{"3"}, revenue.WithVisitSets([]string{"B", "C"}))
	assert.Equal(t, 80, total)
}

func TestCalculateRevenue_BottomRun(t *testing.T) {
	g := newNetwork(t).
		city("A", 30).city("B", 10).city("C", 40).
		track("A", "B").track("B", "C").
		home("B").g
	a, total := calculate(t, g, []string{"3"})
	assert.Equal(t, 80, total)

	run := a.OptimalRun()[0]
	assert.True(t, run.HasBottomRun())
	assert.Equal(t, "A (30) - B (10) - C (40)", run.String())
	assert.Equal(t, 80, run.Value())
	assert.Len(t, run.Stops(), 3)
}

func TestCalculateRevenue_TrainsShareNoEdge(t *testing.T) {
	g := newNetwork(t).
		city("A", 10).city("B", 20).city("C", 30).
		track("A", "B").track("A", "C").
		home("A").g
	a, total := calculate(t, g, []string{"2", "2"})
	assert.Equal(t, 70, total)

	var values []int
	for _, r := range a.OptimalRun() {
		values = append(values, r.Value())
	}
	assert.ElementsMatch(t, []int{30, 40}, values)
}

func TestCalculateRevenue_NoRoute(t *testing.T) {
	g := newNetwork(t).city("A", 10).city("B", 20).home("A").g
	a, total := calculate(t, g, []string{"2"})
	assert.Zero(t, total)
	assert.True(t, a.OptimalRun()[0].IsEmpty())
	assert.Equal(t, "2: does not run\nTotal: 0", a.OptimalRunPrettyPrint(true))
}

func TestCalculateRevenue_TokenStartsWithoutHQ(t *testing.T) {
	g := newNetwork(t).
		city("A", 30).town("B", 10).city("C", 40).
		track("A", "B").track("B", "C").g
	v, err := g.Vertex("A")
	require.NoError(t, err)
	v.Tokens = []string{company}

	_, total := calculate(t, g, []string{"2"})
	assert.Equal(t, 70, total)
}

func TestCalculateRevenue_PhaseValues(t *testing.T) {
	g := line(t)
	v, err := g.Vertex("C")
	require.NoError(t, err)
	v.PhaseValues = map[string]int{"5": 90}

	a := revenue.NewAdapter(g, company, core.Phase{Name: "5"})
	require.NoError(t, a.AddTrainByString("2"))
	total, err := a.CalculateRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, total)
}

func TestCalculateRevenue_Errors(t *testing.T) {
	ctx := context.Background()

	a := revenue.NewAdapter(line(t), company, core.Phase{})
	_, err := a.CalculateRevenue(ctx)
	assert.ErrorIs(t, err, revenue.ErrNoTrains)

	a = revenue.NewAdapter(line(t), company, core.Phase{})
	a.AddTrain(train.Train{Name: "0"})
	_, err = a.CalculateRevenue(ctx)
	assert.ErrorIs(t, err, train.ErrZeroCapacity)

	a = revenue.NewAdapter(line(t), company, core.Phase{})
	assert.ErrorIs(t, a.AddTrainByString("x"), train.ErrBadShorthand)

	a = revenue.NewAdapter(line(t), "XX", core.Phase{})
	require.NoError(t, a.AddTrainByString("2"))
	_, err = a.CalculateRevenue(ctx)
	assert.ErrorIs(t, err, revenue.ErrNoStartVertices)

	a = revenue.NewAdapter(line(t), company, core.Phase{})
	require.NoError(t, a.AddTrainByString("2"))
	a.AddBonus(bonus.Bonus{Name: "far", Value: 10, Vertices: []string{"Z"}})
	assert.ErrorIs(t, a.Initialize(), bonus.ErrUnknownVertex)

	a = revenue.NewAdapter(line(t), company, core.Phase{})
	assert.ErrorIs(t, a.SetSink("Z", true), revenue.ErrUnknownVertex)
	assert.ErrorIs(t, a.RemoveVertex("Z"), revenue.ErrUnknownVertex)
}

func TestCalculateRevenue_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := revenue.NewAdapter(line(t), company, core.Phase{})
	require.NoError(t, a.AddTrainByString("2"))
	total, err := a.CalculateRevenue(ctx)
	assert.ErrorIs(t, err, revenue.ErrCanceled)
	assert.Zero(t, total)
	assert.Nil(t, a.OptimalRun())
}

func TestCalculateRevenue_Progress(t *testing.T) {
	type call struct {
		value int
		final bool
	}
	var calls []call
	_, total := calculate(t, line(t), []string{"2+1"}, revenue.WithProgress(func(v int, final bool) {
		calls = append(calls, call{v, final})
	}))
	require.NotEmpty(t, calls)
	assert.Equal(t, call{total, true}, calls[len(calls)-1])
	for i := 1; i < len(calls)-1; i++ {
		assert.Greater(t, calls[i].value, calls[i-1].value)
		assert.False(t, calls[i].final)
	}
}

func TestCalculateRevenue_Idempotent(t *testing.T) {
	a := revenue.NewAdapter(line(t), company, core.Phase{})
	require.NoError(t, a.AddTrainByString("2"))
	require.NoError(t, a.AddTrainByString("2+1"))

	first, err := a.CalculateRevenue(context.Background())
	require.NoError(t, err)
	firstRuns, firstStats := a.String(), a.Statistics()

	second, err := a.CalculateRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, firstRuns, a.String())
	assert.Equal(t, firstStats, a.Statistics())
}

func TestCalculateRevenue_PredictionOnlyPrunes(t *testing.T) {
	g := newNetwork(t).
		city("A", 30).town("B", 10).city("C", 40).city("D", 70).town("E", 20).
		track("A", "B").track("B", "C").track("C", "D").track("A", "E").track("E", "D").
		home("A").g
	roster := []string{"2+1", "2"}

	with, total := calculate(t, g, roster)
	without, plain := calculate(t, g, roster, revenue.WithPrediction(false))
	assert.Equal(t, plain, total)
	assert.Zero(t, without.Statistics().Predictions)
	assert.Positive(t, with.Statistics().Predictions)
	assert.LessOrEqual(t, with.Statistics().Evaluations, without.Statistics().Evaluations)
}

func TestOptimalRunPrettyPrint(t *testing.T) {
	a := revenue.NewAdapter(line(t), company, core.Phase{})
	assert.Equal(t, "no calculation", a.OptimalRunPrettyPrint(false))
	require.NoError(t, a.AddTrainByString("2+1"))
	a.AddBonus(bonus.Bonus{Name: "ends", Value: 10, Vertices: []string{"A", "C"}})
	_, err := a.CalculateRevenue(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2+1: A (30) - B (10) - C (40) = 90\nTotal: 90", a.String())
	assert.Equal(t, "2+1: A (30) - B (10) - C (40) = 90\n  bonus ends (+10)\nTotal: 90", a.OptimalRunPrettyPrint(true))
}
