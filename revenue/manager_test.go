// SPDX-License-Identifier: MIT

package revenue_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/railrev/bonus"
	"github.com/katalvlaran/railrev/core"
	"github.com/katalvlaran/railrev/revenue"
)

// fixedRevenue replaces the search with a constant.
type fixedRevenue struct{ value int }

func (f *fixedRevenue) Prepare(*revenue.Adapter) bool { return true }
func (f *fixedRevenue) PredictionValue() int { return 0 }
func (f *fixedRevenue) EvaluationValue([]revenue.TrainRun, bool) int { return 0 }
func (f *fixedRevenue) AdjustOptimalRun([]revenue.TrainRun) {}
func (f *fixedRevenue) ProvidesOwnCalculateRevenue() bool { return true }
func (f *fixedRevenue) CalculateRevenue(*revenue.Adapter) int { return f.value }
func (f *fixedRevenue) PrettyPrint(*revenue.Adapter) string { return "fixed" }

// flatPenalty charges every evaluation a constant.
type flatPenalty struct{ value int }

func (f *flatPenalty) Prepare(*revenue.Adapter) bool { return true }
func (f *flatPenalty) PredictionValue() int { return 0 }
func (f *flatPenalty) EvaluationValue([]revenue.TrainRun, bool) int { return -f.value }
func (f *flatPenalty) AdjustOptimalRun([]revenue.TrainRun) {}
func (f *flatPenalty) ProvidesOwnCalculateRevenue() bool { return false }
func (f *flatPenalty) CalculateRevenue(*revenue.Adapter) int { return 0 }
func (f *flatPenalty) PrettyPrint(*revenue.Adapter) string { return "" }

type countingGraphModifier struct{ maps, routes int }

func (m *countingGraphModifier) ModifyMapGraph(*core.Graph) { m.maps++ }
func (m *countingGraphModifier) ModifyRouteGraph(*core.Graph, string) { m.routes++ }

type ManagerSuite struct {
	suite.Suite
	m *revenue.Manager
}

func (s *ManagerSuite) SetupTest() { s.m = revenue.NewManager() }

func (s *ManagerSuite) run(g *core.Graph, trains ...string) (*revenue.Adapter, int) {
	a := revenue.NewAdapter(g, company, core.Phase{}, revenue.WithManager(s.m))
	for _, tr := range trains {
		s.Require().NoError(a.AddTrainByString(tr))
	}
	total, err := a.CalculateRevenue(context.Background())
	s.Require().NoError(err)

	return a, total
}

func (s *ManagerSuite) TestBonusModifier() {
	s.m.AddStaticModifier(&revenue.BonusModifier{Bonus: bonus.Bonus{Name: "port", Value: 15, Vertices: []string{"C"}}})
	a, total := s.run(line(s.T()), "2")
	s.Equal(85, total)
	s.Equal("Bonus port (+15)", a.ModifierExplanation())
	s.Len(a.Bonuses(), 1)
}

func (s *ManagerSuite) TestBonusModifierInactive() {
	s.m.AddStaticModifier(&revenue.BonusModifier{Bonus: bonus.Bonus{Name: "far", Value: 15, Vertices: []string{"Z"}}})
	a, total := s.run(line(s.T()), "2")
	s.Equal(70, total)
	s.Empty(a.ModifierExplanation())
}

func (s *ManagerSuite) TestBlockVertexModifier() {
	s.m.AddStaticModifier(&revenue.BlockVertexModifier{Vertices: []string{"B", "Z"}})
	a, total := s.run(line(s.T()), "2+1")
	s.Equal(40, total, "the town becomes a dead end")
	s.Equal("Blocked: B", a.ModifierExplanation())

	v, err := a.Graph().Vertex("B")
	s.Require().NoError(err)
	s.True(v.Sink)
}

func (s *ManagerSuite) TestRunToStationModifier() {
	g := newNetwork(s.T()).
		city("A", 30).city("B", 10).city("C", 60).
		track("A", "B").track("A", "C").
		home("A").g

	_, total := s.run(g, "2")
	s.Equal(90, total)

	s.m.AddDynamicModifier(&revenue.RunToStationModifier{Station: "B", Value: 70})
	a, total := s.run(g, "2")
	s.Equal(110, total)
	s.True(a.OptimalRun()[0].StopsAt("B"))
	s.Equal("Run to B: +70", a.ModifierExplanation())
	s.Equal(40, a.OptimalRun()[0].Value())
}

func (s *ManagerSuite) TestNegativeTotal() {
	s.m.AddDynamicModifier(&flatPenalty{value: 5})
	for _, prediction := range []bool{true, false} {
		g := newNetwork(s.T()).city("A", 1).city("C", 1).track("A", "C").home("A").g
		a := revenue.NewAdapter(g, company, core.Phase{}, revenue.WithManager(s.m), revenue.WithPrediction(prediction))
		s.Require().NoError(a.AddTrainByString("2"))
		total, err := a.CalculateRevenue(context.Background())
		s.Require().NoError(err)
		s.Equal(-3, total, "prediction %v", prediction)
		s.Equal(-3, a.TotalRevenue())
		s.Require().Len(a.OptimalRun(), 1)
		s.Equal("A (1) - C (1)", a.OptimalRun()[0].String())
	}
}

func (s *ManagerSuite) TestCalculationModifier() {
	fixed := &fixedRevenue{value: 999}
	s.m.AddDynamicModifier(fixed)
	a, total := s.run(line(s.T()), "2")
	s.Equal(999, total)
	s.Empty(a.OptimalRun())
	s.Zero(a.Statistics().Evaluations)
	s.True(s.m.HasCalculationModifier(a))
	s.Equal("fixed", s.m.PrettyPrint(a))

	s.True(s.m.RemoveDynamicModifier(fixed))
	s.False(s.m.RemoveDynamicModifier(fixed))
	_, total = s.run(line(s.T()), "2")
	s.Equal(70, total)
}

func (s *ManagerSuite) TestRemoveStaticModifier() {
	mod := &revenue.BlockVertexModifier{Vertices: []string{"B"}}
	s.m.AddStaticModifier(mod)
	s.True(s.m.RemoveStaticModifier(mod))
	s.False(s.m.RemoveStaticModifier(mod))
	_, total := s.run(line(s.T()), "2+1")
	s.Equal(80, total)
}

func (s *ManagerSuite) TestGraphModifiers() {
	gm := &countingGraphModifier{}
	s.m.AddGraphModifier(gm)
	s.Len(s.m.GraphModifiers(), 1)

	g := line(s.T())
	s.m.ActivateMapGraphModifiers(g)
	s.m.ActivateRouteGraphModifiers(g, company)
	s.Equal(1, gm.maps)
	s.Equal(1, gm.routes)

	s.True(s.m.RemoveGraphModifier(gm))
	s.Empty(s.m.GraphModifiers())
}

func (s *ManagerSuite) TestStaticModifiersRunOnce() {
	s.m.AddStaticModifier(&revenue.BonusModifier{Bonus: bonus.Bonus{Name: "port", Value: 15, Vertices: []string{"C"}}})
	a := revenue.NewAdapter(line(s.T()), company, core.Phase{}, revenue.WithManager(s.m))
	s.Require().NoError(a.AddTrainByString("2"))
	s.Require().NoError(a.Initialize())
	s.Require().NoError(a.Initialize())
	s.Len(a.Bonuses(), 1)
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}
