// SPDX-License-Identifier: MIT
//
// File: modifiers.go
// Role: modifiers shipped with the package.

package revenue

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/railrev/bonus"
)

// BonusModifier adds an ad hoc bonus when all its vertices are in the adapter graph.
type BonusModifier struct {
	Bonus bonus.Bonus
}

// ModifyCalculator implements StaticModifier.
func (m *BonusModifier) ModifyCalculator(a *Adapter) bool {
	if len(m.Bonus.Vertices) == 0 {
		return false
	}
	for _, id := range m.Bonus.Vertices {
		if !a.graph.HasVertex(id) {
			return false
		}
	}
	a.AddBonus(m.Bonus)

	return true
}

// PrettyPrint implements StaticModifier.
func (m *BonusModifier) PrettyPrint(*Adapter) string {
	return fmt.Sprintf("Bonus %s", m.Bonus)
}

// BlockVertexModifier turns vertices into sinks: trains may end there but not pass.
type BlockVertexModifier struct {
	Vertices []string
}

// ModifyCalculator implements StaticModifier.
func (m *BlockVertexModifier) ModifyCalculator(a *Adapter) bool {
	changed := false
	for _, id := range m.Vertices {
		if a.SetSink(id, true) == nil {
			changed = true
		}
	}

	return changed
}

// PrettyPrint implements StaticModifier.
func (m *BlockVertexModifier) PrettyPrint(a *Adapter) string {
	var blocked []string
	for _, id := range m.Vertices {
		if a.graph.HasVertex(id) {
			blocked = append(blocked, id)
		}
	}

	return fmt.Sprintf("Blocked: %s", strings.Join(blocked, ", "))
}

// RunToStationModifier pays Value once when any train scores Station.
type RunToStationModifier struct {
	Station string
	Value   int
}

// Prepare implements DynamicModifier.
func (m *RunToStationModifier) Prepare(a *Adapter) bool {
	return m.Value != 0 && a.graph.HasVertex(m.Station)
}

// PredictionValue implements DynamicModifier.
func (m *RunToStationModifier) PredictionValue() int {
	if m.Value < 0 {
		return 0
	}

	return m.Value
}

// EvaluationValue implements DynamicModifier.
func (m *RunToStationModifier) EvaluationValue(runs []TrainRun, _ bool) int {
	for _, r := range runs {
		if r.StopsAt(m.Station) {
			return m.Value
		}
	}

	return 0
}

// AdjustOptimalRun implements DynamicModifier.
func (m *RunToStationModifier) AdjustOptimalRun([]TrainRun) {}

// ProvidesOwnCalculateRevenue implements DynamicModifier.
func (m *RunToStationModifier) ProvidesOwnCalculateRevenue() bool { return false }

// CalculateRevenue implements DynamicModifier; it is never called.
func (m *RunToStationModifier) CalculateRevenue(*Adapter) int { return 0 }

// PrettyPrint implements DynamicModifier.
func (m *RunToStationModifier) PrettyPrint(a *Adapter) string {
	if m.EvaluationValue(a.OptimalRun(), true) == 0 {
		return ""
	}

	return fmt.Sprintf("Run to %s: %+d", m.Station, m.Value)
}
