// SPDX-License-Identifier: MIT
//
// File: manager.go
// Role: modifier interfaces and the Manager registry.
//
// Concurrency:
//   - Registration is guarded by a RWMutex. Per-calculation activation lists
//     live on the Adapter, so one Manager may serve concurrent adapters as
//     long as the registered modifiers are themselves safe for concurrent use.

package revenue

import (
	"strings"
	"sync"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/railrev/builder"
	"github.com/katalvlaran/railrev/core"
)

// StaticModifier adjusts an adapter once, before the dense input is built.
// ModifyCalculator reports whether the modifier changed anything.
type StaticModifier interface {
	ModifyCalculator(a *Adapter) bool
	PrettyPrint(a *Adapter) string
}

// DynamicModifier takes part in every evaluation.
//
// PredictionValue must never be below any value EvaluationValue can return,
// or pruning loses optimal solutions.
type DynamicModifier interface {
	Prepare(a *Adapter) bool
	PredictionValue() int
	EvaluationValue(runs []TrainRun, optimal bool) int
	AdjustOptimalRun(runs []TrainRun)
	ProvidesOwnCalculateRevenue() bool
	CalculateRevenue(a *Adapter) int
	PrettyPrint(a *Adapter) string
}

// Manager is the registry of graph, static and dynamic modifiers.
type Manager struct {
	mu      sync.RWMutex
	graph   []builder.GraphModifier
	static  []StaticModifier
	dynamic []DynamicModifier
}

// NewManager returns an empty registry.
func NewManager() *Manager { return &Manager{} }

// AddGraphModifier registers gm.
func (m *Manager) AddGraphModifier(gm builder.GraphModifier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.graph = append(m.graph, gm)
}

// RemoveGraphModifier unregisters gm and reports whether it was registered.
func (m *Manager) RemoveGraphModifier(gm builder.GraphModifier) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ok bool
	m.graph, ok = remove(m.graph, gm)

	return ok
}

// AddStaticModifier registers sm.
func (m *Manager) AddStaticModifier(sm StaticModifier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.static = append(m.static, sm)
}

// RemoveStaticModifier unregisters sm and reports whether it was registered.
func (m *Manager) RemoveStaticModifier(sm StaticModifier) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ok bool
	m.static, ok = remove(m.static, sm)

	return ok
}

// AddDynamicModifier registers dm.
func (m *Manager) AddDynamicModifier(dm DynamicModifier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dynamic = append(m.dynamic, dm)
}

// RemoveDynamicModifier unregisters dm and reports whether it was registered.
func (m *Manager) RemoveDynamicModifier(dm DynamicModifier) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ok bool
	m.dynamic, ok = remove(m.dynamic, dm)

	return ok
}

func remove[T comparable](list []T, x T) ([]T, bool) {
	for i, y := range list {
		if y == x {
			return append(list[:i:i], list[i+1:]...), true
		}
	}

	return list, false
}

// GraphModifiers returns the registered graph modifiers, ready for
// builder.WithGraphModifiers.
func (m *Manager) GraphModifiers() []builder.GraphModifier {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]builder.GraphModifier(nil), m.graph...)
}

// ActivateMapGraphModifiers runs every graph modifier on the base graph g.
func (m *Manager) ActivateMapGraphModifiers(g *core.Graph) {
	for _, gm := range m.GraphModifiers() {
		gm.ModifyMapGraph(g)
	}
}

// ActivateRouteGraphModifiers runs every graph modifier on the company graph g.
func (m *Manager) ActivateRouteGraphModifiers(g *core.Graph, company string) {
	for _, gm := range m.GraphModifiers() {
		gm.ModifyRouteGraph(g, company)
	}
}

// InitStaticModifiers applies every static modifier to a and records those
// that changed it. It reports whether any did.
func (m *Manager) InitStaticModifiers(a *Adapter) bool {
	m.mu.RLock()
	static := append([]StaticModifier(nil), m.static...)
	m.mu.RUnlock()

	a.activeStatic = a.activeStatic[:0]
	for _, sm := range static {
		if sm.ModifyCalculator(a) {
			a.activeStatic = append(a.activeStatic, sm)
			klog.V(1).Infof("revenue: company %s: static modifier %T active", a.company, sm)
		}
	}

	return len(a.activeStatic) > 0
}

// InitDynamicModifiers prepares every dynamic modifier for a and keeps those
// that activate. It reports whether any did.
func (m *Manager) InitDynamicModifiers(a *Adapter) bool {
	m.mu.RLock()
	dynamic := append([]DynamicModifier(nil), m.dynamic...)
	m.mu.RUnlock()

	a.activeDynamic = a.activeDynamic[:0]
	for _, dm := range dynamic {
		if dm.Prepare(a) {
			a.activeDynamic = append(a.activeDynamic, dm)
			klog.V(1).Infof("revenue: company %s: dynamic modifier %T active", a.company, dm)
		}
	}

	return len(a.activeDynamic) > 0
}

// HasCalculationModifier reports whether an active dynamic modifier replaces the search.
func (m *Manager) HasCalculationModifier(a *Adapter) bool { return m.CalculationModifier(a) != nil }

// CalculationModifier returns the first active dynamic modifier that replaces
// the search, or nil.
func (m *Manager) CalculationModifier(a *Adapter) DynamicModifier {
	for _, dm := range a.activeDynamic {
		if dm.ProvidesOwnCalculateRevenue() {
			return dm
		}
	}

	return nil
}

// PredictionValue sums the prediction values of the active dynamic modifiers.
func (m *Manager) PredictionValue(a *Adapter) int {
	total := 0
	for _, dm := range a.activeDynamic {
		total += dm.PredictionValue()
	}

	return total
}

// EvaluationValue sums the evaluation values of the active dynamic modifiers.
func (m *Manager) EvaluationValue(a *Adapter, runs []TrainRun, optimal bool) int {
	total := 0
	for _, dm := range a.activeDynamic {
		total += dm.EvaluationValue(runs, optimal)
	}

	return total
}

// AdjustOptimalRun lets every active dynamic modifier amend the final runs.
func (m *Manager) AdjustOptimalRun(a *Adapter, runs []TrainRun) {
	for _, dm := range a.activeDynamic {
		dm.AdjustOptimalRun(runs)
	}
}

// PrettyPrint joins the non-empty explanations of the active modifiers.
func (m *Manager) PrettyPrint(a *Adapter) string {
	var lines []string
	for _, sm := range a.activeStatic {
		if s := sm.PrettyPrint(a); s != "" {
			lines = append(lines, s)
		}
	}
	for _, dm := range a.activeDynamic {
		if s := dm.PrettyPrint(a); s != "" {
			lines = append(lines, s)
		}
	}

	return strings.Join(lines, "\n")
}
