// SPDX-License-Identifier: MIT
//
// File: adapter.go
// Role: Adapter, the bridge between a company graph and the search.
//
// Lifecycle:
//   NewAdapter → AddTrain/AddBonus/... → Initialize → CalculateRevenue → OptimalRun.
//   Any mutation after Initialize invalidates it; CalculateRevenue initialises on demand.

package revenue

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/railrev/bonus"
	"github.com/katalvlaran/railrev/core"
	"github.com/katalvlaran/railrev/train"
)

// Adapter owns a private copy of a company graph together with the trains,
// bonuses and visit sets of one calculation.
type Adapter struct {
	graph   *core.Graph
	company string
	phase   core.Phase
	cfg     adapterConfig

	trains    []train.Train
	bonuses   []bonus.Bonus
	visitSets [][]string

	staticDone    bool
	activeStatic  []StaticModifier
	activeDynamic []DynamicModifier

	initialized bool
	vertices    []*core.Vertex
	index       map[string]int
	edges       []*core.Edge
	in          *calcInput
	usage       UsageKind
	travelSets  [][]int
	distance    []int
	budget      []int

	calculated bool
	optimal    []TrainRun
	total      int
	stats      Statistics
}

// NewAdapter returns an adapter over a clone of g; g itself is never modified.
func NewAdapter(g *core.Graph, company string, phase core.Phase, opts ...Option) *Adapter {
	cfg := newAdapterConfig(opts...)

	return &Adapter{
		graph:     g.Clone(),
		company:   company,
		phase:     phase,
		cfg:       cfg,
		visitSets: cfg.visitSets,
	}
}

// Graph returns the adapter's private graph.
func (a *Adapter) Graph() *core.Graph { return a.graph }

// Company returns the company the adapter calculates for.
func (a *Adapter) Company() string { return a.company }

// Phase returns the phase values and bonuses are resolved in.
func (a *Adapter) Phase() core.Phase { return a.phase }

// Trains returns a copy of the train roster in calculation order.
func (a *Adapter) Trains() []train.Train { return append([]train.Train(nil), a.trains...) }

// Bonuses returns a copy of the registered bonuses.
func (a *Adapter) Bonuses() []bonus.Bonus { return append([]bonus.Bonus(nil), a.bonuses...) }

// Manager returns the modifier registry.
func (a *Adapter) Manager() *Manager { return a.cfg.manager }

// UsageKind returns the edge-usage strategy chosen by Initialize.
func (a *Adapter) UsageKind() UsageKind { return a.usage }

// AddTrain appends t to the roster.
func (a *Adapter) AddTrain(t train.Train) {
	a.trains = append(a.trains, t)
	a.initialized = false
}

// AddTrainByString parses a shorthand such as "3+3" and appends the train.
func (a *Adapter) AddTrainByString(s string) error {
	t, err := train.Parse(s)
	if err != nil {
		return err
	}
	a.AddTrain(t)

	return nil
}

// AddBonus registers a live bonus.
func (a *Adapter) AddBonus(b bonus.Bonus) {
	a.bonuses = append(a.bonuses, b)
	a.initialized = false
}

// AddBonusTemplates resolves templates against the adapter graph, the current
// roster and phase, and registers the result. Add trains first.
func (a *Adapter) AddBonusTemplates(templates []bonus.Template, opts ...bonus.ResolveOption) error {
	resolved, err := bonus.Resolve(templates, a.graph, a.trains, a.phase, opts...)
	if err != nil {
		return err
	}
	for _, b := range resolved {
		a.AddBonus(b)
	}

	return nil
}

// AddVisitSet declares vertices of which a train may visit at most one.
func (a *Adapter) AddVisitSet(ids ...string) {
	a.visitSets = append(a.visitSets, append([]string(nil), ids...))
	a.initialized = false
}

// SetSink marks or clears the sink flag of vertex id.
func (a *Adapter) SetSink(id string, sink bool) error {
	v, err := a.graph.Vertex(id)
	if err != nil {
		return errors.Wrapf(ErrUnknownVertex, "sink %q", id)
	}
	v.Sink = sink
	a.initialized = false

	return nil
}

// RemoveVertex drops vertex id and its edges from the adapter graph.
func (a *Adapter) RemoveVertex(id string) error {
	if err := a.graph.RemoveVertex(id); err != nil {
		return errors.Wrapf(ErrUnknownVertex, "remove %q", id)
	}
	a.initialized = false

	return nil
}

// Initialize validates the configuration, applies static modifiers once and
// prepares the dense search input.
//
// Errors: ErrNoTrains, train validation errors, bonus.ErrUnknownVertex, ErrNoStartVertices.
func (a *Adapter) Initialize() error {
	a.initialized = false
	m := a.cfg.manager
	if !a.staticDone {
		m.InitStaticModifiers(a)
		a.staticDone = true
	}

	if len(a.trains) == 0 {
		return ErrNoTrains
	}
	for _, t := range a.trains {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	a.denseIDs()
	for _, b := range a.bonuses {
		if len(b.Vertices) == 0 {
			return errors.Wrapf(bonus.ErrNoVertices, "bonus %q", b.Name)
		}
		for _, id := range b.Vertices {
			if _, ok := a.index[id]; !ok {
				return errors.Wrapf(bonus.ErrUnknownVertex, "bonus %q: vertex %q", b.Name, id)
			}
		}
	}
	starts := a.startVertices()
	if len(starts) == 0 {
		return errors.Wrapf(ErrNoStartVertices, "company %q", a.company)
	}

	m.InitDynamicModifiers(a)
	a.in = a.buildInput(starts, m.PredictionValue(a))
	a.chooseUsage()
	a.initialized = true

	return nil
}

// denseIDs assigns dense ids: vertices sorted by id (HQ excluded), then edges
// between them sorted by id (self-loops excluded).
func (a *Adapter) denseIDs() {
	a.vertices = a.vertices[:0]
	a.index = make(map[string]int)
	for _, v := range a.graph.Vertices() {
		if v.IsHQ() {
			continue
		}
		a.index[v.ID] = len(a.vertices)
		a.vertices = append(a.vertices, v)
	}

	a.edges = a.edges[:0]
	for _, e := range a.graph.Edges() {
		_, okFrom := a.index[e.From]
		_, okTo := a.index[e.To]
		if okFrom && okTo && e.From != e.To {
			a.edges = append(a.edges, e)
		}
	}
}

// startVertices returns the dense ids of the HQ neighbours, or of the
// company's token stations when the graph carries no HQ.
func (a *Adapter) startVertices() []int {
	var ids []string
	if nb, err := a.graph.NeighborIDs(core.HQVertexID(a.company)); err == nil {
		ids = nb
	}
	if len(ids) == 0 {
		for _, v := range a.vertices {
			if v.IsStation() && v.HasToken(a.company) {
				ids = append(ids, v.ID)
			}
		}
	}

	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if i, ok := a.index[id]; ok && a.vertices[i].IsStation() {
			out = append(out, i)
		}
	}
	sort.Ints(out)

	return out
}

// chooseUsage picks the cheapest strategy that is exact for the graph and roster.
func (a *Adapter) chooseUsage() {
	a.travelSets = travelSets(a.edges)
	a.distance = make([]int, len(a.edges))
	for i, e := range a.edges {
		a.distance[i] = e.Distance
	}
	a.budget = make([]int, len(a.trains))
	hex := false
	for i, t := range a.trains {
		a.budget[i] = -1
		if t.IsHTrain() {
			a.budget[i] = t.MaxDistance()
			hex = true
		}
	}

	overlap := false
	for _, set := range a.travelSets {
		if len(set) > 1 {
			overlap = true
			break
		}
	}
	switch {
	case hex:
		a.usage = MultiHex
	case overlap:
		a.usage = Multi
	default:
		a.usage = Simple
	}
}

// travelSets maps each edge to every edge sharing a base edge with it,
// itself included, in ascending order.
func travelSets(edges []*core.Edge) [][]int {
	byBase := make(map[string][]int)
	for i, e := range edges {
		for _, base := range e.Route {
			byBase[base] = append(byBase[base], i)
		}
	}
	sets := make([][]int, len(edges))
	for i, e := range edges {
		seen := map[int]bool{i: true}
		set := []int{i}
		for _, base := range e.Route {
			for _, j := range byBase[base] {
				if !seen[j] {
					seen[j] = true
					set = append(set, j)
				}
			}
		}
		sort.Ints(set)
		sets[i] = set
	}

	return sets
}

// activeBonuses returns the bonuses active in the adapter phase for train t.
func (a *Adapter) activeBonuses(t train.Train) []bonus.Bonus {
	var out []bonus.Bonus
	for _, b := range a.bonuses {
		if b.AppliesTo(t, a.phase) {
			out = append(out, b)
		}
	}

	return out
}
