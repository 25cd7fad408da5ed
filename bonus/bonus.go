// SPDX-License-Identifier: MIT
//
// File: bonus.go
// Role: Bonus, Template and resolution against a graph.

package bonus

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"

	"github.com/katalvlaran/railrev/core"
	"github.com/katalvlaran/railrev/train"
)

var (
	// ErrUnknownVertex indicates a bonus referencing a vertex not in the graph.
	ErrUnknownVertex = errors.New("bonus: unknown vertex")

	// ErrUnknownTrain indicates a bonus restricted to a train type not in the roster.
	ErrUnknownTrain = errors.New("bonus: unknown train")

	// ErrNoVertices indicates a bonus without required vertices.
	ErrNoVertices = errors.New("bonus: no vertices")
)

// Bonus is a live bonus bound to vertices of the current graph.
type Bonus struct {
	Name  string
	Value int

	// Vertices must all be scored by the same train.
	Vertices []string

	// Trains restricts the bonus to these train names; empty means all trains.
	Trains []string

	// Phases restricts the bonus to these phase names; empty means all phases.
	Phases []string
}

// IsSimple reports whether the bonus requires a single vertex.
func (b Bonus) IsSimple() bool { return len(b.Vertices) == 1 }

// AppliesToTrain reports whether a train named name may earn the bonus.
func (b Bonus) AppliesToTrain(name string) bool { return len(b.Trains) == 0 || contains(b.Trains, name) }

// AppliesToPhase reports whether the bonus is active in phase p.
func (b Bonus) AppliesToPhase(p core.Phase) bool { return len(b.Phases) == 0 || contains(b.Phases, p.Name) }

// AppliesTo reports whether t earns the bonus during phase p.
func (b Bonus) AppliesTo(t train.Train, p core.Phase) bool {
	return b.AppliesToTrain(t.Name) && b.AppliesToPhase(p)
}

// String implements fmt.Stringer.
func (b Bonus) String() string { return fmt.Sprintf("%s (%+d)", b.Name, b.Value) }

// Template is the unresolved tuple form of a bonus.
type Template struct {
	Name     string   `yaml:"name"`
	Value    int      `yaml:"value"`
	Vertices []string `yaml:"vertices"`
	Trains   []string `yaml:"trains,omitempty"`
	Phases   []string `yaml:"phases,omitempty"`
}

// ResolveOption configures Resolve.
type ResolveOption func(*resolveOptions)

type resolveOptions struct {
	ignoreUnknownTrains   bool
	ignoreUnknownVertices bool
}

// IgnoreUnknownTrains drops train names missing from the roster instead of failing.
// A template left without any applicable train is skipped.
func IgnoreUnknownTrains() ResolveOption {
	return func(o *resolveOptions) { o.ignoreUnknownTrains = true }
}

// IgnoreUnknownVertices skips templates referencing a vertex missing from the
// graph, as happens when one template list serves several company graphs.
func IgnoreUnknownVertices() ResolveOption {
	return func(o *resolveOptions) { o.ignoreUnknownVertices = true }
}

// Resolve binds templates to graph g, roster and phase. Templates inactive in
// phase are skipped. Vertex sets are deduplicated and sorted.
//
// Errors: ErrNoVertices, ErrUnknownVertex, ErrUnknownTrain.
func Resolve(templates []Template, g *core.Graph, roster []train.Train, phase core.Phase, opts ...ResolveOption) ([]Bonus, error) {
	var o resolveOptions
	for _, fn := range opts {
		fn(&o)
	}
	names := make(map[string]bool, len(roster))
	for _, t := range roster {
		names[t.Name] = true
	}

	out := make([]Bonus, 0, len(templates))
	for _, tpl := range templates {
		if len(tpl.Phases) > 0 && !contains(tpl.Phases, phase.Name) {
			continue
		}
		if len(tpl.Vertices) == 0 {
			return nil, errors.Wrapf(ErrNoVertices, "bonus %q", tpl.Name)
		}

		set := treeset.NewWithStringComparator()
		missing := ""
		for _, id := range tpl.Vertices {
			if !g.HasVertex(id) {
				missing = id
				break
			}
			set.Add(id)
		}
		if missing != "" {
			if o.ignoreUnknownVertices {
				continue
			}
			return nil, errors.Wrapf(ErrUnknownVertex, "bonus %q: vertex %q", tpl.Name, missing)
		}

		var trains []string
		for _, name := range tpl.Trains {
			if names[name] {
				trains = append(trains, name)
				continue
			}
			if !o.ignoreUnknownTrains {
				return nil, errors.Wrapf(ErrUnknownTrain, "bonus %q: train %q", tpl.Name, name)
			}
		}
		if len(tpl.Trains) > 0 && len(trains) == 0 {
			continue
		}

		out = append(out, Bonus{
			Name:     tpl.Name,
			Value:    tpl.Value,
			Vertices: stringValues(set),
			Trains:   trains,
			Phases:   append([]string(nil), tpl.Phases...),
		})
	}

	return out, nil
}

func stringValues(set *treeset.Set) []string {
	out := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(string))
	}

	return out
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}

	return false
}
