// SPDX-License-Identifier: MIT
//
// File: scenario.go
// Role: scenario document, loading and validation.

package scenario

import (
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/railrev/bonus"
	"github.com/katalvlaran/railrev/builder"
	"github.com/katalvlaran/railrev/core"
	"github.com/katalvlaran/railrev/train"
)

var (
	// ErrInvalidScenario indicates a scenario document that cannot describe a game position.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrBadTrack indicates malformed track notation.
	ErrBadTrack = errors.New("scenario: bad track notation")

	// ErrUnknownCompany indicates a company missing from the scenario.
	ErrUnknownCompany = errors.New("scenario: unknown company")
)

// Scenario is a game position: the laid board, the companies and their trains.
type Scenario struct {
	Phase     string           `yaml:"phase"`
	Hexes     []HexSpec        `yaml:"hexes"`
	Companies []Company        `yaml:"companies"`
	Bonuses   []bonus.Template `yaml:"bonuses,omitempty"`
	VisitSets [][]string       `yaml:"visit_sets,omitempty"`
}

// HexSpec describes one hex. Neighbors maps a side (0..5) to the adjacent hex.
type HexSpec struct {
	ID        string         `yaml:"id"`
	Neighbors map[int]string `yaml:"neighbors,omitempty"`
	Stops     []StopSpec     `yaml:"stops,omitempty"`
	Tracks    []string       `yaml:"tracks,omitempty"`
}

// StopSpec describes one station slot of a hex.
type StopSpec struct {
	Slot        int            `yaml:"slot"`
	Type        string         `yaml:"type"`
	Value       int            `yaml:"value"`
	PhaseValues map[string]int `yaml:"phase_values,omitempty"`
	Slots       int            `yaml:"slots,omitempty"`
	Tokens      []string       `yaml:"tokens,omitempty"`
	Label       string         `yaml:"label,omitempty"`
}

// Company is a company and its trains in shorthand ("3", "4+4", "5E").
type Company struct {
	ID     string   `yaml:"id"`
	Trains []string `yaml:"trains"`
}

// Load decodes and validates a scenario. Unknown keys are rejected.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrapf(ErrInvalidScenario, "decode: %v", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadFile opens path and loads the scenario it contains.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "scenario: open")
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	klog.V(1).Infof("scenario: %s: %d hexes, %d companies", path, len(s.Hexes), len(s.Companies))

	return s, nil
}

// GamePhase returns the phase the scenario is set in.
func (s *Scenario) GamePhase() core.Phase { return core.Phase{Name: s.Phase} }

// Validate checks the scenario for structural errors: duplicate hexes,
// dangling or one-sided neighbours, bad sides and stop types, malformed
// tracks, bad train shorthands, and bonuses or visit sets naming stations
// that do not exist.
func (s *Scenario) Validate() error {
	if len(s.Hexes) == 0 {
		return errors.Wrap(ErrInvalidScenario, "no hexes")
	}
	hexes := make(map[string]bool, len(s.Hexes))
	byID := make(map[string]HexSpec, len(s.Hexes))
	stations := make(map[string]bool)
	for _, h := range s.Hexes {
		if h.ID == "" {
			return errors.Wrap(ErrInvalidScenario, "hex without id")
		}
		if hexes[h.ID] {
			return errors.Wrapf(ErrInvalidScenario, "duplicate hex %q", h.ID)
		}
		hexes[h.ID] = true
		byID[h.ID] = h
		for _, st := range h.Stops {
			if !validStopType(core.StationType(st.Type)) {
				return errors.Wrapf(ErrInvalidScenario, "hex %s: stop %d: unknown type %q", h.ID, st.Slot, st.Type)
			}
			stations[builder.StationID(h.ID, st.Slot)] = true
		}
		for _, t := range h.Tracks {
			if _, err := ParseTrack(t); err != nil {
				return errors.Wrapf(ErrInvalidScenario, "hex %s: %v", h.ID, err)
			}
		}
	}
	for _, h := range s.Hexes {
		for side, nb := range h.Neighbors {
			if side < 0 || side > 5 {
				return errors.Wrapf(ErrInvalidScenario, "hex %s: side %d out of range", h.ID, side)
			}
			if !hexes[nb] {
				return errors.Wrapf(ErrInvalidScenario, "hex %s: unknown neighbour %q", h.ID, nb)
			}
			if back := byID[nb].Neighbors[builder.OppositeSide(side)]; back != h.ID {
				return errors.Wrapf(ErrInvalidScenario, "hex %s side %d: %s side %d faces %q",
					h.ID, side, nb, builder.OppositeSide(side), back)
			}
		}
	}

	companies := make(map[string]bool, len(s.Companies))
	for _, c := range s.Companies {
		if c.ID == "" || companies[c.ID] {
			return errors.Wrapf(ErrInvalidScenario, "company %q: empty or duplicate id", c.ID)
		}
		companies[c.ID] = true
		for _, name := range c.Trains {
			if _, err := train.Parse(name); err != nil {
				return errors.Wrapf(ErrInvalidScenario, "company %s: %v", c.ID, err)
			}
		}
	}

	for _, b := range s.Bonuses {
		if len(b.Vertices) == 0 {
			return errors.Wrapf(ErrInvalidScenario, "bonus %q: no vertices", b.Name)
		}
		for _, id := range b.Vertices {
			if !stations[id] {
				return errors.Wrapf(ErrInvalidScenario, "bonus %q: unknown station %q", b.Name, id)
			}
		}
	}
	for i, set := range s.VisitSets {
		for _, id := range set {
			if !stations[id] {
				return errors.Wrapf(ErrInvalidScenario, "visit set %d: unknown station %q", i, id)
			}
		}
	}

	return nil
}

func validStopType(t core.StationType) bool { return t.IsMajor() || t.IsMinor() }

// Board converts the hexes into a builder board.
func (s *Scenario) Board() (builder.Board, error) {
	board := builder.Board{Hexes: make([]builder.Hex, 0, len(s.Hexes))}
	for _, h := range s.Hexes {
		hex := builder.Hex{ID: h.ID}
		for side, nb := range h.Neighbors {
			if side < 0 || side > 5 {
				return builder.Board{}, errors.Wrapf(ErrInvalidScenario, "hex %s: side %d out of range", h.ID, side)
			}
			hex.Neighbors[side] = nb
		}
		for _, st := range h.Stops {
			hex.Stops = append(hex.Stops, builder.Stop{
				Slot:        st.Slot,
				Type:        core.StationType(st.Type),
				Value:       st.Value,
				PhaseValues: st.PhaseValues,
				Slots:       st.Slots,
				Tokens:      st.Tokens,
				Label:       st.Label,
			})
		}
		for _, raw := range h.Tracks {
			t, err := ParseTrack(raw)
			if err != nil {
				return builder.Board{}, errors.Wrapf(ErrInvalidScenario, "hex %s: %v", h.ID, err)
			}
			hex.Tracks = append(hex.Tracks, t)
		}
		board.Hexes = append(board.Hexes, hex)
	}

	return board, nil
}

// Templates returns the bonus templates of the scenario.
func (s *Scenario) Templates() []bonus.Template {
	return append([]bonus.Template(nil), s.Bonuses...)
}

// CompanyIDs returns the company IDs sorted.
func (s *Scenario) CompanyIDs() []string {
	out := make([]string, 0, len(s.Companies))
	for _, c := range s.Companies {
		out = append(out, c.ID)
	}
	sort.Strings(out)

	return out
}

// Roster parses the trains of company.
//
// Errors: ErrUnknownCompany, train shorthand errors.
func (s *Scenario) Roster(company string) ([]train.Train, error) {
	for _, c := range s.Companies {
		if c.ID != company {
			continue
		}
		out := make([]train.Train, 0, len(c.Trains))
		for _, name := range c.Trains {
			t, err := train.Parse(name)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}

		return out, nil
	}

	return nil, errors.Wrapf(ErrUnknownCompany, "%q", company)
}
