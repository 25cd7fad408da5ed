// SPDX-License-Identifier: MIT

package scenario_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railrev/builder"
	"github.com/katalvlaran/railrev/revenue"
	"github.com/katalvlaran/railrev/scenario"
)

const corridor = `
phase: "3"
hexes:
  - id: A1
    neighbors: {1: B1}
    stops: [{slot: 0, type: city, value: 30, slots: 1, tokens: [PR]}]
    tracks: ["0-s1"]
  - id: B1
    neighbors: {1: C1, 4: A1}
    stops: [{slot: 0, type: town, value: 10}]
    tracks: ["s4-0", "0-s1"]
  - id: C1
    neighbors: {4: B1}
    stops: [{slot: 0, type: city, value: 40, phase_values: {"5": 60}, slots: 2, tokens: [XX]}]
    tracks: ["s4-0"]
companies:
  - id: PR
    trains: ["2", "2+1"]
  - id: XX
    trains: ["3"]
bonuses:
  - {name: west, value: 5, vertices: [A1.0]}
visit_sets:
  - [A1.0, C1.0]
`

func TestParseTrack(t *testing.T) {
	tests := []struct {
		in   string
		want builder.Track
	}{
		{"s0-1", builder.Track{A: builder.SideEnd(0), B: builder.StopEnd(1)}},
		{"1-s4", builder.Track{A: builder.StopEnd(1), B: builder.SideEnd(4)}},
		{"S2-s5", builder.Track{A: builder.SideEnd(2), B: builder.SideEnd(5)}},
		{" 0 - 1 ", builder.Track{A: builder.StopEnd(0), B: builder.StopEnd(1)}},
	}
	for _, tt := range tests {
		got, err := scenario.ParseTrack(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, strings.ToLower(strings.ReplaceAll(tt.in, " ", "")), got.String())
	}

	for _, bad := range []string{"", "s0", "s6-1", "s1-s1", "x-1", "0-1-2"} {
		_, err := scenario.ParseTrack(bad)
		assert.ErrorIs(t, err, scenario.ErrBadTrack, bad)
	}
}

func TestLoad(t *testing.T) {
	s, err := scenario.Load(strings.NewReader(corridor))
	require.NoError(t, err)

	assert.Equal(t, "3", s.GamePhase().Name)
	assert.Equal(t, []string{"PR", "XX"}, s.CompanyIDs())
	require.Len(t, s.Templates(), 1)
	assert.Equal(t, "west", s.Templates()[0].Name)

	roster, err := s.Roster("PR")
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, 1, roster[1].Minors)

	_, err = s.Roster("ZZ")
	assert.ErrorIs(t, err, scenario.ErrUnknownCompany)

	board, err := s.Board()
	require.NoError(t, err)
	require.Len(t, board.Hexes, 3)
	assert.Equal(t, "C1", board.Hexes[1].Neighbors[1])
	assert.Equal(t, 60, board.Hexes[2].Stops[0].PhaseValues["5"])
	assert.Equal(t, builder.Track{A: builder.SideEnd(4), B: builder.StopEnd(0)}, board.Hexes[1].Tracks[0])
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"no hexes":        `companies: [{id: PR, trains: ["2"]}]`,
		"unknown key":     "hexes: [{id: A1, colour: green}]",
		"duplicate hex":   "hexes: [{id: A1}, {id: A1}]",
		"bad neighbour":   "hexes: [{id: A1, neighbors: {0: Z9}}]",
		"bad side":        "hexes: [{id: A1, neighbors: {7: A1}}]",
		"one-sided":       "hexes: [{id: A1, neighbors: {1: B1}}, {id: B1}]",
		"wrong back side": "hexes: [{id: A1, neighbors: {1: B1}}, {id: B1, neighbors: {3: A1}}]",
		"bad stop type":   "hexes: [{id: A1, stops: [{slot: 0, type: village}]}]",
		"bad track":       `hexes: [{id: A1, tracks: ["s9-0"]}]`,
		"bad train":       `hexes: [{id: A1}]` + "\n" + `companies: [{id: PR, trains: ["X"]}]`,
		"dup company":     `hexes: [{id: A1}]` + "\n" + `companies: [{id: PR}, {id: PR}]`,
		"bonus station":   `hexes: [{id: A1}]` + "\n" + `bonuses: [{name: b, value: 1, vertices: [A1.0]}]`,
		"visit station":   `hexes: [{id: A1}]` + "\n" + `visit_sets: [[A1.0]]`,
		"empty document":  "",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := scenario.Load(strings.NewReader(doc))
			assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corridor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(corridor), 0o600))

	s, err := scenario.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Hexes, 3)

	_, err = scenario.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestScenario_Revenue(t *testing.T) {
	s, err := scenario.Load(strings.NewReader(corridor))
	require.NoError(t, err)
	board, err := s.Board()
	require.NoError(t, err)
	base, err := builder.BuildNetwork(board)
	require.NoError(t, err)

	svc := revenue.NewService(base, s.GamePhase(), revenue.WithBonusTemplates(s.Templates()))
	roster, err := s.Roster("PR")
	require.NoError(t, err)
	res, err := svc.Revenue(context.Background(), "PR", roster)
	require.NoError(t, err)
	assert.Equal(t, 85, res.Total)

	roster, err = s.Roster("XX")
	require.NoError(t, err)
	res, err = svc.Revenue(context.Background(), "XX", roster)
	require.NoError(t, err)
	assert.Equal(t, 75, res.Total, "C1 - B1 - A1 with the west bonus; A1 is full and ends the run")
}
