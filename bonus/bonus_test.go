// SPDX-License-Identifier: MIT

package bonus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railrev/bonus"
	"github.com/katalvlaran/railrev/core"
	"github.com/katalvlaran/railrev/train"
)

func graphOf(t *testing.T, ids ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddVertex(&core.Vertex{ID: id, Kind: core.Station, Type: core.City}))
	}

	return g
}

func TestResolve(t *testing.T) {
	g := graphOf(t, "A", "B", "C")
	roster := []train.Train{train.MustParse("2"), train.MustParse("4")}
	phase := core.Phase{Name: "3"}

	got, err := bonus.Resolve([]bonus.Template{
		{Name: "east-west", Value: 50, Vertices: []string{"C", "A", "C"}},
		{Name: "mine", Value: 10, Vertices: []string{"B"}, Trains: []string{"4"}},
		{Name: "late", Value: 20, Vertices: []string{"A"}, Phases: []string{"5"}},
	}, g, roster, phase)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, []string{"A", "C"}, got[0].Vertices)
	assert.False(t, got[0].IsSimple())
	assert.True(t, got[1].IsSimple())
	assert.True(t, got[1].AppliesTo(roster[1], phase))
	assert.False(t, got[1].AppliesTo(roster[0], phase))
	assert.Equal(t, "mine (+10)", got[1].String())
}

func TestResolveErrors(t *testing.T) {
	g := graphOf(t, "A")
	roster := []train.Train{train.MustParse("2")}

	_, err := bonus.Resolve([]bonus.Template{{Name: "x", Vertices: []string{"Z"}}}, g, roster, core.Phase{})
	assert.ErrorIs(t, err, bonus.ErrUnknownVertex)

	_, err = bonus.Resolve([]bonus.Template{{Name: "x", Vertices: []string{"A"}, Trains: []string{"D"}}}, g, roster, core.Phase{})
	assert.ErrorIs(t, err, bonus.ErrUnknownTrain)

	_, err = bonus.Resolve([]bonus.Template{{Name: "x"}}, g, roster, core.Phase{})
	assert.ErrorIs(t, err, bonus.ErrNoVertices)

	got, err := bonus.Resolve([]bonus.Template{{Name: "x", Vertices: []string{"A"}, Trains: []string{"D"}}},
		g, roster, core.Phase{}, bonus.IgnoreUnknownTrains())
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = bonus.Resolve([]bonus.Template{
		{Name: "far", Vertices: []string{"A", "Z"}},
		{Name: "near", Value: 5, Vertices: []string{"A"}},
	}, g, roster, core.Phase{}, bonus.IgnoreUnknownVertices())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "near", got[0].Name)
}

func TestAppliesToPhase(t *testing.T) {
	b := bonus.Bonus{Name: "b", Value: 10, Vertices: []string{"A"}, Phases: []string{"5", "6"}}
	assert.True(t, b.AppliesToPhase(core.Phase{Name: "6"}))
	assert.False(t, b.AppliesToPhase(core.Phase{Name: "4"}))
	assert.True(t, b.AppliesToTrain("any"))
}
