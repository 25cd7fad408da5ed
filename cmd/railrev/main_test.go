// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	for _, routeGraph := range []bool{false, true} {
		require.NoError(t, run(context.Background(), "testdata/junction.yaml", "", routeGraph, true))
	}
	require.NoError(t, run(context.Background(), "testdata/junction.yaml", "XX", false, false))

	assert.Error(t, run(context.Background(), "testdata/junction.yaml", "ZZ", false, false))
	assert.Error(t, run(context.Background(), "testdata/missing.yaml", "", false, false))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, run(ctx, "testdata/junction.yaml", "", false, false))
}
