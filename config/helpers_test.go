package config_test

import (
	"testing"

	"github.com/katalvlaran/crimenet/core"
	"github.com/stretchr/testify/require"
)

func pairGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1, 1))
	require.NoError(t, g.AddVertex(2, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	g.Seal()

	return g
}
