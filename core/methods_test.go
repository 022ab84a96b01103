// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/katalvlaran/crimenet/core"
	"github.com/stretchr/testify/require"
)

// newTriangle builds 1-2 (w=2), 2-3 (w=1), 1-3 (w=1) plus isolated vertex 9.
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1, 3))
	require.NoError(t, g.AddVertex(2, 2))
	require.NoError(t, g.AddVertex(3, 1))
	require.NoError(t, g.AddVertex(9, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 1, 1))

	return g
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(7, 2))
	require.True(t, g.HasVertex(7))
	require.False(t, g.HasVertex(8))

	// duplicate keeps the first case count
	require.NoError(t, g.AddVertex(7, 5))
	n, err := g.CaseCount(7)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.AddVertex(8, -1), core.ErrBadCaseCount)

	_, err = g.Vertex(42)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1, 1))
	require.NoError(t, g.AddVertex(2, 1))

	require.ErrorIs(t, g.AddEdge(1, 1, 1), core.ErrLoopNotAllowed)
	require.ErrorIs(t, g.AddEdge(1, 2, 0), core.ErrBadWeight)
	require.ErrorIs(t, g.AddEdge(1, 2, -3), core.ErrBadWeight)
	require.ErrorIs(t, g.AddEdge(1, 3, 1), core.ErrVertexNotFound)
	require.ErrorIs(t, g.AddEdge(3, 1, 1), core.ErrVertexNotFound)
	require.Equal(t, 0, g.EdgeCount())
}

func TestGraph_WeightAccumulatesSymmetrically(t *testing.T) {
	g := newTriangle(t)

	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, int64(4), g.TotalWeight())

	for _, tc := range []struct {
		u, v int64
		want int64
	}{
		{1, 2, 2}, {2, 1, 2}, {2, 3, 1}, {3, 2, 1}, {1, 3, 1}, {3, 1, 1},
	} {
		w, err := g.Weight(tc.u, tc.v)
		require.NoError(t, err)
		require.Equal(t, tc.want, w, "weight(%d,%d)", tc.u, tc.v)
		require.True(t, g.HasEdge(tc.u, tc.v))
	}

	_, err := g.Weight(1, 9)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	require.False(t, g.HasEdge(9, 1))
}

func TestGraph_DeterministicEnumeration(t *testing.T) {
	g := newTriangle(t)

	require.Equal(t, []int64{1, 2, 3, 9}, g.Vertices())
	require.Equal(t, []core.Edge{
		{From: 1, To: 2, Weight: 2},
		{From: 1, To: 3, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	}, g.Edges())

	ids, err := g.NeighborIDs(2)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 3}, ids)

	nbrs, err := g.Neighbors(3)
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{From: 3, To: 1, Weight: 1}, {From: 3, To: 2, Weight: 1}}, nbrs)

	ids, err = g.NeighborIDs(9)
	require.NoError(t, err)
	require.Empty(t, ids)

	_, err = g.NeighborIDs(100)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_DegreeAndStrength(t *testing.T) {
	g := newTriangle(t)

	d, err := g.Degree(1)
	require.NoError(t, err)
	require.Equal(t, 2, d)

	s, err := g.Strength(1)
	require.NoError(t, err)
	require.Equal(t, int64(3), s)

	d, err = g.Degree(9)
	require.NoError(t, err)
	require.Zero(t, d)

	_, err = g.Strength(100)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_Seal(t *testing.T) {
	g := newTriangle(t)
	require.False(t, g.Sealed())

	g.Seal()
	g.Seal()
	require.True(t, g.Sealed())
	require.ErrorIs(t, g.AddVertex(50, 1), core.ErrSealed)
	require.ErrorIs(t, g.AddEdge(1, 2, 1), core.ErrSealed)

	w, err := g.Weight(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), w)
}

func TestGraph_Stats(t *testing.T) {
	g := newTriangle(t)
	require.Equal(t, core.GraphStats{
		VertexCount:   4,
		EdgeCount:     3,
		TotalWeight:   4,
		IsolatedCount: 1,
	}, g.Stats())
}

func TestInducedSubgraph(t *testing.T) {
	g := newTriangle(t)

	sub := core.InducedSubgraph(g, map[int64]bool{1: true, 2: true, 9: true})
	require.True(t, sub.Sealed())
	require.Equal(t, []int64{1, 2, 9}, sub.Vertices())
	require.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 2}}, sub.Edges())
	require.Equal(t, int64(2), sub.TotalWeight())

	n, err := sub.CaseCount(1)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	// source untouched
	require.Equal(t, 3, g.EdgeCount())
	require.False(t, g.Sealed())
}
